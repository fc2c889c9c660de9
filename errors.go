package latex2png

import "errors"

// Sentinel errors for library operations.
var (
	ErrNoExpressions = errors.New("no LaTeX found")
	ErrRender        = errors.New("render failed")
	ErrReadInput     = errors.New("failed to read input")

	// Style validation errors.
	ErrInvalidStyle = errors.New("invalid style")
	ErrInvalidColor = errors.New("invalid color")
)
