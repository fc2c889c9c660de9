package main

import (
	"errors"

	latex2png "github.com/alnah/go-latex2png"
	"github.com/alnah/go-latex2png/internal/assets"
	"github.com/alnah/go-latex2png/internal/config"
)

// Exit codes for the latex2png CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // Image rendered
	ExitFailure = 1 // No LaTeX found, render failed, or stdin unreadable
	ExitUsage   = 2 // Invalid flags, config, preset, or style
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Run outcomes first: a render failure may wrap anything.
	if errors.Is(err, latex2png.ErrNoExpressions) ||
		errors.Is(err, latex2png.ErrRender) ||
		errors.Is(err, latex2png.ErrReadInput) {
		return ExitFailure
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, config.ErrNestedPreset) ||
		errors.Is(err, latex2png.ErrInvalidStyle) ||
		errors.Is(err, latex2png.ErrInvalidColor) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) {
		return ExitUsage
	}

	return ExitFailure
}
