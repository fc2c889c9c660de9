package latex2png

import "fmt"

// OutcomeKind tells how a run ended.
type OutcomeKind int

const (
	NoExpressions OutcomeKind = iota
	Rendered
	RenderFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case NoExpressions:
		return "no expressions"
	case Rendered:
		return "rendered"
	case RenderFailed:
		return "render failed"
	}
	return fmt.Sprintf("OutcomeKind(%d)", int(k))
}

// Outcome is the result of Renderer.Run.
type Outcome struct {
	Kind OutcomeKind

	// Path is the absolute path of the written image (Rendered only).
	Path string

	// Expressions holds what was extracted, in render order.
	Expressions []string

	// Canvas is the layout canvas (Rendered and RenderFailed).
	Canvas CanvasSpec

	// Cause is why rendering failed (RenderFailed only), without the
	// ErrRender wrapper.
	Cause error
}

// Err returns nil for Rendered, ErrNoExpressions when nothing was found, and
// the cause wrapped in ErrRender when rendering failed.
func (o Outcome) Err() error {
	switch o.Kind {
	case Rendered:
		return nil
	case NoExpressions:
		return ErrNoExpressions
	}
	return fmt.Errorf("%w: %w", ErrRender, o.Cause)
}
