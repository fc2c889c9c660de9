package latex2png

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-latex2png/internal/fileutil"
	"github.com/alnah/go-latex2png/internal/mathtext"
	"github.com/alnah/go-latex2png/internal/raster"
)

// DefaultOutputName is the file name of the rendered image inside the
// system temporary directory.
const DefaultOutputName = "latex_render.png"

// DefaultOutputPath returns the absolute path every run writes to unless
// WithOutputPath overrides it. Concurrent runs share it; the last writer wins.
func DefaultOutputPath() string {
	path := filepath.Join(os.TempDir(), DefaultOutputName)
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// Render draws expressions as stacked rows on canvas and writes the PNG to
// dest, replacing any existing file as a whole. Any failure is wrapped in
// ErrRender; nothing is retried.
func Render(expressions []string, canvas CanvasSpec, style Style, dest string) error {
	if err := render(expressions, canvas, style, dest); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	return nil
}

func render(expressions []string, canvas CanvasSpec, style Style, dest string) error {
	if err := style.Validate(); err != nil {
		return err
	}

	rows := make([]*mathtext.Node, len(expressions))
	for i, expr := range expressions {
		n, err := mathtext.Parse(expr)
		if err != nil {
			return fmt.Errorf("expression %d %q: %w", i+1, expr, err)
		}
		rows[i] = n
	}

	img, err := raster.Draw(rows, raster.Options{
		Background: style.Background,
		Foreground: style.Text,
		Family:     style.FontFamily,
		FontSize:   style.FontSize,
		DPI:        style.DPI,
		Width:      canvas.Width,
		Height:     canvas.Height,
		Padding:    style.Padding,
	})
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := raster.EncodePNG(&buf, img, style.DPI); err != nil {
		return err
	}
	return fileutil.ReplaceFile(dest, buf.Bytes(), 0o644)
}

// Renderer runs the whole text-to-image pipeline.
type Renderer struct {
	style  Style
	output string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithStyle sets the style used to draw expressions.
func WithStyle(s Style) Option {
	return func(r *Renderer) {
		r.style = s
	}
}

// WithOutputPath sets the image destination.
// Panics if path is empty (programmer error).
func WithOutputPath(path string) Option {
	if path == "" {
		panic("latex2png: WithOutputPath path must not be empty")
	}
	return func(r *Renderer) {
		r.output = path
	}
}

// New creates a Renderer using DefaultStyle and DefaultOutputPath unless
// options say otherwise.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		style:  DefaultStyle(),
		output: DefaultOutputPath(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Style returns the renderer's style.
func (r *Renderer) Style() Style { return r.style }

// OutputPath returns where Run writes the image.
func (r *Renderer) OutputPath() string { return r.output }

// Run extracts expressions from text and renders them. When nothing is
// found no canvas is computed and no file is touched.
func (r *Renderer) Run(text string) Outcome {
	expressions := ExtractExpressions(text)
	if len(expressions) == 0 {
		return Outcome{Kind: NoExpressions}
	}

	canvas := ComputeCanvas(len(expressions), r.style)
	out := Outcome{Expressions: expressions, Canvas: canvas}
	if err := render(expressions, canvas, r.style, r.output); err != nil {
		out.Kind = RenderFailed
		out.Cause = err
		return out
	}

	out.Kind = Rendered
	out.Path = r.output
	if abs, err := filepath.Abs(r.output); err == nil {
		out.Path = abs
	}
	return out
}
