package latex2png

// Notes:
// - Pixel content is checked coarsely (background corners, some ink);
//   glyph shapes belong to the raster package tests.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-latex2png/internal/mathtext"
)

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding %s: %v", path, err)
	}
	return img
}

// ---------------------------------------------------------------------------
// TestRender - Writing the image
// ---------------------------------------------------------------------------

func TestRender(t *testing.T) {
	t.Parallel()

	style := DefaultStyle()
	exprs := []string{`\frac{a}{b}`, `\sum_{i=1}^{n} i^2`}
	dest := filepath.Join(t.TempDir(), "out.png")

	if err := Render(exprs, ComputeCanvas(len(exprs), style), style, dest); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	img := decodePNG(t, dest)
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		t.Fatalf("empty image %v", b)
	}

	r, g, bl, _ := img.At(b.Min.X, b.Min.Y).RGBA()
	if uint8(r>>8) != style.Background.R || uint8(g>>8) != style.Background.G || uint8(bl>>8) != style.Background.B {
		t.Errorf("corner pixel is not background")
	}
}

func TestRender_Idempotent(t *testing.T) {
	t.Parallel()

	style := DefaultStyle()
	exprs := []string{`\sqrt{x^2 + y^2}`}
	dest := filepath.Join(t.TempDir(), "out.png")
	canvas := ComputeCanvas(1, style)

	if err := Render(exprs, canvas, style, dest); err != nil {
		t.Fatalf("first Render() error = %v", err)
	}
	first, _ := os.ReadFile(dest)
	if err := Render(exprs, canvas, style, dest); err != nil {
		t.Fatalf("second Render() error = %v", err)
	}
	second, _ := os.ReadFile(dest)

	if !bytes.Equal(first, second) {
		t.Error("same input should produce byte-identical files")
	}
}

func TestRender_ReplacesExistingFile(t *testing.T) {
	t.Parallel()

	dest := filepath.Join(t.TempDir(), "out.png")
	if err := os.WriteFile(dest, []byte("stale"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	style := DefaultStyle()
	if err := Render([]string{`\alpha`}, ComputeCanvas(1, style), style, dest); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	decodePNG(t, dest)
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()

	junkFont := filepath.Join(t.TempDir(), "junk.ttf")
	if err := os.WriteFile(junkFont, []byte("definitely not a font"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name    string
		exprs   []string
		modify  func(*Style)
		dest    func(t *testing.T) string
		wantIs  error
		wantMsg string
	}{
		{
			name:    "syntax error names the expression",
			exprs:   []string{`\alpha`, `\frac{1}{2`},
			wantIs:  mathtext.ErrSyntax,
			wantMsg: `expression 2 "\\frac{1}{2"`,
		},
		{
			name:   "invalid style",
			exprs:  []string{`\alpha`},
			modify: func(s *Style) { s.DPI = 0 },
			wantIs: ErrInvalidStyle,
		},
		{
			name:    "unparseable font file",
			exprs:   []string{`\alpha`},
			modify:  func(s *Style) { s.FontFamily = junkFont },
			wantMsg: "font",
		},
		{
			name:  "missing directory",
			exprs: []string{`\alpha`},
			dest: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing", "out.png")
			},
			wantIs: os.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			style := DefaultStyle()
			if tt.modify != nil {
				tt.modify(&style)
			}
			dest := filepath.Join(t.TempDir(), "out.png")
			if tt.dest != nil {
				dest = tt.dest(t)
			}

			err := Render(tt.exprs, ComputeCanvas(len(tt.exprs), DefaultStyle()), style, dest)
			if !errors.Is(err, ErrRender) {
				t.Fatalf("Render() error = %v, want ErrRender", err)
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Errorf("Render() error = %v, want errors.Is %v", err, tt.wantIs)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Render() error = %q, want containing %q", err, tt.wantMsg)
			}
			if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
				t.Errorf("failed render must not leave %s behind", dest)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRenderer - Options and Run outcomes
// ---------------------------------------------------------------------------

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	r := New()
	if r.Style() != DefaultStyle() {
		t.Error("New() should use DefaultStyle")
	}
	if r.OutputPath() != DefaultOutputPath() {
		t.Errorf("OutputPath() = %q, want %q", r.OutputPath(), DefaultOutputPath())
	}
	if !filepath.IsAbs(DefaultOutputPath()) || filepath.Base(DefaultOutputPath()) != DefaultOutputName {
		t.Errorf("DefaultOutputPath() = %q", DefaultOutputPath())
	}
}

func TestNew_Options(t *testing.T) {
	t.Parallel()

	style := DefaultStyle()
	style.FontSize = 20
	r := New(WithStyle(style), WithOutputPath("elsewhere.png"))

	if r.Style().FontSize != 20 {
		t.Errorf("Style().FontSize = %v, want 20", r.Style().FontSize)
	}
	if r.OutputPath() != "elsewhere.png" {
		t.Errorf("OutputPath() = %q", r.OutputPath())
	}
}

func TestWithOutputPath_PanicsOnEmpty(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithOutputPath(\"\") did not panic")
		}
	}()
	WithOutputPath("")
}

func TestRenderer_Run(t *testing.T) {
	t.Parallel()

	t.Run("rendered", func(t *testing.T) {
		t.Parallel()

		dest := filepath.Join(t.TempDir(), "run.png")
		out := New(WithOutputPath(dest)).Run(`First $\alpha^2$, then $$\beta_1$$.`)

		if out.Kind != Rendered {
			t.Fatalf("Kind = %v, want rendered (cause %v)", out.Kind, out.Cause)
		}
		if out.Path != dest {
			t.Errorf("Path = %q, want %q", out.Path, dest)
		}
		want := []string{`\beta_1`, `\alpha^2`}
		if len(out.Expressions) != 2 || out.Expressions[0] != want[0] || out.Expressions[1] != want[1] {
			t.Errorf("Expressions = %q, want %q", out.Expressions, want)
		}
		if out.Canvas != ComputeCanvas(2, DefaultStyle()) {
			t.Errorf("Canvas = %+v", out.Canvas)
		}
		decodePNG(t, dest)
	})

	t.Run("no expressions touches nothing", func(t *testing.T) {
		t.Parallel()

		dest := filepath.Join(t.TempDir(), "run.png")
		if err := os.WriteFile(dest, []byte("previous"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		out := New(WithOutputPath(dest)).Run("Price is $5 and $10")
		if out.Kind != NoExpressions {
			t.Fatalf("Kind = %v, want no expressions", out.Kind)
		}
		if out.Canvas != (CanvasSpec{}) || out.Path != "" || out.Cause != nil {
			t.Errorf("outcome = %+v, want zero fields", out)
		}
		data, _ := os.ReadFile(dest)
		if string(data) != "previous" {
			t.Error("existing file must be left alone")
		}
	})

	t.Run("render failed", func(t *testing.T) {
		t.Parallel()

		dest := filepath.Join(t.TempDir(), "run.png")
		out := New(WithOutputPath(dest)).Run(`Oops $\left( x$`)

		if out.Kind != RenderFailed {
			t.Fatalf("Kind = %v, want render failed", out.Kind)
		}
		if !errors.Is(out.Cause, mathtext.ErrSyntax) {
			t.Errorf("Cause = %v, want ErrSyntax", out.Cause)
		}
		if errors.Is(out.Cause, ErrRender) {
			t.Error("Cause should not carry the ErrRender wrapper")
		}
		if out.Path != "" {
			t.Errorf("Path = %q, want empty", out.Path)
		}
		if len(out.Expressions) != 1 || out.Canvas.Height == 0 {
			t.Errorf("outcome = %+v, want expressions and canvas", out)
		}
	})
}
