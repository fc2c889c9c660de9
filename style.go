package latex2png

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/alnah/go-latex2png/internal/fileutil"
	"github.com/alnah/go-latex2png/internal/raster"
)

// Default style values, matching the popup the renderer was built for.
const (
	DefaultBackground      = "#2d2518"
	DefaultText            = "#f5f5f5"
	DefaultFontFamily      = "go"
	DefaultFontSize        = 14.0
	DefaultDPI             = 150.0
	DefaultCanvasWidth     = 8.0
	DefaultRowHeight       = 0.9
	DefaultMinCanvasHeight = 1.2
	DefaultPadding         = 0.3
)

// Style bounds.
const (
	MaxFontSize = 144.0
	MaxDPI      = 1200.0
	MaxLength   = 100.0 // inches, for any length field
)

// Style controls how expressions are drawn. Lengths are in inches.
type Style struct {
	Background      color.RGBA
	Text            color.RGBA
	FontFamily      string  // "go", "gomedium", "gomono" or a font file path
	FontSize        float64 // points
	DPI             float64
	CanvasWidth     float64
	RowHeight       float64
	MinCanvasHeight float64
	Padding         float64 // around the tight bounding box of all rows
}

// DefaultStyle returns the built-in style.
func DefaultStyle() Style {
	return Style{
		Background:      mustParseColor(DefaultBackground),
		Text:            mustParseColor(DefaultText),
		FontFamily:      DefaultFontFamily,
		FontSize:        DefaultFontSize,
		DPI:             DefaultDPI,
		CanvasWidth:     DefaultCanvasWidth,
		RowHeight:       DefaultRowHeight,
		MinCanvasHeight: DefaultMinCanvasHeight,
		Padding:         DefaultPadding,
	}
}

// Validate checks that every field can be rendered.
func (s Style) Validate() error {
	if s.Background.A != 0xff {
		return fmt.Errorf("%w: background must be opaque", ErrInvalidStyle)
	}
	if s.Text.A != 0xff {
		return fmt.Errorf("%w: text color must be opaque", ErrInvalidStyle)
	}
	if !raster.IsBuiltinFamily(s.FontFamily) && !fileutil.FileExists(s.FontFamily) {
		return fmt.Errorf("%w: font %q is neither %s nor an existing file",
			ErrInvalidStyle, s.FontFamily, strings.Join(raster.Families(), ", "))
	}
	if s.FontSize <= 0 || s.FontSize > MaxFontSize {
		return fmt.Errorf("%w: font size %.2f (must be in (0, %.0f])", ErrInvalidStyle, s.FontSize, MaxFontSize)
	}
	if s.DPI <= 0 || s.DPI > MaxDPI {
		return fmt.Errorf("%w: dpi %.2f (must be in (0, %.0f])", ErrInvalidStyle, s.DPI, MaxDPI)
	}

	lengths := []struct {
		name  string
		value float64
	}{
		{"width", s.CanvasWidth},
		{"row height", s.RowHeight},
		{"min height", s.MinCanvasHeight},
	}
	for _, l := range lengths {
		if l.value <= 0 || l.value > MaxLength {
			return fmt.Errorf("%w: %s %.2f (must be in (0, %.0f])", ErrInvalidStyle, l.name, l.value, MaxLength)
		}
	}
	if s.Padding < 0 || s.Padding > MaxLength {
		return fmt.Errorf("%w: padding %.2f (must be in [0, %.0f])", ErrInvalidStyle, s.Padding, MaxLength)
	}
	return nil
}

// ParseColor parses "#rgb" or "#rrggbb" into an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q (want #rgb or #rrggbb)", ErrInvalidColor, s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q (want #rgb or #rrggbb)", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// FormatColor returns c as "#rrggbb".
func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func mustParseColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
