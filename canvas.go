package latex2png

import "math"

// CanvasSpec is the size of the figure expressions are laid out on, in
// inches. The written image is cropped from it.
type CanvasSpec struct {
	Width  float64
	Height float64
}

// Pixels returns the canvas size in whole pixels at dpi.
func (c CanvasSpec) Pixels(dpi float64) (width, height int) {
	return int(math.Round(c.Width * dpi)), int(math.Round(c.Height * dpi))
}

// ComputeCanvas returns the canvas for n stacked expressions: the style's
// width, and n row heights but never less than the minimum height.
// Panics if n <= 0 (programmer error: nothing is rendered without
// expressions).
func ComputeCanvas(n int, style Style) CanvasSpec {
	if n <= 0 {
		panic("latex2png: ComputeCanvas requires at least one expression")
	}
	return CanvasSpec{
		Width:  style.CanvasWidth,
		Height: math.Max(style.MinCanvasHeight, float64(n)*style.RowHeight),
	}
}
