package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/alnah/go-latex2png/internal/mathtext"
)

// Picture size limits. MaxDimension matches the per-side limit of common
// raster backends; MaxPixels keeps the RGBA buffer under 1 GiB.
const (
	MaxDimension = 1<<16 - 1
	MaxPixels    = 1 << 28
)

var (
	ErrNoRows   = errors.New("nothing to draw")
	ErrTooLarge = errors.New("picture too large")
)

// Options describes the picture Draw produces. Lengths are in inches and
// the font size in points.
type Options struct {
	Background color.RGBA
	Foreground color.RGBA
	Family     string
	FontSize   float64
	DPI        float64
	Width      float64
	Height     float64
	Padding    float64
}

// placed is a row box with its baseline origin on the canvas.
type placed struct {
	b    *box
	x, y float64
}

// Draw lays out rows on a Width by Height canvas and returns the picture
// cropped to the rows' bounding box plus Padding on every side. Row i of n
// is centered horizontally and vertically on (i+0.5)/n of the height,
// counted from the top. Fonts are released before Draw returns.
func Draw(rows []*mathtext.Node, opts Options) (img *image.RGBA, err error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	faces, err := loadFaces(opts.Family, opts.DPI)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := faces.Close(); cerr != nil && err == nil {
			img, err = nil, fmt.Errorf("%w: closing faces: %v", ErrFont, cerr)
		}
	}()

	ts := &typesetter{faces: faces, size: opts.FontSize}
	width, height := opts.Width*opts.DPI, opts.Height*opts.DPI
	n := float64(len(rows))

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	out := make([]placed, 0, len(rows))
	for i, r := range rows {
		b, err := ts.layout(r, 0)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		cy := (float64(i) + 0.5) / n * height
		p := placed{b: b, x: width/2 - b.width/2, y: cy + (b.ascent-b.descent)/2}
		out = append(out, p)

		minX = math.Min(minX, p.x)
		maxX = math.Max(maxX, p.x+b.width)
		minY = math.Min(minY, p.y-b.ascent)
		maxY = math.Max(maxY, p.y+b.descent)
	}

	pad := opts.Padding * opts.DPI
	x0, y0 := math.Floor(minX-pad), math.Floor(minY-pad)
	x1, y1 := math.Ceil(maxX+pad), math.Ceil(maxY+pad)
	w, h := max(int(x1-x0), 1), max(int(y1-y0), 1)
	if err := checkSize(w, h); err != nil {
		return nil, err
	}

	img = image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	ink := image.NewUniform(opts.Foreground)
	z := vector.NewRasterizer(0, 0)
	for _, p := range out {
		for _, it := range p.b.items {
			paint(img, ink, z, it, p.x-x0, p.y-y0)
		}
	}
	return img, nil
}

// checkSize rejects pictures whose sides or area exceed the limits.
func checkSize(w, h int) error {
	if w > MaxDimension || h > MaxDimension {
		return fmt.Errorf("%w: %dx%d pixels (max %d per side)", ErrTooLarge, w, h, MaxDimension)
	}
	if int64(w)*int64(h) > MaxPixels {
		return fmt.Errorf("%w: %dx%d pixels (max %d in total)", ErrTooLarge, w, h, MaxPixels)
	}
	return nil
}

// paint draws it with its box origin at (ox, oy) on dst.
func paint(dst *image.RGBA, ink image.Image, z *vector.Rasterizer, it item, ox, oy float64) {
	if it.outline == nil {
		d := font.Drawer{
			Dst:  dst,
			Src:  ink,
			Face: it.face,
			Dot:  fixed.Point26_6{X: toFixed(ox + it.x), Y: toFixed(oy + it.y)},
		}
		d.DrawString(it.text)
		return
	}

	// Rasterize over the outline's own bounds only.
	r := outlineBounds(it.outline, ox, oy).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	z.Reset(r.Dx(), r.Dy())
	at := func(p point) (float32, float32) {
		return float32(ox + p.x - float64(r.Min.X)), float32(oy + p.y - float64(r.Min.Y))
	}
	for i, s := range it.outline {
		switch s.op {
		case sfnt.SegmentOpMoveTo:
			if i > 0 {
				z.ClosePath()
			}
			z.MoveTo(at(s.pts[0]))
		case sfnt.SegmentOpLineTo:
			z.LineTo(at(s.pts[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := at(s.pts[0])
			cx, cy := at(s.pts[1])
			z.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := at(s.pts[0])
			cx, cy := at(s.pts[1])
			dx, dy := at(s.pts[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	z.ClosePath()
	z.Draw(dst, r, ink, image.Point{})
}

// outlineBounds returns the pixel rectangle holding every point of outline,
// control points included, offset by (ox, oy) and grown by 1px for
// antialiasing.
func outlineBounds(outline []segment, ox, oy float64) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range outline {
		for _, p := range s.pts[:segmentPoints(s.op)] {
			minX, maxX = math.Min(minX, p.x), math.Max(maxX, p.x)
			minY, maxY = math.Min(minY, p.y), math.Max(maxY, p.y)
		}
	}
	if minX > maxX {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(ox+minX))-1, int(math.Floor(oy+minY))-1,
		int(math.Ceil(ox+maxX))+1, int(math.Ceil(oy+maxY))+1,
	)
}

// segmentPoints is the number of points op uses.
func segmentPoints(op sfnt.SegmentOp) int {
	switch op {
	case sfnt.SegmentOpQuadTo:
		return 2
	case sfnt.SegmentOpCubeTo:
		return 3
	}
	return 1
}
