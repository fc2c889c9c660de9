package raster

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

type point struct{ x, y float64 }

// segment is one outline step; pts holds 1, 2 or 3 points depending on op.
type segment struct {
	op  sfnt.SegmentOp
	pts [3]point
}

// item is either a glyph run with its baseline origin at (x, y) or a filled
// outline whose points carry their own position. Coordinates are pixels,
// y down, relative to the owning box's baseline origin.
type item struct {
	face    font.Face
	text    string
	x, y    float64
	outline []segment
}

// box is a laid out piece of math. Ascent and descent are measured from the
// baseline and may be negative for ink that does not reach it.
type box struct {
	width   float64
	ascent  float64
	descent float64
	items   []item
}

// add copies the items of c into b, shifted by (dx, dy).
func (b *box) add(c *box, dx, dy float64) {
	for _, it := range c.items {
		if it.outline == nil {
			it.x += dx
			it.y += dy
		} else {
			moved := make([]segment, len(it.outline))
			for i, s := range it.outline {
				for k := range s.pts {
					s.pts[k].x += dx
					s.pts[k].y += dy
				}
				moved[i] = s
			}
			it.outline = moved
		}
		b.items = append(b.items, it)
	}
}

// grow extends b's vertical extent to cover c placed at dy.
func (b *box) grow(c *box, dy float64) {
	b.ascent = math.Max(b.ascent, c.ascent-dy)
	b.descent = math.Max(b.descent, c.descent+dy)
}

// shift moves b's content down by dy.
func (b *box) shift(dy float64) {
	moved := &box{}
	moved.add(b, 0, dy)
	b.items = moved.items
	b.ascent -= dy
	b.descent += dy
}

func (b *box) polygon(pts ...point) {
	outline := make([]segment, len(pts))
	for i, p := range pts {
		op := sfnt.SegmentOpLineTo
		if i == 0 {
			op = sfnt.SegmentOpMoveTo
		}
		outline[i] = segment{op: op, pts: [3]point{p}}
	}
	b.items = append(b.items, item{outline: outline})
}

// rule fills the rectangle spanning (x0, y0) to (x1, y1).
func (b *box) rule(x0, y0, x1, y1 float64) {
	b.polygon(point{x0, y0}, point{x1, y0}, point{x1, y1}, point{x0, y1})
}

// stroke fills a line of width w from p to q.
func (b *box) stroke(p, q point, w float64) {
	dx, dy := q.x-p.x, q.y-p.y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*w/2, dx/l*w/2
	b.polygon(
		point{p.x + nx, p.y + ny},
		point{q.x + nx, q.y + ny},
		point{q.x - nx, q.y - ny},
		point{p.x - nx, p.y - ny},
	)
}

func toFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }

func toFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(math.Round(v * 64)) }
