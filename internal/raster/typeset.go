package raster

import (
	"fmt"
	"math"
	"unicode/utf8"

	"golang.org/x/image/font"

	"github.com/alnah/go-latex2png/internal/mathtext"
)

// Layout constants in em of the current size.
const (
	axisHeight      = 0.25
	ruleThickness   = 0.05
	scriptSpace     = 0.05
	fracGap         = 0.15
	fracPad         = 0.1
	radicalGap      = 0.12
	accentGap       = 0.08
	limitGap        = 0.12
	delimiterSpace  = 0.12
	matrixColumnGap = 1.0
	matrixRowGap    = 0.25
	matrixMargin    = 0.2
	largeOperator   = 1.4
	maxStretch      = 8.0
)

// typesetter turns node trees into boxes at a base point size. Level 0 is
// text size, 1 script size and 2 or more scriptscript size.
type typesetter struct {
	faces *faceSet
	size  float64
}

func levelScale(level int) float64 {
	switch level {
	case 0:
		return 1
	case 1:
		return 0.7
	}
	return 0.5
}

// pt returns the font size in points at level.
func (t *typesetter) pt(level int) float64 { return t.size * levelScale(level) }

// em returns the em in pixels at level.
func (t *typesetter) em(level int) float64 { return t.pt(level) * t.faces.dpi / 72 }

func (t *typesetter) axis(level int) float64 { return axisHeight * t.em(level) }

// rule returns the line thickness at level, never thinner than a pixel.
func (t *typesetter) rule(level int) float64 {
	return math.Max(1, ruleThickness*t.em(level))
}

func (t *typesetter) layout(n *mathtext.Node, level int) (*box, error) {
	if n == nil {
		return &box{}, nil
	}
	switch n.Kind {
	case mathtext.KindRow:
		return t.row(n, level)
	case mathtext.KindSymbol:
		return t.symbol(n, level)
	case mathtext.KindSpace:
		return &box{width: n.Width * t.em(level)}, nil
	case mathtext.KindScript:
		return t.script(n, level)
	case mathtext.KindFrac:
		return t.frac(n, level)
	case mathtext.KindSqrt:
		return t.sqrt(n, level)
	case mathtext.KindAccent:
		return t.accent(n, level)
	case mathtext.KindFenced:
		return t.fenced(n, level)
	case mathtext.KindMatrix:
		return t.matrix(n, level)
	}
	return nil, fmt.Errorf("unknown node kind %d", n.Kind)
}

// text lays out s in style at size points, measuring ink rather than font
// ascent so stacked material sits close to what is drawn.
func (t *typesetter) text(s string, style mathtext.Font, size float64) (*box, error) {
	runs, err := t.faces.runs(s, style, size)
	if err != nil {
		return nil, err
	}
	b := &box{}
	inked := false
	for _, r := range runs {
		bounds, advance := font.BoundString(r.face, r.text)
		if bounds.Max.X > bounds.Min.X && bounds.Max.Y > bounds.Min.Y {
			top, bottom := -toFloat(bounds.Min.Y), toFloat(bounds.Max.Y)
			if !inked {
				b.ascent, b.descent = top, bottom
				inked = true
			} else {
				b.ascent = math.Max(b.ascent, top)
				b.descent = math.Max(b.descent, bottom)
			}
		}
		b.items = append(b.items, item{face: r.face, text: r.text, x: b.width})
		b.width += toFloat(advance)
	}
	return b, nil
}

func (t *typesetter) symbol(n *mathtext.Node, level int) (*box, error) {
	size := t.pt(level)
	if n.Large {
		size *= largeOperator
	}
	b, err := t.text(n.Text, n.Font, size)
	if err != nil {
		return nil, err
	}
	if n.Large {
		t.centerOnAxis(b, level)
	}
	return b, nil
}

// centerOnAxis moves b so the middle of its ink sits on the math axis.
func (t *typesetter) centerOnAxis(b *box, level int) {
	b.shift(-t.axis(level) - (b.descent-b.ascent)/2)
}

func (t *typesetter) row(n *mathtext.Node, level int) (*box, error) {
	b := &box{}
	classes := spacingClasses(n.Children)
	prev := -1
	for i, c := range n.Children {
		cb, err := t.layout(c, level)
		if err != nil {
			return nil, err
		}
		if c.Kind != mathtext.KindSpace {
			if prev >= 0 && level == 0 {
				b.width += interAtomSpace(classes[prev], classes[i]) * t.em(level)
			}
			prev = i
		}
		b.add(cb, b.width, 0)
		b.grow(cb, 0)
		b.width += cb.width
	}
	return b, nil
}

// atomClass returns the spacing class of a row child. Groups and compound
// nodes act as ordinary atoms; a scripted atom keeps its base's class.
func atomClass(n *mathtext.Node) mathtext.Class {
	switch n.Kind {
	case mathtext.KindSymbol:
		if n.Large {
			return mathtext.ClassOp
		}
		return n.Class
	case mathtext.KindScript:
		if n.Base != nil && (n.Base.Kind == mathtext.KindSymbol || n.Base.Kind == mathtext.KindScript) {
			return atomClass(n.Base)
		}
	}
	return mathtext.ClassOrd
}

// spacingClasses returns the class of each child after binary operators in
// a non-binary position are demoted to ordinary atoms. Space children keep
// a zero entry and are skipped when spacing.
func spacingClasses(children []*mathtext.Node) []mathtext.Class {
	classes := make([]mathtext.Class, len(children))
	prev := -1
	for i, c := range children {
		if c.Kind == mathtext.KindSpace {
			continue
		}
		k := atomClass(c)
		if k == mathtext.ClassBin {
			if prev < 0 {
				k = mathtext.ClassOrd
			} else {
				switch classes[prev] {
				case mathtext.ClassBin, mathtext.ClassOp, mathtext.ClassRel, mathtext.ClassOpen, mathtext.ClassPunct:
					k = mathtext.ClassOrd
				}
			}
		}
		if prev >= 0 && classes[prev] == mathtext.ClassBin {
			switch k {
			case mathtext.ClassRel, mathtext.ClassClose, mathtext.ClassPunct:
				classes[prev] = mathtext.ClassOrd
			}
		}
		classes[i] = k
		prev = i
	}
	if prev >= 0 && classes[prev] == mathtext.ClassBin {
		classes[prev] = mathtext.ClassOrd
	}
	return classes
}

// interAtomSpace returns the space in em between adjacent atoms.
func interAtomSpace(left, right mathtext.Class) float64 {
	const (
		thin  = 3.0 / 18
		med   = 4.0 / 18
		thick = 5.0 / 18
	)
	switch {
	case left == mathtext.ClassBin || right == mathtext.ClassBin:
		return med
	case left == mathtext.ClassRel && right == mathtext.ClassRel:
		return 0
	case left == mathtext.ClassRel:
		if right == mathtext.ClassClose || right == mathtext.ClassPunct {
			return 0
		}
		return thick
	case right == mathtext.ClassRel:
		if left == mathtext.ClassOpen {
			return 0
		}
		return thick
	case left == mathtext.ClassPunct:
		return thin
	case left == mathtext.ClassOp && (right == mathtext.ClassOrd || right == mathtext.ClassOp):
		return thin
	case right == mathtext.ClassOp && (left == mathtext.ClassOrd || left == mathtext.ClassClose):
		return thin
	}
	return 0
}

func (t *typesetter) script(n *mathtext.Node, level int) (*box, error) {
	base, err := t.layout(n.Base, level)
	if err != nil {
		return nil, err
	}
	var sup, sub *box
	if n.Sup != nil {
		if sup, err = t.layout(n.Sup, level+1); err != nil {
			return nil, err
		}
	}
	if n.Sub != nil {
		if sub, err = t.layout(n.Sub, level+1); err != nil {
			return nil, err
		}
	}
	em := t.em(level)

	if n.Base != nil && n.Base.Kind == mathtext.KindSymbol && n.Base.Large {
		return limits(base, sup, sub, limitGap*em), nil
	}

	b := &box{width: base.width, ascent: base.ascent, descent: base.descent}
	b.add(base, 0, 0)
	var supUp, subDown float64
	if sup != nil {
		supUp = math.Max(0.45*em, base.ascent-0.2*em)
		if supUp-sup.descent < axisHeight*em {
			supUp = axisHeight*em + sup.descent
		}
	}
	if sub != nil {
		subDown = math.Max(0.2*em, base.descent+0.05*em)
		subDown = math.Max(subDown, sub.ascent-0.35*em)
		if sup != nil {
			gap := (supUp - sup.descent) - (sub.ascent - subDown)
			if gap < 0.15*em {
				subDown += 0.15*em - gap
			}
		}
	}

	scripts := 0.0
	if sup != nil {
		b.add(sup, base.width, -supUp)
		b.grow(sup, -supUp)
		scripts = sup.width
	}
	if sub != nil {
		b.add(sub, base.width, subDown)
		b.grow(sub, subDown)
		scripts = math.Max(scripts, sub.width)
	}
	b.width = base.width + scripts + scriptSpace*em
	return b, nil
}

// limits stacks sup above and sub below a large operator, all centered.
func limits(base, sup, sub *box, gap float64) *box {
	w := base.width
	if sup != nil {
		w = math.Max(w, sup.width)
	}
	if sub != nil {
		w = math.Max(w, sub.width)
	}
	b := &box{width: w, ascent: base.ascent, descent: base.descent}
	b.add(base, (w-base.width)/2, 0)
	if sup != nil {
		y := -(base.ascent + gap + sup.descent)
		b.add(sup, (w-sup.width)/2, y)
		b.grow(sup, y)
	}
	if sub != nil {
		y := base.descent + gap + sub.ascent
		b.add(sub, (w-sub.width)/2, y)
		b.grow(sub, y)
	}
	return b
}

func (t *typesetter) frac(n *mathtext.Node, level int) (*box, error) {
	inner := level
	if level > 0 {
		inner = level + 1
	}
	num, err := t.layout(n.Num, inner)
	if err != nil {
		return nil, err
	}
	den, err := t.layout(n.Den, inner)
	if err != nil {
		return nil, err
	}
	em := t.em(level)
	th := t.rule(level)
	a := t.axis(level)
	gap := fracGap * em
	pad := fracPad * em

	w := math.Max(num.width, den.width) + 2*pad
	numY := -(a + th/2 + gap + num.descent)
	denY := -a + th/2 + gap + den.ascent

	b := &box{width: w}
	b.add(num, (w-num.width)/2, numY)
	b.grow(num, numY)
	b.add(den, (w-den.width)/2, denY)
	b.grow(den, denY)
	if !n.NoRule {
		b.rule(pad/2, -a-th/2, w-pad/2, -a+th/2)
	}
	return b, nil
}

func (t *typesetter) sqrt(n *mathtext.Node, level int) (*box, error) {
	body, err := t.layout(n.Body, level)
	if err != nil {
		return nil, err
	}
	em := t.em(level)
	th := t.rule(level)

	top := -(math.Max(body.ascent, 0.7*em) + radicalGap*em)
	bottom := math.Max(body.descent, 0.15*em)
	h := bottom - top
	sw := 0.4*em + 0.1*h

	var index *box
	indexY := bottom - 0.6*h
	offset := 0.0
	if n.Index != nil {
		if index, err = t.layout(n.Index, level+2); err != nil {
			return nil, err
		}
		indexY -= index.descent
		if extra := index.width - 0.55*sw; extra > 0 {
			offset = extra
		}
	}

	b := &box{}
	tick := point{offset, bottom - 0.45*h}
	peak := point{offset + 0.2*sw, bottom - 0.5*h}
	foot := point{offset + 0.5*sw, bottom}
	head := point{offset + sw, top - th/2}
	b.stroke(tick, peak, th)
	b.stroke(peak, foot, 2*th)
	b.stroke(foot, head, th)

	bodyX := offset + sw + 0.05*em
	b.rule(head.x, top-th, bodyX+body.width+0.05*em, top)
	b.add(body, bodyX, 0)

	b.width = bodyX + body.width + 0.1*em
	b.ascent = -(top - th)
	b.descent = bottom + th/2
	b.grow(body, 0)
	if index != nil {
		b.add(index, offset+0.55*sw-index.width, indexY)
		b.grow(index, indexY)
	}
	return b, nil
}

func (t *typesetter) accent(n *mathtext.Node, level int) (*box, error) {
	body, err := t.layout(n.Body, level)
	if err != nil {
		return nil, err
	}
	em := t.em(level)
	gap := accentGap * em

	if n.Text == "" {
		th := t.rule(level)
		y := -(body.ascent + gap)
		b := &box{width: body.width, ascent: body.ascent + gap + th, descent: body.descent}
		b.add(body, 0, 0)
		b.rule(0, y-th, body.width, y)
		return b, nil
	}

	size := t.pt(level)
	if n.Text == "→" {
		size = t.pt(level + 1)
	}
	mark, err := t.text(n.Text, mathtext.FontRoman, size)
	if err != nil {
		return nil, err
	}
	w := math.Max(body.width, mark.width)
	b := &box{width: w, ascent: body.ascent, descent: body.descent}
	b.add(body, (w-body.width)/2, 0)
	y := -(body.ascent + gap) - mark.descent
	b.add(mark, (w-mark.width)/2, y)
	b.grow(mark, y)
	return b, nil
}

func (t *typesetter) fenced(n *mathtext.Node, level int) (*box, error) {
	body, err := t.layout(n.Body, level)
	if err != nil {
		return nil, err
	}
	a := t.axis(level)
	half := math.Max(body.ascent-a, body.descent+a) + 0.05*t.em(level)

	left, err := t.delimiter(n.Left, half, level)
	if err != nil {
		return nil, err
	}
	right, err := t.delimiter(n.Right, half, level)
	if err != nil {
		return nil, err
	}

	b := &box{}
	for _, part := range []*box{left, body, right} {
		b.add(part, b.width, 0)
		b.grow(part, 0)
		b.width += part.width
	}
	return b, nil
}

// delimiter returns d centered on the axis and at least 2*half tall. Tall
// delimiters are drawn from the glyph outline stretched vertically.
func (t *typesetter) delimiter(d string, half float64, level int) (*box, error) {
	if d == "" {
		return &box{width: delimiterSpace * t.em(level)}, nil
	}
	size := t.pt(level)
	b, err := t.text(d, mathtext.FontRoman, size)
	if err != nil {
		return nil, err
	}
	h := b.ascent + b.descent
	if h <= 0 || h >= 2*half || utf8.RuneCountInString(d) != 1 {
		t.centerOnAxis(b, level)
		return b, nil
	}

	r, _ := utf8.DecodeRuneInString(d)
	outline, advance, err := t.faces.glyphOutline(r, size)
	if err != nil {
		return nil, err
	}
	sy := math.Min(2*half/h, maxStretch)
	sx := 1 + (sy-1)*0.15
	stretched := &box{width: advance * sx, ascent: b.ascent * sy, descent: b.descent * sy}
	for i := range outline {
		for k := range outline[i].pts {
			outline[i].pts[k].x *= sx
			outline[i].pts[k].y *= sy
		}
	}
	stretched.items = []item{{outline: outline}}
	t.centerOnAxis(stretched, level)
	return stretched, nil
}

func (t *typesetter) matrix(n *mathtext.Node, level int) (*box, error) {
	em := t.em(level)
	cols := 0
	for _, r := range n.Cells {
		cols = max(cols, len(r))
	}
	colW := make([]float64, cols)
	rowAsc := make([]float64, len(n.Cells))
	rowDesc := make([]float64, len(n.Cells))
	cells := make([][]*box, len(n.Cells))
	for i, r := range n.Cells {
		rowAsc[i], rowDesc[i] = 0.7*em, 0.3*em
		for j, c := range r {
			cb, err := t.layout(c, level)
			if err != nil {
				return nil, err
			}
			cells[i] = append(cells[i], cb)
			colW[j] = math.Max(colW[j], cb.width)
			rowAsc[i] = math.Max(rowAsc[i], cb.ascent)
			rowDesc[i] = math.Max(rowDesc[i], cb.descent)
		}
	}

	height := 0.0
	for i := range n.Cells {
		height += rowAsc[i] + rowDesc[i]
		if i > 0 {
			height += matrixRowGap * em
		}
	}
	top := -t.axis(level) - height/2

	b := &box{ascent: -top, descent: top + height}
	margin := matrixMargin * em
	y := top
	for i, r := range cells {
		y += rowAsc[i]
		x := margin
		for j, cb := range r {
			dx := (colW[j] - cb.width) / 2
			if n.AlignLeft {
				dx = 0
			}
			b.add(cb, x+dx, y)
			x += colW[j] + matrixColumnGap*em
		}
		y += rowDesc[i] + matrixRowGap*em
	}

	b.width = 2 * margin
	for j, w := range colW {
		b.width += w
		if j > 0 {
			b.width += matrixColumnGap * em
		}
	}
	return b, nil
}
