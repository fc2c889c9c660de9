package mathtext

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrSyntax indicates an expression that cannot be laid out.
var ErrSyntax = errors.New("math syntax error")

// stop conditions for parseRow.
type stopSet int

const (
	stopBrace   stopSet = 1 << iota // '}'
	stopBracket                     // ']' closing an optional argument
	stopRight                       // \right
	stopCell                        // '&' or \\ inside an environment
	stopEnd                         // \end
)

type fontMode int

const (
	modeAuto fontMode = iota
	modeRoman
	modeItalic
	modeBold
	modeBlackboard
)

type parser struct {
	src  []rune
	pos  int
	mode fontMode
}

// Parse parses expr, the content between math delimiters, into a row node.
func Parse(expr string) (*Node, error) {
	p := &parser{src: []rune(expr)}
	n, err := p.parseRow(0)
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, p.errorf("unexpected %q", p.peek())
	}
	return n, nil
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s at offset %d", ErrSyntax, fmt.Sprintf(format, args...), p.pos)
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) next() rune {
	r := p.peek()
	p.pos++
	return r
}

func (p *parser) skipSpace() {
	for !p.eof() && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *parser) expect(r rune) error {
	p.skipSpace()
	if p.peek() != r || p.eof() {
		return p.errorf("missing %q", r)
	}
	p.pos++
	return nil
}

// peekCommand reports whether the input at pos is \name, not followed by
// another letter.
func (p *parser) peekCommand(name string) bool {
	if p.peek() != '\\' {
		return false
	}
	end := p.pos + 1 + len(name)
	if end > len(p.src) || string(p.src[p.pos+1:end]) != name {
		return false
	}
	return end == len(p.src) || !isLetter(p.src[end])
}

func (p *parser) peekRowBreak() bool {
	return p.pos+1 < len(p.src) && p.src[p.pos] == '\\' && p.src[p.pos+1] == '\\'
}

func (p *parser) readLetters() string {
	start := p.pos
	for !p.eof() && isLetter(p.src[p.pos]) {
		p.pos++
	}
	return string(p.src[start:p.pos])
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// parseRow reads atoms until end of input or a terminator in stop. The
// terminator is left unconsumed.
func (p *parser) parseRow(stop stopSet) (*Node, error) {
	n := row()
	for {
		p.skipSpace()
		if p.eof() {
			switch {
			case stop&stopBrace != 0:
				return nil, p.errorf("missing '}'")
			case stop&stopBracket != 0:
				return nil, p.errorf("missing ']'")
			case stop&stopRight != 0:
				return nil, p.errorf(`missing \right`)
			case stop&stopEnd != 0:
				return nil, p.errorf(`missing \end`)
			}
			return n, nil
		}

		switch r := p.peek(); {
		case r == '}':
			if stop&stopBrace != 0 {
				return n, nil
			}
			return nil, p.errorf("unexpected '}'")
		case r == ']' && stop&stopBracket != 0:
			return n, nil
		case r == '&' && stop&stopCell != 0:
			return n, nil
		case stop&stopCell != 0 && p.peekRowBreak():
			return n, nil
		case stop&stopRight != 0 && p.peekCommand("right"):
			return n, nil
		case stop&stopEnd != 0 && p.peekCommand("end"):
			return n, nil
		}

		atom, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if atom == nil {
			if r := p.peek(); r != '^' && r != '_' && r != '\'' {
				continue
			}
			atom = row()
		}
		atom, err = p.parseScripts(atom)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, atom)
	}
}

// parseAtom reads one atom without scripts. A nil node means the input was
// consumed but draws nothing.
func (p *parser) parseAtom() (*Node, error) {
	p.skipSpace()
	if p.eof() {
		return nil, p.errorf("unexpected end of expression")
	}
	r := p.next()
	switch r {
	case '{':
		g, err := p.parseRow(stopBrace)
		if err != nil {
			return nil, err
		}
		if err := p.expect('}'); err != nil {
			return nil, err
		}
		return g, nil
	case '}':
		p.pos--
		return nil, p.errorf("unexpected '}'")
	case '\\':
		return p.parseCommand()
	case '^', '_':
		// Script with no base; the caller attaches it to an empty row.
		p.pos--
		return nil, nil
	case '\'':
		return symbol("′", FontRoman, ClassOrd), nil
	case '~':
		return space(1.0 / 3), nil
	case '&':
		// Alignment points outside matrix environments only align.
		return nil, nil
	}
	return p.charNode(r), nil
}

func (p *parser) charNode(r rune) *Node {
	switch {
	case unicode.IsLetter(r):
		return p.letterNode(r)
	case unicode.IsDigit(r):
		if p.mode == modeBold {
			return symbol(string(r), FontBold, ClassOrd)
		}
		return symbol(string(r), FontRoman, ClassOrd)
	}
	switch r {
	case '+':
		return symbol("+", FontRoman, ClassBin)
	case '-':
		return symbol("−", FontRoman, ClassBin)
	case '*':
		return symbol("∗", FontRoman, ClassBin)
	case '=', '<', '>', ':':
		return symbol(string(r), FontRoman, ClassRel)
	case '(', '[':
		return symbol(string(r), FontRoman, ClassOpen)
	case ')', ']':
		return symbol(string(r), FontRoman, ClassClose)
	case ',', ';':
		return symbol(string(r), FontRoman, ClassPunct)
	}
	return symbol(string(r), FontRoman, ClassOrd)
}

func (p *parser) letterNode(r rune) *Node {
	switch p.mode {
	case modeRoman:
		return symbol(string(r), FontRoman, ClassOrd)
	case modeBold:
		return symbol(string(r), FontBold, ClassOrd)
	case modeBlackboard:
		if bb, ok := blackboard[r]; ok {
			return symbol(bb, FontRoman, ClassOrd)
		}
		return symbol(string(r), FontBold, ClassOrd)
	}
	return symbol(string(r), FontItalic, ClassOrd)
}

// parseScripts attaches any ^, _ and prime suffixes to base.
func (p *parser) parseScripts(base *Node) (*Node, error) {
	var sup, sub *Node
	primes := 0
loop:
	for {
		p.skipSpace()
		switch p.peek() {
		case '^':
			p.pos++
			if sup != nil {
				return nil, p.errorf("double superscript")
			}
			arg, err := p.parseArgument()
			if err != nil {
				return nil, err
			}
			sup = arg
		case '_':
			p.pos++
			if sub != nil {
				return nil, p.errorf("double subscript")
			}
			arg, err := p.parseArgument()
			if err != nil {
				return nil, err
			}
			sub = arg
		case '\'':
			if sup != nil {
				return nil, p.errorf("double superscript")
			}
			p.pos++
			primes++
		default:
			break loop
		}
	}
	if primes > 0 {
		prime := symbol(strings.Repeat("′", primes), FontRoman, ClassOrd)
		// Primes were collected before any ^, which is the only legal order.
		if sup == nil {
			sup = prime
		} else {
			sup = row(prime, sup)
		}
	}
	if sup == nil && sub == nil {
		return base, nil
	}
	return &Node{Kind: KindScript, Base: base, Sup: sup, Sub: sub}, nil
}

// parseArgument reads a braced group or a single atom.
func (p *parser) parseArgument() (*Node, error) {
	p.skipSpace()
	switch {
	case p.eof():
		return nil, p.errorf("missing argument")
	case p.peek() == '}', p.peek() == '^', p.peek() == '_', p.peek() == '&':
		return nil, p.errorf("missing argument")
	}
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if atom == nil {
		return row(), nil
	}
	return atom, nil
}

// parseStyled reads an argument with letters drawn in mode.
func (p *parser) parseStyled(mode fontMode) (*Node, error) {
	saved := p.mode
	p.mode = mode
	defer func() { p.mode = saved }()
	return p.parseArgument()
}

// parseRawGroup reads a braced argument verbatim, dropping inner braces.
func (p *parser) parseRawGroup() (string, error) {
	p.skipSpace()
	if p.eof() {
		return "", p.errorf("missing argument")
	}
	if p.peek() != '{' {
		return string(p.next()), nil
	}
	p.pos++
	var b strings.Builder
	depth := 1
	for !p.eof() {
		r := p.next()
		switch r {
		case '{':
			depth++
			continue
		case '}':
			depth--
			if depth == 0 {
				return b.String(), nil
			}
			continue
		case '\\':
			// Escaped characters keep their literal meaning.
			if !p.eof() && !isLetter(p.peek()) {
				r = p.next()
			}
		}
		b.WriteRune(r)
	}
	return "", p.errorf("missing '}'")
}

func (p *parser) parseCommand() (*Node, error) {
	if p.eof() {
		return nil, p.errorf("trailing backslash")
	}
	if !isLetter(p.peek()) {
		return p.controlSymbol(p.next()), nil
	}
	name := p.readLetters()

	if def, ok := symbols[name]; ok {
		n := symbol(def.text, def.font, def.class)
		n.Large = def.large
		if p.mode == modeBold && def.font == FontItalic {
			n.Font = FontBoldItalic
		}
		return n, nil
	}
	if functions[name] {
		return symbol(name, FontRoman, ClassOp), nil
	}
	if em, ok := spacing[name]; ok {
		return space(em), nil
	}
	if accent, ok := accents[name]; ok {
		body, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindAccent, Text: accent, Body: body}, nil
	}

	switch name {
	case "frac", "dfrac", "tfrac", "cfrac":
		return p.parseFrac(false)
	case "binom", "dbinom", "tbinom":
		frac, err := p.parseFrac(true)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindFenced, Left: "(", Right: ")", Body: frac}, nil
	case "sqrt":
		return p.parseSqrt()
	case "mathrm", "mathsf", "mathtt", "mathup":
		return p.parseStyled(modeRoman)
	case "mathit", "mathcal", "mathscr", "mathfrak":
		return p.parseStyled(modeItalic)
	case "mathbf", "boldsymbol", "bm", "pmb":
		return p.parseStyled(modeBold)
	case "mathbb":
		return p.parseStyled(modeBlackboard)
	case "underline", "mathnormal", "displaylines":
		return p.parseArgument()
	case "text", "textrm", "textnormal", "mbox", "textsf", "texttt", "textup":
		return p.parseText(FontRoman, ClassOrd)
	case "textit", "emph":
		return p.parseText(FontItalic, ClassOrd)
	case "textbf":
		return p.parseText(FontBold, ClassOrd)
	case "operatorname":
		return p.parseText(FontRoman, ClassOp)
	case "mod", "bmod":
		return symbol("mod", FontRoman, ClassBin), nil
	case "pmod":
		arg, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		return row(space(1), symbol("(mod", FontRoman, ClassOrd), space(1.0/3), arg, symbol(")", FontRoman, ClassClose)), nil
	case "left":
		return p.parseFenced()
	case "right":
		return nil, p.errorf(`unmatched \right`)
	case "middle", "big", "Big", "bigg", "Bigg",
		"bigl", "bigr", "bigm", "Bigl", "Bigr", "Bigm",
		"biggl", "biggr", "Biggl", "Biggr":
		d, err := p.parseDelimiter()
		if err != nil {
			return nil, err
		}
		if d == "" {
			return nil, nil
		}
		return symbol(d, FontRoman, ClassOrd), nil
	case "begin":
		return p.parseEnvironment()
	case "end":
		return nil, p.errorf(`unmatched \end`)
	case "not":
		return p.parseNot()
	case "label", "tag", "hspace", "vspace", "phantom", "hphantom", "vphantom":
		if _, err := p.parseRawGroup(); err != nil {
			return nil, err
		}
		return nil, nil
	case "displaystyle", "textstyle", "scriptstyle", "scriptscriptstyle",
		"limits", "nolimits", "nonumber", "notag":
		return nil, nil
	}

	// Unknown commands are shown by name rather than rejected.
	return symbol(name, FontRoman, ClassOrd), nil
}

func (p *parser) controlSymbol(r rune) *Node {
	switch r {
	case ',':
		return space(3.0 / 18)
	case ':', '>':
		return space(4.0 / 18)
	case ';':
		return space(5.0 / 18)
	case '!':
		return space(-3.0 / 18)
	case ' ':
		return space(1.0 / 3)
	case '\\':
		// Line break outside an environment.
		return space(1)
	case '{':
		return symbol("{", FontRoman, ClassOpen)
	case '}':
		return symbol("}", FontRoman, ClassClose)
	case '|':
		return symbol("‖", FontRoman, ClassOrd)
	}
	return symbol(string(r), FontRoman, ClassOrd)
}

func (p *parser) parseFrac(noRule bool) (*Node, error) {
	num, err := p.parseArgument()
	if err != nil {
		return nil, err
	}
	den, err := p.parseArgument()
	if err != nil {
		return nil, err
	}
	return &Node{Kind: KindFrac, Num: num, Den: den, NoRule: noRule}, nil
}

func (p *parser) parseSqrt() (*Node, error) {
	var index *Node
	p.skipSpace()
	if p.peek() == '[' {
		p.pos++
		idx, err := p.parseRow(stopBracket)
		if err != nil {
			return nil, err
		}
		if err := p.expect(']'); err != nil {
			return nil, err
		}
		index = idx
	}
	body, err := p.parseArgument()
	if err != nil {
		return nil, err
	}
	return &Node{Kind: KindSqrt, Body: body, Index: index}, nil
}

func (p *parser) parseText(font Font, class Class) (*Node, error) {
	text, err := p.parseRawGroup()
	if err != nil {
		return nil, err
	}
	return symbol(text, font, class), nil
}

// parseDelimiter reads the delimiter after \left, \right or \big. The null
// delimiter "." yields "".
func (p *parser) parseDelimiter() (string, error) {
	p.skipSpace()
	if p.eof() {
		return "", p.errorf("missing delimiter")
	}
	r := p.next()
	switch r {
	case '.':
		return "", nil
	case '<':
		return "⟨", nil
	case '>':
		return "⟩", nil
	case '\\':
		if p.eof() {
			return "", p.errorf("missing delimiter")
		}
		if !isLetter(p.peek()) {
			c := p.next()
			if c == '|' {
				return "‖", nil
			}
			return string(c), nil
		}
		name := p.readLetters()
		if d, ok := delimiters[name]; ok {
			return d, nil
		}
		return "", p.errorf(`unknown delimiter \%s`, name)
	}
	return string(r), nil
}

func (p *parser) parseFenced() (*Node, error) {
	left, err := p.parseDelimiter()
	if err != nil {
		return nil, err
	}
	body, err := p.parseRow(stopRight)
	if err != nil {
		return nil, err
	}
	p.pos += len(`\right`)
	right, err := p.parseDelimiter()
	if err != nil {
		return nil, err
	}
	return &Node{Kind: KindFenced, Left: left, Right: right, Body: body}, nil
}

func (p *parser) parseEnvironment() (*Node, error) {
	name, err := p.parseRawGroup()
	if err != nil {
		return nil, err
	}
	if name == "array" || name == "alignat" {
		// Column spec or column count.
		if _, err := p.parseRawGroup(); err != nil {
			return nil, err
		}
	}

	var cells [][]*Node
	var current []*Node
	for {
		cell, err := p.parseRow(stopCell | stopEnd)
		if err != nil {
			return nil, err
		}
		current = append(current, cell)
		switch {
		case p.peek() == '&':
			p.pos++
		case p.peekRowBreak():
			p.pos += 2
			p.skipOptional()
			cells = append(cells, current)
			current = nil
		default:
			// \end
			p.pos += len(`\end`)
			end, err := p.parseRawGroup()
			if err != nil {
				return nil, err
			}
			if end != name {
				return nil, p.errorf(`\begin{%s} ended by \end{%s}`, name, end)
			}
			if !rowIsEmpty(current) || len(cells) == 0 {
				cells = append(cells, current)
			}
			return p.environmentNode(name, cells), nil
		}
	}
}

// skipOptional drops an optional [..] argument such as the skip in \\[2pt].
func (p *parser) skipOptional() {
	save := p.pos
	p.skipSpace()
	if p.peek() != '[' {
		p.pos = save
		return
	}
	for !p.eof() {
		if p.next() == ']' {
			return
		}
	}
}

func rowIsEmpty(cells []*Node) bool {
	for _, c := range cells {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

func (p *parser) environmentNode(name string, cells [][]*Node) *Node {
	env := environments[name]
	m := &Node{Kind: KindMatrix, Cells: cells, AlignLeft: env.alignLeft}
	if env.left == "" && env.right == "" {
		return m
	}
	return &Node{Kind: KindFenced, Left: env.left, Right: env.right, Body: m}
}

func (p *parser) parseNot() (*Node, error) {
	p.skipSpace()
	if p.eof() {
		return symbol("/", FontRoman, ClassOrd), nil
	}
	n, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if n == nil || n.Kind != KindSymbol {
		return n, nil
	}
	if neg, ok := negations[n.Text]; ok {
		n.Text = neg
	} else {
		n.Text += "\u0338"
	}
	return n, nil
}
