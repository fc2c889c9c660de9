package mathtext

// Notes:
// - Tests inspect the node tree shape rather than printing it; layout and
//   drawing are covered by the raster package.
// - Offsets in error messages are not asserted, only errors.Is(ErrSyntax).
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// Test Infrastructure
// ---------------------------------------------------------------------------

func mustParse(t *testing.T, expr string) *Node {
	t.Helper()
	n, err := Parse(expr)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", expr, err)
	}
	if n.Kind != KindRow {
		t.Fatalf("Parse(%q) kind = %v, want KindRow", expr, n.Kind)
	}
	return n
}

func onlyChild(t *testing.T, n *Node) *Node {
	t.Helper()
	if len(n.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(n.Children))
	}
	return n.Children[0]
}

// texts flattens the symbols of a row, skipping spaces.
func texts(n *Node) []string {
	var out []string
	for _, c := range n.Children {
		if c.Kind == KindSymbol {
			out = append(out, c.Text)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// TestParse_Symbols - Characters and command symbols
// ---------------------------------------------------------------------------

func TestParse_Symbols(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		expr  string
		text  string
		font  Font
		class Class
	}{
		{"latin letter", "x", "x", FontItalic, ClassOrd},
		{"digit", "7", "7", FontRoman, ClassOrd},
		{"plus", "+", "+", FontRoman, ClassBin},
		{"minus sign", "-", "−", FontRoman, ClassBin},
		{"equals", "=", "=", FontRoman, ClassRel},
		{"open paren", "(", "(", FontRoman, ClassOpen},
		{"comma", ",", ",", FontRoman, ClassPunct},
		{"greek lowercase", `\alpha`, "α", FontItalic, ClassOrd},
		{"greek uppercase", `\Omega`, "Ω", FontRoman, ClassOrd},
		{"relation", `\leq`, "≤", FontRoman, ClassRel},
		{"binary", `\times`, "×", FontRoman, ClassBin},
		{"arrow", `\to`, "→", FontRoman, ClassRel},
		{"function", `\sin`, "sin", FontRoman, ClassOp},
		{"escaped brace", `\{`, "{", FontRoman, ClassOpen},
		{"escaped percent", `\%`, "%", FontRoman, ClassOrd},
		{"unknown command", `\foo`, "foo", FontRoman, ClassOrd},
		{"blackboard", `\mathbb{R}`, "ℝ", FontRoman, ClassOrd},
		{"bold", `\mathbf{v}`, "v", FontBold, ClassOrd},
		{"roman", `\mathrm{d}`, "d", FontRoman, ClassOrd},
		{"bold greek", `\boldsymbol\mu`, "μ", FontBoldItalic, ClassOrd},
		{"negated relation", `\not=`, "≠", FontRoman, ClassRel},
		{"negated membership", `\not\in`, "∉", FontRoman, ClassRel},
		{"operatorname", `\operatorname{tr}`, "tr", FontRoman, ClassOp},
		{"text keeps spaces", `\text{if } `, "if ", FontRoman, ClassOrd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := onlyChild(t, mustParse(t, tt.expr))
			if n.Kind == KindRow {
				n = onlyChild(t, n)
			}
			if n.Kind != KindSymbol {
				t.Fatalf("kind = %v, want KindSymbol", n.Kind)
			}
			if n.Text != tt.text {
				t.Errorf("Text = %q, want %q", n.Text, tt.text)
			}
			if n.Font != tt.font {
				t.Errorf("Font = %v, want %v", n.Font, tt.font)
			}
			if n.Class != tt.class {
				t.Errorf("Class = %v, want %v", n.Class, tt.class)
			}
		})
	}
}

func TestParse_BigOperator(t *testing.T) {
	t.Parallel()

	n := onlyChild(t, mustParse(t, `\sum_{i=1}^n`))
	if n.Kind != KindScript {
		t.Fatalf("kind = %v, want KindScript", n.Kind)
	}
	if !n.Base.Large || n.Base.Text != "∑" {
		t.Errorf("base = %+v, want large ∑", n.Base)
	}
	if got := texts(n.Sub); len(got) != 3 || got[0] != "i" || got[2] != "1" {
		t.Errorf("sub = %q, want [i = 1]", got)
	}
	if n.Sup.Text != "n" {
		t.Errorf("sup = %q, want n", n.Sup.Text)
	}
}

func TestParse_WhitespaceIgnored(t *testing.T) {
	t.Parallel()

	got := texts(mustParse(t, "  a   +\tb "))
	want := []string{"a", "+", "b"}
	if len(got) != len(want) {
		t.Fatalf("texts = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("texts[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParse_Spacing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr string
		want float64
	}{
		{`\,`, 3.0 / 18},
		{`\;`, 5.0 / 18},
		{`\!`, -3.0 / 18},
		{`\quad`, 1},
		{`\qquad`, 2},
		{`~`, 1.0 / 3},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			t.Parallel()

			n := onlyChild(t, mustParse(t, tt.expr))
			if n.Kind != KindSpace || n.Width != tt.want {
				t.Errorf("got kind %v width %v, want space %v", n.Kind, n.Width, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParse_Scripts - Superscripts, subscripts and primes
// ---------------------------------------------------------------------------

func TestParse_Scripts(t *testing.T) {
	t.Parallel()

	t.Run("superscript single token", func(t *testing.T) {
		t.Parallel()
		n := mustParse(t, "x^23")
		if len(n.Children) != 2 {
			t.Fatalf("children = %d, want 2 (script + trailing 3)", len(n.Children))
		}
		s := n.Children[0]
		if s.Kind != KindScript || s.Sup.Text != "2" || s.Sub != nil {
			t.Errorf("script = %+v, want x^2", s)
		}
	})

	t.Run("both scripts any order", func(t *testing.T) {
		t.Parallel()
		s := onlyChild(t, mustParse(t, "x_i^{2}"))
		if s.Kind != KindScript || s.Sub.Text != "i" || s.Sup.Kind != KindRow {
			t.Errorf("script = %+v, want x_i^{2}", s)
		}
	})

	t.Run("prime", func(t *testing.T) {
		t.Parallel()
		s := mustParse(t, "f''(x)").Children[0]
		if s.Kind != KindScript || s.Sup.Text != "′′" {
			t.Errorf("script sup = %+v, want double prime", s.Sup)
		}
	})

	t.Run("prime then superscript", func(t *testing.T) {
		t.Parallel()
		s := onlyChild(t, mustParse(t, "f'^2"))
		if s.Sup.Kind != KindRow || len(s.Sup.Children) != 2 {
			t.Errorf("sup = %+v, want row of prime and 2", s.Sup)
		}
	})

	t.Run("script without base", func(t *testing.T) {
		t.Parallel()
		s := onlyChild(t, mustParse(t, "^2"))
		if s.Kind != KindScript || !s.Base.IsEmpty() {
			t.Errorf("script = %+v, want empty base", s)
		}
	})

	t.Run("command argument", func(t *testing.T) {
		t.Parallel()
		s := onlyChild(t, mustParse(t, `e^\pi`))
		if s.Sup.Text != "π" {
			t.Errorf("sup = %q, want π", s.Sup.Text)
		}
	})
}

// ---------------------------------------------------------------------------
// TestParse_Structures - Fractions, radicals, accents, fences, environments
// ---------------------------------------------------------------------------

func TestParse_Frac(t *testing.T) {
	t.Parallel()

	n := onlyChild(t, mustParse(t, `\frac{a+b}{2}`))
	if n.Kind != KindFrac || n.NoRule {
		t.Fatalf("kind = %v NoRule = %v, want ruled KindFrac", n.Kind, n.NoRule)
	}
	if got := texts(n.Num); len(got) != 3 {
		t.Errorf("num = %q, want a + b", got)
	}

	short := onlyChild(t, mustParse(t, `\frac12`))
	if short.Num.Text != "1" || short.Den.Text != "2" {
		t.Errorf(`\frac12 = %q/%q, want 1/2`, short.Num.Text, short.Den.Text)
	}
}

func TestParse_Binom(t *testing.T) {
	t.Parallel()

	n := onlyChild(t, mustParse(t, `\binom{n}{k}`))
	if n.Kind != KindFenced || n.Left != "(" || n.Right != ")" {
		t.Fatalf("binom = %+v, want fenced parens", n)
	}
	if n.Body.Kind != KindFrac || !n.Body.NoRule {
		t.Errorf("body = %+v, want rule-less fraction", n.Body)
	}
}

func TestParse_Sqrt(t *testing.T) {
	t.Parallel()

	n := onlyChild(t, mustParse(t, `\sqrt{x}`))
	if n.Kind != KindSqrt || n.Index != nil {
		t.Errorf("sqrt = %+v, want no index", n)
	}

	n = onlyChild(t, mustParse(t, `\sqrt[3]{x}`))
	if n.Kind != KindSqrt || n.Index == nil || texts(n.Index)[0] != "3" {
		t.Errorf("sqrt = %+v, want index 3", n)
	}
}

func TestParse_Accent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr string
		want string
	}{
		{`\hat{x}`, "ˆ"},
		{`\vec v`, "→"},
		{`\bar{z}`, "¯"},
		{`\overline{AB}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			t.Parallel()
			n := onlyChild(t, mustParse(t, tt.expr))
			if n.Kind != KindAccent || n.Text != tt.want {
				t.Errorf("accent = %+v, want %q", n, tt.want)
			}
		})
	}
}

func TestParse_Fenced(t *testing.T) {
	t.Parallel()

	n := onlyChild(t, mustParse(t, `\left( \frac{1}{2} \right.`))
	if n.Kind != KindFenced || n.Left != "(" || n.Right != "" {
		t.Errorf("fenced = %+v, want ( and null delimiter", n)
	}

	n = onlyChild(t, mustParse(t, `\left\langle x \right\rangle`))
	if n.Left != "⟨" || n.Right != "⟩" {
		t.Errorf("fenced = %q %q, want angle brackets", n.Left, n.Right)
	}
}

func TestParse_Environment(t *testing.T) {
	t.Parallel()

	n := onlyChild(t, mustParse(t, `\begin{pmatrix} a & b \\ c & d \\ \end{pmatrix}`))
	if n.Kind != KindFenced || n.Left != "(" {
		t.Fatalf("pmatrix = %+v, want fenced", n)
	}
	m := n.Body
	if m.Kind != KindMatrix || len(m.Cells) != 2 || len(m.Cells[0]) != 2 {
		t.Fatalf("matrix cells = %d rows, want 2x2", len(m.Cells))
	}
	if texts(m.Cells[1][1])[0] != "d" {
		t.Errorf("cell[1][1] = %q, want d", texts(m.Cells[1][1]))
	}

	arr := onlyChild(t, mustParse(t, `\begin{array}{cc} 1 & 2 \end{array}`))
	if arr.Kind != KindMatrix || len(arr.Cells) != 1 || len(arr.Cells[0]) != 2 {
		t.Errorf("array = %+v, want one row of two cells", arr)
	}
}

func TestParse_Cases(t *testing.T) {
	t.Parallel()

	n := mustParse(t, `\begin{cases} 1 & x > 0 \\ 0 & \text{otherwise} \end{cases}`)
	f := onlyChild(t, n)
	if f.Kind != KindFenced || f.Left != "{" || f.Right != "" {
		t.Fatalf("cases = %+v, want left brace only", f)
	}
	if !f.Body.AlignLeft {
		t.Error("cases should align cells left")
	}
}

func TestParse_IgnoredCommands(t *testing.T) {
	t.Parallel()

	n := mustParse(t, `\displaystyle x \label{eq:1} \nonumber`)
	if got := texts(n); len(got) != 1 || got[0] != "x" {
		t.Errorf("texts = %q, want [x]", got)
	}
}

// ---------------------------------------------------------------------------
// TestParse_Errors - Structural problems
// ---------------------------------------------------------------------------

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr string
	}{
		{"unclosed group", `\frac{1}{2`},
		{"stray close", `a}`},
		{"missing frac argument", `\frac{1}`},
		{"missing script argument", `x^`},
		{"double superscript", `x^2^3`},
		{"double subscript", `x_1_2`},
		{"trailing backslash", `x \`},
		{"unmatched right", `x \right)`},
		{"missing right", `\left( x`},
		{"unmatched end", `\end{matrix}`},
		{"mismatched environment", `\begin{pmatrix} a \end{bmatrix}`},
		{"unknown delimiter", `\left\foo x \right)`},
		{"unclosed sqrt index", `\sqrt[3 x`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.expr)
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("Parse(%q) error = %v, want ErrSyntax", tt.expr, err)
			}
		})
	}
}

func TestNode_IsEmpty(t *testing.T) {
	t.Parallel()

	var nilNode *Node
	if !nilNode.IsEmpty() {
		t.Error("nil node should be empty")
	}
	if !row(row(), space(0)).IsEmpty() {
		t.Error("row of empty children should be empty")
	}
	if row(symbol("x", FontItalic, ClassOrd)).IsEmpty() {
		t.Error("row with a symbol should not be empty")
	}
	if (&Node{Kind: KindFrac}).IsEmpty() {
		t.Error("fraction is never empty")
	}
}
