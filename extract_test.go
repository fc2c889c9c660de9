package latex2png

import (
	"strings"
	"testing"
)

// The pipeline package covers extraction in depth; these tests pin the
// exported surface.

func TestPatterns_ReturnsCopy(t *testing.T) {
	t.Parallel()

	p := Patterns()
	if len(p) == 0 {
		t.Fatal("Patterns() is empty")
	}
	if p[0].Open != "$$" {
		t.Errorf("first pattern opens with %q, want $$", p[0].Open)
	}

	p[0].Open = "changed"
	if Patterns()[0].Open != "$$" {
		t.Error("mutating the result must not change the pattern table")
	}
}

func TestExtractExpressions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "prices are not math", text: "Price is $5 and $10", want: nil},
		{name: "double before single", text: `$\alpha$ then $$\beta$$`, want: []string{`\beta`, `\alpha`}},
		{name: "trimmed", text: `\[  \gamma  \]`, want: []string{`\gamma`}},
		{name: "newline dropped", text: "$\\frac{a}{\nb}$", want: nil},
		{name: "too long dropped", text: "$\\alpha" + strings.Repeat("x", MaxExpressionLength) + "$", want: nil},
		{name: "duplicates kept", text: `$\pi$ and $\pi$`, want: []string{`\pi`, `\pi`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ExtractExpressions(tt.text)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
				t.Errorf("ExtractExpressions(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsExpression(t *testing.T) {
	t.Parallel()

	if !IsExpression(`  \frac{1}{2} `) {
		t.Error(`IsExpression(\frac{1}{2}) = false`)
	}
	if IsExpression("x^2") {
		t.Error("IsExpression(x^2) = true, want false without a command")
	}
	if got := ExtractCandidates("$5 and $"); len(got) != 1 || got[0] != "5 and " {
		t.Errorf("ExtractCandidates() = %q", got)
	}
}
