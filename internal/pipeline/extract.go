package pipeline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxExpressionLength bounds an accepted expression, in characters after
// trimming. Longer spans usually come from unbalanced delimiters.
const MaxExpressionLength = 300

// commandToken matches a backslash followed by one or more ASCII letters.
var commandToken = regexp.MustCompile(`\\[a-zA-Z]+`)

// ExtractCandidates applies Patterns in order. Every match of pattern i comes
// before any match of pattern i+1, whatever their positions in text. The same
// span may be returned by several patterns.
func ExtractCandidates(text string) []string {
	var candidates []string
	for _, p := range Patterns {
		candidates = append(candidates, p.FindAll(text)...)
	}
	return candidates
}

// IsExpression reports whether a candidate looks like real LaTeX rather than
// coincidental delimiters such as "$5 and $10".
func IsExpression(candidate string) bool {
	expr := trim(candidate)
	if !commandToken.MatchString(expr) {
		return false
	}
	if strings.Contains(expr, "\n") {
		return false
	}
	if utf8.RuneCountInString(expr) > MaxExpressionLength {
		return false
	}
	return true
}

// ExtractExpressions returns the trimmed candidates that pass IsExpression,
// in extraction order.
func ExtractExpressions(text string) []string {
	var exprs []string
	for _, c := range ExtractCandidates(text) {
		if IsExpression(c) {
			exprs = append(exprs, trim(c))
		}
	}
	return exprs
}

// trim removes leading and trailing whitespace. The ASCII separators
// U+001C to U+001F count as whitespace too.
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
	})
}
