package latex2png

import "github.com/alnah/go-latex2png/internal/pipeline"

// MaxExpressionLength is the longest expression, in characters, that is
// rendered.
const MaxExpressionLength = pipeline.MaxExpressionLength

// DelimiterPattern is an open/close marker pair that encloses math.
type DelimiterPattern = pipeline.DelimiterPattern

// Patterns returns the delimiter patterns in the order they are tried.
func Patterns() []DelimiterPattern {
	out := make([]DelimiterPattern, len(pipeline.Patterns))
	copy(out, pipeline.Patterns)
	return out
}

// ExtractCandidates returns the raw inner text of every delimited span in
// text. All matches of one pattern come before those of the next; nothing
// is deduplicated.
func ExtractCandidates(text string) []string {
	return pipeline.ExtractCandidates(text)
}

// IsExpression reports whether candidate, once trimmed, is worth rendering:
// it holds a command such as \frac, fits on one line and is at most
// MaxExpressionLength characters.
func IsExpression(candidate string) bool {
	return pipeline.IsExpression(candidate)
}

// ExtractExpressions returns the trimmed candidates of text that pass
// IsExpression, in candidate order.
func ExtractExpressions(text string) []string {
	return pipeline.ExtractExpressions(text)
}
