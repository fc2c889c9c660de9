package pipeline

import "strings"

// DelimiterPattern locates math spans delimited by an open and a close marker.
// Matching is non-greedy: the span ends at the first close marker that leaves
// at least one byte of content. Spans may cross line boundaries.
type DelimiterPattern struct {
	Name  string
	Open  string
	Close string

	// Isolated requires the open marker to not touch another copy of its
	// marker character on either side, so "$" never starts inside "$$".
	Isolated bool
}

// Patterns is the ordered delimiter table. Extraction walks it top to bottom
// and never reorders it.
var Patterns = []DelimiterPattern{
	{Name: "double-dollar", Open: "$$", Close: "$$"},
	{Name: "single-dollar", Open: "$", Close: "$", Isolated: true},
	{Name: "bracket", Open: `\[`, Close: `\]`},
	{Name: "equation", Open: `\begin{equation}`, Close: `\end{equation}`},
	{Name: "align", Open: `\begin{align}`, Close: `\end{align}`},
}

// FindAll returns the inner content of every non-overlapping match in text,
// left to right.
func (p DelimiterPattern) FindAll(text string) []string {
	if p.Open == "" || p.Close == "" {
		return nil
	}

	var matches []string
	pos := 0
	for pos < len(text) {
		i := strings.Index(text[pos:], p.Open)
		if i < 0 {
			break
		}
		start := pos + i
		if p.Isolated && !p.isolatedAt(text, start) {
			pos = start + 1
			continue
		}

		contentStart := start + len(p.Open)
		// At least one content byte before the close marker.
		if contentStart >= len(text) {
			break
		}
		j := strings.Index(text[contentStart+1:], p.Close)
		if j < 0 {
			// No close marker to the right of this opener; a later opener
			// can only see a shorter suffix, which cannot match either.
			break
		}
		end := contentStart + 1 + j
		matches = append(matches, text[contentStart:end])
		pos = end + len(p.Close)
	}
	return matches
}

// isolatedAt reports whether the open marker at start is not adjacent to
// another copy of its first or last character.
func (p DelimiterPattern) isolatedAt(text string, start int) bool {
	if start > 0 && text[start-1] == p.Open[0] {
		return false
	}
	after := start + len(p.Open)
	if after < len(text) && text[after] == p.Open[len(p.Open)-1] {
		return false
	}
	return true
}
