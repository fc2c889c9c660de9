// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"
)

// ForNoExpressions returns a hint for input that contained no renderable math.
// Delimited text without any command is treated as prose, so "$5 and $10"
// is never rendered.
func ForNoExpressions() string {
	return formatHints([]string{
		`wrap math in $...$, $$...$$ or \[...\]`,
		`include at least one command such as \frac or \alpha`,
	})
}

// ForSyntax returns a hint for an expression the parser rejected.
func ForSyntax() string {
	return format("check braces are balanced and \\begin/\\end environments match")
}

// ForOutputDirectory returns hints for failures writing the rendered image.
// The image always goes to the temp directory, so TMPDIR is what to check.
func ForOutputDirectory() string {
	if dir := os.Getenv("TMPDIR"); dir != "" {
		return format("check TMPDIR (" + dir + ") exists and is writable")
	}
	return format("check " + os.TempDir() + " is writable or set TMPDIR")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path and creating a config in ~/.config/go-latex2png/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	marker := filepath.Join(".config", "go-latex2png")
	for _, p := range searchedPaths {
		if strings.Contains(p, marker) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForStyleNotFound returns hints for style preset not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForFont returns hints for a font that is neither built in nor loadable.
func ForFont(families []string) string {
	var hints []string
	if len(families) > 0 {
		hints = append(hints, "built-in fonts: "+strings.Join(families, ", "))
	}
	hints = append(hints, "or give the path of a TrueType/OpenType file")
	return formatHints(hints)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
