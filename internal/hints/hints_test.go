package hints

// Notes:
// - ForOutputDirectory tests cannot use t.Parallel() because they use
//   t.Setenv() to steer TMPDIR.
// These are acceptable gaps: we test observable behavior through environment manipulation.

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestForNoExpressions(t *testing.T) {
	t.Parallel()

	hint := ForNoExpressions()

	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("expected hint prefix, got %q", hint)
	}
	for _, want := range []string{"$...$", `\frac`, "; "} {
		if !strings.Contains(hint, want) {
			t.Errorf("expected hint to contain %q, got %q", want, hint)
		}
	}
}

func TestForSyntax(t *testing.T) {
	t.Parallel()

	hint := ForSyntax()

	if !strings.Contains(hint, "braces") {
		t.Errorf("expected braces mention, got %q", hint)
	}
}

func TestForOutputDirectory_TMPDIRSet(t *testing.T) {
	t.Setenv("TMPDIR", "/scratch/renders")

	hint := ForOutputDirectory()

	if !strings.Contains(hint, "hint:") {
		t.Error("expected hint prefix")
	}
	if !strings.Contains(hint, "/scratch/renders") {
		t.Errorf("expected TMPDIR value in hint, got %q", hint)
	}
}

func TestForOutputDirectory_TMPDIRUnset(t *testing.T) {
	t.Setenv("TMPDIR", "")

	hint := ForOutputDirectory()

	if !strings.Contains(hint, "set TMPDIR") {
		t.Errorf("expected TMPDIR suggestion, got %q", hint)
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	userPath := filepath.Join("home", "me", ".config", "go-latex2png", "foo.yaml")

	tests := []struct {
		name     string
		paths    []string
		contains string
	}{
		{
			name:     "empty paths",
			paths:    []string{},
			contains: "--config",
		},
		{
			name:     "with user config path",
			paths:    []string{"foo.yaml", "foo.yml", userPath},
			contains: "or create " + userPath,
		},
		{
			name:     "without user config path",
			paths:    []string{"foo.yaml"},
			contains: "--config /path/to/file.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)

			if !strings.Contains(hint, "hint:") {
				t.Error("expected hint prefix")
			}
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
		})
	}
}

func TestForStyleNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		available []string
		wantEmpty bool
		contains  string
	}{
		{
			name:      "empty available",
			available: []string{},
			wantEmpty: true,
		},
		{
			name:      "with styles",
			available: []string{"dark", "light", "tmux"},
			contains:  "dark, light, tmux",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForStyleNotFound(tt.available)

			if tt.wantEmpty && hint != "" {
				t.Errorf("expected empty hint, got %q", hint)
			}
			if !tt.wantEmpty && !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
		})
	}
}

func TestForFont(t *testing.T) {
	t.Parallel()

	hint := ForFont([]string{"go", "gomono"})
	if !strings.Contains(hint, "built-in fonts: go, gomono") {
		t.Errorf("expected families in hint, got %q", hint)
	}
	if !strings.Contains(hint, "TrueType") {
		t.Errorf("expected font file suggestion, got %q", hint)
	}

	if bare := ForFont(nil); strings.Contains(bare, "built-in") {
		t.Errorf("no families should omit the list, got %q", bare)
	}
}

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	// All hints start with newline, two spaces and "hint:".
	hints := []string{
		ForNoExpressions(),
		ForSyntax(),
		ForConfigNotFound(nil),
		ForStyleNotFound([]string{"tmux"}),
		ForFont([]string{"go"}),
	}

	for _, h := range hints {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint format inconsistent: %q", h)
		}
	}
}

func TestFormat_Empty(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
}
