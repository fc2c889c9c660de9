package latex2png

import (
	"errors"
	"testing"

	"github.com/alnah/go-latex2png/internal/mathtext"
)

// ---------------------------------------------------------------------------
// TestOutcome_Err - Outcome to error conversion
// ---------------------------------------------------------------------------

func TestOutcome_Err(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")

	tests := []struct {
		name    string
		outcome Outcome
		wantNil bool
		wantIs  []error
	}{
		{name: "rendered", outcome: Outcome{Kind: Rendered, Path: "/tmp/x.png"}, wantNil: true},
		{name: "no expressions", outcome: Outcome{Kind: NoExpressions}, wantIs: []error{ErrNoExpressions}},
		{name: "render failed", outcome: Outcome{Kind: RenderFailed, Cause: cause}, wantIs: []error{ErrRender, cause}},
		{
			name:    "render failed with syntax",
			outcome: Outcome{Kind: RenderFailed, Cause: mathtext.ErrSyntax},
			wantIs:  []error{ErrRender, mathtext.ErrSyntax},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.outcome.Err()
			if tt.wantNil {
				if err != nil {
					t.Errorf("Err() = %v, want nil", err)
				}
				return
			}
			for _, target := range tt.wantIs {
				if !errors.Is(err, target) {
					t.Errorf("Err() = %v, want errors.Is %v", err, target)
				}
			}
		})
	}
}

func TestOutcomeKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind OutcomeKind
		want string
	}{
		{NoExpressions, "no expressions"},
		{Rendered, "rendered"},
		{RenderFailed, "render failed"},
		{OutcomeKind(7), "OutcomeKind(7)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("OutcomeKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
