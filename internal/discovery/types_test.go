package discovery

import (
	"errors"
	"testing"
)

func TestOutcome_String(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{NoMatch, "NoMatch"},
		{UniqueMatch, "UniqueMatch"},
		{AmbiguousMatch, "AmbiguousMatch"},
		{Outcome(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.outcome.String(); got != tt.want {
				t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.want)
			}
		})
	}
}

func TestErrorPolicy_String(t *testing.T) {
	if got := BestEffort.String(); got != "best-effort" {
		t.Errorf("BestEffort.String() = %q", got)
	}
	if got := Strict.String(); got != "strict" {
		t.Errorf("Strict.String() = %q", got)
	}
	if got := ErrorPolicy(7).String(); got != "unknown" {
		t.Errorf("ErrorPolicy(7).String() = %q", got)
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       Outcome
	}{
		{"nil", nil, NoMatch},
		{"empty", []string{}, NoMatch},
		{"one", []string{"/p/a.kicad_pro"}, UniqueMatch},
		{"two", []string{"/p/a.kicad_pro", "/p/sub/b.kicad_pro"}, AmbiguousMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Select(tt.candidates).Outcome; got != tt.want {
				t.Errorf("Select(%v).Outcome = %v, want %v", tt.candidates, got, tt.want)
			}
		})
	}
}

func TestSelection_Project(t *testing.T) {
	t.Run("unique", func(t *testing.T) {
		got, err := Select([]string{"/p/a.kicad_pro"}).Project("/p")
		if err != nil || got != "/p/a.kicad_pro" {
			t.Errorf("Project() = %q, %v", got, err)
		}
	})

	t.Run("none", func(t *testing.T) {
		_, err := Select(nil).Project("/p")
		var noneErr *NoProjectsFoundError
		if !errors.As(err, &noneErr) {
			t.Fatalf("Project() error = %v, want *NoProjectsFoundError", err)
		}
		if noneErr.Root != "/p" {
			t.Errorf("Root = %q, want /p", noneErr.Root)
		}
	})

	t.Run("many keeps discovery order", func(t *testing.T) {
		paths := []string{"/p/sub/b.kicad_pro", "/p/a.kicad_pro"}
		_, err := Select(paths).Project("/p")
		var manyErr *MultipleProjectsFoundError
		if !errors.As(err, &manyErr) {
			t.Fatalf("Project() error = %v, want *MultipleProjectsFoundError", err)
		}
		if len(manyErr.Paths) != 2 || manyErr.Paths[0] != paths[0] || manyErr.Paths[1] != paths[1] {
			t.Errorf("Paths = %v, want %v", manyErr.Paths, paths)
		}
	})
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"timeout", ErrTimeout, "timeout while searching for .kicad_pro files"},
		{"join", &JoinError{Value: "boom"}, "could not join goroutine searching for .kicad_pro files: boom"},
		{"none", &NoProjectsFoundError{Root: "/p"}, "no .kicad_pro files found in directory /p"},
		{"many", &MultipleProjectsFoundError{Paths: []string{"/p/a.kicad_pro", "/p/b.kicad_pro"}}, "multiple .kicad_pro files:\n/p/a.kicad_pro\n/p/b.kicad_pro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJoinError_Unwrap(t *testing.T) {
	err := error(&JoinError{Value: "boom"})
	if !errors.Is(err, ErrJoin) {
		t.Error("errors.Is(JoinError, ErrJoin) = false, want true")
	}
}

func TestAccessError_Unwrap(t *testing.T) {
	inner := errors.New("permission denied")
	err := error(&AccessError{Root: "/p", Err: inner})
	if !errors.Is(err, inner) {
		t.Error("errors.Is(AccessError, inner) = false, want true")
	}
}
