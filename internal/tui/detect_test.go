package tui

import (
	"testing"
)

func fakeEnv(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func alwaysTerminal() bool { return true }

func TestDetectMode_Overrides(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"ICONPRUNE_NON_INTERACTIVE", map[string]string{"ICONPRUNE_NON_INTERACTIVE": "1"}},
		{"CI", map[string]string{"CI": "true"}},
		{"NO_COLOR", map[string]string{"NO_COLOR": "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectMode(fakeEnv(tt.env), alwaysTerminal); got != ModeNonInteractive {
				t.Errorf("detectMode() = %d, want ModeNonInteractive", got)
			}
		})
	}
}

func TestDetectMode_Terminal(t *testing.T) {
	if got := detectMode(fakeEnv(nil), alwaysTerminal); got != ModeInteractive {
		t.Errorf("detectMode() = %d, want ModeInteractive", got)
	}
	if got := detectMode(fakeEnv(nil), func() bool { return false }); got != ModeNonInteractive {
		t.Errorf("detectMode() = %d, want ModeNonInteractive", got)
	}
}

func TestDetectMode_NonInteractiveValueMustBeOne(t *testing.T) {
	env := fakeEnv(map[string]string{"ICONPRUNE_NON_INTERACTIVE": "0"})
	if got := detectMode(env, alwaysTerminal); got != ModeInteractive {
		t.Errorf("detectMode() = %d, want ModeInteractive", got)
	}
}

func TestIsInteractive_ReturnsFalseInTests(t *testing.T) {
	t.Setenv("ICONPRUNE_NON_INTERACTIVE", "")
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "")

	if IsInteractive() {
		t.Error("IsInteractive() = true in test environment, want false")
	}
}
