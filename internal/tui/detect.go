package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents how iconprune talks to the operator.
type Mode int

const (
	// ModeNonInteractive is used for scripts, CI and piped input or output.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

// DetectMode determines whether iconprune runs in front of a human.
//
// Returns ModeNonInteractive if:
//   - ICONPRUNE_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - stdin or stdout is not a terminal
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	return detectMode(os.Getenv, func() bool {
		return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	})
}

func detectMode(getenv func(string) string, terminal func() bool) Mode {
	if getenv("ICONPRUNE_NON_INTERACTIVE") == "1" {
		return ModeNonInteractive
	}
	if getenv("CI") != "" {
		return ModeNonInteractive
	}
	if getenv("NO_COLOR") != "" {
		return ModeNonInteractive
	}
	if !terminal() {
		return ModeNonInteractive
	}
	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
