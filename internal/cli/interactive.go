// Package cli provides helpers for interactive mode detection.
package cli

import (
	"os"

	"golang.org/x/term"
)

// IsNonInteractive reports whether the session must avoid interactive
// surfaces.
func IsNonInteractive() bool {
	if nonInteractive {
		return true
	}
	if _, ok := os.LookupEnv("DARKLOCK_NON_INTERACTIVE"); ok {
		return true
	}
	return !hasTTY()
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
