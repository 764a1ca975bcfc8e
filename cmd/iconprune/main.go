package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/iconprune/internal/cli"
	"github.com/vvka-141/iconprune/pkg/iconprune"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(iconprune.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(iconprune.ExitCodeForError(err))
	}
}
