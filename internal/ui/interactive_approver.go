package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vvka-141/iconprune/internal/tui"
	"github.com/vvka-141/iconprune/pkg/iconprune"
)

// InteractiveApprover implements the Approver interface for console-based
// interactive confirmation. It asks a y/N question and reads one line.
type InteractiveApprover struct {
	input   io.Reader
	output  io.Writer
	palette tui.Palette
}

// NewInteractiveApprover creates an InteractiveApprover on stdin and stdout.
func NewInteractiveApprover(palette tui.Palette) iconprune.Approver {
	return &InteractiveApprover{
		input:   os.Stdin,
		output:  os.Stdout,
		palette: palette,
	}
}

// RequestApproval prints the deletion summary and reads the operator's answer.
// Only y, ye or yes (any case) approve. Empty input and end of input decline.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, summary iconprune.DeletionSummary) (bool, error) {
	fmt.Fprintln(a.output, a.palette.Danger(fmt.Sprintf("Delete %d files (keep %d)? (y/N)", summary.Removable, summary.Kept)))

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.input)
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			errChan <- err
			return
		}
		inputChan <- line
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case answer := <-inputChan:
		return iconprune.IsAffirmative(answer), nil
	}
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ iconprune.Approver = (*InteractiveApprover)(nil)
