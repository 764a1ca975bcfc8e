package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vvka-141/iconprune/internal/tui"
	"github.com/vvka-141/iconprune/pkg/iconprune"
)

// ForcedApprover implements the Approver interface for forced (non-interactive)
// approval. It displays a countdown and automatically approves after the countdown,
// used when the --force flag is provided.
type ForcedApprover struct {
	output  io.Writer
	palette tui.Palette
	sleepFn func(time.Duration)
}

// NewForcedApprover creates a ForcedApprover writing to stdout.
func NewForcedApprover(palette tui.Palette) iconprune.Approver {
	return &ForcedApprover{
		output:  os.Stdout,
		palette: palette,
		sleepFn: time.Sleep,
	}
}

// RequestApproval announces the deletion and approves once the countdown ends.
// Cancelling ctx during the countdown denies approval.
func (a *ForcedApprover) RequestApproval(ctx context.Context, summary iconprune.DeletionSummary) (bool, error) {
	fmt.Fprintln(a.output, a.palette.Danger(fmt.Sprintf(
		"%s Deleting %d files (keep %d) without confirmation (--force)",
		tui.SymbolWarning, summary.Removable, summary.Kept)))

	countdownSeconds := int(iconprune.DefaultForceApprovalCountdown.Seconds())
	for i := countdownSeconds; i > 0; i-- {
		select {
		case <-ctx.Done():
			fmt.Fprintln(a.output)
			return false, ctx.Err()
		default:
			fmt.Fprintf(a.output, "\rDeleting in: %d seconds... (Press Ctrl+C to cancel)", i)
			a.sleepFn(1 * time.Second)
		}
	}

	fmt.Fprintf(a.output, "\r%s Proceeding with deletion...                        \n", tui.SymbolCheck)
	return true, nil
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ iconprune.Approver = (*ForcedApprover)(nil)
