package iconprune

import "context"

// Approver handles the confirmation gate in front of icon deletion.
//
// Implementations:
//   - ForcedApprover: Shows countdown and automatically approves
//   - InteractiveApprover: Prompts for a y/N answer on the console
type Approver interface {
	// RequestApproval asks whether the removable files in summary may be deleted.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//   - summary: Counts shown to the operator
	//
	// Returns:
	//   - bool: true if approved, false if denied
	//   - error: Any error that occurred during the approval process
	RequestApproval(ctx context.Context, summary DeletionSummary) (bool, error)
}

// DeletionSummary is what the operator sees before confirming.
type DeletionSummary struct {
	Removable int
	Kept      int
}
