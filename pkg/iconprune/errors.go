package iconprune

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := pruner.Prune(ctx)
//	if errors.Is(err, iconprune.ErrUnknownPrefix) {
//	    // The manifest references an icon set the table does not know
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMalformedManifest indicates the manifest could not be read as a mapping of
	// icon references or lacks the reserved settings entry.
	ErrMalformedManifest = errors.New("malformed manifest")

	// ErrUnknownPrefix indicates an icon reference names an icon set that is not in
	// the icon set table.
	ErrUnknownPrefix = errors.New("unknown icon set prefix")

	// ErrDeletionFailed indicates an icon file could not be removed.
	// Files removed before the failure stay removed.
	ErrDeletionFailed = errors.New("deletion failed")
)

// usageErrorPatterns are message fragments cobra produces for command-line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts at most",
	"accepts 1 arg",
	"invalid argument",
	"required flag",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrMalformedManifest):
		return ExitMalformedManifest
	case errors.Is(err, ErrUnknownPrefix):
		return ExitUnknownPrefix
	case errors.Is(err, ErrDeletionFailed):
		return ExitDeletionFailed
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
