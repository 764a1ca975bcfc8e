package iconprune

import (
	"strings"
	"time"
)

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess           = 0  // Run completed, with or without deletion
	ExitGeneralError      = 1  // Unknown or unclassified error
	ExitUsageError        = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic             = 3  // Internal panic (unexpected crash)
	ExitConfigError       = 10 // Invalid configuration
	ExitMalformedManifest = 11 // Manifest unreadable or missing the reserved entry
	ExitUnknownPrefix     = 12 // Reference uses an icon set absent from the table
	ExitDeletionFailed    = 13 // Removing an icon file failed mid-run
)

const (
	// DefaultForceApprovalCountdown is the countdown duration before force approval proceeds.
	DefaultForceApprovalCountdown = 5 * time.Second

	// ManifestFileName is the manifest file name inside the plugin directory.
	ManifestFileName = "data.json"

	// IconsDirName is the icon library directory inside the plugin directory.
	IconsDirName = "icons"

	// ReservedManifestKey holds plugin settings rather than an icon reference.
	// It must be present and is stripped before references are collected.
	ReservedManifestKey = "settings"

	// IconExtension is the only file extension considered part of the icon library.
	// Matching is case-sensitive.
	IconExtension = ".svg"
)

// affirmativeAnswers are the confirmation inputs that allow deletion.
var affirmativeAnswers = map[string]struct{}{
	"y":   {},
	"ye":  {},
	"yes": {},
}

// IsAffirmative reports whether an operator answer confirms deletion.
// The answer is compared after trimming surrounding whitespace and lowercasing.
func IsAffirmative(answer string) bool {
	_, ok := affirmativeAnswers[normalizeAnswer(answer)]
	return ok
}

func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
