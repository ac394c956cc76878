package dogsearch

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess            = 0  // Scan completed
	ExitGeneralError       = 1  // Unknown or unclassified error
	ExitUsageError         = 2  // CLI usage error (unexpected args, invalid flags)
	ExitInvariantViolation = 3  // Internal invariant violated or unexpected panic
	ExitPuzzleError        = 10 // Embedded puzzle definition is invalid
)

const (
	// WordLength is the number of letters in the target word and in every scanned line.
	WordLength = 3

	// WindowSize is the side of the square window every line is anchored to.
	WindowSize = WordLength

	// DefaultTarget is the word the built-in puzzle searches for.
	DefaultTarget = "DOG"
)
