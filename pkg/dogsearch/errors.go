package dogsearch

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the two failure kinds the program knows about.
// These enable callers to distinguish error types using errors.Is().
var (
	// ErrInvariantViolation indicates an internal programming error, such as a
	// direction value outside the defined set reaching a lookup.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrInvalidPuzzle indicates the puzzle definition (grid or target) is malformed.
	ErrInvalidPuzzle = errors.New("invalid puzzle")
)

// InvariantError describes an out-of-range value reaching a lookup table.
// Lookups panic with it; it unwraps to ErrInvariantViolation.
type InvariantError struct {
	Op    string
	Value int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: %s: undefined direction %d", ErrInvariantViolation, e.Op, e.Value)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariantViolation
}

// usageErrorPatterns are message prefixes cobra and pflag produce for command-line misuse.
var usageErrorPatterns = []string{
	"unknown command",
	"unknown flag",
	"unknown shorthand flag",
	"accepts ",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvariantViolation):
		return ExitInvariantViolation
	case errors.Is(err, ErrInvalidPuzzle):
		return ExitPuzzleError
	}

	errStr := err.Error()
	for _, p := range usageErrorPatterns {
		if strings.HasPrefix(errStr, p) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
