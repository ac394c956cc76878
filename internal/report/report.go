// Package report prints scan results in the program's fixed text format.
package report

import (
	"fmt"
	"io"
	"iter"

	"github.com/vvka-141/dogsearch/pkg/dogsearch"
)

// Write prints one numbered line per match followed by the total, and
// returns the number of matches written.
//
//	1: 8,3 (diagonal topleft -> bottomright)
//	Found 1 matches.
func Write(w io.Writer, matches iter.Seq[dogsearch.Match]) (int, error) {
	n := 0
	for m := range matches {
		n++
		if _, err := fmt.Fprintln(w, m.Format(n)); err != nil {
			return n, fmt.Errorf("failed to write match %d: %w", n, err)
		}
	}
	if _, err := fmt.Fprintf(w, "Found %d matches.\n", n); err != nil {
		return n, fmt.Errorf("failed to write summary: %w", err)
	}
	return n, nil
}
