package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/vvka-141/dogsearch/internal/cli"
	"github.com/vvka-141/dogsearch/pkg/dogsearch"
)

func main() {
	os.Exit(run(os.Stderr, cli.Execute))
}

// run calls execute and returns the process exit code. Lookups panic on
// undefined directions; a panic is reported to stderr and mapped to
// ExitInvariantViolation.
func run(stderr io.Writer, execute func() error) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "panic: %v\n%s\n", r, debug.Stack())
			code = dogsearch.ExitInvariantViolation
		}
	}()

	return dogsearch.ExitCodeForError(execute())
}
