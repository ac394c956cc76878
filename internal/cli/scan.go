package cli

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vvka-141/dogsearch/internal/logging"
	"github.com/vvka-141/dogsearch/internal/puzzle"
	"github.com/vvka-141/dogsearch/internal/render"
	"github.com/vvka-141/dogsearch/internal/report"
	"github.com/vvka-141/dogsearch/internal/scanner"
	"github.com/vvka-141/dogsearch/pkg/dogsearch"
)

func runScan(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	stderr := cmd.ErrOrStderr()
	logger := logging.NewConsoleLogger(stderr, verbose)

	p, err := puzzle.Builtin()
	if err != nil {
		return err
	}

	n, err := scan(cmd.OutOrStdout(), logger, p)
	if err != nil {
		return err
	}
	logger.Verbose("reported %d matches", n)

	if verbose && isTerminal(stderr) {
		s := scanner.New(p.Grid, p.Target)
		r := lipgloss.NewRenderer(stderr)
		logger.Info("%s", render.Grid(r, p.Grid, p.Target, slices.Collect(s.Scan())))
	}
	return nil
}

// scan runs the scanner over p and writes the report to out.
func scan(out io.Writer, logger dogsearch.Logger, p *puzzle.Puzzle) (int, error) {
	s := scanner.New(p.Grid, p.Target)
	logger.Verbose("puzzle: %dx%d, target %s", p.Grid.Width(), p.Grid.Height(), p.Target)
	logger.Verbose("checking %d lines in each of %d windows", len(scanner.WindowLines), s.Windows())

	n, err := report.Write(out, s.Scan())
	if err != nil {
		return n, fmt.Errorf("report: %w", err)
	}
	return n, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && render.IsTerminal(f)
}
