package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/dogsearch/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "dogsearch",
	Short: "Find every DOG hidden in the built-in letter grid",
	Long: `dogsearch scans its built-in 14x7 letter grid for the word DOG written in a
straight line in any of eight directions: along rows, along columns, or along
diagonals, forwards or backwards.

Each match is printed with its 1-based index, the 1-based column,row of the
first letter read, and the direction, followed by the total:

  1: 8,3 (diagonal topleft -> bottomright)
  Found 1 matches.

The scan takes no input. Positional arguments and unrecognised flags are
ignored. Diagnostics (--verbose) go to stderr; stdout carries only the report.

Exit Codes:
  0  - Success
  1  - General error (stdout could not be written)
  2  - CLI usage error (version subcommand misuse)
  3  - Internal invariant violation or unexpected panic
  10 - Embedded puzzle definition is invalid`,
	Args:               cobra.ArbitraryArgs,
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runScan,
}

// Execute runs the root command. Errors are logged to stderr before being
// returned for exit-code mapping.
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	if err := rootCmd.Execute(); err != nil {
		logging.NewConsoleLogger(rootCmd.ErrOrStderr(), false).Error("%v", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Write scan diagnostics to stderr")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
