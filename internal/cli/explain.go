package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/aoc/internal/core/puzzle"
	"github.com/example/aoc/internal/wire"
)

// ExplainCmd returns the explain command
func ExplainCmd() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "explain [day]",
		Short: "Show how each input line contributes to the answer",
		Long: `Print a per-line breakdown of a day's input.

Lines that contribute nothing (no digit, malformed game record) are
marked as skipped together with the reason.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := puzzle.ParseDay(args[0])
			if err != nil {
				return err
			}
			return wire.SolverAdapterWithOutput(cmd.OutOrStdout()).Explain(cmd.Context(), day, inputPath)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input file path, or - for stdin")

	return cmd
}
