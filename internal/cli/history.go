package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/aoc/internal/core/puzzle"
	"github.com/example/aoc/internal/wire"
)

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	var dayFlag string
	var limit int

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List recorded runs",
		Long: `List answers recorded in the run ledger, newest first.
Pass a run ID to show that run in detail.

Examples:
  aoc history
  aoc history --day 2 --limit 5
  aoc history RUN-003`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return wire.SolverAdapterWithOutput(cmd.OutOrStdout()).ShowRun(cmd.Context(), args[0])
			}

			day := 0
			if dayFlag != "" {
				d, err := puzzle.ParseDay(dayFlag)
				if err != nil {
					return err
				}
				day = d
			}
			if limit < 0 {
				return fmt.Errorf("invalid limit %d: must not be negative", limit)
			}

			return wire.SolverAdapterWithOutput(cmd.OutOrStdout()).History(cmd.Context(), day, limit)
		},
	}

	cmd.Flags().StringVarP(&dayFlag, "day", "d", "", "Filter by day")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of runs to show (0 for all)")

	return cmd
}
