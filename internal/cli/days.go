package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/aoc/internal/wire"
)

// DaysCmd returns the days command
func DaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List solved puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.SolverAdapterWithOutput(cmd.OutOrStdout()).Days(cmd.Context())
		},
	}
}
