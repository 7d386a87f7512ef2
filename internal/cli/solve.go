package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/aoc/internal/core/puzzle"
	"github.com/example/aoc/internal/wire"
)

// SolveCmd returns the solve command
func SolveCmd() *cobra.Command {
	var part int
	var inputPath string
	var inputDir string
	var noRecord bool
	var all bool

	cmd := &cobra.Command{
		Use:   "solve [day]",
		Short: "Solve a puzzle",
		Long: `Solve one day's puzzle, or every registered puzzle with --all.

Input is read from <input_dir>/<NN>.txt unless --input is given.
Pass --input - to read from stdin.

Examples:
  aoc solve 1
  aoc solve day02 --part 2
  aoc solve 1 --input - < sample.txt
  aoc solve --all --input-dir puzzles`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				if len(args) > 0 {
					return fmt.Errorf("--all cannot be combined with a day")
				}
				return wire.SolverAdapterWithOutput(cmd.OutOrStdout()).SolveAll(cmd.Context(), inputDir, noRecord)
			}

			if len(args) == 0 {
				return fmt.Errorf("a day is required (or use --all)")
			}
			day, err := puzzle.ParseDay(args[0])
			if err != nil {
				return err
			}
			if part != 0 {
				if _, err := puzzle.ParsePart(part); err != nil {
					return err
				}
			}

			return wire.SolverAdapterWithOutput(cmd.OutOrStdout()).Solve(cmd.Context(), day, part, inputPath, noRecord)
		},
	}

	cmd.Flags().IntVarP(&part, "part", "p", 0, "Part to solve (1 or 2, default both)")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input file path, or - for stdin")
	cmd.Flags().StringVar(&inputDir, "input-dir", "", "Directory of NN.txt inputs for --all (defaults to config input_dir)")
	cmd.Flags().BoolVar(&noRecord, "no-record", false, "Do not record the run in the ledger")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Solve every registered puzzle")

	return cmd
}
