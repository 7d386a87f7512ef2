package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/example/aoc/internal/cli"
	"github.com/example/aoc/internal/logging"
	"github.com/example/aoc/internal/version"
	"github.com/example/aoc/internal/wire"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "aoc",
		Short:   "aoc - Advent of Code 2023 solutions",
		Version: version.String(),
		Long: `aoc solves Advent of Code 2023 puzzles from local input files.
Answers can be recorded in a run ledger for later comparison.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(verbose)
			if err != nil {
				return err
			}
			wire.SetLogger(logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = wire.Logger().Sync()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.SolveCmd())
	rootCmd.AddCommand(cli.ExplainCmd())
	rootCmd.AddCommand(cli.DaysCmd())
	rootCmd.AddCommand(cli.HistoryCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
