package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/aoc/internal/config"
	"github.com/example/aoc/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize an aoc workspace",
		Long: `Initialize an aoc workspace in the current directory.

This command:
1. Writes .aoc/config.json with default settings
2. Creates the input directory
3. Creates the run ledger database (~/.aoc/aoc.db, or $AOC_DB_PATH)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initRunE(cmd.OutOrStdout(), os.Getwd, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config")

	return cmd
}

func initRunE(out io.Writer, getwd func() (string, error), force bool) error {
	dir, err := getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfig(dir)
	switch {
	case err == nil && !force:
		fmt.Fprintf(out, "✓ Config already exists at %s\n", config.Path(dir))
	case err == nil || errors.Is(err, os.ErrNotExist):
		cfg = config.Default()
		if err := config.SaveConfig(dir, cfg); err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ Config written to %s\n", config.Path(dir))
	default:
		return err
	}

	inputDir := cfg.InputDir
	if !filepath.IsAbs(inputDir) {
		inputDir = filepath.Join(dir, inputDir)
	}
	if err := os.MkdirAll(inputDir, 0755); err != nil {
		return fmt.Errorf("failed to create input directory: %w", err)
	}
	fmt.Fprintf(out, "✓ Input directory ready at %s\n", inputDir)

	dbPath, err := db.GetDBPath()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	if _, err := db.GetDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	fmt.Fprintf(out, "✓ Run ledger initialized at %s\n", dbPath)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintf(out, "  save your puzzle input as %s\n", filepath.Join(cfg.InputDir, "01.txt"))
	fmt.Fprintln(out, "  aoc solve 1")

	return nil
}
