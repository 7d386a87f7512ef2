// Package wire provides dependency injection for the aoc application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"

	cliadapter "github.com/example/aoc/internal/adapters/cli"
	"github.com/example/aoc/internal/adapters/filesystem"
	"github.com/example/aoc/internal/adapters/sqlite"
	"github.com/example/aoc/internal/app"
	"github.com/example/aoc/internal/config"
	"github.com/example/aoc/internal/core/puzzle"
	"github.com/example/aoc/internal/db"
	"github.com/example/aoc/internal/ports/primary"
	"github.com/example/aoc/internal/ports/secondary"
)

var (
	solverService primary.SolverService
	cfg           *config.Config
	logger        = zap.NewNop()
	once          sync.Once
)

// SetLogger replaces the logger handed to services. It must be called before
// the first service is requested.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

// Logger returns the shared logger.
func Logger() *zap.Logger {
	return logger
}

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// SolverService returns the singleton SolverService instance.
func SolverService() primary.SolverService {
	once.Do(initServices)
	return solverService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cwd, err := os.Getwd()
	if err != nil {
		logger.Fatal("failed to get working directory", zap.Error(err))
	}

	cfg, err = config.LoadOrDefault(cwd)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	// The run ledger is optional unless recording is enabled.
	var runRepo secondary.RunRepository
	database, err := db.GetDB()
	switch {
	case err == nil:
		runRepo = sqlite.NewRunRepository(database)
	case cfg.RecordRuns:
		logger.Fatal("failed to initialize database", zap.Error(err))
	default:
		logger.Warn("run ledger unavailable", zap.Error(err))
	}

	registry := puzzle.Default(cfg.Thresholds.Bag())
	input := filesystem.NewInputAdapter(cfg.InputDir, nil)

	solverService = app.NewSolverService(registry, input, runRepo, app.SolverOptions{
		RecordRuns: cfg.RecordRuns,
		Thresholds: cfg.Thresholds.Bag(),
	}, logger)
}

// SolverAdapter returns a new SolverAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func SolverAdapter() *cliadapter.SolverAdapter {
	return SolverAdapterWithOutput(os.Stdout)
}

// SolverAdapterWithOutput returns a new SolverAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func SolverAdapterWithOutput(out io.Writer) *cliadapter.SolverAdapter {
	once.Do(initServices)
	return cliadapter.NewSolverAdapter(solverService, out)
}
