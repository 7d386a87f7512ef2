// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the CLI drives the application.
package primary

import (
	"context"
	"time"
)

// SolverService defines the primary port for solving puzzles.
type SolverService interface {
	// Solve computes one answer and records the run unless disabled.
	Solve(ctx context.Context, req SolveRequest) (*Answer, error)

	// SolveAll computes every registered (day, part) from the default inputs.
	// Results come back ordered by day, then part.
	SolveAll(ctx context.Context, req SolveAllRequest) ([]*Answer, error)

	// Explain returns a per-line breakdown of how a day reads its input.
	Explain(ctx context.Context, req ExplainRequest) (*Explanation, error)

	// ListDays returns the registered puzzles.
	ListDays(ctx context.Context) ([]*DayInfo, error)

	// ListRuns returns recorded runs, newest first.
	ListRuns(ctx context.Context, filters RunFilters) ([]*Run, error)

	// GetRun returns a single recorded run.
	GetRun(ctx context.Context, id string) (*Run, error)
}

// SolveRequest contains parameters for solving one part.
type SolveRequest struct {
	Day       int
	Part      int
	InputPath string // "" for the day's default file, "-" for stdin
	NoRecord  bool
}

// SolveAllRequest contains parameters for solving every registered part.
type SolveAllRequest struct {
	InputDir string // "" for the configured directory
	NoRecord bool
}

// Answer is the result of solving one part.
type Answer struct {
	Day         int
	Part        int
	Title       string
	Value       uint64
	Source      string
	Fingerprint string
	Duration    time.Duration
	RunID       string // empty when the run was not recorded
}

// ExplainRequest contains parameters for explaining a day's input.
type ExplainRequest struct {
	Day       int
	InputPath string
}

// Explanation is a per-line breakdown of one day's input.
type Explanation struct {
	Day   int
	Title string
	Lines []*LineExplanation
}

// LineExplanation describes what one input line contributes.
// Fields are labelled so the CLI can print them without knowing the day.
type LineExplanation struct {
	Number  int
	Text    string
	Skipped bool
	Reason  string // why the line was skipped
	Fields  []Field
}

// Field is a labelled value in a line explanation.
type Field struct {
	Label string
	Value string
}

// DayInfo describes a registered puzzle.
type DayInfo struct {
	Number int
	Title  string
	Parts  []int
}

// Run represents a recorded run at the port boundary.
type Run struct {
	ID          string
	Day         int
	Part        int
	Answer      uint64
	Source      string
	Fingerprint string
	Duration    time.Duration
	CreatedAt   string
}

// RunFilters contains filter options for listing runs.
type RunFilters struct {
	Day   int // 0 for every day
	Limit int // 0 for no limit
}
