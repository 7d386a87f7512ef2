// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// RunRepository defines the secondary port for run persistence.
type RunRepository interface {
	// Create persists a new run.
	Create(ctx context.Context, run *RunRecord) error

	// GetByID retrieves a run by its ID.
	GetByID(ctx context.Context, id string) (*RunRecord, error)

	// List retrieves runs matching the given filters, newest first.
	List(ctx context.Context, filters RunFilters) ([]*RunRecord, error)

	// GetNextID returns the next available run ID.
	GetNextID(ctx context.Context) (string, error)
}

// RunRecord represents a run as stored in persistence.
type RunRecord struct {
	ID          string
	Day         int
	Part        int
	Answer      uint64
	Source      string
	Fingerprint string
	DurationNS  int64
	CreatedAt   string
}

// RunFilters contains filter options for querying runs.
type RunFilters struct {
	Day   int
	Limit int
}

// InputSource defines the secondary port for reading puzzle input.
type InputSource interface {
	// Read returns the input text at path and a human-readable source name.
	// An empty path means the default input of the day; "-" means stdin.
	Read(ctx context.Context, day int, path string) (text string, source string, err error)

	// ReadFromDir returns the default input of the day inside dir.
	ReadFromDir(ctx context.Context, dir string, day int) (text string, source string, err error)
}
