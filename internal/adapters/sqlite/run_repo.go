// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/example/aoc/internal/core/puzzle"
	"github.com/example/aoc/internal/ports/secondary"
)

// RunRepository implements secondary.RunRepository with SQLite.
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new SQLite run repository.
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create persists a new run.
// Answers are stored as decimal text so the full uint64 range survives.
func (r *RunRepository) Create(ctx context.Context, run *secondary.RunRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO runs (id, day, part, answer, source, fingerprint, duration_ns) VALUES (?, ?, ?, ?, ?, ?, ?)",
		run.ID, run.Day, run.Part, strconv.FormatUint(run.Answer, 10), run.Source, run.Fingerprint, run.DurationNS,
	)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}

	return nil
}

const runColumns = "id, day, part, answer, source, fingerprint, duration_ns, created_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*secondary.RunRecord, error) {
	var (
		answer    string
		createdAt time.Time
	)

	record := &secondary.RunRecord{}
	err := row.Scan(&record.ID, &record.Day, &record.Part, &answer, &record.Source, &record.Fingerprint, &record.DurationNS, &createdAt)
	if err != nil {
		return nil, err
	}

	record.Answer, err = strconv.ParseUint(answer, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("run %s has a corrupt answer %q: %w", record.ID, answer, err)
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// GetByID retrieves a run by its ID.
func (r *RunRepository) GetByID(ctx context.Context, id string) (*secondary.RunRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+runColumns+" FROM runs WHERE id = ?",
		id,
	)

	record, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return record, nil
}

// List retrieves runs matching the given filters, newest first.
func (r *RunRepository) List(ctx context.Context, filters secondary.RunFilters) ([]*secondary.RunRecord, error) {
	query := "SELECT " + runColumns + " FROM runs"
	var (
		where []string
		args  []any
	)

	if filters.Day > 0 {
		where = append(where, "day = ?")
		args = append(args, filters.Day)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	// IDs are zero-padded but grow past three digits, so order numerically.
	query += " ORDER BY CAST(SUBSTR(id, 5) AS INTEGER) DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*secondary.RunRecord
	for rows.Next() {
		record, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, record)
	}

	return runs, rows.Err()
}

// GetNextID returns the next available run ID.
func (r *RunRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM runs",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next run ID: %w", err)
	}

	return puzzle.GenerateRunID(maxID), nil
}
