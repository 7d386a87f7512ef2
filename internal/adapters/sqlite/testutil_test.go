// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() so tests run against the
// authoritative schema. Do not hardcode CREATE TABLE statements in test files.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/aoc/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedRun inserts a test run with an explicit timestamp.
func seedRun(t *testing.T, db *sql.DB, id string, day, part int, answer string) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO runs (id, day, part, answer, source, fingerprint, duration_ns, created_at) VALUES (?, ?, ?, ?, 'seed', 'abc', 10, '2023-12-01 05:00:00')",
		id, day, part, answer,
	)
	if err != nil {
		t.Fatalf("failed to seed run: %v", err)
	}
}
