// Package history records one row per check or fix invocation in a local
// SQLite database, so issue counts can be compared across runs.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY,
    path TEXT NOT NULL,
    kind TEXT NOT NULL,
    turns INTEGER NOT NULL,
    total_issues INTEGER NOT NULL,
    filler_issues INTEGER NOT NULL DEFAULT 0,
    echo_issues INTEGER NOT NULL DEFAULT 0,
    hollow_issues INTEGER NOT NULL DEFAULT 0,
    starter_issues INTEGER NOT NULL DEFAULT 0,
    fillers_reduced INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_path ON runs(path, id);
`

// Run is one recorded invocation.
type Run struct {
	ID             int64
	Path           string
	Kind           string // "check" or "fix"
	Turns          int
	TotalIssues    int
	FillerIssues   int
	EchoIssues     int
	HollowIssues   int
	StarterIssues  int
	FillersReduced int
	CreatedAt      time.Time
}

// PathSummary aggregates runs for one transcript path.
type PathSummary struct {
	Path       string
	Runs       int
	LastIssues int
	PrevIssues int // total issues of the run before the last; -1 if none
}

// Store wraps the history database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path and applies
// the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one run. CreatedAt defaults to now when zero.
func (s *Store) Record(run Run) error {
	created := run.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs(path, kind, turns, total_issues, filler_issues,
		    echo_issues, hollow_issues, starter_issues, fillers_reduced, created_at)
		 VALUES(?,?,?,?,?,?,?,?,?,?)`,
		run.Path, run.Kind, run.Turns, run.TotalIssues, run.FillerIssues,
		run.EchoIssues, run.HollowIssues, run.StarterIssues, run.FillersReduced,
		created.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first, optionally filtered by path.
func (s *Store) Recent(limit int, path string) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, path, kind, turns, total_issues, filler_issues,
	    echo_issues, hollow_issues, starter_issues, fillers_reduced, created_at
	    FROM runs`
	args := []any{}
	if path != "" {
		query += ` WHERE path = ?`
		args = append(args, path)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var created string
		if err := rows.Scan(&r.ID, &r.Path, &r.Kind, &r.Turns, &r.TotalIssues,
			&r.FillerIssues, &r.EchoIssues, &r.HollowIssues, &r.StarterIssues,
			&r.FillersReduced, &created); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, created)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// PathSummaries aggregates all runs per path: run count, last issue total,
// and the previous run's total for trend display.
func (s *Store) PathSummaries() ([]PathSummary, error) {
	rows, err := s.db.Query(
		`SELECT path, total_issues FROM runs ORDER BY path, id`)
	if err != nil {
		return nil, fmt.Errorf("query summaries: %w", err)
	}
	defer rows.Close()

	var summaries []PathSummary
	var cur *PathSummary
	for rows.Next() {
		var path string
		var issues int
		if err := rows.Scan(&path, &issues); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		if cur == nil || cur.Path != path {
			summaries = append(summaries, PathSummary{Path: path, PrevIssues: -1})
			cur = &summaries[len(summaries)-1]
		}
		cur.Runs++
		cur.PrevIssues = cur.LastIssues
		if cur.Runs == 1 {
			cur.PrevIssues = -1
		}
		cur.LastIssues = issues
	}
	return summaries, rows.Err()
}
