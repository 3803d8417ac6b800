// Package store persists lab runs and their failures in a local SQLite
// database.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // sqlite3 driver

	"github.com/mwichro/dealab/internal/exc"
	"github.com/mwichro/dealab/internal/lab"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	started_at DATETIME NOT NULL,
	scenarios  INTEGER NOT NULL,
	failures   INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS failures (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id   TEXT NOT NULL REFERENCES runs(id),
	scenario TEXT NOT NULL,
	kind     TEXT NOT NULL,
	file     TEXT NOT NULL,
	line     INTEGER NOT NULL,
	cond     TEXT NOT NULL,
	report   TEXT NOT NULL,
	at       DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_failures_run ON failures(run_id);
`

// Store wraps the runs database.
type Store struct {
	db   *sql.DB
	path string
}

// Run is one stored sweep of scenarios.
type Run struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Scenarios int       `json:"scenarios"`
	Failures  int       `json:"failures"`
}

// Failure is one stored check failure.
type Failure struct {
	RunID     string    `json:"run_id"`
	Scenario  string    `json:"scenario"`
	Kind      string    `json:"kind"`
	File      string    `json:"file"`
	Line      int       `json:"line"`
	Condition string    `json:"condition"`
	Report    string    `json:"report"`
	At        time.Time `json:"at"`
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, classify(err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, classify(err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, classify(err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, classify(err)
	}
	return &Store{db: db, path: path}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Path returns the database location.
func (s *Store) Path() string { return s.path }

// SaveRun stores the outcomes of one sweep under a fresh run id, all in a
// single transaction. Passing outcomes only count toward the run totals;
// failed ones additionally get a failures row each.
func (s *Store) SaveRun(outcomes []lab.Outcome) (string, error) {
	runID := uuid.NewString()
	now := time.Now().UTC()

	failed := 0
	for _, o := range outcomes {
		if o.Failed() {
			failed++
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", classify(err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO runs (id, started_at, scenarios, failures) VALUES (?, ?, ?, ?)`,
		runID, now, len(outcomes), failed,
	); err != nil {
		return "", classify(err)
	}

	for _, o := range outcomes {
		if !o.Failed() {
			continue
		}
		var kind, file, cond string
		var line int
		var e *exc.Error
		if errors.As(o.Err, &e) {
			kind, file, line, cond = e.Name(), e.File(), e.Line(), e.Condition()
		} else {
			kind = "error"
		}
		if _, err := tx.Exec(
			`INSERT INTO failures (run_id, scenario, kind, file, line, cond, report, at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, o.Scenario, kind, file, line, cond, o.Report, now,
		); err != nil {
			return "", classify(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", classify(err)
	}
	return runID, nil
}

// Runs returns all stored runs, oldest first.
func (s *Store) Runs() ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, started_at, scenarios, failures FROM runs ORDER BY started_at, id`)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.Scenarios, &r.Failures); err != nil {
			return nil, classify(err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Failures returns the stored failures of one run.
func (s *Store) Failures(runID string) ([]Failure, error) {
	rows, err := s.db.Query(
		`SELECT run_id, scenario, kind, file, line, cond, report, at
		 FROM failures WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var failures []Failure
	for rows.Next() {
		var f Failure
		if err := rows.Scan(&f.RunID, &f.Scenario, &f.Kind, &f.File,
			&f.Line, &f.Condition, &f.Report, &f.At); err != nil {
			return nil, classify(err)
		}
		failures = append(failures, f)
	}
	return failures, rows.Err()
}

// classify turns a driver error into its catalog form.
func classify(err error) error {
	if err == nil {
		return nil
	}
	return exc.Do(func() { exc.AssertThrowSQLite(err) })
}
