package runstore

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/sokotools/sokosolve/board"
)

// ErrClosed is returned by operations on a closed Store.
var ErrClosed = errors.New("runstore: store is closed")

// Run is one recorded solver execution.
type Run struct {
	ID         int64
	LevelSHA   string
	Method     string
	Solved     bool
	Pushes     int // -1 when not solved
	Moves      int // -1 when not solved
	Created    int
	Visited    int
	Duplicates int
	Elapsed    time.Duration
	At         time.Time
}

// Store wraps a single-file SQLite database of runs.
type Store struct {
	db *sql.DB
}

// Open creates or opens the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("runstore: empty database path")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("runstore: open %s: %w", path, err)
	}
	// The store is touched once per CLI invocation; one connection is
	// plenty and sidesteps SQLITE_BUSY entirely.
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
		`CREATE TABLE IF NOT EXISTS runs (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			level_sha  TEXT    NOT NULL,
			method     TEXT    NOT NULL,
			solved     INTEGER NOT NULL,
			pushes     INTEGER NOT NULL,
			moves      INTEGER NOT NULL,
			created    INTEGER NOT NULL,
			visited    INTEGER NOT NULL,
			duplicates INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			ts         TEXT    NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_level_method ON runs(level_sha, method);`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("runstore: init schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return ErrClosed
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// LevelSHA returns the hex SHA-256 of the level's normalized XSB
// rendering, including the initial player and box positions. Parsing
// already canonicalizes walls and padding, so the digest is stable
// across source formats.
func LevelSHA(b *board.Board) string {
	sum := sha256.Sum256([]byte(b.RenderState(board.FormatXSB, b.Player(), b.Boxes())))
	return hex.EncodeToString(sum[:])
}

// Record inserts one run. A zero At timestamp is filled with the current
// time; run.ID is ignored, SQLite assigns it.
func (s *Store) Record(ctx context.Context, run Run) error {
	if s.db == nil {
		return ErrClosed
	}
	at := run.At
	if at.IsZero() {
		at = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs
			(level_sha, method, solved, pushes, moves, created, visited, duplicates, elapsed_ms, ts)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.LevelSHA, run.Method, boolInt(run.Solved),
		run.Pushes, run.Moves,
		run.Created, run.Visited, run.Duplicates,
		run.Elapsed.Milliseconds(), at.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("runstore: record: %w", err)
	}
	return nil
}

// Recent returns the n most recently recorded runs, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]Run, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, level_sha, method, solved, pushes, moves,
			created, visited, duplicates, elapsed_ms, ts
		 FROM runs ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("runstore: recent: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("runstore: recent: %w", err)
	}
	return out, nil
}

// BestFor returns the solved run with the fewest pushes (ties broken by
// moves, then recency) for a level and method, or nil when the level has
// no solved run recorded.
func (s *Store) BestFor(ctx context.Context, levelSHA, method string) (*Run, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, level_sha, method, solved, pushes, moves,
			created, visited, duplicates, elapsed_ms, ts
		 FROM runs
		 WHERE level_sha = ? AND method = ? AND solved = 1
		 ORDER BY pushes ASC, moves ASC, id DESC LIMIT 1`, levelSHA, method)
	if err != nil {
		return nil, fmt.Errorf("runstore: best: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("runstore: best: %w", err)
		}
		return nil, nil
	}
	run, err := scanRun(rows)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func scanRun(rows *sql.Rows) (Run, error) {
	var (
		run       Run
		solved    int
		elapsedMS int64
		ts        string
	)
	if err := rows.Scan(&run.ID, &run.LevelSHA, &run.Method, &solved,
		&run.Pushes, &run.Moves, &run.Created, &run.Visited, &run.Duplicates,
		&elapsedMS, &ts); err != nil {
		return Run{}, fmt.Errorf("runstore: scan: %w", err)
	}
	run.Solved = solved != 0
	run.Elapsed = time.Duration(elapsedMS) * time.Millisecond
	at, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return Run{}, fmt.Errorf("runstore: bad timestamp %q: %w", ts, err)
	}
	run.At = at
	return run, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
