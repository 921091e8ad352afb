// Package storage provides SQLite-based persistence for solved puzzles.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is the database location used when no --db flag is given.
const DefaultPath = "~/.blockjam/blockjam.db"

// Store manages the SQLite database connection for solve records.
// It is safe for concurrent use.
type Store struct {
	db *sqlx.DB
}

// Solve is a single solved puzzle.
type Solve struct {
	ID        string // UUID, assigned by SaveSolve when empty
	Session   string // Host session id (local or SSH)
	LevelID   string // Level file id, empty for generated puzzles
	Seed      uint64
	Shapes    int
	Gates     int
	Moves     int
	Duration  time.Duration
	CreatedAt time.Time
}

// solveRow is the database form of Solve.
type solveRow struct {
	ID         string `db:"id"`
	Session    string `db:"session"`
	LevelID    string `db:"level_id"`
	Seed       int64  `db:"seed"`
	Shapes     int    `db:"shapes"`
	Gates      int    `db:"gates"`
	Moves      int    `db:"moves"`
	DurationMS int64  `db:"duration_ms"`
	CreatedAt  int64  `db:"created_at"` // Unix milliseconds
}

func toRow(s Solve) solveRow {
	return solveRow{
		ID:         s.ID,
		Session:    s.Session,
		LevelID:    s.LevelID,
		Seed:       int64(s.Seed),
		Shapes:     s.Shapes,
		Gates:      s.Gates,
		Moves:      s.Moves,
		DurationMS: s.Duration.Milliseconds(),
		CreatedAt:  s.CreatedAt.UnixMilli(),
	}
}

func (r solveRow) solve() Solve {
	return Solve{
		ID:        r.ID,
		Session:   r.Session,
		LevelID:   r.LevelID,
		Seed:      uint64(r.Seed),
		Shapes:    r.Shapes,
		Gates:     r.Gates,
		Moves:     r.Moves,
		Duration:  time.Duration(r.DurationMS) * time.Millisecond,
		CreatedAt: time.UnixMilli(r.CreatedAt),
	}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SQLite allows a single writer; serialize through one connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

const schema = `
	CREATE TABLE IF NOT EXISTS solves (
		id TEXT PRIMARY KEY,
		session TEXT NOT NULL,
		level_id TEXT NOT NULL DEFAULT '',
		seed INTEGER NOT NULL DEFAULT 0,
		shapes INTEGER NOT NULL,
		gates INTEGER NOT NULL,
		moves INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_solves_created ON solves(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(moves, duration_ms);
`

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

const insertSolve = `
	INSERT INTO solves (id, session, level_id, seed, shapes, gates, moves, duration_ms, created_at)
	VALUES (:id, :session, :level_id, :seed, :shapes, :gates, :moves, :duration_ms, :created_at)`

// SaveSolve records a solved puzzle. A missing ID or CreatedAt is filled in.
// Returns the stored record.
func (s *Store) SaveSolve(solve Solve) (Solve, error) {
	if solve.ID == "" {
		solve.ID = uuid.NewString()
	}
	if solve.CreatedAt.IsZero() {
		solve.CreatedAt = time.Now()
	}
	// Stored precision is milliseconds.
	solve.CreatedAt = time.UnixMilli(solve.CreatedAt.UnixMilli())

	if _, err := s.db.NamedExec(insertSolve, toRow(solve)); err != nil {
		return Solve{}, fmt.Errorf("storage: cannot save solve: %w", err)
	}
	return solve, nil
}

// RecentSolves retrieves the most recent solves, newest first.
func (s *Store) RecentSolves(limit int) ([]Solve, error) {
	return s.query(`SELECT * FROM solves ORDER BY created_at DESC, id LIMIT ?`, limit)
}

// BestSolves retrieves the solves with the fewest moves, ties broken by time.
func (s *Store) BestSolves(limit int) ([]Solve, error) {
	return s.query(`SELECT * FROM solves ORDER BY moves ASC, duration_ms ASC, created_at ASC LIMIT ?`, limit)
}

// SessionSolves retrieves the solves of one session, newest first.
func (s *Store) SessionSolves(session string, limit int) ([]Solve, error) {
	return s.query(`SELECT * FROM solves WHERE session = ? ORDER BY created_at DESC, id LIMIT ?`, session, limit)
}

// SolveByID retrieves a single solve. Returns nil if not found.
func (s *Store) SolveByID(id string) (*Solve, error) {
	var row solveRow
	err := s.db.Get(&row, `SELECT * FROM solves WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solve: %w", err)
	}
	solve := row.solve()
	return &solve, nil
}

// query runs a SELECT whose last argument is the limit.
func (s *Store) query(q string, args ...any) ([]Solve, error) {
	if n := len(args); n > 0 {
		if limit, ok := args[n-1].(int); ok && limit <= 0 {
			args[n-1] = 10
		}
	}

	var rows []solveRow
	if err := s.db.Select(&rows, q, args...); err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	out := make([]Solve, len(rows))
	for i, r := range rows {
		out[i] = r.solve()
	}
	return out, nil
}

// ClearSolves deletes all solve records.
func (s *Store) ClearSolves() error {
	if _, err := s.db.Exec("DELETE FROM solves"); err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over all solves.
type Stats struct {
	Solves    int
	Sessions  int
	BestMoves int
	AvgMoves  float64
	Fastest   time.Duration
}

// GetStats retrieves aggregated statistics. All fields are zero when no
// solves exist.
func (s *Store) GetStats() (Stats, error) {
	var row struct {
		Solves   int             `db:"solves"`
		Sessions int             `db:"sessions"`
		Best     sql.NullInt64   `db:"best"`
		Avg      sql.NullFloat64 `db:"avg"`
		Fastest  sql.NullInt64   `db:"fastest"`
	}
	err := s.db.Get(&row, `
		SELECT COUNT(*) AS solves,
		       COUNT(DISTINCT session) AS sessions,
		       MIN(moves) AS best,
		       AVG(moves) AS avg,
		       MIN(duration_ms) AS fastest
		FROM solves`)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	return Stats{
		Solves:    row.Solves,
		Sessions:  row.Sessions,
		BestMoves: int(row.Best.Int64),
		AvgMoves:  row.Avg.Float64,
		Fastest:   time.Duration(row.Fastest.Int64) * time.Millisecond,
	}, nil
}
