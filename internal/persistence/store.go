// Package persistence provides SQLite-backed session storage for finished
// quarters. The simulation core never touches storage; recording snapshots
// is the caller's side of the boundary, and this package is that caller's
// toolbox.
package persistence

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store wraps a SQLite connection for session storage.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS quarters (
		session_id TEXT NOT NULL,
		quarter INTEGER NOT NULL,
		profit INTEGER NOT NULL,
		favorability INTEGER NOT NULL,
		capital INTEGER NOT NULL,
		evil_score INTEGER NOT NULL,
		ousted INTEGER NOT NULL,
		retired INTEGER NOT NULL,
		state_json TEXT NOT NULL,
		log_json TEXT NOT NULL,
		PRIMARY KEY (session_id, quarter)
	);`

	_, err := s.conn.Exec(schema)
	return err
}

// NewSession registers a session and returns its id. The seed is stored so
// any session can be replayed later from its input history.
func (s *Store) NewSession(seed int64) (string, error) {
	id := uuid.NewString()
	_, err := s.conn.Exec(
		`INSERT INTO sessions (id, seed, created_at) VALUES (?, ?, ?)`,
		id, seed, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("insert session: %w", err)
	}
	return id, nil
}

// SessionInfo is one stored session.
type SessionInfo struct {
	ID        string `db:"id"`
	Seed      int64  `db:"seed"`
	CreatedAt string `db:"created_at"`
}

// Sessions lists stored sessions, newest first.
func (s *Store) Sessions() ([]SessionInfo, error) {
	var out []SessionInfo
	if err := s.conn.Select(&out, `SELECT id, seed, created_at FROM sessions ORDER BY created_at DESC`); err != nil {
		return nil, fmt.Errorf("select sessions: %w", err)
	}
	return out, nil
}

// QuarterRecord is one finished quarter's snapshot. State and log are stored
// as JSON blobs so the schema survives state-shape changes.
type QuarterRecord struct {
	SessionID    string `db:"session_id"`
	Quarter      int    `db:"quarter"`
	Profit       int    `db:"profit"`
	Favorability int    `db:"favorability"`
	Capital      int    `db:"capital"`
	EvilScore    int    `db:"evil_score"`
	Ousted       bool   `db:"ousted"`
	Retired      bool   `db:"retired"`
	StateJSON    string `db:"state_json"`
	LogJSON      string `db:"log_json"`
}

// SaveQuarter persists a quarter snapshot.
func (s *Store) SaveQuarter(rec QuarterRecord) error {
	_, err := s.conn.Exec(
		`INSERT INTO quarters
		 (session_id, quarter, profit, favorability, capital, evil_score, ousted, retired, state_json, log_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.Quarter, rec.Profit, rec.Favorability, rec.Capital,
		rec.EvilScore, rec.Ousted, rec.Retired, rec.StateJSON, rec.LogJSON,
	)
	if err != nil {
		return fmt.Errorf("insert quarter: %w", err)
	}
	return nil
}

// LoadQuarters returns a session's quarters in order.
func (s *Store) LoadQuarters(sessionID string) ([]QuarterRecord, error) {
	var out []QuarterRecord
	err := s.conn.Select(&out,
		`SELECT session_id, quarter, profit, favorability, capital, evil_score, ousted, retired, state_json, log_json
		 FROM quarters WHERE session_id = ? ORDER BY quarter`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("select quarters: %w", err)
	}
	return out, nil
}

// MarshalJSON renders any snapshot value for blob storage.
func MarshalJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	return string(b), nil
}
