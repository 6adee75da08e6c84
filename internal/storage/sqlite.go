// Package storage provides SQLite-based persistence for dialogue transcripts.
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
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-parley/internal/core"
)

// ErrSessionNotFound is returned when no session matches an ID or prefix.
var ErrSessionNotFound = errors.New("storage: session not found")

// ErrAmbiguousSession is returned when a prefix matches several sessions.
var ErrAmbiguousSession = errors.New("storage: ambiguous session prefix")

// Store manages the SQLite database connection for transcript persistence.
type Store struct {
	db *sql.DB
}

// SessionEntry summarises one recorded play session.
type SessionEntry struct {
	ID        string
	SceneID   string
	User      string
	StartedAt time.Time
	Lines     int
	LastMood  string // Mood after the last committed line, empty if none
}

// LineEntry is one committed dialogue line.
type LineEntry struct {
	ID        int64
	SessionID string
	Seq       int
	Line      string
	Mood      string
	Reply     string
	CreatedAt time.Time
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

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			scene_id TEXT NOT NULL,
			user TEXT NOT NULL DEFAULT '',
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_scene ON sessions(scene_id);

		CREATE TABLE IF NOT EXISTS lines (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL REFERENCES sessions(id),
			seq INTEGER NOT NULL,
			line TEXT NOT NULL,
			mood TEXT NOT NULL,
			reply TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(session_id, seq)
		);
		CREATE INDEX IF NOT EXISTS idx_lines_session ON lines(session_id, seq);
	`

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

// StartSession records a new play session and returns its ID.
func (s *Store) StartSession(sceneID, user string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO sessions (id, scene_id, user) VALUES (?, ?, ?)",
		id, sceneID, user,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot start session: %w", err)
	}
	return id, nil
}

// SaveLine appends a committed exchange to the session's transcript.
// Returns the sequence number of the line within the session, starting at 1.
func (s *Store) SaveLine(sessionID string, ex core.Exchange) (int, error) {
	var seq int
	err := s.db.QueryRow(
		"SELECT COALESCE(MAX(seq), 0) + 1 FROM lines WHERE session_id = ?",
		sessionID,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot allocate line: %w", err)
	}

	_, err = s.db.Exec(
		"INSERT INTO lines (session_id, seq, line, mood, reply) VALUES (?, ?, ?, ?, ?)",
		sessionID, seq, ex.Line, ex.Mood, ex.Reply,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save line: %w", err)
	}
	return seq, nil
}

// Lines retrieves a session's transcript in commit order.
func (s *Store) Lines(sessionID string) ([]LineEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, seq, line, mood, reply, created_at
		 FROM lines
		 WHERE session_id = ?
		 ORDER BY seq`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query lines: %w", err)
	}
	defer rows.Close()

	var entries []LineEntry
	for rows.Next() {
		var e LineEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Seq, &e.Line, &e.Mood, &e.Reply, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Sessions retrieves the most recent sessions, newest first.
func (s *Store) Sessions(limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT s.id, s.scene_id, s.user, s.started_at,
		        (SELECT COUNT(*) FROM lines l WHERE l.session_id = s.id),
		        COALESCE((SELECT l.mood FROM lines l WHERE l.session_id = s.id ORDER BY l.seq DESC LIMIT 1), '')
		 FROM sessions s
		 ORDER BY s.rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var startedAt any
		if err := rows.Scan(&e.ID, &e.SceneID, &e.User, &startedAt, &e.Lines, &e.LastMood); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.StartedAt = parseTime(startedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// FindSession resolves a full session ID from an ID prefix.
func (s *Store) FindSession(prefix string) (string, error) {
	rows, err := s.db.Query(
		"SELECT id FROM sessions WHERE substr(id, 1, length(?)) = ? LIMIT 2",
		prefix, prefix,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("storage: row iteration error: %w", err)
	}

	switch len(ids) {
	case 0:
		return "", fmt.Errorf("%w: %q", ErrSessionNotFound, prefix)
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("%w: %q", ErrAmbiguousSession, prefix)
	}
}

// MoodTally counts a session's lines by the mood they were answered in.
func (s *Store) MoodTally(sessionID string) (map[string]int, error) {
	rows, err := s.db.Query(
		"SELECT mood, COUNT(*) FROM lines WHERE session_id = ? GROUP BY mood",
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot tally moods: %w", err)
	}
	defer rows.Close()

	tally := make(map[string]int)
	for rows.Next() {
		var mood string
		var n int
		if err := rows.Scan(&mood, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		tally[mood] = n
	}
	return tally, rows.Err()
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
