// Package history persists the ledger of research requests using SQLite.
//
// Research is asynchronous: creating a task returns a request id that must
// be presented later to fetch the report. The ledger keeps those ids with
// their inputs and last known status so a session can recover them.
package history

import (
	"database/sql"
	"time"

	// SQLite driver (required for database/sql registration).
	_ "github.com/mattn/go-sqlite3"
)

// Entry is one recorded research request.
type Entry struct {
	RequestID string    `json:"request_id"`
	Input     string    `json:"input"`
	Model     string    `json:"model"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store manages the research request database.
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database at the given path, creating the schema if
// it doesn't exist.
func Open(dbPath string) (*Store, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	store := &Store{db: db}
	if err := store.init(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

// openDB opens a single SQLite database with optimal settings.
func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	return db, nil
}

func (s *Store) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS research_requests (
			request_id TEXT PRIMARY KEY,
			input      TEXT NOT NULL,
			model      TEXT NOT NULL DEFAULT '',
			status     TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_research_created
			ON research_requests(created_at DESC);
	`)
	return err
}

// RecordCreate stores a newly created research request.
func (s *Store) RecordCreate(requestID, input, model, status string) error {
	now := time.Now().UTC()
	_, err := s.db.Exec(`
		INSERT INTO research_requests (request_id, input, model, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(request_id) DO UPDATE SET status = excluded.status, updated_at = excluded.updated_at
	`, requestID, input, model, status, now, now)
	return err
}

// UpdateStatus records the last known status of a request.
func (s *Store) UpdateStatus(requestID, status string) error {
	_, err := s.db.Exec(`
		UPDATE research_requests SET status = ?, updated_at = ? WHERE request_id = ?
	`, status, time.Now().UTC(), requestID)
	return err
}

// Recent returns the most recently created requests, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT request_id, input, model, status, created_at, updated_at
		FROM research_requests
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.RequestID, &e.Input, &e.Model, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get returns one request by id.
func (s *Store) Get(requestID string) (*Entry, error) {
	var e Entry
	err := s.db.QueryRow(`
		SELECT request_id, input, model, status, created_at, updated_at
		FROM research_requests WHERE request_id = ?
	`, requestID).Scan(&e.RequestID, &e.Input, &e.Model, &e.Status, &e.CreatedAt, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
