// Package auth tracks the signed-in Farcaster session: whether the user is
// authenticated, their profile, and the access token used against the
// backend. This file provides SQLite-backed persistence so the session
// survives restarts.
package auth

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/vocdoni/votecaster-tui/internal/api"
)

// Credentials is a persisted sign-in: the access token plus the profile it
// was validated against.
type Credentials struct {
	ID        string
	Token     string
	Profile   *api.Profile
	CreatedAt time.Time
}

// Store provides SQLite-backed persistence for the session.
type Store struct {
	db *sql.DB
}

// OpenStore opens the SQLite database at dbPath and creates the schema if
// it does not exist.
func OpenStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := createTables(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func createTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS credentials (
		id TEXT PRIMARY KEY,
		token TEXT NOT NULL,
		profile TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := db.Exec(schema)
	return err
}

// Save persists the given sign-in, replacing any previous one. There is at
// most one active session per machine user.
func (s *Store) Save(token string, profile *api.Profile) (*Credentials, error) {
	data, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}
	if _, err := s.db.Exec(`DELETE FROM credentials`); err != nil {
		return nil, fmt.Errorf("clear previous credentials: %w", err)
	}

	id := uuid.New().String()
	now := time.Now()
	_, err = s.db.Exec(
		`INSERT INTO credentials (id, token, profile, created_at) VALUES (?, ?, ?, ?)`,
		id, token, string(data), now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert credentials: %w", err)
	}
	return &Credentials{ID: id, Token: token, Profile: profile, CreatedAt: now}, nil
}

// Load retrieves the persisted sign-in, or nil when none exists.
func (s *Store) Load() (*Credentials, error) {
	row := s.db.QueryRow(`SELECT id, token, profile, created_at FROM credentials LIMIT 1`)

	var creds Credentials
	var profileJSON string
	err := row.Scan(&creds.ID, &creds.Token, &profileJSON, &creds.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan credentials: %w", err)
	}
	var profile api.Profile
	if err := json.Unmarshal([]byte(profileJSON), &profile); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	creds.Profile = &profile
	return &creds, nil
}

// Clear removes any persisted sign-in.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM credentials`); err != nil {
		return fmt.Errorf("delete credentials: %w", err)
	}
	return nil
}
