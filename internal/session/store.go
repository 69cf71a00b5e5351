// Package session persists the logged-in farmer and language
// preference across runs. Storage is a small SQLite key/value table;
// the farmer record and the language live under separate keys so the
// language survives logout.
package session

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/krishemitra/krishi/internal/common"
	"github.com/krishemitra/krishi/internal/i18n"
	"github.com/krishemitra/krishi/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Storage keys. Each value is stored under its own dedicated key.
const (
	keyFarmer   = "farmer"
	keyLanguage = "language"
)

// Store is the persisted client session.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open creates or opens the session database at dbPath.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("session database path is required")
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't benefit from multiple connections
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping session database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("failed to create settings table: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Farmer returns the previously persisted farmer, if any.
func (s *Store) Farmer() (model.Farmer, bool, error) {
	raw, ok, err := s.get(keyFarmer)
	if err != nil || !ok {
		return model.Farmer{}, false, err
	}

	var farmer model.Farmer
	if err := json.Unmarshal([]byte(raw), &farmer); err != nil {
		return model.Farmer{}, false, fmt.Errorf("%w: %v", common.ErrSessionCorrupted, err)
	}
	return farmer, true, nil
}

// SaveFarmer persists the farmer record, replacing any previous one.
func (s *Store) SaveFarmer(farmer model.Farmer) error {
	encoded, err := json.Marshal(farmer)
	if err != nil {
		return fmt.Errorf("failed to encode farmer: %w", err)
	}
	return s.set(keyFarmer, string(encoded))
}

// Clear removes the farmer record. The language preference is kept on
// purpose: logout should not reset the farmer's chosen language.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM settings WHERE key = ?`, keyFarmer); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Language returns the persisted language preference, defaulting to
// English when none was saved.
func (s *Store) Language() (i18n.Language, error) {
	raw, ok, err := s.get(keyLanguage)
	if err != nil {
		return i18n.English, err
	}
	if !ok {
		return i18n.English, nil
	}
	return i18n.Parse(raw), nil
}

// SaveLanguage persists the language preference.
func (s *Store) SaveLanguage(lang i18n.Language) error {
	return s.set(keyLanguage, string(lang))
}

func (s *Store) get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
