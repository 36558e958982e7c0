// Package database persists the application's collections in a local
// sqlite file. Each collection lives under one fixed key as a JSON
// document, mirroring the key/value layout the app state expects.
package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Fixed logical keys of the persisted state.
const (
	KeyInventory  = "inventory"
	KeyMenuItems  = "menuItems"
	KeyExtraItems = "extraItems"
	KeyPackaging  = "packaging"
	KeySales      = "sales"
	KeyMiscSales  = "miscSales"
	KeyReports    = "reports"
)

const schema = `
CREATE TABLE IF NOT EXISTS app_state (
	key TEXT PRIMARY KEY,
	doc TEXT NOT NULL
);`

type Store struct {
	db *sqlx.DB
}

// Open opens (creating if needed) the sqlite file at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize app_state table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// LoadDoc unmarshals the document stored under key into v. The second
// return is false when the key has never been written.
func (s *Store) LoadDoc(key string, v any) (bool, error) {
	var doc string
	err := s.db.Get(&doc, `SELECT doc FROM app_state WHERE key = ?`, key)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load doc %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(doc), v); err != nil {
		return false, fmt.Errorf("failed to decode doc %q: %w", key, err)
	}
	return true, nil
}

// SaveDoc serializes v and writes it under key, replacing any previous
// document.
func (s *Store) SaveDoc(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode doc %q: %w", key, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO app_state (key, doc) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET doc = excluded.doc`,
		key, string(b))
	if err != nil {
		return fmt.Errorf("failed to save doc %q: %w", key, err)
	}
	return nil
}
