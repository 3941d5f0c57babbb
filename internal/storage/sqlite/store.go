package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/leafyapp/leafy/internal/models"
)

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	s.db = db

	if err := s.ensureSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Seed default settings if the table is empty
	if _, err := s.GetSettings(); err != nil {
		defaults := models.Settings{
			Theme:     "dark",
			GroupMode: "plant",
			SortMode:  "urgency",
		}
		if err := s.SaveSettings(defaults); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'leafy init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	s.db = db

	return s.ensureSchema()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS reminders (
	id TEXT PRIMARY KEY,
	plant_id TEXT NOT NULL,
	plant_name TEXT NOT NULL,
	type TEXT NOT NULL,
	interval_days INTEGER NOT NULL,
	last_done INTEGER NOT NULL,
	next_due INTEGER NOT NULL,
	history TEXT NOT NULL DEFAULT '[]'
);
CREATE TABLE IF NOT EXISTS plants (
	id TEXT PRIMARY KEY,
	common_name TEXT NOT NULL,
	scientific_name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	health_status TEXT NOT NULL DEFAULT '',
	is_plant INTEGER NOT NULL DEFAULT 1,
	care TEXT NOT NULL DEFAULT '{}',
	identified_at INTEGER NOT NULL,
	image_path TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`
	_, err := s.db.Exec(ddl)
	return err
}

func (s *Store) GetConfigPath() string {
	return s.path
}
