package sqlite

import (
	"fmt"

	"github.com/leafyapp/leafy/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case "theme":
			settings.Theme = value
		case "group_mode":
			settings.GroupMode = value
		case "sort_mode":
			settings.SortMode = value
		}
		count++
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, rows.Err()
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec("theme", settings.Theme); err != nil {
		return err
	}
	if _, err := stmt.Exec("group_mode", settings.GroupMode); err != nil {
		return err
	}
	if _, err := stmt.Exec("sort_mode", settings.SortMode); err != nil {
		return err
	}

	return tx.Commit()
}
