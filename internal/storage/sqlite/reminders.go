package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/leafyapp/leafy/internal/constants"
	"github.com/leafyapp/leafy/internal/models"
)

// Timestamps are stored as Unix milliseconds so the due-date arithmetic
// survives a round trip exactly.

func (s *Store) GetAllReminders() ([]models.Reminder, error) {
	rows, err := s.db.Query(`
		SELECT id, plant_id, plant_name, type, interval_days, last_done, next_due, history
		FROM reminders ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		var r models.Reminder
		var careType, historyJSON string
		var lastDone, nextDue int64

		err := rows.Scan(&r.ID, &r.PlantID, &r.PlantName, &careType, &r.IntervalDays,
			&lastDone, &nextDue, &historyJSON)
		if err != nil {
			return nil, err
		}

		r.Type = constants.CareType(careType)
		r.LastDone = time.UnixMilli(lastDone)
		r.NextDue = time.UnixMilli(nextDue)

		var history []int64
		if err := json.Unmarshal([]byte(historyJSON), &history); err == nil {
			for _, ms := range history {
				r.History = append(r.History, time.UnixMilli(ms))
			}
		}
		reminders = append(reminders, r)
	}

	return reminders, rows.Err()
}

func (s *Store) SaveReminder(reminder models.Reminder) error {
	history := make([]int64, 0, len(reminder.History))
	for _, t := range reminder.History {
		history = append(history, t.UnixMilli())
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to marshal completion history: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO reminders (
			id, plant_id, plant_name, type, interval_days, last_done, next_due, history
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		reminder.ID, reminder.PlantID, reminder.PlantName, string(reminder.Type),
		reminder.IntervalDays, reminder.LastDone.UnixMilli(), reminder.NextDue.UnixMilli(),
		string(historyJSON),
	)
	return err
}

func (s *Store) DeleteReminder(id string) error {
	_, err := s.db.Exec("DELETE FROM reminders WHERE id = ?", id)
	return err
}
