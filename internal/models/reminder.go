package models

import (
	"time"

	"github.com/leafyapp/leafy/internal/constants"
)

// Reminder is a recurring care obligation for one plant/care-type pair.
// PlantName is a snapshot taken at creation time and is never re-synced
// with later edits to the plant record.
type Reminder struct {
	ID           string             `json:"id"`
	PlantID      string             `json:"plant_id"`
	PlantName    string             `json:"plant_name"`
	Type         constants.CareType `json:"type"`
	IntervalDays int                `json:"interval_days"`
	LastDone     time.Time          `json:"last_done"`
	NextDue      time.Time          `json:"next_due"`
	History      []time.Time        `json:"history,omitempty"`
}

// Interval returns the length of one care cycle.
func (r Reminder) Interval() time.Duration {
	return time.Duration(r.IntervalDays) * 24 * time.Hour
}

// DueFrom computes the next due time for a completion at the given instant.
func DueFrom(lastDone time.Time, intervalDays int) time.Time {
	return lastDone.Add(time.Duration(intervalDays) * 24 * time.Hour)
}
