package reminders

import (
	"time"

	"github.com/leafyapp/leafy/internal/constants"
	"github.com/leafyapp/leafy/internal/logger"
	"github.com/leafyapp/leafy/internal/models"
	"github.com/leafyapp/leafy/internal/storage"
)

// Repository owns the reminder collection and is its only mutator. The
// collection is held in memory in insertion order and written through to the
// backing store on every mutation; a store read failure degrades to an empty
// collection and write failures are logged and swallowed, so operations here
// never fail.
//
// Every operation is total: a mutation referencing an absent id is a silent
// no-op, and mutations replace records wholesale so a reader holding an
// earlier snapshot never observes a half-updated record.
type Repository struct {
	store     storage.Provider
	reminders []models.Reminder
}

// NewRepository loads the reminder collection from the store.
func NewRepository(store storage.Provider) *Repository {
	loaded, err := store.GetAllReminders()
	if err != nil {
		logger.Warn("Failed to load reminders, starting empty", "error", err)
		loaded = nil
	}
	return &Repository{
		store:     store,
		reminders: loaded,
	}
}

// All returns a copy of the collection in insertion order.
func (repo *Repository) All() []models.Reminder {
	out := make([]models.Reminder, len(repo.reminders))
	copy(out, repo.reminders)
	return out
}

// Get returns the reminder with the given id, if present.
func (repo *Repository) Get(id string) (models.Reminder, bool) {
	for _, r := range repo.reminders {
		if r.ID == id {
			return r, true
		}
	}
	return models.Reminder{}, false
}

// Add appends a fully-formed reminder. Duplicate plant/care-type pairs are
// permitted at this boundary; the surfaces that create reminders are expected
// to avoid offering duplicates themselves.
func (repo *Repository) Add(reminder models.Reminder) {
	repo.reminders = append(repo.reminders, reminder)
	repo.persist(reminder)
}

// NewReminder builds a reminder starting its first care cycle now.
func NewReminder(id, plantID, plantName string, careType constants.CareType, intervalDays int, now time.Time) models.Reminder {
	return models.Reminder{
		ID:           id,
		PlantID:      plantID,
		PlantName:    plantName,
		Type:         careType,
		IntervalDays: intervalDays,
		LastDone:     now,
		NextDue:      models.DueFrom(now, intervalDays),
		History:      []time.Time{now},
	}
}

// Complete marks the reminder done now, starting a fresh cycle.
func (repo *Repository) Complete(id string) {
	repo.CompleteAt(id, time.Now())
}

// CompleteAt marks the reminder done at the given instant: lastDone advances,
// nextDue is recomputed from the interval, and the completion is prepended to
// the history, which is truncated to its cap.
func (repo *Repository) CompleteAt(id string, now time.Time) {
	for i, r := range repo.reminders {
		if r.ID != id {
			continue
		}
		history := append([]time.Time{now}, r.History...)
		if len(history) > constants.HistoryCap {
			history = history[:constants.HistoryCap]
		}
		updated := r
		updated.LastDone = now
		updated.NextDue = models.DueFrom(now, r.IntervalDays)
		updated.History = history
		repo.reminders[i] = updated
		repo.persist(updated)
		return
	}
}

// UpdateInterval sets a new recurrence period and recomputes nextDue from the
// existing lastDone. Non-positive intervals are rejected without mutating
// anything; lastDone and history are never touched.
func (repo *Repository) UpdateInterval(id string, intervalDays int) {
	if intervalDays <= 0 {
		return
	}
	for i, r := range repo.reminders {
		if r.ID != id {
			continue
		}
		updated := r
		updated.IntervalDays = intervalDays
		updated.NextDue = models.DueFrom(r.LastDone, intervalDays)
		repo.reminders[i] = updated
		repo.persist(updated)
		return
	}
}

// Remove deletes the reminder if present.
func (repo *Repository) Remove(id string) {
	for i, r := range repo.reminders {
		if r.ID != id {
			continue
		}
		repo.reminders = append(repo.reminders[:i], repo.reminders[i+1:]...)
		if err := repo.store.DeleteReminder(id); err != nil {
			logger.Warn("Failed to persist reminder removal", "id", id, "error", err)
		}
		return
	}
}

// PendingCount returns how many reminders are due before the given instant,
// used for the overdue badge.
func (repo *Repository) PendingCount(now time.Time) int {
	count := 0
	for _, r := range repo.reminders {
		if r.NextDue.Before(now) {
			count++
		}
	}
	return count
}

// HasReminder reports whether a reminder already exists for the plant and
// care type. The repository itself does not enforce uniqueness; creation
// surfaces use this to avoid offering duplicates.
func (repo *Repository) HasReminder(plantID string, careType constants.CareType) bool {
	for _, r := range repo.reminders {
		if r.PlantID == plantID && r.Type == careType {
			return true
		}
	}
	return false
}

func (repo *Repository) persist(reminder models.Reminder) {
	if err := repo.store.SaveReminder(reminder); err != nil {
		logger.Warn("Failed to persist reminder", "id", reminder.ID, "error", err)
	}
}
