package journal

import (
	"github.com/leafyapp/leafy/internal/constants"
	"github.com/leafyapp/leafy/internal/logger"
	"github.com/leafyapp/leafy/internal/models"
	"github.com/leafyapp/leafy/internal/storage"
)

// Journal keeps the record of identified plants, newest first, capped so an
// enthusiastic user can't grow it without bound.
type Journal struct {
	store  storage.Provider
	plants []models.PlantDetails
}

func New(store storage.Provider) *Journal {
	loaded, err := store.GetAllPlants()
	if err != nil {
		logger.Warn("Failed to load journal, starting empty", "error", err)
		loaded = nil
	}
	return &Journal{
		store:  store,
		plants: loaded,
	}
}

// All returns a copy of the journal, newest first.
func (j *Journal) All() []models.PlantDetails {
	out := make([]models.PlantDetails, len(j.plants))
	copy(out, j.plants)
	return out
}

// Get returns the journal entry with the given id, if present.
func (j *Journal) Get(id string) (models.PlantDetails, bool) {
	for _, p := range j.plants {
		if p.ID == id {
			return p, true
		}
	}
	return models.PlantDetails{}, false
}

// Add prepends a new entry, dropping the oldest ones beyond the cap.
func (j *Journal) Add(plant models.PlantDetails) {
	j.plants = append([]models.PlantDetails{plant}, j.plants...)
	for len(j.plants) > constants.JournalCap {
		dropped := j.plants[len(j.plants)-1]
		j.plants = j.plants[:len(j.plants)-1]
		if err := j.store.DeletePlant(dropped.ID); err != nil {
			logger.Warn("Failed to drop oldest journal entry", "id", dropped.ID, "error", err)
		}
	}
	if err := j.store.AddPlant(plant); err != nil {
		logger.Warn("Failed to persist journal entry", "id", plant.ID, "error", err)
	}
}

// Remove deletes the entry if present; absent ids are a no-op.
func (j *Journal) Remove(id string) {
	for i, p := range j.plants {
		if p.ID != id {
			continue
		}
		j.plants = append(j.plants[:i], j.plants[i+1:]...)
		if err := j.store.DeletePlant(id); err != nil {
			logger.Warn("Failed to persist journal removal", "id", id, "error", err)
		}
		return
	}
}

// Clear empties the journal.
func (j *Journal) Clear() {
	j.plants = nil
	if err := j.store.ClearPlants(); err != nil {
		logger.Warn("Failed to clear journal", "error", err)
	}
}
