package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/leafyapp/leafy/internal/models"
)

// Document is the single serialized collection bundle the JSON backend
// persists. Reminder order is insertion order.
type Document struct {
	Version   int                   `json:"version"`
	Settings  models.Settings       `json:"settings"`
	Reminders []models.Reminder     `json:"reminders"`
	Plants    []models.PlantDetails `json:"plants"`
}

type JSONStore struct {
	path string
	doc  *Document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func defaultDocument() *Document {
	return &Document{
		Version: 1,
		Settings: models.Settings{
			Theme:     "dark",
			GroupMode: "plant",
			SortMode:  "urgency",
		},
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = defaultDocument()
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'leafy init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	// A corrupt file falls back to an empty document rather than failing;
	// reminders and the journal restart empty but the app stays usable.
	s.doc = &Document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		s.doc = defaultDocument()
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.doc == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.doc.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Settings = settings
	return s.save()
}

func (s *JSONStore) GetAllReminders() ([]models.Reminder, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	reminders := make([]models.Reminder, len(s.doc.Reminders))
	copy(reminders, s.doc.Reminders)
	return reminders, nil
}

func (s *JSONStore) SaveReminder(reminder models.Reminder) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	for i, r := range s.doc.Reminders {
		if r.ID == reminder.ID {
			s.doc.Reminders[i] = reminder
			return s.save()
		}
	}
	s.doc.Reminders = append(s.doc.Reminders, reminder)
	return s.save()
}

func (s *JSONStore) DeleteReminder(id string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	for i, r := range s.doc.Reminders {
		if r.ID == id {
			s.doc.Reminders = append(s.doc.Reminders[:i], s.doc.Reminders[i+1:]...)
			return s.save()
		}
	}
	return nil
}

func (s *JSONStore) AddPlant(plant models.PlantDetails) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Plants = append([]models.PlantDetails{plant}, s.doc.Plants...)
	return s.save()
}

func (s *JSONStore) GetAllPlants() ([]models.PlantDetails, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	plants := make([]models.PlantDetails, len(s.doc.Plants))
	copy(plants, s.doc.Plants)
	return plants, nil
}

func (s *JSONStore) DeletePlant(id string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	for i, p := range s.doc.Plants {
		if p.ID == id {
			s.doc.Plants = append(s.doc.Plants[:i], s.doc.Plants[i+1:]...)
			return s.save()
		}
	}
	return nil
}

func (s *JSONStore) ClearPlants() error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Plants = nil
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
