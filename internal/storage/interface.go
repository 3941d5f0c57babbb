package storage

import "github.com/leafyapp/leafy/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Reminders
	GetAllReminders() ([]models.Reminder, error)
	SaveReminder(models.Reminder) error
	DeleteReminder(id string) error

	// Plants (journal)
	AddPlant(models.PlantDetails) error
	GetAllPlants() ([]models.PlantDetails, error)
	DeletePlant(id string) error
	ClearPlants() error

	// Utils
	GetConfigPath() string
}
