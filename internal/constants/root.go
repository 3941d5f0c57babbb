package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

// CareType represents the kind of recurring care a reminder tracks
type CareType string

// GroupMode controls how the care view partitions reminders
type GroupMode string

// SortMode controls how care groups are ordered
type SortMode string

const (
	AppName            = "leafy"
	DefaultKeyringUser = "assistant-api-key"
	DefaultConfigPath  = "~/.config/leafy/leafy.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// HistoryCap is the maximum number of completions kept per reminder
	HistoryCap = 20

	// JournalCap is the maximum number of plants kept in the journal
	JournalCap = 50

	// CompleteDelay is how long a reminder shows its completion animation
	// before the mutation is committed
	CompleteDelay = 1 * time.Second

	// Care Type constants
	CareWater      CareType = "water"
	CareFertilizer CareType = "fertilizer"

	// Group Mode constants
	GroupByPlant GroupMode = "plant"
	GroupByType  GroupMode = "type"

	// Sort Mode constants
	SortByUrgency SortMode = "urgency"
	SortByName    SortMode = "name"

	// Group labels for the by-type view
	WaterGroupTitle      = "Hydration Queue"
	FertilizerGroupTitle = "Nutrition Queue"
)

const (
	StateCare SessionState = iota
	StateJournal
	StateConfirmDelete
	StateConfirmJournalDelete
	StateEditInterval
)
