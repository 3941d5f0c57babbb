package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/leafyapp/leafy/internal/constants"
	"github.com/leafyapp/leafy/internal/journal"
	"github.com/leafyapp/leafy/internal/models"
	"github.com/leafyapp/leafy/internal/reminders"
	"github.com/leafyapp/leafy/internal/storage"
	"github.com/leafyapp/leafy/internal/tui/components/care"
	journalview "github.com/leafyapp/leafy/internal/tui/components/journal"
)

type IntervalFormModel struct {
	Interval string
}

// commitCompleteMsg fires after the completion delay. seq must still match the
// reminder's current sequence for the commit to apply; an undo in the meantime
// bumps the sequence and the stale message is dropped.
type commitCompleteMsg struct {
	id  string
	seq int
}

type Model struct {
	store        storage.Provider
	repo         *reminders.Repository
	journal      *journal.Journal
	state        constants.SessionState
	keys         KeyMap
	help         help.Model
	careModel    care.Model
	journalModel journalview.Model
	form         *huh.Form
	intervalForm *IntervalFormModel
	editingID    string
	settings     models.Settings

	// completeSeq invalidates in-flight completion commits on undo.
	completeSeq map[string]int

	reminderToDeleteID string
	journalToDeleteID  string

	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, repo *reminders.Repository, jnl *journal.Journal) Model {
	settings, err := store.GetSettings()
	if err != nil {
		settings = models.Settings{GroupMode: string(constants.GroupByPlant), SortMode: string(constants.SortByUrgency)}
	}

	m := Model{
		store:        store,
		repo:         repo,
		journal:      jnl,
		state:        constants.StateCare,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		careModel:    care.New(repo.All(), constants.GroupMode(settings.GroupMode), constants.SortMode(settings.SortMode), 0, 0),
		journalModel: journalview.New(jnl.All(), 0, 0),
		settings:     settings,
		completeSeq:  make(map[string]int),
	}
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == constants.StateCare {
		keys = append(keys, m.keys.EditMode, m.keys.Group, m.keys.Sort)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	if m.state == constants.StateCare {
		actions = []key.Binding{m.keys.EditMode, m.keys.Group, m.keys.Sort}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refreshCare rebuilds the grouped care view from the current collection.
func (m *Model) refreshCare() {
	m.careModel.SetReminders(
		m.repo.All(),
		constants.GroupMode(m.settings.GroupMode),
		constants.SortMode(m.settings.SortMode),
		time.Now(),
	)
}

func (m *Model) saveSettings() {
	// Display preferences are best-effort; a write failure just means the
	// next session starts with the old ones.
	_ = m.store.SaveSettings(m.settings)
}
