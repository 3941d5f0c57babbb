package care

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leafyapp/leafy/internal/constants"
	"github.com/leafyapp/leafy/internal/models"
	"github.com/leafyapp/leafy/internal/schedule"
)

type CompleteMsg struct {
	ID string
}

type CancelCompleteMsg struct {
	ID string
}

type EditIntervalMsg struct {
	ID string
}

type DeleteMsg struct {
	ID string
}

type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Complete key.Binding
	Undo     key.Binding
	History  key.Binding
	Interval key.Binding
	Delete   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Complete: key.NewBinding(
			key.WithKeys(" ", "c"),
			key.WithHelp("space", "mark done"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		History: key.NewBinding(
			key.WithKeys("enter", "h"),
			key.WithHelp("enter", "history"),
		),
		Interval: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "edit interval"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

// row is one selectable reminder line in the rendered care view. line is the
// index of that line in the viewport content, used to keep the cursor visible.
type row struct {
	id   string
	line int
}

var (
	groupTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("120"))

	groupOverdueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("196"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	overdueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	dueTodayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	upcomingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	completingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("84")).
			Bold(true)

	historyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	barFilledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("84"))

	barEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	editModeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214")).
			Padding(0, 1).
			Bold(true)
)

type Model struct {
	groups     []schedule.Group
	rows       []row
	cursor     int
	expanded   map[string]bool
	completing map[string]bool
	editMode   bool
	now        time.Time
	keys       KeyMap
	viewport   viewport.Model
	width      int
	height     int
}

func New(reminders []models.Reminder, mode constants.GroupMode, sortMode constants.SortMode, width, height int) Model {
	m := Model{
		expanded:   make(map[string]bool),
		completing: make(map[string]bool),
		now:        time.Now(),
		keys:       DefaultKeyMap(),
		viewport:   viewport.New(width, height),
		width:      width,
		height:     height,
	}
	m.SetReminders(reminders, mode, sortMode, m.now)
	return m
}

// SetReminders rebuilds the grouped view from the current collection. The
// grouping is a pure derivation, so the caller rebuilds after every mutation
// or display-mode change.
func (m *Model) SetReminders(reminders []models.Reminder, mode constants.GroupMode, sortMode constants.SortMode, now time.Time) {
	m.now = now
	m.groups = schedule.BuildGroups(reminders, mode, sortMode)
	m.refresh()
}

// SetEditMode toggles the single system-wide edit mode that exposes the
// interval and delete actions.
func (m *Model) SetEditMode(on bool) {
	m.editMode = on
	m.refresh()
}

func (m Model) EditMode() bool {
	return m.editMode
}

// SetCompleting marks or unmarks a reminder as mid-completion, shown with a
// checkmark while the commit is pending.
func (m *Model) SetCompleting(id string, on bool) {
	if on {
		m.completing[id] = true
	} else {
		delete(m.completing, id)
	}
	m.refresh()
}

// SelectedID returns the id of the reminder under the cursor.
func (m Model) SelectedID() string {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return ""
	}
	return m.rows[m.cursor].id
}

func (m Model) Count() int {
	return len(m.rows)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, m.keys.Complete):
			if id := m.SelectedID(); id != "" && !m.completing[id] {
				return m, func() tea.Msg { return CompleteMsg{ID: id} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Undo):
			if id := m.SelectedID(); id != "" && m.completing[id] {
				return m, func() tea.Msg { return CancelCompleteMsg{ID: id} }
			}
			return m, nil
		case key.Matches(msg, m.keys.History):
			if id := m.SelectedID(); id != "" {
				m.expanded[id] = !m.expanded[id]
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, m.keys.Interval):
			if id := m.SelectedID(); id != "" && m.editMode {
				return m, func() tea.Msg { return EditIntervalMsg{ID: id} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if id := m.SelectedID(); id != "" && m.editMode {
				return m, func() tea.Msg { return DeleteMsg{ID: id} }
			}
			return m, nil
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.rows) == 0 {
		return "\n  All plants are happy.\n  Identify a plant with 'leafy identify' to start a care schedule."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.refresh()
}

// refresh re-renders the viewport content and scrolls the cursor into view.
func (m *Model) refresh() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	var lines []string
	m.rows = m.rows[:0]

	if m.editMode {
		lines = append(lines, editModeStyle.Render("EDIT MODE"), "")
	}

	for _, g := range m.groups {
		title := g.Title
		if g.HasOverdue(m.now) {
			lines = append(lines, groupOverdueStyle.Render("● "+title))
		} else {
			lines = append(lines, groupTitleStyle.Render(title))
		}
		if g.Subtitle != "" {
			lines = append(lines, subtitleStyle.Render(g.Subtitle))
		}

		for _, s := range g.Sections {
			if len(s.Reminders) == 0 {
				continue
			}
			lines = append(lines, "  "+sectionStyle.Render(s.Label))
			for _, r := range s.Reminders {
				m.rows = append(m.rows, row{id: r.ID, line: len(lines)})
				selected := len(m.rows)-1 == m.cursor
				lines = append(lines, m.renderReminder(r, selected))
				if m.expanded[r.ID] {
					lines = append(lines, m.renderHistory(r)...)
				}
			}
		}
		lines = append(lines, "")
	}

	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.scrollToCursor()
}

func (m *Model) scrollToCursor() {
	if m.cursor >= len(m.rows) || m.viewport.Height <= 0 {
		return
	}
	line := m.rows[m.cursor].line
	if line < m.viewport.YOffset {
		m.viewport.SetYOffset(line)
	} else if line >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

func (m Model) renderReminder(r models.Reminder, selected bool) string {
	cursor := "  "
	if selected {
		cursor = cursorStyle.Render("> ")
	}

	icon := "💧"
	if r.Type == constants.CareFertilizer {
		icon = "🌱"
	}

	if m.completing[r.ID] {
		return fmt.Sprintf("  %s%s %s  %s", cursor, icon, r.PlantName,
			completingStyle.Render("✓ Done! (u to undo)"))
	}

	bar := renderBar(schedule.Progress(r, m.now), 14)
	label := statusStyle(r, m.now).Render(schedule.StatusLabel(r, m.now))

	line := fmt.Sprintf("  %s%s %s  %s  %s  every %dd", cursor, icon, r.PlantName, bar, label, r.IntervalDays)
	return line
}

func (m Model) renderHistory(r models.Reminder) []string {
	lines := []string{historyStyle.Render(fmt.Sprintf("      %d completion(s) on record", len(r.History)))}
	shown := r.History
	if len(shown) > 5 {
		shown = shown[:5]
	}
	for _, done := range shown {
		lines = append(lines, historyStyle.Render("      · "+done.Format("Jan 2, 2006 15:04")))
	}
	if len(r.History) > len(shown) {
		lines = append(lines, historyStyle.Render(fmt.Sprintf("      … and %d more", len(r.History)-len(shown))))
	}
	return lines
}

func statusStyle(r models.Reminder, now time.Time) lipgloss.Style {
	switch diff := schedule.DayDifference(r, now); {
	case schedule.IsOverdue(r, now) || diff < 0:
		return overdueStyle
	case diff == 0:
		return dueTodayStyle
	default:
		return upcomingStyle
	}
}

func renderBar(pct float64, width int) string {
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", width-filled))
}
