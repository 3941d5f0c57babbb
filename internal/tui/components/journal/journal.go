package journal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leafyapp/leafy/internal/constants"
	"github.com/leafyapp/leafy/internal/models"
)

type DeleteEntryMsg struct {
	ID string
}

type Item struct {
	Plant models.PlantDetails
}

func (i Item) Title() string {
	title := i.Plant.CommonName
	if !i.Plant.IsPlant {
		title = "[NOT A PLANT] " + title
	}
	return title
}

func (i Item) Description() string {
	return fmt.Sprintf("%s · %s", i.Plant.ScientificName, i.Plant.Timestamp.Format(constants.DateFormat))
}

func (i Item) FilterValue() string { return i.Plant.CommonName }

type KeyMap struct {
	Open   key.Binding
	Back   key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

var (
	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("120"))

	detailLatinStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Italic(true)

	detailLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("75")).
				Bold(true)
)

type Model struct {
	list      list.Model
	keys      KeyMap
	detail    viewport.Model
	showingID string
	width     int
	height    int
}

func New(plants []models.PlantDetails, width, height int) Model {
	items := make([]list.Item, len(plants))
	for i, p := range plants {
		items[i] = Item{Plant: p}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Journal"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Open, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Open, keys.Back, keys.Delete}
	}

	return Model{
		list:   l,
		keys:   keys,
		detail: viewport.New(width, height),
		width:  width,
		height: height,
	}
}

func (m *Model) SetPlants(plants []models.PlantDetails) {
	items := make([]list.Item, len(plants))
	for i, p := range plants {
		items[i] = Item{Plant: p}
	}
	m.list.SetItems(items)
	m.showingID = ""
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.showingID != "" {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			if key.Matches(msg, m.keys.Back) {
				m.showingID = ""
				return m, nil
			}
		}
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Open):
			if i, ok := m.list.SelectedItem().(Item); ok {
				m.showingID = i.Plant.ID
				m.detail.SetContent(renderDetail(i.Plant))
				m.detail.GotoTop()
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteEntryMsg{ID: i.Plant.ID} }
			}
			return m, nil
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.showingID != "" {
		return m.detail.View()
	}
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No plants identified yet.\n  Run 'leafy identify <photo>' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height)
	m.detail.Width = width
	m.detail.Height = height
}

func renderDetail(p models.PlantDetails) string {
	var b strings.Builder

	b.WriteString(detailTitleStyle.Render(p.CommonName) + "\n")
	b.WriteString(detailLatinStyle.Render(p.ScientificName) + "\n\n")
	if p.Description != "" {
		b.WriteString(p.Description + "\n\n")
	}
	if p.HealthStatus != "" {
		b.WriteString(detailLabelStyle.Render("Health: ") + p.HealthStatus + "\n\n")
	}

	care := []struct{ label, value string }{
		{"Water", p.Care.Water},
		{"Light", p.Care.Light},
		{"Temperature", p.Care.Temperature},
		{"Soil", p.Care.Soil},
		{"Fertilizer", p.Care.Fertilizer},
	}
	for _, c := range care {
		if c.value != "" {
			b.WriteString(detailLabelStyle.Render(c.label+": ") + c.value + "\n")
		}
	}
	if p.Care.SuggestedWaterDays > 0 {
		b.WriteString(fmt.Sprintf("\nSuggested watering: every %d day(s)\n", p.Care.SuggestedWaterDays))
	}
	if p.Care.SuggestedFertilizeDays > 0 {
		b.WriteString(fmt.Sprintf("Suggested feeding: every %d day(s)\n", p.Care.SuggestedFertilizeDays))
	}

	b.WriteString("\nIdentified " + p.Timestamp.Format("Jan 2, 2006"))
	return b.String()
}
