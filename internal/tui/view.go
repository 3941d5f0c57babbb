package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/leafyapp/leafy/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateCare:
		content = docStyle.Render(m.careModel.View())
	case constants.StateJournal:
		content = docStyle.Render(m.journalModel.View())
	case constants.StateEditInterval:
		content = m.form.View()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	case constants.StateConfirmJournalDelete:
		content = m.viewConfirmJournalDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatusLine(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Care", "Journal"}
	states := []constants.SessionState{constants.StateCare, constants.StateJournal}
	active := m.state
	// Modal states keep their parent tab highlighted
	switch m.state {
	case constants.StateEditInterval, constants.StateConfirmDelete:
		active = constants.StateCare
	case constants.StateConfirmJournalDelete:
		active = constants.StateJournal
	}
	for i, title := range tabTitles {
		if active == states[i] {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if pending := m.repo.PendingCount(time.Now()); pending > 0 {
		row = lipgloss.JoinHorizontal(lipgloss.Top, row, " ", badgeStyle.Render(fmt.Sprintf("%d due", pending)))
	}
	return row
}

func (m Model) viewStatusLine() string {
	return statusLineStyle.Render(fmt.Sprintf("grouped by %s · sorted by %s", m.settings.GroupMode, m.settings.SortMode))
}

func (m Model) viewConfirmDelete() string {
	name := m.reminderToDeleteID
	if r, ok := m.repo.Get(m.reminderToDeleteID); ok {
		name = fmt.Sprintf("%s (%s)", r.PlantName, r.Type)
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete the reminder for %s?", name)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) viewConfirmJournalDelete() string {
	name := m.journalToDeleteID
	if p, ok := m.journal.Get(m.journalToDeleteID); ok {
		name = p.CommonName
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Remove %s from the journal?", name)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
