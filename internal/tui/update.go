package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/leafyapp/leafy/internal/constants"
	"github.com/leafyapp/leafy/internal/tui/components/care"
	journalview "github.com/leafyapp/leafy/internal/tui/components/journal"
	"github.com/leafyapp/leafy/internal/tui/handlers"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle Edit Interval State
	if m.state == constants.StateEditInterval {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = constants.StateCare
			m.editingID = ""
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			// The form validated the value; a parse failure here means it
			// was bypassed somehow, so stay put rather than corrupt state.
			interval, err := strconv.Atoi(strings.TrimSpace(m.intervalForm.Interval))
			if err != nil || interval <= 0 {
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}
			m.repo.UpdateInterval(m.editingID, interval)
			m.refreshCare()
			m.editingID = ""
			m.state = constants.StateCare
		case huh.StateAborted:
			m.editingID = ""
			m.state = constants.StateCare
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Confirm Delete State
	if m.state == constants.StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				m.repo.Remove(m.reminderToDeleteID)
				delete(m.completeSeq, m.reminderToDeleteID)
				m.refreshCare()
				m.state = constants.StateCare
				m.reminderToDeleteID = ""
			case "n", "N", "esc", "q":
				m.state = constants.StateCare
				m.reminderToDeleteID = ""
			}
		}
		return m, nil
	}

	// Handle Confirm Journal Delete State
	if m.state == constants.StateConfirmJournalDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				m.journal.Remove(m.journalToDeleteID)
				m.journalModel.SetPlants(m.journal.All())
				m.state = constants.StateJournal
				m.journalToDeleteID = ""
			case "n", "N", "esc", "q":
				m.state = constants.StateJournal
				m.journalToDeleteID = ""
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		listHeight := msg.Height - 4 // tabs + status line + help

		h, v := docStyle.GetFrameSize()
		m.careModel.SetSize(msg.Width-h, listHeight-v)
		m.journalModel.SetSize(msg.Width-h, listHeight-v)

	case care.CompleteMsg:
		// Start the deferred commit: show the checkmark now, mutate after
		// the delay unless the user undoes it first.
		m.completeSeq[msg.ID]++
		seq := m.completeSeq[msg.ID]
		m.careModel.SetCompleting(msg.ID, true)
		return m, tea.Tick(constants.CompleteDelay, func(time.Time) tea.Msg {
			return commitCompleteMsg{id: msg.ID, seq: seq}
		})

	case care.CancelCompleteMsg:
		m.completeSeq[msg.ID]++
		m.careModel.SetCompleting(msg.ID, false)
		return m, nil

	case commitCompleteMsg:
		if m.completeSeq[msg.id] != msg.seq {
			// Undone (or re-triggered) while the timer ran; drop it.
			return m, nil
		}
		m.repo.Complete(msg.id)
		m.careModel.SetCompleting(msg.id, false)
		m.refreshCare()
		return m, nil

	case care.EditIntervalMsg:
		r, ok := m.repo.Get(msg.ID)
		if !ok {
			return m, nil
		}
		m.editingID = msg.ID
		m.intervalForm = &IntervalFormModel{Interval: strconv.Itoa(r.IntervalDays)}
		m.form = handlers.NewIntervalForm(&m.intervalForm.Interval, r.PlantName)
		m.state = constants.StateEditInterval
		return m, m.form.Init()

	case care.DeleteMsg:
		m.reminderToDeleteID = msg.ID
		m.state = constants.StateConfirmDelete
		return m, nil

	case journalview.DeleteEntryMsg:
		m.journalToDeleteID = msg.ID
		m.state = constants.StateConfirmJournalDelete
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
			if m.state == constants.StateCare {
				m.state = constants.StateJournal
			} else {
				m.state = constants.StateCare
			}
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.EditMode):
			if m.state == constants.StateCare {
				m.careModel.SetEditMode(!m.careModel.EditMode())
				return m, nil
			}
		case key.Matches(msg, m.keys.Group):
			if m.state == constants.StateCare {
				if m.settings.GroupMode == string(constants.GroupByType) {
					m.settings.GroupMode = string(constants.GroupByPlant)
				} else {
					m.settings.GroupMode = string(constants.GroupByType)
				}
				m.saveSettings()
				m.refreshCare()
				return m, nil
			}
		case key.Matches(msg, m.keys.Sort):
			if m.state == constants.StateCare {
				if m.settings.SortMode == string(constants.SortByName) {
					m.settings.SortMode = string(constants.SortByUrgency)
				} else {
					m.settings.SortMode = string(constants.SortByName)
				}
				m.saveSettings()
				m.refreshCare()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateCare:
		m.careModel, cmd = m.careModel.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateJournal:
		m.journalModel, cmd = m.journalModel.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}
