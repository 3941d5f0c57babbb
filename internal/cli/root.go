package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/leafyapp/leafy/internal/config"
	"github.com/leafyapp/leafy/internal/constants"
	"github.com/leafyapp/leafy/internal/journal"
	"github.com/leafyapp/leafy/internal/keyring"
	"github.com/leafyapp/leafy/internal/reminders"
	"github.com/leafyapp/leafy/internal/schedule"
	"github.com/leafyapp/leafy/internal/storage"
)

type Context struct {
	Store   storage.Provider
	Repo    *reminders.Repository
	Journal *journal.Journal
	Config  *config.Config
}

// ResolveAPIKey returns the assistant API key, preferring the OS keyring over
// the config file and environment.
func (c *Context) ResolveAPIKey() (string, error) {
	if key, err := keyring.GetAPIKey(); err == nil && key != "" {
		return key, nil
	}
	if key := c.Config.APIKey(); key != "" {
		return key, nil
	}
	return "", errors.New("no API key configured; run 'leafy key set <key>' or set LEAFY_GEMINI_API_KEY")
}

// ParseCareType maps a user-supplied care type string to its canonical value.
func ParseCareType(s string) (constants.CareType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "water", "w":
		return constants.CareWater, nil
	case "fertilizer", "fertilize", "feed", "f":
		return constants.CareFertilizer, nil
	default:
		return "", fmt.Errorf("invalid care type %q (expected water or fertilizer)", s)
	}
}

var (
	groupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("120"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75"))

	overdueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// RenderGroups renders the grouped care view for terminal output, shared by
// the care list command.
func RenderGroups(groups []schedule.Group, now time.Time, colored bool) string {
	var b strings.Builder
	for _, g := range groups {
		title := g.Title
		if colored {
			if g.HasOverdue(now) {
				title = overdueStyle.Render("● " + title)
			} else {
				title = groupStyle.Render(title)
			}
		}
		b.WriteString(title + "\n")
		if g.Subtitle != "" {
			sub := g.Subtitle
			if colored {
				sub = mutedStyle.Render(sub)
			}
			b.WriteString(sub + "\n")
		}

		for _, s := range g.Sections {
			if len(s.Reminders) == 0 {
				continue
			}
			label := s.Label
			if colored {
				label = sectionStyle.Render(label)
			}
			b.WriteString("  " + label + "\n")
			for _, r := range s.Reminders {
				status := schedule.StatusLabel(r, now)
				if colored && schedule.IsOverdue(r, now) {
					status = overdueStyle.Render(status)
				}
				fmt.Fprintf(&b, "    %-24s %-18s every %dd  (%.0f%%)  [%s]\n",
					r.PlantName, status, r.IntervalDays, schedule.Progress(r, now), r.ID)
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
