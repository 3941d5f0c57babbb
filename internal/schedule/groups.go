package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/leafyapp/leafy/internal/constants"
	"github.com/leafyapp/leafy/internal/models"
)

// Section is one care-type bucket inside a group.
type Section struct {
	Type      constants.CareType
	Label     string
	Reminders []models.Reminder
}

// Group is a derived display grouping of reminders, either one plant's
// schedules or one care type across all plants.
type Group struct {
	ID          string
	Title       string
	Subtitle    string
	EarliestDue time.Time
	Sections    []Section
}

// HasOverdue reports whether the group's most urgent member is strictly past
// due. Unlike the per-reminder IsOverdue check, a group whose earliest due
// time is exactly now is not yet flagged.
func (g Group) HasOverdue(now time.Time) bool {
	return now.After(g.EarliestDue)
}

// Count returns the total number of reminders across the group's sections.
func (g Group) Count() int {
	n := 0
	for _, s := range g.Sections {
		n += len(s.Reminders)
	}
	return n
}

// BuildGroups derives the display grouping for the care view. It is a pure
// derivation over the collection and never mutates its input; callers
// recompute it whenever the collection, mode, or sort changes.
func BuildGroups(reminders []models.Reminder, mode constants.GroupMode, sortMode constants.SortMode) []Group {
	var groups []Group
	if mode == constants.GroupByType {
		groups = groupByType(reminders)
	} else {
		groups = groupByPlant(reminders)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if sortMode == constants.SortByName {
			return groups[i].Title < groups[j].Title
		}
		return groups[i].EarliestDue.Before(groups[j].EarliestDue)
	})
	return groups
}

func groupByPlant(reminders []models.Reminder) []Group {
	index := make(map[string]int)
	var groups []Group

	for _, r := range reminders {
		i, ok := index[r.PlantID]
		if !ok {
			i = len(groups)
			index[r.PlantID] = i
			groups = append(groups, Group{
				ID:          r.PlantID,
				Title:       r.PlantName,
				EarliestDue: r.NextDue,
				// Both sections always exist conceptually; empty ones are
				// simply not rendered.
				Sections: []Section{
					{Type: constants.CareWater, Label: "Hydration Schedule"},
					{Type: constants.CareFertilizer, Label: "Nutrition Schedule"},
				},
			})
		}

		g := &groups[i]
		si := 0
		if r.Type == constants.CareFertilizer {
			si = 1
		}
		g.Sections[si].Reminders = append(g.Sections[si].Reminders, r)
		if r.NextDue.Before(g.EarliestDue) {
			g.EarliestDue = r.NextDue
		}
	}
	return groups
}

func groupByType(reminders []models.Reminder) []Group {
	var water, fertilizer []models.Reminder
	for _, r := range reminders {
		if r.Type == constants.CareFertilizer {
			fertilizer = append(fertilizer, r)
		} else {
			water = append(water, r)
		}
	}

	var groups []Group
	if len(water) > 0 {
		groups = append(groups, Group{
			ID:          "group-water",
			Title:       constants.WaterGroupTitle,
			Subtitle:    fmt.Sprintf("%d plants waiting for water", len(water)),
			EarliestDue: earliestDue(water),
			Sections: []Section{
				{Type: constants.CareWater, Label: "All Waterings", Reminders: water},
			},
		})
	}
	if len(fertilizer) > 0 {
		groups = append(groups, Group{
			ID:          "group-fertilizer",
			Title:       constants.FertilizerGroupTitle,
			Subtitle:    fmt.Sprintf("%d plants waiting for fertilizer", len(fertilizer)),
			EarliestDue: earliestDue(fertilizer),
			Sections: []Section{
				{Type: constants.CareFertilizer, Label: "All Feedings", Reminders: fertilizer},
			},
		})
	}
	return groups
}

func earliestDue(reminders []models.Reminder) time.Time {
	earliest := reminders[0].NextDue
	for _, r := range reminders[1:] {
		if r.NextDue.Before(earliest) {
			earliest = r.NextDue
		}
	}
	return earliest
}
