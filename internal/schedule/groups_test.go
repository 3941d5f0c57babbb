package schedule

import (
	"testing"
	"time"

	"github.com/leafyapp/leafy/internal/constants"
	"github.com/leafyapp/leafy/internal/models"
)

func testReminder(id, plantID, plantName string, careType constants.CareType, due time.Time) models.Reminder {
	return models.Reminder{
		ID:           id,
		PlantID:      plantID,
		PlantName:    plantName,
		Type:         careType,
		IntervalDays: 3,
		LastDone:     due.AddDate(0, 0, -3),
		NextDue:      due,
	}
}

func collectIDs(groups []Group) map[string]int {
	seen := make(map[string]int)
	for _, g := range groups {
		for _, s := range g.Sections {
			for _, r := range s.Reminders {
				seen[r.ID]++
			}
		}
	}
	return seen
}

func sampleCollection(base time.Time) []models.Reminder {
	return []models.Reminder{
		testReminder("w1", "p1", "Monstera", constants.CareWater, base.AddDate(0, 0, 2)),
		testReminder("f1", "p1", "Monstera", constants.CareFertilizer, base.AddDate(0, 0, 5)),
		testReminder("w2", "p2", "Aloe Vera", constants.CareWater, base.AddDate(0, 0, 1)),
		testReminder("w3", "p3", "Basil", constants.CareWater, base.AddDate(0, 0, -1)),
	}
}

func TestBuildGroups_ByPlant_Partition(t *testing.T) {
	base := time.Date(2026, 3, 5, 12, 0, 0, 0, time.Local)
	collection := sampleCollection(base)

	groups := BuildGroups(collection, constants.GroupByPlant, constants.SortByUrgency)

	if len(groups) != 3 {
		t.Fatalf("group count = %d, want 3", len(groups))
	}

	seen := collectIDs(groups)
	if len(seen) != len(collection) {
		t.Errorf("grouped reminder count = %d, want %d", len(seen), len(collection))
	}
	for _, r := range collection {
		if seen[r.ID] != 1 {
			t.Errorf("reminder %s appears %d times, want exactly once", r.ID, seen[r.ID])
		}
	}

	// Every plant group carries both conceptual sections, and each reminder
	// sits in the section matching its care type.
	for _, g := range groups {
		if len(g.Sections) != 2 {
			t.Fatalf("group %s has %d sections, want 2", g.ID, len(g.Sections))
		}
		if g.Sections[0].Type != constants.CareWater || g.Sections[1].Type != constants.CareFertilizer {
			t.Errorf("group %s sections out of order", g.ID)
		}
		for _, s := range g.Sections {
			for _, r := range s.Reminders {
				if r.Type != s.Type {
					t.Errorf("reminder %s of type %s in section %s", r.ID, r.Type, s.Type)
				}
			}
		}
	}
}

func TestBuildGroups_ByPlant_EarliestDue(t *testing.T) {
	base := time.Date(2026, 3, 5, 12, 0, 0, 0, time.Local)
	groups := BuildGroups(sampleCollection(base), constants.GroupByPlant, constants.SortByUrgency)

	for _, g := range groups {
		if g.ID != "p1" {
			continue
		}
		if want := base.AddDate(0, 0, 2); !g.EarliestDue.Equal(want) {
			t.Errorf("p1 EarliestDue = %v, want %v", g.EarliestDue, want)
		}
	}
}

func TestBuildGroups_ByType(t *testing.T) {
	base := time.Date(2026, 3, 5, 12, 0, 0, 0, time.Local)
	collection := sampleCollection(base)

	groups := BuildGroups(collection, constants.GroupByType, constants.SortByUrgency)

	if len(groups) != 2 {
		t.Fatalf("group count = %d, want 2", len(groups))
	}

	total := 0
	for _, g := range groups {
		for _, s := range g.Sections {
			for _, r := range s.Reminders {
				if r.Type != s.Type {
					t.Errorf("reminder %s of type %s leaked into the %s group", r.ID, r.Type, g.Title)
				}
			}
			total += len(s.Reminders)
		}
	}
	if total != len(collection) {
		t.Errorf("total reminders across type groups = %d, want %d", total, len(collection))
	}
}

func TestBuildGroups_ByType_OmitsEmptyGroup(t *testing.T) {
	base := time.Date(2026, 3, 5, 12, 0, 0, 0, time.Local)
	onlyWater := []models.Reminder{
		testReminder("w1", "p1", "Monstera", constants.CareWater, base),
	}

	groups := BuildGroups(onlyWater, constants.GroupByType, constants.SortByUrgency)
	if len(groups) != 1 {
		t.Fatalf("group count = %d, want 1", len(groups))
	}
	if groups[0].Title != constants.WaterGroupTitle {
		t.Errorf("group title = %q, want %q", groups[0].Title, constants.WaterGroupTitle)
	}
}

func TestBuildGroups_SortByUrgency(t *testing.T) {
	base := time.Date(2026, 3, 5, 12, 0, 0, 0, time.Local)
	for _, mode := range []constants.GroupMode{constants.GroupByPlant, constants.GroupByType} {
		groups := BuildGroups(sampleCollection(base), mode, constants.SortByUrgency)
		for i := 1; i < len(groups); i++ {
			if groups[i].EarliestDue.Before(groups[i-1].EarliestDue) {
				t.Errorf("mode %s: groups not in non-decreasing EarliestDue order", mode)
			}
		}
	}
}

func TestBuildGroups_SortByName(t *testing.T) {
	base := time.Date(2026, 3, 5, 12, 0, 0, 0, time.Local)
	groups := BuildGroups(sampleCollection(base), constants.GroupByPlant, constants.SortByName)

	want := []string{"Aloe Vera", "Basil", "Monstera"}
	if len(groups) != len(want) {
		t.Fatalf("group count = %d, want %d", len(groups), len(want))
	}
	for i, g := range groups {
		if g.Title != want[i] {
			t.Errorf("group %d title = %q, want %q", i, g.Title, want[i])
		}
	}
}

func TestBuildGroups_DoesNotMutateInput(t *testing.T) {
	base := time.Date(2026, 3, 5, 12, 0, 0, 0, time.Local)
	collection := sampleCollection(base)
	original := make([]models.Reminder, len(collection))
	copy(original, collection)

	BuildGroups(collection, constants.GroupByPlant, constants.SortByName)
	BuildGroups(collection, constants.GroupByType, constants.SortByUrgency)

	for i := range collection {
		if collection[i].ID != original[i].ID || !collection[i].NextDue.Equal(original[i].NextDue) {
			t.Fatal("BuildGroups mutated its input")
		}
	}
}

func TestGroup_HasOverdue_BoundaryIsStrict(t *testing.T) {
	now := time.Date(2026, 3, 5, 12, 0, 0, 0, time.Local)
	exact := []models.Reminder{
		testReminder("w1", "p1", "Monstera", constants.CareWater, now),
	}

	groups := BuildGroups(exact, constants.GroupByPlant, constants.SortByUrgency)
	if len(groups) != 1 {
		t.Fatalf("group count = %d, want 1", len(groups))
	}

	// The per-reminder overdue check is inclusive, but the group flag only
	// trips once now is strictly past the earliest due time.
	if groups[0].HasOverdue(now) {
		t.Error("group with earliestDue == now flagged overdue, want strict earliestDue < now")
	}
	if !groups[0].HasOverdue(now.Add(time.Millisecond)) {
		t.Error("group not flagged overdue once now passes earliestDue")
	}
	if groups[0].HasOverdue(now.Add(-time.Millisecond)) {
		t.Error("group flagged overdue before earliestDue")
	}
}

func TestGroup_HasOverdue(t *testing.T) {
	base := time.Date(2026, 3, 5, 12, 0, 0, 0, time.Local)
	groups := BuildGroups(sampleCollection(base), constants.GroupByPlant, constants.SortByUrgency)

	for _, g := range groups {
		wantOverdue := g.ID == "p3" // Basil is a day past due
		if got := g.HasOverdue(base); got != wantOverdue {
			t.Errorf("group %s HasOverdue = %v, want %v", g.ID, got, wantOverdue)
		}
	}
}
