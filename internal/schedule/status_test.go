package schedule

import (
	"testing"
	"time"

	"github.com/leafyapp/leafy/internal/constants"
	"github.com/leafyapp/leafy/internal/models"
)

func reminderAt(lastDone time.Time, intervalDays int) models.Reminder {
	return models.Reminder{
		ID:           "r1",
		PlantID:      "p1",
		PlantName:    "Monstera",
		Type:         constants.CareWater,
		IntervalDays: intervalDays,
		LastDone:     lastDone,
		NextDue:      models.DueFrom(lastDone, intervalDays),
	}
}

func TestProgress(t *testing.T) {
	start := time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local)
	r := reminderAt(start, 4)

	tests := []struct {
		name string
		now  time.Time
		want float64
	}{
		{"at cycle start", start, 0},
		{"halfway", start.Add(2 * 24 * time.Hour), 50},
		{"at due time", start.Add(4 * 24 * time.Hour), 100},
		{"overdue clamps to 100", start.Add(9 * 24 * time.Hour), 100},
		{"before lastDone clamps to 0", start.Add(-time.Hour), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progress(r, tt.now)
			if got != tt.want {
				t.Errorf("Progress = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProgress_MonotonicNonDecreasing(t *testing.T) {
	start := time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local)
	r := reminderAt(start, 3)

	prev := Progress(r, start)
	for i := 1; i <= 100; i++ {
		now := start.Add(time.Duration(i) * time.Hour)
		got := Progress(r, now)
		if got < prev {
			t.Fatalf("progress decreased from %v to %v at hour %d", prev, got, i)
		}
		if got < 0 || got > 100 {
			t.Fatalf("progress %v outside [0,100] at hour %d", got, i)
		}
		prev = got
	}
}

func TestIsOverdue_BoundaryIsInclusive(t *testing.T) {
	start := time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local)
	r := reminderAt(start, 3)

	if IsOverdue(r, r.NextDue.Add(-time.Millisecond)) {
		t.Error("just before due time must not be overdue")
	}
	if !IsOverdue(r, r.NextDue) {
		t.Error("a reminder due exactly now is overdue")
	}
	if !IsOverdue(r, r.NextDue.Add(time.Millisecond)) {
		t.Error("just past due time must be overdue")
	}
}

func TestDayDifference_CalendarTruncation(t *testing.T) {
	// Both a reminder due at 00:01 and one due at 23:59 today read zero,
	// regardless of the hour "now" falls on.
	now := time.Date(2026, 3, 5, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{"due one minute past midnight today", time.Date(2026, 3, 5, 0, 1, 0, 0, time.Local), 0},
		{"due one minute before midnight today", time.Date(2026, 3, 5, 23, 59, 0, 0, time.Local), 0},
		{"due early tomorrow", time.Date(2026, 3, 6, 0, 1, 0, 0, time.Local), 1},
		{"due in four days", time.Date(2026, 3, 9, 8, 0, 0, 0, time.Local), 4},
		{"overdue since late yesterday", time.Date(2026, 3, 4, 23, 59, 0, 0, time.Local), -1},
		{"overdue by a week", time.Date(2026, 2, 26, 12, 0, 0, 0, time.Local), -7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := models.Reminder{IntervalDays: 1, LastDone: tt.due.AddDate(0, 0, -1), NextDue: tt.due}
			if got := DayDifference(r, now); got != tt.want {
				t.Errorf("DayDifference = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStatusLabel(t *testing.T) {
	now := time.Date(2026, 3, 5, 12, 0, 0, 0, time.Local)
	due := func(days int) time.Time { return now.AddDate(0, 0, days) }

	tests := []struct {
		name string
		due  time.Time
		want string
	}{
		{"overdue singular", due(-1), "Overdue by 1 day"},
		{"overdue plural", due(-3), "Overdue by 3 days"},
		{"today", now.Add(2 * time.Hour), "Due Today"},
		{"tomorrow", due(1), "Due Tomorrow"},
		{"upcoming", due(5), "Due in 5 days"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := models.Reminder{IntervalDays: 1, NextDue: tt.due}
			if got := StatusLabel(r, now); got != tt.want {
				t.Errorf("StatusLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExampleScenario_ThreeDayCycle(t *testing.T) {
	start := time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local)
	r := reminderAt(start, 3)

	at := start.Add(time.Duration(2.5 * 24 * float64(time.Hour)))
	if got := Progress(r, at); got < 83 || got > 84 {
		t.Errorf("progress at 2.5 days = %v, want ≈83", got)
	}
	if IsOverdue(r, at) {
		t.Error("must not be overdue at 2.5 days into a 3 day cycle")
	}

	after := start.Add(3*24*time.Hour + time.Millisecond)
	if !IsOverdue(r, after) {
		t.Error("must be overdue just past the 3 day mark")
	}
	if diff := DayDifference(r, after); diff > 0 {
		t.Errorf("day difference just past due = %d, want <= 0", diff)
	}
}
