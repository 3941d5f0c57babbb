package schedule

import (
	"fmt"
	"time"

	"github.com/leafyapp/leafy/internal/models"
)

// Progress reports how far through its current care cycle a reminder is,
// as a percentage clamped to [0, 100]. Overdue reminders read 100, not beyond.
func Progress(r models.Reminder, now time.Time) float64 {
	total := r.Interval()
	if total <= 0 {
		return 100
	}
	elapsed := now.Sub(r.LastDone)
	pct := float64(elapsed) / float64(total) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// IsOverdue reports whether the reminder's due time has passed. A reminder
// due exactly now counts as overdue.
func IsOverdue(r models.Reminder, now time.Time) bool {
	return !now.Before(r.NextDue)
}

// DayDifference returns the number of calendar days between the start of the
// day containing now and the start of the day containing the reminder's due
// time, both truncated to local midnight. A reminder due at 23:59 today and
// one due at 00:01 today must both read zero, which is why this is not a raw
// duration difference.
func DayDifference(r models.Reminder, now time.Time) int {
	return calendarDays(startOfDay(now), startOfDay(r.NextDue))
}

// StatusLabel maps a reminder's day difference to its display label,
// evaluated in order: overdue, today, tomorrow, upcoming.
func StatusLabel(r models.Reminder, now time.Time) string {
	diff := DayDifference(r, now)
	switch {
	case diff < 0:
		n := -diff
		if n == 1 {
			return "Overdue by 1 day"
		}
		return fmt.Sprintf("Overdue by %d days", n)
	case diff == 0:
		return "Due Today"
	case diff == 1:
		return "Due Tomorrow"
	default:
		return fmt.Sprintf("Due in %d days", diff)
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// calendarDays counts midnight boundaries between two day-start times.
// Dividing a raw duration by 24h would be off by an hour across DST
// transitions, so round.
func calendarDays(from, to time.Time) int {
	hours := to.Sub(from).Hours()
	days := hours / 24
	if days < 0 {
		return int(days - 0.5)
	}
	return int(days + 0.5)
}
