package analytics

import (
	"time"

	"github.com/blaisecz/mood-journal/internal/domain"
)

const dateLayout = "2006-01-02"

// Streak counts consecutive UTC calendar days with at least one event, ending
// today or yesterday relative to now. Several events on one day count once and
// events dated after today are ignored.
func Streak(timestamps []time.Time, now time.Time) int {
	today := truncateDay(now.UTC())
	days := make(map[string]bool, len(timestamps))
	var last time.Time
	for _, ts := range timestamps {
		d := truncateDay(ts.UTC())
		if d.After(today) {
			continue
		}
		days[d.Format(dateLayout)] = true
		if d.After(last) {
			last = d
		}
	}
	if len(days) == 0 {
		return 0
	}

	if last.Before(today.AddDate(0, 0, -1)) {
		return 0
	}

	streak := 0
	for d := last; days[d.Format(dateLayout)]; d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// EngagementTimes collects the timestamps of every mood check-in and journal entry.
func EngagementTimes(s domain.EventSnapshot) []time.Time {
	out := make([]time.Time, 0, len(s.Moods)+len(s.Journal))
	for _, m := range s.Moods {
		out = append(out, m.RecordedAt)
	}
	for _, e := range s.Journal {
		out = append(out, e.RecordedAt)
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
