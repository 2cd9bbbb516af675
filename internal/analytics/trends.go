package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/blaisecz/mood-journal/internal/sentiment"
)

const (
	NotEnoughData   = "Not enough data"
	NoClearPatterns = "No clear patterns"
	ConsistentMood  = "Mood remains consistent"
)

// TimeSlots are the time-of-day buckets in report order.
var TimeSlots = []string{"Morning", "Afternoon", "Evening", "Night"}

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Point is one mood observation from either a check-in or a journal entry.
type Point struct {
	Mood domain.Mood
	At   time.Time
}

// PointsFrom merges mood events and journal entries recorded in [from, to],
// sorted by time.
func PointsFrom(s domain.EventSnapshot, from, to time.Time) []Point {
	var points []Point
	for _, m := range s.Moods {
		if inRange(m.RecordedAt, from, to) {
			points = append(points, Point{Mood: m.Mood, At: m.RecordedAt})
		}
	}
	for _, e := range s.Journal {
		if inRange(e.RecordedAt, from, to) {
			points = append(points, Point{Mood: e.Mood, At: e.RecordedAt})
		}
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].At.Before(points[j].At)
	})
	return points
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

// seriesBuckets is the number of seven-day buckets for a month or year.
func seriesBuckets(period domain.Period) int {
	return (period.Days() + 6) / 7
}

// SeriesDays is how far back PeriodSeries reaches. Month and year round up to
// whole buckets, so the oldest bucket covers 35 days for a month and 371 for a year.
func SeriesDays(period domain.Period) int {
	if period == domain.PeriodWeek || period == "" {
		return 7
	}
	return seriesBuckets(period) * 7
}

// PeriodSeries averages mood per bucket, oldest first. A week is seven local
// calendar days ending today; a month or year is split into seven-day buckets
// ending now. Empty buckets hold the neutral score. Points should cover
// SeriesDays before now.
func PeriodSeries(points []Point, period domain.Period, now time.Time, loc *time.Location) ([]float64, []string) {
	if loc == nil {
		loc = time.UTC
	}
	localNow := now.In(loc)

	if period == domain.PeriodWeek || period == "" {
		sums := make(map[string][]float64, 7)
		for _, p := range points {
			key := p.At.In(loc).Format(dateLayout)
			sums[key] = append(sums[key], float64(p.Mood.Score()))
		}
		data := make([]float64, 0, 7)
		labels := make([]string, 0, 7)
		for i := 6; i >= 0; i-- {
			day := localNow.AddDate(0, 0, -i)
			data = append(data, round2(mean(sums[day.Format(dateLayout)])))
			labels = append(labels, day.Format("Mon"))
		}
		return data, labels
	}

	buckets := seriesBuckets(period)
	const week = 7 * 24 * time.Hour
	values := make([][]float64, buckets)
	for _, p := range points {
		age := now.Sub(p.At)
		if age < 0 {
			continue
		}
		idx := int(age / week)
		if idx >= buckets {
			continue
		}
		values[idx] = append(values[idx], float64(p.Mood.Score()))
	}

	data := make([]float64, 0, buckets)
	labels := make([]string, 0, buckets)
	for idx := buckets - 1; idx >= 0; idx-- {
		start := localNow.AddDate(0, 0, -(idx+1)*7+1)
		data = append(data, round2(mean(values[idx])))
		labels = append(labels, start.Format("Jan 02"))
	}
	return data, labels
}

// TimeSlot returns the time-of-day bucket for a local hour. Lower edges are inclusive.
func TimeSlot(hour int) string {
	switch {
	case hour >= 6 && hour < 12:
		return "Morning"
	case hour >= 12 && hour < 18:
		return "Afternoon"
	case hour >= 18 && hour < 22:
		return "Evening"
	default:
		return "Night"
	}
}

// TimeOfDay averages mood per slot in TimeSlots order and names the best slot.
// Ties go to the earlier slot.
func TimeOfDay(points []Point, loc *time.Location) ([]float64, string) {
	if loc == nil {
		loc = time.UTC
	}
	bySlot := make(map[string][]float64, len(TimeSlots))
	for _, p := range points {
		slot := TimeSlot(p.At.In(loc).Hour())
		bySlot[slot] = append(bySlot[slot], float64(p.Mood.Score()))
	}

	data := make([]float64, len(TimeSlots))
	best := 0
	for i, slot := range TimeSlots {
		data[i] = round2(mean(bySlot[slot]))
		if data[i] > data[best] {
			best = i
		}
	}
	return data, TimeSlots[best]
}

// WeeklyPattern names the best and the most challenging weekday by average mood.
func WeeklyPattern(points []Point, loc *time.Location) string {
	if len(points) < 2 {
		return NotEnoughData
	}
	if loc == nil {
		loc = time.UTC
	}

	byDay := make([][]float64, 7)
	for _, p := range points {
		// Monday = 0
		wd := (int(p.At.In(loc).Weekday()) + 6) % 7
		byDay[wd] = append(byDay[wd], float64(p.Mood.Score()))
	}

	best, worst := -1, -1
	var bestAvg, worstAvg float64
	for day, scores := range byDay {
		if len(scores) == 0 {
			continue
		}
		avg := mean(scores)
		if worst < 0 || avg < worstAvg {
			worst, worstAvg = day, avg
		}
		if best < 0 || avg >= bestAvg {
			best, bestAvg = day, avg
		}
	}
	if bestAvg == worstAvg {
		return ConsistentMood
	}
	return fmt.Sprintf("Best on %s, Challenging on %s", weekdays[best], weekdays[worst])
}

// MoodTriggers reports up to two mood transitions seen more than once, most
// frequent first.
func MoodTriggers(points []Point) string {
	if len(points) < 2 {
		return NotEnoughData
	}

	counts := make(map[string]int)
	var order []string
	for i := 1; i < len(points); i++ {
		prev, curr := points[i-1].Mood, points[i].Mood
		if prev == curr {
			continue
		}
		key := fmt.Sprintf("%s → %s", prev, curr)
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}
	if len(order) == 0 {
		return NotEnoughData
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	var triggers []string
	for _, key := range order[:min(2, len(order))] {
		if counts[key] > 1 {
			triggers = append(triggers, fmt.Sprintf("%s (%d times)", key, counts[key]))
		}
	}
	if len(triggers) == 0 {
		return NoClearPatterns
	}
	return strings.Join(triggers, ", ")
}

// Trends compares current scores against scores computed only from events in
// the window of equal length right before now minus the period. A dimension
// whose previous window lacks the events it needs has a zero trend.
func Trends(ctx context.Context, s domain.EventSnapshot, current domain.WellnessScores, period domain.Period, now time.Time, analyzer sentiment.Analyzer) domain.WellnessTrends {
	length := time.Duration(period.Days()) * 24 * time.Hour
	end := now.Add(-length)
	start := end.Add(-length)
	prev := windowSnapshot(s, start, end)

	var t domain.WellnessTrends
	if len(prev.BMI) > 0 {
		t.Physical = current.Physical - PhysicalScore(prev.BMI)
	}
	if len(prev.Journal) > 0 && len(prev.Moods) > 0 {
		t.Mental = current.Mental - MentalScore(ctx, prev.Journal, prev.Moods, analyzer)
	}
	if len(prev.Moods) > 0 {
		t.Emotional = current.Emotional - EmotionalScore(prev.Moods)
	}
	return t
}

// windowSnapshot keeps events recorded in [start, end).
func windowSnapshot(s domain.EventSnapshot, start, end time.Time) domain.EventSnapshot {
	var out domain.EventSnapshot
	in := func(t time.Time) bool { return !t.Before(start) && t.Before(end) }
	for _, m := range s.Moods {
		if in(m.RecordedAt) {
			out.Moods = append(out.Moods, m)
		}
	}
	for _, e := range s.Journal {
		if in(e.RecordedAt) {
			out.Journal = append(out.Journal, e)
		}
	}
	for _, b := range s.BMI {
		if in(b.RecordedAt) {
			out.BMI = append(out.BMI, b)
		}
	}
	return out
}

// UpTo drops events recorded after now.
func UpTo(s domain.EventSnapshot, now time.Time) domain.EventSnapshot {
	return windowSnapshot(s, time.Time{}, now.Add(time.Nanosecond))
}
