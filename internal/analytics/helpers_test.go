package analytics

import (
	"context"
	"errors"
	"time"
	_ "time/tzdata"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/blaisecz/mood-journal/internal/sentiment"
)

// refNow is a Wednesday afternoon.
var refNow = time.Date(2024, 3, 13, 15, 0, 0, 0, time.UTC)

func daysAgo(n int, hour int) time.Time {
	d := refNow.AddDate(0, 0, -n)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.UTC)
}

func mood(m domain.Mood, at time.Time) domain.MoodEvent {
	return domain.MoodEvent{Mood: m, RecordedAt: at}
}

func entry(content string, m domain.Mood, at time.Time) domain.JournalEntry {
	return domain.JournalEntry{Content: content, Mood: m, RecordedAt: at}
}

func constAnalyzer(p float64) sentiment.Analyzer {
	return sentiment.AnalyzerFunc(func(context.Context, string) (float64, error) { return p, nil })
}

var failingAnalyzer = sentiment.AnalyzerFunc(func(context.Context, string) (float64, error) {
	return 0, errors.New("sentiment backend down")
})
