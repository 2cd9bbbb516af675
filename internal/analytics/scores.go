// Package analytics turns a user's mood, journal and BMI history into wellness
// scores, streaks, trends and report text. Every function is pure: the reference
// instant and the sentiment analyzer are passed in.
package analytics

import (
	"context"
	"math"
	"sort"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/blaisecz/mood-journal/internal/sentiment"
)

const (
	// NeutralScore is returned by every scorer when it has no input.
	NeutralScore = 50

	// MentalJournalWindow is how many recent journal entries feed the mental score.
	MentalJournalWindow = 5
	// MoodWindow is how many recent mood events feed the mental and emotional scores.
	MoodWindow = 7
)

// BMICategory names the WHO category for a BMI value.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// PhysicalScore scores the most recent BMI record.
func PhysicalScore(history []domain.BMIRecord) int {
	if len(history) == 0 {
		return NeutralScore
	}
	latest := history[0]
	for _, r := range history[1:] {
		if r.RecordedAt.After(latest.RecordedAt) {
			latest = r
		}
	}

	bmi := latest.BMI
	switch {
	case math.IsNaN(bmi) || bmi <= 0:
		return NeutralScore
	case bmi < 18.5:
		return 40
	case bmi < 25:
		return 80
	case bmi < 30:
		return 60
	default:
		return 30
	}
}

// MentalScore blends the average polarity of the last five journal entries with
// the average score of the last seven moods. Entries the analyzer fails on are
// skipped; if none can be scored the result is neutral.
func MentalScore(ctx context.Context, journal []domain.JournalEntry, moods []domain.MoodEvent, analyzer sentiment.Analyzer) int {
	if len(journal) == 0 || len(moods) == 0 || analyzer == nil {
		return NeutralScore
	}

	entries := recentJournal(journal, MentalJournalWindow)
	sum := 0.0
	scored := 0
	for _, e := range entries {
		p, err := analyzer.Polarity(ctx, e.Content)
		if err != nil || math.IsNaN(p) {
			continue
		}
		sum += math.Max(-1, math.Min(1, p))
		scored++
	}
	if scored == 0 {
		return NeutralScore
	}
	avgSentiment := sum / float64(scored)
	avgMood := mean(moodScores(recentMoods(moods, MoodWindow)))

	score := int(math.Round((avgSentiment+1)*25 + (avgMood/5)*25))
	return clampScore(score)
}

// EmotionalScore rewards stable moods: 100 minus twenty points per unit of
// standard deviation across the last seven check-ins.
func EmotionalScore(moods []domain.MoodEvent) int {
	if len(moods) == 0 {
		return NeutralScore
	}
	std := stddev(moodScores(recentMoods(moods, MoodWindow)))
	return clampScore(int(math.Round(math.Max(0, 100-std*20))))
}

// ComputeWellness scores all three dimensions over one snapshot.
func ComputeWellness(ctx context.Context, s domain.EventSnapshot, analyzer sentiment.Analyzer) domain.WellnessScores {
	return domain.WellnessScores{
		Physical:  PhysicalScore(s.BMI),
		Mental:    MentalScore(ctx, s.Journal, s.Moods, analyzer),
		Emotional: EmotionalScore(s.Moods),
	}
}

// recentMoods returns the last n events by timestamp, oldest first.
func recentMoods(moods []domain.MoodEvent, n int) []domain.MoodEvent {
	sorted := make([]domain.MoodEvent, len(moods))
	copy(sorted, moods)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RecordedAt.Before(sorted[j].RecordedAt)
	})
	if len(sorted) > n {
		sorted = sorted[len(sorted)-n:]
	}
	return sorted
}

func recentJournal(entries []domain.JournalEntry, n int) []domain.JournalEntry {
	sorted := make([]domain.JournalEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RecordedAt.Before(sorted[j].RecordedAt)
	})
	if len(sorted) > n {
		sorted = sorted[len(sorted)-n:]
	}
	return sorted
}

func moodScores(moods []domain.MoodEvent) []float64 {
	out := make([]float64, len(moods))
	for i, m := range moods {
		out[i] = float64(m.Mood.Score())
	}
	return out
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return domain.NeutralMoodScore
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddev is the population standard deviation.
func stddev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	avg := mean(values)
	sumSquares := 0.0
	for _, v := range values {
		diff := v - avg
		sumSquares += diff * diff
	}
	return math.Sqrt(sumSquares / float64(len(values)))
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
