package analytics

import (
	"math"
	"time"

	"github.com/blaisecz/mood-journal/internal/domain"
)

const (
	dashboardEmotions = 5
	dashboardEntries  = 5
	dashboardDays     = 7
)

// WindowMoodEmoji maps the rounded average of the check-ins recorded in
// [from, to] to an emoji, neutral when there are none.
func WindowMoodEmoji(moods []domain.MoodEvent, from, to time.Time) string {
	var scores []float64
	for _, m := range moods {
		if inRange(m.RecordedAt, from, to) {
			scores = append(scores, float64(m.Mood.Score()))
		}
	}
	if len(scores) == 0 {
		return domain.ScoreEmoji(domain.NeutralMoodScore)
	}
	return domain.ScoreEmoji(int(math.Round(mean(scores))))
}

// BuildDashboard summarizes a snapshot at now: the average mood of the last
// seven days, the streak, the five most common moods, the mood transitions and
// the five latest journal entries.
func BuildDashboard(s domain.EventSnapshot, conversations int, now time.Time) domain.DashboardResponse {
	snap := UpTo(s, now)

	moods := make([]domain.Mood, len(snap.Moods))
	for i, m := range snap.Moods {
		moods[i] = m.Mood
	}
	common := Distribution(moods)
	if len(common) > dashboardEmotions {
		common = common[:dashboardEmotions]
	}
	if common == nil {
		common = []domain.MoodShare{}
	}

	journal := snap.Journal
	if len(journal) > dashboardEntries {
		journal = journal[len(journal)-dashboardEntries:]
	}
	entries := make([]domain.JournalEntryResponse, len(journal))
	for i := range journal {
		entries[i] = journal[i].ToResponse()
	}

	return domain.DashboardResponse{
		TotalConversations: conversations,
		AverageMood:        WindowMoodEmoji(snap.Moods, now.AddDate(0, 0, -dashboardDays), now),
		Streak:             Streak(EngagementTimes(snap), now),
		CommonEmotions:     common,
		Triggers:           MoodTriggers(PointsFrom(domain.EventSnapshot{Moods: snap.Moods}, time.Time{}, now)),
		JournalEntries:     entries,
	}
}
