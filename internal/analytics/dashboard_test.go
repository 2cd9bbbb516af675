package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowMoodEmoji(t *testing.T) {
	moods := []domain.MoodEvent{
		mood(domain.MoodSad, daysAgo(10, 9)),
		mood(domain.MoodHappy, daysAgo(2, 9)),
		mood(domain.MoodCalm, daysAgo(1, 9)),
	}

	assert.Equal(t, "😄", WindowMoodEmoji(moods, refNow.AddDate(0, 0, -7), refNow), "4.5 rounds up")
	assert.Equal(t, "😐", WindowMoodEmoji(moods, refNow.AddDate(0, 0, -30), refNow))
	assert.Equal(t, "😢", WindowMoodEmoji(moods, daysAgo(10, 9), daysAgo(10, 9)), "bounds are inclusive")
	assert.Equal(t, "😐", WindowMoodEmoji(moods, refNow.Add(1), refNow.AddDate(0, 0, 1)), "empty window is neutral")
	assert.Equal(t, "😐", WindowMoodEmoji(nil, refNow.AddDate(0, 0, -7), refNow))
}

func TestBuildDashboard(t *testing.T) {
	snap := domain.EventSnapshot{
		Moods: []domain.MoodEvent{
			mood(domain.MoodSad, daysAgo(9, 9)),
			mood(domain.MoodCalm, daysAgo(6, 9)),
			mood(domain.MoodAnxious, daysAgo(5, 9)),
			mood(domain.MoodCalm, daysAgo(4, 9)),
			mood(domain.MoodAnxious, daysAgo(3, 9)),
			mood(domain.MoodCalm, daysAgo(2, 9)),
			mood(domain.MoodHappy, daysAgo(1, 9)),
			mood(domain.MoodSad, refNow.Add(time.Hour)),
		},
	}
	for n := 6; n >= 0; n-- {
		snap.Journal = append(snap.Journal, entry(fmt.Sprintf("day %d", n), domain.MoodCalm, daysAgo(n, 10)))
	}

	got := BuildDashboard(snap, 4, refNow)

	assert.Equal(t, 4, got.TotalConversations)
	assert.Equal(t, "😊", got.AverageMood, "the sad check-in nine days ago is outside the window")
	assert.Equal(t, 7, got.Streak)
	assert.Equal(t, "calm → anxious (2 times), anxious → calm (2 times)", got.Triggers)

	require.Len(t, got.CommonEmotions, 4)
	assert.Equal(t, domain.MoodCalm, got.CommonEmotions[0].Mood)
	assert.Equal(t, 3, got.CommonEmotions[0].Count)
	assert.Equal(t, domain.MoodAnxious, got.CommonEmotions[1].Mood)

	require.Len(t, got.JournalEntries, 5)
	assert.Equal(t, "day 4", got.JournalEntries[0].Content)
	assert.Equal(t, "day 0", got.JournalEntries[4].Content)
}

func TestBuildDashboard_Empty(t *testing.T) {
	got := BuildDashboard(domain.EventSnapshot{}, 0, refNow)

	assert.Equal(t, "😐", got.AverageMood)
	assert.Zero(t, got.Streak)
	assert.Equal(t, NotEnoughData, got.Triggers)
	assert.NotNil(t, got.CommonEmotions)
	assert.Empty(t, got.CommonEmotions)
	assert.NotNil(t, got.JournalEntries)
	assert.Empty(t, got.JournalEntries)
}
