package analytics

import (
	"context"
	"time"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/blaisecz/mood-journal/internal/sentiment"
)

// InsightsInput is everything BuildInsights needs. Now is the reference instant
// for every window; Location decides local days and hours.
type InsightsInput struct {
	Snapshot  domain.EventSnapshot
	Period    domain.Period
	Now       time.Time
	Location  *time.Location
	Sentiment sentiment.Analyzer
}

// BuildInsights computes the full insights payload for one period. Events after
// Now are ignored, so the same snapshot and instant always give the same result.
func BuildInsights(ctx context.Context, in InsightsInput) domain.InsightsResponse {
	period := in.Period
	if period == "" {
		period = domain.PeriodWeek
	}
	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}
	snap := UpTo(in.Snapshot, in.Now)

	from := in.Now.Add(-time.Duration(period.Days()) * 24 * time.Hour)
	points := PointsFrom(snap, from, in.Now)

	seriesFrom := in.Now.Add(-time.Duration(SeriesDays(period)) * 24 * time.Hour)
	moodData, moodLabels := PeriodSeries(PointsFrom(snap, seriesFrom, in.Now), period, in.Now, loc)
	timeData, bestTime := TimeOfDay(points, loc)

	scores := ComputeWellness(ctx, snap, in.Sentiment)
	trends := Trends(ctx, snap, scores, period, in.Now, in.Sentiment)

	return domain.InsightsResponse{
		MoodData:       moodData,
		MoodLabels:     moodLabels,
		TimeData:       timeData,
		BestTime:       bestTime,
		MoodTriggers:   MoodTriggers(points),
		WeeklyPattern:  WeeklyPattern(points, loc),
		MoodInsights:   MoodSummary(points, period),
		PhysicalScore:  scores.Physical,
		MentalScore:    scores.Mental,
		EmotionalScore: scores.Emotional,
		PhysicalTrend:  trends.Physical,
		MentalTrend:    trends.Mental,
		EmotionalTrend: trends.Emotional,
		Streak:         Streak(EngagementTimes(snap), in.Now),
		TotalEntries:   len(points),
		AverageMood:    AverageMoodEmoji(snap.Moods),
	}
}
