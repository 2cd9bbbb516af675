package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/blaisecz/mood-journal/internal/domain"
)

// Distribution counts each mood and converts counts to whole percentages with
// the largest-remainder method, so a non-empty input always sums to 100. Rows
// are ordered by count, then by first appearance.
func Distribution(moods []domain.Mood) []domain.MoodShare {
	if len(moods) == 0 {
		return nil
	}

	counts := make(map[domain.Mood]int)
	var order []domain.Mood
	for _, m := range moods {
		if counts[m] == 0 {
			order = append(order, m)
		}
		counts[m]++
	}

	total := len(moods)
	shares := make([]domain.MoodShare, len(order))
	remainders := make([]float64, len(order))
	assigned := 0
	for i, m := range order {
		exact := float64(counts[m]) * 100 / float64(total)
		floor := math.Floor(exact)
		shares[i] = domain.MoodShare{Mood: m, Count: counts[m], Percentage: int(floor)}
		remainders[i] = exact - floor
		assigned += int(floor)
	}

	idx := make([]int, len(order))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return remainders[idx[a]] > remainders[idx[b]]
	})
	for k := 0; assigned < 100; k++ {
		shares[idx[k%len(idx)]].Percentage++
		assigned++
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Count > shares[j].Count
	})
	return shares
}

// DominantMood is the most frequent mood, the earliest seen winning ties.
func DominantMood(moods []domain.Mood) domain.Mood {
	if len(moods) == 0 {
		return domain.MoodNeutral
	}
	counts := make(map[domain.Mood]int)
	best := moods[0]
	for _, m := range moods {
		counts[m]++
	}
	for _, m := range moods {
		if counts[m] > counts[best] {
			best = m
		}
	}
	return best
}

// AverageMoodEmoji maps the rounded average of the last seven check-ins to an emoji.
func AverageMoodEmoji(moods []domain.MoodEvent) string {
	if len(moods) == 0 {
		return domain.ScoreEmoji(domain.NeutralMoodScore)
	}
	avg := mean(moodScores(recentMoods(moods, MoodWindow)))
	return domain.ScoreEmoji(int(math.Round(avg)))
}

// MoodSummary describes the stability, most common mood and distribution of
// the points in a period.
func MoodSummary(points []Point, period domain.Period) string {
	if len(points) < 2 {
		return NotEnoughData
	}

	scores := make([]float64, len(points))
	moods := make([]domain.Mood, len(points))
	for i, p := range points {
		scores[i] = float64(p.Mood.Score())
		moods[i] = p.Mood
	}
	stability := "variable"
	if stddev(scores) < 1 {
		stability = "stable"
	}
	common := DominantMood(moods)

	counts := make(map[domain.Mood]int)
	var order []domain.Mood
	for _, m := range moods {
		if counts[m] == 0 {
			order = append(order, m)
		}
		counts[m]++
	}
	parts := make([]string, len(order))
	for i, m := range order {
		parts[i] = fmt.Sprintf("%s: %.1f%%", m, float64(counts[m])*100/float64(len(moods)))
	}
	dist := strings.Join(parts, ", ")

	switch period {
	case domain.PeriodMonth:
		return fmt.Sprintf("Over the past month, your mood has been %s, with %s being the most common mood. Mood distribution: %s", stability, common, dist)
	case domain.PeriodYear:
		return fmt.Sprintf("Looking at the past year, your mood has been %s, with %s being the most common mood. Mood distribution: %s", stability, common, dist)
	default:
		return fmt.Sprintf("Your mood has been %s this week, with %s being the most common mood. Mood distribution: %s", stability, common, dist)
	}
}
