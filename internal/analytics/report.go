package analytics

import (
	"fmt"
	"strings"

	"github.com/blaisecz/mood-journal/internal/domain"
)

// ReportInput feeds FormatReport. Analysis is the generated text; leave it empty
// when generation failed and the templated fallback is used instead.
type ReportInput struct {
	Entries  []domain.JournalEntry
	Scores   domain.WellnessScores
	Trends   domain.WellnessTrends
	Streak   int
	Analysis string
}

// FormatReport assembles the structured report and its pre-formatted text.
func FormatReport(in ReportInput) domain.ReportResponse {
	moods := make([]domain.Mood, len(in.Entries))
	for i, e := range in.Entries {
		moods[i] = e.Mood
	}
	dominant := DominantMood(moods)
	dist := Distribution(moods)

	analysis := strings.TrimSpace(in.Analysis)
	source := domain.AnalysisGenerated
	if analysis == "" {
		analysis = FallbackAnalysis(len(in.Entries), dominant, in.Scores)
		source = domain.AnalysisFallback
	}

	var b strings.Builder
	b.WriteString("1. Emotional Statistics\n")
	fmt.Fprintf(&b, "   • Total Entries Analyzed: %d\n", len(in.Entries))
	fmt.Fprintf(&b, "   • Dominant Mood: %s\n", capitalize(string(dominant)))
	b.WriteString("   • Mood Distribution:\n")
	for _, s := range dist {
		fmt.Fprintf(&b, "     • %s: %d %s (%d%%)\n", capitalize(string(s.Mood)), s.Count, plural(s.Count, "entry", "entries"), s.Percentage)
	}
	b.WriteString("\n2. Wellness Scores\n")
	fmt.Fprintf(&b, "   • Physical: %d (%s)\n", in.Scores.Physical, signed(in.Trends.Physical))
	fmt.Fprintf(&b, "   • Mental: %d (%s)\n", in.Scores.Mental, signed(in.Trends.Mental))
	fmt.Fprintf(&b, "   • Emotional: %d (%s)\n", in.Scores.Emotional, signed(in.Trends.Emotional))
	fmt.Fprintf(&b, "   • Streak: %d %s\n", in.Streak, plural(in.Streak, "day", "days"))
	b.WriteString("\n")
	b.WriteString(analysis)
	b.WriteString("\n")

	return domain.ReportResponse{
		TotalEntries:     len(in.Entries),
		DominantMood:     dominant,
		MoodDistribution: dist,
		Scores:           in.Scores,
		Trends:           in.Trends,
		Streak:           in.Streak,
		Analysis:         analysis,
		AnalysisSource:   source,
		Text:             b.String(),
	}
}

// FallbackAnalysis is the templated analysis used when no generated text is available.
func FallbackAnalysis(total int, dominant domain.Mood, scores domain.WellnessScores) string {
	var b strings.Builder
	b.WriteString("3. Summary\n")
	fmt.Fprintf(&b, "   • You wrote %d %s, most often feeling %s.\n", total, plural(total, "entry", "entries"), dominant)
	fmt.Fprintf(&b, "   • Your wellness scores are physical %d, mental %d and emotional %d out of 100.\n",
		scores.Physical, scores.Mental, scores.Emotional)

	b.WriteString("\n4. Suggestions\n")
	switch {
	case dominant.Score() <= 2:
		b.WriteString("   • Try a short breathing exercise when difficult feelings come up.\n")
		b.WriteString("   • Consider reaching out to someone you trust about how you have been feeling.\n")
	case dominant.Score() >= 4:
		b.WriteString("   • Note what contributed to your good days so you can return to it.\n")
		b.WriteString("   • Set a small goal that builds on this momentum.\n")
	default:
		b.WriteString("   • Keep journaling regularly to spot patterns in your mood.\n")
		b.WriteString("   • Try one new activity this week and notice how it affects you.\n")
	}
	b.WriteString("\nA detailed analysis is not available right now. Please try again later.")
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func signed(n int) string {
	if n > 0 {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}
