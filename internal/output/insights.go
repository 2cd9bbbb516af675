package output

import (
	"fmt"
	"strings"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 20

// RenderInsights formats one user's insights as a boxed terminal report.
func RenderInsights(name string, period domain.Period, in *domain.InsightsResponse) string {
	var sb strings.Builder

	sb.WriteString(styleTitle.Render(fmt.Sprintf("%s · %s", name, period)))
	sb.WriteString("\n\n")

	row := func(label, value string) {
		sb.WriteString(styleLabel.Render(label))
		sb.WriteString(styleValue.Render(value))
		sb.WriteString("\n")
	}

	row("Average mood", in.AverageMood)
	row("Entries", fmt.Sprintf("%d", in.TotalEntries))
	row("Streak", fmt.Sprintf("%d days", in.Streak))
	row("Best time", in.BestTime)
	row("Weekly pattern", in.WeeklyPattern)
	row("Mood triggers", in.MoodTriggers)

	sb.WriteString("\n")
	sb.WriteString(styleHeader.Render("Wellness"))
	sb.WriteString("\n")
	scoreRow(&sb, "Physical", in.PhysicalScore, in.PhysicalTrend)
	scoreRow(&sb, "Mental", in.MentalScore, in.MentalTrend)
	scoreRow(&sb, "Emotional", in.EmotionalScore, in.EmotionalTrend)

	if len(in.MoodData) > 0 {
		sb.WriteString("\n")
		sb.WriteString(styleHeader.Render("Mood"))
		sb.WriteString("\n")
		for i, v := range in.MoodData {
			label := ""
			if i < len(in.MoodLabels) {
				label = in.MoodLabels[i]
			}
			sb.WriteString(styleLabel.Render(label))
			sb.WriteString(bar(v, 5))
			sb.WriteString(styleMuted.Render(fmt.Sprintf(" %.1f", v)))
			sb.WriteString("\n")
		}
	}

	if in.MoodInsights != "" {
		sb.WriteString("\n")
		sb.WriteString(styleMuted.Render(in.MoodInsights))
		sb.WriteString("\n")
	}

	return styleBox.Render(strings.TrimRight(sb.String(), "\n"))
}

func scoreRow(sb *strings.Builder, label string, score, trend int) {
	sb.WriteString(styleLabel.Render(label))
	sb.WriteString(bar(float64(score), 100))
	sb.WriteString(fmt.Sprintf(" %3d ", score))
	sb.WriteString(Trend(trend))
	sb.WriteString("\n")
}

// Trend renders a signed trend with an arrow, green when rising.
func Trend(delta int) string {
	switch {
	case delta > 0:
		return styleUp.Render(fmt.Sprintf("↑ +%d", delta))
	case delta < 0:
		return styleDown.Render(fmt.Sprintf("↓ %d", delta))
	default:
		return styleMuted.Render("→ 0")
	}
}

func bar(value, max float64) string {
	if max <= 0 {
		return ""
	}
	filled := int(value / max * barWidth)
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return strings.Repeat("█", filled) + styleMuted.Render(strings.Repeat("░", barWidth-filled))
}

// JoinReports stacks rendered reports vertically with a blank line between them.
func JoinReports(reports []string) string {
	parts := make([]string, 0, len(reports)*2)
	for i, r := range reports {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, r)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
