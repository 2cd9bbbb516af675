// Package sentiment scores free text on a [-1, 1] polarity scale.
package sentiment

import (
	"context"
	"strings"
	"unicode"

	"github.com/blaisecz/mood-journal/internal/domain"
)

// Analyzer maps text to a polarity in [-1, 1].
type Analyzer interface {
	Polarity(ctx context.Context, text string) (float64, error)
}

// AnalyzerFunc adapts a plain function to Analyzer.
type AnalyzerFunc func(ctx context.Context, text string) (float64, error)

func (f AnalyzerFunc) Polarity(ctx context.Context, text string) (float64, error) {
	return f(ctx, text)
}

// DetectMood buckets a polarity into the three moods the companion reacts to.
func DetectMood(polarity float64) domain.Mood {
	switch {
	case polarity > 0.5:
		return domain.MoodHappy
	case polarity < -0.3:
		return domain.MoodSad
	default:
		return domain.MoodNeutral
	}
}

// Tone labels a polarity for display.
func Tone(polarity float64) string {
	switch {
	case polarity > 0.5:
		return "Very Positive"
	case polarity > 0:
		return "Positive"
	case polarity < -0.5:
		return "Very Negative"
	case polarity < 0:
		return "Negative"
	default:
		return "Neutral"
	}
}

// Suggestions returns two reflection prompts matched to the tone of an entry.
func Suggestions(polarity float64) []string {
	switch {
	case polarity < 0:
		return []string{
			"Consider practicing gratitude by listing three things you're thankful for.",
			"Try a short mindfulness exercise to center yourself.",
		}
	case polarity > 0:
		return []string{
			"Build on this positive momentum by setting a small, achievable goal.",
			"Share your positive experience with someone you care about.",
		}
	default:
		return []string{
			"Reflect on what might help you feel more engaged or fulfilled.",
			"Consider trying a new activity or hobby to spark joy.",
		}
	}
}

// KeyThemes returns up to limit frequent words longer than three letters,
// most frequent first, ties in order of first appearance.
func KeyThemes(text string, limit int) []string {
	counts := make(map[string]int)
	var order []string
	for _, w := range Tokenize(text) {
		if len([]rune(w)) <= 3 || stopwords[w] {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	themes := make([]string, 0, limit)
	used := make(map[string]bool, limit)
	for len(themes) < limit && len(themes) < len(order) {
		best := ""
		for _, w := range order {
			if used[w] {
				continue
			}
			if best == "" || counts[w] > counts[best] {
				best = w
			}
		}
		used[best] = true
		themes = append(themes, best)
	}
	return themes
}

// Tokenize lowercases text and splits it into words. Apostrophes stay inside words.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

var stopwords = map[string]bool{
	"about": true, "after": true, "again": true, "also": true, "been": true, "before": true,
	"being": true, "could": true, "didn't": true, "does": true, "doing": true, "from": true,
	"have": true, "having": true, "here": true, "into": true, "just": true, "like": true,
	"more": true, "most": true, "much": true, "only": true, "other": true, "over": true,
	"really": true, "same": true, "should": true, "some": true, "such": true, "than": true,
	"that": true, "their": true, "them": true, "then": true, "there": true, "these": true,
	"they": true, "this": true, "those": true, "through": true, "today": true, "very": true,
	"want": true, "was": true, "were": true, "what": true, "when": true, "where": true,
	"which": true, "while": true, "will": true, "with": true, "would": true, "your": true,
}
