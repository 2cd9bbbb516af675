package sentiment

import (
	"context"
	"strings"
)

// Lexicon is a word-valence polarity analyzer. The zero value is not usable;
// construct with NewLexicon.
type Lexicon struct {
	valence      map[string]float64
	intensifiers map[string]float64
	negators     map[string]bool
}

// NewLexicon returns an analyzer over the built-in English word list.
func NewLexicon() *Lexicon {
	return &Lexicon{
		valence:      defaultValence,
		intensifiers: defaultIntensifiers,
		negators:     defaultNegators,
	}
}

// negationWindow is how many preceding tokens can flip a word.
const negationWindow = 3

// Polarity averages the valence of every lexicon word in text. A negator within
// the previous three tokens flips and halves a word; an intensifier right before
// it scales it. Text without lexicon words is neutral.
func (l *Lexicon) Polarity(ctx context.Context, text string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	tokens := Tokenize(text)
	sum := 0.0
	matched := 0
	for i, tok := range tokens {
		v, ok := l.valence[tok]
		if !ok {
			continue
		}
		if i > 0 {
			if m, ok := l.intensifiers[tokens[i-1]]; ok {
				v *= m
			}
		}
		for j := i - 1; j >= 0 && j >= i-negationWindow; j-- {
			if l.negators[tokens[j]] || strings.HasSuffix(tokens[j], "n't") {
				v *= -0.5
				break
			}
		}
		sum += clamp(v)
		matched++
	}
	if matched == 0 {
		return 0, nil
	}
	return clamp(sum / float64(matched)), nil
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

var defaultIntensifiers = map[string]float64{
	"very":       1.3,
	"really":     1.3,
	"so":         1.2,
	"extremely":  1.5,
	"incredibly": 1.5,
	"super":      1.3,
	"totally":    1.2,
	"quite":      1.1,
	"slightly":   0.6,
	"somewhat":   0.7,
	"bit":        0.7,
}

var defaultNegators = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"nothing": true,
	"hardly":  true,
	"barely":  true,
	"without": true,
}

var defaultValence = map[string]float64{
	// positive
	"amazing":    0.9,
	"awesome":    0.9,
	"beautiful":  0.85,
	"best":       1.0,
	"better":     0.5,
	"blessed":    0.7,
	"calm":       0.5,
	"cheerful":   0.7,
	"confident":  0.6,
	"content":    0.5,
	"delighted":  0.8,
	"enjoy":      0.5,
	"enjoyed":    0.5,
	"excellent":  1.0,
	"excited":    0.7,
	"fantastic":  0.9,
	"fine":       0.4,
	"fun":        0.6,
	"glad":       0.6,
	"good":       0.7,
	"grateful":   0.7,
	"great":      0.8,
	"happy":      0.8,
	"hopeful":    0.6,
	"joy":        0.8,
	"love":       0.5,
	"loved":      0.7,
	"lovely":     0.6,
	"nice":       0.6,
	"peaceful":   0.6,
	"perfect":    1.0,
	"pleased":    0.6,
	"productive": 0.5,
	"proud":      0.8,
	"relaxed":    0.5,
	"relieved":   0.5,
	"rested":     0.4,
	"success":    0.6,
	"thankful":   0.7,
	"wonderful":  1.0,
	// negative
	"afraid":       -0.6,
	"angry":        -0.5,
	"annoyed":      -0.5,
	"anxious":      -0.5,
	"awful":        -1.0,
	"bad":          -0.7,
	"depressed":    -0.8,
	"disappointed": -0.75,
	"exhausted":    -0.5,
	"fear":         -0.6,
	"frustrated":   -0.6,
	"hate":         -0.8,
	"horrible":     -1.0,
	"hurt":         -0.6,
	"lonely":       -0.6,
	"lost":         -0.4,
	"miserable":    -1.0,
	"nervous":      -0.4,
	"overwhelmed":  -0.6,
	"pain":         -0.6,
	"sad":          -0.5,
	"scared":       -0.6,
	"sick":         -0.7,
	"stress":       -0.5,
	"stressed":     -0.6,
	"terrible":     -1.0,
	"tired":        -0.4,
	"upset":        -0.6,
	"worried":      -0.5,
	"worry":        -0.5,
	"worst":        -1.0,
	"worse":        -0.5,
}
