package domain

import (
	"fmt"
	"strings"
)

// EventSnapshot is every event a user has recorded, as read from storage in one go.
type EventSnapshot struct {
	Moods   []MoodEvent
	Journal []JournalEntry
	BMI     []BMIRecord
}

// Empty reports whether the snapshot holds no events at all.
func (s EventSnapshot) Empty() bool {
	return len(s.Moods) == 0 && len(s.Journal) == 0 && len(s.BMI) == 0
}

// Period is the window an insights request covers.
// @Description Insights window: week, month or year.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Days returns the window length used for trend comparison.
func (p Period) Days() int {
	switch p {
	case PeriodMonth:
		return 30
	case PeriodYear:
		return 365
	default:
		return 7
	}
}

// ParsePeriod parses a period query value. Empty means week.
func ParsePeriod(s string) (Period, error) {
	switch Period(strings.ToLower(strings.TrimSpace(s))) {
	case "", PeriodWeek:
		return PeriodWeek, nil
	case PeriodMonth:
		return PeriodMonth, nil
	case PeriodYear:
		return PeriodYear, nil
	}
	return "", fmt.Errorf("%w: period must be one of week, month, year", ErrInvalidInput)
}
