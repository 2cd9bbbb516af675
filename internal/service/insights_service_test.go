package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/blaisecz/mood-journal/internal/logger"
	"github.com/google/uuid"
)

func TestInsightsService_Generate(t *testing.T) {
	users := NewMockUserRepository()
	userID := users.addUser("UTC")
	events := NewMockEventRepository(nil)
	for i := 0; i < 3; i++ {
		events.moods = append(events.moods, domain.MoodEvent{
			UserID:     userID,
			Mood:       domain.MoodHappy,
			RecordedAt: testNow.AddDate(0, 0, -i).Add(-5 * time.Hour),
		})
	}
	events.bmi = append(events.bmi, domain.BMIRecord{UserID: userID, BMI: 22, RecordedAt: testNow.AddDate(0, 0, -1)})

	svc := NewInsightsService(events, users, constPolarity(0), fixedClock, logger.Discard())

	resp, err := svc.Generate(context.Background(), userID, domain.PeriodWeek)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if resp.TotalEntries != 3 {
		t.Errorf("TotalEntries = %d, want 3", resp.TotalEntries)
	}
	if resp.Streak != 3 {
		t.Errorf("Streak = %d, want 3", resp.Streak)
	}
	if resp.PhysicalScore != 80 {
		t.Errorf("PhysicalScore = %d, want 80", resp.PhysicalScore)
	}
	if len(resp.MoodData) != 7 || len(resp.MoodLabels) != 7 {
		t.Errorf("week series has %d points and %d labels", len(resp.MoodData), len(resp.MoodLabels))
	}
	if resp.AverageMood != "😄" {
		t.Errorf("AverageMood = %q", resp.AverageMood)
	}
}

func TestInsightsService_Generate_Errors(t *testing.T) {
	users := NewMockUserRepository()
	userID := users.addUser("UTC")

	t.Run("unknown user", func(t *testing.T) {
		svc := NewInsightsService(NewMockEventRepository(nil), users, nil, fixedClock, logger.Discard())
		if _, err := svc.Generate(context.Background(), uuid.New(), domain.PeriodWeek); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("Generate() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		events := NewMockEventRepository(nil)
		events.err = errors.New("db down")
		svc := NewInsightsService(events, users, nil, fixedClock, logger.Discard())
		if _, err := svc.Generate(context.Background(), userID, domain.PeriodWeek); err == nil {
			t.Fatal("Generate() expected error")
		}
	})
}

func TestInsightsService_Generate_EmptyHistory(t *testing.T) {
	users := NewMockUserRepository()
	userID := users.addUser("Europe/Prague")
	svc := NewInsightsService(NewMockEventRepository(nil), users, nil, fixedClock, logger.Discard())

	resp, err := svc.Generate(context.Background(), userID, domain.PeriodMonth)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if resp.PhysicalScore != 50 || resp.MentalScore != 50 || resp.EmotionalScore != 50 {
		t.Errorf("empty history scores = %d/%d/%d, want 50s", resp.PhysicalScore, resp.MentalScore, resp.EmotionalScore)
	}
	if resp.Streak != 0 || resp.TotalEntries != 0 {
		t.Errorf("empty history streak=%d total=%d", resp.Streak, resp.TotalEntries)
	}
}
