package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/blaisecz/mood-journal/internal/analytics"
	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/blaisecz/mood-journal/internal/logger"
	"github.com/blaisecz/mood-journal/internal/repository"
	"github.com/google/uuid"
)

// MoodService records mood check-ins.
type MoodService interface {
	// Track appends a mood event and returns it with the refreshed streak.
	Track(ctx context.Context, userID uuid.UUID, req *domain.TrackMoodRequest) (*domain.TrackMoodResponse, error)
}

type moodService struct {
	events   repository.EventRepository
	userRepo repository.UserRepository
	clock    Clock
	log      *slog.Logger
}

func NewMoodService(events repository.EventRepository, userRepo repository.UserRepository, clock Clock, log *slog.Logger) MoodService {
	return &moodService{
		events:   events,
		userRepo: userRepo,
		clock:    clockOrSystem(clock),
		log:      loggerOrDefault(log),
	}
}

func (s *moodService) Track(ctx context.Context, userID uuid.UUID, req *domain.TrackMoodRequest) (*domain.TrackMoodResponse, error) {
	if !req.Mood.Valid() {
		return nil, fmt.Errorf("%w: unknown mood %q", domain.ErrInvalidInput, req.Mood)
	}
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	now := s.clock()
	event := &domain.MoodEvent{
		UserID:     userID,
		Mood:       req.Mood,
		Context:    req.Context,
		RecordedAt: now,
	}
	if err := s.events.AppendMood(ctx, event); err != nil {
		return nil, fmt.Errorf("append mood: %w", err)
	}

	snapshot, err := s.events.FetchUserEvents(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}
	streak := analytics.Streak(analytics.EngagementTimes(snapshot), now)

	logger.Ctx(ctx, s.log).Debug("mood tracked", "user_id", userID, "mood", req.Mood, "streak", streak)

	return &domain.TrackMoodResponse{
		Mood:   event.ToResponse(),
		Streak: streak,
	}, nil
}
