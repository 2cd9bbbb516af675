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

// DashboardService builds the at-a-glance user summary.
type DashboardService interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.DashboardResponse, error)
}

type dashboardService struct {
	events   repository.EventRepository
	chats    repository.ChatRepository
	userRepo repository.UserRepository
	clock    Clock
	log      *slog.Logger
}

func NewDashboardService(
	events repository.EventRepository,
	chats repository.ChatRepository,
	userRepo repository.UserRepository,
	clock Clock,
	log *slog.Logger,
) DashboardService {
	return &dashboardService{
		events:   events,
		chats:    chats,
		userRepo: userRepo,
		clock:    clockOrSystem(clock),
		log:      loggerOrDefault(log),
	}
}

func (s *dashboardService) Get(ctx context.Context, userID uuid.UUID) (*domain.DashboardResponse, error) {
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	snapshot, err := s.events.FetchUserEvents(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}

	// A failed count reports zero conversations.
	conversations, err := s.chats.Count(ctx, userID)
	if err != nil {
		logger.Ctx(ctx, s.log).Warn("count chat messages failed", "user_id", userID, "error", err)
		conversations = 0
	}

	dashboard := analytics.BuildDashboard(snapshot, int(conversations), s.clock())
	return &dashboard, nil
}
