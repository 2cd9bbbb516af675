package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/blaisecz/mood-journal/internal/analytics"
	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/blaisecz/mood-journal/internal/logger"
	"github.com/blaisecz/mood-journal/internal/repository"
	"github.com/blaisecz/mood-journal/internal/sentiment"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// InsightsService computes the dashboard analytics for a user.
type InsightsService interface {
	// Generate builds insights over period at the service clock's current instant.
	Generate(ctx context.Context, userID uuid.UUID, period domain.Period) (*domain.InsightsResponse, error)
}

type insightsService struct {
	events   repository.EventRepository
	userRepo repository.UserRepository
	analyzer sentiment.Analyzer
	clock    Clock
	log      *slog.Logger
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(
	events repository.EventRepository,
	userRepo repository.UserRepository,
	analyzer sentiment.Analyzer,
	clock Clock,
	log *slog.Logger,
) InsightsService {
	return &insightsService{
		events:   events,
		userRepo: userRepo,
		analyzer: analyzer,
		clock:    clockOrSystem(clock),
		log:      loggerOrDefault(log),
	}
}

func (s *insightsService) Generate(ctx context.Context, userID uuid.UUID, period domain.Period) (*domain.InsightsResponse, error) {
	tracer := otel.Tracer("mood-journal-api/insights")
	ctx, span := tracer.Start(ctx, "InsightsService.Generate",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("insights.period", string(period)),
		),
	)
	defer span.End()

	user, err := requireUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.events.FetchUserEvents(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}

	now := s.clock()
	inputPayload := map[string]any{
		"user_id":  userID.String(),
		"period":   period,
		"now":      now.Format(time.RFC3339),
		"timezone": user.Timezone,
		"moods":    len(snapshot.Moods),
		"journal":  len(snapshot.Journal),
		"bmi":      len(snapshot.BMI),
	}
	if inputJSON, err := json.Marshal(inputPayload); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	insights := analytics.BuildInsights(ctx, analytics.InsightsInput{
		Snapshot:  snapshot,
		Period:    period,
		Now:       now,
		Location:  user.Location(),
		Sentiment: s.analyzer,
	})

	if outputJSON, err := json.Marshal(insights); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	logger.Ctx(ctx, s.log).Debug("insights generated",
		"user_id", userID,
		"period", period,
		"total_entries", insights.TotalEntries,
		"streak", insights.Streak,
	)

	return &insights, nil
}
