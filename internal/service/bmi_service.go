package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/blaisecz/mood-journal/internal/analytics"
	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/blaisecz/mood-journal/internal/llm"
	"github.com/blaisecz/mood-journal/internal/logger"
	"github.com/blaisecz/mood-journal/internal/repository"
	"github.com/google/uuid"
)

const bmiAnalysisMaxTokens = 150

// BMIService records height and weight measurements.
type BMIService interface {
	Track(ctx context.Context, userID uuid.UUID, req *domain.TrackBMIRequest) (*domain.BMIResponse, error)
}

type bmiService struct {
	events    repository.EventRepository
	userRepo  repository.UserRepository
	generator llm.TextGenerator
	timeout   time.Duration
	clock     Clock
	log       *slog.Logger
}

// NewBMIService creates a BMIService. A nil generator always yields the templated analysis.
func NewBMIService(
	events repository.EventRepository,
	userRepo repository.UserRepository,
	generator llm.TextGenerator,
	timeout time.Duration,
	clock Clock,
	log *slog.Logger,
) BMIService {
	return &bmiService{
		events:    events,
		userRepo:  userRepo,
		generator: generator,
		timeout:   timeout,
		clock:     clockOrSystem(clock),
		log:       loggerOrDefault(log),
	}
}

// ComputeBMI returns weight / height² with height in centimetres.
func ComputeBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, fmt.Errorf("%w: height and weight must be positive", domain.ErrInvalidInput)
	}
	m := heightCm / 100
	return weightKg / (m * m), nil
}

func (s *bmiService) Track(ctx context.Context, userID uuid.UUID, req *domain.TrackBMIRequest) (*domain.BMIResponse, error) {
	bmi, err := ComputeBMI(req.HeightCm, req.WeightKg)
	if err != nil {
		return nil, err
	}
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	category := analytics.BMICategory(bmi)
	analysis := s.analyze(ctx, userID, bmi, category)

	record := &domain.BMIRecord{
		UserID:     userID,
		BMI:        bmi,
		HeightCm:   req.HeightCm,
		WeightKg:   req.WeightKg,
		RecordedAt: s.clock(),
	}
	if err := s.events.AppendBMI(ctx, record); err != nil {
		return nil, fmt.Errorf("append bmi: %w", err)
	}

	return &domain.BMIResponse{
		ID:        record.ID,
		BMI:       bmi,
		Category:  category,
		Analysis:  analysis,
		Timestamp: record.RecordedAt,
	}, nil
}

func (s *bmiService) analyze(ctx context.Context, userID uuid.UUID, bmi float64, category string) string {
	fallback := fmt.Sprintf("Your BMI of %.1f falls in the %s category. Consider consulting a healthcare professional for personalized advice.", bmi, category)
	if s.generator == nil {
		return fallback
	}

	genCtx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.generator.Complete(genCtx, llm.BMISystemPrompt, llm.BMIUserPrompt(bmi, category), bmiAnalysisMaxTokens)
	if err != nil {
		logger.Ctx(ctx, s.log).Warn("bmi analysis generation failed, using fallback", "user_id", userID, "error", err)
		return fallback
	}
	return text
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
