package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/blaisecz/mood-journal/internal/llm"
	"github.com/blaisecz/mood-journal/internal/logger"
	"github.com/blaisecz/mood-journal/internal/repository"
	"github.com/blaisecz/mood-journal/internal/sentiment"
	"github.com/google/uuid"
)

const (
	companionMaxTokens = 500
	// CompanionFallbackReply is sent whenever no generated reply is available.
	CompanionFallbackReply = "I'm here to support your emotional well-being. How are you feeling today?"
)

var quickSupport = map[domain.SupportKind]domain.QuickSupportResponse{
	domain.SupportBreathing: {
		Kind:    domain.SupportBreathing,
		Title:   "Breathing Exercise",
		Message: "Let's do a quick breathing exercise. Breathe in for 4 seconds, hold for 4 seconds, and exhale for 4 seconds. Repeat this 5 times. Focus on your breath and let go of any tension.",
	},
	domain.SupportAffirmations: {
		Kind:    domain.SupportAffirmations,
		Title:   "Positive Affirmations",
		Message: "You are stronger than you think. Every day is a new opportunity to grow and learn. You are capable of handling whatever comes your way.",
	},
	domain.SupportSleep: {
		Kind:    domain.SupportSleep,
		Title:   "Sleep Tips",
		Message: "Try to maintain a regular sleep schedule. Avoid screens an hour before bed. Create a calming bedtime routine. Your mind and body need rest to function at their best.",
	},
	domain.SupportMindfulness: {
		Kind:    domain.SupportMindfulness,
		Title:   "Mindfulness",
		Message: "Take a moment to focus on the present. Notice your surroundings, your breath, and how you feel. There's no need to judge or change anything right now.",
	},
}

// CompanionService answers free-text messages with supportive replies and
// keeps the conversation history.
type CompanionService interface {
	Reply(ctx context.Context, userID uuid.UUID, req *domain.CompanionMessageRequest) (*domain.CompanionReply, error)
	History(ctx context.Context, userID uuid.UUID, filter domain.PageFilter) (*domain.ChatHistoryResponse, error)
	QuickSupport(kind domain.SupportKind) (*domain.QuickSupportResponse, error)
}

type companionService struct {
	chats     repository.ChatRepository
	userRepo  repository.UserRepository
	analyzer  sentiment.Analyzer
	generator llm.TextGenerator
	timeout   time.Duration
	clock     Clock
	log       *slog.Logger
}

func NewCompanionService(
	chats repository.ChatRepository,
	userRepo repository.UserRepository,
	analyzer sentiment.Analyzer,
	generator llm.TextGenerator,
	timeout time.Duration,
	clock Clock,
	log *slog.Logger,
) CompanionService {
	return &companionService{
		chats:     chats,
		userRepo:  userRepo,
		analyzer:  analyzer,
		generator: generator,
		timeout:   timeout,
		clock:     clockOrSystem(clock),
		log:       loggerOrDefault(log),
	}
}

func (s *companionService) Reply(ctx context.Context, userID uuid.UUID, req *domain.CompanionMessageRequest) (*domain.CompanionReply, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrInvalidInput)
	}
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	log := logger.Ctx(ctx, s.log).With("user_id", userID)

	var polarity float64
	if s.analyzer != nil {
		p, err := s.analyzer.Polarity(ctx, message)
		switch {
		case err != nil:
			log.Warn("sentiment analysis failed", "error", err)
		case !math.IsNaN(p):
			polarity = max(-1, min(1, p))
		}
	}
	mood := sentiment.DetectMood(polarity)

	text, ok := s.generate(ctx, log, llm.CompanionSystemPrompt(mood), message)
	if !ok {
		text = CompanionFallbackReply
	}

	exchange := &domain.ChatMessage{
		UserID:     userID,
		Message:    message,
		Response:   text,
		Mood:       mood,
		Fallback:   !ok,
		RecordedAt: s.clock(),
	}
	if err := s.chats.Append(ctx, exchange); err != nil {
		return nil, fmt.Errorf("save chat message: %w", err)
	}

	return &domain.CompanionReply{
		MessageID:    exchange.ID,
		Reply:        text,
		DetectedMood: mood,
		Fallback:     !ok,
	}, nil
}

// generate asks for a reply and retries once when it ends mid-sentence. A
// failed retry keeps the first reply.
func (s *companionService) generate(ctx context.Context, log *slog.Logger, system, message string) (string, bool) {
	if s.generator == nil {
		return "", false
	}

	genCtx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.generator.Complete(genCtx, system, message, companionMaxTokens)
	if err != nil {
		log.Warn("companion generation failed, using fallback", "error", err)
		return "", false
	}
	if strings.TrimSpace(text) == "" {
		log.Warn("companion generation returned no text, using fallback")
		return "", false
	}
	if completeSentence(text) {
		return text, true
	}

	log.Debug("companion reply looks truncated, retrying")
	retry, err := s.generator.Complete(genCtx, system+llm.CompleteSentenceHint, message, companionMaxTokens)
	if err != nil || strings.TrimSpace(retry) == "" {
		log.Warn("companion retry failed, keeping first reply", "error", err)
		return text, true
	}
	return retry, true
}

func (s *companionService) History(ctx context.Context, userID uuid.UUID, filter domain.PageFilter) (*domain.ChatHistoryResponse, error) {
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	messages, err := s.chats.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	messages, page := splitPage(messages, filter.Limit, func(m domain.ChatMessage) (uuid.UUID, time.Time) {
		return m.ID, m.RecordedAt
	})

	resp := &domain.ChatHistoryResponse{
		Data:       make([]domain.ChatMessageResponse, len(messages)),
		Pagination: page,
	}
	for i := range messages {
		resp.Data[i] = messages[i].ToResponse()
	}
	return resp, nil
}

func (s *companionService) QuickSupport(kind domain.SupportKind) (*domain.QuickSupportResponse, error) {
	resp, ok := quickSupport[domain.SupportKind(strings.ToLower(string(kind)))]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &resp, nil
}

func completeSentence(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?")
}
