package service

import (
	"context"
	"fmt"
	"log/slog"
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
	counselingMaxTokens = 600
	summaryMaxTokens    = 800
	summaryThemeLimit   = 3

	// CounselingFallbackReply is stored when no generated reply is available.
	CounselingFallbackReply = "Thank you for sharing that with me. I'm having trouble responding right now, but I'm still here. Could you tell me a little more about what's on your mind?"
)

var professionals = []domain.Professional{
	{ID: "1", Name: "Dr. Sarah Johnson", Specialty: "Anxiety & Depression", Credentials: "PhD, LCSW", Availability: "Mon-Fri, 9am-5pm", Contact: "sarah.johnson@example.com"},
	{ID: "2", Name: "Dr. Michael Chen", Specialty: "Trauma & PTSD", Credentials: "MD, Psychiatrist", Availability: "Tue-Sat, 10am-6pm", Contact: "michael.chen@example.com"},
	{ID: "3", Name: "Dr. Emily Rodriguez", Specialty: "Family Therapy", Credentials: "LMFT, PhD", Availability: "Wed-Sun, 11am-7pm", Contact: "emily.rodriguez@example.com"},
}

// CounselingService runs typed counseling sessions.
type CounselingService interface {
	// Send appends a message to a session, opening a new one when req has no session ID.
	Send(ctx context.Context, userID uuid.UUID, req *domain.CounselingMessageRequest) (*domain.CounselingReply, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.PageFilter) (*domain.CounselingSessionListResponse, error)
	Summary(ctx context.Context, userID, sessionID uuid.UUID) (*domain.CounselingSummaryResponse, error)
	Delete(ctx context.Context, userID, sessionID uuid.UUID) error
	Professionals() []domain.Professional
}

type counselingService struct {
	sessions  repository.CounselingRepository
	userRepo  repository.UserRepository
	generator llm.TextGenerator
	timeout   time.Duration
	clock     Clock
	log       *slog.Logger
}

func NewCounselingService(
	sessions repository.CounselingRepository,
	userRepo repository.UserRepository,
	generator llm.TextGenerator,
	timeout time.Duration,
	clock Clock,
	log *slog.Logger,
) CounselingService {
	return &counselingService{
		sessions:  sessions,
		userRepo:  userRepo,
		generator: generator,
		timeout:   timeout,
		clock:     clockOrSystem(clock),
		log:       loggerOrDefault(log),
	}
}

func (s *counselingService) Send(ctx context.Context, userID uuid.UUID, req *domain.CounselingMessageRequest) (*domain.CounselingReply, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrInvalidInput)
	}

	session, err := s.openSession(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	log := logger.Ctx(ctx, s.log).With("user_id", userID, "session_id", session.ID)
	reply, ok := s.complete(ctx, log, llm.CounselingSystemPrompt(session.Type, session.Goals), message, counselingMaxTokens)
	if !ok {
		reply = CounselingFallbackReply
	}

	if err := s.sessions.AppendMessage(ctx, &domain.CounselingMessage{
		SessionID:   session.ID,
		UserMessage: message,
		Response:    reply,
		Fallback:    !ok,
		RecordedAt:  s.clock(),
	}); err != nil {
		return nil, fmt.Errorf("save counseling message: %w", err)
	}

	return &domain.CounselingReply{
		SessionID:   session.ID,
		SessionType: session.Type,
		Reply:       reply,
		Fallback:    !ok,
	}, nil
}

// openSession loads the referenced session or creates a new one. An existing
// session keeps the type and goals it was opened with.
func (s *counselingService) openSession(ctx context.Context, userID uuid.UUID, req *domain.CounselingMessageRequest) (*domain.CounselingSession, error) {
	if req.SessionID != nil {
		return s.sessions.GetByID(ctx, userID, *req.SessionID)
	}

	sessionType := req.SessionType
	if sessionType == "" {
		sessionType = domain.SessionGeneral
	}
	if !sessionType.Valid() {
		return nil, fmt.Errorf("%w: unknown session type %q", domain.ErrInvalidInput, sessionType)
	}
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	var goals []string
	for _, g := range req.Goals {
		if g = strings.TrimSpace(g); g != "" {
			goals = append(goals, g)
		}
	}

	session := &domain.CounselingSession{
		UserID:    userID,
		Type:      sessionType,
		Goals:     goals,
		Status:    domain.SessionStatusActive,
		CreatedAt: s.clock(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create counseling session: %w", err)
	}
	logger.Ctx(ctx, s.log).Info("counseling session opened", "user_id", userID, "session_id", session.ID, "type", sessionType)
	return session, nil
}

func (s *counselingService) List(ctx context.Context, userID uuid.UUID, filter domain.PageFilter) (*domain.CounselingSessionListResponse, error) {
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	sessions, err := s.sessions.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	sessions, page := splitPage(sessions, filter.Limit, func(cs domain.CounselingSession) (uuid.UUID, time.Time) {
		return cs.ID, cs.CreatedAt
	})

	resp := &domain.CounselingSessionListResponse{
		Data:       make([]domain.CounselingSessionResponse, len(sessions)),
		Pagination: page,
	}
	for i := range sessions {
		resp.Data[i] = sessions[i].ToResponse()
	}
	return resp, nil
}

// Summary summarizes a session. Without generation, or when it fails, the
// summary is built from the message count and the themes of the user's messages.
func (s *counselingService) Summary(ctx context.Context, userID, sessionID uuid.UUID) (*domain.CounselingSummaryResponse, error) {
	session, err := s.sessions.GetByID(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	resp := &domain.CounselingSummaryResponse{
		SessionID:   session.ID,
		SessionType: session.Type,
		Goals:       session.Goals,
		Messages:    make([]domain.CounselingMessageResponse, len(session.Messages)),
	}
	if resp.Goals == nil {
		resp.Goals = []string{}
	}
	for i := range session.Messages {
		resp.Messages[i] = session.Messages[i].ToResponse()
	}

	if len(session.Messages) == 0 {
		resp.Summary = "This session has no messages yet."
		return resp, nil
	}

	log := logger.Ctx(ctx, s.log).With("user_id", userID, "session_id", sessionID)
	summary, ok := s.complete(ctx, log, llm.CounselingSummarySystemPrompt, llm.CounselingSummaryPrompt(session.Messages), summaryMaxTokens)
	if !ok {
		summary = fallbackSummary(session)
	}
	resp.Summary, resp.Fallback = summary, !ok
	return resp, nil
}

func (s *counselingService) Delete(ctx context.Context, userID, sessionID uuid.UUID) error {
	n, err := s.sessions.Delete(ctx, userID, sessionID)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *counselingService) Professionals() []domain.Professional {
	out := make([]domain.Professional, len(professionals))
	copy(out, professionals)
	return out
}

func (s *counselingService) complete(ctx context.Context, log *slog.Logger, system, user string, maxTokens int) (string, bool) {
	if s.generator == nil {
		return "", false
	}

	genCtx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.generator.Complete(genCtx, system, user, maxTokens)
	if err != nil || strings.TrimSpace(text) == "" {
		log.Warn("counseling generation failed, using fallback", "error", err)
		return "", false
	}
	return text, true
}

func fallbackSummary(session *domain.CounselingSession) string {
	texts := make([]string, len(session.Messages))
	for i, m := range session.Messages {
		texts[i] = m.UserMessage
	}

	summary := fmt.Sprintf("This %s session has %s.", sessionLabel(session.Type), plural(len(texts), "message", "messages"))
	if themes := sentiment.KeyThemes(strings.Join(texts, " "), summaryThemeLimit); len(themes) > 0 {
		summary += " Recurring topics: " + strings.Join(themes, ", ") + "."
	}
	if len(session.Goals) > 0 {
		summary += " Goals: " + strings.Join(session.Goals, ", ") + "."
	}
	return summary + " Consider revisiting these topics in your next session."
}

func sessionLabel(t domain.SessionType) string {
	if t == domain.SessionCBT {
		return "CBT"
	}
	return string(t)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}
