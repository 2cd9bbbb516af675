package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/blaisecz/mood-journal/internal/analytics"
	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/blaisecz/mood-journal/internal/langfuse"
	"github.com/blaisecz/mood-journal/internal/llm"
	"github.com/blaisecz/mood-journal/internal/logger"
	"github.com/blaisecz/mood-journal/internal/repository"
	"github.com/blaisecz/mood-journal/internal/sentiment"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultReportEntries is how many recent entries a report covers when none are selected.
	DefaultReportEntries = 5
	reportMaxTokens      = 1000
	reportTraceName      = "mood-report"
	reportScoreName      = "report_rating"
)

// PromptLoader resolves the report system prompt.
type PromptLoader interface {
	Load(ctx context.Context, name, label string) (string, langfuse.PromptSource, error)
}

// ReportOptions configures report generation.
type ReportOptions struct {
	PromptName  string
	PromptLabel string
	// Timeout bounds the text generation call. Zero means no extra bound.
	Timeout time.Duration
}

// ReportService builds wellness reports over journal entries.
type ReportService interface {
	Generate(ctx context.Context, userID uuid.UUID, req *domain.GenerateReportRequest) (*domain.ReportResponse, error)
	// Feedback records a user rating for a previously generated report.
	Feedback(ctx context.Context, userID uuid.UUID, req *domain.FeedbackRequest) error
}

type reportService struct {
	journal   repository.JournalRepository
	events    repository.EventRepository
	userRepo  repository.UserRepository
	analyzer  sentiment.Analyzer
	generator llm.TextGenerator
	prompts   PromptLoader
	tracer    langfuse.Client
	opts      ReportOptions
	clock     Clock
	log       *slog.Logger
}

// NewReportService creates a ReportService. generator, prompts and tracer may be
// nil; the report then uses the templated analysis and the built-in prompt.
func NewReportService(
	journal repository.JournalRepository,
	events repository.EventRepository,
	userRepo repository.UserRepository,
	analyzer sentiment.Analyzer,
	generator llm.TextGenerator,
	prompts PromptLoader,
	tracer langfuse.Client,
	opts ReportOptions,
	clock Clock,
	log *slog.Logger,
) ReportService {
	return &reportService{
		journal:   journal,
		events:    events,
		userRepo:  userRepo,
		analyzer:  analyzer,
		generator: generator,
		prompts:   prompts,
		tracer:    tracer,
		opts:      opts,
		clock:     clockOrSystem(clock),
		log:       loggerOrDefault(log),
	}
}

func (s *reportService) Generate(ctx context.Context, userID uuid.UUID, req *domain.GenerateReportRequest) (*domain.ReportResponse, error) {
	ctx, span := otel.Tracer("mood-journal-api/reports").Start(ctx, "ReportService.Generate",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.Int("report.selected", len(req.EntryIDs)),
		),
	)
	defer span.End()

	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	entries, err := s.selectEntries(ctx, userID, req.EntryIDs)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.events.FetchUserEvents(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}
	now := s.clock()
	snapshot = analytics.UpTo(snapshot, now)

	scores := analytics.ComputeWellness(ctx, snapshot, s.analyzer)
	trends := analytics.Trends(ctx, snapshot, scores, domain.PeriodWeek, now, s.analyzer)
	streak := analytics.Streak(analytics.EngagementTimes(snapshot), now)

	systemPrompt, promptSource := s.systemPrompt(ctx)
	userPrompt := llm.ReportUserPrompt(entries, scores)
	if inputJSON, err := json.Marshal(map[string]any{"system": systemPrompt, "user": userPrompt}); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	analysis := s.generateAnalysis(ctx, userID, systemPrompt, userPrompt)

	report := analytics.FormatReport(analytics.ReportInput{
		Entries:  entries,
		Scores:   scores,
		Trends:   trends,
		Streak:   streak,
		Analysis: analysis,
	})
	span.SetAttributes(
		attribute.String("langfuse.observation.output", report.Text),
		attribute.String("report.analysis_source", string(report.AnalysisSource)),
	)

	if s.tracer != nil && s.tracer.IsEnabled() {
		ids := make([]string, len(entries))
		for i, e := range entries {
			ids[i] = e.ID.String()
		}
		traceID, err := s.tracer.CreateTrace(ctx, langfuse.TraceInput{
			UserID: userID.String(),
			Name:   reportTraceName,
			Input: map[string]any{
				"entry_ids": ids,
				"scores":    scores,
			},
			Output: report.Text,
			Tags:   []string{"report", string(report.AnalysisSource)},
			Metadata: map[string]any{
				"prompt_source": string(promptSource),
			},
		})
		if err != nil {
			logger.Ctx(ctx, s.log).Warn("report trace failed", "user_id", userID, "error", err)
		} else {
			report.TraceID = traceID
		}
	}

	return &report, nil
}

func (s *reportService) selectEntries(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.JournalEntry, error) {
	var (
		entries []domain.JournalEntry
		err     error
	)
	if len(ids) > 0 {
		entries, err = s.journal.ListByIDs(ctx, userID, ids)
	} else {
		entries, err = s.journal.ListRecent(ctx, userID, DefaultReportEntries)
	}
	if err != nil {
		return nil, fmt.Errorf("load journal entries: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no journal entries to report on", domain.ErrNotFound)
	}
	return entries, nil
}

func (s *reportService) systemPrompt(ctx context.Context) (string, langfuse.PromptSource) {
	if s.prompts == nil {
		return llm.DefaultReportSystemPrompt, langfuse.PromptFromDefault
	}
	prompt, source, err := s.prompts.Load(ctx, s.opts.PromptName, s.opts.PromptLabel)
	if err != nil || prompt == "" {
		logger.Ctx(ctx, s.log).Warn("report prompt unavailable, using built-in", "error", err)
		return llm.DefaultReportSystemPrompt, langfuse.PromptFromDefault
	}
	return prompt, source
}

// generateAnalysis returns "" when generation is unavailable or fails so the
// formatter falls back to the templated analysis.
func (s *reportService) generateAnalysis(ctx context.Context, userID uuid.UUID, systemPrompt, userPrompt string) string {
	if s.generator == nil {
		return ""
	}

	genCtx, cancel := withTimeout(ctx, s.opts.Timeout)
	defer cancel()

	text, err := s.generator.Complete(genCtx, systemPrompt, userPrompt, reportMaxTokens)
	if err != nil {
		logger.Ctx(ctx, s.log).Warn("report generation failed, using fallback", "user_id", userID, "error", err)
		return ""
	}
	return text
}

func (s *reportService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.FeedbackRequest) error {
	if req.TraceID == "" {
		return fmt.Errorf("%w: trace_id is required", domain.ErrInvalidInput)
	}
	if req.Score < 1 || req.Score > 5 {
		return fmt.Errorf("%w: score must be between 1 and 5", domain.ErrInvalidInput)
	}
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return err
	}
	if s.tracer == nil || !s.tracer.IsEnabled() {
		logger.Ctx(ctx, s.log).Info("feedback accepted without tracing", "user_id", userID, "score", req.Score)
		return nil
	}

	// Feedback is best-effort; a failed score must not fail the request.
	if err := s.tracer.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    reportScoreName,
		Value:   float64(req.Score),
		Comment: req.Comment,
	}); err != nil {
		logger.Ctx(ctx, s.log).Warn("feedback score failed", "user_id", userID, "trace_id", req.TraceID, "error", err)
	}
	return nil
}
