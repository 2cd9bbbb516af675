package main

import (
	"fmt"
	"log/slog"

	"github.com/blaisecz/mood-journal/internal/config"
	"github.com/blaisecz/mood-journal/internal/langfuse"
	"github.com/blaisecz/mood-journal/internal/llm"
	"github.com/blaisecz/mood-journal/internal/repository"
	"github.com/blaisecz/mood-journal/internal/sentiment"
	"github.com/blaisecz/mood-journal/internal/service"
	"gorm.io/gorm"
)

// services holds everything the HTTP server and the CLI commands share.
type services struct {
	users      service.UserService
	moods      service.MoodService
	bmi        service.BMIService
	journal    service.JournalService
	insights   service.InsightsService
	reports    service.ReportService
	companion  service.CompanionService
	counseling service.CounselingService
	dashboard  service.DashboardService

	// tracer must be closed on exit to flush queued events
	tracer langfuse.Client
}

func openDatabase(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	db, err := config.NewDatabase(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := config.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Info("database migration completed")
	return db, nil
}

func newTextGenerator(cfg *config.Config, log *slog.Logger) llm.TextGenerator {
	client := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	if client == nil {
		log.Warn("OPENAI_API_KEY not set, generated text falls back to templates")
		return nil
	}
	log.Info("text generation enabled", "model", client.Model())
	return client
}

func buildServices(cfg *config.Config, db *gorm.DB, log *slog.Logger) *services {
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	journalRepo := repository.NewJournalRepository(db)
	chatRepo := repository.NewChatRepository(db)
	counselingRepo := repository.NewCounselingRepository(db)

	analyzer := sentiment.NewLexicon()
	generator := newTextGenerator(cfg, log)

	tracer := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
		Logger:      log,
	})
	prompts := &langfuse.PromptLoader{
		BaseURL:   cfg.LangfuseBaseURL,
		PublicKey: cfg.LangfusePublicKey,
		SecretKey: cfg.LangfuseSecretKey,
		CachePath: cfg.ReportPromptPath,
		Default:   llm.DefaultReportSystemPrompt,
		Logger:    log,
	}

	return &services{
		users:    service.NewUserService(userRepo),
		moods:    service.NewMoodService(eventRepo, userRepo, service.SystemClock, log),
		bmi:      service.NewBMIService(eventRepo, userRepo, generator, cfg.LLMTimeout, service.SystemClock, log),
		journal:  service.NewJournalService(journalRepo, eventRepo, userRepo, analyzer, service.SystemClock, log),
		insights: service.NewInsightsService(eventRepo, userRepo, analyzer, service.SystemClock, log),
		reports: service.NewReportService(
			journalRepo, eventRepo, userRepo, analyzer, generator, prompts, tracer,
			service.ReportOptions{
				PromptName:  cfg.ReportPromptName,
				PromptLabel: cfg.ReportPromptLabel,
				Timeout:     cfg.LLMTimeout,
			},
			service.SystemClock, log,
		),
		companion:  service.NewCompanionService(chatRepo, userRepo, analyzer, generator, cfg.LLMTimeout, service.SystemClock, log),
		counseling: service.NewCounselingService(counselingRepo, userRepo, generator, cfg.LLMTimeout, service.SystemClock, log),
		dashboard:  service.NewDashboardService(eventRepo, chatRepo, userRepo, service.SystemClock, log),
		tracer:     tracer,
	}
}
