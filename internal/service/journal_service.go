package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/blaisecz/mood-journal/internal/logger"
	"github.com/blaisecz/mood-journal/internal/repository"
	"github.com/blaisecz/mood-journal/internal/sentiment"
	"github.com/google/uuid"
)

// KeyThemeLimit caps the themes returned by an entry analysis.
const KeyThemeLimit = 5

type JournalService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateJournalEntryRequest) (*domain.JournalEntry, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.JournalEntryFilter) (*domain.JournalEntryListResponse, error)
	// Update replaces content and mood and moves the entry to the current instant.
	Update(ctx context.Context, userID, entryID uuid.UUID, req *domain.UpdateJournalEntryRequest) (*domain.JournalEntry, error)
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
	DeleteMany(ctx context.Context, userID uuid.UUID, entryIDs []uuid.UUID) (*domain.DeleteResult, error)
	DeleteAll(ctx context.Context, userID uuid.UUID) (*domain.DeleteResult, error)
	Analyze(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntryAnalysis, error)
}

type journalService struct {
	repo     repository.JournalRepository
	events   repository.EventRepository
	userRepo repository.UserRepository
	analyzer sentiment.Analyzer
	clock    Clock
	log      *slog.Logger
}

func NewJournalService(
	repo repository.JournalRepository,
	events repository.EventRepository,
	userRepo repository.UserRepository,
	analyzer sentiment.Analyzer,
	clock Clock,
	log *slog.Logger,
) JournalService {
	return &journalService{
		repo:     repo,
		events:   events,
		userRepo: userRepo,
		analyzer: analyzer,
		clock:    clockOrSystem(clock),
		log:      loggerOrDefault(log),
	}
}

func (s *journalService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	if err := validateEntry(req.Content, req.Mood); err != nil {
		return nil, err
	}
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	entry := &domain.JournalEntry{
		UserID:     userID,
		Content:    req.Content,
		Mood:       req.Mood,
		RecordedAt: s.clock(),
	}
	if err := s.events.AppendJournal(ctx, entry); err != nil {
		return nil, fmt.Errorf("append journal entry: %w", err)
	}
	return entry, nil
}

func (s *journalService) List(ctx context.Context, userID uuid.UUID, filter domain.JournalEntryFilter) (*domain.JournalEntryListResponse, error) {
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	entries, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	entries, page := splitPage(entries, filter.Limit, func(e domain.JournalEntry) (uuid.UUID, time.Time) {
		return e.ID, e.RecordedAt
	})

	response := &domain.JournalEntryListResponse{
		Data:       make([]domain.JournalEntryResponse, len(entries)),
		Pagination: page,
	}
	for i := range entries {
		response.Data[i] = entries[i].ToResponse()
	}
	return response, nil
}

func (s *journalService) Update(ctx context.Context, userID, entryID uuid.UUID, req *domain.UpdateJournalEntryRequest) (*domain.JournalEntry, error) {
	if err := validateEntry(req.Content, req.Mood); err != nil {
		return nil, err
	}

	entry, err := s.repo.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	entry.Content = req.Content
	entry.Mood = req.Mood
	entry.RecordedAt = s.clock()

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *journalService) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	n, err := s.repo.Delete(ctx, userID, []uuid.UUID{entryID})
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteMany removes the listed entries. It fails with domain.ErrNotFound when
// none of them belonged to the user.
func (s *journalService) DeleteMany(ctx context.Context, userID uuid.UUID, entryIDs []uuid.UUID) (*domain.DeleteResult, error) {
	if len(entryIDs) == 0 {
		return nil, fmt.Errorf("%w: no entry ids given", domain.ErrInvalidInput)
	}
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	n, err := s.repo.Delete(ctx, userID, entryIDs)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.ErrNotFound
	}
	return &domain.DeleteResult{Deleted: int(n)}, nil
}

func (s *journalService) DeleteAll(ctx context.Context, userID uuid.UUID) (*domain.DeleteResult, error) {
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	n, err := s.repo.DeleteAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	logger.Ctx(ctx, s.log).Info("journal cleared", "user_id", userID, "deleted", n)
	return &domain.DeleteResult{Deleted: int(n)}, nil
}

// Analyze scores a single entry. A failing analyzer degrades to a neutral tone.
func (s *journalService) Analyze(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntryAnalysis, error) {
	entry, err := s.repo.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	var polarity float64
	if s.analyzer != nil {
		p, err := s.analyzer.Polarity(ctx, entry.Content)
		if err != nil {
			logger.Ctx(ctx, s.log).Warn("sentiment analysis failed", "user_id", userID, "entry_id", entryID, "error", err)
		} else if !math.IsNaN(p) {
			polarity = max(-1, min(1, p))
		}
	}

	return &domain.JournalEntryAnalysis{
		EntryID:       entry.ID,
		Polarity:      polarity,
		EmotionalTone: sentiment.Tone(polarity),
		KeyThemes:     sentiment.KeyThemes(entry.Content, KeyThemeLimit),
		Suggestions:   sentiment.Suggestions(polarity),
	}, nil
}

func validateEntry(content string, mood domain.Mood) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: content is required", domain.ErrInvalidInput)
	}
	if !mood.Valid() {
		return fmt.Errorf("%w: unknown mood %q", domain.ErrInvalidInput, mood)
	}
	return nil
}
