package repository

import (
	"context"
	"fmt"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventRepository reads and appends the three event streams a user produces.
type EventRepository interface {
	// FetchUserEvents returns every mood, journal and BMI event of a user,
	// each stream ordered oldest first.
	FetchUserEvents(ctx context.Context, userID uuid.UUID) (domain.EventSnapshot, error)
	AppendMood(ctx context.Context, event *domain.MoodEvent) error
	AppendJournal(ctx context.Context, entry *domain.JournalEntry) error
	AppendBMI(ctx context.Context, record *domain.BMIRecord) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) FetchUserEvents(ctx context.Context, userID uuid.UUID) (domain.EventSnapshot, error) {
	var snapshot domain.EventSnapshot

	// One read transaction keeps the three streams consistent with each other.
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(ownedBy(userID)).Order("recorded_at ASC").Find(&snapshot.Moods).Error; err != nil {
			return fmt.Errorf("fetch mood events: %w", err)
		}
		if err := tx.Scopes(ownedBy(userID)).Order("recorded_at ASC").Find(&snapshot.Journal).Error; err != nil {
			return fmt.Errorf("fetch journal entries: %w", err)
		}
		if err := tx.Scopes(ownedBy(userID)).Order("recorded_at ASC").Find(&snapshot.BMI).Error; err != nil {
			return fmt.Errorf("fetch bmi records: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.EventSnapshot{}, err
	}
	return snapshot, nil
}

func (r *eventRepository) AppendMood(ctx context.Context, event *domain.MoodEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) AppendJournal(ctx context.Context, entry *domain.JournalEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *eventRepository) AppendBMI(ctx context.Context, record *domain.BMIRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}
