package repository

import (
	"context"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JournalRepository manages stored journal entries. Every lookup is scoped to
// the owning user so one user can never read or remove another's entries.
type JournalRepository interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.JournalEntry, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.JournalEntryFilter) ([]domain.JournalEntry, error)
	ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.JournalEntry, error)
	ListRecent(ctx context.Context, userID uuid.UUID, n int) ([]domain.JournalEntry, error)
	Update(ctx context.Context, entry *domain.JournalEntry) error
	Delete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)
	DeleteAll(ctx context.Context, userID uuid.UUID) (int64, error)
}

type journalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.JournalEntry, error) {
	var entry domain.JournalEntry
	if err := r.db.WithContext(ctx).Scopes(ownedBy(userID)).Take(&entry, "id = ?", id).Error; err != nil {
		return nil, notFound(err, domain.ErrNotFound)
	}
	return &entry, nil
}

// List returns up to limit+1 entries newest first; the extra row tells the
// caller whether another page exists.
func (r *journalRepository) List(ctx context.Context, userID uuid.UUID, filter domain.JournalEntryFilter) ([]domain.JournalEntry, error) {
	page, err := newestFirst("recorded_at", filter.Cursor, filter.Limit)
	if err != nil {
		return nil, err
	}
	query := r.db.WithContext(ctx).Scopes(ownedBy(userID), page)

	if filter.From != nil {
		query = query.Where("recorded_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("recorded_at <= ?", filter.To)
	}

	var entries []domain.JournalEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListByIDs returns the user's entries among ids, oldest first. Unknown ids
// are silently absent from the result.
func (r *journalRepository) ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.JournalEntry, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var entries []domain.JournalEntry
	err := r.db.WithContext(ctx).
		Scopes(ownedBy(userID)).
		Where("id IN ?", ids).
		Order("recorded_at ASC").
		Find(&entries).Error
	return entries, err
}

// ListRecent returns the n newest entries, oldest first.
func (r *journalRepository) ListRecent(ctx context.Context, userID uuid.UUID, n int) ([]domain.JournalEntry, error) {
	var entries []domain.JournalEntry
	err := r.db.WithContext(ctx).
		Scopes(ownedBy(userID)).
		Order("recorded_at DESC").
		Limit(n).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

func (r *journalRepository) Update(ctx context.Context, entry *domain.JournalEntry) error {
	result := r.db.WithContext(ctx).
		Model(&domain.JournalEntry{}).
		Scopes(ownedBy(entry.UserID)).
		Where("id = ?", entry.ID).
		Updates(map[string]any{
			"content":     entry.Content,
			"mood":        entry.Mood,
			"recorded_at": entry.RecordedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *journalRepository) Delete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Scopes(ownedBy(userID)).
		Where("id IN ?", ids).
		Delete(&domain.JournalEntry{})
	return result.RowsAffected, result.Error
}

func (r *journalRepository) DeleteAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Scopes(ownedBy(userID)).
		Delete(&domain.JournalEntry{})
	return result.RowsAffected, result.Error
}
