package repository

import (
	"context"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatRepository stores companion exchanges.
type ChatRepository interface {
	Append(ctx context.Context, msg *domain.ChatMessage) error
	// List returns up to limit+1 exchanges newest first.
	List(ctx context.Context, userID uuid.UUID, filter domain.PageFilter) ([]domain.ChatMessage, error)
	Count(ctx context.Context, userID uuid.UUID) (int64, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) Append(ctx context.Context, msg *domain.ChatMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *chatRepository) List(ctx context.Context, userID uuid.UUID, filter domain.PageFilter) ([]domain.ChatMessage, error) {
	page, err := newestFirst("recorded_at", filter.Cursor, filter.Limit)
	if err != nil {
		return nil, err
	}
	var messages []domain.ChatMessage
	if err := r.db.WithContext(ctx).Scopes(ownedBy(userID), page).Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *chatRepository) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.ChatMessage{}).Scopes(ownedBy(userID)).Count(&n).Error
	return n, err
}
