package repository

import (
	"context"
	"fmt"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CounselingRepository stores counseling sessions and their messages.
type CounselingRepository interface {
	Create(ctx context.Context, session *domain.CounselingSession) error
	// GetByID loads a session with all of its messages, oldest first.
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.CounselingSession, error)
	// List returns up to limit+1 sessions newest first. Each carries only its
	// latest message and the total message count.
	List(ctx context.Context, userID uuid.UUID, filter domain.PageFilter) ([]domain.CounselingSession, error)
	AppendMessage(ctx context.Context, msg *domain.CounselingMessage) error
	// Delete removes a session and its messages, returning rows removed from
	// the session table.
	Delete(ctx context.Context, userID, id uuid.UUID) (int64, error)
}

type counselingRepository struct {
	db *gorm.DB
}

func NewCounselingRepository(db *gorm.DB) CounselingRepository {
	return &counselingRepository{db: db}
}

func (r *counselingRepository) Create(ctx context.Context, session *domain.CounselingSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *counselingRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.CounselingSession, error) {
	var session domain.CounselingSession
	err := r.db.WithContext(ctx).
		Scopes(ownedBy(userID)).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("recorded_at ASC")
		}).
		Take(&session, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err, domain.ErrNotFound)
	}
	session.MessageCount = len(session.Messages)
	return &session, nil
}

func (r *counselingRepository) List(ctx context.Context, userID uuid.UUID, filter domain.PageFilter) ([]domain.CounselingSession, error) {
	page, err := newestFirst("created_at", filter.Cursor, filter.Limit)
	if err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	var sessions []domain.CounselingSession
	if err := db.Scopes(ownedBy(userID), page).Find(&sessions).Error; err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return sessions, nil
	}

	ids := make([]uuid.UUID, len(sessions))
	for i, s := range sessions {
		ids[i] = s.ID
	}

	var counts []struct {
		SessionID uuid.UUID
		N         int
	}
	if err := db.Model(&domain.CounselingMessage{}).
		Select("session_id, count(*) AS n").
		Where("session_id IN ?", ids).
		Group("session_id").
		Scan(&counts).Error; err != nil {
		return nil, fmt.Errorf("count counseling messages: %w", err)
	}

	var latest []domain.CounselingMessage
	if err := db.Raw(
		`SELECT DISTINCT ON (session_id) * FROM counseling_messages
		 WHERE session_id IN ? ORDER BY session_id, recorded_at DESC, id DESC`, ids,
	).Scan(&latest).Error; err != nil {
		return nil, fmt.Errorf("load latest counseling messages: %w", err)
	}

	byID := make(map[uuid.UUID]*domain.CounselingSession, len(sessions))
	for i := range sessions {
		byID[sessions[i].ID] = &sessions[i]
	}
	for _, c := range counts {
		if s, ok := byID[c.SessionID]; ok {
			s.MessageCount = c.N
		}
	}
	for _, m := range latest {
		if s, ok := byID[m.SessionID]; ok {
			s.Messages = []domain.CounselingMessage{m}
		}
	}
	return sessions, nil
}

func (r *counselingRepository) AppendMessage(ctx context.Context, msg *domain.CounselingMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *counselingRepository) Delete(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := tx.Model(&domain.CounselingSession{}).Select("id").Scopes(ownedBy(userID)).Where("id = ?", id)
		if err := tx.Where("session_id IN (?)", owned).Delete(&domain.CounselingMessage{}).Error; err != nil {
			return fmt.Errorf("delete counseling messages: %w", err)
		}
		result := tx.Scopes(ownedBy(userID)).Where("id = ?", id).Delete(&domain.CounselingSession{})
		deleted = result.RowsAffected
		return result.Error
	})
	return deleted, err
}
