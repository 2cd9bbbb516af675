// Package repository persists users and their mood, journal and BMI streams
// with gorm. Lookups return domain.ErrNotFound for missing rows.
package repository

import (
	"errors"
	"fmt"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/blaisecz/mood-journal/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ownedBy scopes a query to rows belonging to userID.
func ownedBy(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

func notFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

// newestFirst orders by column descending with id as the tie-breaker, resumes
// after an encoded cursor and fetches one row past limit so the caller can
// tell whether another page exists. column is a trusted constant.
func newestFirst(column, encoded string, limit int) (func(*gorm.DB) *gorm.DB, error) {
	cursor, err := pagination.DecodeCursor(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return func(db *gorm.DB) *gorm.DB {
		db = db.Order(column + " DESC").Order("id DESC")
		if cursor != nil {
			db = db.Where(
				"("+column+" < ?) OR ("+column+" = ? AND id < ?)",
				cursor.RecordedAt, cursor.RecordedAt, cursor.ID,
			)
		}
		return db.Limit(pagination.NormalizeLimit(limit) + 1)
	}, nil
}
