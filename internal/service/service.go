// Package service orchestrates repositories, the analytics core and the
// external generation clients for a single request.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/blaisecz/mood-journal/internal/repository"
	"github.com/blaisecz/mood-journal/pkg/pagination"
	"github.com/google/uuid"
)

// Clock returns the reference instant for a request.
type Clock func() time.Time

// SystemClock is the wall clock in UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}

func clockOrSystem(c Clock) Clock {
	if c == nil {
		return SystemClock
	}
	return c
}

func loggerOrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}

// requireUser loads the user or returns domain.ErrNotFound.
func requireUser(ctx context.Context, users repository.UserRepository, userID uuid.UUID) (*domain.User, error) {
	return users.GetByID(ctx, userID)
}

func ensureUser(ctx context.Context, users repository.UserRepository, userID uuid.UUID) error {
	exists, err := users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}

// splitPage drops the look-ahead row of a repository listing. next is the
// cursor for the following page, empty on the last one.
func splitPage[T any](rows []T, limit int, position func(T) (uuid.UUID, time.Time)) ([]T, domain.PaginationResponse) {
	limit = pagination.NormalizeLimit(limit)
	if len(rows) <= limit {
		return rows, domain.PaginationResponse{}
	}
	rows = rows[:limit]
	id, at := position(rows[len(rows)-1])
	return rows, domain.PaginationResponse{
		NextCursor: pagination.Next(id, at),
		HasMore:    true,
	}
}
