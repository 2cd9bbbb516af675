package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/blaisecz/mood-journal/internal/logger"
	"github.com/google/uuid"
)

func TestDashboardService_Get(t *testing.T) {
	users := NewMockUserRepository()
	userID := users.addUser("UTC")
	events := NewMockEventRepository(nil)
	events.AppendMood(context.Background(), &domain.MoodEvent{UserID: userID, Mood: domain.MoodCalm, RecordedAt: testNow.Add(-24 * time.Hour)})
	events.AppendMood(context.Background(), &domain.MoodEvent{UserID: userID, Mood: domain.MoodHappy, RecordedAt: testNow.Add(-time.Hour)})
	events.AppendJournal(context.Background(), &domain.JournalEntry{UserID: userID, Content: "good day", Mood: domain.MoodHappy, RecordedAt: testNow.Add(-2 * time.Hour)})

	chats := &MockChatRepository{}
	chats.Append(context.Background(), &domain.ChatMessage{UserID: userID, Message: "hi", RecordedAt: testNow})
	chats.Append(context.Background(), &domain.ChatMessage{UserID: uuid.New(), Message: "someone else", RecordedAt: testNow})

	svc := NewDashboardService(events, chats, users, fixedClock, logger.Discard())

	got, err := svc.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.TotalConversations != 1 {
		t.Errorf("TotalConversations = %d, want 1", got.TotalConversations)
	}
	if got.Streak != 2 {
		t.Errorf("Streak = %d, want 2", got.Streak)
	}
	if got.AverageMood != "😄" {
		t.Errorf("AverageMood = %q, want 😄", got.AverageMood)
	}
	if len(got.JournalEntries) != 1 || got.JournalEntries[0].Content != "good day" {
		t.Errorf("JournalEntries = %+v", got.JournalEntries)
	}
	if len(got.CommonEmotions) != 2 {
		t.Errorf("CommonEmotions = %+v, want 2 moods", got.CommonEmotions)
	}
}

func TestDashboardService_Get_CountFailure(t *testing.T) {
	users := NewMockUserRepository()
	userID := users.addUser("UTC")
	svc := NewDashboardService(NewMockEventRepository(nil), &MockChatRepository{err: errors.New("timeout")}, users, fixedClock, logger.Discard())

	got, err := svc.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.TotalConversations != 0 {
		t.Errorf("TotalConversations = %d, want 0", got.TotalConversations)
	}
}

func TestDashboardService_Get_Errors(t *testing.T) {
	users := NewMockUserRepository()
	userID := users.addUser("UTC")
	events := NewMockEventRepository(nil)
	events.err = errors.New("connection refused")
	svc := NewDashboardService(events, &MockChatRepository{}, users, fixedClock, logger.Discard())

	if _, err := svc.Get(context.Background(), uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown user error = %v, want ErrNotFound", err)
	}
	if _, err := svc.Get(context.Background(), userID); err == nil || errors.Is(err, domain.ErrNotFound) {
		t.Errorf("storage failure error = %v, want wrapped storage error", err)
	}
}
