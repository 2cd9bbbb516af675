package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/blaisecz/mood-journal/internal/logger"
	"github.com/blaisecz/mood-journal/internal/sentiment"
	"github.com/blaisecz/mood-journal/pkg/pagination"
	"github.com/google/uuid"
)

type journalFixture struct {
	users   *MockUserRepository
	journal *MockJournalRepository
	events  *MockEventRepository
	userID  uuid.UUID
	svc     JournalService
}

func newJournalFixture(analyzer sentiment.Analyzer) *journalFixture {
	f := &journalFixture{
		users:   NewMockUserRepository(),
		journal: NewMockJournalRepository(),
	}
	f.events = NewMockEventRepository(f.journal)
	f.userID = f.users.addUser("UTC")
	f.svc = NewJournalService(f.journal, f.events, f.users, analyzer, fixedClock, logger.Discard())
	return f
}

func (f *journalFixture) seed(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := 0; i < n; i++ {
		e := f.journal.add(domain.JournalEntry{
			UserID:     f.userID,
			Content:    "entry",
			Mood:       domain.MoodNeutral,
			RecordedAt: testNow.Add(-time.Duration(n-i) * time.Hour),
		})
		ids[i] = e.ID
	}
	return ids
}

func TestJournalService_Create(t *testing.T) {
	tests := []struct {
		name    string
		req     domain.CreateJournalEntryRequest
		wantErr error
	}{
		{name: "valid entry", req: domain.CreateJournalEntryRequest{Content: "A calm day.", Mood: domain.MoodCalm}},
		{name: "blank content", req: domain.CreateJournalEntryRequest{Content: "   ", Mood: domain.MoodCalm}, wantErr: domain.ErrInvalidInput},
		{name: "unknown mood", req: domain.CreateJournalEntryRequest{Content: "Hi", Mood: "elated"}, wantErr: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newJournalFixture(nil)
			entry, err := f.svc.Create(context.Background(), f.userID, &tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Create() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if entry.ID == uuid.Nil || !entry.RecordedAt.Equal(testNow) {
				t.Errorf("Create() entry = %+v", entry)
			}
			if len(f.journal.entries) != 1 {
				t.Errorf("expected entry to be stored, got %d", len(f.journal.entries))
			}
		})
	}
}

func TestJournalService_Create_UnknownUser(t *testing.T) {
	f := newJournalFixture(nil)
	_, err := f.svc.Create(context.Background(), uuid.New(), &domain.CreateJournalEntryRequest{Content: "x", Mood: domain.MoodSad})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Create() error = %v, want ErrNotFound", err)
	}
}

func TestJournalService_List_Paginates(t *testing.T) {
	f := newJournalFixture(nil)
	ids := f.seed(3)

	resp, err := f.svc.List(context.Background(), f.userID, domain.JournalEntryFilter{Limit: 2})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("List() returned %d entries, want 2", len(resp.Data))
	}
	if resp.Data[0].ID != ids[2] {
		t.Errorf("List() should be newest first, got %v", resp.Data[0].ID)
	}
	if !resp.Pagination.HasMore || resp.Pagination.NextCursor == "" {
		t.Fatalf("List() pagination = %+v, want more", resp.Pagination)
	}

	cursor, err := pagination.DecodeCursor(resp.Pagination.NextCursor)
	if err != nil {
		t.Fatalf("next cursor does not decode: %v", err)
	}
	if cursor.ID != ids[1] {
		t.Errorf("cursor points at %v, want %v", cursor.ID, ids[1])
	}
}

func TestJournalService_List_LastPage(t *testing.T) {
	f := newJournalFixture(nil)
	f.seed(2)

	resp, err := f.svc.List(context.Background(), f.userID, domain.JournalEntryFilter{Limit: 5})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if resp.Pagination.HasMore || resp.Pagination.NextCursor != "" {
		t.Errorf("List() pagination = %+v, want last page", resp.Pagination)
	}
}

func TestJournalService_Update(t *testing.T) {
	f := newJournalFixture(nil)
	ids := f.seed(1)

	entry, err := f.svc.Update(context.Background(), f.userID, ids[0], &domain.UpdateJournalEntryRequest{Content: "rewritten", Mood: domain.MoodHappy})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if entry.Content != "rewritten" || entry.Mood != domain.MoodHappy {
		t.Errorf("Update() entry = %+v", entry)
	}
	if !entry.RecordedAt.Equal(testNow) {
		t.Errorf("Update() should refresh timestamp, got %v", entry.RecordedAt)
	}

	// Another user's entry is invisible.
	other := f.users.addUser("UTC")
	_, err = f.svc.Update(context.Background(), other, ids[0], &domain.UpdateJournalEntryRequest{Content: "x", Mood: domain.MoodSad})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Update() on foreign entry error = %v, want ErrNotFound", err)
	}
}

func TestJournalService_Delete(t *testing.T) {
	f := newJournalFixture(nil)
	ids := f.seed(2)

	if err := f.svc.Delete(context.Background(), f.userID, ids[0]); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := f.svc.Delete(context.Background(), f.userID, ids[0]); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
	if len(f.journal.entries) != 1 {
		t.Errorf("expected 1 entry left, got %d", len(f.journal.entries))
	}
}

func TestJournalService_DeleteMany(t *testing.T) {
	tests := []struct {
		name        string
		ids         func(seeded []uuid.UUID) []uuid.UUID
		wantDeleted int
		wantErr     error
	}{
		{
			name:        "deletes known ids and skips unknown",
			ids:         func(s []uuid.UUID) []uuid.UUID { return []uuid.UUID{s[0], s[2], uuid.New()} },
			wantDeleted: 2,
		},
		{
			name:    "nothing matched",
			ids:     func([]uuid.UUID) []uuid.UUID { return []uuid.UUID{uuid.New()} },
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "empty selection",
			ids:     func([]uuid.UUID) []uuid.UUID { return nil },
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newJournalFixture(nil)
			seeded := f.seed(3)

			res, err := f.svc.DeleteMany(context.Background(), f.userID, tt.ids(seeded))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("DeleteMany() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && res.Deleted != tt.wantDeleted {
				t.Errorf("DeleteMany() deleted = %d, want %d", res.Deleted, tt.wantDeleted)
			}
		})
	}
}

func TestJournalService_DeleteAll(t *testing.T) {
	f := newJournalFixture(nil)
	f.seed(4)

	res, err := f.svc.DeleteAll(context.Background(), f.userID)
	if err != nil {
		t.Fatalf("DeleteAll() error = %v", err)
	}
	if res.Deleted != 4 {
		t.Errorf("DeleteAll() deleted = %d, want 4", res.Deleted)
	}

	res, err = f.svc.DeleteAll(context.Background(), f.userID)
	if err != nil || res.Deleted != 0 {
		t.Errorf("DeleteAll() on empty journal = %+v, %v", res, err)
	}
}

func TestJournalService_Analyze(t *testing.T) {
	tests := []struct {
		name     string
		analyzer sentiment.Analyzer
		wantTone string
	}{
		{name: "positive entry", analyzer: constPolarity(0.4), wantTone: "Positive"},
		{name: "negative entry", analyzer: constPolarity(-0.8), wantTone: "Very Negative"},
		{
			name: "analyzer failure degrades to neutral",
			analyzer: sentiment.AnalyzerFunc(func(context.Context, string) (float64, error) {
				return 0, errors.New("unavailable")
			}),
			wantTone: "Neutral",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newJournalFixture(tt.analyzer)
			e := f.journal.add(domain.JournalEntry{
				UserID:     f.userID,
				Content:    "Running with friends, running again tomorrow.",
				Mood:       domain.MoodHappy,
				RecordedAt: testNow,
			})

			analysis, err := f.svc.Analyze(context.Background(), f.userID, e.ID)
			if err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}
			if analysis.EmotionalTone != tt.wantTone {
				t.Errorf("Analyze() tone = %q, want %q", analysis.EmotionalTone, tt.wantTone)
			}
			if len(analysis.KeyThemes) == 0 || analysis.KeyThemes[0] != "running" {
				t.Errorf("Analyze() themes = %v", analysis.KeyThemes)
			}
			if len(analysis.Suggestions) != 2 {
				t.Errorf("Analyze() suggestions = %v", analysis.Suggestions)
			}
		})
	}
}

func TestJournalService_Analyze_NotFound(t *testing.T) {
	f := newJournalFixture(constPolarity(0))
	if _, err := f.svc.Analyze(context.Background(), f.userID, uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Analyze() error = %v, want ErrNotFound", err)
	}
}
