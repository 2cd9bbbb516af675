package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JournalEntry is a free-text journal note tagged with a mood.
type JournalEntry struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_journal_entries_user_recorded" json:"user_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Mood       Mood      `gorm:"type:varchar(16);not null" json:"mood"`
	RecordedAt time.Time `gorm:"not null;index:idx_journal_entries_user_recorded,sort:desc" json:"timestamp"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}

func (e *JournalEntry) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// CreateJournalEntryRequest is the request body for writing a journal entry.
// @Description Journal entry payload.
type CreateJournalEntryRequest struct {
	// Entry text
	Content string `json:"content" validate:"required,max=10000" example:"Went for a run and felt lighter afterwards."`
	// Mood while writing
	Mood Mood `json:"mood" validate:"required,mood" example:"happy" enums:"happy,calm,neutral,anxious,sad"`
}

// UpdateJournalEntryRequest replaces the content and mood of an entry.
// @Description Journal entry edit payload. Both fields are required.
type UpdateJournalEntryRequest struct {
	Content string `json:"content" validate:"required,max=10000" example:"Went for a run, then called my sister."`
	Mood    Mood   `json:"mood" validate:"required,mood" example:"calm" enums:"happy,calm,neutral,anxious,sad"`
}

// DeleteJournalEntriesRequest selects entries for bulk deletion.
type DeleteJournalEntriesRequest struct {
	EntryIDs []uuid.UUID `json:"entry_ids" validate:"required,min=1,max=100"`
}

// DeleteResult reports how many entries were removed.
type DeleteResult struct {
	Deleted int `json:"deleted" example:"3"`
}

// JournalEntryResponse is the response body for journal endpoints.
type JournalEntryResponse struct {
	ID        uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Content   string    `json:"content"`
	Mood      Mood      `json:"mood" example:"happy"`
	Timestamp time.Time `json:"timestamp" example:"2024-01-16T07:05:00Z"`
}

func (e *JournalEntry) ToResponse() JournalEntryResponse {
	return JournalEntryResponse{
		ID:        e.ID,
		Content:   e.Content,
		Mood:      e.Mood,
		Timestamp: e.RecordedAt,
	}
}

// JournalEntryListResponse is a page of journal entries, newest first.
// @Description Paginated list of journal entries.
type JournalEntryListResponse struct {
	Data       []JournalEntryResponse `json:"data"`
	Pagination PaginationResponse     `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// JournalEntryFilter contains filter parameters for listing entries
type JournalEntryFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}

// JournalEntryAnalysis is the sentiment breakdown of a single entry.
// @Description Tone, themes and suggestions for one journal entry.
type JournalEntryAnalysis struct {
	EntryID       uuid.UUID `json:"entry_id"`
	Polarity      float64   `json:"polarity" example:"0.42"`
	EmotionalTone string    `json:"emotional_tone" example:"Positive"`
	KeyThemes     []string  `json:"key_themes"`
	Suggestions   []string  `json:"suggestions"`
}
