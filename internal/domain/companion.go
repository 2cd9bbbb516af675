package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupportKind is a quick-support topic.
type SupportKind string

const (
	SupportBreathing    SupportKind = "breathing"
	SupportAffirmations SupportKind = "affirmations"
	SupportSleep        SupportKind = "sleep"
	SupportMindfulness  SupportKind = "mindfulness"
)

// CompanionMessageRequest is a message sent to the AI companion.
// @Description Message for the supportive companion.
type CompanionMessageRequest struct {
	Message string `json:"message" validate:"required,max=2000" example:"I can't stop worrying about tomorrow."`
}

// CompanionReply is the companion's answer.
// @Description Companion reply with the mood detected in the message.
type CompanionReply struct {
	// ID of the stored exchange
	MessageID    uuid.UUID `json:"message_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Reply        string    `json:"reply"`
	DetectedMood Mood      `json:"detected_mood" example:"sad"`
	// True when the reply is a canned message because generation failed
	Fallback bool `json:"fallback" example:"false"`
}

// QuickSupportResponse is a canned support exercise.
type QuickSupportResponse struct {
	Kind    SupportKind `json:"kind" example:"breathing"`
	Title   string      `json:"title" example:"Box breathing"`
	Message string      `json:"message"`
}

// ChatMessage is one stored exchange with the companion.
type ChatMessage struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_chat_messages_user_recorded" json:"user_id"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	Response   string    `gorm:"type:text;not null" json:"response"`
	Mood       Mood      `gorm:"type:varchar(16);not null" json:"mood"`
	Fallback   bool      `gorm:"not null;default:false" json:"fallback"`
	RecordedAt time.Time `gorm:"not null;index:idx_chat_messages_user_recorded,sort:desc" json:"timestamp"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

func (m *ChatMessage) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// ChatMessageResponse is one exchange in the chat history.
type ChatMessageResponse struct {
	ID        uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Message   string    `json:"message" example:"I can't stop worrying about tomorrow."`
	Response  string    `json:"response"`
	Mood      Mood      `json:"mood" example:"sad"`
	Timestamp time.Time `json:"timestamp" example:"2024-01-16T07:05:00Z"`
}

func (m *ChatMessage) ToResponse() ChatMessageResponse {
	return ChatMessageResponse{
		ID:        m.ID,
		Message:   m.Message,
		Response:  m.Response,
		Mood:      m.Mood,
		Timestamp: m.RecordedAt,
	}
}

// ChatHistoryResponse is a page of companion exchanges, newest first.
// @Description Paginated companion chat history.
type ChatHistoryResponse struct {
	Data       []ChatMessageResponse `json:"data"`
	Pagination PaginationResponse    `json:"pagination"`
}

// PageFilter selects one page of a newest-first listing.
type PageFilter struct {
	Limit  int
	Cursor string
}
