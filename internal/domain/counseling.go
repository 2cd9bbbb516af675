package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionType selects the counseling approach of a session.
type SessionType string

const (
	SessionGeneral     SessionType = "general"
	SessionCBT         SessionType = "cbt"
	SessionMindfulness SessionType = "mindfulness"
	SessionStress      SessionType = "stress"
)

// Valid reports whether t is a known session type.
func (t SessionType) Valid() bool {
	switch t {
	case SessionGeneral, SessionCBT, SessionMindfulness, SessionStress:
		return true
	}
	return false
}

const SessionStatusActive = "active"

// CounselingSession is a typed conversation with the counselor. Messages are
// append-only and removed together with the session.
type CounselingSession struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID   `gorm:"type:uuid;not null;index:idx_counseling_sessions_user_created" json:"user_id"`
	Type      SessionType `gorm:"type:varchar(16);not null" json:"session_type"`
	Goals     []string    `gorm:"type:jsonb;serializer:json" json:"goals"`
	Status    string      `gorm:"type:varchar(16);not null;default:'active'" json:"status"`
	CreatedAt time.Time   `gorm:"not null;index:idx_counseling_sessions_user_created,sort:desc" json:"created_at"`

	Messages []CounselingMessage `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"messages,omitempty"`
	// MessageCount is filled by listings, where Messages holds only the latest one.
	MessageCount int `gorm:"-" json:"-"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CounselingSession) TableName() string {
	return "counseling_sessions"
}

func (s *CounselingSession) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// CounselingMessage is one user message and the counselor's answer.
type CounselingMessage struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SessionID   uuid.UUID `gorm:"type:uuid;not null;index:idx_counseling_messages_session_recorded" json:"session_id"`
	UserMessage string    `gorm:"type:text;not null" json:"user_message"`
	Response    string    `gorm:"type:text;not null" json:"response"`
	Fallback    bool      `gorm:"not null;default:false" json:"fallback"`
	RecordedAt  time.Time `gorm:"not null;index:idx_counseling_messages_session_recorded" json:"timestamp"`
}

func (CounselingMessage) TableName() string {
	return "counseling_messages"
}

func (m *CounselingMessage) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// CounselingMessageRequest sends a message to a session. Without a session
// ID a new session of SessionType is opened.
// @Description Counseling message; omit session_id to start a new session.
type CounselingMessageRequest struct {
	SessionID *uuid.UUID `json:"session_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Only used when a new session is opened
	SessionType SessionType `json:"session_type,omitempty" validate:"omitempty,oneof=general cbt mindfulness stress" example:"cbt" enums:"general,cbt,mindfulness,stress"`
	// Only used when a new session is opened
	Goals   []string `json:"goals,omitempty" validate:"omitempty,max=5,dive,required,max=200"`
	Message string   `json:"message" validate:"required,max=4000" example:"I keep assuming the worst before every meeting."`
}

// CounselingReply is the counselor's answer within a session.
// @Description Counselor reply and the session it belongs to.
type CounselingReply struct {
	SessionID   uuid.UUID   `json:"session_id"`
	SessionType SessionType `json:"session_type" example:"cbt"`
	Reply       string      `json:"reply"`
	// True when the reply is a canned message because generation failed
	Fallback bool `json:"fallback" example:"false"`
}

type CounselingMessageResponse struct {
	UserMessage string    `json:"user_message"`
	Response    string    `json:"response"`
	Timestamp   time.Time `json:"timestamp" example:"2024-01-16T07:05:00Z"`
}

func (m *CounselingMessage) ToResponse() CounselingMessageResponse {
	return CounselingMessageResponse{
		UserMessage: m.UserMessage,
		Response:    m.Response,
		Timestamp:   m.RecordedAt,
	}
}

// CounselingSessionResponse is a session in a listing.
// @Description Counseling session with its latest exchange.
type CounselingSessionResponse struct {
	ID           uuid.UUID                  `json:"id"`
	SessionType  SessionType                `json:"session_type" example:"mindfulness"`
	Goals        []string                   `json:"goals"`
	Status       string                     `json:"status" example:"active"`
	CreatedAt    time.Time                  `json:"created_at" example:"2024-01-16T07:05:00Z"`
	MessageCount int                        `json:"message_count" example:"6"`
	LastMessage  *CounselingMessageResponse `json:"last_message,omitempty"`
}

func (s *CounselingSession) ToResponse() CounselingSessionResponse {
	resp := CounselingSessionResponse{
		ID:           s.ID,
		SessionType:  s.Type,
		Goals:        s.Goals,
		Status:       s.Status,
		CreatedAt:    s.CreatedAt,
		MessageCount: s.MessageCount,
	}
	if resp.Goals == nil {
		resp.Goals = []string{}
	}
	if n := len(s.Messages); n > 0 {
		last := s.Messages[n-1].ToResponse()
		resp.LastMessage = &last
	}
	return resp
}

// CounselingSessionListResponse is a page of sessions, newest first.
type CounselingSessionListResponse struct {
	Data       []CounselingSessionResponse `json:"data"`
	Pagination PaginationResponse          `json:"pagination"`
}

// CounselingSummaryResponse is a generated summary of one session.
// @Description Session summary with the full message history.
type CounselingSummaryResponse struct {
	SessionID   uuid.UUID                   `json:"session_id"`
	SessionType SessionType                 `json:"session_type" example:"cbt"`
	Goals       []string                    `json:"goals"`
	Summary     string                      `json:"summary"`
	Fallback    bool                        `json:"fallback" example:"false"`
	Messages    []CounselingMessageResponse `json:"messages"`
}

// Professional is an entry of the mental health professionals directory.
type Professional struct {
	ID           string `json:"id" example:"1"`
	Name         string `json:"name" example:"Dr. Sarah Johnson"`
	Specialty    string `json:"specialty" example:"Anxiety & Depression"`
	Credentials  string `json:"credentials" example:"PhD, LCSW"`
	Availability string `json:"availability" example:"Mon-Fri, 9am-5pm"`
	Contact      string `json:"contact" example:"sarah.johnson@example.com"`
}
