package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Mood is a self-reported emotional state.
// @Description One of happy, calm, neutral, anxious, sad.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodCalm    Mood = "calm"
	MoodNeutral Mood = "neutral"
	MoodAnxious Mood = "anxious"
	MoodSad     Mood = "sad"
)

// NeutralMoodScore is used for averaging whenever a mood is unknown or a bucket is empty.
const NeutralMoodScore = 3

var moodScores = map[Mood]int{
	MoodSad:     1,
	MoodAnxious: 2,
	MoodNeutral: 3,
	MoodCalm:    4,
	MoodHappy:   5,
}

var scoreEmojis = map[int]string{
	5: "😄",
	4: "😊",
	3: "😐",
	2: "😰",
	1: "😢",
}

// Moods lists the scale from the most negative to the most positive value.
func Moods() []Mood {
	return []Mood{MoodSad, MoodAnxious, MoodNeutral, MoodCalm, MoodHappy}
}

// Valid reports whether m is on the five-point scale.
func (m Mood) Valid() bool {
	_, ok := moodScores[m]
	return ok
}

// Score maps m onto the 1-5 scale. Unrecognized values score as neutral.
func (m Mood) Score() int {
	if s, ok := moodScores[m]; ok {
		return s
	}
	return NeutralMoodScore
}

// Emoji returns the face for m's score.
func (m Mood) Emoji() string {
	return ScoreEmoji(m.Score())
}

// ScoreEmoji returns the face for a rounded mood score, neutral when out of range.
func ScoreEmoji(score int) string {
	if e, ok := scoreEmojis[score]; ok {
		return e
	}
	return scoreEmojis[NeutralMoodScore]
}

// MoodEvent is a single mood check-in. Events are append-only.
type MoodEvent struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_mood_events_user_recorded" json:"user_id"`
	Mood       Mood      `gorm:"type:varchar(16);not null" json:"mood"`
	Context    string    `gorm:"type:text" json:"context,omitempty"`
	RecordedAt time.Time `gorm:"not null;index:idx_mood_events_user_recorded,sort:desc" json:"timestamp"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MoodEvent) TableName() string {
	return "mood_events"
}

// BeforeCreate assigns the ID client-side so callers know it before the insert returns.
func (e *MoodEvent) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TrackMoodRequest is the request body for a mood check-in.
// @Description Mood check-in payload.
type TrackMoodRequest struct {
	// Mood on the five-point scale
	Mood Mood `json:"mood" validate:"required,mood" example:"calm" enums:"happy,calm,neutral,anxious,sad"`
	// Optional free-text context ("after a long walk")
	Context string `json:"context,omitempty" validate:"omitempty,max=500" example:"after a long walk"`
}

// MoodEventResponse is the response body for a stored mood event.
type MoodEventResponse struct {
	ID        uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Mood      Mood      `json:"mood" example:"calm"`
	Context   string    `json:"context,omitempty" example:"after a long walk"`
	Timestamp time.Time `json:"timestamp" example:"2024-01-16T07:05:00Z"`
}

func (e *MoodEvent) ToResponse() MoodEventResponse {
	return MoodEventResponse{
		ID:        e.ID,
		Mood:      e.Mood,
		Context:   e.Context,
		Timestamp: e.RecordedAt,
	}
}

// TrackMoodResponse is returned after a check-in together with the refreshed streak.
// @Description Stored mood event and current engagement streak.
type TrackMoodResponse struct {
	Mood MoodEventResponse `json:"mood"`
	// Consecutive days with at least one check-in or journal entry
	Streak int `json:"streak" example:"4"`
}
