package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BMIRecord is an append-only body-mass-index measurement.
type BMIRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_bmi_records_user_recorded" json:"user_id"`
	BMI        float64   `gorm:"not null" json:"bmi"`
	HeightCm   float64   `gorm:"not null" json:"height_cm"`
	WeightKg   float64   `gorm:"not null" json:"weight_kg"`
	RecordedAt time.Time `gorm:"not null;index:idx_bmi_records_user_recorded,sort:desc" json:"timestamp"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (BMIRecord) TableName() string {
	return "bmi_records"
}

func (e *BMIRecord) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TrackBMIRequest is the request body for recording height and weight.
// @Description Height and weight used to compute BMI.
type TrackBMIRequest struct {
	// Height in centimetres
	HeightCm float64 `json:"height_cm" validate:"required,gt=0,lte=300" example:"178"`
	// Weight in kilograms
	WeightKg float64 `json:"weight_kg" validate:"required,gt=0,lte=700" example:"72.5"`
}

// BMIResponse is returned after a measurement is stored.
// @Description Computed BMI with category and a short analysis.
type BMIResponse struct {
	ID        uuid.UUID `json:"id"`
	BMI       float64   `json:"bmi" example:"22.88"`
	Category  string    `json:"category" example:"Normal weight"`
	Analysis  string    `json:"analysis"`
	Timestamp time.Time `json:"timestamp"`
}
