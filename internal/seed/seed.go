// Package seed fills the database with sample users and forty days of mood,
// journal and BMI history.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/blaisecz/mood-journal/internal/service"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const seededDays = 40

// Users are the sample accounts created by Run.
var Users = []domain.User{
	{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Name: "Ada", Timezone: "Europe/Amsterdam"},
	{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Name: "Ben", Timezone: "America/New_York"},
	{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Name: "Chiyo", Timezone: "Asia/Tokyo"},
	{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Name: "Dana", Timezone: "Australia/Sydney"},
}

var journalLines = map[domain.Mood][]string{
	domain.MoodHappy: {
		"Had a great day with friends, laughed a lot.",
		"Finished the project and celebrated with a nice dinner.",
	},
	domain.MoodCalm: {
		"Quiet morning walk, felt peaceful and rested.",
		"Read for an hour and went to bed early.",
	},
	domain.MoodNeutral: {
		"Ordinary day at work. Nothing special happened.",
		"Did chores and caught up on email.",
	},
	domain.MoodAnxious: {
		"Worried about the deadline, could not focus.",
		"Too much on my plate, feeling stressed about tomorrow.",
	},
	domain.MoodSad: {
		"Felt lonely tonight and missed my family.",
		"Tired and a bit down after a rough meeting.",
	},
}

// Dataset is the generated history for the sample users.
type Dataset struct {
	Moods   []domain.MoodEvent
	Journal []domain.JournalEntry
	BMI     []domain.BMIRecord
}

// Build generates history ending at now. IDs derive from the user and day
// so repeated runs address the same rows.
func Build(users []domain.User, now time.Time, rng *rand.Rand) Dataset {
	var ds Dataset
	moods := domain.Moods()

	for _, user := range users {
		loc, err := time.LoadLocation(user.Timezone)
		if err != nil {
			loc = time.UTC
		}
		height := 160 + float64(rng.Intn(30))
		weight := 55 + float64(rng.Intn(35))

		for i := 0; i < seededDays; i++ {
			day := now.In(loc).AddDate(0, 0, -i)

			// most days get a morning and an evening check-in
			for slot, hour := range []int{8, 20} {
				if rng.Float32() < 0.2 {
					continue
				}
				at := time.Date(day.Year(), day.Month(), day.Day(), hour+rng.Intn(3), rng.Intn(60), 0, 0, loc).UTC()
				if at.After(now) {
					continue
				}
				ds.Moods = append(ds.Moods, domain.MoodEvent{
					ID:         seedID(user.ID, "mood", i, slot),
					UserID:     user.ID,
					Mood:       moods[rng.Intn(len(moods))],
					RecordedAt: at,
				})
			}

			if rng.Float32() < 0.6 {
				mood := moods[rng.Intn(len(moods))]
				lines := journalLines[mood]
				at := time.Date(day.Year(), day.Month(), day.Day(), 21, rng.Intn(60), 0, 0, loc).UTC()
				if !at.After(now) {
					ds.Journal = append(ds.Journal, domain.JournalEntry{
						ID:         seedID(user.ID, "journal", i, 0),
						UserID:     user.ID,
						Content:    lines[rng.Intn(len(lines))],
						Mood:       mood,
						RecordedAt: at,
					})
				}
			}

			if i%7 == 0 {
				w := weight + rng.Float64()*2 - 1
				bmi, _ := service.ComputeBMI(height, w)
				ds.BMI = append(ds.BMI, domain.BMIRecord{
					ID:         seedID(user.ID, "bmi", i, 0),
					UserID:     user.ID,
					BMI:        bmi,
					HeightCm:   height,
					WeightKg:   w,
					RecordedAt: day.Add(-time.Hour).UTC(),
				})
			}
		}
	}
	return ds
}

// Run seeds the database. Safe to call multiple times.
func Run(ctx context.Context, db *gorm.DB, now time.Time, log *slog.Logger) error {
	db = db.WithContext(ctx)

	for _, user := range Users {
		user := user
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	ds := Build(Users, now, rand.New(rand.NewSource(now.UnixNano())))

	for i := range ds.Moods {
		if err := db.Where("id = ?", ds.Moods[i].ID).FirstOrCreate(&ds.Moods[i]).Error; err != nil {
			return fmt.Errorf("failed to create mood event: %w", err)
		}
	}
	for i := range ds.Journal {
		if err := db.Where("id = ?", ds.Journal[i].ID).FirstOrCreate(&ds.Journal[i]).Error; err != nil {
			return fmt.Errorf("failed to create journal entry: %w", err)
		}
	}
	for i := range ds.BMI {
		if err := db.Where("id = ?", ds.BMI[i].ID).FirstOrCreate(&ds.BMI[i]).Error; err != nil {
			return fmt.Errorf("failed to create BMI record: %w", err)
		}
	}

	log.Info("seed completed",
		"users", len(Users),
		"moods", len(ds.Moods),
		"journal_entries", len(ds.Journal),
		"bmi_records", len(ds.BMI),
	)
	return nil
}

func seedID(userID uuid.UUID, kind string, day, slot int) uuid.UUID {
	return uuid.NewSHA1(userID, []byte(fmt.Sprintf("seed-%s-%d-%d", kind, day, slot)))
}
