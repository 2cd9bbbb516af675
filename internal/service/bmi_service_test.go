package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/blaisecz/mood-journal/internal/llm"
	"github.com/blaisecz/mood-journal/internal/logger"
	"github.com/google/uuid"
)

func TestComputeBMI(t *testing.T) {
	tests := []struct {
		name     string
		heightCm float64
		weightKg float64
		want     float64
		wantErr  bool
	}{
		{name: "normal", heightCm: 180, weightKg: 81, want: 25},
		{name: "short and light", heightCm: 150, weightKg: 45, want: 20},
		{name: "zero height", heightCm: 0, weightKg: 70, wantErr: true},
		{name: "negative weight", heightCm: 170, weightKg: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeBMI(tt.heightCm, tt.weightKg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ComputeBMI() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ComputeBMI() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBMIService_Track(t *testing.T) {
	tests := []struct {
		name         string
		generator    llm.TextGenerator
		wantAnalysis string
		wantFallback bool
	}{
		{
			name:         "generated analysis",
			generator:    &MockTextGenerator{replies: []string{"Looking healthy, keep it up!"}},
			wantAnalysis: "Looking healthy, keep it up!",
		},
		{
			name:         "generation failure falls back",
			generator:    &MockTextGenerator{err: llm.ErrGeneration},
			wantFallback: true,
		},
		{
			name:         "no generator configured",
			wantFallback: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := NewMockUserRepository()
			userID := users.addUser("UTC")
			events := NewMockEventRepository(nil)
			svc := NewBMIService(events, users, tt.generator, 0, fixedClock, logger.Discard())

			resp, err := svc.Track(context.Background(), userID, &domain.TrackBMIRequest{HeightCm: 180, WeightKg: 72.9})
			if err != nil {
				t.Fatalf("Track() error = %v", err)
			}
			if resp.Category != "Normal weight" {
				t.Errorf("Track() category = %q", resp.Category)
			}
			if math.Abs(resp.BMI-22.5) > 1e-9 {
				t.Errorf("Track() bmi = %v, want 22.5", resp.BMI)
			}
			if tt.wantFallback {
				want := "Your BMI of 22.5 falls in the Normal weight category."
				if !strings.HasPrefix(resp.Analysis, want) {
					t.Errorf("Track() analysis = %q, want fallback", resp.Analysis)
				}
			} else if resp.Analysis != tt.wantAnalysis {
				t.Errorf("Track() analysis = %q, want %q", resp.Analysis, tt.wantAnalysis)
			}
			if len(events.bmi) != 1 || events.bmi[0].UserID != userID {
				t.Errorf("expected one stored bmi record, got %+v", events.bmi)
			}
		})
	}
}

func TestBMIService_Track_UnknownUser(t *testing.T) {
	svc := NewBMIService(NewMockEventRepository(nil), NewMockUserRepository(), nil, 0, fixedClock, logger.Discard())
	_, err := svc.Track(context.Background(), uuid.New(), &domain.TrackBMIRequest{HeightCm: 170, WeightKg: 60})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Track() error = %v, want ErrNotFound", err)
	}
}
