package domain

import "github.com/google/uuid"

// AnalysisSource tells whether a report analysis was generated or templated.
type AnalysisSource string

const (
	AnalysisGenerated AnalysisSource = "generated"
	AnalysisFallback  AnalysisSource = "fallback"
)

// GenerateReportRequest selects journal entries for a report. Empty means the latest five.
// @Description Journal entries to include in the report.
type GenerateReportRequest struct {
	EntryIDs []uuid.UUID `json:"entry_ids,omitempty" validate:"omitempty,max=50"`
}

// MoodShare is one row of a mood distribution.
type MoodShare struct {
	Mood       Mood `json:"mood" example:"happy"`
	Count      int  `json:"count" example:"2"`
	Percentage int  `json:"percentage" example:"67"`
}

// ReportResponse is a wellness report over selected journal entries.
// @Description Wellness report with local statistics and an analysis.
type ReportResponse struct {
	TotalEntries     int            `json:"total_entries" example:"5"`
	DominantMood     Mood           `json:"dominant_mood" example:"happy"`
	MoodDistribution []MoodShare    `json:"mood_distribution"`
	Scores           WellnessScores `json:"scores"`
	Trends           WellnessTrends `json:"trends"`
	Streak           int            `json:"streak" example:"3"`
	Analysis         string         `json:"analysis"`
	AnalysisSource   AnalysisSource `json:"analysis_source" example:"generated" enums:"generated,fallback"`
	// Pre-formatted multi-section report
	Text string `json:"text"`
	// Trace ID for feedback (only present when Langfuse is enabled)
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// FeedbackRequest scores a generated report.
// @Description User rating for a generated report.
type FeedbackRequest struct {
	TraceID string `json:"trace_id" validate:"required,max=64" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Rating from 1 (unhelpful) to 5 (very helpful)
	Score   int    `json:"score" validate:"required,min=1,max=5" example:"4"`
	Comment string `json:"comment,omitempty" validate:"omitempty,max=1000"`
}
