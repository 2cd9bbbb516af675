package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/blaisecz/mood-journal/internal/api/validation"
	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/blaisecz/mood-journal/internal/service"
	"github.com/blaisecz/mood-journal/pkg/problem"
)

// InsightsHandler serves the analytics dashboard and wellness reports.
type InsightsHandler struct {
	insights service.InsightsService
	reports  service.ReportService
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(insights service.InsightsService, reports service.ReportService) *InsightsHandler {
	return &InsightsHandler{
		insights: insights,
		reports:  reports,
	}
}

// GetInsights handles GET /v1/users/{userId}/insights
// @Summary Get mood and wellness insights
// @Description Mood series, time-of-day and weekday patterns, mood transitions, wellness scores with trends, streak and average mood for a period. Days and hours are the user's local ones.
// @Tags insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param period query string false "Window" Enums(week, month, year) default(week)
// @Success 200 {object} domain.InsightsResponse
// @Failure 400 {object} problem.Problem "Invalid period"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/insights [get]
func (h *InsightsHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	period, err := domain.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		problem.BadRequest("period must be one of week, month, year").Respond(w, r)
		return
	}

	result, err := h.insights.Generate(r.Context(), userID, period)
	if err != nil {
		writeServiceError(w, r, err, "User not found", "generate insights")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GenerateReport handles POST /v1/users/{userId}/reports
// @Summary Generate a wellness report
// @Description Report over the selected journal entries, or the latest five when none are selected. Statistics are computed locally; the analysis is generated and falls back to a template when generation fails.
// @Tags insights
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.GenerateReportRequest false "Entry selection"
// @Success 200 {object} domain.ReportResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User or entries not found"
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/reports [post]
func (h *InsightsHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	var req domain.GenerateReportRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			problem.BadRequest("Invalid JSON body").Respond(w, r)
			return
		}
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Respond(w, r)
		return
	}

	report, err := h.reports.Generate(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, r, err, "No journal entries found", "generate report")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// PostFeedback handles POST /v1/users/{userId}/reports/feedback
// @Summary Rate a generated report
// @Description Attach a 1-5 rating and optional comment to the report's trace.
// @Tags insights
// @Accept json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.FeedbackRequest true "Feedback"
// @Success 204 "Feedback accepted"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/reports/feedback [post]
func (h *InsightsHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	var req domain.FeedbackRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.reports.Feedback(r.Context(), userID, &req); err != nil {
		writeServiceError(w, r, err, "User not found", "submit feedback")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
