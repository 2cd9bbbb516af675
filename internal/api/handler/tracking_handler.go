package handler

import (
	"net/http"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/blaisecz/mood-journal/internal/service"
)

// TrackingHandler records mood check-ins and BMI measurements.
type TrackingHandler struct {
	moods service.MoodService
	bmi   service.BMIService
}

func NewTrackingHandler(moods service.MoodService, bmi service.BMIService) *TrackingHandler {
	return &TrackingHandler{moods: moods, bmi: bmi}
}

// TrackMood handles POST /v1/users/{userId}/moods
// @Summary Record a mood check-in
// @Description Append a mood event stamped with the server time and return the refreshed engagement streak.
// @Tags tracking
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.TrackMoodRequest true "Mood check-in"
// @Success 201 {object} domain.TrackMoodResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/moods [post]
func (h *TrackingHandler) TrackMood(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	var req domain.TrackMoodRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.moods.Track(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, r, err, "User not found", "track mood")
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// TrackBMI handles POST /v1/users/{userId}/bmi
// @Summary Record height and weight
// @Description Compute BMI and its category, store the measurement and return a short analysis. The analysis falls back to a template when text generation is unavailable.
// @Tags tracking
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.TrackBMIRequest true "Height and weight"
// @Success 201 {object} domain.BMIResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/bmi [post]
func (h *TrackingHandler) TrackBMI(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	var req domain.TrackBMIRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.bmi.Track(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, r, err, "User not found", "track bmi")
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}
