package handler

import (
	"net/http"

	"github.com/blaisecz/mood-journal/internal/service"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(service service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Get handles GET /v1/users/{userId}/dashboard
// @Summary Get the user dashboard
// @Description Average mood of the last 7 days, streak, five most common moods, mood transitions and the five latest journal entries.
// @Tags insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.DashboardResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/dashboard [get]
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	dashboard, err := h.service.Get(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "User not found", "build dashboard")
		return
	}

	writeJSON(w, http.StatusOK, dashboard)
}
