package handler

import (
	"net/http"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/blaisecz/mood-journal/internal/service"
	"github.com/blaisecz/mood-journal/pkg/problem"
	"github.com/go-chi/chi/v5"
)

type CompanionHandler struct {
	service service.CompanionService
}

func NewCompanionHandler(service service.CompanionService) *CompanionHandler {
	return &CompanionHandler{service: service}
}

// PostMessage handles POST /v1/users/{userId}/companion/messages
// @Summary Talk to the companion
// @Description Supportive reply tailored to the mood detected in the message. A canned reply is returned when generation fails.
// @Tags companion
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CompanionMessageRequest true "Message"
// @Success 200 {object} domain.CompanionReply
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/companion/messages [post]
func (h *CompanionHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	var req domain.CompanionMessageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	reply, err := h.service.Reply(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, r, err, "User not found", "reply")
		return
	}

	writeJSON(w, http.StatusOK, reply)
}

// History handles GET /v1/users/{userId}/companion/messages
// @Summary Companion chat history
// @Description Stored exchanges with the companion, newest first.
// @Tags companion
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.ChatHistoryResponse
// @Failure 400 {object} problem.Problem "Invalid cursor"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/companion/messages [get]
func (h *CompanionHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	filter, fieldErrors := parsePageFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Respond(w, r)
		return
	}

	resp, err := h.service.History(r.Context(), userID, filter)
	if err != nil {
		writeServiceError(w, r, err, "User not found", "load chat history")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// QuickSupport handles GET /v1/support/{kind}
// @Summary Quick support exercise
// @Tags companion
// @Produce json
// @Param kind path string true "Support kind" Enums(breathing, affirmations, sleep, mindfulness)
// @Success 200 {object} domain.QuickSupportResponse
// @Failure 404 {object} problem.Problem "Unknown kind"
// @Router /support/{kind} [get]
func (h *CompanionHandler) QuickSupport(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.QuickSupport(domain.SupportKind(chi.URLParam(r, "kind")))
	if err != nil {
		writeServiceError(w, r, err, "Unknown support kind", "load support")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
