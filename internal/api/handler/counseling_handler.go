package handler

import (
	"net/http"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/blaisecz/mood-journal/internal/service"
	"github.com/blaisecz/mood-journal/pkg/problem"
)

// CounselingHandler serves counseling sessions and the professionals directory.
type CounselingHandler struct {
	service service.CounselingService
}

func NewCounselingHandler(service service.CounselingService) *CounselingHandler {
	return &CounselingHandler{service: service}
}

// Send handles POST /v1/users/{userId}/counseling/messages
// @Summary Message the counselor
// @Description Replies within a typed session. Without session_id a new session is opened with session_type (default general) and goals.
// @Tags counseling
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CounselingMessageRequest true "Message"
// @Success 200 {object} domain.CounselingReply
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User or session not found"
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/counseling/messages [post]
func (h *CounselingHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	var req domain.CounselingMessageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	reply, err := h.service.Send(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, r, err, "Counseling session not found", "send counseling message")
		return
	}

	writeJSON(w, http.StatusOK, reply)
}

// List handles GET /v1/users/{userId}/counseling/sessions
// @Summary List counseling sessions
// @Description Sessions newest first, each with its latest exchange.
// @Tags counseling
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.CounselingSessionListResponse
// @Failure 400 {object} problem.Problem "Invalid cursor"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/counseling/sessions [get]
func (h *CounselingHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	filter, fieldErrors := parsePageFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Respond(w, r)
		return
	}

	resp, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		writeServiceError(w, r, err, "User not found", "list counseling sessions")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Summary handles GET /v1/users/{userId}/counseling/sessions/{sessionId}/summary
// @Summary Summarize a counseling session
// @Description Generated summary with the full message history. A templated summary is returned when generation fails.
// @Tags counseling
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param sessionId path string true "Session UUID" format(uuid)
// @Success 200 {object} domain.CounselingSummaryResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Session not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/counseling/sessions/{sessionId}/summary [get]
func (h *CounselingHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlUUID(w, r, "userId", "user")
	if !ok {
		return
	}
	sessionID, ok := urlUUID(w, r, "sessionId", "session")
	if !ok {
		return
	}

	resp, err := h.service.Summary(r.Context(), userID, sessionID)
	if err != nil {
		writeServiceError(w, r, err, "Counseling session not found", "summarize counseling session")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /v1/users/{userId}/counseling/sessions/{sessionId}
// @Summary Delete a counseling session
// @Tags counseling
// @Param userId path string true "User UUID" format(uuid)
// @Param sessionId path string true "Session UUID" format(uuid)
// @Success 204 "Deleted"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Session not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/counseling/sessions/{sessionId} [delete]
func (h *CounselingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlUUID(w, r, "userId", "user")
	if !ok {
		return
	}
	sessionID, ok := urlUUID(w, r, "sessionId", "session")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, sessionID); err != nil {
		writeServiceError(w, r, err, "Counseling session not found", "delete counseling session")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Professionals handles GET /v1/professionals
// @Summary Mental health professionals
// @Tags counseling
// @Produce json
// @Success 200 {array} domain.Professional
// @Router /professionals [get]
func (h *CounselingHandler) Professionals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Professionals())
}
