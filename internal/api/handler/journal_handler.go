package handler

import (
	"net/http"
	"time"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/blaisecz/mood-journal/internal/service"
	"github.com/blaisecz/mood-journal/pkg/problem"
)

type JournalHandler struct {
	service service.JournalService
}

func NewJournalHandler(service service.JournalService) *JournalHandler {
	return &JournalHandler{service: service}
}

// Create handles POST /v1/users/{userId}/journal
// @Summary Write a journal entry
// @Tags journal
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} domain.JournalEntryResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/journal [post]
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	var req domain.CreateJournalEntryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	entry, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, r, err, "User not found", "create journal entry")
		return
	}

	writeJSON(w, http.StatusCreated, entry.ToResponse())
}

// List handles GET /v1/users/{userId}/journal
// @Summary List journal entries
// @Description Paginated journal history, newest first.
// @Tags journal
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param from query string false "Start of range (RFC3339)" format(date-time)
// @Param to query string false "End of range (RFC3339)" format(date-time)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.JournalEntryListResponse
// @Failure 400 {object} problem.Problem "Invalid cursor"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/journal [get]
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	filter, fieldErrors := parseJournalFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Respond(w, r)
		return
	}

	resp, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		writeServiceError(w, r, err, "User not found", "list journal entries")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Update handles PUT /v1/users/{userId}/journal/{entryId}
// @Summary Edit a journal entry
// @Description Replace content and mood. The entry timestamp moves to the time of the edit.
// @Tags journal
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param entryId path string true "Entry UUID" format(uuid)
// @Param request body domain.UpdateJournalEntryRequest true "New content and mood"
// @Success 200 {object} domain.JournalEntryResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Entry not found"
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/journal/{entryId} [put]
func (h *JournalHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlUUID(w, r, "userId", "user")
	if !ok {
		return
	}
	entryID, ok := urlUUID(w, r, "entryId", "entry")
	if !ok {
		return
	}

	var req domain.UpdateJournalEntryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	entry, err := h.service.Update(r.Context(), userID, entryID, &req)
	if err != nil {
		writeServiceError(w, r, err, "Journal entry not found", "update journal entry")
		return
	}

	writeJSON(w, http.StatusOK, entry.ToResponse())
}

// Delete handles DELETE /v1/users/{userId}/journal/{entryId}
// @Summary Delete a journal entry
// @Tags journal
// @Param userId path string true "User UUID" format(uuid)
// @Param entryId path string true "Entry UUID" format(uuid)
// @Success 204 "Deleted"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Entry not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/journal/{entryId} [delete]
func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlUUID(w, r, "userId", "user")
	if !ok {
		return
	}
	entryID, ok := urlUUID(w, r, "entryId", "entry")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, entryID); err != nil {
		writeServiceError(w, r, err, "Journal entry not found", "delete journal entry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteMany handles POST /v1/users/{userId}/journal/delete
// @Summary Delete selected journal entries
// @Description Unknown ids are skipped; 404 when none of the ids matched.
// @Tags journal
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.DeleteJournalEntriesRequest true "Entry ids"
// @Success 200 {object} domain.DeleteResult
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "No matching entries"
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/journal/delete [post]
func (h *JournalHandler) DeleteMany(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	var req domain.DeleteJournalEntriesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.service.DeleteMany(r.Context(), userID, req.EntryIDs)
	if err != nil {
		writeServiceError(w, r, err, "No matching journal entries", "delete journal entries")
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// DeleteAll handles DELETE /v1/users/{userId}/journal
// @Summary Delete the whole journal
// @Tags journal
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.DeleteResult
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/journal [delete]
func (h *JournalHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	res, err := h.service.DeleteAll(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "User not found", "delete journal")
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// Analyze handles GET /v1/users/{userId}/journal/{entryId}/analysis
// @Summary Analyze one journal entry
// @Description Emotional tone, key themes and two suggestions derived from the entry's sentiment.
// @Tags journal
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param entryId path string true "Entry UUID" format(uuid)
// @Success 200 {object} domain.JournalEntryAnalysis
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Entry not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/journal/{entryId}/analysis [get]
func (h *JournalHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlUUID(w, r, "userId", "user")
	if !ok {
		return
	}
	entryID, ok := urlUUID(w, r, "entryId", "entry")
	if !ok {
		return
	}

	analysis, err := h.service.Analyze(r.Context(), userID, entryID)
	if err != nil {
		writeServiceError(w, r, err, "Journal entry not found", "analyze journal entry")
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

func parseJournalFilter(r *http.Request) (domain.JournalEntryFilter, []problem.FieldError) {
	var filter domain.JournalEntryFilter
	var fieldErrors []problem.FieldError
	q := r.URL.Query()

	if fromStr := q.Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{Field: "from", Message: "must be a valid RFC3339 timestamp"})
		} else {
			filter.From = &from
		}
	}

	if toStr := q.Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{Field: "to", Message: "must be a valid RFC3339 timestamp"})
		} else {
			filter.To = &to
		}
	}

	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		fieldErrors = append(fieldErrors, problem.FieldError{Field: "to", Message: "must not be before from"})
	}

	page, pageErrors := parsePageFilter(r)
	fieldErrors = append(fieldErrors, pageErrors...)
	filter.Limit, filter.Cursor = page.Limit, page.Cursor

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}
	return filter, nil
}
