package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/blaisecz/mood-journal/internal/api/validation"
	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/blaisecz/mood-journal/internal/logger"
	"github.com/blaisecz/mood-journal/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// urlUUID parses a UUID path parameter, writing a 400 problem on failure.
func urlUUID(w http.ResponseWriter, r *http.Request, param, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		problem.BadRequest("Invalid "+label+" ID format").Respond(w, r)
		return uuid.Nil, false
	}
	return id, true
}

// decodeAndValidate reads a JSON body into dst and runs struct validation.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		problem.BadRequest("Invalid JSON body").Respond(w, r)
		return false
	}
	if fieldErrors := validation.Validate(dst); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Respond(w, r)
		return false
	}
	return true
}

// writeServiceError maps domain errors to problem responses. notFound names
// the missing resource, action describes the failed operation for 500s.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound, action string) {
	var p *problem.Problem
	switch {
	case errors.Is(err, domain.ErrNotFound):
		p = problem.NotFound(notFound)
	case errors.Is(err, domain.ErrInvalidInput):
		p = problem.BadRequest(strings.TrimPrefix(err.Error(), domain.ErrInvalidInput.Error()+": "))
	case errors.Is(err, domain.ErrConflict):
		p = problem.Conflict(err.Error())
	default:
		logger.FromContext(r.Context(), nil).Error(action, "error", err)
		p = problem.InternalError("Failed to " + action)
	}
	p.Respond(w, r)
}

// parsePageFilter reads the limit and cursor query parameters.
func parsePageFilter(r *http.Request) (domain.PageFilter, []problem.FieldError) {
	q := r.URL.Query()
	filter := domain.PageFilter{Cursor: q.Get("cursor")}
	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			return filter, []problem.FieldError{{Field: "limit", Message: "must be a positive integer"}}
		}
		filter.Limit = limit
	}
	return filter, nil
}
