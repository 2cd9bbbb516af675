// Package problem writes RFC 9457 problem details.
package problem

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	ContentType = "application/problem+json"
	BaseURI     = "https://mood-journal.local/problems"
)

// Kind is the last path segment of a problem type URI.
type Kind string

const (
	KindBadRequest         Kind = "bad-request"
	KindValidation         Kind = "validation-error"
	KindNotFound           Kind = "not-found"
	KindConflict           Kind = "conflict"
	KindInternal           Kind = "internal-error"
	KindServiceUnavailable Kind = "service-unavailable"
)

// Problem is an RFC 9457 problem document. It also satisfies error so
// lower layers can hand a ready response up the stack.
type Problem struct {
	Type     string       `json:"type"`
	Title    string       `json:"title"`
	Status   int          `json:"status"`
	Detail   string       `json:"detail,omitempty"`
	Instance string       `json:"instance,omitempty"`
	Errors   []FieldError `json:"errors,omitempty"`
}

// FieldError is one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New builds a problem whose title is the standard status text.
func New(status int, kind Kind, detail string) *Problem {
	return &Problem{
		Type:   BaseURI + "/" + string(kind),
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}
}

func (p *Problem) Error() string {
	if p.Detail == "" {
		return fmt.Sprintf("%d %s", p.Status, p.Title)
	}
	return fmt.Sprintf("%d %s: %s", p.Status, p.Title, p.Detail)
}

func (p *Problem) WithErrors(errors []FieldError) *Problem {
	p.Errors = errors
	return p
}

func (p *Problem) WithInstance(instance string) *Problem {
	p.Instance = instance
	return p
}

// Write sends the problem as the response body.
func (p *Problem) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", ContentType)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(p.Status)
	json.NewEncoder(w).Encode(p)
}

// Respond writes the problem with the request path as its instance.
func (p *Problem) Respond(w http.ResponseWriter, r *http.Request) {
	if p.Instance == "" && r != nil && r.URL != nil {
		p.Instance = r.URL.Path
	}
	p.Write(w)
}

func NotFound(detail string) *Problem {
	return New(http.StatusNotFound, KindNotFound, detail)
}

func BadRequest(detail string) *Problem {
	return New(http.StatusBadRequest, KindBadRequest, detail)
}

// ValidationError reports per-field failures with 422.
func ValidationError(detail string, errors []FieldError) *Problem {
	p := New(http.StatusUnprocessableEntity, KindValidation, detail).WithErrors(errors)
	p.Title = "Validation Error"
	return p
}

func Conflict(detail string) *Problem {
	return New(http.StatusConflict, KindConflict, detail)
}

func InternalError(detail string) *Problem {
	return New(http.StatusInternalServerError, KindInternal, detail)
}

func ServiceUnavailable(detail string) *Problem {
	return New(http.StatusServiceUnavailable, KindServiceUnavailable, detail)
}
