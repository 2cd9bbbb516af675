package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/google/uuid"
)

func TestCompanionHandler_PostMessage(t *testing.T) {
	userID := uuid.New().String()

	tests := []struct {
		name           string
		body           string
		wantStatusCode int
	}{
		{name: "valid message", body: `{"message": "I feel stuck today"}`, wantStatusCode: http.StatusOK},
		{name: "empty message", body: `{"message": ""}`, wantStatusCode: http.StatusUnprocessableEntity},
		{name: "invalid JSON", body: `[]`, wantStatusCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewCompanionHandler(&MockCompanionService{})

			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			req = withURLParams(req, map[string]string{"userId": userID})
			rec := httptest.NewRecorder()

			h.PostMessage(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("PostMessage() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestCompanionHandler_QuickSupport(t *testing.T) {
	h := NewCompanionHandler(&MockCompanionService{})

	req := withURLParams(httptest.NewRequest(http.MethodGet, "/v1/support/breathing", nil), map[string]string{"kind": "breathing"})
	rec := httptest.NewRecorder()
	h.QuickSupport(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("QuickSupport() status = %d, want 200", rec.Code)
	}
	var resp domain.QuickSupportResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil || resp.Kind != domain.SupportBreathing {
		t.Errorf("QuickSupport() = %+v, %v", resp, err)
	}

	req = withURLParams(httptest.NewRequest(http.MethodGet, "/v1/support/yoga", nil), map[string]string{"kind": "yoga"})
	rec = httptest.NewRecorder()
	h.QuickSupport(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("QuickSupport() unknown kind status = %d, want 404", rec.Code)
	}
}

func TestCompanionHandler_History(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		query          string
		err            error
		wantStatusCode int
		wantLimit      int
	}{
		{name: "default page", query: "", wantStatusCode: http.StatusOK},
		{name: "with limit and cursor", query: "?limit=5&cursor=abc", wantStatusCode: http.StatusOK, wantLimit: 5},
		{name: "invalid limit", query: "?limit=zero", wantStatusCode: http.StatusUnprocessableEntity},
		{name: "bad cursor", query: "?cursor=bad", err: domain.ErrInvalidInput, wantStatusCode: http.StatusBadRequest},
		{name: "unknown user", err: domain.ErrNotFound, wantStatusCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFilter domain.PageFilter
			h := NewCompanionHandler(&MockCompanionService{
				historyFunc: func(ctx context.Context, id uuid.UUID, filter domain.PageFilter) (*domain.ChatHistoryResponse, error) {
					gotFilter = filter
					if tt.err != nil {
						return nil, tt.err
					}
					return &domain.ChatHistoryResponse{Data: []domain.ChatMessageResponse{{Message: "hi", Response: "hello", Mood: domain.MoodNeutral, Timestamp: testTime}}}, nil
				},
			})

			req := httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)
			req = withURLParams(req, map[string]string{"userId": userID.String()})
			rec := httptest.NewRecorder()

			h.History(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("History() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if tt.wantLimit != 0 && (gotFilter.Limit != tt.wantLimit || gotFilter.Cursor != "abc") {
				t.Errorf("filter = %+v", gotFilter)
			}
		})
	}
}
