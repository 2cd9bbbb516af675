package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/google/uuid"
)

func TestCounselingHandler_Send(t *testing.T) {
	userID := uuid.New().String()

	tests := []struct {
		name           string
		body           string
		err            error
		wantStatusCode int
	}{
		{name: "new session", body: `{"session_type": "cbt", "goals": ["sleep better"], "message": "I keep assuming the worst."}`, wantStatusCode: http.StatusOK},
		{name: "existing session", body: `{"session_id": "550e8400-e29b-41d4-a716-446655440000", "message": "Still anxious."}`, wantStatusCode: http.StatusOK},
		{name: "missing message", body: `{"session_type": "cbt"}`, wantStatusCode: http.StatusUnprocessableEntity},
		{name: "unknown session type", body: `{"session_type": "hypnosis", "message": "hi"}`, wantStatusCode: http.StatusUnprocessableEntity},
		{name: "too many goals", body: `{"goals": ["a", "b", "c", "d", "e", "f"], "message": "hi"}`, wantStatusCode: http.StatusUnprocessableEntity},
		{name: "invalid JSON", body: `{"message":`, wantStatusCode: http.StatusBadRequest},
		{name: "unknown session", body: `{"session_id": "550e8400-e29b-41d4-a716-446655440000", "message": "hi"}`, err: domain.ErrNotFound, wantStatusCode: http.StatusNotFound},
		{name: "blank message", body: `{"message": "   "}`, err: fmt.Errorf("%w: message is required", domain.ErrInvalidInput), wantStatusCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewCounselingHandler(&MockCounselingService{
				sendFunc: func(ctx context.Context, id uuid.UUID, req *domain.CounselingMessageRequest) (*domain.CounselingReply, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return &domain.CounselingReply{SessionID: uuid.New(), SessionType: domain.SessionCBT, Reply: "Tell me more."}, nil
				},
			})

			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			req = withURLParams(req, map[string]string{"userId": userID})
			rec := httptest.NewRecorder()

			h.Send(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Send() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestCounselingHandler_List(t *testing.T) {
	userID := uuid.New().String()

	h := NewCounselingHandler(&MockCounselingService{
		listFunc: func(ctx context.Context, id uuid.UUID, filter domain.PageFilter) (*domain.CounselingSessionListResponse, error) {
			if filter.Limit != 2 {
				t.Errorf("filter.Limit = %d, want 2", filter.Limit)
			}
			return &domain.CounselingSessionListResponse{
				Data:       []domain.CounselingSessionResponse{{ID: uuid.New(), SessionType: domain.SessionStress, Goals: []string{}, Status: domain.SessionStatusActive, CreatedAt: testTime, MessageCount: 3}},
				Pagination: domain.PaginationResponse{HasMore: true, NextCursor: "next"},
			}, nil
		},
	})

	req := withURLParams(httptest.NewRequest(http.MethodGet, "/?limit=2", nil), map[string]string{"userId": userID})
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("List() status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	var resp domain.CounselingSessionListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].MessageCount != 3 || !resp.Pagination.HasMore {
		t.Errorf("List() = %+v", resp)
	}

	req = withURLParams(httptest.NewRequest(http.MethodGet, "/?limit=-1", nil), map[string]string{"userId": userID})
	rec = httptest.NewRecorder()
	h.List(rec, req)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("List() invalid limit status = %d, want 422", rec.Code)
	}
}

func TestCounselingHandler_Summary(t *testing.T) {
	userID := uuid.New().String()
	sessionID := uuid.New()

	tests := []struct {
		name           string
		sessionID      string
		err            error
		wantStatusCode int
	}{
		{name: "found", sessionID: sessionID.String(), wantStatusCode: http.StatusOK},
		{name: "not found", sessionID: sessionID.String(), err: domain.ErrNotFound, wantStatusCode: http.StatusNotFound},
		{name: "invalid session id", sessionID: "not-a-uuid", wantStatusCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewCounselingHandler(&MockCounselingService{
				summaryFunc: func(ctx context.Context, uid, sid uuid.UUID) (*domain.CounselingSummaryResponse, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return &domain.CounselingSummaryResponse{SessionID: sid, SessionType: domain.SessionGeneral, Goals: []string{}, Summary: "Short session."}, nil
				},
			})

			req := withURLParams(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"userId": userID, "sessionId": tt.sessionID})
			rec := httptest.NewRecorder()
			h.Summary(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Summary() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestCounselingHandler_Delete(t *testing.T) {
	userID := uuid.New().String()
	sessionID := uuid.New().String()

	tests := []struct {
		name           string
		err            error
		wantStatusCode int
	}{
		{name: "deleted", wantStatusCode: http.StatusNoContent},
		{name: "not found", err: domain.ErrNotFound, wantStatusCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewCounselingHandler(&MockCounselingService{
				deleteFunc: func(ctx context.Context, uid, sid uuid.UUID) error { return tt.err },
			})

			req := withURLParams(httptest.NewRequest(http.MethodDelete, "/", nil), map[string]string{"userId": userID, "sessionId": sessionID})
			rec := httptest.NewRecorder()
			h.Delete(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Delete() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestCounselingHandler_Professionals(t *testing.T) {
	h := NewCounselingHandler(&MockCounselingService{})

	rec := httptest.NewRecorder()
	h.Professionals(rec, httptest.NewRequest(http.MethodGet, "/v1/professionals", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Professionals() status = %d, want 200", rec.Code)
	}
	var resp []domain.Professional
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil || len(resp) != 1 {
		t.Errorf("Professionals() = %+v, %v", resp, err)
	}
}
