package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

var testTime = time.Date(2024, 3, 13, 15, 0, 0, 0, time.UTC)

// withURLParams attaches chi route params to a request.
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc  func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Name: req.Name, Timezone: req.Timezone, CreatedAt: testTime}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockMoodService is a mock implementation of MoodService
type MockMoodService struct {
	trackFunc func(ctx context.Context, userID uuid.UUID, req *domain.TrackMoodRequest) (*domain.TrackMoodResponse, error)
}

func (m *MockMoodService) Track(ctx context.Context, userID uuid.UUID, req *domain.TrackMoodRequest) (*domain.TrackMoodResponse, error) {
	if m.trackFunc != nil {
		return m.trackFunc(ctx, userID, req)
	}
	return &domain.TrackMoodResponse{
		Mood:   domain.MoodEventResponse{ID: uuid.New(), Mood: req.Mood, Context: req.Context, Timestamp: testTime},
		Streak: 1,
	}, nil
}

// MockBMIService is a mock implementation of BMIService
type MockBMIService struct {
	trackFunc func(ctx context.Context, userID uuid.UUID, req *domain.TrackBMIRequest) (*domain.BMIResponse, error)
}

func (m *MockBMIService) Track(ctx context.Context, userID uuid.UUID, req *domain.TrackBMIRequest) (*domain.BMIResponse, error) {
	if m.trackFunc != nil {
		return m.trackFunc(ctx, userID, req)
	}
	return &domain.BMIResponse{ID: uuid.New(), BMI: 22.5, Category: "Normal weight", Timestamp: testTime}, nil
}

// MockJournalService is a mock implementation of JournalService
type MockJournalService struct {
	createFunc     func(ctx context.Context, userID uuid.UUID, req *domain.CreateJournalEntryRequest) (*domain.JournalEntry, error)
	listFunc       func(ctx context.Context, userID uuid.UUID, filter domain.JournalEntryFilter) (*domain.JournalEntryListResponse, error)
	updateFunc     func(ctx context.Context, userID, entryID uuid.UUID, req *domain.UpdateJournalEntryRequest) (*domain.JournalEntry, error)
	deleteFunc     func(ctx context.Context, userID, entryID uuid.UUID) error
	deleteManyFunc func(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (*domain.DeleteResult, error)
	deleteAllFunc  func(ctx context.Context, userID uuid.UUID) (*domain.DeleteResult, error)
	analyzeFunc    func(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntryAnalysis, error)
}

func (m *MockJournalService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.JournalEntry{ID: uuid.New(), UserID: userID, Content: req.Content, Mood: req.Mood, RecordedAt: testTime}, nil
}

func (m *MockJournalService) List(ctx context.Context, userID uuid.UUID, filter domain.JournalEntryFilter) (*domain.JournalEntryListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.JournalEntryListResponse{Data: []domain.JournalEntryResponse{}}, nil
}

func (m *MockJournalService) Update(ctx context.Context, userID, entryID uuid.UUID, req *domain.UpdateJournalEntryRequest) (*domain.JournalEntry, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, entryID, req)
	}
	return &domain.JournalEntry{ID: entryID, UserID: userID, Content: req.Content, Mood: req.Mood, RecordedAt: testTime}, nil
}

func (m *MockJournalService) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, entryID)
	}
	return nil
}

func (m *MockJournalService) DeleteMany(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (*domain.DeleteResult, error) {
	if m.deleteManyFunc != nil {
		return m.deleteManyFunc(ctx, userID, ids)
	}
	return &domain.DeleteResult{Deleted: len(ids)}, nil
}

func (m *MockJournalService) DeleteAll(ctx context.Context, userID uuid.UUID) (*domain.DeleteResult, error) {
	if m.deleteAllFunc != nil {
		return m.deleteAllFunc(ctx, userID)
	}
	return &domain.DeleteResult{}, nil
}

func (m *MockJournalService) Analyze(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntryAnalysis, error) {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, userID, entryID)
	}
	return &domain.JournalEntryAnalysis{EntryID: entryID, EmotionalTone: "Neutral"}, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID, period domain.Period) (*domain.InsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context, userID uuid.UUID, period domain.Period) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID, period)
	}
	return &domain.InsightsResponse{BestTime: "Morning", AverageMood: "😐"}, nil
}

// MockReportService is a mock implementation of ReportService
type MockReportService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID, req *domain.GenerateReportRequest) (*domain.ReportResponse, error)
	feedbackFunc func(ctx context.Context, userID uuid.UUID, req *domain.FeedbackRequest) error
}

func (m *MockReportService) Generate(ctx context.Context, userID uuid.UUID, req *domain.GenerateReportRequest) (*domain.ReportResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID, req)
	}
	return &domain.ReportResponse{TotalEntries: 1, AnalysisSource: domain.AnalysisFallback}, nil
}

func (m *MockReportService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.FeedbackRequest) error {
	if m.feedbackFunc != nil {
		return m.feedbackFunc(ctx, userID, req)
	}
	return nil
}

// MockCompanionService is a mock implementation of CompanionService
type MockCompanionService struct {
	replyFunc   func(ctx context.Context, userID uuid.UUID, req *domain.CompanionMessageRequest) (*domain.CompanionReply, error)
	historyFunc func(ctx context.Context, userID uuid.UUID, filter domain.PageFilter) (*domain.ChatHistoryResponse, error)
}

func (m *MockCompanionService) Reply(ctx context.Context, userID uuid.UUID, req *domain.CompanionMessageRequest) (*domain.CompanionReply, error) {
	if m.replyFunc != nil {
		return m.replyFunc(ctx, userID, req)
	}
	return &domain.CompanionReply{Reply: "I'm listening.", DetectedMood: domain.MoodNeutral}, nil
}

func (m *MockCompanionService) History(ctx context.Context, userID uuid.UUID, filter domain.PageFilter) (*domain.ChatHistoryResponse, error) {
	if m.historyFunc != nil {
		return m.historyFunc(ctx, userID, filter)
	}
	return &domain.ChatHistoryResponse{Data: []domain.ChatMessageResponse{}}, nil
}

func (m *MockCompanionService) QuickSupport(kind domain.SupportKind) (*domain.QuickSupportResponse, error) {
	if kind != domain.SupportBreathing {
		return nil, domain.ErrNotFound
	}
	return &domain.QuickSupportResponse{Kind: kind, Title: "Breathing Exercise", Message: "Breathe."}, nil
}

// MockCounselingService is a mock implementation of CounselingService
type MockCounselingService struct {
	sendFunc    func(ctx context.Context, userID uuid.UUID, req *domain.CounselingMessageRequest) (*domain.CounselingReply, error)
	listFunc    func(ctx context.Context, userID uuid.UUID, filter domain.PageFilter) (*domain.CounselingSessionListResponse, error)
	summaryFunc func(ctx context.Context, userID, sessionID uuid.UUID) (*domain.CounselingSummaryResponse, error)
	deleteFunc  func(ctx context.Context, userID, sessionID uuid.UUID) error
}

func (m *MockCounselingService) Send(ctx context.Context, userID uuid.UUID, req *domain.CounselingMessageRequest) (*domain.CounselingReply, error) {
	if m.sendFunc != nil {
		return m.sendFunc(ctx, userID, req)
	}
	return &domain.CounselingReply{SessionID: uuid.New(), SessionType: domain.SessionGeneral, Reply: "Tell me more."}, nil
}

func (m *MockCounselingService) List(ctx context.Context, userID uuid.UUID, filter domain.PageFilter) (*domain.CounselingSessionListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.CounselingSessionListResponse{Data: []domain.CounselingSessionResponse{}}, nil
}

func (m *MockCounselingService) Summary(ctx context.Context, userID, sessionID uuid.UUID) (*domain.CounselingSummaryResponse, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx, userID, sessionID)
	}
	return &domain.CounselingSummaryResponse{SessionID: sessionID, SessionType: domain.SessionGeneral, Goals: []string{}, Summary: "Short session."}, nil
}

func (m *MockCounselingService) Delete(ctx context.Context, userID, sessionID uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, sessionID)
	}
	return nil
}

func (m *MockCounselingService) Professionals() []domain.Professional {
	return []domain.Professional{{ID: "1", Name: "Dr. Sarah Johnson"}}
}

// MockDashboardService is a mock implementation of DashboardService
type MockDashboardService struct {
	getFunc func(ctx context.Context, userID uuid.UUID) (*domain.DashboardResponse, error)
}

func (m *MockDashboardService) Get(ctx context.Context, userID uuid.UUID) (*domain.DashboardResponse, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID)
	}
	return &domain.DashboardResponse{AverageMood: "😐", CommonEmotions: []domain.MoodShare{}, JournalEntries: []domain.JournalEntryResponse{}}, nil
}
