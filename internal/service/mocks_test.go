package service

import (
	"context"
	"sort"
	"time"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/blaisecz/mood-journal/internal/langfuse"
	"github.com/blaisecz/mood-journal/internal/sentiment"
	"github.com/google/uuid"
)

var testNow = time.Date(2024, 3, 13, 15, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return testNow
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// addUser registers a user in timezone tz and returns its ID.
func (m *MockUserRepository) addUser(tz string) uuid.UUID {
	id := uuid.New()
	m.users[id] = &domain.User{ID: id, Timezone: tz}
	return id
}

// MockJournalRepository is a mock implementation of JournalRepository
type MockJournalRepository struct {
	entries map[uuid.UUID]*domain.JournalEntry
	err     error
}

func NewMockJournalRepository() *MockJournalRepository {
	return &MockJournalRepository{
		entries: make(map[uuid.UUID]*domain.JournalEntry),
	}
}

func (m *MockJournalRepository) add(e domain.JournalEntry) *domain.JournalEntry {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	m.entries[e.ID] = &e
	return &e
}

func (m *MockJournalRepository) forUser(userID uuid.UUID) []domain.JournalEntry {
	var result []domain.JournalEntry
	for _, e := range m.entries {
		if e.UserID == userID {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].RecordedAt.Before(result[j].RecordedAt)
	})
	return result
}

func (m *MockJournalRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.JournalEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	e, ok := m.entries[id]
	if !ok || e.UserID != userID {
		return nil, domain.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *MockJournalRepository) List(ctx context.Context, userID uuid.UUID, filter domain.JournalEntryFilter) ([]domain.JournalEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	all := m.forUser(userID)
	// newest first
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	if len(all) > limit+1 {
		all = all[:limit+1]
	}
	return all, nil
}

func (m *MockJournalRepository) ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.JournalEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var result []domain.JournalEntry
	for _, e := range m.forUser(userID) {
		if wanted[e.ID] {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *MockJournalRepository) ListRecent(ctx context.Context, userID uuid.UUID, n int) ([]domain.JournalEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	all := m.forUser(userID)
	if len(all) > n {
		all = all[len(all)-n:]
	}
	return all, nil
}

func (m *MockJournalRepository) Update(ctx context.Context, entry *domain.JournalEntry) error {
	if m.err != nil {
		return m.err
	}
	existing, ok := m.entries[entry.ID]
	if !ok || existing.UserID != entry.UserID {
		return domain.ErrNotFound
	}
	cp := *entry
	m.entries[entry.ID] = &cp
	return nil
}

func (m *MockJournalRepository) Delete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var n int64
	for _, id := range ids {
		if e, ok := m.entries[id]; ok && e.UserID == userID {
			delete(m.entries, id)
			n++
		}
	}
	return n, nil
}

func (m *MockJournalRepository) DeleteAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var n int64
	for id, e := range m.entries {
		if e.UserID == userID {
			delete(m.entries, id)
			n++
		}
	}
	return n, nil
}

// MockEventRepository is a mock implementation of EventRepository. Journal
// entries live in the linked MockJournalRepository.
type MockEventRepository struct {
	moods   []domain.MoodEvent
	bmi     []domain.BMIRecord
	journal *MockJournalRepository
	err     error
}

func NewMockEventRepository(journal *MockJournalRepository) *MockEventRepository {
	if journal == nil {
		journal = NewMockJournalRepository()
	}
	return &MockEventRepository{journal: journal}
}

func (m *MockEventRepository) FetchUserEvents(ctx context.Context, userID uuid.UUID) (domain.EventSnapshot, error) {
	if m.err != nil {
		return domain.EventSnapshot{}, m.err
	}
	var snap domain.EventSnapshot
	for _, e := range m.moods {
		if e.UserID == userID {
			snap.Moods = append(snap.Moods, e)
		}
	}
	for _, r := range m.bmi {
		if r.UserID == userID {
			snap.BMI = append(snap.BMI, r)
		}
	}
	snap.Journal = m.journal.forUser(userID)
	return snap, nil
}

func (m *MockEventRepository) AppendMood(ctx context.Context, event *domain.MoodEvent) error {
	if m.err != nil {
		return m.err
	}
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	m.moods = append(m.moods, *event)
	return nil
}

func (m *MockEventRepository) AppendJournal(ctx context.Context, entry *domain.JournalEntry) error {
	if m.err != nil {
		return m.err
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	m.journal.add(*entry)
	return nil
}

func (m *MockEventRepository) AppendBMI(ctx context.Context, record *domain.BMIRecord) error {
	if m.err != nil {
		return m.err
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	m.bmi = append(m.bmi, *record)
	return nil
}

type completeCall struct {
	system    string
	user      string
	maxTokens int
}

// MockTextGenerator returns replies in order; once exhausted it repeats the last one.
// err fails every call, errs fails the call with the same index.
type MockTextGenerator struct {
	replies []string
	err     error
	errs    []error
	calls   []completeCall
}

func (m *MockTextGenerator) Complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	m.calls = append(m.calls, completeCall{system: system, user: user, maxTokens: maxTokens})
	if m.err != nil {
		return "", m.err
	}
	if i := len(m.calls) - 1; i < len(m.errs) && m.errs[i] != nil {
		return "", m.errs[i]
	}
	if len(m.replies) == 0 {
		return "", nil
	}
	i := len(m.calls) - 1
	if i >= len(m.replies) {
		i = len(m.replies) - 1
	}
	return m.replies[i], nil
}

// MockLangfuseClient records traces and scores.
type MockLangfuseClient struct {
	enabled bool
	traces  []langfuse.TraceInput
	scores  []langfuse.ScoreInput
	err     error
}

func (m *MockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.traces = append(m.traces, in)
	return "trace-" + in.Name, nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	if m.err != nil {
		return m.err
	}
	m.scores = append(m.scores, in)
	return nil
}

func (m *MockLangfuseClient) Close(ctx context.Context) error {
	return nil
}

// MockPromptLoader returns a fixed prompt.
type MockPromptLoader struct {
	prompt string
	source langfuse.PromptSource
	err    error
}

func (m *MockPromptLoader) Load(ctx context.Context, name, label string) (string, langfuse.PromptSource, error) {
	return m.prompt, m.source, m.err
}

func constPolarity(p float64) sentiment.Analyzer {
	return sentiment.AnalyzerFunc(func(context.Context, string) (float64, error) {
		return p, nil
	})
}

// MockChatRepository is a mock implementation of ChatRepository
type MockChatRepository struct {
	messages []domain.ChatMessage
	err      error
}

func (m *MockChatRepository) Append(ctx context.Context, msg *domain.ChatMessage) error {
	if m.err != nil {
		return m.err
	}
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	m.messages = append(m.messages, *msg)
	return nil
}

func (m *MockChatRepository) List(ctx context.Context, userID uuid.UUID, filter domain.PageFilter) ([]domain.ChatMessage, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.ChatMessage
	for i := len(m.messages) - 1; i >= 0; i-- {
		if m.messages[i].UserID == userID {
			result = append(result, m.messages[i])
		}
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	if len(result) > limit+1 {
		result = result[:limit+1]
	}
	return result, nil
}

func (m *MockChatRepository) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var n int64
	for _, msg := range m.messages {
		if msg.UserID == userID {
			n++
		}
	}
	return n, nil
}

// MockCounselingRepository is a mock implementation of CounselingRepository
type MockCounselingRepository struct {
	sessions map[uuid.UUID]*domain.CounselingSession
	err      error
}

func NewMockCounselingRepository() *MockCounselingRepository {
	return &MockCounselingRepository{sessions: make(map[uuid.UUID]*domain.CounselingSession)}
}

func (m *MockCounselingRepository) Create(ctx context.Context, session *domain.CounselingSession) error {
	if m.err != nil {
		return m.err
	}
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	cp := *session
	m.sessions[session.ID] = &cp
	return nil
}

func (m *MockCounselingRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.CounselingSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	s, ok := m.sessions[id]
	if !ok || s.UserID != userID {
		return nil, domain.ErrNotFound
	}
	cp := *s
	cp.Messages = append([]domain.CounselingMessage(nil), s.Messages...)
	cp.MessageCount = len(cp.Messages)
	return &cp, nil
}

func (m *MockCounselingRepository) List(ctx context.Context, userID uuid.UUID, filter domain.PageFilter) ([]domain.CounselingSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.CounselingSession
	for _, s := range m.sessions {
		if s.UserID != userID {
			continue
		}
		cp := *s
		cp.MessageCount = len(s.Messages)
		cp.Messages = nil
		if n := len(s.Messages); n > 0 {
			cp.Messages = []domain.CounselingMessage{s.Messages[n-1]}
		}
		result = append(result, cp)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	if len(result) > limit+1 {
		result = result[:limit+1]
	}
	return result, nil
}

func (m *MockCounselingRepository) AppendMessage(ctx context.Context, msg *domain.CounselingMessage) error {
	if m.err != nil {
		return m.err
	}
	s, ok := m.sessions[msg.SessionID]
	if !ok {
		return domain.ErrNotFound
	}
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	s.Messages = append(s.Messages, *msg)
	return nil
}

func (m *MockCounselingRepository) Delete(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	s, ok := m.sessions[id]
	if !ok || s.UserID != userID {
		return 0, nil
	}
	delete(m.sessions, id)
	return 1, nil
}
