// Package session owns the single in-progress interview session and the
// transitions that drive it: answer submit, retry, skip/advance and
// completion. All transitions are synchronous and atomic; the mutex exists
// only because HTTP handlers run on concurrent goroutines.
package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mockmate/interview/internal/catalog"
	"mockmate/interview/internal/evaluator"
	"mockmate/interview/internal/models"
	"mockmate/interview/internal/summary"
)

var (
	// ErrNoSession means no interview has been started (or it was discarded).
	ErrNoSession = errors.New("no active session")
	// ErrNoQuestions means the catalog has no entries for (role, mode).
	ErrNoQuestions = errors.New("no questions available for role and mode")
	// ErrSessionCompleted rejects mutations after the terminal transition.
	ErrSessionCompleted = errors.New("session already completed")
	// ErrEmptyAnswer rejects empty or whitespace-only submissions.
	ErrEmptyAnswer = errors.New("answer text is empty")
	// ErrNotCompleted rejects summary export before completion.
	ErrNotCompleted = errors.New("session not completed")
)

// Manager owns at most one live session plus an in-memory archive of
// completed sessions awaiting summary export. Nothing survives a process
// restart.
type Manager struct {
	mu        sync.Mutex
	catalog   *catalog.Catalog
	evaluator evaluator.Evaluator
	logger    *zap.Logger

	current *models.InterviewSession
	archive []*archiveEntry
}

type archiveEntry struct {
	session  *models.InterviewSession
	exported bool
}

func NewManager(cat *catalog.Catalog, eval evaluator.Evaluator, logger *zap.Logger) *Manager {
	return &Manager{
		catalog:   cat,
		evaluator: eval,
		logger:    logger,
	}
}

// Start creates a fresh session directly in the in-progress state. Any
// existing session is discarded, which is how restart works: a restart is
// not a transition within a session but the creation of a new one.
func (m *Manager) Start(user models.User, config models.InterviewConfig) (*models.InterviewSession, error) {
	questions := m.catalog.GetQuestions(config.Role, config.Mode, config.QuestionCount)
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		m.logger.Info("discarding previous session",
			zap.String("session_id", m.current.ID),
			zap.String("status", string(m.current.Status)))
	}

	m.current = &models.InterviewSession{
		ID:        uuid.New().String(),
		User:      user,
		Config:    config,
		Questions: questions,
		Answers:   []models.Answer{},
		Status:    models.StatusInProgress,
		StartTime: time.Now(),
	}

	m.logger.Info("session started",
		zap.String("session_id", m.current.ID),
		zap.String("role", config.Role),
		zap.String("mode", string(config.Mode)),
		zap.Int("questions", len(questions)))

	return clone(m.current), nil
}

// Current returns a snapshot of the active session.
func (m *Manager) Current() (*models.InterviewSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return nil, ErrNoSession
	}
	return clone(m.current), nil
}

// SubmitAnswer evaluates the text against the current question and upserts
// the resulting answer: any prior answer for the same question is replaced,
// never duplicated. The question index does not move.
func (m *Manager) SubmitAnswer(text string) (*models.InterviewSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return nil, ErrNoSession
	}
	if m.current.IsCompleted() {
		return nil, ErrSessionCompleted
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyAnswer
	}

	question, ok := m.current.CurrentQuestion()
	if !ok {
		// should not occur given the index invariant; guarded, not fatal
		m.logger.Warn("submit with no current question",
			zap.String("session_id", m.current.ID),
			zap.Int("index", m.current.CurrentQuestionIndex))
		return clone(m.current), nil
	}

	evaluation := m.evaluator.Evaluate(*question, text)
	answer := models.Answer{
		QuestionID: question.ID,
		Text:       text,
		Score:      evaluation.Score,
		Feedback:   evaluation.Feedback,
		Timestamp:  time.Now(),
	}

	m.current.Answers = upsert(m.current.Answers, answer)

	m.logger.Info("answer recorded",
		zap.String("session_id", m.current.ID),
		zap.String("question_id", question.ID),
		zap.Int("score", answer.Score))

	return clone(m.current), nil
}

// RetryQuestion drops the current question's answer so it can be answered
// again. The index does not move. Without an existing answer this is a
// no-op, not an error.
func (m *Manager) RetryQuestion() (*models.InterviewSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return nil, ErrNoSession
	}
	if m.current.IsCompleted() {
		return nil, ErrSessionCompleted
	}

	if question, ok := m.current.CurrentQuestion(); ok {
		m.current.Answers = remove(m.current.Answers, question.ID)
	}

	return clone(m.current), nil
}

// AdvanceQuestion moves to the next question, or completes the session
// when already at the last one. No answer is required: skipping leaves no
// answer record and the skipped question is excluded from the final score.
func (m *Manager) AdvanceQuestion() (*models.InterviewSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return nil, ErrNoSession
	}
	if m.current.IsCompleted() {
		return nil, ErrSessionCompleted
	}

	if m.current.CurrentQuestionIndex < len(m.current.Questions)-1 {
		m.current.CurrentQuestionIndex++
		return clone(m.current), nil
	}

	m.complete()
	return clone(m.current), nil
}

// complete performs the terminal transition. Callers hold the lock.
func (m *Manager) complete() {
	s := m.current

	finalScore := summary.FinalScore(s.Answers)
	aggregate := summary.Aggregate(s.Answers)
	now := time.Now()

	s.FinalScore = &finalScore
	s.Summary = &aggregate
	s.Status = models.StatusCompleted
	s.EndTime = &now

	m.archive = append(m.archive, &archiveEntry{session: s})

	m.logger.Info("session completed",
		zap.String("session_id", s.ID),
		zap.Int("final_score", finalScore),
		zap.Int("answers", len(s.Answers)),
		zap.Duration("duration", now.Sub(s.StartTime)))
}

// Export returns the flat summary record for the completed session.
func (m *Manager) Export() (models.SummaryExport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return models.SummaryExport{}, ErrNoSession
	}
	if !m.current.IsCompleted() {
		return models.SummaryExport{}, ErrNotCompleted
	}
	return models.NewSummaryExport(m.current), nil
}

// Reset discards the active session without starting a new one.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		m.logger.Info("session discarded", zap.String("session_id", m.current.ID))
	}
	m.current = nil
}

// UnexportedSessions returns snapshots of completed sessions whose summary
// has not been written out yet.
func (m *Manager) UnexportedSessions() []*models.InterviewSession {
	m.mu.Lock()
	defer m.mu.Unlock()

	var sessions []*models.InterviewSession
	for _, entry := range m.archive {
		if !entry.exported {
			sessions = append(sessions, clone(entry.session))
		}
	}
	return sessions
}

// MarkExported flags archived sessions as exported.
func (m *Manager) MarkExported(sessionIDs []string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make(map[string]bool, len(sessionIDs))
	for _, id := range sessionIDs {
		ids[id] = true
	}
	for _, entry := range m.archive {
		if ids[entry.session.ID] {
			entry.exported = true
		}
	}
}

// upsert replaces any existing answer for the same question, then appends.
func upsert(answers []models.Answer, answer models.Answer) []models.Answer {
	updated := remove(answers, answer.QuestionID)
	return append(updated, answer)
}

func remove(answers []models.Answer, questionID string) []models.Answer {
	kept := make([]models.Answer, 0, len(answers))
	for _, a := range answers {
		if a.QuestionID != questionID {
			kept = append(kept, a)
		}
	}
	return kept
}

// clone returns a snapshot so callers can never mutate manager-owned state.
func clone(s *models.InterviewSession) *models.InterviewSession {
	c := *s
	c.Questions = append([]models.Question(nil), s.Questions...)
	c.Answers = append([]models.Answer(nil), s.Answers...)
	if s.EndTime != nil {
		t := *s.EndTime
		c.EndTime = &t
	}
	if s.FinalScore != nil {
		v := *s.FinalScore
		c.FinalScore = &v
	}
	if s.Summary != nil {
		sum := *s.Summary
		c.Summary = &sum
	}
	return &c
}
