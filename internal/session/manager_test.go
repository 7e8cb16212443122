package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mockmate/interview/internal/catalog"
	"mockmate/interview/internal/models"
)

// scriptedEvaluator returns a fixed score per answer text so completion
// math is deterministic in tests.
type scriptedEvaluator struct {
	scores map[string]int
}

func (e *scriptedEvaluator) Evaluate(q models.Question, text string) models.Evaluation {
	return models.Evaluation{
		Score: e.scores[text],
		Feedback: models.Feedback{
			Strengths:    []string{"strength for " + q.ID},
			Improvements: []string{},
			Suggestions:  []string{},
		},
	}
}

func (e *scriptedEvaluator) Name() string { return "scripted" }

func newTestManager(t *testing.T, scores map[string]int) *Manager {
	t.Helper()
	cat, err := catalog.New()
	require.NoError(t, err)
	return NewManager(cat, &scriptedEvaluator{scores: scores}, zap.NewNop())
}

func startSession(t *testing.T, m *Manager, count int) *models.InterviewSession {
	t.Helper()
	s, err := m.Start(
		models.User{Name: "Dana", Role: "software-engineer"},
		models.InterviewConfig{Role: "software-engineer", Mode: models.ModeTechnical, QuestionCount: count},
	)
	require.NoError(t, err)
	return s
}

func TestStartSession(t *testing.T) {
	m := newTestManager(t, nil)
	s := startSession(t, m, 3)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, models.StatusInProgress, s.Status)
	assert.Equal(t, 0, s.CurrentQuestionIndex)
	assert.Len(t, s.Questions, 3)
	assert.Empty(t, s.Answers)
	assert.False(t, s.StartTime.IsZero())
	assert.Nil(t, s.EndTime)
	assert.Nil(t, s.FinalScore)
	assert.Nil(t, s.Summary)
}

func TestStartTruncatesToAvailableQuestions(t *testing.T) {
	m := newTestManager(t, nil)
	s := startSession(t, m, 10)

	// the bank only has 3 technical software-engineer questions
	assert.Len(t, s.Questions, 3)
	assert.Equal(t, 10, s.Config.QuestionCount)
}

func TestStartUnknownRoleMode(t *testing.T) {
	m := newTestManager(t, nil)

	_, err := m.Start(
		models.User{Name: "Dana", Role: "data-scientist"},
		models.InterviewConfig{Role: "data-scientist", Mode: models.ModeTechnical, QuestionCount: 3},
	)
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestCurrentWithoutSession(t *testing.T) {
	m := newTestManager(t, nil)

	_, err := m.Current()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSubmitAnswerUpsert(t *testing.T) {
	m := newTestManager(t, map[string]int{"first try": 4, "second try": 8})
	startSession(t, m, 3)

	_, err := m.SubmitAnswer("first try")
	require.NoError(t, err)

	s, err := m.SubmitAnswer("second try")
	require.NoError(t, err)

	// resubmission replaces, never appends
	require.Len(t, s.Answers, 1)
	assert.Equal(t, "second try", s.Answers[0].Text)
	assert.Equal(t, 8, s.Answers[0].Score)
	assert.Equal(t, 0, s.CurrentQuestionIndex)
}

func TestRetryLaw(t *testing.T) {
	scores := map[string]int{"old": 2, "new": 6}

	// retry then resubmit...
	m := newTestManager(t, scores)
	startSession(t, m, 3)
	_, err := m.SubmitAnswer("old")
	require.NoError(t, err)
	retried, err := m.RetryQuestion()
	require.NoError(t, err)
	assert.Empty(t, retried.Answers)
	afterRetry, err := m.SubmitAnswer("new")
	require.NoError(t, err)

	// ...must equal a fresh submit from the unanswered state
	fresh := newTestManager(t, scores)
	startSession(t, fresh, 3)
	afterFresh, err := fresh.SubmitAnswer("new")
	require.NoError(t, err)

	require.Len(t, afterRetry.Answers, 1)
	require.Len(t, afterFresh.Answers, 1)
	assert.Equal(t, afterFresh.Answers[0].Text, afterRetry.Answers[0].Text)
	assert.Equal(t, afterFresh.Answers[0].Score, afterRetry.Answers[0].Score)
	assert.Equal(t, afterFresh.Answers[0].QuestionID, afterRetry.Answers[0].QuestionID)
	assert.Equal(t, afterFresh.CurrentQuestionIndex, afterRetry.CurrentQuestionIndex)
}

func TestRetryWithoutAnswerIsNoop(t *testing.T) {
	m := newTestManager(t, nil)
	startSession(t, m, 3)

	s, err := m.RetryQuestion()
	require.NoError(t, err)
	assert.Empty(t, s.Answers)
	assert.Equal(t, 0, s.CurrentQuestionIndex)
}

func TestSubmitEmptyAnswerRejected(t *testing.T) {
	m := newTestManager(t, nil)
	startSession(t, m, 3)

	_, err := m.SubmitAnswer("   \t ")
	assert.ErrorIs(t, err, ErrEmptyAnswer)

	s, err := m.Current()
	require.NoError(t, err)
	assert.Empty(t, s.Answers)
}

func TestSkipAndComplete(t *testing.T) {
	m := newTestManager(t, map[string]int{"answer two": 8, "answer three": 6})
	startSession(t, m, 3)

	// skip question 1 without answering
	s, err := m.AdvanceQuestion()
	require.NoError(t, err)
	assert.Equal(t, 1, s.CurrentQuestionIndex)
	assert.Empty(t, s.Answers)

	_, err = m.SubmitAnswer("answer two")
	require.NoError(t, err)
	s, err = m.AdvanceQuestion()
	require.NoError(t, err)
	assert.Equal(t, 2, s.CurrentQuestionIndex)

	_, err = m.SubmitAnswer("answer three")
	require.NoError(t, err)
	s, err = m.AdvanceQuestion()
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, s.Status)
	require.NotNil(t, s.FinalScore)
	assert.Equal(t, 7, *s.FinalScore) // round((8+6)/2)
	require.NotNil(t, s.Summary)
	require.NotNil(t, s.EndTime)
	assert.False(t, s.EndTime.Before(s.StartTime))

	// the skipped question left no answer record
	assert.Len(t, s.Answers, 2)
	for _, a := range s.Answers {
		assert.NotEqual(t, s.Questions[0].ID, a.QuestionID)
	}
}

func TestCompleteWithNoAnswers(t *testing.T) {
	m := newTestManager(t, nil)
	startSession(t, m, 1)

	s, err := m.AdvanceQuestion()
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, s.Status)
	require.NotNil(t, s.FinalScore)
	assert.Equal(t, 0, *s.FinalScore)
	require.NotNil(t, s.Summary)
}

func TestCompletedSessionIsReadOnly(t *testing.T) {
	m := newTestManager(t, map[string]int{"x": 5})
	startSession(t, m, 1)

	_, err := m.SubmitAnswer("x")
	require.NoError(t, err)
	completed, err := m.AdvanceQuestion()
	require.NoError(t, err)
	require.Equal(t, models.StatusCompleted, completed.Status)

	_, err = m.SubmitAnswer("y")
	assert.ErrorIs(t, err, ErrSessionCompleted)
	_, err = m.RetryQuestion()
	assert.ErrorIs(t, err, ErrSessionCompleted)
	_, err = m.AdvanceQuestion()
	assert.ErrorIs(t, err, ErrSessionCompleted)

	s, err := m.Current()
	require.NoError(t, err)
	assert.Len(t, s.Answers, 1)
	assert.Equal(t, "x", s.Answers[0].Text)
}

func TestIndexNeverDecreases(t *testing.T) {
	m := newTestManager(t, map[string]int{"a": 5})
	startSession(t, m, 3)

	last := 0
	step := func(s *models.InterviewSession) {
		if s.CurrentQuestionIndex < last {
			t.Fatalf("index decreased from %d to %d", last, s.CurrentQuestionIndex)
		}
		last = s.CurrentQuestionIndex
	}

	s, _ := m.SubmitAnswer("a")
	step(s)
	s, _ = m.RetryQuestion()
	step(s)
	s, _ = m.SubmitAnswer("a")
	step(s)
	s, _ = m.AdvanceQuestion()
	step(s)
	s, _ = m.AdvanceQuestion()
	step(s)
}

func TestCompletionGating(t *testing.T) {
	m := newTestManager(t, map[string]int{"a": 5})
	startSession(t, m, 2)

	s, err := m.SubmitAnswer("a")
	require.NoError(t, err)
	assert.Nil(t, s.FinalScore)
	assert.Nil(t, s.Summary)
	assert.Nil(t, s.EndTime)

	_, err = m.AdvanceQuestion()
	require.NoError(t, err)
	s, err = m.AdvanceQuestion()
	require.NoError(t, err)

	assert.NotNil(t, s.FinalScore)
	assert.NotNil(t, s.Summary)
	assert.NotNil(t, s.EndTime)
}

func TestRestartReplacesSession(t *testing.T) {
	m := newTestManager(t, map[string]int{"a": 5})
	first := startSession(t, m, 3)
	_, err := m.SubmitAnswer("a")
	require.NoError(t, err)

	second := startSession(t, m, 3)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Empty(t, second.Answers)

	current, err := m.Current()
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)
}

func TestResetDiscardsSession(t *testing.T) {
	m := newTestManager(t, nil)
	startSession(t, m, 3)

	m.Reset()

	_, err := m.Current()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestExportRequiresCompletion(t *testing.T) {
	m := newTestManager(t, map[string]int{"a": 8})

	_, err := m.Export()
	assert.ErrorIs(t, err, ErrNoSession)

	startSession(t, m, 1)
	_, err = m.Export()
	assert.ErrorIs(t, err, ErrNotCompleted)

	_, err = m.SubmitAnswer("a")
	require.NoError(t, err)
	_, err = m.AdvanceQuestion()
	require.NoError(t, err)

	export, err := m.Export()
	require.NoError(t, err)
	assert.Equal(t, "Dana", export.Candidate)
	assert.Equal(t, "8/10", export.FinalScore)
	assert.Equal(t, 1, export.Questions)
}

func TestUnexportedSessionsLifecycle(t *testing.T) {
	m := newTestManager(t, map[string]int{"a": 5})
	startSession(t, m, 1)

	assert.Empty(t, m.UnexportedSessions())

	_, err := m.SubmitAnswer("a")
	require.NoError(t, err)
	completed, err := m.AdvanceQuestion()
	require.NoError(t, err)

	pending := m.UnexportedSessions()
	require.Len(t, pending, 1)
	assert.Equal(t, completed.ID, pending[0].ID)

	m.MarkExported([]string{completed.ID})
	assert.Empty(t, m.UnexportedSessions())
}

func TestSnapshotsAreIsolated(t *testing.T) {
	m := newTestManager(t, map[string]int{"a": 5})
	s := startSession(t, m, 3)

	// mutating a snapshot must not leak into manager state
	s.Questions[0].Text = "mutated"
	s.CurrentQuestionIndex = 99

	current, err := m.Current()
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", current.Questions[0].Text)
	assert.Equal(t, 0, current.CurrentQuestionIndex)
}
