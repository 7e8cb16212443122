package models

import "time"

// Mode is the interview mode. It doubles as the question type since a
// session only ever draws questions of its own mode.
type Mode string

const (
	ModeTechnical  Mode = "technical"
	ModeBehavioral Mode = "behavioral"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// SessionStatus describes the lifecycle state of an interview session.
// Transitions are forward-only: a session never reverts to an earlier state.
type SessionStatus string

const (
	// StatusSetup represents the configuration screen before a session
	// object exists. Sessions are constructed directly into in-progress,
	// so this state is never assigned server-side.
	StatusSetup      SessionStatus = "setup"
	StatusInProgress SessionStatus = "in-progress"
	StatusCompleted  SessionStatus = "completed"
)

// Question is a single catalog entry. Loaded once from the embedded bank
// and never mutated afterwards.
type Question struct {
	ID                   string     `json:"id" yaml:"id"`
	Text                 string     `json:"text" yaml:"text"`
	Type                 Mode       `json:"type" yaml:"-"`
	Category             string     `json:"category" yaml:"category"`
	Difficulty           Difficulty `json:"difficulty" yaml:"difficulty"`
	ExpectedAnswerPoints []string   `json:"expected_answer_points,omitempty" yaml:"expected_answer_points"`
}

// Feedback is the structured per-answer feedback produced by an evaluator.
type Feedback struct {
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Suggestions  []string `json:"suggestions"`
}

// Evaluation is the scored feedback for one answer text.
type Evaluation struct {
	Score int `json:"score"` // 0-10
	Feedback
}

// Answer records one submitted response. A session holds at most one
// Answer per question id; a resubmission replaces the prior one.
type Answer struct {
	QuestionID string    `json:"question_id"`
	Text       string    `json:"text"`
	Score      int       `json:"score"`
	Feedback   Feedback  `json:"feedback"`
	Timestamp  time.Time `json:"timestamp"`
}

type User struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Domain string `json:"domain,omitempty"`
}

// InterviewConfig is fixed at session creation. QuestionCount is the
// requested count; the session may hold fewer when the catalog has less.
type InterviewConfig struct {
	Role          string `json:"role"`
	Domain        string `json:"domain,omitempty"`
	Mode          Mode   `json:"mode"`
	QuestionCount int    `json:"question_count"`
}

// Summary is the aggregate produced once, at the transition into the
// completed state.
type Summary struct {
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	Recommendations []string `json:"recommendations"`
	OverallFeedback string   `json:"overall_feedback"`
}

// InterviewSession is the aggregate root for one interview attempt.
// Questions and Config are immutable after creation. EndTime, FinalScore
// and Summary are set exactly once, on completion, after which the whole
// session is read-only.
type InterviewSession struct {
	ID                   string          `json:"id"`
	User                 User            `json:"user"`
	Config               InterviewConfig `json:"config"`
	Questions            []Question      `json:"questions"`
	Answers              []Answer        `json:"answers"`
	CurrentQuestionIndex int             `json:"current_question_index"`
	Status               SessionStatus   `json:"status"`
	StartTime            time.Time       `json:"start_time"`
	EndTime              *time.Time      `json:"end_time,omitempty"`
	FinalScore           *int            `json:"final_score,omitempty"`
	Summary              *Summary        `json:"summary,omitempty"`
}

// CurrentQuestion returns the question the session currently points at,
// or false when the index is out of range.
func (s *InterviewSession) CurrentQuestion() (*Question, bool) {
	if s.CurrentQuestionIndex < 0 || s.CurrentQuestionIndex >= len(s.Questions) {
		return nil, false
	}
	return &s.Questions[s.CurrentQuestionIndex], true
}

// AnswerFor returns the live answer for a question id, if any.
func (s *InterviewSession) AnswerFor(questionID string) (*Answer, bool) {
	for i := range s.Answers {
		if s.Answers[i].QuestionID == questionID {
			return &s.Answers[i], true
		}
	}
	return nil, false
}

// IsCompleted reports whether the session has reached its terminal state.
func (s *InterviewSession) IsCompleted() bool {
	return s.Status == StatusCompleted
}

// RoleInfo is one entry of the role/domain catalog shown on the setup form.
type RoleInfo struct {
	Value   string   `json:"value" yaml:"value"`
	Label   string   `json:"label" yaml:"label"`
	Domains []string `json:"domains" yaml:"domains"`
}
