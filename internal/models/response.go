package models

import (
	"fmt"
	"time"
)

// uniform error payload
type ErrorResponse struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Details []ValidationErrorDetail `json:"details,omitempty"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

// a single field error
type ValidationErrorDetail struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// QuestionView is a Question as exposed to clients: the expected answer
// points are the scoring key and must never leave the server.
type QuestionView struct {
	ID         string     `json:"id"`
	Text       string     `json:"text"`
	Type       Mode       `json:"type"`
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
}

// SessionView is the client-facing rendering of a session.
type SessionView struct {
	ID                   string          `json:"id"`
	User                 User            `json:"user"`
	Config               InterviewConfig `json:"config"`
	Questions            []QuestionView  `json:"questions"`
	Answers              []Answer        `json:"answers"`
	CurrentQuestionIndex int             `json:"current_question_index"`
	CurrentQuestion      *QuestionView   `json:"current_question,omitempty"`
	Status               SessionStatus   `json:"status"`
	StartTime            time.Time       `json:"start_time"`
	EndTime              *time.Time      `json:"end_time,omitempty"`
	FinalScore           *int            `json:"final_score,omitempty"`
	ScoreLabel           string          `json:"score_label,omitempty"`
	Summary              *Summary        `json:"summary,omitempty"`
}

// NewSessionView strips the expected answer points from the session's
// questions and resolves the current question pointer.
func NewSessionView(s *InterviewSession) SessionView {
	questions := make([]QuestionView, len(s.Questions))
	for i, q := range s.Questions {
		questions[i] = QuestionView{
			ID:         q.ID,
			Text:       q.Text,
			Type:       q.Type,
			Category:   q.Category,
			Difficulty: q.Difficulty,
		}
	}

	view := SessionView{
		ID:                   s.ID,
		User:                 s.User,
		Config:               s.Config,
		Questions:            questions,
		Answers:              s.Answers,
		CurrentQuestionIndex: s.CurrentQuestionIndex,
		Status:               s.Status,
		StartTime:            s.StartTime,
		EndTime:              s.EndTime,
		FinalScore:           s.FinalScore,
		Summary:              s.Summary,
	}
	if s.Status == StatusInProgress && s.CurrentQuestionIndex < len(questions) {
		view.CurrentQuestion = &questions[s.CurrentQuestionIndex]
	}
	return view
}

// SummaryExport is the flat record written out for a completed session.
type SummaryExport struct {
	Candidate  string  `json:"candidate"`
	Role       string  `json:"role"`
	Mode       Mode    `json:"mode"`
	Duration   string  `json:"duration"`
	FinalScore string  `json:"final_score"`
	Questions  int     `json:"questions"`
	Completed  string  `json:"completed"`
	Summary    Summary `json:"summary"`
}

// NewSummaryExport builds the export record from a completed session.
// Callers must not pass a session that has not completed.
func NewSummaryExport(s *InterviewSession) SummaryExport {
	export := SummaryExport{
		Candidate: s.User.Name,
		Role:      s.Config.Role,
		Mode:      s.Config.Mode,
		Questions: len(s.Questions),
	}
	if s.FinalScore != nil {
		export.FinalScore = fmt.Sprintf("%d/10", *s.FinalScore)
	}
	if s.EndTime != nil {
		minutes := int(s.EndTime.Sub(s.StartTime).Minutes())
		export.Duration = fmt.Sprintf("%d minutes", minutes)
		export.Completed = s.EndTime.Format("2006-01-02")
	}
	if s.Summary != nil {
		export.Summary = *s.Summary
	}
	return export
}

// RolesResponse wraps the role/domain catalog.
type RolesResponse struct {
	Roles []RoleInfo `json:"roles"`
}
