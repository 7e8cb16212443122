package models

import "strings"

const (
	DefaultQuestionCount = 3
	MaxQuestionCount     = 10
)

// StartSessionRequest configures a new interview session. Starting while a
// session already exists discards the old one (restart semantics).
type StartSessionRequest struct {
	Name          string `json:"name"`
	Role          string `json:"role"`
	Domain        string `json:"domain"`
	Mode          Mode   `json:"mode"`
	QuestionCount int    `json:"question_count"`
}

// implements the Validator interface
func (r *StartSessionRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &ErrorResponse{
			Code:    "missing_name",
			Message: "Name field is required",
		}
	}

	if r.Role == "" {
		return &ErrorResponse{
			Code:    "missing_role",
			Message: "Role field is required",
		}
	}

	if r.Mode != ModeTechnical && r.Mode != ModeBehavioral {
		return &ErrorResponse{
			Code:    "invalid_mode",
			Message: "Mode must be one of: technical, behavioral",
		}
	}

	// default when omitted
	if r.QuestionCount == 0 {
		r.QuestionCount = DefaultQuestionCount
	}

	if r.QuestionCount < 1 || r.QuestionCount > MaxQuestionCount {
		return &ErrorResponse{
			Code:    "invalid_question_count",
			Message: "Question count must be between 1 and 10",
		}
	}

	return nil
}

// SubmitAnswerRequest carries the raw answer text for the current question.
type SubmitAnswerRequest struct {
	Text string `json:"text"`
}

func (r *SubmitAnswerRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return &ErrorResponse{
			Code:    "empty_answer",
			Message: "Answer text must not be empty",
		}
	}
	return nil
}
