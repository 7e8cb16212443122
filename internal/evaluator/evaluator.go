package evaluator

import "mockmate/interview/internal/models"

// Evaluator scores one answer against one question. Implementations must
// be pure: identical inputs always produce identical output.
type Evaluator interface {
	Evaluate(question models.Question, answerText string) models.Evaluation
	Name() string
}

// EvaluatorError represents a failure inside an evaluator strategy.
type EvaluatorError struct {
	Evaluator string
	Message   string
	Err       error
}

func (e *EvaluatorError) Error() string {
	if e.Err != nil {
		return e.Evaluator + " error: " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Evaluator + " error: " + e.Message
}
