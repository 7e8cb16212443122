// Package keyword implements the heuristic evaluator: an answer is scored
// by loose keyword overlap with the question's expected answer points. It
// is not natural-language understanding and does not try to be; the
// evaluator registry is the seam where a smarter scorer would plug in.
package keyword

import (
	"strings"

	"mockmate/interview/internal/evaluator"
	"mockmate/interview/internal/models"
)

const Name = "keyword"

func init() {
	evaluator.Register(Name, func() (evaluator.Evaluator, error) {
		return New(), nil
	})
}

const (
	pointScore     = 2   // per matched expected point
	maxScore       = 10  // final score clamp
	strengthCutoff = 2   // only the first points produce strengths
	lowScore       = 6   // threshold for extra suggestions
	lengthBonusAt  = 100 // answer length for the first +1
	longBonusAt    = 300 // answer length for the second +1
)

type Evaluator struct{}

func New() *Evaluator { return &Evaluator{} }

func (e *Evaluator) Name() string { return Name }

// Evaluate tokenizes the answer and checks each expected point for a loose
// match: any point token that contains, or is contained in, any answer
// token counts. Matched points add to the score and the leading ones
// surface as strengths; missed points surface as improvements.
func (e *Evaluator) Evaluate(question models.Question, answerText string) models.Evaluation {
	answerTokens := tokenize(answerText)

	eval := models.Evaluation{
		Feedback: models.Feedback{
			Strengths:    []string{},
			Improvements: []string{},
			Suggestions:  []string{},
		},
	}

	score := 0
	for i, point := range question.ExpectedAnswerPoints {
		if overlaps(tokenize(point), answerTokens) {
			score += pointScore
			if i < strengthCutoff {
				eval.Strengths = append(eval.Strengths, "Good understanding of "+firstWords(point, 3))
			}
		} else {
			eval.Improvements = append(eval.Improvements, "Consider elaborating on "+firstWords(point, 3))
		}
	}

	// length bonuses are cumulative
	if len(answerText) > lengthBonusAt {
		score++
	}
	if len(answerText) > longBonusAt {
		score++
	}
	if score > maxScore {
		score = maxScore
	}
	eval.Score = score

	// Suggestion checks run against the raw answer text on purpose: an
	// uppercase "Example" does not count as mentioning one.
	if question.Type == models.ModeTechnical {
		if score < lowScore {
			eval.Suggestions = append(eval.Suggestions,
				"Review fundamental concepts in this area",
				"Practice explaining technical concepts clearly")
		}
		if !strings.Contains(answerText, "example") && !strings.Contains(answerText, "for instance") {
			eval.Suggestions = append(eval.Suggestions, "Include concrete examples to illustrate your points")
		}
	} else {
		if !strings.Contains(answerText, "situation") && !strings.Contains(answerText, "context") {
			eval.Suggestions = append(eval.Suggestions, "Use the STAR method: Situation, Task, Action, Result")
		}
		if score < lowScore {
			eval.Suggestions = append(eval.Suggestions, "Provide more specific details about your actions and outcomes")
		}
	}

	return eval
}

// tokenize lowercases and splits on whitespace. Empty or whitespace-only
// input yields no tokens, so it can never substring-match anything.
func tokenize(s string) []string {
	return strings.Fields(strings.ToLower(s))
}

// overlaps reports whether any (point token, answer token) pair is such
// that one is a substring of the other.
func overlaps(pointTokens, answerTokens []string) bool {
	for _, pt := range pointTokens {
		for _, at := range answerTokens {
			if strings.Contains(at, pt) || strings.Contains(pt, at) {
				return true
			}
		}
	}
	return false
}

func firstWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}
