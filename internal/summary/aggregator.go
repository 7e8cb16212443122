// Package summary reduces a completed session's answers into the final
// aggregate: deduplicated strengths and improvements, score-banded
// recommendations and an overall verdict.
package summary

import (
	"math"

	"mockmate/interview/internal/models"
)

const maxHighlights = 4

// Aggregate builds the session summary from the recorded answers. It is
// pure and invoked exactly once, at the transition into the completed
// state. An empty answer set lands in the lowest band.
func Aggregate(answers []models.Answer) models.Summary {
	var allStrengths, allImprovements []string
	for _, a := range answers {
		allStrengths = append(allStrengths, a.Feedback.Strengths...)
		allImprovements = append(allImprovements, a.Feedback.Improvements...)
	}

	avg := meanScore(answers)

	return models.Summary{
		Strengths:       dedupe(allStrengths, maxHighlights),
		Improvements:    dedupe(allImprovements, maxHighlights),
		Recommendations: recommendations(avg),
		OverallFeedback: overallFeedback(avg),
	}
}

// FinalScore is the rounded mean over recorded answers only. Skipped
// questions leave no answer and so do not drag the average down; with no
// answers at all the score falls back to 0.
func FinalScore(answers []models.Answer) int {
	if len(answers) == 0 {
		return 0
	}
	return int(math.Round(meanScore(answers)))
}

// ScoreLabel maps a 0-10 score to its display label.
func ScoreLabel(score int) string {
	switch {
	case score >= 8:
		return "Excellent"
	case score >= 6:
		return "Good"
	case score >= 4:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}

func meanScore(answers []models.Answer) float64 {
	if len(answers) == 0 {
		return 0
	}
	total := 0
	for _, a := range answers {
		total += a.Score
	}
	return float64(total) / float64(len(answers))
}

func recommendations(avg float64) []string {
	switch {
	case avg >= 8:
		return []string{
			"Continue practicing advanced topics",
			"Consider mentoring others to reinforce your knowledge",
		}
	case avg >= 6:
		return []string{
			"Focus on providing more detailed examples",
			"Practice system design and architecture questions",
		}
	default:
		return []string{
			"Practice more technical fundamentals",
			"Work on communication and explanation skills",
		}
	}
}

func overallFeedback(avg float64) string {
	switch {
	case avg >= 8:
		return "Excellent performance! You demonstrate strong technical knowledge and communication skills."
	case avg >= 6:
		return "Good performance with room for improvement. Focus on the areas highlighted below."
	default:
		return "There's significant room for improvement. Consider additional preparation in the fundamental areas."
	}
}

// dedupe keeps the first occurrence of each entry, preserving order, up to
// the cap.
func dedupe(entries []string, limit int) []string {
	seen := make(map[string]bool, len(entries))
	unique := []string{}
	for _, entry := range entries {
		if seen[entry] {
			continue
		}
		seen[entry] = true
		unique = append(unique, entry)
		if len(unique) == limit {
			break
		}
	}
	return unique
}
