package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func sampleSession() *InterviewSession {
	start := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	return &InterviewSession{
		ID:     "session-1",
		User:   User{Name: "Dana", Role: "software-engineer"},
		Config: InterviewConfig{Role: "software-engineer", Mode: ModeTechnical, QuestionCount: 2},
		Questions: []Question{
			{ID: "q1", Text: "First question", Type: ModeTechnical, Category: "data-structures", Difficulty: DifficultyMedium, ExpectedAnswerPoints: []string{"secret point"}},
			{ID: "q2", Text: "Second question", Type: ModeTechnical, Category: "algorithms", Difficulty: DifficultyMedium, ExpectedAnswerPoints: []string{"another secret"}},
		},
		Answers:              []Answer{},
		CurrentQuestionIndex: 1,
		Status:               StatusInProgress,
		StartTime:            start,
	}
}

func TestNewSessionViewStripsAnswerPoints(t *testing.T) {
	view := NewSessionView(sampleSession())

	data, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("failed to marshal view: %v", err)
	}
	if strings.Contains(string(data), "secret") {
		t.Error("session view must not expose expected answer points")
	}
}

func TestNewSessionViewCurrentQuestion(t *testing.T) {
	view := NewSessionView(sampleSession())

	if view.CurrentQuestion == nil {
		t.Fatal("expected a current question while in progress")
	}
	if view.CurrentQuestion.ID != "q2" {
		t.Errorf("expected current question q2, got %s", view.CurrentQuestion.ID)
	}
}

func TestNewSessionViewCompletedHasNoCurrentQuestion(t *testing.T) {
	s := sampleSession()
	s.Status = StatusCompleted

	view := NewSessionView(s)
	if view.CurrentQuestion != nil {
		t.Error("completed session view must not have a current question")
	}
}

func TestNewSummaryExport(t *testing.T) {
	s := sampleSession()
	end := s.StartTime.Add(7*time.Minute + 30*time.Second)
	score := 7
	s.Status = StatusCompleted
	s.EndTime = &end
	s.FinalScore = &score
	s.Summary = &Summary{OverallFeedback: "Good performance with room for improvement. Focus on the areas highlighted below."}

	export := NewSummaryExport(s)

	if export.Candidate != "Dana" {
		t.Errorf("expected candidate Dana, got %s", export.Candidate)
	}
	if export.Duration != "7 minutes" {
		t.Errorf("expected duration 7 minutes, got %s", export.Duration)
	}
	if export.FinalScore != "7/10" {
		t.Errorf("expected final score 7/10, got %s", export.FinalScore)
	}
	if export.Questions != 2 {
		t.Errorf("expected 2 questions, got %d", export.Questions)
	}
	if export.Completed != "2025-03-10" {
		t.Errorf("expected completed date 2025-03-10, got %s", export.Completed)
	}
	if export.Summary.OverallFeedback == "" {
		t.Error("expected the summary to be carried into the export")
	}
}
