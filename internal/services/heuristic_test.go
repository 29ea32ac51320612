package services

import (
	"strings"
	"testing"

	"alfredoptarigan/interview-simulator/internal/models"
)

func TestHeuristicEvaluate(t *testing.T) {
	t.Parallel()

	answer := func(answers ...string) []models.QA {
		qa := make([]models.QA, len(answers))
		for i, a := range answers {
			qa[i] = models.QA{Question: "q", Answer: a}
		}
		return qa
	}

	tests := []struct {
		name      string
		qa        []models.QA
		wantScore int
		wantRatio string
	}{
		{name: "empty list", qa: nil, wantScore: 0, wantRatio: "0 out of 1"},
		{name: "all answered", qa: answer("a", "b", "c"), wantScore: 10, wantRatio: "3 out of 3"},
		{name: "whitespace is not an answer", qa: answer("  ", "\t\n", "yes"), wantScore: 3, wantRatio: "1 out of 3"},
		{name: "half rounds to even", qa: answer("a", "", "", ""), wantScore: 2, wantRatio: "1 out of 4"},
		{name: "three of four", qa: answer("a", "b", "c", ""), wantScore: 8, wantRatio: "3 out of 4"},
		{name: "none answered", qa: answer("", ""), wantScore: 0, wantRatio: "0 out of 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := HeuristicEvaluate(tt.qa)
			if got.Score != tt.wantScore {
				t.Fatalf("expected score %d, got %d", tt.wantScore, got.Score)
			}
			if got.Score < 0 || got.Score > 10 {
				t.Fatalf("score out of range: %d", got.Score)
			}
			if !strings.Contains(got.Feedback, "Provided answers for "+tt.wantRatio+" questions.") {
				t.Fatalf("unexpected feedback: %q", got.Feedback)
			}
			if got.Source != models.SourceHeuristic {
				t.Fatalf("expected heuristic source, got %q", got.Source)
			}
		})
	}
}
