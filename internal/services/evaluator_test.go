package services

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"go.uber.org/zap"

	"alfredoptarigan/interview-simulator/internal/models"
)

var sampleQA = []models.QA{
	{Question: "What is a goroutine?", Answer: "A lightweight thread managed by the Go runtime."},
	{Question: "Explain channels.", Answer: ""},
}

func TestEvaluateKeepsFullStructuredResult(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{response: "Sure! ```json\n" + `{
  "summary": "Solid fundamentals.",
  "positives": ["clear", "concise", "accurate"],
  "improvements": ["depth"],
  "preparation_needed": ["channels", "select"],
  "detailed_evaluation": "Good start.",
  "score": 7,
  "feedback": "Keep practicing."
}` + "\n```"}

	e := NewEvaluator(stub, 1500, 2000, zap.NewNop())
	got := e.Evaluate(context.Background(), "resume", "jd", sampleQA)

	if got.Source != models.SourceAI {
		t.Fatalf("expected ai source, got %q", got.Source)
	}
	if got.Score != 7 || got.Summary != "Solid fundamentals." || got.Feedback != "Keep practicing." {
		t.Fatalf("unexpected evaluation: %+v", got)
	}
	if len(got.Positives) != 3 || len(got.Improvements) != 1 || len(got.PreparationNeeded) != 2 {
		t.Fatalf("list fields not carried over: %+v", got)
	}
	if got.DetailedEvaluation != "Good start." {
		t.Fatalf("unexpected detailed evaluation: %q", got.DetailedEvaluation)
	}
	if !strings.Contains(stub.lastPrompt, "What is a goroutine?") {
		t.Fatalf("transcript missing from prompt")
	}
}

func TestEvaluateFallsBackToHeuristic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ai   TextGenerator
	}{
		{name: "no ai", ai: nil},
		{name: "call error", ai: &stubGenerator{err: errors.New("unavailable")}},
		{name: "unrecoverable text", ai: &stubGenerator{response: "I cannot evaluate this."}},
		{name: "missing score", ai: &stubGenerator{response: `{"summary": "no score here"}`}},
		{name: "non numeric score", ai: &stubGenerator{response: `{"score": "great", "summary": "x"}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := NewEvaluator(tt.ai, 1500, 2000, zap.NewNop())
			got := e.Evaluate(context.Background(), "", "", sampleQA)
			if got.Source != models.SourceHeuristic {
				t.Fatalf("expected heuristic, got %+v", got)
			}
			if got.Score != 5 {
				t.Fatalf("expected score 5 for 1 of 2 answered, got %d", got.Score)
			}
		})
	}
}

func TestEvaluateClampsScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		response        string
		wantInterview   int
		wantSuitability int
	}{
		{name: "in range", response: `{"score": 7, "summary": "s"}`, wantInterview: 7, wantSuitability: 7},
		{name: "above interview range", response: `{"score": 42, "summary": "s"}`, wantInterview: 10, wantSuitability: 42},
		{name: "above both ranges", response: `{"score": 250, "summary": "s"}`, wantInterview: 10, wantSuitability: 100},
		{name: "negative", response: `{"score": -3, "summary": "s"}`, wantInterview: 0, wantSuitability: 0},
		{name: "huge number", response: `{"score": 1e20, "summary": "s"}`, wantInterview: 10, wantSuitability: 100},
		{name: "huge numeric string", response: `{"score": "1e300", "summary": "s"}`, wantInterview: 10, wantSuitability: 100},
		{name: "infinity literal", response: `{score: Infinity, summary: 's'}`, wantInterview: 10, wantSuitability: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := NewEvaluator(&stubGenerator{response: tt.response}, 1500, 2000, zap.NewNop())

			eval := e.Evaluate(context.Background(), "", "", sampleQA)
			if eval.Source != models.SourceAI || eval.Score != tt.wantInterview {
				t.Fatalf("interview: expected ai score %d, got %+v", tt.wantInterview, eval)
			}

			fit := e.Analyze(context.Background(), "", "")
			if fit.Score == nil || *fit.Score != tt.wantSuitability {
				t.Fatalf("suitability: expected score %d, got %v", tt.wantSuitability, fit.Score)
			}
		})
	}
}

func TestNaNScoreIsRejected(t *testing.T) {
	t.Parallel()

	e := NewEvaluator(&stubGenerator{response: `{"score": "NaN", "summary": "s"}`}, 1500, 2000, zap.NewNop())

	eval := e.Evaluate(context.Background(), "", "", sampleQA)
	if eval.Source != models.SourceHeuristic || eval.Score != 5 {
		t.Fatalf("expected heuristic fallback, got %+v", eval)
	}

	fit := e.Analyze(context.Background(), "", "")
	if fit.Score != nil {
		t.Fatalf("expected no suitability score, got %d", *fit.Score)
	}
	if fit.Summary != "s" {
		t.Fatalf("expected the other fields to survive, got %+v", fit)
	}
}

func TestCoerceScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     any
		want   int
		wantOK bool
	}{
		{name: "float rounds", in: 6.6, want: 7, wantOK: true},
		{name: "numeric string", in: " 4 ", want: 4, wantOK: true},
		{name: "positive infinity", in: math.Inf(1), want: 10, wantOK: true},
		{name: "negative infinity", in: math.Inf(-1), want: 0, wantOK: true},
		{name: "infinity string", in: "Inf", want: 10, wantOK: true},
		{name: "nan float", in: math.NaN(), wantOK: false},
		{name: "nan string", in: "NaN", wantOK: false},
		{name: "nan json number", in: json.Number("NaN"), wantOK: false},
		{name: "not a number", in: "great", wantOK: false},
		{name: "missing", in: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := coerceScore(tt.in, 0, 10)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Fatalf("expected (%d, %v), got (%d, %v)", tt.want, tt.wantOK, got, ok)
			}
		})
	}
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	t.Run("parsed response", func(t *testing.T) {
		t.Parallel()

		stub := &stubGenerator{response: "```json\n{\"score\": \"85\", \"summary\": \"Strong match.\", \"strengths\": [\"Go\"], \"weaknesses\": [], \"recommendations\": \"Learn Kubernetes\"}\n```"}
		got := NewEvaluator(stub, 1500, 5, zap.NewNop()).Analyze(context.Background(), "resume text long", "jd")

		if got.Score == nil || *got.Score != 85 {
			t.Fatalf("expected score 85, got %v", got.Score)
		}
		if got.Summary != "Strong match." || len(got.Strengths) != 1 || len(got.Weaknesses) != 0 {
			t.Fatalf("unexpected result: %+v", got)
		}
		if len(got.Recommendations) != 1 || got.Recommendations[0] != "Learn Kubernetes" {
			t.Fatalf("expected single recommendation, got %q", got.Recommendations)
		}
		if strings.Contains(stub.lastPrompt, "resume text long") {
			t.Fatalf("suitability prompt was not truncated")
		}
	})

	t.Run("unparseable keeps raw summary", func(t *testing.T) {
		t.Parallel()

		stub := &stubGenerator{response: "```\nThe candidate looks promising.\n```"}
		got := NewEvaluator(stub, 1500, 2000, zap.NewNop()).Analyze(context.Background(), "", "")
		if got.Score != nil {
			t.Fatalf("expected nil score, got %d", *got.Score)
		}
		if got.Summary != "The candidate looks promising." {
			t.Fatalf("unexpected summary: %q", got.Summary)
		}
	})

	t.Run("call error yields empty result", func(t *testing.T) {
		t.Parallel()

		got := NewEvaluator(&stubGenerator{err: errors.New("boom")}, 1500, 2000, zap.NewNop()).Analyze(context.Background(), "", "")
		if got.Score != nil || got.Summary != "" || got.Strengths == nil {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}
