package services

import (
	"encoding/json"
	"testing"

	"go.uber.org/zap"
)

func TestRecoverJSONStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		wantOK      bool
		wantScore   float64
		wantSummary string
	}{
		{
			name:        "fenced block surrounded by prose",
			input:       "noise ```json {\"score\": 7, \"summary\": \"ok\"} ``` noise",
			wantOK:      true,
			wantScore:   7,
			wantSummary: "ok",
		},
		{
			name:        "bare object with prose",
			input:       "Here you go: {\"score\": 3, \"summary\": \"fine\"} Thanks!",
			wantOK:      true,
			wantScore:   3,
			wantSummary: "fine",
		},
		{
			name:        "unlabelled fence falls through to bracket span",
			input:       "```\n{\"score\": 1, \"summary\": \"x\"}\n```",
			wantOK:      true,
			wantScore:   1,
			wantSummary: "x",
		},
		{
			name:        "smart quotes are normalized",
			input:       "{“score”: 5, “summary”: “candidate’s answer”}",
			wantOK:      true,
			wantScore:   5,
			wantSummary: "candidate's answer",
		},
		{
			name:        "raw newlines inside strings are flattened",
			input:       "{\"score\": 6, \"summary\": \"line one\nline two\"}",
			wantOK:      true,
			wantScore:   6,
			wantSummary: "line one line two",
		},
		{name: "no braces", input: "the model refused to answer", wantOK: false},
		{name: "inverted braces", input: "} nothing here {", wantOK: false},
		{name: "empty input", input: "   ", wantOK: false},
		{name: "single quotes rejected by strict chain", input: "{'score': 4}", wantOK: false},
		{name: "broken fenced json", input: "```json {\"score\": } ```", wantOK: false},
		{name: "broken fenced json ends the chain", input: "```json score: 1 ``` {\"score\": 2, \"summary\": \"later\"}", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			obj, err := RecoverJSON(tt.input, StrictRecovery())
			if !tt.wantOK {
				if err == nil {
					t.Fatalf("expected failure, got %v", obj)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if obj["score"] != tt.wantScore {
				t.Fatalf("expected score %v, got %v", tt.wantScore, obj["score"])
			}
			if obj["summary"] != tt.wantSummary {
				t.Fatalf("expected summary %q, got %q", tt.wantSummary, obj["summary"])
			}
		})
	}
}

func TestRecoverJSONLenient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantScore float64
		check     func(t *testing.T, obj map[string]any)
	}{
		{
			name:      "python style literal",
			input:     "{'score': 8, 'summary': 'good', 'hired': True, 'notes': None}",
			wantScore: 8,
			check: func(t *testing.T, obj map[string]any) {
				if obj["hired"] != true {
					t.Fatalf("expected hired=true, got %v", obj["hired"])
				}
				if v, ok := obj["notes"]; !ok || v != nil {
					t.Fatalf("expected notes=null, got %v", v)
				}
			},
		},
		{
			name:      "escaped newlines between tokens",
			input:     `{"score": 4,\n"summary": "short"}`,
			wantScore: 4,
		},
		{
			name:      "fence lines and trailing comma",
			input:     "```json\n{\"score\": 9, \"positives\": [\"a\", \"b\",],}\n```",
			wantScore: 9,
			check: func(t *testing.T, obj map[string]any) {
				list, ok := obj["positives"].([]any)
				if !ok || len(list) != 2 {
					t.Fatalf("expected two positives, got %v", obj["positives"])
				}
			},
		},
		{
			name:      "broken fenced json falls through to bracket span",
			input:     "```json score: 1 ``` {\"score\": 2, \"summary\": \"later\"}",
			wantScore: 2,
		},
		{
			name:      "python literal words inside strings are kept",
			input:     "{'score': 2, 'summary': 'None of the answers were True'}",
			wantScore: 2,
			check: func(t *testing.T, obj map[string]any) {
				if obj["summary"] != "None of the answers were True" {
					t.Fatalf("string content rewritten: %q", obj["summary"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			obj, err := RecoverJSON(tt.input, LenientRecovery())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if obj["score"] != tt.wantScore {
				t.Fatalf("expected score %v, got %v", tt.wantScore, obj["score"])
			}
			if tt.check != nil {
				tt.check(t, obj)
			}
		})
	}
}

func TestNormalizeQuotesYieldsValidJSON(t *testing.T) {
	t.Parallel()

	in := "{“score”: 5, “summary”: “candidate’s answer”}"
	out := NormalizeQuotes(in)
	if !json.Valid([]byte(out)) {
		t.Fatalf("expected valid JSON after normalization, got %s", out)
	}
}

func TestResponseRecovererNeverFailsLoudly(t *testing.T) {
	t.Parallel()

	r := NewResponseRecoverer(zap.NewNop())

	if obj, ok := r.Recover("no json at all"); ok || obj != nil {
		t.Fatalf("expected no result, got %v", obj)
	}

	obj, ok := r.Recover("```json {\"score\": 10} ```")
	if !ok || obj["score"] != float64(10) {
		t.Fatalf("expected score 10, got %v (ok=%v)", obj, ok)
	}
}

func TestRewritePythonLiterals(t *testing.T) {
	t.Parallel()

	got := rewritePythonLiterals(`{'a': True, 'b': False, 'c': None, 'Nonesuch': 'x', "d": "True"}`)
	want := `{'a': true, 'b': false, 'c': null, 'Nonesuch': 'x', "d": "True"}`
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
