package models

import (
	"encoding/json"
	"strings"
)

// QA is a single question/answer pair from an interview transcript.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// UnmarshalJSON accepts both {"question","answer"} and the short {"q","a"} keys.
func (qa *QA) UnmarshalJSON(data []byte) error {
	var raw struct {
		Question *string `json:"question"`
		Answer   *string `json:"answer"`
		Q        *string `json:"q"`
		A        *string `json:"a"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	qa.Question = firstNonNil(raw.Question, raw.Q)
	qa.Answer = firstNonNil(raw.Answer, raw.A)
	return nil
}

// Answered reports whether the answer carries anything besides whitespace.
func (qa QA) Answered() bool {
	return strings.TrimSpace(qa.Answer) != ""
}

func firstNonNil(values ...*string) string {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return ""
}

type RegisterRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type UploadPathsRequest struct {
	ResumePath string `json:"resume_path" form:"resume_path" validate:"required"`
	JDPath     string `json:"jd_path" form:"jd_path" validate:"required"`
}

type SubmitRequest struct {
	UploadID uint `json:"upload_id" validate:"required"`
	QAList   []QA `json:"qa_list" validate:"required,min=1"`
}

type QuestionsResponse struct {
	UploadID  uint     `json:"upload_id"`
	Questions []string `json:"questions"`
}

type AccountResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// InterviewEvaluation is the full structured assessment of a submitted interview.
type InterviewEvaluation struct {
	Score              int      `json:"score"`
	Summary            string   `json:"summary"`
	Feedback           string   `json:"feedback"`
	Positives          []string `json:"positives"`
	Improvements       []string `json:"improvements"`
	PreparationNeeded  []string `json:"preparation_needed"`
	DetailedEvaluation string   `json:"detailed_evaluation"`
	Source             string   `json:"source"`
}

const (
	SourceAI        = "ai"
	SourceHeuristic = "heuristic"
)

type SuitabilityResult struct {
	UploadID        uint     `json:"upload_id"`
	Score           *int     `json:"score"`
	Summary         string   `json:"summary"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
}
