package services

import (
	"bytes"
	"encoding/json"
	"fmt"

	"alfredoptarigan/interview-simulator/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildQuestionPrompt asks for n interview questions, one per line.
func (pb *PromptBuilder) BuildQuestionPrompt(resumeText, jdText string, n int) string {
	return fmt.Sprintf(`You are an expert technical interviewer. Based on the candidate resume and job description below,
generate %d concise interview questions tailored to the candidate and role.
- Mix technical, coding, and behavioral questions.
- Try to label coding questions by prefixing them with [CODING], but do not require it.
- Return one question per line, clear and concise.

Resume (truncated):
%s

Job Description (truncated):
%s`, n, resumeText, jdText)
}

// BuildInterviewEvaluationPrompt asks for a structured JSON evaluation of the transcript.
func (pb *PromptBuilder) BuildInterviewEvaluationPrompt(resumeText, jdText string, qaList []models.QA) string {
	return fmt.Sprintf(`You are an expert technical interviewer and evaluator.

Candidate resume (truncated):
%s

Job description (truncated):
%s

Interview data (questions and candidate answers):
%s

Your task is to provide an extremely detailed, structured, and point-wise evaluation
of the candidate's interview performance. Be exhaustive, analytical, and specific.
Follow these steps:

1. Summarize candidate performance in the interview (max 3 sentences).
2. List at least 3 positives, with crisp explanations.
3. List at least 3 improvements needed, crisp explanations.
4. Suggest at least 8 further preparation areas, detailed explanations.
5. Provide a very precise evaluation (max 100 words, max 3 sentences).
6. Give an overall score (0-10) and summary feedback (min 4 sentences).

Respond ONLY with valid JSON (no markdown, no code fences) with keys:

{
  "summary": "<summary>",
  "positives": ["<positive point 1>", ...],
  "improvements": ["<improvement 1>", ...],
  "preparation_needed": ["<topic 1>", ...],
  "detailed_evaluation": "<detailed evaluation>",
  "score": <integer 0-10>,
  "feedback": "<overall feedback>"
}`, resumeText, jdText, formatTranscript(qaList))
}

// BuildSuitabilityPrompt asks for a 0-100 fit score with strengths and gaps.
func (pb *PromptBuilder) BuildSuitabilityPrompt(resumeText, jdText string) string {
	return fmt.Sprintf(`You are a senior technical hiring evaluator. Given the resume and job description, return ONLY valid JSON with fields:
{"score": <0-100 integer>, "summary": "<1-2 sentence summary>", "strengths": ["..."], "weaknesses": ["..."], "recommendations": ["..."]}

Resume:
%s

Job Description:
%s`, resumeText, jdText)
}

func formatTranscript(qaList []models.QA) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(qaList); err != nil {
		return "[]"
	}
	return buf.String()
}
