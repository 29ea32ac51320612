package services

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

const DefaultQuestionCount = 5

var fallbackQuestions = []string{
	"Walk me through a project from your resume you're most proud of. Why?",
	"Given an API spec, how would you design the data models and endpoints?",
	"How do you debug performance issues in a web application?",
	"Describe a tough technical decision you made and how you evaluated trade-offs.",
	"Implement a function to check if a string is a valid palindrome (ignore non-alphanumerics).",
}

// DefaultQuestions is the last-resort set used when generation yields nothing at all.
var DefaultQuestions = []string{
	"Tell me about yourself.",
	"Describe a project you worked on.",
	"What is your greatest strength?",
	"What is your greatest weakness?",
	"Why do you want this job?",
}

var listMarkerPattern = regexp.MustCompile(`^[\-\d.\s]+`)

type QuestionGenerator interface {
	Generate(ctx context.Context, resumeText, jdText string, n int) []string
}

type questionGenerator struct {
	ai            TextGenerator
	promptBuilder *PromptBuilder
	textLimit     int
	logger        *zap.Logger
}

// NewQuestionGenerator accepts a nil ai; every call then returns the fallback set.
func NewQuestionGenerator(ai TextGenerator, textLimit int, logger *zap.Logger) QuestionGenerator {
	return &questionGenerator{
		ai:            ai,
		promptBuilder: NewPromptBuilder(),
		textLimit:     textLimit,
		logger:        logger,
	}
}

func (g *questionGenerator) Generate(ctx context.Context, resumeText, jdText string, n int) []string {
	if n <= 0 {
		n = DefaultQuestionCount
	}

	if g.ai == nil {
		return FallbackQuestions(n)
	}

	prompt := g.promptBuilder.BuildQuestionPrompt(
		truncateRunes(resumeText, g.textLimit),
		truncateRunes(jdText, g.textLimit),
		n,
	)

	text, err := g.ai.GenerateText(ctx, prompt)
	if err != nil {
		g.logger.Warn("question generation failed, using fallback set", zap.Error(err))
		return FallbackQuestions(n)
	}

	questions := ParseQuestionLines(text)
	if len(questions) == 0 {
		g.logger.Warn("model returned no usable questions, using fallback set")
		return FallbackQuestions(n)
	}

	if len(questions) > n {
		questions = questions[:n]
	}
	return questions
}

// ParseQuestionLines splits model output into questions, dropping list markers like "1." or "-".
func ParseQuestionLines(text string) []string {
	var questions []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(listMarkerPattern.ReplaceAllString(strings.TrimSpace(line), ""))
		if line != "" {
			questions = append(questions, line)
		}
	}
	return questions
}

// FallbackQuestions returns up to n of the built-in questions.
func FallbackQuestions(n int) []string {
	if n <= 0 || n > len(fallbackQuestions) {
		n = len(fallbackQuestions)
	}
	out := make([]string, n)
	copy(out, fallbackQuestions[:n])
	return out
}
