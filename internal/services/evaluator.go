package services

import (
	"context"

	"go.uber.org/zap"

	"alfredoptarigan/interview-simulator/internal/models"
)

type InterviewEvaluator interface {
	Evaluate(ctx context.Context, resumeText, jdText string, qaList []models.QA) *models.InterviewEvaluation
}

type SuitabilityAnalyzer interface {
	Analyze(ctx context.Context, resumeText, jdText string) *models.SuitabilityResult
}

type Evaluator struct {
	ai               TextGenerator
	recoverer        *ResponseRecoverer
	promptBuilder    *PromptBuilder
	textLimit        int
	suitabilityLimit int
	logger           *zap.Logger
}

// NewEvaluator builds the interview evaluator and suitability analyzer.
// A nil ai makes every evaluation heuristic and every analysis empty.
func NewEvaluator(ai TextGenerator, textLimit, suitabilityLimit int, logger *zap.Logger) *Evaluator {
	return &Evaluator{
		ai:               ai,
		recoverer:        NewResponseRecoverer(logger, LenientRecovery()...),
		promptBuilder:    NewPromptBuilder(),
		textLimit:        textLimit,
		suitabilityLimit: suitabilityLimit,
		logger:           logger,
	}
}

// Evaluate implements InterviewEvaluator.
func (e *Evaluator) Evaluate(ctx context.Context, resumeText, jdText string, qaList []models.QA) *models.InterviewEvaluation {
	if e.ai == nil {
		return HeuristicEvaluate(qaList)
	}

	prompt := e.promptBuilder.BuildInterviewEvaluationPrompt(
		truncateRunes(resumeText, e.textLimit),
		truncateRunes(jdText, e.textLimit),
		qaList,
	)

	raw, err := e.ai.GenerateText(ctx, prompt)
	if err != nil {
		e.logger.Warn("interview evaluation call failed, using heuristic", zap.Error(err))
		return HeuristicEvaluate(qaList)
	}

	data, ok := e.recoverer.Recover(raw)
	if !ok {
		return HeuristicEvaluate(qaList)
	}

	score, ok := coerceScore(data["score"], 0, 10)
	if !ok {
		e.logger.Warn("interview evaluation missing numeric score, using heuristic")
		return HeuristicEvaluate(qaList)
	}

	return &models.InterviewEvaluation{
		Score:              score,
		Summary:            coerceString(data["summary"]),
		Feedback:           coerceString(data["feedback"]),
		Positives:          coerceStringSlice(data["positives"]),
		Improvements:       coerceStringSlice(data["improvements"]),
		PreparationNeeded:  coerceStringSlice(data["preparation_needed"]),
		DetailedEvaluation: coerceString(data["detailed_evaluation"]),
		Source:             models.SourceAI,
	}
}

// Analyze implements SuitabilityAnalyzer.
func (e *Evaluator) Analyze(ctx context.Context, resumeText, jdText string) *models.SuitabilityResult {
	result := &models.SuitabilityResult{
		Strengths:       []string{},
		Weaknesses:      []string{},
		Recommendations: []string{},
	}

	if e.ai == nil {
		return result
	}

	prompt := e.promptBuilder.BuildSuitabilityPrompt(
		truncateRunes(resumeText, e.suitabilityLimit),
		truncateRunes(jdText, e.suitabilityLimit),
	)

	raw, err := e.ai.GenerateText(ctx, prompt)
	if err != nil {
		e.logger.Warn("suitability analysis call failed", zap.Error(err))
		return result
	}

	data, ok := e.recoverer.Recover(raw)
	if !ok {
		// Keep the model's prose so the reader still sees something.
		result.Summary = stripFenceLines(raw)
		return result
	}

	if score, ok := coerceScore(data["score"], 0, 100); ok {
		result.Score = &score
	}
	result.Summary = coerceString(data["summary"])
	result.Strengths = coerceStringSlice(data["strengths"])
	result.Weaknesses = coerceStringSlice(data["weaknesses"])
	result.Recommendations = coerceStringSlice(data["recommendations"])

	return result
}
