package services

import (
	"fmt"
	"math"

	"alfredoptarigan/interview-simulator/internal/models"
)

// HeuristicEvaluate scores an interview by answer completeness alone.
// The ratio is rounded half-to-even, so 1 of 4 answered scores 2.
func HeuristicEvaluate(qaList []models.QA) *models.InterviewEvaluation {
	answered := 0
	for _, qa := range qaList {
		if qa.Answered() {
			answered++
		}
	}

	total := len(qaList)
	if total == 0 {
		total = 1
	}

	score := int(math.RoundToEven(10 * float64(answered) / float64(total)))

	return &models.InterviewEvaluation{
		Score: score,
		Feedback: fmt.Sprintf(
			"Basic evaluation: answers were measured by completeness only (AI disabled or unavailable). "+
				"Provided answers for %d out of %d questions.", answered, total),
		Positives:         []string{},
		Improvements:      []string{},
		PreparationNeeded: []string{},
		Source:            models.SourceHeuristic,
	}
}
