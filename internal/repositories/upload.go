package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"alfredoptarigan/interview-simulator/internal/models"
)

var ErrUploadNotFound = errors.New("upload not found")

type UploadRepository interface {
	Create(ctx context.Context, upload *models.Upload) error
	FindByID(ctx context.Context, id uint) (*models.Upload, error)
	SaveQuestions(ctx context.Context, id uint, questions []string) error
	SaveInterviewResult(ctx context.Context, id uint, eval *models.InterviewEvaluation) error
	SaveAnalysis(ctx context.Context, id uint, result *models.SuitabilityResult) error
}

type uploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) UploadRepository {
	return &uploadRepository{db: db}
}

func (r *uploadRepository) Create(ctx context.Context, upload *models.Upload) error {
	if err := r.db.WithContext(ctx).Create(upload).Error; err != nil {
		return fmt.Errorf("failed to create upload: %w", err)
	}
	return nil
}

func (r *uploadRepository) FindByID(ctx context.Context, id uint) (*models.Upload, error) {
	var upload models.Upload
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&upload).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUploadNotFound
		}
		return nil, fmt.Errorf("failed to find upload: %w", err)
	}
	return &upload, nil
}

func (r *uploadRepository) SaveQuestions(ctx context.Context, id uint, questions []string) error {
	encoded, err := encodeList(questions)
	if err != nil {
		return fmt.Errorf("failed to encode questions: %w", err)
	}

	return r.update(ctx, id, map[string]interface{}{
		"questions": encoded,
	})
}

func (r *uploadRepository) SaveInterviewResult(ctx context.Context, id uint, eval *models.InterviewEvaluation) error {
	report, err := json.Marshal(eval)
	if err != nil {
		return fmt.Errorf("failed to encode interview report: %w", err)
	}

	feedback := eval.Feedback
	if feedback == "" {
		feedback = eval.Summary
	}

	return r.update(ctx, id, map[string]interface{}{
		"interview_score":    eval.Score,
		"interview_feedback": feedback,
		"interview_report":   string(report),
	})
}

func (r *uploadRepository) SaveAnalysis(ctx context.Context, id uint, result *models.SuitabilityResult) error {
	updates := map[string]interface{}{
		"analysis_score":   result.Score,
		"analysis_summary": result.Summary,
	}

	lists := map[string][]string{
		"strengths":       result.Strengths,
		"weaknesses":      result.Weaknesses,
		"recommendations": result.Recommendations,
	}
	for column, values := range lists {
		encoded, err := encodeList(values)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", column, err)
		}
		updates[column] = encoded
	}

	return r.update(ctx, id, updates)
}

func (r *uploadRepository) update(ctx context.Context, id uint, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).Model(&models.Upload{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update upload: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrUploadNotFound
	}

	return nil
}

// DecodeList reads a JSON-encoded string list column; malformed or empty input yields nil.
func DecodeList(encoded *string) []string {
	if encoded == nil || *encoded == "" {
		return nil
	}

	var values []string
	if err := json.Unmarshal([]byte(*encoded), &values); err != nil {
		return nil
	}
	return values
}

func encodeList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
