package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"alfredoptarigan/interview-simulator/internal/models"
	"alfredoptarigan/interview-simulator/internal/repositories"
)

type InterviewService interface {
	// Start returns the persisted questions of an upload, generating and storing them on first use.
	Start(ctx context.Context, uploadID uint) ([]string, error)
	CreateFromPaths(ctx context.Context, resumePath, jdPath string) (*models.Upload, []string, error)
	Submit(ctx context.Context, uploadID uint, qaList []models.QA) (*models.InterviewEvaluation, error)
}

type interviewService struct {
	uploadRepo    repositories.UploadRepository
	pdfParser     PDFParserService
	questions     QuestionGenerator
	evaluator     InterviewEvaluator
	questionCount int
	logger        *zap.Logger
}

func NewInterviewService(
	uploadRepo repositories.UploadRepository,
	pdfParser PDFParserService,
	questions QuestionGenerator,
	evaluator InterviewEvaluator,
	questionCount int,
	logger *zap.Logger,
) InterviewService {
	if questionCount <= 0 {
		questionCount = DefaultQuestionCount
	}
	return &interviewService{
		uploadRepo:    uploadRepo,
		pdfParser:     pdfParser,
		questions:     questions,
		evaluator:     evaluator,
		questionCount: questionCount,
		logger:        logger,
	}
}

// Start implements InterviewService.
func (s *interviewService) Start(ctx context.Context, uploadID uint) ([]string, error) {
	upload, err := s.uploadRepo.FindByID(ctx, uploadID)
	if err != nil {
		return nil, err
	}

	if questions := repositories.DecodeList(upload.Questions); len(questions) > 0 {
		return questions, nil
	}

	questions := s.generate(ctx, upload.ResumePath, upload.JDPath)
	if err := s.uploadRepo.SaveQuestions(ctx, upload.ID, questions); err != nil {
		return nil, fmt.Errorf("failed to store questions: %w", err)
	}

	s.logger.Info("interview questions generated",
		zap.Uint("upload_id", upload.ID),
		zap.Int("count", len(questions)),
	)

	return questions, nil
}

// CreateFromPaths implements InterviewService.
func (s *interviewService) CreateFromPaths(ctx context.Context, resumePath, jdPath string) (*models.Upload, []string, error) {
	questions := s.generate(ctx, resumePath, jdPath)

	upload := &models.Upload{
		ResumePath: resumePath,
		JDPath:     jdPath,
	}
	if err := s.uploadRepo.Create(ctx, upload); err != nil {
		return nil, nil, err
	}
	if err := s.uploadRepo.SaveQuestions(ctx, upload.ID, questions); err != nil {
		return nil, nil, fmt.Errorf("failed to store questions: %w", err)
	}

	return upload, questions, nil
}

// Submit implements InterviewService.
func (s *interviewService) Submit(ctx context.Context, uploadID uint, qaList []models.QA) (*models.InterviewEvaluation, error) {
	upload, err := s.uploadRepo.FindByID(ctx, uploadID)
	if err != nil {
		return nil, err
	}

	resumeText := s.pdfParser.ExtractText(upload.ResumePath)
	jdText := s.pdfParser.ExtractText(upload.JDPath)

	evaluation := s.evaluator.Evaluate(ctx, resumeText, jdText, qaList)

	if err := s.uploadRepo.SaveInterviewResult(ctx, upload.ID, evaluation); err != nil {
		return nil, fmt.Errorf("failed to store interview result: %w", err)
	}

	s.logger.Info("interview evaluated",
		zap.Uint("upload_id", upload.ID),
		zap.Int("score", evaluation.Score),
		zap.String("source", evaluation.Source),
	)

	return evaluation, nil
}

func (s *interviewService) generate(ctx context.Context, resumePath, jdPath string) []string {
	resumeText := s.pdfParser.ExtractText(resumePath)
	jdText := s.pdfParser.ExtractText(jdPath)

	questions := s.questions.Generate(ctx, resumeText, jdText, s.questionCount)
	if len(questions) == 0 {
		questions = append([]string(nil), DefaultQuestions...)
	}
	return questions
}
