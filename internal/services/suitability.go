package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"alfredoptarigan/interview-simulator/internal/models"
	"alfredoptarigan/interview-simulator/internal/repositories"
)

type SuitabilityService interface {
	View(ctx context.Context, uploadID uint) (*models.SuitabilityResult, error)
}

type suitabilityService struct {
	uploadRepo repositories.UploadRepository
	pdfParser  PDFParserService
	analyzer   SuitabilityAnalyzer
	logger     *zap.Logger
}

func NewSuitabilityService(
	uploadRepo repositories.UploadRepository,
	pdfParser PDFParserService,
	analyzer SuitabilityAnalyzer,
	logger *zap.Logger,
) SuitabilityService {
	return &suitabilityService{
		uploadRepo: uploadRepo,
		pdfParser:  pdfParser,
		analyzer:   analyzer,
		logger:     logger,
	}
}

// View analyzes the upload's documents and stores the outcome on the record.
func (s *suitabilityService) View(ctx context.Context, uploadID uint) (*models.SuitabilityResult, error) {
	upload, err := s.uploadRepo.FindByID(ctx, uploadID)
	if err != nil {
		return nil, err
	}

	resumeText := s.pdfParser.ExtractText(upload.ResumePath)
	jdText := s.pdfParser.ExtractText(upload.JDPath)

	result := s.analyzer.Analyze(ctx, resumeText, jdText)
	result.UploadID = upload.ID

	if err := s.uploadRepo.SaveAnalysis(ctx, upload.ID, result); err != nil {
		return nil, fmt.Errorf("failed to store analysis: %w", err)
	}

	s.logger.Info("suitability analyzed",
		zap.Uint("upload_id", upload.ID),
		zap.Bool("scored", result.Score != nil),
	)

	return result, nil
}
