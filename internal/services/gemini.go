package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"alfredoptarigan/interview-simulator/internal/logger"
)

// TextGenerator is the single outbound call every AI-backed component makes.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type GeminiService interface {
	TextGenerator
	Model() string
}

type geminiService struct {
	client    *genai.Client
	modelName string
	logger    *zap.Logger
}

func NewGeminiService(ctx context.Context, apiKey, model string, log *zap.Logger) (GeminiService, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = "gemini-2.5-flash-lite"
	}

	return &geminiService{
		client:    client,
		modelName: model,
		logger:    log,
	}, nil
}

// GenerateText implements TextGenerator. It makes exactly one attempt.
func (g *geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("prompt must not be empty")
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", errors.New("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		// Fall back to whatever the candidates carry.
		var textParts []string
		for _, candidate := range resp.Candidates {
			if candidate == nil || candidate.Content == nil {
				continue
			}
			for _, part := range candidate.Content.Parts {
				if part != nil && strings.TrimSpace(part.Text) != "" {
					textParts = append(textParts, part.Text)
				}
			}
		}

		if len(textParts) == 0 {
			return "", errors.New("no text content in response")
		}
		text = strings.Join(textParts, "\n")
	}

	g.logger.Debug("gemini response received",
		zap.String("model", g.modelName),
		zap.Int("response_length", len(text)),
		zap.String("response_preview", logger.TruncateForLog(text, 200)),
	)

	return text, nil
}

func (g *geminiService) Model() string {
	return g.modelName
}
