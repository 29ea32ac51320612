package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/interview-simulator/internal/config"
	"alfredoptarigan/interview-simulator/internal/handlers"
	"alfredoptarigan/interview-simulator/internal/middleware"
	"alfredoptarigan/interview-simulator/internal/repositories"
	"alfredoptarigan/interview-simulator/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command) error {
	cfg, log, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	log.Info("starting the interview simulator", zap.String("version", version))

	if cfg.Auth.SecretKey == "" {
		log.Warn("SECRET_KEY is empty; session tokens are signed with an empty key")
	}

	db, err := config.InitDatabase(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	accountRepo := repositories.NewAccountRepository(db)
	uploadRepo := repositories.NewUploadRepository(db)

	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ai := newTextGenerator(ctx, cfg, log)
	pdfParser := services.NewPDFParserService(log)
	evaluator := services.NewEvaluator(ai, cfg.Interview.PromptTextLimit, cfg.Interview.SuitabilityTextLimit, log)
	questionGenerator := services.NewQuestionGenerator(ai, cfg.Interview.PromptTextLimit, log)

	interviewService := services.NewInterviewService(
		uploadRepo,
		pdfParser,
		questionGenerator,
		evaluator,
		cfg.Interview.QuestionCount,
		log,
	)
	suitabilityService := services.NewSuitabilityService(uploadRepo, pdfParser, evaluator, log)
	authService := services.NewAuthService(accountRepo, cfg.Auth.SecretKey, cfg.Auth.TokenTTL)

	server := handlers.NewApp(handlers.Handlers{
		Auth:        handlers.NewAuthHandler(authService, log),
		Upload:      handlers.NewUploadHandler(uploadRepo, accountRepo, storageService, cfg.Storage.MaxFileSize, log),
		Interview:   handlers.NewInterviewHandler(interviewService, log),
		Suitability: handlers.NewSuitabilityHandler(suitabilityService),
	}, handlers.AppOptions{
		BodyLimit:     int(2*cfg.Storage.MaxFileSize) + 1<<20,
		AccessLog:     true,
		Authenticator: middleware.OptionalAuth(authService, log),
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("shutting down server")
		cancel()
		if err := server.Shutdown(); err != nil {
			log.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info("server starting", zap.String("addr", addr))

	if err := server.Listen(addr); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	return nil
}

// newTextGenerator returns nil when AI is not configured, which switches every component to its fallback.
func newTextGenerator(ctx context.Context, cfg *config.Config, log *zap.Logger) services.TextGenerator {
	if !cfg.AIEnabled() {
		log.Warn("GEMINI_API_KEY is not set; using fallback questions and heuristic scoring")
		return nil
	}

	gemini, err := services.NewGeminiService(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, log)
	if err != nil {
		log.Error("failed to initialize Gemini; using fallbacks", zap.Error(err))
		return nil
	}

	log.Info("gemini initialized", zap.String("model", gemini.Model()))
	return gemini
}
