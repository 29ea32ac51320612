package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/interview-simulator/internal/services"
)

var questionCount int

var questionsCmd = &cobra.Command{
	Use:   "questions <resume> <job-description>",
	Short: "Extract both documents and print the interview questions that would be generated",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx := context.Background()
		pdfParser := services.NewPDFParserService(log)

		texts := make([]string, 0, len(args))
		for _, path := range args {
			content, err := pdfParser.ExtractTextWithMetaData(path)
			if err != nil {
				log.Warn("document could not be read, continuing with empty text",
					zap.String("path", path),
					zap.Error(err),
				)
				texts = append(texts, "")
				continue
			}
			log.Info("document extracted",
				zap.String("path", path),
				zap.Int("pages", content.PageCount),
				zap.Int("characters", len(content.Text)),
			)
			texts = append(texts, services.CleanText(content.Text))
		}

		n := questionCount
		if n <= 0 {
			n = cfg.Interview.QuestionCount
		}

		generator := services.NewQuestionGenerator(newTextGenerator(ctx, cfg, log), cfg.Interview.PromptTextLimit, log)
		for i, q := range generator.Generate(ctx, texts[0], texts[1], n) {
			fmt.Printf("%d. %s\n", i+1, q)
		}
		return nil
	},
}

func init() {
	questionsCmd.Flags().IntVarP(&questionCount, "count", "n", 0, "number of questions (default from QUESTION_COUNT)")
	rootCmd.AddCommand(questionsCmd)
}
