package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/interview-simulator/internal/config"
	"alfredoptarigan/interview-simulator/internal/logger"
)

const app = "interview-simulator"

var (
	debugLogs bool
	jsonLogs  bool

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "AI powered interview simulator: upload a resume and job description, get interviewed, get scored",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
		SilenceUsage: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debugLogs, "debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolVarP(&jsonLogs, "json", "j", false, "json format for logging")
}

// bootstrap loads configuration and builds the logger; flags override env settings.
func bootstrap(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg := config.Load()

	if cmd.Flags().Changed("debug") {
		cfg.Log.Debug = debugLogs
	}
	if cmd.Flags().Changed("json") {
		cfg.Log.JSON = jsonLogs
	}

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return nil, nil, fmt.Errorf("creating a logger: %w", err)
	}

	return cfg, log, nil
}
