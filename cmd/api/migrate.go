package main

import (
	"github.com/spf13/cobra"

	"alfredoptarigan/interview-simulator/internal/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		db, err := config.InitDatabase(cfg, log)
		if err != nil {
			return err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
