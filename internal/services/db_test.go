package services

import (
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"alfredoptarigan/interview-simulator/internal/config"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Env: "test"},
		Database: config.DatabaseConfig{
			Driver: "sqlite",
			Path:   "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		},
	}

	db, err := config.InitDatabase(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("init database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}
