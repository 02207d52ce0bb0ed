package service

import (
	"github.com/fleetops-api/internal/config"
	"github.com/fleetops-api/internal/logger"
	"github.com/fleetops-api/internal/seed"

	"gorm.io/gorm"
)

// SeedService runs the synthetic data generator and the clear operation.
type SeedService struct {
	db  *gorm.DB
	cfg *config.SeedConfig
}

// NewSeedService creates the seed service.
func NewSeedService(db *gorm.DB, cfg *config.SeedConfig) *SeedService {
	return &SeedService{db: db, cfg: cfg}
}

// SeedFull runs the full generator. The result carries the per-stage
// messages even when the run fails partway.
func (s *SeedService) SeedFull() (*seed.Result, error) {
	generator := seed.NewGenerator(s.db, *s.cfg)
	result, err := generator.Run()
	if err != nil {
		logger.Errorw("seed_run_failed", "error", err)
		return result, err
	}
	logger.Infow("seed_run_finished",
		"status", result.Status,
		"message", result.Message,
	)
	return result, nil
}

// Clear wipes all fleet tables.
func (s *SeedService) Clear() error {
	if err := seed.Clear(s.db); err != nil {
		logger.Errorw("seed_clear_failed", "error", err)
		return err
	}
	logger.Infow("seed_clear_finished")
	return nil
}
