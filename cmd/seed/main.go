package main

import (
	"github.com/fleetops-api/internal/config"
	"github.com/fleetops-api/internal/logger"
	"github.com/fleetops-api/internal/models"
	"github.com/fleetops-api/internal/seed"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("database init failed: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("database migration failed: %v", err)
	}

	generator := seed.NewGenerator(models.DB, cfg.Seed)
	result, err := generator.Run()
	if err != nil {
		stdLog.Fatalf("seeding failed: %v", err)
	}

	for _, detail := range result.Details {
		stdLog.Printf("%s", detail)
	}
	if result.Status == "warning" {
		logger.Warnw("seed_skipped", "message", result.Message)
		return
	}

	summary := result.Summary
	logger.Infow("seed_finished",
		"organizations", summary.Organizations,
		"vehicles", summary.Vehicles,
		"drivers", summary.Drivers,
		"locations", summary.Locations,
		"routes", summary.Routes,
		"deliveries", summary.Deliveries,
		"maintenance_records", summary.MaintenanceRecords,
		"fuel_logs", summary.FuelLogs,
		"incidents", summary.Incidents,
		"gps_tracking", summary.GPSTracking,
		"time_span", summary.TimeSpan,
	)
}
