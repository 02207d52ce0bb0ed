package repository

import (
	"testing"
	"time"

	"github.com/fleetops-api/internal/models"
)

func createTestGPSPoint(t *testing.T, repo *GormGPSRepository, vehicleID uint, ts time.Time) *models.GPSTracking {
	t.Helper()
	point := &models.GPSTracking{
		VehicleID: vehicleID,
		Timestamp: ts,
		Latitude:  40.0,
		Longitude: -100.0,
		SpeedKmh:  55.0,
		Heading:   180.0,
	}
	if err := repo.Create(point); err != nil {
		t.Fatalf("create gps point failed: %v", err)
	}
	return point
}

func TestGPSRepositoryLatestByVehicle(t *testing.T) {
	db := openRepositoryTestDB(t, "repo_gps_latest")
	repo := NewGPSRepository(db)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	createTestGPSPoint(t, repo, 1, base)
	newest := createTestGPSPoint(t, repo, 1, base.Add(2*time.Hour))
	createTestGPSPoint(t, repo, 1, base.Add(time.Hour))
	createTestGPSPoint(t, repo, 2, base.Add(6*time.Hour))

	latest, err := repo.LatestByVehicle(1)
	if err != nil {
		t.Fatalf("latest by vehicle failed: %v", err)
	}
	if latest == nil {
		t.Fatal("expected a point, got nil")
	}
	if latest.ID != newest.ID {
		t.Errorf("got point %d, want %d", latest.ID, newest.ID)
	}

	missing, err := repo.LatestByVehicle(99)
	if err != nil {
		t.Fatalf("latest by vehicle failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for vehicle without points, got %d", missing.ID)
	}
}

func TestGPSRepositoryListNewestFirst(t *testing.T) {
	db := openRepositoryTestDB(t, "repo_gps_list")
	repo := NewGPSRepository(db)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	createTestGPSPoint(t, repo, 1, base)
	createTestGPSPoint(t, repo, 1, base.Add(time.Hour))
	createTestGPSPoint(t, repo, 2, base.Add(30*time.Minute))

	points, total, err := repo.List(GPSListFilter{VehicleID: 1})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 || len(points) != 2 {
		t.Fatalf("vehicle filter: got %d/%d, want 2/2", len(points), total)
	}
	if !points[0].Timestamp.After(points[1].Timestamp) {
		t.Error("points not ordered newest first")
	}
}
