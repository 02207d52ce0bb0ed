package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/fleetops-api/internal/constants"
	"github.com/fleetops-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openRepositoryTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.AutoMigrateWith(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func createTestDelivery(t *testing.T, repo *GormDeliveryRepository, tracking, status, priority string, routeID uint) *models.Delivery {
	t.Helper()
	delivery := &models.Delivery{
		RouteID:           routeID,
		LocationID:        1,
		TrackingNumber:    tracking,
		CustomerName:      "Test Customer",
		PackageCount:      2,
		WeightKg:          45.5,
		Status:            status,
		Priority:          priority,
		ScheduledDelivery: time.Now().UTC().Add(24 * time.Hour),
	}
	if err := repo.Create(delivery); err != nil {
		t.Fatalf("create delivery failed: %v", err)
	}
	return delivery
}

func TestDeliveryRepositoryGetByTrackingNumber(t *testing.T) {
	db := openRepositoryTestDB(t, "repo_delivery_tracking")
	repo := NewDeliveryRepository(db)

	created := createTestDelivery(t, repo, "TRK123456789", constants.DeliveryStatusPending, constants.DeliveryPriorityStandard, 1)

	found, err := repo.GetByTrackingNumber("TRK123456789")
	if err != nil {
		t.Fatalf("get by tracking failed: %v", err)
	}
	if found == nil {
		t.Fatal("expected delivery, got nil")
	}
	if found.ID != created.ID {
		t.Errorf("got delivery %d, want %d", found.ID, created.ID)
	}

	missing, err := repo.GetByTrackingNumber("TRK000000000")
	if err != nil {
		t.Fatalf("get by tracking failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown tracking number, got delivery %d", missing.ID)
	}
}

func TestDeliveryRepositoryListFilters(t *testing.T) {
	db := openRepositoryTestDB(t, "repo_delivery_filters")
	repo := NewDeliveryRepository(db)

	createTestDelivery(t, repo, "TRK111111111", constants.DeliveryStatusPending, constants.DeliveryPriorityStandard, 1)
	createTestDelivery(t, repo, "TRK222222222", constants.DeliveryStatusDelivered, constants.DeliveryPriorityUrgent, 1)
	createTestDelivery(t, repo, "TRK333333333", constants.DeliveryStatusDelivered, constants.DeliveryPriorityStandard, 2)

	deliveries, total, err := repo.List(DeliveryListFilter{Status: constants.DeliveryStatusDelivered})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 || len(deliveries) != 2 {
		t.Fatalf("status filter: got %d/%d, want 2/2", len(deliveries), total)
	}

	deliveries, total, err = repo.List(DeliveryListFilter{RouteID: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || deliveries[0].TrackingNumber != "TRK333333333" {
		t.Fatalf("route filter: got %d rows, want TRK333333333", total)
	}

	// Substring match, with surrounding whitespace trimmed.
	deliveries, total, err = repo.List(DeliveryListFilter{TrackingNumber: " 2222 "})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || deliveries[0].TrackingNumber != "TRK222222222" {
		t.Fatalf("tracking filter: got %d rows, want TRK222222222", total)
	}
}

func TestDeliveryRepositoryListPagination(t *testing.T) {
	db := openRepositoryTestDB(t, "repo_delivery_pages")
	repo := NewDeliveryRepository(db)

	for i := 0; i < 5; i++ {
		createTestDelivery(t, repo, fmt.Sprintf("TRK00000000%d", i), constants.DeliveryStatusPending, constants.DeliveryPriorityStandard, 1)
	}

	deliveries, total, err := repo.List(DeliveryListFilter{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 5 {
		t.Errorf("got total %d, want 5", total)
	}
	if len(deliveries) != 2 {
		t.Fatalf("got %d rows on page 2, want 2", len(deliveries))
	}
	if deliveries[0].TrackingNumber != "TRK000000002" {
		t.Errorf("page 2 starts at %s, want TRK000000002", deliveries[0].TrackingNumber)
	}
}
