package seed

import (
	"fmt"
	"testing"
	"time"

	"github.com/fleetops-api/internal/config"
	"github.com/fleetops-api/internal/constants"
	"github.com/fleetops-api/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func testSeedConfig() config.SeedConfig {
	return config.SeedConfig{
		Seed:          42,
		Organizations: 3,
		Vehicles:      10,
		Drivers:       12,
		Locations:     15,
		Routes:        30,
		Deliveries:    50,
		HistoryMonths: 6,
	}
}

func openSeedTestDB(t *testing.T, name string) *gorm.DB {
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

func runSeed(t *testing.T, db *gorm.DB, cfg config.SeedConfig) *Result {
	t.Helper()
	result, err := NewGenerator(db, cfg).Run()
	if err != nil {
		t.Fatalf("seed run failed: %v", err)
	}
	return result
}

func tableCount(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return count
}

func TestGeneratorRunCounts(t *testing.T) {
	db := openSeedTestDB(t, "seed_counts")
	cfg := testSeedConfig()
	result := runSeed(t, db, cfg)

	if result.Status != "success" {
		t.Fatalf("expected success, got %s: %s", result.Status, result.Message)
	}
	if result.Summary == nil {
		t.Fatal("expected summary")
	}

	checks := []struct {
		model   interface{}
		want    int64
		name    string
		summary int
	}{
		{&models.Organization{}, int64(cfg.Organizations), "organizations", result.Summary.Organizations},
		{&models.Vehicle{}, int64(cfg.Vehicles), "vehicles", result.Summary.Vehicles},
		{&models.Driver{}, int64(cfg.Drivers), "drivers", result.Summary.Drivers},
		{&models.Location{}, int64(cfg.Locations), "locations", result.Summary.Locations},
		{&models.Route{}, int64(cfg.Routes), "routes", result.Summary.Routes},
		{&models.Delivery{}, int64(cfg.Deliveries), "deliveries", result.Summary.Deliveries},
	}
	for _, check := range checks {
		got := tableCount(t, db, check.model)
		if got != check.want {
			t.Errorf("%s: got %d rows, want %d", check.name, got, check.want)
		}
		if int64(check.summary) != got {
			t.Errorf("%s: summary says %d, table has %d", check.name, check.summary, got)
		}
	}

	maintenance := tableCount(t, db, &models.MaintenanceRecord{})
	if maintenance < int64(cfg.Vehicles)*2 || maintenance > int64(cfg.Vehicles)*6 {
		t.Errorf("maintenance records out of range: %d for %d vehicles", maintenance, cfg.Vehicles)
	}
	fuel := tableCount(t, db, &models.FuelLog{})
	if fuel < int64(cfg.Vehicles)*20 || fuel > int64(cfg.Vehicles)*40 {
		t.Errorf("fuel logs out of range: %d for %d vehicles", fuel, cfg.Vehicles)
	}

	// All 10 vehicles get GPS data since the sample cap is 30.
	var gpsVehicles int64
	if err := db.Model(&models.GPSTracking{}).Distinct("vehicle_id").Count(&gpsVehicles).Error; err != nil {
		t.Fatalf("count gps vehicles failed: %v", err)
	}
	if gpsVehicles != int64(cfg.Vehicles) {
		t.Errorf("gps vehicles: got %d, want %d", gpsVehicles, cfg.Vehicles)
	}
}

func TestGeneratorIdempotentRerun(t *testing.T) {
	db := openSeedTestDB(t, "seed_idempotent")
	cfg := testSeedConfig()
	runSeed(t, db, cfg)

	before := tableCount(t, db, &models.Vehicle{})

	result := runSeed(t, db, cfg)
	if result.Status != "warning" {
		t.Fatalf("expected warning on rerun, got %s", result.Status)
	}

	after := tableCount(t, db, &models.Vehicle{})
	if before != after {
		t.Errorf("rerun changed vehicle count: %d -> %d", before, after)
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	cfg := testSeedConfig()
	dbA := openSeedTestDB(t, "seed_det_a")
	dbB := openSeedTestDB(t, "seed_det_b")
	runSeed(t, dbA, cfg)
	runSeed(t, dbB, cfg)

	var vinsA, vinsB []string
	if err := dbA.Model(&models.Vehicle{}).Order("id ASC").Pluck("vin", &vinsA).Error; err != nil {
		t.Fatalf("pluck vins failed: %v", err)
	}
	if err := dbB.Model(&models.Vehicle{}).Order("id ASC").Pluck("vin", &vinsB).Error; err != nil {
		t.Fatalf("pluck vins failed: %v", err)
	}
	if len(vinsA) != len(vinsB) {
		t.Fatalf("vin count mismatch: %d vs %d", len(vinsA), len(vinsB))
	}
	for i := range vinsA {
		if vinsA[i] != vinsB[i] {
			t.Fatalf("vin %d differs: %s vs %s", i, vinsA[i], vinsB[i])
		}
	}

	var trackingA, trackingB []string
	if err := dbA.Model(&models.Delivery{}).Order("id ASC").Pluck("tracking_number", &trackingA).Error; err != nil {
		t.Fatalf("pluck tracking failed: %v", err)
	}
	if err := dbB.Model(&models.Delivery{}).Order("id ASC").Pluck("tracking_number", &trackingB).Error; err != nil {
		t.Fatalf("pluck tracking failed: %v", err)
	}
	for i := range trackingA {
		if trackingA[i] != trackingB[i] {
			t.Fatalf("tracking number %d differs: %s vs %s", i, trackingA[i], trackingB[i])
		}
	}

	var emailsA, emailsB []string
	if err := dbA.Model(&models.Driver{}).Order("id ASC").Pluck("email", &emailsA).Error; err != nil {
		t.Fatalf("pluck emails failed: %v", err)
	}
	if err := dbB.Model(&models.Driver{}).Order("id ASC").Pluck("email", &emailsB).Error; err != nil {
		t.Fatalf("pluck emails failed: %v", err)
	}
	for i := range emailsA {
		if emailsA[i] != emailsB[i] {
			t.Fatalf("driver email %d differs: %s vs %s", i, emailsA[i], emailsB[i])
		}
	}
}

func TestRouteTimestampRules(t *testing.T) {
	db := openSeedTestDB(t, "seed_routes")
	runSeed(t, db, testSeedConfig())

	var routes []models.Route
	if err := db.Find(&routes).Error; err != nil {
		t.Fatalf("load routes failed: %v", err)
	}
	if len(routes) == 0 {
		t.Fatal("no routes generated")
	}

	for _, route := range routes {
		if route.OriginLocationID == route.DestinationLocationID {
			t.Errorf("route %d: origin equals destination (%d)", route.ID, route.OriginLocationID)
		}
		if !route.ScheduledArrival.After(route.ScheduledDeparture) {
			t.Errorf("route %d: arrival not after departure", route.ID)
		}

		switch route.Status {
		case constants.RouteStatusScheduled, constants.RouteStatusCancelled:
			if route.ActualDeparture != nil || route.ActualArrival != nil {
				t.Errorf("route %d (%s): unexpected actual timestamps", route.ID, route.Status)
			}
		case constants.RouteStatusInProgress:
			if route.ActualDeparture == nil {
				t.Errorf("route %d: in_progress without actual departure", route.ID)
			}
			if route.ActualArrival != nil {
				t.Errorf("route %d: in_progress with actual arrival", route.ID)
			}
		case constants.RouteStatusCompleted:
			if route.ActualDeparture == nil || route.ActualArrival == nil {
				t.Errorf("route %d: completed missing actual timestamps", route.ID)
				continue
			}
			depOffset := route.ActualDeparture.Sub(route.ScheduledDeparture)
			if depOffset < -30*time.Minute || depOffset > 60*time.Minute {
				t.Errorf("route %d: actual departure offset %v out of range", route.ID, depOffset)
			}
			arrOffset := route.ActualArrival.Sub(route.ScheduledArrival)
			if arrOffset < -60*time.Minute || arrOffset > 120*time.Minute {
				t.Errorf("route %d: actual arrival offset %v out of range", route.ID, arrOffset)
			}
		default:
			t.Errorf("route %d: unknown status %q", route.ID, route.Status)
		}
	}
}

func TestDeliverySchedulingRules(t *testing.T) {
	db := openSeedTestDB(t, "seed_deliveries")
	runSeed(t, db, testSeedConfig())

	routesByID := map[uint]models.Route{}
	var routes []models.Route
	if err := db.Find(&routes).Error; err != nil {
		t.Fatalf("load routes failed: %v", err)
	}
	for _, route := range routes {
		routesByID[route.ID] = route
	}

	var deliveries []models.Delivery
	if err := db.Find(&deliveries).Error; err != nil {
		t.Fatalf("load deliveries failed: %v", err)
	}
	if len(deliveries) == 0 {
		t.Fatal("no deliveries generated")
	}

	for _, delivery := range deliveries {
		route, ok := routesByID[delivery.RouteID]
		if !ok {
			t.Errorf("delivery %d references missing route %d", delivery.ID, delivery.RouteID)
			continue
		}
		offset := delivery.ScheduledDelivery.Sub(route.ScheduledArrival)
		if offset < 0 || offset > 48*time.Hour {
			t.Errorf("delivery %d: scheduled offset %v out of range", delivery.ID, offset)
		}

		if delivery.Status == constants.DeliveryStatusDelivered {
			if delivery.ActualDelivery == nil {
				t.Errorf("delivery %d: delivered without actual timestamp", delivery.ID)
				continue
			}
			actualOffset := delivery.ActualDelivery.Sub(delivery.ScheduledDelivery)
			if actualOffset < -12*time.Hour || actualOffset > 24*time.Hour {
				t.Errorf("delivery %d: actual offset %v out of range", delivery.ID, actualOffset)
			}
		} else if delivery.ActualDelivery != nil {
			t.Errorf("delivery %d (%s): unexpected actual timestamp", delivery.ID, delivery.Status)
		}
		if delivery.PackageCount < 1 || delivery.PackageCount > 50 {
			t.Errorf("delivery %d: package count %d out of range", delivery.ID, delivery.PackageCount)
		}
	}
}

func TestMaintenanceRules(t *testing.T) {
	db := openSeedTestDB(t, "seed_maintenance")
	runSeed(t, db, testSeedConfig())

	vehiclesByID := map[uint]models.Vehicle{}
	var vehicles []models.Vehicle
	if err := db.Find(&vehicles).Error; err != nil {
		t.Fatalf("load vehicles failed: %v", err)
	}
	for _, vehicle := range vehicles {
		vehiclesByID[vehicle.ID] = vehicle
	}

	var records []models.MaintenanceRecord
	if err := db.Find(&records).Error; err != nil {
		t.Fatalf("load maintenance failed: %v", err)
	}
	if len(records) == 0 {
		t.Fatal("no maintenance records generated")
	}

	for _, record := range records {
		vehicle := vehiclesByID[record.VehicleID]
		if record.MileageAtService > vehicle.CurrentMileage {
			t.Errorf("record %d: service mileage %.1f above current %.1f",
				record.ID, record.MileageAtService, vehicle.CurrentMileage)
		}

		isRoutine := record.MaintenanceType == constants.MaintenanceTypeRoutine
		if isRoutine && record.NextServiceDate == nil {
			t.Errorf("record %d: routine without next service date", record.ID)
		}
		if !isRoutine && record.NextServiceDate != nil {
			t.Errorf("record %d (%s): unexpected next service date", record.ID, record.MaintenanceType)
		}

		heavy := record.MaintenanceType == constants.MaintenanceTypeRepair ||
			record.MaintenanceType == constants.MaintenanceTypeEmergency
		if heavy {
			if record.DowntimeHours < 1 || record.DowntimeHours > 48 {
				t.Errorf("record %d: downtime %.2f out of heavy range", record.ID, record.DowntimeHours)
			}
		} else if record.DowntimeHours < 0.5 || record.DowntimeHours > 4 {
			t.Errorf("record %d: downtime %.2f out of light range", record.ID, record.DowntimeHours)
		}
	}
}

func TestFuelLogRules(t *testing.T) {
	db := openSeedTestDB(t, "seed_fuel")
	runSeed(t, db, testSeedConfig())

	var logs []models.FuelLog
	if err := db.Order("vehicle_id ASC, id ASC").Find(&logs).Error; err != nil {
		t.Fatalf("load fuel logs failed: %v", err)
	}
	if len(logs) == 0 {
		t.Fatal("no fuel logs generated")
	}

	tolerance := decimal.NewFromFloat(1e-6)
	lastMileage := map[uint]float64{}
	for _, log := range logs {
		expected := decimal.NewFromFloat(log.Liters).Mul(log.CostPerLiter)
		if log.TotalCost.Sub(expected).Abs().GreaterThan(tolerance) {
			t.Errorf("log %d: total %s != %.4f x %s", log.ID, log.TotalCost, log.Liters, log.CostPerLiter)
		}
		if log.Liters < 50 || log.Liters > 400 {
			t.Errorf("log %d: liters %.2f out of range", log.ID, log.Liters)
		}

		if previous, ok := lastMileage[log.VehicleID]; ok && log.Mileage <= previous {
			t.Errorf("log %d: mileage %.1f did not advance past %.1f", log.ID, log.Mileage, previous)
		}
		lastMileage[log.VehicleID] = log.Mileage
	}
}

func TestIncidentRules(t *testing.T) {
	db := openSeedTestDB(t, "seed_incidents")
	runSeed(t, db, testSeedConfig())

	var incidents []models.Incident
	if err := db.Find(&incidents).Error; err != nil {
		t.Fatalf("load incidents failed: %v", err)
	}
	if len(incidents) == 0 {
		t.Fatal("no incidents generated")
	}

	costly := map[string]bool{
		constants.IncidentTypeAccident: true,
		constants.IncidentTypeDamage:   true,
		constants.IncidentTypeTheft:    true,
	}
	resolutionCutoff := time.Now().UTC().Add(-7 * 24 * time.Hour)
	for _, incident := range incidents {
		if costly[incident.IncidentType] != incident.Cost.Valid {
			t.Errorf("incident %d (%s): cost presence mismatch", incident.ID, incident.IncidentType)
		}
		if incident.Resolved && !incident.Date.Before(resolutionCutoff) {
			t.Errorf("incident %d: resolved but only %v old", incident.ID, time.Since(incident.Date))
		}
		if incident.Resolved && incident.ResolutionNotes == nil {
			t.Errorf("incident %d: resolved without notes", incident.ID)
		}
		if !incident.Resolved && incident.ResolutionNotes != nil {
			t.Errorf("incident %d: unresolved with notes", incident.ID)
		}
		// Delay incidents carry zero weight for critical severity.
		if incident.IncidentType == constants.IncidentTypeDelay &&
			incident.Severity == constants.IncidentSeverityCritical {
			t.Errorf("incident %d: critical delay should never occur", incident.ID)
		}
	}
}

func TestGPSBoundingBox(t *testing.T) {
	db := openSeedTestDB(t, "seed_gps")
	runSeed(t, db, testSeedConfig())

	var points []models.GPSTracking
	if err := db.Find(&points).Error; err != nil {
		t.Fatalf("load gps failed: %v", err)
	}
	if len(points) == 0 {
		t.Fatal("no gps points generated")
	}

	for _, point := range points {
		if point.Latitude < 25.0 || point.Latitude > 48.0 {
			t.Errorf("point %d: latitude %.4f out of bounds", point.ID, point.Latitude)
		}
		if point.Longitude < -125.0 || point.Longitude > -65.0 {
			t.Errorf("point %d: longitude %.4f out of bounds", point.ID, point.Longitude)
		}
		if point.SpeedKmh < 0 || point.SpeedKmh > 100 {
			t.Errorf("point %d: speed %.2f out of range", point.ID, point.SpeedKmh)
		}
		if point.Heading < 0 || point.Heading >= 360 {
			t.Errorf("point %d: heading %.2f out of range", point.ID, point.Heading)
		}
		if point.Altitude == nil || *point.Altitude < 0 || *point.Altitude > 3000 {
			t.Errorf("point %d: altitude out of range", point.ID)
		}
	}
}

func TestClearRemovesEverything(t *testing.T) {
	db := openSeedTestDB(t, "seed_clear")
	runSeed(t, db, testSeedConfig())

	if err := Clear(db); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	tables := []interface{}{
		&models.Organization{}, &models.Vehicle{}, &models.Driver{},
		&models.Location{}, &models.Route{}, &models.Delivery{},
		&models.MaintenanceRecord{}, &models.FuelLog{}, &models.Incident{},
		&models.GPSTracking{},
	}
	for _, table := range tables {
		if count := tableCount(t, db, table); count != 0 {
			t.Errorf("%T: %d rows remain after clear", table, count)
		}
	}
}
