package seed

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/fleetops-api/internal/config"
	"github.com/fleetops-api/internal/constants"
	"github.com/fleetops-api/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const defaultSeed = 42

const insertBatchSize = 100

var organizationNames = []string{
	"Swift Logistics Inc",
	"National Transport Co",
	"Premier Freight Services",
}

var vehicleMakes = []string{
	"Ford", "Chevrolet", "Freightliner", "Peterbilt",
	"Kenworth", "Volvo", "Mercedes-Benz", "RAM",
}

var vehicleModels = map[string][]string{
	"Ford":          {"Transit", "F-150", "F-250", "E-Series"},
	"Chevrolet":     {"Express", "Silverado 2500", "Silverado 3500"},
	"Freightliner":  {"Cascadia", "M2 106", "Sprinter"},
	"Peterbilt":     {"579", "389", "567"},
	"Kenworth":      {"T680", "W900", "T880"},
	"Volvo":         {"VNL", "VNR"},
	"Mercedes-Benz": {"Sprinter", "Actros"},
	"RAM":           {"ProMaster", "2500", "3500"},
}

var vehicleTypes = []string{
	constants.VehicleTypeCargoVan,
	constants.VehicleTypePickupTruck,
	constants.VehicleTypeBoxTruck,
	constants.VehicleTypeSemiTruck,
	constants.VehicleTypeRefrigeratedTruck,
}

var vehicleCapacities = []float64{1000, 2000, 5000, 10000, 20000}

var locationTypes = []string{
	constants.LocationTypeWarehouse,
	constants.LocationTypeDepot,
	constants.LocationTypeCustomer,
	constants.LocationTypeDistributionCenter,
}

var usStates = []string{"CA", "TX", "FL", "NY", "PA", "IL", "OH", "GA", "NC", "MI"}

var maintenanceDescriptions = map[string][]string{
	constants.MaintenanceTypeRoutine:    {"Oil change and filter replacement", "Tire rotation", "Brake inspection"},
	constants.MaintenanceTypeRepair:     {"Engine repair", "Transmission service", "Suspension repair"},
	constants.MaintenanceTypeInspection: {"Annual DOT inspection", "Safety inspection", "Emissions test"},
	constants.MaintenanceTypeEmergency:  {"Roadside breakdown repair", "Accident damage repair", "Tow service"},
}

var incidentTypes = []string{
	constants.IncidentTypeAccident,
	constants.IncidentTypeDelay,
	constants.IncidentTypeDamage,
	constants.IncidentTypeTheft,
	constants.IncidentTypeViolation,
}

var severityLevels = []string{
	constants.IncidentSeverityMinor,
	constants.IncidentSeverityModerate,
	constants.IncidentSeverityMajor,
	constants.IncidentSeverityCritical,
}

var severityWeights = map[string][]float64{
	constants.IncidentTypeAccident:  {0.5, 0.3, 0.15, 0.05},
	constants.IncidentTypeDelay:     {0.7, 0.25, 0.05, 0.0},
	constants.IncidentTypeDamage:    {0.4, 0.4, 0.15, 0.05},
	constants.IncidentTypeTheft:     {0.2, 0.3, 0.3, 0.2},
	constants.IncidentTypeViolation: {0.6, 0.3, 0.08, 0.02},
}

const vinChars = "ABCDEFGHJKLMNPRSTUVWXYZ0123456789"

// Summary counts what a seeding run produced.
type Summary struct {
	Organizations      int    `json:"organizations"`
	Vehicles           int    `json:"vehicles"`
	Drivers            int    `json:"drivers"`
	Locations          int    `json:"locations"`
	Routes             int    `json:"routes"`
	Deliveries         int    `json:"deliveries"`
	MaintenanceRecords int    `json:"maintenance_records"`
	FuelLogs           int    `json:"fuel_logs"`
	Incidents          int    `json:"incidents"`
	GPSTracking        int    `json:"gps_tracking"`
	TimeSpan           string `json:"time_span"`
}

// Result is the outcome of a seeding run.
type Result struct {
	Status     string   `json:"status"` // success, warning, error
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
	Details    []string `json:"details,omitempty"`
	Summary    *Summary `json:"summary,omitempty"`
}

// Generator produces the synthetic fleet dataset. All numeric and weighted
// draws come from a single rand.Rand so a given seed reproduces the same
// dataset; the faker keeps its own stream seeded from the same master seed.
type Generator struct {
	db       *gorm.DB
	cfg      config.SeedConfig
	rng      *rand.Rand
	faker    *gofakeit.Faker
	now      time.Time
	baseDate time.Time
}

// NewGenerator builds a generator for the given connection and settings.
// Zero or negative counts fall back to the defaults.
func NewGenerator(db *gorm.DB, cfg config.SeedConfig) *Generator {
	if cfg.Seed == 0 {
		cfg.Seed = defaultSeed
	}
	cfg.Organizations = defaultCount(cfg.Organizations, 3)
	cfg.Vehicles = defaultCount(cfg.Vehicles, 50)
	cfg.Drivers = defaultCount(cfg.Drivers, 60)
	cfg.Locations = defaultCount(cfg.Locations, 100)
	cfg.Routes = defaultCount(cfg.Routes, 400)
	cfg.Deliveries = defaultCount(cfg.Deliveries, 1000)
	cfg.HistoryMonths = defaultCount(cfg.HistoryMonths, 6)

	now := time.Now().UTC()
	return &Generator{
		db:       db,
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		faker:    gofakeit.New(cfg.Seed),
		now:      now,
		baseDate: now.AddDate(0, 0, -cfg.HistoryMonths*30),
	}
}

func defaultCount(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}

func (g *Generator) historyDays() int {
	return g.cfg.HistoryMonths * 30
}

// Run executes all stages in dependency order. Each stage commits in its own
// transaction so later stages read persisted IDs; a failed stage rolls back
// and aborts the run. When organizations already exist the run is skipped
// with a warning result.
func (g *Generator) Run() (*Result, error) {
	var orgCount int64
	if err := g.db.Model(&models.Organization{}).Count(&orgCount).Error; err != nil {
		return errorResult(nil, err), err
	}
	if orgCount > 0 {
		return &Result{
			Status:     "warning",
			Message:    fmt.Sprintf("database already contains %d organizations, seeding skipped", orgCount),
			Suggestion: "clear the database first to re-seed",
		}, nil
	}

	var details []string

	orgs, err := g.seedOrganizations()
	if err != nil {
		return errorResult(details, err), err
	}
	details = append(details, fmt.Sprintf("created %d organizations", len(orgs)))

	vehicles, err := g.seedVehicles(orgs)
	if err != nil {
		return errorResult(details, err), err
	}
	details = append(details, fmt.Sprintf("created %d vehicles", len(vehicles)))

	drivers, err := g.seedDrivers(orgs)
	if err != nil {
		return errorResult(details, err), err
	}
	details = append(details, fmt.Sprintf("created %d drivers", len(drivers)))

	locations, err := g.seedLocations(orgs)
	if err != nil {
		return errorResult(details, err), err
	}
	details = append(details, fmt.Sprintf("created %d locations", len(locations)))

	routes, err := g.seedRoutes(vehicles, drivers, locations)
	if err != nil {
		return errorResult(details, err), err
	}
	details = append(details, fmt.Sprintf("created %d routes", len(routes)))

	deliveries, err := g.seedDeliveries(routes, locations)
	if err != nil {
		return errorResult(details, err), err
	}
	details = append(details, fmt.Sprintf("created %d deliveries", deliveries))

	maintenanceCount, err := g.seedMaintenanceRecords(vehicles)
	if err != nil {
		return errorResult(details, err), err
	}
	details = append(details, fmt.Sprintf("created %d maintenance records", maintenanceCount))

	fuelCount, err := g.seedFuelLogs(vehicles)
	if err != nil {
		return errorResult(details, err), err
	}
	details = append(details, fmt.Sprintf("created %d fuel logs", fuelCount))

	incidentCount, err := g.seedIncidents(drivers)
	if err != nil {
		return errorResult(details, err), err
	}
	details = append(details, fmt.Sprintf("created %d incidents", incidentCount))

	gpsCount, err := g.seedGPSTracking(vehicles)
	if err != nil {
		return errorResult(details, err), err
	}
	details = append(details, fmt.Sprintf("created %d gps tracking points", gpsCount))

	return &Result{
		Status:  "success",
		Message: "database fully seeded with synthetic fleet logistics data",
		Details: details,
		Summary: &Summary{
			Organizations:      len(orgs),
			Vehicles:           len(vehicles),
			Drivers:            len(drivers),
			Locations:          len(locations),
			Routes:             len(routes),
			Deliveries:         deliveries,
			MaintenanceRecords: maintenanceCount,
			FuelLogs:           fuelCount,
			Incidents:          incidentCount,
			GPSTracking:        gpsCount,
			TimeSpan:           fmt.Sprintf("%d months", g.cfg.HistoryMonths),
		},
	}, nil
}

func errorResult(details []string, err error) *Result {
	return &Result{
		Status:  "error",
		Message: err.Error(),
		Details: details,
	}
}

func (g *Generator) insert(rows interface{}) error {
	return g.db.Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(rows, insertBatchSize).Error
	})
}

func (g *Generator) seedOrganizations() ([]models.Organization, error) {
	orgs := make([]models.Organization, 0, g.cfg.Organizations)
	for i := 0; i < g.cfg.Organizations; i++ {
		name := g.faker.Company()
		if i < len(organizationNames) {
			name = organizationNames[i]
		}
		orgs = append(orgs, models.Organization{
			Name:      name,
			Email:     g.faker.Email(),
			Phone:     g.faker.PhoneFormatted(),
			Address:   g.faker.Address().Address,
			CreatedAt: g.now.AddDate(0, 0, -intRange(g.rng, 365, 1825)),
		})
	}
	if err := g.insert(&orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

func (g *Generator) generateVIN() string {
	var b strings.Builder
	for i := 0; i < 17; i++ {
		b.WriteByte(vinChars[g.rng.Intn(len(vinChars))])
	}
	return b.String()
}

func (g *Generator) generateTrackingNumber() string {
	return fmt.Sprintf("TRK%d", intRange(g.rng, 100000000, 999999999))
}

func (g *Generator) seedVehicles(orgs []models.Organization) ([]models.Vehicle, error) {
	statuses := []string{
		constants.VehicleStatusActive,
		constants.VehicleStatusMaintenance,
		constants.VehicleStatusRetired,
	}
	statusWeights := []float64{0.85, 0.13, 0.02}

	vehicles := make([]models.Vehicle, 0, g.cfg.Vehicles)
	for i := 0; i < g.cfg.Vehicles; i++ {
		vehicleMake := choice(g.rng, vehicleMakes)
		plate := fmt.Sprintf("%s%s%d",
			strings.ToUpper(g.faker.Letter()),
			strings.ToUpper(g.faker.Letter()),
			intRange(g.rng, 1000, 9999),
		)
		vehicles = append(vehicles, models.Vehicle{
			OrganizationID: orgs[g.rng.Intn(len(orgs))].ID,
			VIN:            g.generateVIN(),
			Make:           vehicleMake,
			Model:          choice(g.rng, vehicleModels[vehicleMake]),
			Year:           intRange(g.rng, 2015, 2024),
			LicensePlate:   plate,
			VehicleType:    choice(g.rng, vehicleTypes),
			CapacityKg:     vehicleCapacities[g.rng.Intn(len(vehicleCapacities))],
			Status:         statuses[weightedChoice(g.rng, statusWeights)],
			CurrentMileage: uniform(g.rng, 10000, 500000),
			CreatedAt:      g.baseDate.AddDate(0, 0, intRange(g.rng, 0, 60)),
		})
	}
	if err := g.insert(&vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (g *Generator) seedDrivers(orgs []models.Organization) ([]models.Driver, error) {
	statuses := []string{
		constants.DriverStatusActive,
		constants.DriverStatusInactive,
		constants.DriverStatusOnLeave,
	}
	statusWeights := []float64{0.9, 0.05, 0.05}

	seenEmails := make(map[string]bool, g.cfg.Drivers)
	drivers := make([]models.Driver, 0, g.cfg.Drivers)
	for i := 0; i < g.cfg.Drivers; i++ {
		email := g.faker.Email()
		for seenEmails[email] {
			email = fmt.Sprintf("%d.%s", i, email)
		}
		seenEmails[email] = true

		hireDate := g.baseDate.AddDate(0, 0, intRange(g.rng, 0, g.historyDays()))
		rating := math.Round(uniform(g.rng, 3.5, 5.0)*10) / 10

		drivers = append(drivers, models.Driver{
			OrganizationID: orgs[g.rng.Intn(len(orgs))].ID,
			FirstName:      g.faker.FirstName(),
			LastName:       g.faker.LastName(),
			Email:          email,
			Phone:          g.faker.PhoneFormatted(),
			LicenseNumber:  fmt.Sprintf("DL%d", intRange(g.rng, 10000000, 99999999)),
			LicenseExpiry:  g.now.AddDate(0, 0, intRange(g.rng, 30, 1825)),
			Status:         statuses[weightedChoice(g.rng, statusWeights)],
			HireDate:       hireDate,
			Rating:         rating,
			CreatedAt:      hireDate,
		})
	}
	if err := g.insert(&drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}

func (g *Generator) seedLocations(orgs []models.Organization) ([]models.Location, error) {
	locations := make([]models.Location, 0, g.cfg.Locations)
	for i := 0; i < g.cfg.Locations; i++ {
		locations = append(locations, models.Location{
			OrganizationID: orgs[g.rng.Intn(len(orgs))].ID,
			Name:           fmt.Sprintf("%s - %s", g.faker.Company(), g.faker.City()),
			Type:           choice(g.rng, locationTypes),
			Address:        g.faker.Street(),
			City:           g.faker.City(),
			State:          choice(g.rng, usStates),
			PostalCode:     g.faker.Zip(),
			Country:        "USA",
			Latitude:       uniform(g.rng, 25.0, 48.0),
			Longitude:      uniform(g.rng, -125.0, -65.0),
			CreatedAt:      g.now.AddDate(0, 0, -intRange(g.rng, 30, g.historyDays())),
		})
	}
	if err := g.insert(&locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (g *Generator) seedRoutes(vehicles []models.Vehicle, drivers []models.Driver, locations []models.Location) ([]models.Route, error) {
	statuses := []string{
		constants.RouteStatusScheduled,
		constants.RouteStatusInProgress,
		constants.RouteStatusCompleted,
		constants.RouteStatusCancelled,
	}
	statusWeights := []float64{0.1, 0.05, 0.8, 0.05}

	routes := make([]models.Route, 0, g.cfg.Routes)
	for i := 0; i < g.cfg.Routes; i++ {
		origin := g.rng.Intn(len(locations))
		destination := g.rng.Intn(len(locations))
		for destination == origin {
			destination = g.rng.Intn(len(locations))
		}

		scheduledDeparture := g.baseDate.
			AddDate(0, 0, intRange(g.rng, 0, g.historyDays())).
			Add(time.Duration(intRange(g.rng, 0, 23)) * time.Hour)
		distanceKm := uniform(g.rng, 50, 2000)
		durationHours := distanceKm / uniform(g.rng, 60, 80)
		scheduledArrival := scheduledDeparture.Add(time.Duration(durationHours * float64(time.Hour)))

		status := statuses[weightedChoice(g.rng, statusWeights)]

		var actualDeparture, actualArrival *time.Time
		if status == constants.RouteStatusInProgress || status == constants.RouteStatusCompleted {
			dep := scheduledDeparture.Add(time.Duration(intRange(g.rng, -30, 60)) * time.Minute)
			actualDeparture = &dep
			if status == constants.RouteStatusCompleted {
				arr := scheduledArrival.Add(time.Duration(intRange(g.rng, -60, 120)) * time.Minute)
				actualArrival = &arr
			}
		}

		routes = append(routes, models.Route{
			VehicleID:             vehicles[g.rng.Intn(len(vehicles))].ID,
			DriverID:              drivers[g.rng.Intn(len(drivers))].ID,
			OriginLocationID:      locations[origin].ID,
			DestinationLocationID: locations[destination].ID,
			ScheduledDeparture:    scheduledDeparture,
			ActualDeparture:       actualDeparture,
			ScheduledArrival:      scheduledArrival,
			ActualArrival:         actualArrival,
			DistanceKm:            distanceKm,
			Status:                status,
			CreatedAt:             scheduledDeparture.AddDate(0, 0, -intRange(g.rng, 1, 7)),
		})
	}
	if err := g.insert(&routes); err != nil {
		return nil, err
	}
	return routes, nil
}

func (g *Generator) seedDeliveries(routes []models.Route, locations []models.Location) (int, error) {
	statuses := []string{
		constants.DeliveryStatusPending,
		constants.DeliveryStatusInTransit,
		constants.DeliveryStatusDelivered,
		constants.DeliveryStatusFailed,
	}
	priorities := []string{
		constants.DeliveryPriorityStandard,
		constants.DeliveryPriorityExpress,
		constants.DeliveryPriorityUrgent,
	}
	priorityWeights := []float64{0.7, 0.2, 0.1}

	deliveries := make([]models.Delivery, 0, g.cfg.Deliveries)
	for i := 0; i < g.cfg.Deliveries; i++ {
		route := routes[g.rng.Intn(len(routes))]

		scheduledDelivery := route.ScheduledArrival.Add(time.Duration(intRange(g.rng, 0, 48)) * time.Hour)

		statusWeights := []float64{0.7, 0.2, 0.08, 0.02}
		if route.Status == constants.RouteStatusCompleted {
			statusWeights = []float64{0.05, 0.1, 0.83, 0.02}
		}
		status := statuses[weightedChoice(g.rng, statusWeights)]

		var actualDelivery *time.Time
		if status == constants.DeliveryStatusDelivered {
			actual := scheduledDelivery.Add(time.Duration(intRange(g.rng, -12, 24)) * time.Hour)
			actualDelivery = &actual
		}

		var notes *string
		if g.rng.Float64() > 0.7 {
			sentence := g.faker.Sentence(6)
			notes = &sentence
		}

		deliveries = append(deliveries, models.Delivery{
			RouteID:           route.ID,
			LocationID:        locations[g.rng.Intn(len(locations))].ID,
			TrackingNumber:    g.generateTrackingNumber(),
			CustomerName:      g.faker.Name(),
			CustomerEmail:     g.faker.Email(),
			CustomerPhone:     g.faker.PhoneFormatted(),
			PackageCount:      intRange(g.rng, 1, 50),
			WeightKg:          uniform(g.rng, 1, 1000),
			Status:            status,
			Priority:          priorities[weightedChoice(g.rng, priorityWeights)],
			ScheduledDelivery: scheduledDelivery,
			ActualDelivery:    actualDelivery,
			DeliveryNotes:     notes,
			SignatureRequired: g.rng.Intn(2) == 0,
			CreatedAt:         route.CreatedAt,
		})
	}
	if err := g.insert(&deliveries); err != nil {
		return 0, err
	}
	return len(deliveries), nil
}

func (g *Generator) seedMaintenanceRecords(vehicles []models.Vehicle) (int, error) {
	types := []string{
		constants.MaintenanceTypeRoutine,
		constants.MaintenanceTypeRepair,
		constants.MaintenanceTypeInspection,
		constants.MaintenanceTypeEmergency,
	}

	var records []models.MaintenanceRecord
	for _, vehicle := range vehicles {
		numRecords := intRange(g.rng, 2, 6)
		for i := 0; i < numRecords; i++ {
			serviceDate := g.baseDate.AddDate(0, 0, intRange(g.rng, 0, g.historyDays()))
			maintenanceType := choice(g.rng, types)

			var nextServiceDate *time.Time
			if maintenanceType == constants.MaintenanceTypeRoutine {
				next := serviceDate.AddDate(0, 0, intRange(g.rng, 30, 180))
				nextServiceDate = &next
			}

			downtime := uniform(g.rng, 0.5, 4)
			if maintenanceType == constants.MaintenanceTypeRepair || maintenanceType == constants.MaintenanceTypeEmergency {
				downtime = uniform(g.rng, 1, 48)
			}

			records = append(records, models.MaintenanceRecord{
				VehicleID:        vehicle.ID,
				MaintenanceType:  maintenanceType,
				Description:      choice(g.rng, maintenanceDescriptions[maintenanceType]),
				Cost:             decimal.NewFromFloat(uniform(g.rng, 100, 5000)).Round(2),
				MileageAtService: vehicle.CurrentMileage - uniform(g.rng, 0, 50000),
				ServiceDate:      serviceDate,
				NextServiceDate:  nextServiceDate,
				ServiceProvider:  g.faker.Company(),
				DowntimeHours:    downtime,
				CreatedAt:        serviceDate,
			})
		}
	}
	if err := g.insert(&records); err != nil {
		return 0, err
	}
	return len(records), nil
}

func (g *Generator) seedFuelLogs(vehicles []models.Vehicle) (int, error) {
	fuelTypes := []string{
		constants.FuelTypeDiesel,
		constants.FuelTypeGasoline,
		constants.FuelTypeElectric,
	}
	fuelWeights := []float64{0.7, 0.25, 0.05}

	var logs []models.FuelLog
	for _, vehicle := range vehicles {
		numLogs := intRange(g.rng, 20, 40)
		mileage := vehicle.CurrentMileage - uniform(g.rng, 10000, 50000)

		for i := 0; i < numLogs; i++ {
			fuelDate := g.baseDate.Add(time.Duration(uniform(g.rng, 0, float64(g.historyDays())*24) * float64(time.Hour)))
			liters := uniform(g.rng, 50, 400)
			costPerLiter := decimal.NewFromFloat(uniform(g.rng, 1.2, 2.0)).Round(2)

			logs = append(logs, models.FuelLog{
				VehicleID:    vehicle.ID,
				Date:         fuelDate,
				Location:     fmt.Sprintf("%s, %s", g.faker.City(), choice(g.rng, usStates)),
				Liters:       liters,
				CostPerLiter: costPerLiter,
				TotalCost:    decimal.NewFromFloat(liters).Mul(costPerLiter),
				Mileage:      mileage,
				FuelType:     fuelTypes[weightedChoice(g.rng, fuelWeights)],
				CreatedAt:    fuelDate,
			})
			mileage += uniform(g.rng, 200, 800)
		}
	}
	if err := g.insert(&logs); err != nil {
		return 0, err
	}
	return len(logs), nil
}

func (g *Generator) seedIncidents(drivers []models.Driver) (int, error) {
	subset := sampleIndexes(g.rng, len(drivers), int(float64(len(drivers))*0.3))

	var incidents []models.Incident
	for _, idx := range subset {
		driver := drivers[idx]
		numIncidents := intRange(g.rng, 1, 3)

		for i := 0; i < numIncidents; i++ {
			incidentDate := g.baseDate.AddDate(0, 0, intRange(g.rng, 0, g.historyDays()))
			incidentType := choice(g.rng, incidentTypes)
			severity := severityLevels[weightedChoice(g.rng, severityWeights[incidentType])]

			var cost decimal.NullDecimal
			switch incidentType {
			case constants.IncidentTypeAccident, constants.IncidentTypeDamage, constants.IncidentTypeTheft:
				cost = decimal.NewNullDecimal(decimal.NewFromFloat(uniform(g.rng, 100, 10000)).Round(2))
			}

			resolved := incidentDate.Before(g.now.AddDate(0, 0, -7))
			var resolutionNotes *string
			if resolved {
				sentence := g.faker.Sentence(6)
				resolutionNotes = &sentence
			}

			incidents = append(incidents, models.Incident{
				DriverID:        driver.ID,
				IncidentType:    incidentType,
				Severity:        severity,
				Description:     g.faker.Sentence(6),
				Date:            incidentDate,
				Location:        fmt.Sprintf("%s, %s, %s", g.faker.Street(), g.faker.City(), choice(g.rng, usStates)),
				Cost:            cost,
				Resolved:        resolved,
				ResolutionNotes: resolutionNotes,
				CreatedAt:       incidentDate,
			})
		}
	}
	if err := g.insert(&incidents); err != nil {
		return 0, err
	}
	return len(incidents), nil
}

func (g *Generator) seedGPSTracking(vehicles []models.Vehicle) (int, error) {
	subset := sampleIndexes(g.rng, len(vehicles), 30)
	recentDate := g.now.AddDate(0, 0, -30)

	var points []models.GPSTracking
	for _, idx := range subset {
		vehicle := vehicles[idx]
		numPoints := intRange(g.rng, 50, 200)

		lat := uniform(g.rng, 25.0, 48.0)
		lon := uniform(g.rng, -125.0, -65.0)

		for i := 0; i < numPoints; i++ {
			timestamp := recentDate.Add(time.Duration(uniform(g.rng, 0, 30*24*60) * float64(time.Minute)))

			lat += uniform(g.rng, -0.1, 0.1)
			lon += uniform(g.rng, -0.1, 0.1)
			lat = clamp(lat, 25.0, 48.0)
			lon = clamp(lon, -125.0, -65.0)

			altitude := uniform(g.rng, 0, 3000)
			points = append(points, models.GPSTracking{
				VehicleID: vehicle.ID,
				Timestamp: timestamp,
				Latitude:  lat,
				Longitude: lon,
				SpeedKmh:  uniform(g.rng, 0, 100),
				Heading:   uniform(g.rng, 0, 360),
				Altitude:  &altitude,
			})
		}
	}
	if err := g.insert(&points); err != nil {
		return 0, err
	}
	return len(points), nil
}

func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
