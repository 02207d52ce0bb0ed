package provider

import (
	"github.com/fleetops-api/internal/config"
	"github.com/fleetops-api/internal/models"
	"github.com/fleetops-api/internal/repository"
	"github.com/fleetops-api/internal/service"
)

// Container wires repositories and services for the handlers.
type Container struct {
	Config *config.Config

	// Repositories
	OrganizationRepo repository.OrganizationRepository
	VehicleRepo      repository.VehicleRepository
	DriverRepo       repository.DriverRepository
	LocationRepo     repository.LocationRepository
	RouteRepo        repository.RouteRepository
	DeliveryRepo     repository.DeliveryRepository
	MaintenanceRepo  repository.MaintenanceRepository
	FuelLogRepo      repository.FuelLogRepository
	IncidentRepo     repository.IncidentRepository
	GPSRepo          repository.GPSRepository

	// Services
	SeedService *service.SeedService
}

// NewContainer builds the container from the live database connection.
func NewContainer(cfg *config.Config) *Container {
	c := &Container{
		Config: cfg,
	}
	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.OrganizationRepo = repository.NewOrganizationRepository(db)
	c.VehicleRepo = repository.NewVehicleRepository(db)
	c.DriverRepo = repository.NewDriverRepository(db)
	c.LocationRepo = repository.NewLocationRepository(db)
	c.RouteRepo = repository.NewRouteRepository(db)
	c.DeliveryRepo = repository.NewDeliveryRepository(db)
	c.MaintenanceRepo = repository.NewMaintenanceRepository(db)
	c.FuelLogRepo = repository.NewFuelLogRepository(db)
	c.IncidentRepo = repository.NewIncidentRepository(db)
	c.GPSRepo = repository.NewGPSRepository(db)
}

func (c *Container) initServices() {
	c.SeedService = service.NewSeedService(models.DB, &c.Config.Seed)
}
