package repository

import (
	"errors"

	"github.com/fleetops-api/internal/models"

	"gorm.io/gorm"
)

// RouteRepository is the route data access interface.
type RouteRepository interface {
	List(filter RouteListFilter) ([]models.Route, int64, error)
	GetByID(id uint) (*models.Route, error)
	Create(route *models.Route) error
	Update(route *models.Route) error
	Delete(id uint) error
}

// GormRouteRepository is the GORM implementation.
type GormRouteRepository struct {
	db *gorm.DB
}

// NewRouteRepository creates the route repository.
func NewRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{db: db}
}

// List returns a page of routes matching the filter.
func (r *GormRouteRepository) List(filter RouteListFilter) ([]models.Route, int64, error) {
	var routes []models.Route
	query := r.db.Model(&models.Route{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.VehicleID != 0 {
		query = query.Where("vehicle_id = ?", filter.VehicleID)
	}
	if filter.DriverID != 0 {
		query = query.Where("driver_id = ?", filter.DriverID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("id ASC").Find(&routes).Error; err != nil {
		return nil, 0, err
	}
	return routes, total, nil
}

// GetByID returns a route, or nil when missing.
func (r *GormRouteRepository) GetByID(id uint) (*models.Route, error) {
	var route models.Route
	if err := r.db.First(&route, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &route, nil
}

// Create inserts a route.
func (r *GormRouteRepository) Create(route *models.Route) error {
	return r.db.Create(route).Error
}

// Update persists all fields of a route.
func (r *GormRouteRepository) Update(route *models.Route) error {
	return r.db.Save(route).Error
}

// Delete removes a route by ID.
func (r *GormRouteRepository) Delete(id uint) error {
	return r.db.Delete(&models.Route{}, id).Error
}
