package repository

import (
	"errors"

	"github.com/fleetops-api/internal/models"

	"gorm.io/gorm"
)

// GPSRepository is the GPS tracking data access interface. Points are
// immutable once recorded, so there is no Update.
type GPSRepository interface {
	List(filter GPSListFilter) ([]models.GPSTracking, int64, error)
	GetByID(id uint) (*models.GPSTracking, error)
	LatestByVehicle(vehicleID uint) (*models.GPSTracking, error)
	Create(point *models.GPSTracking) error
	Delete(id uint) error
}

// GormGPSRepository is the GORM implementation.
type GormGPSRepository struct {
	db *gorm.DB
}

// NewGPSRepository creates the GPS tracking repository.
func NewGPSRepository(db *gorm.DB) *GormGPSRepository {
	return &GormGPSRepository{db: db}
}

// List returns a page of GPS points matching the filter, newest first.
func (r *GormGPSRepository) List(filter GPSListFilter) ([]models.GPSTracking, int64, error) {
	var points []models.GPSTracking
	query := r.db.Model(&models.GPSTracking{})

	if filter.VehicleID != 0 {
		query = query.Where("vehicle_id = ?", filter.VehicleID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("timestamp DESC").Find(&points).Error; err != nil {
		return nil, 0, err
	}
	return points, total, nil
}

// GetByID returns a GPS point, or nil when missing.
func (r *GormGPSRepository) GetByID(id uint) (*models.GPSTracking, error) {
	var point models.GPSTracking
	if err := r.db.First(&point, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &point, nil
}

// LatestByVehicle returns the most recent GPS point for a vehicle, or nil
// when the vehicle has no points.
func (r *GormGPSRepository) LatestByVehicle(vehicleID uint) (*models.GPSTracking, error) {
	var point models.GPSTracking
	err := r.db.Where("vehicle_id = ?", vehicleID).Order("timestamp DESC").First(&point).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &point, nil
}

// Create inserts a GPS point.
func (r *GormGPSRepository) Create(point *models.GPSTracking) error {
	return r.db.Create(point).Error
}

// Delete removes a GPS point by ID.
func (r *GormGPSRepository) Delete(id uint) error {
	return r.db.Delete(&models.GPSTracking{}, id).Error
}
