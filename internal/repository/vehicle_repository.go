package repository

import (
	"errors"

	"github.com/fleetops-api/internal/models"

	"gorm.io/gorm"
)

// VehicleRepository is the vehicle data access interface.
type VehicleRepository interface {
	List(filter VehicleListFilter) ([]models.Vehicle, int64, error)
	GetByID(id uint) (*models.Vehicle, error)
	Create(vehicle *models.Vehicle) error
	Update(vehicle *models.Vehicle) error
	Delete(id uint) error
}

// GormVehicleRepository is the GORM implementation.
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates the vehicle repository.
func NewVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// List returns a page of vehicles matching the filter.
func (r *GormVehicleRepository) List(filter VehicleListFilter) ([]models.Vehicle, int64, error) {
	var vehicles []models.Vehicle
	query := r.db.Model(&models.Vehicle{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.VehicleType != "" {
		query = query.Where("vehicle_type = ?", filter.VehicleType)
	}
	if filter.OrganizationID != 0 {
		query = query.Where("organization_id = ?", filter.OrganizationID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("id ASC").Find(&vehicles).Error; err != nil {
		return nil, 0, err
	}
	return vehicles, total, nil
}

// GetByID returns a vehicle, or nil when missing.
func (r *GormVehicleRepository) GetByID(id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vehicle, nil
}

// Create inserts a vehicle.
func (r *GormVehicleRepository) Create(vehicle *models.Vehicle) error {
	return r.db.Create(vehicle).Error
}

// Update persists all fields of a vehicle.
func (r *GormVehicleRepository) Update(vehicle *models.Vehicle) error {
	return r.db.Save(vehicle).Error
}

// Delete removes a vehicle by ID.
func (r *GormVehicleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Vehicle{}, id).Error
}
