package repository

import (
	"errors"

	"github.com/fleetops-api/internal/models"

	"gorm.io/gorm"
)

// FuelLogRepository is the fuel log data access interface.
type FuelLogRepository interface {
	List(filter FuelLogListFilter) ([]models.FuelLog, int64, error)
	GetByID(id uint) (*models.FuelLog, error)
	Create(log *models.FuelLog) error
	Update(log *models.FuelLog) error
	Delete(id uint) error
}

// GormFuelLogRepository is the GORM implementation.
type GormFuelLogRepository struct {
	db *gorm.DB
}

// NewFuelLogRepository creates the fuel log repository.
func NewFuelLogRepository(db *gorm.DB) *GormFuelLogRepository {
	return &GormFuelLogRepository{db: db}
}

// List returns a page of fuel logs matching the filter.
func (r *GormFuelLogRepository) List(filter FuelLogListFilter) ([]models.FuelLog, int64, error) {
	var logs []models.FuelLog
	query := r.db.Model(&models.FuelLog{})

	if filter.VehicleID != 0 {
		query = query.Where("vehicle_id = ?", filter.VehicleID)
	}
	if filter.FuelType != "" {
		query = query.Where("fuel_type = ?", filter.FuelType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("id ASC").Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// GetByID returns a fuel log, or nil when missing.
func (r *GormFuelLogRepository) GetByID(id uint) (*models.FuelLog, error) {
	var log models.FuelLog
	if err := r.db.First(&log, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

// Create inserts a fuel log.
func (r *GormFuelLogRepository) Create(log *models.FuelLog) error {
	return r.db.Create(log).Error
}

// Update persists all fields of a fuel log.
func (r *GormFuelLogRepository) Update(log *models.FuelLog) error {
	return r.db.Save(log).Error
}

// Delete removes a fuel log by ID.
func (r *GormFuelLogRepository) Delete(id uint) error {
	return r.db.Delete(&models.FuelLog{}, id).Error
}
