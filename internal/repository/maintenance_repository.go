package repository

import (
	"errors"

	"github.com/fleetops-api/internal/models"

	"gorm.io/gorm"
)

// MaintenanceRepository is the maintenance record data access interface.
type MaintenanceRepository interface {
	List(filter MaintenanceListFilter) ([]models.MaintenanceRecord, int64, error)
	GetByID(id uint) (*models.MaintenanceRecord, error)
	Create(record *models.MaintenanceRecord) error
	Update(record *models.MaintenanceRecord) error
	Delete(id uint) error
}

// GormMaintenanceRepository is the GORM implementation.
type GormMaintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository creates the maintenance repository.
func NewMaintenanceRepository(db *gorm.DB) *GormMaintenanceRepository {
	return &GormMaintenanceRepository{db: db}
}

// List returns a page of maintenance records matching the filter.
func (r *GormMaintenanceRepository) List(filter MaintenanceListFilter) ([]models.MaintenanceRecord, int64, error) {
	var records []models.MaintenanceRecord
	query := r.db.Model(&models.MaintenanceRecord{})

	if filter.VehicleID != 0 {
		query = query.Where("vehicle_id = ?", filter.VehicleID)
	}
	if filter.MaintenanceType != "" {
		query = query.Where("maintenance_type = ?", filter.MaintenanceType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("id ASC").Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// GetByID returns a maintenance record, or nil when missing.
func (r *GormMaintenanceRepository) GetByID(id uint) (*models.MaintenanceRecord, error) {
	var record models.MaintenanceRecord
	if err := r.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// Create inserts a maintenance record.
func (r *GormMaintenanceRepository) Create(record *models.MaintenanceRecord) error {
	return r.db.Create(record).Error
}

// Update persists all fields of a maintenance record.
func (r *GormMaintenanceRepository) Update(record *models.MaintenanceRecord) error {
	return r.db.Save(record).Error
}

// Delete removes a maintenance record by ID.
func (r *GormMaintenanceRepository) Delete(id uint) error {
	return r.db.Delete(&models.MaintenanceRecord{}, id).Error
}
