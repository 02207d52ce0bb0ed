package repository

import (
	"errors"

	"github.com/fleetops-api/internal/models"

	"gorm.io/gorm"
)

// DriverRepository is the driver data access interface.
type DriverRepository interface {
	List(filter DriverListFilter) ([]models.Driver, int64, error)
	GetByID(id uint) (*models.Driver, error)
	Create(driver *models.Driver) error
	Update(driver *models.Driver) error
	Delete(id uint) error
}

// GormDriverRepository is the GORM implementation.
type GormDriverRepository struct {
	db *gorm.DB
}

// NewDriverRepository creates the driver repository.
func NewDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// List returns a page of drivers matching the filter.
func (r *GormDriverRepository) List(filter DriverListFilter) ([]models.Driver, int64, error) {
	var drivers []models.Driver
	query := r.db.Model(&models.Driver{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.OrganizationID != 0 {
		query = query.Where("organization_id = ?", filter.OrganizationID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("id ASC").Find(&drivers).Error; err != nil {
		return nil, 0, err
	}
	return drivers, total, nil
}

// GetByID returns a driver, or nil when missing.
func (r *GormDriverRepository) GetByID(id uint) (*models.Driver, error) {
	var driver models.Driver
	if err := r.db.First(&driver, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &driver, nil
}

// Create inserts a driver.
func (r *GormDriverRepository) Create(driver *models.Driver) error {
	return r.db.Create(driver).Error
}

// Update persists all fields of a driver.
func (r *GormDriverRepository) Update(driver *models.Driver) error {
	return r.db.Save(driver).Error
}

// Delete removes a driver by ID.
func (r *GormDriverRepository) Delete(id uint) error {
	return r.db.Delete(&models.Driver{}, id).Error
}
