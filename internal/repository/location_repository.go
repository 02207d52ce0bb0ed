package repository

import (
	"errors"
	"strings"

	"github.com/fleetops-api/internal/models"

	"gorm.io/gorm"
)

// LocationRepository is the location data access interface.
type LocationRepository interface {
	List(filter LocationListFilter) ([]models.Location, int64, error)
	GetByID(id uint) (*models.Location, error)
	Create(location *models.Location) error
	Update(location *models.Location) error
	Delete(id uint) error
}

// GormLocationRepository is the GORM implementation.
type GormLocationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates the location repository.
func NewLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// List returns a page of locations matching the filter.
func (r *GormLocationRepository) List(filter LocationListFilter) ([]models.Location, int64, error) {
	var locations []models.Location
	query := r.db.Model(&models.Location{})

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if city := strings.TrimSpace(filter.City); city != "" {
		query = query.Where("city LIKE ?", "%"+city+"%")
	}
	if filter.State != "" {
		query = query.Where("state = ?", filter.State)
	}
	if filter.OrganizationID != 0 {
		query = query.Where("organization_id = ?", filter.OrganizationID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("id ASC").Find(&locations).Error; err != nil {
		return nil, 0, err
	}
	return locations, total, nil
}

// GetByID returns a location, or nil when missing.
func (r *GormLocationRepository) GetByID(id uint) (*models.Location, error) {
	var location models.Location
	if err := r.db.First(&location, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

// Create inserts a location.
func (r *GormLocationRepository) Create(location *models.Location) error {
	return r.db.Create(location).Error
}

// Update persists all fields of a location.
func (r *GormLocationRepository) Update(location *models.Location) error {
	return r.db.Save(location).Error
}

// Delete removes a location by ID.
func (r *GormLocationRepository) Delete(id uint) error {
	return r.db.Delete(&models.Location{}, id).Error
}
