package repository

import (
	"errors"

	"github.com/fleetops-api/internal/models"

	"gorm.io/gorm"
)

// IncidentRepository is the incident data access interface.
type IncidentRepository interface {
	List(filter IncidentListFilter) ([]models.Incident, int64, error)
	GetByID(id uint) (*models.Incident, error)
	Create(incident *models.Incident) error
	Update(incident *models.Incident) error
	Delete(id uint) error
}

// GormIncidentRepository is the GORM implementation.
type GormIncidentRepository struct {
	db *gorm.DB
}

// NewIncidentRepository creates the incident repository.
func NewIncidentRepository(db *gorm.DB) *GormIncidentRepository {
	return &GormIncidentRepository{db: db}
}

// List returns a page of incidents matching the filter.
func (r *GormIncidentRepository) List(filter IncidentListFilter) ([]models.Incident, int64, error) {
	var incidents []models.Incident
	query := r.db.Model(&models.Incident{})

	if filter.DriverID != 0 {
		query = query.Where("driver_id = ?", filter.DriverID)
	}
	if filter.IncidentType != "" {
		query = query.Where("incident_type = ?", filter.IncidentType)
	}
	if filter.Severity != "" {
		query = query.Where("severity = ?", filter.Severity)
	}
	if filter.Resolved != nil {
		query = query.Where("resolved = ?", *filter.Resolved)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("id ASC").Find(&incidents).Error; err != nil {
		return nil, 0, err
	}
	return incidents, total, nil
}

// GetByID returns an incident, or nil when missing.
func (r *GormIncidentRepository) GetByID(id uint) (*models.Incident, error) {
	var incident models.Incident
	if err := r.db.First(&incident, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &incident, nil
}

// Create inserts an incident.
func (r *GormIncidentRepository) Create(incident *models.Incident) error {
	return r.db.Create(incident).Error
}

// Update persists all fields of an incident.
func (r *GormIncidentRepository) Update(incident *models.Incident) error {
	return r.db.Save(incident).Error
}

// Delete removes an incident by ID.
func (r *GormIncidentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Incident{}, id).Error
}
