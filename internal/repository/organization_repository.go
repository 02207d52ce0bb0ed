package repository

import (
	"errors"

	"github.com/fleetops-api/internal/models"

	"gorm.io/gorm"
)

// OrganizationRepository is the organization data access interface.
type OrganizationRepository interface {
	List(filter OrganizationListFilter) ([]models.Organization, int64, error)
	GetByID(id uint) (*models.Organization, error)
	Count() (int64, error)
	Create(org *models.Organization) error
	Update(org *models.Organization) error
	Delete(id uint) error
}

// GormOrganizationRepository is the GORM implementation.
type GormOrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates the organization repository.
func NewOrganizationRepository(db *gorm.DB) *GormOrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

// List returns a page of organizations with the total count.
func (r *GormOrganizationRepository) List(filter OrganizationListFilter) ([]models.Organization, int64, error) {
	var orgs []models.Organization
	query := r.db.Model(&models.Organization{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("id ASC").Find(&orgs).Error; err != nil {
		return nil, 0, err
	}
	return orgs, total, nil
}

// GetByID returns an organization, or nil when missing.
func (r *GormOrganizationRepository) GetByID(id uint) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.First(&org, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &org, nil
}

// Count returns the number of organizations.
func (r *GormOrganizationRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.Organization{}).Count(&total).Error
	return total, err
}

// Create inserts an organization.
func (r *GormOrganizationRepository) Create(org *models.Organization) error {
	return r.db.Create(org).Error
}

// Update persists all fields of an organization.
func (r *GormOrganizationRepository) Update(org *models.Organization) error {
	return r.db.Save(org).Error
}

// Delete removes an organization by ID.
func (r *GormOrganizationRepository) Delete(id uint) error {
	return r.db.Delete(&models.Organization{}, id).Error
}
