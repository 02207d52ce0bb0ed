package repository

import (
	"errors"
	"strings"

	"github.com/fleetops-api/internal/models"

	"gorm.io/gorm"
)

// DeliveryRepository is the delivery data access interface.
type DeliveryRepository interface {
	List(filter DeliveryListFilter) ([]models.Delivery, int64, error)
	GetByID(id uint) (*models.Delivery, error)
	GetByTrackingNumber(trackingNumber string) (*models.Delivery, error)
	Create(delivery *models.Delivery) error
	Update(delivery *models.Delivery) error
	Delete(id uint) error
}

// GormDeliveryRepository is the GORM implementation.
type GormDeliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository creates the delivery repository.
func NewDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

// List returns a page of deliveries matching the filter.
func (r *GormDeliveryRepository) List(filter DeliveryListFilter) ([]models.Delivery, int64, error) {
	var deliveries []models.Delivery
	query := r.db.Model(&models.Delivery{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.RouteID != 0 {
		query = query.Where("route_id = ?", filter.RouteID)
	}
	if tracking := strings.TrimSpace(filter.TrackingNumber); tracking != "" {
		query = query.Where("tracking_number LIKE ?", "%"+tracking+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("id ASC").Find(&deliveries).Error; err != nil {
		return nil, 0, err
	}
	return deliveries, total, nil
}

// GetByID returns a delivery, or nil when missing.
func (r *GormDeliveryRepository) GetByID(id uint) (*models.Delivery, error) {
	var delivery models.Delivery
	if err := r.db.First(&delivery, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &delivery, nil
}

// GetByTrackingNumber returns a delivery by exact tracking number, or nil.
func (r *GormDeliveryRepository) GetByTrackingNumber(trackingNumber string) (*models.Delivery, error) {
	var delivery models.Delivery
	if err := r.db.Where("tracking_number = ?", trackingNumber).First(&delivery).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &delivery, nil
}

// Create inserts a delivery.
func (r *GormDeliveryRepository) Create(delivery *models.Delivery) error {
	return r.db.Create(delivery).Error
}

// Update persists all fields of a delivery.
func (r *GormDeliveryRepository) Update(delivery *models.Delivery) error {
	return r.db.Save(delivery).Error
}

// Delete removes a delivery by ID.
func (r *GormDeliveryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Delivery{}, id).Error
}
