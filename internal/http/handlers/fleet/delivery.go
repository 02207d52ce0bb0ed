package fleet

import (
	"time"

	"github.com/fleetops-api/internal/http/response"
	"github.com/fleetops-api/internal/models"
	"github.com/fleetops-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// DeliveryUpsertRequest is the create/update payload.
type DeliveryUpsertRequest struct {
	RouteID           uint       `json:"route_id" binding:"required"`
	LocationID        uint       `json:"location_id" binding:"required"`
	TrackingNumber    string     `json:"tracking_number" binding:"required"`
	CustomerName      string     `json:"customer_name"`
	CustomerEmail     string     `json:"customer_email"`
	CustomerPhone     string     `json:"customer_phone"`
	PackageCount      int        `json:"package_count"`
	WeightKg          float64    `json:"weight_kg"`
	Status            string     `json:"status"`
	Priority          string     `json:"priority"`
	ScheduledDelivery time.Time  `json:"scheduled_delivery"`
	ActualDelivery    *time.Time `json:"actual_delivery"`
	DeliveryNotes     *string    `json:"delivery_notes"`
	SignatureRequired bool       `json:"signature_required"`
}

// ListDeliveries returns a page of deliveries matching the query filters.
func (h *Handler) ListDeliveries(c *gin.Context) {
	page, pageSize := parsePagination(c)
	routeID, ok := parseUintQuery(c, "route_id")
	if !ok {
		return
	}

	deliveries, total, err := h.DeliveryRepo.List(repository.DeliveryListFilter{
		Page:           page,
		PageSize:       pageSize,
		Status:         c.Query("status"),
		Priority:       c.Query("priority"),
		RouteID:        routeID,
		TrackingNumber: c.Query("tracking_number"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch deliveries", err)
		return
	}
	response.SuccessWithPage(c, deliveries, buildPagination(page, pageSize, total))
}

// GetDelivery returns one delivery by ID.
func (h *Handler) GetDelivery(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	delivery, err := h.DeliveryRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch delivery", err)
		return
	}
	if delivery == nil {
		response.NotFound(c, "delivery not found")
		return
	}
	response.Success(c, delivery)
}

// GetDeliveryByTracking returns one delivery by exact tracking number.
func (h *Handler) GetDeliveryByTracking(c *gin.Context) {
	trackingNumber := c.Param("tracking_number")
	if trackingNumber == "" {
		respondError(c, response.CodeBadRequest, "invalid tracking_number", nil)
		return
	}
	delivery, err := h.DeliveryRepo.GetByTrackingNumber(trackingNumber)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch delivery", err)
		return
	}
	if delivery == nil {
		response.NotFound(c, "delivery not found")
		return
	}
	response.Success(c, delivery)
}

// CreateDelivery inserts a new delivery.
func (h *Handler) CreateDelivery(c *gin.Context) {
	var req DeliveryUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	delivery := &models.Delivery{
		RouteID:           req.RouteID,
		LocationID:        req.LocationID,
		TrackingNumber:    req.TrackingNumber,
		CustomerName:      req.CustomerName,
		CustomerEmail:     req.CustomerEmail,
		CustomerPhone:     req.CustomerPhone,
		PackageCount:      req.PackageCount,
		WeightKg:          req.WeightKg,
		Status:            req.Status,
		Priority:          req.Priority,
		ScheduledDelivery: req.ScheduledDelivery,
		ActualDelivery:    req.ActualDelivery,
		DeliveryNotes:     req.DeliveryNotes,
		SignatureRequired: req.SignatureRequired,
	}
	if err := h.DeliveryRepo.Create(delivery); err != nil {
		respondError(c, response.CodeInternal, "failed to create delivery", err)
		return
	}
	response.Success(c, delivery)
}

// UpdateDelivery overwrites a delivery from the full payload.
func (h *Handler) UpdateDelivery(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req DeliveryUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	delivery, err := h.DeliveryRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch delivery", err)
		return
	}
	if delivery == nil {
		response.NotFound(c, "delivery not found")
		return
	}

	delivery.RouteID = req.RouteID
	delivery.LocationID = req.LocationID
	delivery.TrackingNumber = req.TrackingNumber
	delivery.CustomerName = req.CustomerName
	delivery.CustomerEmail = req.CustomerEmail
	delivery.CustomerPhone = req.CustomerPhone
	delivery.PackageCount = req.PackageCount
	delivery.WeightKg = req.WeightKg
	delivery.Status = req.Status
	delivery.Priority = req.Priority
	delivery.ScheduledDelivery = req.ScheduledDelivery
	delivery.ActualDelivery = req.ActualDelivery
	delivery.DeliveryNotes = req.DeliveryNotes
	delivery.SignatureRequired = req.SignatureRequired
	if err := h.DeliveryRepo.Update(delivery); err != nil {
		respondError(c, response.CodeInternal, "failed to update delivery", err)
		return
	}
	response.Success(c, delivery)
}

// DeleteDelivery removes a delivery.
func (h *Handler) DeleteDelivery(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	delivery, err := h.DeliveryRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch delivery", err)
		return
	}
	if delivery == nil {
		response.NotFound(c, "delivery not found")
		return
	}
	if err := h.DeliveryRepo.Delete(id); err != nil {
		respondError(c, response.CodeInternal, "failed to delete delivery", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
