package fleet

import (
	"time"

	"github.com/fleetops-api/internal/http/response"
	"github.com/fleetops-api/internal/models"
	"github.com/fleetops-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// GPSCreateRequest is the create payload. Points are immutable, there is
// no update endpoint.
type GPSCreateRequest struct {
	VehicleID uint      `json:"vehicle_id" binding:"required"`
	Timestamp time.Time `json:"timestamp"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	SpeedKmh  float64   `json:"speed_kmh"`
	Heading   float64   `json:"heading"`
	Altitude  *float64  `json:"altitude"`
}

// ListGPS returns a page of GPS points, newest first.
func (h *Handler) ListGPS(c *gin.Context) {
	page, pageSize := parsePagination(c)
	vehicleID, ok := parseUintQuery(c, "vehicle_id")
	if !ok {
		return
	}

	points, total, err := h.GPSRepo.List(repository.GPSListFilter{
		Page:      page,
		PageSize:  pageSize,
		VehicleID: vehicleID,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch gps points", err)
		return
	}
	response.SuccessWithPage(c, points, buildPagination(page, pageSize, total))
}

// GetGPS returns one GPS point by ID.
func (h *Handler) GetGPS(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	point, err := h.GPSRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch gps point", err)
		return
	}
	if point == nil {
		response.NotFound(c, "gps point not found")
		return
	}
	response.Success(c, point)
}

// GetLatestGPSForVehicle returns the most recent GPS point for a vehicle.
func (h *Handler) GetLatestGPSForVehicle(c *gin.Context) {
	vehicleID, ok := parseIDParam(c, "vehicle_id")
	if !ok {
		return
	}
	point, err := h.GPSRepo.LatestByVehicle(vehicleID)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch gps point", err)
		return
	}
	if point == nil {
		response.NotFound(c, "no gps data for vehicle")
		return
	}
	response.Success(c, point)
}

// CreateGPS inserts a new GPS point.
func (h *Handler) CreateGPS(c *gin.Context) {
	var req GPSCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	point := &models.GPSTracking{
		VehicleID: req.VehicleID,
		Timestamp: req.Timestamp,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		SpeedKmh:  req.SpeedKmh,
		Heading:   req.Heading,
		Altitude:  req.Altitude,
	}
	if err := h.GPSRepo.Create(point); err != nil {
		respondError(c, response.CodeInternal, "failed to create gps point", err)
		return
	}
	response.Success(c, point)
}

// DeleteGPS removes a GPS point.
func (h *Handler) DeleteGPS(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	point, err := h.GPSRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch gps point", err)
		return
	}
	if point == nil {
		response.NotFound(c, "gps point not found")
		return
	}
	if err := h.GPSRepo.Delete(id); err != nil {
		respondError(c, response.CodeInternal, "failed to delete gps point", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
