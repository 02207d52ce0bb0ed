package fleet

import (
	"time"

	"github.com/fleetops-api/internal/http/response"
	"github.com/fleetops-api/internal/models"
	"github.com/fleetops-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// RouteUpsertRequest is the create/update payload.
type RouteUpsertRequest struct {
	VehicleID             uint       `json:"vehicle_id" binding:"required"`
	DriverID              uint       `json:"driver_id" binding:"required"`
	OriginLocationID      uint       `json:"origin_location_id" binding:"required"`
	DestinationLocationID uint       `json:"destination_location_id" binding:"required"`
	ScheduledDeparture    time.Time  `json:"scheduled_departure"`
	ActualDeparture       *time.Time `json:"actual_departure"`
	ScheduledArrival      time.Time  `json:"scheduled_arrival"`
	ActualArrival         *time.Time `json:"actual_arrival"`
	DistanceKm            float64    `json:"distance_km"`
	Status                string     `json:"status"`
}

// ListRoutes returns a page of routes matching the query filters.
func (h *Handler) ListRoutes(c *gin.Context) {
	page, pageSize := parsePagination(c)
	vehicleID, ok := parseUintQuery(c, "vehicle_id")
	if !ok {
		return
	}
	driverID, ok := parseUintQuery(c, "driver_id")
	if !ok {
		return
	}

	routes, total, err := h.RouteRepo.List(repository.RouteListFilter{
		Page:      page,
		PageSize:  pageSize,
		Status:    c.Query("status"),
		VehicleID: vehicleID,
		DriverID:  driverID,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch routes", err)
		return
	}
	response.SuccessWithPage(c, routes, buildPagination(page, pageSize, total))
}

// GetRoute returns one route by ID.
func (h *Handler) GetRoute(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	route, err := h.RouteRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch route", err)
		return
	}
	if route == nil {
		response.NotFound(c, "route not found")
		return
	}
	response.Success(c, route)
}

// CreateRoute inserts a new route.
func (h *Handler) CreateRoute(c *gin.Context) {
	var req RouteUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	route := &models.Route{
		VehicleID:             req.VehicleID,
		DriverID:              req.DriverID,
		OriginLocationID:      req.OriginLocationID,
		DestinationLocationID: req.DestinationLocationID,
		ScheduledDeparture:    req.ScheduledDeparture,
		ActualDeparture:       req.ActualDeparture,
		ScheduledArrival:      req.ScheduledArrival,
		ActualArrival:         req.ActualArrival,
		DistanceKm:            req.DistanceKm,
		Status:                req.Status,
	}
	if err := h.RouteRepo.Create(route); err != nil {
		respondError(c, response.CodeInternal, "failed to create route", err)
		return
	}
	response.Success(c, route)
}

// UpdateRoute overwrites a route from the full payload.
func (h *Handler) UpdateRoute(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req RouteUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	route, err := h.RouteRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch route", err)
		return
	}
	if route == nil {
		response.NotFound(c, "route not found")
		return
	}

	route.VehicleID = req.VehicleID
	route.DriverID = req.DriverID
	route.OriginLocationID = req.OriginLocationID
	route.DestinationLocationID = req.DestinationLocationID
	route.ScheduledDeparture = req.ScheduledDeparture
	route.ActualDeparture = req.ActualDeparture
	route.ScheduledArrival = req.ScheduledArrival
	route.ActualArrival = req.ActualArrival
	route.DistanceKm = req.DistanceKm
	route.Status = req.Status
	if err := h.RouteRepo.Update(route); err != nil {
		respondError(c, response.CodeInternal, "failed to update route", err)
		return
	}
	response.Success(c, route)
}

// DeleteRoute removes a route.
func (h *Handler) DeleteRoute(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	route, err := h.RouteRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch route", err)
		return
	}
	if route == nil {
		response.NotFound(c, "route not found")
		return
	}
	if err := h.RouteRepo.Delete(id); err != nil {
		respondError(c, response.CodeInternal, "failed to delete route", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
