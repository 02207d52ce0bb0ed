package constants

// Vehicle status
const (
	VehicleStatusActive      = "active"
	VehicleStatusMaintenance = "maintenance"
	VehicleStatusRetired     = "retired"
)

// Vehicle types
const (
	VehicleTypeCargoVan          = "cargo_van"
	VehicleTypePickupTruck       = "pickup_truck"
	VehicleTypeBoxTruck          = "box_truck"
	VehicleTypeSemiTruck         = "semi_truck"
	VehicleTypeRefrigeratedTruck = "refrigerated_truck"
)

// Driver status
const (
	DriverStatusActive   = "active"
	DriverStatusInactive = "inactive"
	DriverStatusOnLeave  = "on_leave"
)

// Location types
const (
	LocationTypeWarehouse          = "warehouse"
	LocationTypeDepot              = "depot"
	LocationTypeCustomer           = "customer"
	LocationTypeDistributionCenter = "distribution_center"
)

// Route status
const (
	RouteStatusScheduled  = "scheduled"
	RouteStatusInProgress = "in_progress"
	RouteStatusCompleted  = "completed"
	RouteStatusCancelled  = "cancelled"
)

// Delivery status
const (
	DeliveryStatusPending   = "pending"
	DeliveryStatusInTransit = "in_transit"
	DeliveryStatusDelivered = "delivered"
	DeliveryStatusFailed    = "failed"
)

// Delivery priority
const (
	DeliveryPriorityStandard = "standard"
	DeliveryPriorityExpress  = "express"
	DeliveryPriorityUrgent   = "urgent"
)

// Maintenance types
const (
	MaintenanceTypeRoutine    = "routine"
	MaintenanceTypeRepair     = "repair"
	MaintenanceTypeInspection = "inspection"
	MaintenanceTypeEmergency  = "emergency"
)

// Fuel types
const (
	FuelTypeDiesel   = "diesel"
	FuelTypeGasoline = "gasoline"
	FuelTypeElectric = "electric"
)

// Incident types
const (
	IncidentTypeAccident  = "accident"
	IncidentTypeDelay     = "delay"
	IncidentTypeDamage    = "damage"
	IncidentTypeTheft     = "theft"
	IncidentTypeViolation = "violation"
)

// Incident severity
const (
	IncidentSeverityMinor    = "minor"
	IncidentSeverityModerate = "moderate"
	IncidentSeverityMajor    = "major"
	IncidentSeverityCritical = "critical"
)
