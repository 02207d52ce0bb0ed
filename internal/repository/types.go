package repository

// OrganizationListFilter filters the organization list.
type OrganizationListFilter struct {
	Page     int
	PageSize int
}

// VehicleListFilter filters the vehicle list.
type VehicleListFilter struct {
	Page           int
	PageSize       int
	Status         string
	VehicleType    string
	OrganizationID uint
}

// DriverListFilter filters the driver list.
type DriverListFilter struct {
	Page           int
	PageSize       int
	Status         string
	OrganizationID uint
}

// LocationListFilter filters the location list. City matches as a substring.
type LocationListFilter struct {
	Page           int
	PageSize       int
	Type           string
	City           string
	State          string
	OrganizationID uint
}

// RouteListFilter filters the route list.
type RouteListFilter struct {
	Page      int
	PageSize  int
	Status    string
	VehicleID uint
	DriverID  uint
}

// DeliveryListFilter filters the delivery list. TrackingNumber matches as
// a substring; use GetByTrackingNumber for exact lookup.
type DeliveryListFilter struct {
	Page           int
	PageSize       int
	Status         string
	Priority       string
	RouteID        uint
	TrackingNumber string
}

// MaintenanceListFilter filters the maintenance record list.
type MaintenanceListFilter struct {
	Page            int
	PageSize        int
	VehicleID       uint
	MaintenanceType string
}

// FuelLogListFilter filters the fuel log list.
type FuelLogListFilter struct {
	Page      int
	PageSize  int
	VehicleID uint
	FuelType  string
}

// IncidentListFilter filters the incident list.
type IncidentListFilter struct {
	Page         int
	PageSize     int
	DriverID     uint
	IncidentType string
	Severity     string
	Resolved     *bool
}

// GPSListFilter filters GPS tracking points.
type GPSListFilter struct {
	Page      int
	PageSize  int
	VehicleID uint
}
