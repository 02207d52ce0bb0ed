package models

import "time"

// Route is a planned trip between two locations. Actual timestamps are
// populated only once the route is underway: actual_departure for
// in_progress/completed routes, actual_arrival for completed ones.
type Route struct {
	ID                    uint       `gorm:"primarykey" json:"id"`
	VehicleID             uint       `gorm:"index;not null" json:"vehicle_id"`
	DriverID              uint       `gorm:"index;not null" json:"driver_id"`
	OriginLocationID      uint       `gorm:"index;not null" json:"origin_location_id"`
	DestinationLocationID uint       `gorm:"index;not null" json:"destination_location_id"`
	ScheduledDeparture    time.Time  `json:"scheduled_departure"`
	ActualDeparture       *time.Time `json:"actual_departure"`
	ScheduledArrival      time.Time  `json:"scheduled_arrival"`
	ActualArrival         *time.Time `json:"actual_arrival"`
	DistanceKm            float64    `json:"distance_km"`
	Status                string     `gorm:"index;default:'scheduled'" json:"status"` // scheduled, in_progress, completed, cancelled
	CreatedAt             time.Time  `gorm:"index" json:"created_at"`
}

// TableName sets the table name.
func (Route) TableName() string {
	return "routes"
}
