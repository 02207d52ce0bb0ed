package models

import "time"

// GPSTracking is a single position report for a vehicle.
type GPSTracking struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	VehicleID uint      `gorm:"index;not null" json:"vehicle_id"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	SpeedKmh  float64   `json:"speed_kmh"`
	Heading   float64   `json:"heading"`
	Altitude  *float64  `json:"altitude"`
}

// TableName sets the table name.
func (GPSTracking) TableName() string {
	return "gps_tracking"
}
