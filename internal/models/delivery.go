package models

import "time"

// Delivery is a shipment carried on a route to a drop-off location.
type Delivery struct {
	ID                uint       `gorm:"primarykey" json:"id"`
	RouteID           uint       `gorm:"index;not null" json:"route_id"`
	LocationID        uint       `gorm:"index;not null" json:"location_id"`
	TrackingNumber    string     `gorm:"uniqueIndex;not null" json:"tracking_number"`
	CustomerName      string     `json:"customer_name"`
	CustomerEmail     string     `json:"customer_email"`
	CustomerPhone     string     `json:"customer_phone"`
	PackageCount      int        `json:"package_count"`
	WeightKg          float64    `json:"weight_kg"`
	Status            string     `gorm:"index;default:'pending'" json:"status"`    // pending, in_transit, delivered, failed
	Priority          string     `gorm:"index;default:'standard'" json:"priority"` // standard, express, urgent
	ScheduledDelivery time.Time  `json:"scheduled_delivery"`
	ActualDelivery    *time.Time `json:"actual_delivery"` // set only when delivered
	DeliveryNotes     *string    `gorm:"type:text" json:"delivery_notes"`
	SignatureRequired bool       `gorm:"default:false" json:"signature_required"`
	CreatedAt         time.Time  `gorm:"index" json:"created_at"`
}

// TableName sets the table name.
func (Delivery) TableName() string {
	return "deliveries"
}
