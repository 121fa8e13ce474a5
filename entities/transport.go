package entities

import (
	"github.com/google/uuid"
)

type Transport struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	VehicleType     string    `json:"vehicle_type"`
	Capacity        int       `json:"capacity"`
	Status          string    `json:"status"` // Available, In Transit, Under Maintenance
	DriverName      string    `json:"driver_name,omitempty"`
	ContactNumber   string    `json:"contact_number,omitempty"`
	CurrentLocation string    `json:"current_location,omitempty"`

	Dispatches []*Dispatch `gorm:"foreignKey:TransportID" json:"-"`
	Timestamp
}

type Dispatch struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	AllocationID uuid.UUID  `json:"allocation_id"`
	TransportID  *uuid.UUID `json:"transport_id,omitempty"`
	Status       string     `json:"status"` // In Transit, Pending, Delivered

	Allocation *Allocation `gorm:"foreignKey:AllocationID" json:"-"`
	Transport  *Transport  `gorm:"foreignKey:TransportID" json:"-"`
	Timestamp
}
