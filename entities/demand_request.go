package entities

import (
	"github.com/google/uuid"
)

type DemandRequest struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DisasterID        uuid.UUID `json:"disaster_id"`
	RequestedBy       string    `json:"requested_by"`
	PriorityLevel     string    `json:"priority_level"` // Low, Medium, High
	Location          string    `json:"location,omitempty"`
	ResourceType      string    `json:"resource_type"`
	QuantityRequested int       `json:"quantity_requested"`
	Status            string    `json:"status"` // Pending, In Progress, Fulfilled, Cancelled

	Disaster    *Disaster     `gorm:"foreignKey:DisasterID" json:"-"`
	Allocations []*Allocation `gorm:"foreignKey:RequestID" json:"-"`
	Timestamp
}
