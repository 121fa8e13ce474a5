package entities

import (
	"time"

	"github.com/google/uuid"
)

type Resource struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ResourceType      string     `json:"resource_type"`
	QuantityAvailable int        `json:"quantity_available"`
	Status            string     `json:"status"` // Available, Unavailable, Reserved
	StorageLocationID *uuid.UUID `json:"storage_location_id,omitempty"`

	StorageLocation *StorageLocation `gorm:"foreignKey:StorageLocationID" json:"storage_location,omitempty"`
	Allocations     []*Allocation    `gorm:"foreignKey:ResourceID" json:"-"`
	Timestamp
}

// ResourceAlert rows are written by the external alerting pipeline; this
// service only reads the latest one per resource for the low-stock view.
type ResourceAlert struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ResourceID uuid.UUID `json:"resource_id"`
	AlertedAt  time.Time `gorm:"type:timestamp" json:"alerted_at"`

	Resource *Resource `gorm:"foreignKey:ResourceID" json:"-"`
}
