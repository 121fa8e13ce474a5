package entities

import (
	"github.com/google/uuid"
)

type StorageLocation struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address,omitempty"`
	City          string    `json:"city"`
	State         string    `json:"state,omitempty"`
	Capacity      int       `json:"capacity"`
	ContactNumber string    `json:"contact_number,omitempty"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`

	Resources []*Resource `gorm:"foreignKey:StorageLocationID" json:"-"`
	Timestamp
}
