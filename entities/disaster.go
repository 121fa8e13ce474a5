package entities

import (
	"github.com/google/uuid"
)

type Disaster struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Type          string    `json:"type"`
	Location      string    `json:"location"`
	SeverityLevel string    `json:"severity_level"` // Low, Medium, High, Critical

	GeoLocation    *DisasterLocation `gorm:"foreignKey:DisasterID" json:"geo_location,omitempty"`
	DemandRequests []*DemandRequest  `gorm:"foreignKey:DisasterID" json:"-"`
	Timestamp
}

// DisasterLocation carries the optional geocoordinate of a disaster.
// Distance ranking degrades to unknown-distance when the row is absent.
type DisasterLocation struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DisasterID uuid.UUID `gorm:"uniqueIndex" json:"disaster_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`

	Disaster *Disaster `gorm:"foreignKey:DisasterID" json:"-"`
	Timestamp
}
