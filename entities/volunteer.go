package entities

import (
	"github.com/google/uuid"
)

type Volunteer struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name               string    `json:"name"`
	SkillSet           string    `json:"skill_set,omitempty"`
	AvailabilityStatus string    `json:"availability_status"` // Available, Busy, Unavailable
	ContactNumber      string    `json:"contact_number,omitempty"`
	Location           string    `json:"location,omitempty"`

	Assignments []*VolunteerAssignment `gorm:"foreignKey:VolunteerID" json:"-"`
	Timestamp
}

type VolunteerAssignment struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	VolunteerID    *uuid.UUID `json:"volunteer_id,omitempty"` // nil when no volunteer matched
	DisasterID     uuid.UUID  `json:"disaster_id"`
	Task           string     `json:"task"`
	RequestedSkill string     `json:"requested_skill,omitempty"`
	Status         string     `json:"status"` // Assigned, In Progress, Completed, Cancelled

	Volunteer *Volunteer `gorm:"foreignKey:VolunteerID" json:"-"`
	Disaster  *Disaster  `gorm:"foreignKey:DisasterID" json:"-"`
	Timestamp
}
