package entities

import (
	"time"

	"github.com/google/uuid"
)

type Allocation struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RequestID         uuid.UUID `json:"request_id"`
	ResourceID        uuid.UUID `json:"resource_id"`
	AllocatedQuantity int       `json:"allocated_quantity"`
	Status            string    `json:"status"` // Dispatched, Pending, Delivered, Cancelled

	Request    *DemandRequest   `gorm:"foreignKey:RequestID" json:"-"`
	Resource   *Resource        `gorm:"foreignKey:ResourceID" json:"-"`
	Logs       []*AllocationLog `gorm:"foreignKey:AllocationID" json:"-"`
	Dispatches []*Dispatch      `gorm:"foreignKey:AllocationID" json:"-"`
	Timestamp
}

// AllocationLog is append-only: rows are never updated or deleted, and they
// outlive cancellation of the allocation they describe.
type AllocationLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	AllocationID uuid.UUID `json:"allocation_id"`
	Action       string    `json:"action"`
	ActionDate   time.Time `gorm:"type:timestamp" json:"action_date"`

	Allocation *Allocation `gorm:"foreignKey:AllocationID" json:"-"`
}
