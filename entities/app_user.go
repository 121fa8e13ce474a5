package entities

import (
	"github.com/google/uuid"
)

type AppRole struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RoleName    string    `gorm:"uniqueIndex" json:"role_name"`
	Description string    `json:"description,omitempty"`

	Users []*AppUser `gorm:"foreignKey:RoleID" json:"-"`
	Timestamp
}

type AppUser struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username       string    `gorm:"uniqueIndex" json:"username"`
	DisplayName    string    `json:"display_name"`
	PasswordDigest string    `json:"-"`
	ContactEmail   string    `json:"contact_email,omitempty"`
	RoleID         uuid.UUID `json:"role_id"`

	Role *AppRole `gorm:"foreignKey:RoleID" json:"-"`
	Timestamp
}
