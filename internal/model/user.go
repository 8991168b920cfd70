// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// User is owned by the identity service; this service only reads it.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"type:text;not null" json:"name"`
	Email          string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Role           string    `gorm:"type:text;not null;default:'member'" json:"role"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	OrganizationID *uint     `gorm:"index" json:"organization_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Organization *Organization `gorm:"foreignKey:OrganizationID;constraint:OnDelete:SET NULL" json:"-"`
}

func (User) TableName() string {
	return "users"
}
