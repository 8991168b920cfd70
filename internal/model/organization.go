// internal/model/organization.go
package model

import (
	"time"
)

type Organization struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"name"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"<-:create;autoCreateTime" json:"created_at"`
}

func (Organization) TableName() string {
	return "organizations"
}
