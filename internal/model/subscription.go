// internal/model/subscription.go
package model

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Valid reports whether s is one of the known subscription states.
func (s SubscriptionStatus) Valid() bool {
	switch s {
	case SubscriptionActive, SubscriptionExpired, SubscriptionCancelled:
		return true
	}
	return false
}

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

type Subscription struct {
	ID             uint               `gorm:"primaryKey" json:"id"`
	OrganizationID uint               `gorm:"not null;index" json:"organization_id"`
	PlanID         uint               `gorm:"not null;index" json:"plan_id"`
	StartDate      datatypes.Date     `gorm:"type:date;not null" json:"start_date"`
	EndDate        datatypes.Date     `gorm:"type:date;not null" json:"end_date"`
	Status         SubscriptionStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	AutoRenew      bool               `gorm:"not null;default:false" json:"auto_renew"`
	CreatedAt      time.Time          `gorm:"<-:create;autoCreateTime" json:"created_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"-"`
	Plan         Plan         `gorm:"foreignKey:PlanID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// BeforeSave rejects status values outside the closed set.
func (s *Subscription) BeforeSave(tx *gorm.DB) error {
	if !s.Status.Valid() {
		return fmt.Errorf("invalid subscription status: %q", s.Status)
	}
	return nil
}

// SubscriptionDetail is a subscription joined with the names of its plan and
// organization.
type SubscriptionDetail struct {
	ID               uint
	OrganizationID   uint
	PlanID           uint
	StartDate        datatypes.Date
	EndDate          datatypes.Date
	Status           SubscriptionStatus
	AutoRenew        bool
	CreatedAt        time.Time
	PlanName         string
	OrganizationName string
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}
