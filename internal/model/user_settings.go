// internal/model/user_settings.go
package model

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationFrequency string

const (
	FrequencyDaily   NotificationFrequency = "daily"
	FrequencyWeekly  NotificationFrequency = "weekly"
	FrequencyMonthly NotificationFrequency = "monthly"
)

func (f NotificationFrequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

type UserSettings struct {
	ID                        uint                  `gorm:"primaryKey" json:"-"`
	UserID                    uuid.UUID             `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	EmailNotifications        bool                  `gorm:"not null;default:false" json:"email_notifications"`
	WhatsappNotifications     bool                  `gorm:"not null;default:false" json:"whatsapp_notifications"`
	CallReminderNotifications bool                  `gorm:"not null;default:false" json:"call_reminder_notifications"`
	DailySummaryAlert         bool                  `gorm:"column:daily_summery_alert;not null;default:false" json:"daily_summery_alert"`
	PerformanceAlert          bool                  `gorm:"not null;default:false" json:"performance_alert"`
	Status                    NotificationFrequency `gorm:"type:varchar(100);not null;default:'daily'" json:"status"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}

// DefaultUserSettings returns the settings a user starts with.
func DefaultUserSettings(userID uuid.UUID) *UserSettings {
	return &UserSettings{
		UserID: userID,
		Status: FrequencyDaily,
	}
}

// BeforeSave hook for UserSettings
func (s *UserSettings) BeforeSave(tx *gorm.DB) error {
	if !s.Status.Valid() {
		return fmt.Errorf("invalid notification status: %q", s.Status)
	}
	return nil
}
