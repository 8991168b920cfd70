// internal/repository/user_settings.go
package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/tenancy/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserSettingsRepositoryIface interface {
	FindOrCreate(ctx context.Context, userID uuid.UUID) (*model.UserSettings, error)
	Upsert(ctx context.Context, settings *model.UserSettings) error
}

type UserSettingsRepository struct {
	db *gorm.DB
}

func NewUserSettingsRepository(db *gorm.DB) *UserSettingsRepository {
	return &UserSettingsRepository{db: db}
}

// FindOrCreate returns the user's settings, inserting the defaults first when
// the user has none.
func (r *UserSettingsRepository) FindOrCreate(ctx context.Context, userID uuid.UUID) (*model.UserSettings, error) {
	settings := model.DefaultUserSettings(userID)
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Where(&model.UserSettings{UserID: userID}).
		FirstOrCreate(settings).Error
	if err != nil {
		return nil, fmt.Errorf("finding or creating user settings: %w", err)
	}
	return settings, nil
}

// Upsert writes every field of settings, replacing the existing row for the
// same user.
func (r *UserSettingsRepository) Upsert(ctx context.Context, settings *model.UserSettings) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"email_notifications",
				"whatsapp_notifications",
				"call_reminder_notifications",
				"daily_summery_alert",
				"performance_alert",
				"status",
			}),
		}).
		Create(settings).Error
	if err != nil {
		return fmt.Errorf("upserting user settings: %w", err)
	}
	return nil
}
