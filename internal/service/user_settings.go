// internal/service/user_settings.go
package service

import (
	"context"
	"log/slog"

	"github.com/dangerclosesec/tenancy/internal/domain"
	"github.com/dangerclosesec/tenancy/internal/model"
	"github.com/dangerclosesec/tenancy/internal/repository"
	"github.com/google/uuid"
)

type UserSettingsService struct {
	repo     repository.UserSettingsRepositoryIface
	userRepo repository.UserRepositoryIface
}

func NewUserSettingsService(repo repository.UserSettingsRepositoryIface, userRepo repository.UserRepositoryIface) *UserSettingsService {
	return &UserSettingsService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// UpdateSettingsInput carries every settings field; omitted form values arrive
// as their defaults, so an upsert always replaces the whole row.
type UpdateSettingsInput struct {
	EmailNotifications        bool
	WhatsappNotifications     bool
	CallReminderNotifications bool
	DailySummaryAlert         bool
	PerformanceAlert          bool
	Status                    string
}

type UserSettingsView struct {
	UserID                    string                      `json:"user_id"`
	EmailNotifications        bool                        `json:"email_notifications"`
	WhatsappNotifications     bool                        `json:"whatsapp_notifications"`
	CallReminderNotifications bool                        `json:"call_reminder_notifications"`
	DailySummaryAlert         bool                        `json:"daily_summery_alert"`
	PerformanceAlert          bool                        `json:"performance_alert"`
	Status                    model.NotificationFrequency `json:"status"`
}

func newUserSettingsView(userID uuid.UUID, s *model.UserSettings) *UserSettingsView {
	return &UserSettingsView{
		UserID:                    userID.String(),
		EmailNotifications:        s.EmailNotifications,
		WhatsappNotifications:     s.WhatsappNotifications,
		CallReminderNotifications: s.CallReminderNotifications,
		DailySummaryAlert:         s.DailySummaryAlert,
		PerformanceAlert:          s.PerformanceAlert,
		Status:                    s.Status,
	}
}

// Get ensures the user has settings, creating the defaults on first access.
func (s *UserSettingsService) Get(ctx context.Context, userID uuid.UUID) (*UserSettingsView, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings, err := s.repo.FindOrCreate(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return newUserSettingsView(user.ID, settings), nil
}

// Upsert replaces the user's settings with input, creating the row if needed.
func (s *UserSettingsService) Upsert(ctx context.Context, userID uuid.UUID, input UpdateSettingsInput) (*UserSettingsView, error) {
	status := model.NotificationFrequency(input.Status)
	if !status.Valid() {
		return nil, domain.ErrInvalidSettingsStatus
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings := &model.UserSettings{
		UserID:                    user.ID,
		EmailNotifications:        input.EmailNotifications,
		WhatsappNotifications:     input.WhatsappNotifications,
		CallReminderNotifications: input.CallReminderNotifications,
		DailySummaryAlert:         input.DailySummaryAlert,
		PerformanceAlert:          input.PerformanceAlert,
		Status:                    status,
	}
	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "User settings saved", "userID", user.ID, "status", status)
	return newUserSettingsView(user.ID, settings), nil
}
