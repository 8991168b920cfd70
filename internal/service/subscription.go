// internal/service/subscription.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dangerclosesec/tenancy/internal/domain"
	"github.com/dangerclosesec/tenancy/internal/model"
	"github.com/dangerclosesec/tenancy/internal/repository"
	"gorm.io/datatypes"
)

type SubscriptionService struct {
	repo     repository.SubscriptionRepositoryIface
	planRepo repository.PlanRepositoryIface
	orgRepo  repository.OrganizationRepositoryIface
	now      func() time.Time
}

func NewSubscriptionService(
	repo repository.SubscriptionRepositoryIface,
	planRepo repository.PlanRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
) *SubscriptionService {
	return &SubscriptionService{
		repo:     repo,
		planRepo: planRepo,
		orgRepo:  orgRepo,
		now:      time.Now,
	}
}

// SetClock replaces the clock used to date new subscriptions.
func (s *SubscriptionService) SetClock(now func() time.Time) {
	s.now = now
}

type SubscribeOutput struct {
	Message        string `json:"message"`
	SubscriptionID uint   `json:"subscription_id"`
}

// SubscriptionView is a subscription with its organization and plan names.
type SubscriptionView struct {
	ID           uint                     `json:"id"`
	Organization string                   `json:"organization"`
	Plan         string                   `json:"plan"`
	StartDate    string                   `json:"start_date"`
	EndDate      string                   `json:"end_date"`
	Status       model.SubscriptionStatus `json:"status"`
	AutoRenew    bool                     `json:"auto_renew"`
}

// SubscriptionRecord is a subscription referencing its organization and plan
// by id.
type SubscriptionRecord struct {
	ID             uint                     `json:"id"`
	OrganizationID uint                     `json:"organization_id"`
	PlanID         uint                     `json:"plan_id"`
	StartDate      string                   `json:"start_date"`
	EndDate        string                   `json:"end_date"`
	Status         model.SubscriptionStatus `json:"status"`
	AutoRenew      bool                     `json:"auto_renew"`
}

type UpdateSubscriptionInput struct {
	AutoRenew *bool
}

func newSubscriptionView(d *model.SubscriptionDetail) SubscriptionView {
	return SubscriptionView{
		ID:           d.ID,
		Organization: d.OrganizationName,
		Plan:         d.PlanName,
		StartDate:    model.FormatDate(d.StartDate),
		EndDate:      model.FormatDate(d.EndDate),
		Status:       d.Status,
		AutoRenew:    d.AutoRenew,
	}
}

// today returns the current calendar day at midnight UTC.
func (s *SubscriptionService) today() time.Time {
	t := s.now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Subscribe starts a subscription of the organization to an active plan,
// running from today for the plan's duration.
func (s *SubscriptionService) Subscribe(ctx context.Context, planID, organizationID uint) (*SubscribeOutput, error) {
	plan, err := s.planRepo.FindActiveByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	org, err := s.orgRepo.FindByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	start := s.today()
	end := start.AddDate(0, 0, plan.DurationDays)

	sub := &model.Subscription{
		OrganizationID: org.ID,
		PlanID:         plan.ID,
		StartDate:      datatypes.Date(start),
		EndDate:        datatypes.Date(end),
		Status:         model.SubscriptionActive,
		AutoRenew:      false,
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Subscription created",
		"subscriptionID", sub.ID,
		"organizationID", org.ID,
		"planID", plan.ID,
		"endDate", end.Format(model.DateLayout),
	)

	return &SubscribeOutput{
		Message:        "Subscription created successfully",
		SubscriptionID: sub.ID,
	}, nil
}

// List returns all subscriptions, or those in the given status when status is
// non-empty.
func (s *SubscriptionService) List(ctx context.Context, status string) ([]SubscriptionView, error) {
	var filter *model.SubscriptionStatus
	if status != "" {
		st := model.SubscriptionStatus(status)
		if !st.Valid() {
			return nil, domain.ErrInvalidSubscriptionStatus
		}
		filter = &st
	}

	details, err := s.repo.FindAllDetails(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]SubscriptionView, 0, len(details))
	for _, d := range details {
		views = append(views, newSubscriptionView(d))
	}
	return views, nil
}

func (s *SubscriptionService) Get(ctx context.Context, id uint) (*SubscriptionView, error) {
	detail, err := s.repo.FindDetailByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := newSubscriptionView(detail)
	return &view, nil
}

// Update changes auto-renewal; every other field is fixed once created.
func (s *SubscriptionService) Update(ctx context.Context, id uint, input UpdateSubscriptionInput) (*SubscriptionRecord, error) {
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.AutoRenew != nil {
		sub.AutoRenew = *input.AutoRenew
	}

	if err := s.repo.Update(ctx, sub); err != nil {
		return nil, err
	}

	return &SubscriptionRecord{
		ID:             sub.ID,
		OrganizationID: sub.OrganizationID,
		PlanID:         sub.PlanID,
		StartDate:      model.FormatDate(sub.StartDate),
		EndDate:        model.FormatDate(sub.EndDate),
		Status:         sub.Status,
		AutoRenew:      sub.AutoRenew,
	}, nil
}

func (s *SubscriptionService) Delete(ctx context.Context, id uint) (string, error) {
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	if err := s.repo.Delete(ctx, sub.ID); err != nil {
		return "", err
	}

	slog.InfoContext(ctx, "Subscription deleted", "subscriptionID", sub.ID)
	return fmt.Sprintf("Subscription %d deleted successfully", sub.ID), nil
}
