// internal/service/organization.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dangerclosesec/tenancy/internal/domain"
	"github.com/dangerclosesec/tenancy/internal/model"
	"github.com/dangerclosesec/tenancy/internal/repository"
	"github.com/go-playground/validator/v10"
)

type OrganizationService struct {
	repo     repository.OrganizationRepositoryIface
	userRepo repository.UserRepositoryIface
	subRepo  repository.SubscriptionRepositoryIface
	validate *validator.Validate
}

func NewOrganizationService(
	repo repository.OrganizationRepositoryIface,
	userRepo repository.UserRepositoryIface,
	subRepo repository.SubscriptionRepositoryIface,
) *OrganizationService {
	return &OrganizationService{
		repo:     repo,
		userRepo: userRepo,
		subRepo:  subRepo,
		validate: validator.New(),
	}
}

type CreateOrganizationInput struct {
	Name string `validate:"required,max=150"`
}

type UpdateOrganizationInput struct {
	Name *string `validate:"omitempty,min=1,max=150"`
}

// OrganizationMember is the projection of a user listed under an organization.
type OrganizationMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

// OrganizationSubscription is the current subscription of an organization.
type OrganizationSubscription struct {
	ID        uint                     `json:"id"`
	PlanName  string                   `json:"plan_name"`
	StartDate string                   `json:"start_date"`
	EndDate   string                   `json:"end_date"`
	Status    model.SubscriptionStatus `json:"status"`
}

func (s *OrganizationService) Create(ctx context.Context, input CreateOrganizationInput) (*model.Organization, error) {
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByName(ctx, input.Name)
	if err != nil && !errors.Is(err, domain.ErrOrganizationNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrOrganizationNameTaken
	}

	org := &model.Organization{
		Name:     input.Name,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, org); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Organization created", "organizationID", org.ID, "name", org.Name)
	return org, nil
}

func (s *OrganizationService) Get(ctx context.Context, id uint) (*model.Organization, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OrganizationService) List(ctx context.Context) ([]*model.Organization, error) {
	return s.repo.FindAll(ctx)
}

// Update overwrites the supplied fields. The name is not re-checked for
// uniqueness here; the store's unique index still rejects duplicates.
func (s *OrganizationService) Update(ctx context.Context, id uint, input UpdateOrganizationInput) (*model.Organization, error) {
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}

	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		org.Name = *input.Name
	}

	if err := s.repo.Update(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *OrganizationService) SetActive(ctx context.Context, id uint, active bool) (string, error) {
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	org.IsActive = active
	if err := s.repo.Update(ctx, org); err != nil {
		return "", err
	}

	slog.InfoContext(ctx, "Organization status changed", "organizationID", org.ID, "active", active)
	return activationMessage("Organization", org.Name, active), nil
}

func (s *OrganizationService) Delete(ctx context.Context, id uint) (string, error) {
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	if err := s.repo.Delete(ctx, org.ID); err != nil {
		return "", err
	}

	slog.InfoContext(ctx, "Organization deleted", "organizationID", org.ID, "name", org.Name)
	return fmt.Sprintf("Organization %s deleted successfully", org.Name), nil
}

func (s *OrganizationService) ListUsers(ctx context.Context, id uint) ([]OrganizationMember, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	users, err := s.userRepo.FindByOrganization(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("listing organization users: %w", err)
	}

	members := make([]OrganizationMember, 0, len(users))
	for _, u := range users {
		members = append(members, OrganizationMember{
			ID:       u.ID.String(),
			Name:     u.Name,
			Email:    u.Email,
			Role:     u.Role,
			IsActive: u.IsActive,
		})
	}
	return members, nil
}

// CurrentSubscription returns the organization's most recently created
// subscription.
func (s *OrganizationService) CurrentSubscription(ctx context.Context, id uint) (*OrganizationSubscription, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	detail, err := s.subRepo.FindCurrentByOrganization(ctx, id)
	if err != nil {
		return nil, err
	}

	return &OrganizationSubscription{
		ID:        detail.ID,
		PlanName:  detail.PlanName,
		StartDate: model.FormatDate(detail.StartDate),
		EndDate:   model.FormatDate(detail.EndDate),
		Status:    detail.Status,
	}, nil
}
