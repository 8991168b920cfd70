// internal/service/plan.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dangerclosesec/tenancy/internal/domain"
	"github.com/dangerclosesec/tenancy/internal/model"
	"github.com/dangerclosesec/tenancy/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type PlanService struct {
	repo     repository.PlanRepositoryIface
	validate *validator.Validate
}

func NewPlanService(repo repository.PlanRepositoryIface) *PlanService {
	return &PlanService{
		repo:     repo,
		validate: validator.New(),
	}
}

type CreatePlanInput struct {
	Name         string `validate:"required,max=100"`
	Price        decimal.Decimal
	DurationDays int `validate:"gt=0"`
}

type UpdatePlanInput struct {
	Name         *string `validate:"omitempty,min=1,max=100"`
	Price        *decimal.Decimal
	DurationDays *int `validate:"omitempty,gt=0"`
}

// PlanView is the response shape of a plan. IsActive is left out of create
// and update responses.
type PlanView struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Price        string `json:"price"`
	DurationDays int    `json:"duration_days"`
	IsActive     *bool  `json:"is_active,omitempty"`
}

func newPlanView(p *model.Plan, withStatus bool) PlanView {
	v := PlanView{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.FormattedPrice(),
		DurationDays: p.DurationDays,
	}
	if withStatus {
		active := p.IsActive
		v.IsActive = &active
	}
	return v
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}
	return nil
}

func (s *PlanService) Create(ctx context.Context, input CreatePlanInput) (*PlanView, error) {
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}
	if err := validatePrice(input.Price); err != nil {
		return nil, err
	}

	plan := &model.Plan{
		Name:         input.Name,
		Price:        input.Price.Round(2),
		DurationDays: input.DurationDays,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, plan); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Plan created", "planID", plan.ID, "name", plan.Name)
	view := newPlanView(plan, false)
	return &view, nil
}

// List returns all plans, or only those whose is_active equals *active.
func (s *PlanService) List(ctx context.Context, active *bool) ([]PlanView, error) {
	plans, err := s.repo.FindAll(ctx, active)
	if err != nil {
		return nil, err
	}

	views := make([]PlanView, 0, len(plans))
	for _, p := range plans {
		views = append(views, newPlanView(p, true))
	}
	return views, nil
}

func (s *PlanService) Get(ctx context.Context, id uint) (*PlanView, error) {
	plan, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := newPlanView(plan, true)
	return &view, nil
}

func (s *PlanService) SetActive(ctx context.Context, id uint, active bool) (string, error) {
	plan, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	plan.IsActive = active
	if err := s.repo.Update(ctx, plan); err != nil {
		return "", err
	}

	slog.InfoContext(ctx, "Plan status changed", "planID", plan.ID, "active", active)
	return activationMessage("Plan", plan.Name, active), nil
}

func (s *PlanService) Update(ctx context.Context, id uint, input UpdatePlanInput) (*PlanView, error) {
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}
	if input.Price != nil {
		if err := validatePrice(*input.Price); err != nil {
			return nil, err
		}
	}

	plan, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		plan.Name = *input.Name
	}
	if input.Price != nil {
		plan.Price = input.Price.Round(2)
	}
	if input.DurationDays != nil {
		plan.DurationDays = *input.DurationDays
	}

	if err := s.repo.Update(ctx, plan); err != nil {
		return nil, err
	}

	view := newPlanView(plan, false)
	return &view, nil
}

func (s *PlanService) Delete(ctx context.Context, id uint) (string, error) {
	plan, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	if err := s.repo.Delete(ctx, plan.ID); err != nil {
		return "", err
	}

	slog.InfoContext(ctx, "Plan deleted", "planID", plan.ID, "name", plan.Name)
	return fmt.Sprintf("Plan %s deleted successfully", plan.Name), nil
}
