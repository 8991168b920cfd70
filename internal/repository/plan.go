// internal/repository/plan.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/tenancy/internal/domain"
	"github.com/dangerclosesec/tenancy/internal/model"
	"gorm.io/gorm"
)

type PlanRepositoryIface interface {
	Create(ctx context.Context, plan *model.Plan) error
	FindByID(ctx context.Context, id uint) (*model.Plan, error)
	FindActiveByID(ctx context.Context, id uint) (*model.Plan, error)
	FindAll(ctx context.Context, active *bool) ([]*model.Plan, error)
	Update(ctx context.Context, plan *model.Plan) error
	Delete(ctx context.Context, id uint) error
}

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) Create(ctx context.Context, plan *model.Plan) error {
	if err := r.db.WithContext(ctx).Create(plan).Error; err != nil {
		return fmt.Errorf("creating plan: %w", err)
	}
	return nil
}

func (r *PlanRepository) FindByID(ctx context.Context, id uint) (*model.Plan, error) {
	var plan model.Plan
	if err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, fmt.Errorf("finding plan: %w", err)
	}
	return &plan, nil
}

// FindActiveByID only matches plans that can still be subscribed to.
func (r *PlanRepository) FindActiveByID(ctx context.Context, id uint) (*model.Plan, error) {
	var plan model.Plan
	if err := r.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrActivePlanNotFound
		}
		return nil, fmt.Errorf("finding active plan: %w", err)
	}
	return &plan, nil
}

// FindAll returns all plans, filtered on is_active when active is non-nil.
func (r *PlanRepository) FindAll(ctx context.Context, active *bool) ([]*model.Plan, error) {
	var plans []*model.Plan
	query := r.db.WithContext(ctx).Order("id")
	if active != nil {
		query = query.Where("is_active = ?", *active)
	}
	if err := query.Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("failed to find plans: %w", err)
	}
	return plans, nil
}

func (r *PlanRepository) Update(ctx context.Context, plan *model.Plan) error {
	if err := r.db.WithContext(ctx).Save(plan).Error; err != nil {
		return fmt.Errorf("updating plan: %w", err)
	}
	return nil
}

// Delete refuses to remove a plan that subscriptions still reference.
func (r *PlanRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Subscription{}).Where("plan_id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("counting plan subscriptions: %w", err)
		}
		if count > 0 {
			return domain.ErrPlanInUse
		}

		result := tx.Delete(&model.Plan{}, "id = ?", id)
		if result.Error != nil {
			if isForeignKeyViolation(result.Error) {
				return domain.ErrPlanInUse
			}
			return fmt.Errorf("deleting plan: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrPlanNotFound
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrPlanInUse) || errors.Is(err, domain.ErrPlanNotFound) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}
