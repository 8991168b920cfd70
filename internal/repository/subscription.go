// internal/repository/subscription.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/tenancy/internal/domain"
	"github.com/dangerclosesec/tenancy/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepositoryIface interface {
	Create(ctx context.Context, sub *model.Subscription) error
	FindByID(ctx context.Context, id uint) (*model.Subscription, error)
	FindDetailByID(ctx context.Context, id uint) (*model.SubscriptionDetail, error)
	FindAllDetails(ctx context.Context, status *model.SubscriptionStatus) ([]*model.SubscriptionDetail, error)
	FindCurrentByOrganization(ctx context.Context, orgID uint) (*model.SubscriptionDetail, error)
	Update(ctx context.Context, sub *model.Subscription) error
	Delete(ctx context.Context, id uint) error
}

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// details selects subscriptions joined with their plan and organization names.
func (r *SubscriptionRepository) details(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("subscriptions").
		Select("subscriptions.*, plans.name AS plan_name, organizations.name AS organization_name").
		Joins("JOIN plans ON plans.id = subscriptions.plan_id").
		Joins("JOIN organizations ON organizations.id = subscriptions.organization_id")
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *model.Subscription) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(sub).Error; err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("creating subscription: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("creating subscription: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) FindByID(ctx context.Context, id uint) (*model.Subscription, error) {
	var sub model.Subscription
	if err := r.db.WithContext(ctx).First(&sub, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("finding subscription: %w", err)
	}
	return &sub, nil
}

func (r *SubscriptionRepository) FindDetailByID(ctx context.Context, id uint) (*model.SubscriptionDetail, error) {
	var detail model.SubscriptionDetail
	if err := r.details(ctx).Where("subscriptions.id = ?", id).Take(&detail).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("finding subscription detail: %w", err)
	}
	return &detail, nil
}

// FindAllDetails returns every subscription, filtered on status when status is
// non-nil.
func (r *SubscriptionRepository) FindAllDetails(ctx context.Context, status *model.SubscriptionStatus) ([]*model.SubscriptionDetail, error) {
	var details []*model.SubscriptionDetail
	query := r.details(ctx).Order("subscriptions.id")
	if status != nil {
		query = query.Where("subscriptions.status = ?", *status)
	}
	if err := query.Find(&details).Error; err != nil {
		return nil, fmt.Errorf("failed to find subscriptions: %w", err)
	}
	return details, nil
}

// FindCurrentByOrganization returns the most recently created subscription of
// the organization.
func (r *SubscriptionRepository) FindCurrentByOrganization(ctx context.Context, orgID uint) (*model.SubscriptionDetail, error) {
	var detail model.SubscriptionDetail
	err := r.details(ctx).
		Where("subscriptions.organization_id = ?", orgID).
		Order("subscriptions.created_at DESC").
		Order("subscriptions.id DESC").
		Take(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationSubscriptionNotFound
		}
		return nil, fmt.Errorf("finding organization subscription: %w", err)
	}
	return &detail, nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, sub *model.Subscription) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(sub).Error; err != nil {
		return fmt.Errorf("updating subscription: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Subscription{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrSubscriptionNotFound
	}
	return nil
}
