// internal/repository/organization.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/tenancy/internal/domain"
	"github.com/dangerclosesec/tenancy/internal/model"
	"gorm.io/gorm"
)

type OrganizationRepositoryIface interface {
	Create(ctx context.Context, org *model.Organization) error
	FindByID(ctx context.Context, id uint) (*model.Organization, error)
	FindByName(ctx context.Context, name string) (*model.Organization, error)
	FindAll(ctx context.Context) ([]*model.Organization, error)
	Update(ctx context.Context, org *model.Organization) error
	Delete(ctx context.Context, id uint) error
}

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// FindAll returns all organizations
func (r *OrganizationRepository) FindAll(ctx context.Context) ([]*model.Organization, error) {
	var orgs []*model.Organization
	result := r.db.WithContext(ctx).Order("id").Find(&orgs)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find all organizations: %w", result.Error)
	}
	return orgs, nil
}

func (r *OrganizationRepository) Create(ctx context.Context, org *model.Organization) error {
	if err := r.db.WithContext(ctx).Create(org).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrOrganizationNameTaken
		}
		return fmt.Errorf("creating organization: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uint) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("finding organization: %w", err)
	}
	return &org, nil
}

func (r *OrganizationRepository) FindByName(ctx context.Context, name string) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("finding organization by name: %w", err)
	}
	return &org, nil
}

func (r *OrganizationRepository) Update(ctx context.Context, org *model.Organization) error {
	if err := r.db.WithContext(ctx).Save(org).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrOrganizationNameTaken
		}
		return fmt.Errorf("updating organization: %w", err)
	}
	return nil
}

// Delete removes the organization together with its subscriptions and
// detaches its users.
func (r *OrganizationRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("organization_id = ?", id).Delete(&model.Subscription{}).Error; err != nil {
			return fmt.Errorf("deleting organization subscriptions: %w", err)
		}

		if err := tx.Model(&model.User{}).
			Where("organization_id = ?", id).
			Update("organization_id", nil).Error; err != nil {
			return fmt.Errorf("detaching organization users: %w", err)
		}

		result := tx.Delete(&model.Organization{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("deleting organization: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrOrganizationNotFound
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrOrganizationNotFound) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}
