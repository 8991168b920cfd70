// internal/repository/user.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/tenancy/internal/domain"
	"github.com/dangerclosesec/tenancy/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepositoryIface is read-only; users are managed by the identity service.
type UserRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByOrganization(ctx context.Context, orgID uint) ([]*model.User, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}
	return &user, nil
}

func (r *UserRepository) FindByOrganization(ctx context.Context, orgID uint) ([]*model.User, error) {
	var users []*model.User
	result := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at").
		Find(&users)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find users: %w", result.Error)
	}
	return users, nil
}
