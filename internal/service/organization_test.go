package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dangerclosesec/tenancy/internal/domain"
	"github.com/dangerclosesec/tenancy/internal/mocks"
	"github.com/dangerclosesec/tenancy/internal/model"
	"github.com/dangerclosesec/tenancy/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
)

type orgFixture struct {
	orgRepo  *mocks.MockOrganizationRepositoryIface
	userRepo *mocks.MockUserRepositoryIface
	subRepo  *mocks.MockSubscriptionRepositoryIface
	svc      *service.OrganizationService
}

func newOrgFixture(t *testing.T) *orgFixture {
	ctrl := gomock.NewController(t)
	f := &orgFixture{
		orgRepo:  mocks.NewMockOrganizationRepositoryIface(ctrl),
		userRepo: mocks.NewMockUserRepositoryIface(ctrl),
		subRepo:  mocks.NewMockSubscriptionRepositoryIface(ctrl),
	}
	f.svc = service.NewOrganizationService(f.orgRepo, f.userRepo, f.subRepo)
	return f
}

func TestOrganizationCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an active organization", func(t *testing.T) {
		f := newOrgFixture(t)

		f.orgRepo.EXPECT().FindByName(gomock.Any(), "Acme").Return(nil, domain.ErrOrganizationNotFound)
		f.orgRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, org *model.Organization) error {
				org.ID = 7
				org.CreatedAt = time.Now()
				return nil
			})

		org, err := f.svc.Create(ctx, service.CreateOrganizationInput{Name: "Acme"})
		require.NoError(t, err)
		assert.Equal(t, uint(7), org.ID)
		assert.Equal(t, "Acme", org.Name)
		assert.True(t, org.IsActive)
	})

	t.Run("duplicate name is a conflict and nothing is written", func(t *testing.T) {
		f := newOrgFixture(t)

		existing := &model.Organization{ID: 1, Name: "Acme", IsActive: true}
		f.orgRepo.EXPECT().FindByName(gomock.Any(), "Acme").Return(existing, nil)

		_, err := f.svc.Create(ctx, service.CreateOrganizationInput{Name: "Acme"})
		assert.ErrorIs(t, err, domain.ErrOrganizationNameTaken)
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.Equal(t, "Acme", existing.Name)
		assert.True(t, existing.IsActive)
	})

	t.Run("empty name is invalid", func(t *testing.T) {
		f := newOrgFixture(t)

		_, err := f.svc.Create(ctx, service.CreateOrganizationInput{Name: ""})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("name longer than 150 characters is invalid", func(t *testing.T) {
		f := newOrgFixture(t)

		long := make([]byte, 151)
		for i := range long {
			long[i] = 'a'
		}
		_, err := f.svc.Create(ctx, service.CreateOrganizationInput{Name: string(long)})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestOrganizationUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites the name when supplied", func(t *testing.T) {
		f := newOrgFixture(t)

		f.orgRepo.EXPECT().FindByID(gomock.Any(), uint(3)).Return(&model.Organization{ID: 3, Name: "Old", IsActive: true}, nil)
		f.orgRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		name := "New"
		org, err := f.svc.Update(ctx, 3, service.UpdateOrganizationInput{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "New", org.Name)
	})

	t.Run("keeps the name when omitted", func(t *testing.T) {
		f := newOrgFixture(t)

		f.orgRepo.EXPECT().FindByID(gomock.Any(), uint(3)).Return(&model.Organization{ID: 3, Name: "Old"}, nil)
		f.orgRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		org, err := f.svc.Update(ctx, 3, service.UpdateOrganizationInput{})
		require.NoError(t, err)
		assert.Equal(t, "Old", org.Name)
	})

	t.Run("missing organization", func(t *testing.T) {
		f := newOrgFixture(t)

		f.orgRepo.EXPECT().FindByID(gomock.Any(), uint(3)).Return(nil, domain.ErrOrganizationNotFound)

		_, err := f.svc.Update(ctx, 3, service.UpdateOrganizationInput{})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestOrganizationSetActive(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		active bool
		want   string
	}{
		{"activate", true, "Organization Acme activated successfully"},
		{"deactivate", false, "Organization Acme deactivated successfully"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrgFixture(t)

			org := &model.Organization{ID: 1, Name: "Acme", IsActive: !tt.active}
			f.orgRepo.EXPECT().FindByID(gomock.Any(), uint(1)).Return(org, nil)
			f.orgRepo.EXPECT().Update(gomock.Any(), org).Return(nil)

			msg, err := f.svc.SetActive(ctx, 1, tt.active)
			require.NoError(t, err)
			assert.Equal(t, tt.want, msg)
			assert.Equal(t, tt.active, org.IsActive)
		})
	}
}

func TestOrganizationDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("reports the deleted name", func(t *testing.T) {
		f := newOrgFixture(t)

		f.orgRepo.EXPECT().FindByID(gomock.Any(), uint(4)).Return(&model.Organization{ID: 4, Name: "Acme"}, nil)
		f.orgRepo.EXPECT().Delete(gomock.Any(), uint(4)).Return(nil)

		msg, err := f.svc.Delete(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, "Organization Acme deleted successfully", msg)
	})

	t.Run("missing organization performs no delete", func(t *testing.T) {
		f := newOrgFixture(t)

		f.orgRepo.EXPECT().FindByID(gomock.Any(), uint(4)).Return(nil, domain.ErrOrganizationNotFound)

		_, err := f.svc.Delete(ctx, 4)
		assert.ErrorIs(t, err, domain.ErrOrganizationNotFound)
	})
}

func TestOrganizationListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("projects members", func(t *testing.T) {
		f := newOrgFixture(t)

		userID := uuid.New()
		f.orgRepo.EXPECT().FindByID(gomock.Any(), uint(1)).Return(&model.Organization{ID: 1}, nil)
		f.userRepo.EXPECT().FindByOrganization(gomock.Any(), uint(1)).Return([]*model.User{{
			ID:       userID,
			Name:     "Ada",
			Email:    "ada@example.com",
			Role:     "admin",
			IsActive: true,
		}}, nil)

		members, err := f.svc.ListUsers(ctx, 1)
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, service.OrganizationMember{
			ID:       userID.String(),
			Name:     "Ada",
			Email:    "ada@example.com",
			Role:     "admin",
			IsActive: true,
		}, members[0])
	})

	t.Run("no members gives an empty list", func(t *testing.T) {
		f := newOrgFixture(t)

		f.orgRepo.EXPECT().FindByID(gomock.Any(), uint(1)).Return(&model.Organization{ID: 1}, nil)
		f.userRepo.EXPECT().FindByOrganization(gomock.Any(), uint(1)).Return(nil, nil)

		members, err := f.svc.ListUsers(ctx, 1)
		require.NoError(t, err)
		assert.NotNil(t, members)
		assert.Empty(t, members)
	})

	t.Run("missing organization", func(t *testing.T) {
		f := newOrgFixture(t)

		f.orgRepo.EXPECT().FindByID(gomock.Any(), uint(1)).Return(nil, domain.ErrOrganizationNotFound)

		_, err := f.svc.ListUsers(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrOrganizationNotFound)
	})
}

func TestOrganizationCurrentSubscription(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the current subscription", func(t *testing.T) {
		f := newOrgFixture(t)

		start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		f.orgRepo.EXPECT().FindByID(gomock.Any(), uint(1)).Return(&model.Organization{ID: 1}, nil)
		f.subRepo.EXPECT().FindCurrentByOrganization(gomock.Any(), uint(1)).Return(&model.SubscriptionDetail{
			ID:        9,
			PlanName:  "Pro",
			StartDate: datatypes.Date(start),
			EndDate:   datatypes.Date(start.AddDate(0, 0, 30)),
			Status:    model.SubscriptionActive,
		}, nil)

		sub, err := f.svc.CurrentSubscription(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, &service.OrganizationSubscription{
			ID:        9,
			PlanName:  "Pro",
			StartDate: "2025-01-01",
			EndDate:   "2025-01-31",
			Status:    model.SubscriptionActive,
		}, sub)
	})

	t.Run("missing organization", func(t *testing.T) {
		f := newOrgFixture(t)

		f.orgRepo.EXPECT().FindByID(gomock.Any(), uint(1)).Return(nil, domain.ErrOrganizationNotFound)

		_, err := f.svc.CurrentSubscription(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrOrganizationNotFound)
	})

	t.Run("organization without subscription", func(t *testing.T) {
		f := newOrgFixture(t)

		f.orgRepo.EXPECT().FindByID(gomock.Any(), uint(1)).Return(&model.Organization{ID: 1}, nil)
		f.subRepo.EXPECT().FindCurrentByOrganization(gomock.Any(), uint(1)).Return(nil, domain.ErrOrganizationSubscriptionNotFound)

		_, err := f.svc.CurrentSubscription(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrOrganizationSubscriptionNotFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
