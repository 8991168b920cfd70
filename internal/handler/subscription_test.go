package handler_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/dangerclosesec/tenancy/internal/domain"
	"github.com/dangerclosesec/tenancy/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
)

func TestSubscribe(t *testing.T) {
	t.Run("inactive plan", func(t *testing.T) {
		s := newTestServer(t, time.Now(), uuid.New())

		s.planRepo.EXPECT().FindActiveByID(gomock.Any(), uint(2)).Return(nil, domain.ErrActivePlanNotFound)

		rec := s.do(t, http.MethodPost, "/subscriptions/subscribe/2", url.Values{"organization_id": {"1"}})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"ok":false,"error":"Active plan not found"}`, rec.Body.String())
	})

	t.Run("organization id required", func(t *testing.T) {
		s := newTestServer(t, time.Now(), uuid.New())

		rec := s.do(t, http.MethodPost, "/subscriptions/subscribe/2", url.Values{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("organization id must be numeric", func(t *testing.T) {
		s := newTestServer(t, time.Now(), uuid.New())

		rec := s.do(t, http.MethodPost, "/subscriptions/subscribe/2", url.Values{"organization_id": {"acme"}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListSubscriptions(t *testing.T) {
	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("filtered", func(t *testing.T) {
		s := newTestServer(t, time.Now(), uuid.New())

		status := model.SubscriptionActive
		s.subRepo.EXPECT().FindAllDetails(gomock.Any(), &status).Return([]*model.SubscriptionDetail{{
			ID:               3,
			StartDate:        datatypes.Date(start),
			EndDate:          datatypes.Date(start.AddDate(0, 0, 28)),
			Status:           model.SubscriptionActive,
			AutoRenew:        true,
			PlanName:         "Pro",
			OrganizationName: "Acme",
		}}, nil)

		rec := s.do(t, http.MethodGet, "/subscriptions/subscriptions?status=active", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{
			"id": 3,
			"organization": "Acme",
			"plan": "Pro",
			"start_date": "2025-02-01",
			"end_date": "2025-03-01",
			"status": "active",
			"auto_renew": true
		}]`, rec.Body.String())
	})

	t.Run("unknown status", func(t *testing.T) {
		s := newTestServer(t, time.Now(), uuid.New())

		rec := s.do(t, http.MethodGet, "/subscriptions/subscriptions?status=paused", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateSubscription(t *testing.T) {
	s := newTestServer(t, time.Now(), uuid.New())

	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	sub := &model.Subscription{
		ID:             3,
		OrganizationID: 1,
		PlanID:         2,
		StartDate:      datatypes.Date(start),
		EndDate:        datatypes.Date(start.AddDate(0, 0, 28)),
		Status:         model.SubscriptionActive,
	}
	s.subRepo.EXPECT().FindByID(gomock.Any(), uint(3)).Return(sub, nil)
	s.subRepo.EXPECT().Update(gomock.Any(), sub).Return(nil)

	rec := s.do(t, http.MethodPut, "/subscriptions/update-subscription/3", url.Values{
		"auto_renew": {"true"},
		"status":     {"cancelled"},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"id": 3,
		"organization_id": 1,
		"plan_id": 2,
		"start_date": "2025-02-01",
		"end_date": "2025-03-01",
		"status": "active",
		"auto_renew": true
	}`, rec.Body.String())
}

func TestDeleteSubscription(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		s := newTestServer(t, time.Now(), uuid.New())

		s.subRepo.EXPECT().FindByID(gomock.Any(), uint(3)).Return(&model.Subscription{ID: 3}, nil)
		s.subRepo.EXPECT().Delete(gomock.Any(), uint(3)).Return(nil)

		rec := s.do(t, http.MethodDelete, "/subscriptions/delete-subscription/3", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Subscription 3 deleted successfully"}`, rec.Body.String())
	})

	t.Run("missing", func(t *testing.T) {
		s := newTestServer(t, time.Now(), uuid.New())

		s.subRepo.EXPECT().FindByID(gomock.Any(), uint(3)).Return(nil, domain.ErrSubscriptionNotFound)

		rec := s.do(t, http.MethodDelete, "/subscriptions/delete-subscription/3", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
