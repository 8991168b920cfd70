package handler_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/dangerclosesec/tenancy/internal/domain"
	"github.com/dangerclosesec/tenancy/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCreatePlan(t *testing.T) {
	t.Run("price is rendered with two decimals", func(t *testing.T) {
		s := newTestServer(t, time.Now(), uuid.New())

		s.planRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *model.Plan) error {
				p.ID = 2
				return nil
			})

		rec := s.do(t, http.MethodPost, "/subscriptions/create-plan", url.Values{
			"name":          {"Pro"},
			"price":         {"10"},
			"duration_days": {"30"},
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":2,"name":"Pro","price":"10.00","duration_days":30}`, rec.Body.String())
	})

	tests := []struct {
		name string
		form url.Values
	}{
		{"missing price", url.Values{"name": {"Pro"}, "duration_days": {"30"}}},
		{"price is not a number", url.Values{"name": {"Pro"}, "price": {"ten"}, "duration_days": {"30"}}},
		{"missing duration", url.Values{"name": {"Pro"}, "price": {"10"}}},
		{"zero duration", url.Values{"name": {"Pro"}, "price": {"10"}, "duration_days": {"0"}}},
		{"negative price", url.Values{"name": {"Pro"}, "price": {"-1"}, "duration_days": {"30"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, time.Now(), uuid.New())

			rec := s.do(t, http.MethodPost, "/subscriptions/create-plan", tt.form)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestListPlans(t *testing.T) {
	t.Run("active filter", func(t *testing.T) {
		s := newTestServer(t, time.Now(), uuid.New())

		active := true
		s.planRepo.EXPECT().FindAll(gomock.Any(), &active).Return([]*model.Plan{
			{ID: 1, Name: "Basic", Price: decimal.RequireFromString("5"), DurationDays: 30, IsActive: true},
		}, nil)

		rec := s.do(t, http.MethodGet, "/subscriptions/plans?active=true", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"id":1,"name":"Basic","price":"5.00","duration_days":30,"is_active":true}]`, rec.Body.String())
	})

	t.Run("no filter", func(t *testing.T) {
		s := newTestServer(t, time.Now(), uuid.New())

		s.planRepo.EXPECT().FindAll(gomock.Any(), nil).Return(nil, nil)

		rec := s.do(t, http.MethodGet, "/subscriptions/plans", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("bad filter", func(t *testing.T) {
		s := newTestServer(t, time.Now(), uuid.New())

		rec := s.do(t, http.MethodGet, "/subscriptions/plans?active=maybe", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetPlan(t *testing.T) {
	s := newTestServer(t, time.Now(), uuid.New())

	s.planRepo.EXPECT().FindByID(gomock.Any(), uint(9)).Return(nil, domain.ErrPlanNotFound)

	rec := s.do(t, http.MethodGet, "/subscriptions/plan/9", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"Plan not found"}`, rec.Body.String())
}

func TestUpdatePlan(t *testing.T) {
	s := newTestServer(t, time.Now(), uuid.New())

	plan := &model.Plan{ID: 2, Name: "Pro", Price: decimal.RequireFromString("9.99"), DurationDays: 30, IsActive: true}
	s.planRepo.EXPECT().FindByID(gomock.Any(), uint(2)).Return(plan, nil)
	s.planRepo.EXPECT().Update(gomock.Any(), plan).Return(nil)

	rec := s.do(t, http.MethodPut, "/subscriptions/update-plan/2", url.Values{"duration_days": {"60"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":2,"name":"Pro","price":"9.99","duration_days":60}`, rec.Body.String())
}

func TestDeletePlan(t *testing.T) {
	t.Run("in use", func(t *testing.T) {
		s := newTestServer(t, time.Now(), uuid.New())

		s.planRepo.EXPECT().FindByID(gomock.Any(), uint(2)).Return(&model.Plan{ID: 2, Name: "Pro"}, nil)
		s.planRepo.EXPECT().Delete(gomock.Any(), uint(2)).Return(domain.ErrPlanInUse)

		rec := s.do(t, http.MethodDelete, "/subscriptions/delete-plan/2", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"ok":false,"error":"Plan has subscriptions"}`, rec.Body.String())
	})

	t.Run("deleted", func(t *testing.T) {
		s := newTestServer(t, time.Now(), uuid.New())

		s.planRepo.EXPECT().FindByID(gomock.Any(), uint(2)).Return(&model.Plan{ID: 2, Name: "Pro"}, nil)
		s.planRepo.EXPECT().Delete(gomock.Any(), uint(2)).Return(nil)

		rec := s.do(t, http.MethodDelete, "/subscriptions/delete-plan/2", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Plan Pro deleted successfully"}`, rec.Body.String())
	})
}

func TestSetPlanActive(t *testing.T) {
	s := newTestServer(t, time.Now(), uuid.New())

	plan := &model.Plan{ID: 2, Name: "Pro", IsActive: false}
	s.planRepo.EXPECT().FindByID(gomock.Any(), uint(2)).Return(plan, nil)
	s.planRepo.EXPECT().Update(gomock.Any(), plan).Return(nil)

	rec := s.do(t, http.MethodPost, "/subscriptions/deactivate-plan/2", url.Values{"status": {"true"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Plan Pro activated successfully"}`, rec.Body.String())
}
