package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dangerclosesec/tenancy/internal/handler"
	"github.com/dangerclosesec/tenancy/internal/middleware"
	"github.com/dangerclosesec/tenancy/internal/mocks"
	"github.com/dangerclosesec/tenancy/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testServer struct {
	orgRepo      *mocks.MockOrganizationRepositoryIface
	planRepo     *mocks.MockPlanRepositoryIface
	subRepo      *mocks.MockSubscriptionRepositoryIface
	userRepo     *mocks.MockUserRepositoryIface
	settingsRepo *mocks.MockUserSettingsRepositoryIface
	router       chi.Router
}

// newTestServer mounts every handler the way cmd/api does, with the
// authenticated user fixed to userID.
func newTestServer(t *testing.T, now time.Time, userID uuid.UUID) *testServer {
	ctrl := gomock.NewController(t)
	s := &testServer{
		orgRepo:      mocks.NewMockOrganizationRepositoryIface(ctrl),
		planRepo:     mocks.NewMockPlanRepositoryIface(ctrl),
		subRepo:      mocks.NewMockSubscriptionRepositoryIface(ctrl),
		userRepo:     mocks.NewMockUserRepositoryIface(ctrl),
		settingsRepo: mocks.NewMockUserSettingsRepositoryIface(ctrl),
	}

	subService := service.NewSubscriptionService(s.subRepo, s.planRepo, s.orgRepo)
	subService.SetClock(func() time.Time { return now })

	orgHandler := handler.NewOrganizationHandler(service.NewOrganizationService(s.orgRepo, s.userRepo, s.subRepo))
	planHandler := handler.NewPlanHandler(service.NewPlanService(s.planRepo))
	subHandler := handler.NewSubscriptionHandler(subService)
	settingsHandler := handler.NewUserSettingsHandler(service.NewUserSettingsService(s.settingsRepo, s.userRepo))

	r := chi.NewRouter()
	r.Route("/organizations", orgHandler.Routes)
	r.Route("/subscriptions", func(r chi.Router) {
		planHandler.Routes(r)
		subHandler.Routes(r)
	})
	r.Route("/user-settings", func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, req.WithContext(middleware.WithUserID(req.Context(), userID)))
			})
		})
		settingsHandler.Routes(r)
	})
	s.router = r
	return s
}

func (s *testServer) do(t *testing.T, method, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}
