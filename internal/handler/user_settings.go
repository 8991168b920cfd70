// internal/handler/user_settings.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/tenancy/internal/domain"
	"github.com/dangerclosesec/tenancy/internal/middleware"
	"github.com/dangerclosesec/tenancy/internal/model"
	"github.com/dangerclosesec/tenancy/internal/service"
	"github.com/go-chi/chi/v5"
)

type UserSettingsHandler struct {
	service *service.UserSettingsService
}

func NewUserSettingsHandler(service *service.UserSettingsService) *UserSettingsHandler {
	return &UserSettingsHandler{
		service: service,
	}
}

// Routes registers the settings endpoints; r must already be authenticated
func (h *UserSettingsHandler) Routes(r chi.Router) {
	r.Get("/", h.GetSettings)
	r.Post("/", h.UpsertSettings)
}

// GetSettings returns the caller's settings, creating the defaults on first use
func (h *UserSettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handleError(w, r, domain.ErrUnauthorized)
		return
	}

	settings, err := h.service.Get(r.Context(), userID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, settings)
}

// UpsertSettings replaces the caller's settings; absent fields take defaults
func (h *UserSettingsHandler) UpsertSettings(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handleError(w, r, domain.ErrUnauthorized)
		return
	}
	if err := parseForm(r); err != nil {
		handleError(w, r, err)
		return
	}

	var input service.UpdateSettingsInput
	toggles := []struct {
		key string
		dst *bool
	}{
		{"email_notifications", &input.EmailNotifications},
		{"whatsapp_notifications", &input.WhatsappNotifications},
		{"call_reminder_notifications", &input.CallReminderNotifications},
		{"daily_summery_alert", &input.DailySummaryAlert},
		{"performance_alert", &input.PerformanceAlert},
	}
	for _, t := range toggles {
		v, err := boolOrDefault(r, t.key, false)
		if err != nil {
			handleError(w, r, err)
			return
		}
		*t.dst = v
	}

	input.Status = string(model.FrequencyDaily)
	if status, ok := formValue(r, "status"); ok {
		input.Status = status
	}

	settings, err := h.service.Upsert(r.Context(), userID, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, settings)
}
