// internal/handler/subscription.go
package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/dangerclosesec/tenancy/internal/domain"
	"github.com/dangerclosesec/tenancy/internal/service"
	"github.com/go-chi/chi/v5"
)

type SubscriptionHandler struct {
	service *service.SubscriptionService
}

func NewSubscriptionHandler(service *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		service: service,
	}
}

// Routes registers the subscription endpoints on r
func (h *SubscriptionHandler) Routes(r chi.Router) {
	r.Post("/subscribe/{planID}", h.Subscribe)
	r.Get("/subscriptions", h.ListSubscriptions)
	r.Get("/subscription/{id}", h.GetSubscription)
	r.Put("/update-subscription/{id}", h.UpdateSubscription)
	r.Delete("/delete-subscription/{id}", h.DeleteSubscription)
}

func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	planID, err := parseID(r, "planID")
	if err != nil {
		handleError(w, r, err)
		return
	}
	if err := parseForm(r); err != nil {
		handleError(w, r, err)
		return
	}

	raw, err := requiredFormValue(r, "organization_id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	orgID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		handleError(w, r, fmt.Errorf("%w: organization_id must be an integer", domain.ErrInvalidInput))
		return
	}

	out, err := h.service.Subscribe(r.Context(), planID, uint(orgID))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, out)
}

// ListSubscriptions handles GET /subscriptions with an optional ?status= filter
func (h *SubscriptionHandler) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.service.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, subs)
}

func (h *SubscriptionHandler) GetSubscription(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	sub, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, sub)
}

func (h *SubscriptionHandler) UpdateSubscription(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	if err := parseForm(r); err != nil {
		handleError(w, r, err)
		return
	}

	autoRenew, err := optionalBool(r, "auto_renew")
	if err != nil {
		handleError(w, r, err)
		return
	}

	sub, err := h.service.Update(r.Context(), id, service.UpdateSubscriptionInput{AutoRenew: autoRenew})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, sub)
}

func (h *SubscriptionHandler) DeleteSubscription(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	msg, err := h.service.Delete(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: msg})
}
