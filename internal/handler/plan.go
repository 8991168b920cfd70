// internal/handler/plan.go
package handler

import (
	"fmt"
	"net/http"

	"github.com/dangerclosesec/tenancy/internal/domain"
	"github.com/dangerclosesec/tenancy/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type PlanHandler struct {
	service *service.PlanService
}

func NewPlanHandler(service *service.PlanService) *PlanHandler {
	return &PlanHandler{
		service: service,
	}
}

// Routes registers the plan endpoints on r
func (h *PlanHandler) Routes(r chi.Router) {
	r.Post("/create-plan", h.CreatePlan)
	r.Get("/plans", h.ListPlans)
	r.Get("/plan/{id}", h.GetPlan)
	r.Put("/update-plan/{id}", h.UpdatePlan)
	r.Post("/deactivate-plan/{id}", h.SetPlanActive)
	r.Delete("/delete-plan/{id}", h.DeletePlan)
}

func parsePrice(v string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: price must be a number", domain.ErrInvalidInput)
	}
	return price, nil
}

func (h *PlanHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		handleError(w, r, err)
		return
	}

	var input service.CreatePlanInput
	var err error

	if input.Name, err = requiredFormValue(r, "name"); err != nil {
		handleError(w, r, err)
		return
	}

	rawPrice, err := requiredFormValue(r, "price")
	if err != nil {
		handleError(w, r, err)
		return
	}
	if input.Price, err = parsePrice(rawPrice); err != nil {
		handleError(w, r, err)
		return
	}

	duration, err := optionalInt(r, "duration_days")
	if err != nil {
		handleError(w, r, err)
		return
	}
	if duration == nil {
		handleError(w, r, fmt.Errorf("%w: duration_days is required", domain.ErrInvalidInput))
		return
	}
	input.DurationDays = *duration

	plan, err := h.service.Create(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, plan)
}

// ListPlans handles GET /plans with an optional ?active= filter
func (h *PlanHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	var active *bool
	if raw := r.URL.Query().Get("active"); raw != "" {
		if err := parseForm(r); err != nil {
			handleError(w, r, err)
			return
		}
		b, err := optionalBool(r, "active")
		if err != nil {
			handleError(w, r, err)
			return
		}
		active = b
	}

	plans, err := h.service.List(r.Context(), active)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, plans)
}

func (h *PlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	plan, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, plan)
}

func (h *PlanHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	if err := parseForm(r); err != nil {
		handleError(w, r, err)
		return
	}

	var input service.UpdatePlanInput
	if name, ok := formValue(r, "name"); ok {
		input.Name = &name
	}
	if raw, ok := formValue(r, "price"); ok {
		price, err := parsePrice(raw)
		if err != nil {
			handleError(w, r, err)
			return
		}
		input.Price = &price
	}
	if input.DurationDays, err = optionalInt(r, "duration_days"); err != nil {
		handleError(w, r, err)
		return
	}

	plan, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, plan)
}

func (h *PlanHandler) SetPlanActive(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	if err := parseForm(r); err != nil {
		handleError(w, r, err)
		return
	}

	active, err := requiredBool(r, "status")
	if err != nil {
		handleError(w, r, err)
		return
	}

	msg, err := h.service.SetActive(r.Context(), id, active)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: msg})
}

func (h *PlanHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
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
