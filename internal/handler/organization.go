// internal/handler/organization.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/tenancy/internal/service"
	"github.com/go-chi/chi/v5"
)

type OrganizationHandler struct {
	service *service.OrganizationService
}

func NewOrganizationHandler(service *service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{
		service: service,
	}
}

// Routes registers the organization endpoints on r
func (h *OrganizationHandler) Routes(r chi.Router) {
	r.Get("/", h.ListOrganizations)
	r.Post("/create-organization", h.CreateOrganization)
	r.Post("/deactivate-organization/{id}", h.SetOrganizationActive)
	r.Put("/update-organization/{id}", h.UpdateOrganization)
	r.Delete("/delete-organization/{id}", h.DeleteOrganization)
	r.Get("/{id}", h.GetOrganization)
	r.Get("/{id}/users", h.ListOrganizationUsers)
	r.Get("/{id}/subscription", h.GetOrganizationSubscription)
}

func (h *OrganizationHandler) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.service.List(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, orgs)
}

func (h *OrganizationHandler) GetOrganization(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	org, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, org)
}

func (h *OrganizationHandler) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		handleError(w, r, err)
		return
	}

	name, err := requiredFormValue(r, "name")
	if err != nil {
		handleError(w, r, err)
		return
	}

	org, err := h.service.Create(r.Context(), service.CreateOrganizationInput{Name: name})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, org)
}

func (h *OrganizationHandler) SetOrganizationActive(w http.ResponseWriter, r *http.Request) {
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

func (h *OrganizationHandler) UpdateOrganization(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	if err := parseForm(r); err != nil {
		handleError(w, r, err)
		return
	}

	var input service.UpdateOrganizationInput
	if name, ok := formValue(r, "name"); ok {
		input.Name = &name
	}

	org, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, org)
}

func (h *OrganizationHandler) DeleteOrganization(w http.ResponseWriter, r *http.Request) {
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

func (h *OrganizationHandler) ListOrganizationUsers(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	users, err := h.service.ListUsers(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, users)
}

func (h *OrganizationHandler) GetOrganizationSubscription(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	sub, err := h.service.CurrentSubscription(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, sub)
}
