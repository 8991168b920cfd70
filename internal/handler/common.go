package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/dangerclosesec/tenancy/internal/domain"
	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
)

const maxFormMemory = 1 << 20

type ErrorResponse struct { // TypeGen: ErrorResponse
	BaseResponse
	Error string `json:"error"`
}

type BaseResponse struct { // TypeGen: DefaultResponse
	Ok bool `json:"ok"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// handleError maps domain errors onto HTTP status codes
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, errorMessage(err))
	case errors.Is(err, domain.ErrUnauthorized):
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, errorMessage(err))
	case errors.Is(err, domain.ErrConflict):
		respondWithError(w, http.StatusConflict, errorMessage(err))
	default:
		slog.ErrorContext(r.Context(), "Request failed", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// errorMessage turns "conflict: organization with this name already exists"
// into "Organization with this name already exists".
func errorMessage(err error) string {
	msg := err.Error()
	for _, prefix := range []string{domain.ErrInvalidInput.Error(), domain.ErrConflict.Error()} {
		msg = strings.TrimPrefix(msg, prefix+": ")
	}
	if msg == "" {
		return msg
	}
	runes := []rune(msg)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// parseID reads a positive numeric id from the named URL parameter.
func parseID(r *http.Request, param string) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, param), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: invalid %s", domain.ErrInvalidInput, param)
	}
	return uint(id), nil
}

// parseForm accepts url-encoded and multipart bodies.
func parseForm(r *http.Request) error {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return fmt.Errorf("%w: malformed form body", domain.ErrInvalidInput)
	}
	return nil
}

// formValue returns the field value and whether it was sent at all.
func formValue(r *http.Request, key string) (string, bool) {
	if r.Form == nil {
		return "", false
	}
	values, ok := r.Form[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func requiredFormValue(r *http.Request, key string) (string, error) {
	v, ok := formValue(r, key)
	if !ok {
		return "", fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, key)
	}
	return v, nil
}

// optionalBool parses an optional boolean field; nil means absent.
func optionalBool(r *http.Request, key string) (*bool, error) {
	v, ok := formValue(r, key)
	if !ok {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a boolean", domain.ErrInvalidInput, key)
	}
	return &b, nil
}

func requiredBool(r *http.Request, key string) (bool, error) {
	b, err := optionalBool(r, key)
	if err != nil {
		return false, err
	}
	if b == nil {
		return false, fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, key)
	}
	return *b, nil
}

// boolOrDefault parses a boolean field that falls back to def when absent.
func boolOrDefault(r *http.Request, key string, def bool) (bool, error) {
	b, err := optionalBool(r, key)
	if err != nil {
		return false, err
	}
	if b == nil {
		return def, nil
	}
	return *b, nil
}

func optionalInt(r *http.Request, key string) (*int, error) {
	v, ok := formValue(r, key)
	if !ok {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
	}
	return &n, nil
}
