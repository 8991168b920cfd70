// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")

	// User-related errors
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)

	// Organization-related errors
	ErrOrganizationNotFound             = fmt.Errorf("organization %w", ErrNotFound)
	ErrOrganizationNameTaken            = fmt.Errorf("%w: organization with this name already exists", ErrConflict)
	ErrOrganizationSubscriptionNotFound = fmt.Errorf("subscription %w for this organization", ErrNotFound)

	// Plan-related errors
	ErrPlanNotFound       = fmt.Errorf("plan %w", ErrNotFound)
	ErrActivePlanNotFound = fmt.Errorf("active plan %w", ErrNotFound)
	ErrPlanInUse          = fmt.Errorf("%w: plan has subscriptions", ErrConflict)

	// Subscription-related errors
	ErrSubscriptionNotFound      = fmt.Errorf("subscription %w", ErrNotFound)
	ErrInvalidSubscriptionStatus = fmt.Errorf("%w: invalid subscription status", ErrInvalidInput)

	// Settings-related errors
	ErrInvalidSettingsStatus = fmt.Errorf("%w: invalid status choice", ErrInvalidInput)
)
