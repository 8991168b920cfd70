package service

import (
	"fmt"

	"github.com/dangerclosesec/tenancy/internal/domain"
	"github.com/go-playground/validator/v10"
)

// validateInput runs struct validation and reports failures as invalid input.
func validateInput(v *validator.Validate, input any) error {
	if err := v.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func activationMessage(kind, name string, active bool) string {
	if active {
		return fmt.Sprintf("%s %s activated successfully", kind, name)
	}
	return fmt.Sprintf("%s %s deactivated successfully", kind, name)
}
