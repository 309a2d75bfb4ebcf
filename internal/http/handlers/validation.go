package handlers

import (
	"strings"
	"unicode/utf8"
)

const (
	maxNameLength = 100
	maxQuantity   = 999999
	maxThreshold  = 9999
)

type FieldValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// validateItem applies the edge rules for create and update uniformly.
// Validation failures stop the request before it reaches the store.
func validateItem(req ItemRequest) []FieldValidationError {
	errs := []FieldValidationError{}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs = append(errs, FieldValidationError{Field: "Name", Description: "Name is required"})
	} else if utf8.RuneCountInString(name) > maxNameLength {
		errs = append(errs, FieldValidationError{Field: "Name", Description: "Name must be at most 100 characters"})
	}

	if strings.TrimSpace(req.Category) == "" {
		errs = append(errs, FieldValidationError{Field: "Category", Description: "Category is required"})
	}

	if req.Quantity < 0 {
		errs = append(errs, FieldValidationError{Field: "Quantity", Description: "Quantity cannot be negative"})
	} else if req.Quantity > maxQuantity {
		errs = append(errs, FieldValidationError{Field: "Quantity", Description: "Quantity is too large"})
	}

	if req.Threshold != nil {
		if *req.Threshold < 0 {
			errs = append(errs, FieldValidationError{Field: "Threshold", Description: "Threshold cannot be negative"})
		} else if *req.Threshold > maxThreshold {
			errs = append(errs, FieldValidationError{Field: "Threshold", Description: "Threshold is too large"})
		}
	}

	return errs
}
