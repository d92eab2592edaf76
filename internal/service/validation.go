package service

import "go-inventory-api/pkg/validator"

// ValidationError reports the first field-level failure of a request payload.
type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

func newValidationError(errs []*validator.ErrorResponse) error {
	return &ValidationError{message: errs[0].Message()}
}
