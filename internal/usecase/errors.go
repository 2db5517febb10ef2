package usecase

import (
	"errors"

	"telehealth-portal/pkg/utils"
)

// Error taxonomy surfaced to the HTTP adaptor. Everything else is internal.
var (
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrForbidden          = errors.New("not authorized")
	ErrStorage            = errors.New("storage failure")
	ErrSession            = errors.New("session failure")
)

// ValidationError carries the client-facing message and per-field details.
type ValidationError struct {
	Message string
	Fields  utils.FieldErrors
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed: " + e.Message
	}
	return "validation failed: " + e.Message + " (" + utils.FormatValidationErrors(e.Fields) + ")"
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
