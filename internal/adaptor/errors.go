package adaptor

import (
	"errors"
	"net/http"

	"telehealth-portal/internal/usecase"
	"telehealth-portal/pkg/utils"

	"go.uber.org/zap"
)

const (
	msgServerError      = "Server error"
	msgNotAuthenticated = "Not authenticated"
	msgNotAuthorized    = "Not authorized"
	msgInvalidBody      = "Invalid request body"
)

// handleServiceError maps the usecase error taxonomy onto HTTP responses.
// fallback is the 500 message for the operation; internals never reach the client.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation, fallback string) {
	var vErr *usecase.ValidationError

	switch {
	case errors.As(err, &vErr):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, vErr.Message, vErr.Fields)

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseConflict(w, "User already exists")

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials")
		utils.ResponseUnauthorized(w, "Invalid credentials")

	case errors.Is(err, usecase.ErrUnauthenticated):
		log.Warn(operation+" failed - not authenticated")
		utils.ResponseUnauthorized(w, msgNotAuthenticated)

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden")
		utils.ResponseForbidden(w, msgNotAuthorized)

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, fallback)
	}
}
