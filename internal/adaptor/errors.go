package adaptor

import (
	"errors"
	"net/http"

	"flight-booking/internal/usecase"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps business errors to HTTP responses. Everything
// unrecognized is a 500 with a generic message; the real error only
// goes to the log.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError
	if errors.As(err, &validationErr) {
		log.Warn(operation+" validation failed", zap.Any("errors", validationErr.Fields))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)
		return
	}

	switch {
	case errors.Is(err, usecase.ErrFlightNotFound),
		errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrBookingNotFound),
		errors.Is(err, usecase.ErrNoFlights):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, capitalize(err.Error()))

	case errors.Is(err, usecase.ErrInvalidCard),
		errors.Is(err, usecase.ErrCardExpired),
		errors.Is(err, usecase.ErrAlreadyConfirmed),
		errors.Is(err, usecase.ErrBookingConfirmed),
		errors.Is(err, usecase.ErrDuplicatePayment),
		errors.Is(err, usecase.ErrEmailVerified),
		errors.Is(err, usecase.ErrInvalidOTP):
		log.Warn(operation+" failed - business rule", zap.Error(err))
		utils.ResponseBadRequest(w, capitalize(err.Error()), nil)

	case errors.Is(err, usecase.ErrUserExists):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseConflict(w, capitalize(err.Error()))

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, capitalize(err.Error()))

	case errors.Is(err, usecase.ErrAccountDeactivated):
		log.Warn(operation+" failed - account deactivated", zap.Error(err))
		utils.ResponseForbidden(w, capitalize(err.Error()))

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-32) + s[1:]
	}
	return s
}
