package usecase

import "errors"

// Business errors surfaced to the HTTP layer. Handlers map them to
// status codes with errors.Is instead of matching message text.
var (
	ErrFlightNotFound   = errors.New("flight not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrInvalidCard      = errors.New("invalid card number")
	ErrCardExpired      = errors.New("card expired")
	ErrAlreadyConfirmed = errors.New("booking already confirmed")
	ErrBookingConfirmed = errors.New("confirmed booking cannot be cancelled")
	ErrDuplicatePayment = errors.New("payment already exists for this booking")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already registered")
	ErrAccountDeactivated = errors.New("account is deactivated")
	ErrEmailVerified      = errors.New("email already verified")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrNoFlights          = errors.New("flights aren't available")
)

// ValidationError carries field-level messages from struct validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
