package domain

import "errors"

// Sentinel errors for the failure kinds the API distinguishes. Callers
// classify with errors.Is and add detail by wrapping with fmt.Errorf.
var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrOTPExpired    = errors.New("otp expired")
	ErrInvalidCode   = errors.New("invalid otp code")
	ErrEmailDelivery = errors.New("email delivery failed")
)
