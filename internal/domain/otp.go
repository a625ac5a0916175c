package domain

import (
	"fmt"
	"strings"
	"time"
)

// OTPChallenge is a single outstanding email-verification attempt. At most
// one live challenge exists per email; a new request replaces the old one.
type OTPChallenge struct {
	Email     string
	Code      string
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (c *OTPChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

type SendOTPRequest struct {
	Email string `json:"email"`
}

func (r *SendOTPRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
}

func (r *SendOTPRequest) Validate() error {
	if !IsValidEmail(r.Email) {
		return fmt.Errorf("%w: a valid email is required", ErrValidation)
	}
	return nil
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (r *VerifyOTPRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
	r.OTP = strings.TrimSpace(r.OTP)
}

func (r *VerifyOTPRequest) Validate() error {
	if !IsValidEmail(r.Email) {
		return fmt.Errorf("%w: a valid email is required", ErrValidation)
	}
	if len(r.OTP) != 6 {
		return fmt.Errorf("%w: otp must be 6 digits", ErrValidation)
	}
	return nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func IsValidEmail(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}
	local, dom := parts[0], parts[1]
	return len(local) > 0 && len(dom) > 2 && strings.Contains(dom, ".")
}
