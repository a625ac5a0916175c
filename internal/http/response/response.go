package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cafedelight/menu-backend/internal/auth"
	"github.com/cafedelight/menu-backend/internal/domain"
	"github.com/cafedelight/menu-backend/internal/logger"
)

// ErrorResponse is the JSON error envelope every failure shares.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// Error codes.
const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeNotFound      = "NOT_FOUND"
	CodeExpiredToken  = "EXPIRED_TOKEN"
	CodeInvalidToken  = "INVALID_TOKEN"
	CodeExpiredCode   = "EXPIRED_CODE"
	CodeInvalidCode   = "INVALID_CODE"
	CodeEmailDelivery = "EMAIL_DELIVERY_FAILED"
	CodeRateLimit     = "RATE_LIMIT_EXCEEDED"
	CodeInternalError = "INTERNAL_ERROR"
)

func WriteJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func WriteError(w http.ResponseWriter, statusCode int, message, code string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message, Code: code})
}

func BadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, message, CodeInvalidInput)
}

func Unauthorized(w http.ResponseWriter, message, code string) {
	WriteError(w, http.StatusUnauthorized, message, code)
}

func Forbidden(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusForbidden, message, CodeForbidden)
}

func NotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, message, CodeNotFound)
}

func RateLimit(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusTooManyRequests, message, CodeRateLimit)
}

func InternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, message, CodeInternalError)
}

// FromError maps domain failure kinds onto HTTP statuses and codes.
func FromError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		WriteError(w, http.StatusBadRequest, err.Error(), CodeInvalidInput)
	case errors.Is(err, domain.ErrInvalidCode):
		WriteError(w, http.StatusBadRequest, "Invalid OTP", CodeInvalidCode)
	case errors.Is(err, domain.ErrOTPExpired):
		WriteError(w, http.StatusBadRequest, "OTP has expired", CodeExpiredCode)
	case errors.Is(err, auth.ErrTokenExpired):
		WriteError(w, http.StatusUnauthorized, "Token has expired", CodeExpiredToken)
	case errors.Is(err, auth.ErrTokenInvalid):
		WriteError(w, http.StatusUnauthorized, "Invalid token", CodeInvalidToken)
	case errors.Is(err, domain.ErrUnauthorized):
		WriteError(w, http.StatusUnauthorized, "Authorization required", CodeUnauthorized)
	case errors.Is(err, domain.ErrForbidden):
		WriteError(w, http.StatusForbidden, "Not authorized", CodeForbidden)
	case errors.Is(err, domain.ErrNotFound):
		WriteError(w, http.StatusNotFound, err.Error(), CodeNotFound)
	case errors.Is(err, domain.ErrEmailDelivery):
		WriteError(w, http.StatusInternalServerError, "Failed to send OTP email", CodeEmailDelivery)
	default:
		InternalError(w, "Internal server error")
	}
}
