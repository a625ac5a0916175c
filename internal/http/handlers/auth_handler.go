package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/cafedelight/menu-backend/internal/auth"
	"github.com/cafedelight/menu-backend/internal/domain"
	"github.com/cafedelight/menu-backend/internal/http/response"
	"github.com/cafedelight/menu-backend/internal/logger"
	"github.com/cafedelight/menu-backend/internal/otp"
)

// AuthHandler serves the OTP login flow: send a code to the configured
// admin, then trade a valid code for a session token.
type AuthHandler struct {
	manager    *otp.Manager
	jwtSecret  string
	sessionTTL time.Duration
}

func NewAuthHandler(manager *otp.Manager, jwtSecret string, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		manager:    manager,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
	}
}

// SendOTP handles POST /api/auth/send-otp.
func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var in domain.SendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	in.Normalize()
	if err := in.Validate(); err != nil {
		response.FromError(w, err)
		return
	}

	if err := h.manager.Request(r.Context(), in.Email); err != nil {
		logger.WarnContext(r.Context(), "otp request failed", "error", err)
		response.FromError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "OTP sent successfully",
		"email":   in.Email,
	})
}

// VerifyOTP handles POST /api/auth/verify-otp.
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var in domain.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	in.Normalize()
	if err := in.Validate(); err != nil {
		response.FromError(w, err)
		return
	}

	if err := h.manager.Verify(r.Context(), in.Email, in.OTP); err != nil {
		logger.WarnContext(r.Context(), "otp verification failed", "error", err)
		response.FromError(w, err)
		return
	}

	token, err := auth.NewAdminToken(in.Email, h.jwtSecret, h.sessionTTL)
	if err != nil {
		logger.ErrorContext(r.Context(), "failed to issue session token", "error", err)
		response.InternalError(w, "Failed to create session")
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]string{
		"token": token,
		"email": in.Email,
	})
}
