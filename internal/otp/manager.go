package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/cafedelight/menu-backend/internal/domain"
	"github.com/cafedelight/menu-backend/internal/events"
	"github.com/cafedelight/menu-backend/internal/logger"
	"github.com/cafedelight/menu-backend/internal/mailer"
	"github.com/cafedelight/menu-backend/internal/repo/postgres"
)

// Manager creates, validates and consumes one-time login codes for the
// configured administrator.
type Manager struct {
	repo       postgres.OTPRepo
	mailer     mailer.Service
	publisher  events.Publisher
	adminEmail string
	ttl        time.Duration
}

func NewManager(repo postgres.OTPRepo, m mailer.Service, pub events.Publisher, adminEmail string, ttl time.Duration) *Manager {
	return &Manager{
		repo:       repo,
		mailer:     m,
		publisher:  pub,
		adminEmail: adminEmail,
		ttl:        ttl,
	}
}

// Request issues a fresh challenge for email and mails the code. Any prior
// challenge for the email is replaced. If the mail dispatch fails the
// challenge stays persisted; the next request simply overwrites it.
func (m *Manager) Request(ctx context.Context, email string) error {
	if email != m.adminEmail {
		return fmt.Errorf("%w: email not authorized", domain.ErrForbidden)
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate otp: %w", err)
	}

	now := time.Now().UTC()
	challenge := &domain.OTPChallenge{
		Email:     email,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	if err := m.repo.Upsert(ctx, challenge); err != nil {
		return fmt.Errorf("failed to store otp challenge: %w", err)
	}

	if err := m.mailer.SendOTP(email, code); err != nil {
		logger.ErrorContext(ctx, "failed to send otp email", "error", err)
		return fmt.Errorf("%w: %v", domain.ErrEmailDelivery, err)
	}

	if err := m.publisher.Publish(ctx, events.AuthOTPRequested, map[string]any{"email": email}); err != nil {
		logger.WarnContext(ctx, "failed to publish otp event", "error", err)
	}

	return nil
}

// Verify checks a submitted code against the stored challenge. The
// challenge is consumed on success and on expiry; a wrong code leaves it in
// place so the admin can retry within the window.
func (m *Manager) Verify(ctx context.Context, email, code string) error {
	if email != m.adminEmail {
		return fmt.Errorf("%w: email not authorized", domain.ErrForbidden)
	}

	challenge, err := m.repo.Find(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up otp challenge: %w", err)
	}
	if challenge == nil {
		return fmt.Errorf("%w: otp not found or expired", domain.ErrNotFound)
	}

	if challenge.Expired(time.Now().UTC()) {
		if err := m.repo.Delete(ctx, email); err != nil {
			logger.WarnContext(ctx, "failed to delete expired otp", "error", err)
		}
		return fmt.Errorf("%w: request a new code", domain.ErrOTPExpired)
	}

	if challenge.Code != code {
		return fmt.Errorf("%w: code does not match", domain.ErrInvalidCode)
	}

	if err := m.repo.Delete(ctx, email); err != nil {
		return fmt.Errorf("failed to consume otp challenge: %w", err)
	}

	if err := m.publisher.Publish(ctx, events.AuthAdminLoggedIn, map[string]any{"email": email}); err != nil {
		logger.WarnContext(ctx, "failed to publish login event", "error", err)
	}

	return nil
}

// generateCode draws a uniform 6-digit code, 100000–999999.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
