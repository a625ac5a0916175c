package auth_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cafedelight/menu-backend/internal/auth"
)

const secret = "test-secret"

func TestNewAdminToken_RoundTrip(t *testing.T) {
	token, err := auth.NewAdminToken("admin@cafemenu.local", secret, time.Hour)
	if err != nil {
		t.Fatalf("NewAdminToken failed: %v", err)
	}

	claims, err := auth.Parse(token, secret)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if claims.Email != "admin@cafemenu.local" {
		t.Fatalf("Expected admin email in claims, got %q", claims.Email)
	}
}

func TestParse_TamperedToken_Invalid(t *testing.T) {
	token, _ := auth.NewAdminToken("admin@cafemenu.local", secret, time.Hour)

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	parts[2] = string(sig)
	tampered := strings.Join(parts, ".")

	if _, err := auth.Parse(tampered, secret); !errors.Is(err, auth.ErrTokenInvalid) {
		t.Fatalf("Expected ErrTokenInvalid for tampered token, got %v", err)
	}
}

func TestParse_WrongSecret_Invalid(t *testing.T) {
	token, _ := auth.NewAdminToken("admin@cafemenu.local", secret, time.Hour)

	if _, err := auth.Parse(token, "other-secret"); !errors.Is(err, auth.ErrTokenInvalid) {
		t.Fatalf("Expected ErrTokenInvalid for wrong secret, got %v", err)
	}
}

func TestParse_Garbage_Invalid(t *testing.T) {
	if _, err := auth.Parse("not-a-jwt", secret); !errors.Is(err, auth.ErrTokenInvalid) {
		t.Fatalf("Expected ErrTokenInvalid for garbage, got %v", err)
	}
}

func TestParse_ExpiredToken_Expired(t *testing.T) {
	token, _ := auth.NewAdminToken("admin@cafemenu.local", secret, -time.Minute)

	if _, err := auth.Parse(token, secret); !errors.Is(err, auth.ErrTokenExpired) {
		t.Fatalf("Expected ErrTokenExpired, got %v", err)
	}
}
