package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cafedelight/menu-backend/internal/domain"
)

// OTPRepo is the typed store adapter for pending OTP challenges. The email
// is the key: Upsert atomically replaces any prior challenge, so at most one
// is live per email even under concurrent requests.
type OTPRepo interface {
	Upsert(ctx context.Context, challenge *domain.OTPChallenge) error
	Find(ctx context.Context, email string) (*domain.OTPChallenge, error)
	Delete(ctx context.Context, email string) error
}

type OTPRepoImpl struct{ pool *pgxpool.Pool }

func NewOTPRepo(pool *pgxpool.Pool) *OTPRepoImpl { return &OTPRepoImpl{pool: pool} }

func (r *OTPRepoImpl) Upsert(ctx context.Context, challenge *domain.OTPChallenge) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.pool.Exec(ctx, `
INSERT INTO otp_challenges (email, code, created_at, expires_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email) DO UPDATE SET
	code       = EXCLUDED.code,
	created_at = EXCLUDED.created_at,
	expires_at = EXCLUDED.expires_at`,
		challenge.Email, challenge.Code, challenge.CreatedAt, challenge.ExpiresAt,
	)
	return err
}

func (r *OTPRepoImpl) Find(ctx context.Context, email string) (*domain.OTPChallenge, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var c domain.OTPChallenge
	err := r.pool.QueryRow(ctx, `
SELECT email, code, created_at, expires_at
FROM otp_challenges
WHERE email = $1`, email,
	).Scan(&c.Email, &c.Code, &c.CreatedAt, &c.ExpiresAt)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *OTPRepoImpl) Delete(ctx context.Context, email string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.pool.Exec(ctx, `DELETE FROM otp_challenges WHERE email = $1`, email)
	return err
}
