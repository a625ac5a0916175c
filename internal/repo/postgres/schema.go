package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS menu_items (
	id          TEXT PRIMARY KEY,
	category    TEXT NOT NULL,
	name        TEXT NOT NULL,
	price       DOUBLE PRECISION NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	is_special  BOOLEAN NOT NULL DEFAULT FALSE,
	available   BOOLEAN NOT NULL DEFAULT TRUE,
	image_url   TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS menu_items_category_idx ON menu_items (category);

CREATE TABLE IF NOT EXISTS otp_challenges (
	email      TEXT PRIMARY KEY,
	code       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	expires_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS rate_limits (
	key          TEXT PRIMARY KEY,
	count        INT NOT NULL,
	window_start TIMESTAMPTZ NOT NULL,
	expires_at   TIMESTAMPTZ NOT NULL
);
`

// EnsureSchema creates the tables the service owns. Safe to run on every
// startup.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, schema)
	return err
}
