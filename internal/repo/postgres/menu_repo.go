package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cafedelight/menu-backend/internal/domain"
)

// MenuRepo is the typed store adapter for the menu_items collection.
// Methods that reference an item by id return nil (or false) when the id is
// unknown; callers decide how that maps to their error taxonomy.
type MenuRepo interface {
	Insert(ctx context.Context, item *domain.MenuItem) error
	BulkInsert(ctx context.Context, items []domain.MenuItem) error
	GetByID(ctx context.Context, id string) (*domain.MenuItem, error)
	ListAll(ctx context.Context) ([]domain.MenuItem, error)
	ListAvailable(ctx context.Context) ([]domain.MenuItem, error)
	ListSpecials(ctx context.Context) ([]domain.MenuItem, error)
	Categories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id string, patch *domain.UpdateMenuItemRequest) (*domain.MenuItem, error)
	Delete(ctx context.Context, id string) (bool, error)
	ToggleSpecial(ctx context.Context, id string) (*domain.MenuItem, error)
	ToggleAvailable(ctx context.Context, id string) (*domain.MenuItem, error)
	Count(ctx context.Context) (int64, error)
}

const menuColumns = `id, category, name, price, description, is_special, available, image_url, created_at`

type MenuRepoImpl struct{ pool *pgxpool.Pool }

func NewMenuRepo(pool *pgxpool.Pool) *MenuRepoImpl { return &MenuRepoImpl{pool: pool} }

func (r *MenuRepoImpl) Insert(ctx context.Context, item *domain.MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.pool.Exec(ctx, `
INSERT INTO menu_items (`+menuColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		item.ID, item.Category, item.Name, item.Price, item.Description,
		item.IsSpecial, item.Available, item.ImageURL, item.CreatedAt,
	)
	return err
}

func (r *MenuRepoImpl) BulkInsert(ctx context.Context, items []domain.MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	batch := &pgx.Batch{}
	for i := range items {
		item := &items[i]
		batch.Queue(`
INSERT INTO menu_items (`+menuColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			item.ID, item.Category, item.Name, item.Price, item.Description,
			item.IsSpecial, item.Available, item.ImageURL, item.CreatedAt,
		)
	}
	return r.pool.SendBatch(ctx, batch).Close()
}

func (r *MenuRepoImpl) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	row := r.pool.QueryRow(ctx, `SELECT `+menuColumns+` FROM menu_items WHERE id = $1`, id)
	return scanItem(row)
}

func (r *MenuRepoImpl) ListAll(ctx context.Context) ([]domain.MenuItem, error) {
	return r.list(ctx, `SELECT `+menuColumns+` FROM menu_items ORDER BY category, name`)
}

func (r *MenuRepoImpl) ListAvailable(ctx context.Context) ([]domain.MenuItem, error) {
	return r.list(ctx, `SELECT `+menuColumns+` FROM menu_items WHERE available ORDER BY category, name`)
}

func (r *MenuRepoImpl) ListSpecials(ctx context.Context) ([]domain.MenuItem, error) {
	return r.list(ctx, `SELECT `+menuColumns+` FROM menu_items WHERE is_special AND available ORDER BY category, name`)
}

func (r *MenuRepoImpl) list(ctx context.Context, query string) ([]domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(
			&item.ID, &item.Category, &item.Name, &item.Price, &item.Description,
			&item.IsSpecial, &item.Available, &item.ImageURL, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *MenuRepoImpl) Categories(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, `SELECT DISTINCT category FROM menu_items ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *MenuRepoImpl) Update(ctx context.Context, id string, patch *domain.UpdateMenuItemRequest) (*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	// Nil patch fields arrive as NULL and keep the stored value.
	row := r.pool.QueryRow(ctx, `
UPDATE menu_items SET
	category    = COALESCE($2, category),
	name        = COALESCE($3, name),
	price       = COALESCE($4, price),
	description = COALESCE($5, description),
	is_special  = COALESCE($6, is_special),
	available   = COALESCE($7, available),
	image_url   = COALESCE($8, image_url)
WHERE id = $1
RETURNING `+menuColumns,
		id, patch.Category, patch.Name, patch.Price, patch.Description,
		patch.IsSpecial, patch.Available, patch.ImageURL,
	)
	return scanItem(row)
}

func (r *MenuRepoImpl) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *MenuRepoImpl) ToggleSpecial(ctx context.Context, id string) (*domain.MenuItem, error) {
	return r.toggle(ctx, id, "is_special")
}

func (r *MenuRepoImpl) ToggleAvailable(ctx context.Context, id string) (*domain.MenuItem, error) {
	return r.toggle(ctx, id, "available")
}

func (r *MenuRepoImpl) toggle(ctx context.Context, id, column string) (*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	// column is one of two compile-time constants, never user input.
	row := r.pool.QueryRow(ctx, `
UPDATE menu_items SET `+column+` = NOT `+column+`
WHERE id = $1
RETURNING `+menuColumns, id)
	return scanItem(row)
}

func (r *MenuRepoImpl) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var count int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM menu_items`).Scan(&count)
	return count, err
}

func scanItem(row pgx.Row) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := row.Scan(
		&item.ID, &item.Category, &item.Name, &item.Price, &item.Description,
		&item.IsSpecial, &item.Available, &item.ImageURL, &item.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}
