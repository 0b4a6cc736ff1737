package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"floreria-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	ListBouquets(ctx context.Context, opts ListOptions) ([]*Bouquet, error)
	GetBouquet(ctx context.Context, id int64) (*Bouquet, error)
	CreateBouquet(ctx context.Context, input NewBouquetInput) (*Bouquet, error)
	UpdateBouquet(ctx context.Context, id int64, input UpdateBouquetInput) (*Bouquet, error)

	ListFlowers(ctx context.Context, opts ListOptions) ([]*Flower, error)
	GetFlower(ctx context.Context, id int64) (*Flower, error)
	CreateFlower(ctx context.Context, input NewFlowerInput) (*Flower, error)
	UpdateFlower(ctx context.Context, id int64, input UpdateFlowerInput) (*Flower, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// clampPage normalizes pagination the same way across both listings.
func clampPage(opts ListOptions) (limit, offset int32) {
	limit = 20
	page := int32(1)

	if opts.Limit > 0 {
		limit = opts.Limit
	}
	if limit > 100 {
		limit = 100
	}
	if opts.Page > 0 {
		page = opts.Page
	}

	return limit, (page - 1) * limit
}

func (r *repository) ListBouquets(ctx context.Context, opts ListOptions) ([]*Bouquet, error) {
	log := logger.FromCtx(ctx).With(zap.String("method", "ListBouquets"))

	query := `
		SELECT id, name, description, price, image_url, active, created_at, updated_at
		FROM bouquets
		WHERE 1=1
	`

	args := []any{}
	argIndex := 1

	if opts.OnlyActive {
		query += " AND active = TRUE"
	}
	if opts.Search != nil && *opts.Search != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", argIndex)
		args = append(args, "%"+*opts.Search+"%")
		argIndex++
	}

	limit, offset := clampPage(opts)
	query += fmt.Sprintf(" ORDER BY name ASC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query bouquets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []*Bouquet
	for rows.Next() {
		var b Bouquet
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.Price, &b.ImageURL, &b.Active, &b.CreatedAt, &b.UpdatedAt); err != nil {
			log.Error("failed to scan bouquet row", zap.Error(err))
			return nil, err
		}
		out = append(out, &b)
	}

	return out, rows.Err()
}

func (r *repository) GetBouquet(ctx context.Context, id int64) (*Bouquet, error) {
	var b Bouquet
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, price, image_url, active, created_at, updated_at
		FROM bouquets WHERE id = $1
	`, id).Scan(&b.ID, &b.Name, &b.Description, &b.Price, &b.ImageURL, &b.Active, &b.CreatedAt, &b.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrBouquetNotFound
	}
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) CreateBouquet(ctx context.Context, input NewBouquetInput) (*Bouquet, error) {
	var b Bouquet
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO bouquets (name, description, price, image_url, active)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING id, name, description, price, image_url, active, created_at, updated_at
	`, input.Name, input.Description, input.Price, input.ImageURL).
		Scan(&b.ID, &b.Name, &b.Description, &b.Price, &b.ImageURL, &b.Active, &b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) UpdateBouquet(ctx context.Context, id int64, input UpdateBouquetInput) (*Bouquet, error) {
	var b Bouquet
	err := r.db.QueryRowContext(ctx, `
		UPDATE bouquets SET
			name        = COALESCE($1, name),
			description = COALESCE($2, description),
			price       = COALESCE($3, price),
			image_url   = COALESCE($4, image_url),
			active      = COALESCE($5, active),
			updated_at  = NOW()
		WHERE id = $6
		RETURNING id, name, description, price, image_url, active, created_at, updated_at
	`, input.Name, input.Description, input.Price, input.ImageURL, input.Active, id).
		Scan(&b.ID, &b.Name, &b.Description, &b.Price, &b.ImageURL, &b.Active, &b.CreatedAt, &b.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrBouquetNotFound
	}
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) ListFlowers(ctx context.Context, opts ListOptions) ([]*Flower, error) {
	log := logger.FromCtx(ctx).With(zap.String("method", "ListFlowers"))

	query := `
		SELECT id, name, color, price, stock, image_url, active, created_at, updated_at
		FROM flowers
		WHERE 1=1
	`

	args := []any{}
	argIndex := 1

	if opts.OnlyActive {
		query += " AND active = TRUE"
	}
	if opts.Search != nil && *opts.Search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR color ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+*opts.Search+"%")
		argIndex++
	}

	limit, offset := clampPage(opts)
	query += fmt.Sprintf(" ORDER BY name ASC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query flowers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []*Flower
	for rows.Next() {
		var f Flower
		if err := rows.Scan(&f.ID, &f.Name, &f.Color, &f.Price, &f.Stock, &f.ImageURL, &f.Active, &f.CreatedAt, &f.UpdatedAt); err != nil {
			log.Error("failed to scan flower row", zap.Error(err))
			return nil, err
		}
		out = append(out, &f)
	}

	return out, rows.Err()
}

func (r *repository) GetFlower(ctx context.Context, id int64) (*Flower, error) {
	var f Flower
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, color, price, stock, image_url, active, created_at, updated_at
		FROM flowers WHERE id = $1
	`, id).Scan(&f.ID, &f.Name, &f.Color, &f.Price, &f.Stock, &f.ImageURL, &f.Active, &f.CreatedAt, &f.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrFlowerNotFound
	}
	if err != nil {
		return nil, err
	}

	return &f, nil
}

func (r *repository) CreateFlower(ctx context.Context, input NewFlowerInput) (*Flower, error) {
	var f Flower
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO flowers (name, color, price, stock, image_url, active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING id, name, color, price, stock, image_url, active, created_at, updated_at
	`, input.Name, input.Color, input.Price, input.Stock, input.ImageURL).
		Scan(&f.ID, &f.Name, &f.Color, &f.Price, &f.Stock, &f.ImageURL, &f.Active, &f.CreatedAt, &f.UpdatedAt)

	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repository) UpdateFlower(ctx context.Context, id int64, input UpdateFlowerInput) (*Flower, error) {
	var f Flower
	err := r.db.QueryRowContext(ctx, `
		UPDATE flowers SET
			name       = COALESCE($1, name),
			color      = COALESCE($2, color),
			price      = COALESCE($3, price),
			stock      = COALESCE($4, stock),
			image_url  = COALESCE($5, image_url),
			active     = COALESCE($6, active),
			updated_at = NOW()
		WHERE id = $7
		RETURNING id, name, color, price, stock, image_url, active, created_at, updated_at
	`, input.Name, input.Color, input.Price, input.Stock, input.ImageURL, input.Active, id).
		Scan(&f.ID, &f.Name, &f.Color, &f.Price, &f.Stock, &f.ImageURL, &f.Active, &f.CreatedAt, &f.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrFlowerNotFound
	}
	if err != nil {
		return nil, err
	}

	return &f, nil
}
