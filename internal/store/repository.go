package store

import (
	"context"
	"database/sql"

	"floreria-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, params UpdateParams) (*Settings, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Get(ctx context.Context) (*Settings, error) {
	var s Settings
	err := r.db.QueryRowContext(ctx, `
		SELECT is_open, temporarily_closed, opens_at, closes_at, prep_minutes, updated_at
		FROM store_settings
		LIMIT 1
	`).Scan(
		&s.IsOpen,
		&s.TemporarilyClosed,
		&s.OpensAt,
		&s.ClosesAt,
		&s.PrepMinutes,
		&s.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) Update(ctx context.Context, params UpdateParams) (*Settings, error) {
	log := logger.FromCtx(ctx).With(zap.String("method", "store.Update"))

	var s Settings
	err := r.db.QueryRowContext(ctx, `
		UPDATE store_settings SET
			is_open            = COALESCE($1, is_open),
			temporarily_closed = COALESCE($2, temporarily_closed),
			opens_at           = COALESCE($3, opens_at),
			closes_at          = COALESCE($4, closes_at),
			prep_minutes       = COALESCE($5, prep_minutes),
			updated_at         = NOW()
		RETURNING is_open, temporarily_closed, opens_at, closes_at, prep_minutes, updated_at
	`,
		params.IsOpen,
		params.TemporarilyClosed,
		params.OpensAt,
		params.ClosesAt,
		params.PrepMinutes,
	).Scan(
		&s.IsOpen,
		&s.TemporarilyClosed,
		&s.OpensAt,
		&s.ClosesAt,
		&s.PrepMinutes,
		&s.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		log.Error("failed to update store settings", zap.Error(err))
		return nil, err
	}

	log.Info("store settings updated")
	return &s, nil
}
