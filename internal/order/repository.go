package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"floreria-be/internal/catalog"
	"floreria-be/internal/logger"
	"floreria-be/internal/store"

	"go.uber.org/zap"
)

type Repository interface {
	// Create validates the request against the store schedule and persists
	// the order, its lines and the cart clearing in one transaction. now must
	// be store-local; it is both the validation clock and the placed-at
	// timestamp.
	Create(ctx context.Context, userID uint, req CreateOrderRequest, now time.Time) (*Order, error)
	ListForUser(ctx context.Context, userID uint) ([]*Order, error)
	List(ctx context.Context, opts ListOptions) ([]*Order, error)
	Get(ctx context.Context, id int64) (*Order, error)
	UpdateStatus(ctx context.Context, id int64, status Status) (*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, userID uint, req CreateOrderRequest, now time.Time) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "order.Create"),
		zap.Uint("user_id", userID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	settings, err := loadSettings(ctx, tx)
	if err != nil {
		return nil, err
	}

	pickup, err := validateSchedule(settings, now, req.PickupDate, req.PickupTime)
	if err != nil {
		return nil, err
	}

	o := Order{
		UserID:        userID,
		ContactName:   req.ContactName,
		ContactPhone:  req.ContactPhone,
		RecipientName: req.RecipientName,
		PlacedAt:      now,
		PickupAt:      pickup,
		Total:         req.Total,
		Status:        StatusPending,
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, contact_name, contact_phone, recipient_name, placed_at, pickup_at, total, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, userID, req.ContactName, req.ContactPhone, req.RecipientName, now, pickup, req.Total, StatusPending).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	for _, item := range req.Items {
		line, err := insertLine(ctx, tx, o.ID, item)
		if err != nil {
			return nil, err
		}
		o.Lines = append(o.Lines, *line)
	}

	if err := clearCart(ctx, tx, userID); err != nil {
		log.Error("failed to clear cart", zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order", zap.Error(err))
		return nil, err
	}

	log.Info("order created",
		zap.Int64("order_id", o.ID),
		zap.Int("lines", len(o.Lines)),
		zap.Int("total", o.Total),
	)

	return &o, nil
}

// loadSettings reads the schedule inside the order transaction so every rule
// sees the same snapshot.
func loadSettings(ctx context.Context, tx *sql.Tx) (*store.Settings, error) {
	var s store.Settings
	err := tx.QueryRowContext(ctx, `
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
		return nil, E(KindConfigUnavailable, "store schedule is not configured")
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func insertLine(ctx context.Context, tx *sql.Tx, orderID int64, item CreateOrderItem) (*OrderLine, error) {
	ref, err := ParseProductRef(item.Kind, item.ProductID)
	if err != nil {
		return nil, err
	}

	line := OrderLine{
		OrderID:   orderID,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		Subtotal:  item.UnitPrice * item.Quantity,
	}
	switch ref.Kind {
	case catalog.KindBouquet:
		line.BouquetID = &ref.ID
	case catalog.KindFlower:
		line.FlowerID = &ref.ID
	}

	var custom any
	if item.Customization != nil {
		custom = []byte(item.Customization)
		line.Customization = item.Customization
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO order_items (order_id, bouquet_id, flower_id, quantity, unit_price, subtotal, customization)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, orderID, line.BouquetID, line.FlowerID, line.Quantity, line.UnitPrice, line.Subtotal, custom).
		Scan(&line.ID)
	if err != nil {
		return nil, err
	}

	return &line, nil
}

// clearCart deletes the lines of the first cart found for the user. No cart
// is not an error.
func clearCart(ctx context.Context, tx *sql.Tx, userID uint) error {
	var cartID int64
	err := tx.QueryRowContext(ctx,
		`SELECT id FROM carts WHERE user_id = $1 LIMIT 1`, userID,
	).Scan(&cartID)

	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM cart_items WHERE cart_id = $1`, cartID,
	)
	return err
}

const orderColumns = `id, user_id, contact_name, contact_phone, recipient_name, placed_at, pickup_at, total, status, created_at, updated_at`

func scanOrder(row interface{ Scan(...any) error }) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.ContactName, &o.ContactPhone, &o.RecipientName,
		&o.PlacedAt, &o.PickupAt, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) ListForUser(ctx context.Context, userID uint) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}

	return out, rows.Err()
}

func (r *repository) List(ctx context.Context, opts ListOptions) ([]*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1`
	args := []any{}
	argIndex := 1

	if opts.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, *opts.Status)
		argIndex++
	}

	limit := int32(20)
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
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}

	return out, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id,
	))
	if err == sql.ErrNoRows {
		return nil, E(KindOrderNotFound, "order %d not found", id)
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			oi.id, oi.order_id, oi.bouquet_id, oi.flower_id,
			COALESCE(b.name, f.name, ''),
			oi.quantity, oi.unit_price, oi.subtotal, oi.customization
		FROM order_items oi
		LEFT JOIN bouquets b ON b.id = oi.bouquet_id
		LEFT JOIN flowers f  ON f.id = oi.flower_id
		WHERE oi.order_id = $1
		ORDER BY oi.id ASC
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderLine
		var custom []byte
		if err := rows.Scan(
			&line.ID, &line.OrderID, &line.BouquetID, &line.FlowerID,
			&line.ProductName,
			&line.Quantity, &line.UnitPrice, &line.Subtotal, &custom,
		); err != nil {
			return nil, err
		}
		if custom != nil {
			line.Customization = json.RawMessage(custom)
		}
		o.Lines = append(o.Lines, line)
	}

	return o, rows.Err()
}

func (r *repository) UpdateStatus(ctx context.Context, id int64, status Status) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "order.UpdateStatus"),
		zap.Int64("order_id", id),
	)

	o, err := scanOrder(r.db.QueryRowContext(ctx, `
		UPDATE orders SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+orderColumns, status, id,
	))
	if err == sql.ErrNoRows {
		return nil, E(KindOrderNotFound, "order %d not found", id)
	}
	if err != nil {
		log.Error("failed to update order status", zap.Error(err))
		return nil, err
	}

	log.Info("order status updated", zap.String("status", string(status)))
	return o, nil
}
