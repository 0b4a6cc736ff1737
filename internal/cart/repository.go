package cart

import (
	"context"
	"database/sql"
	"encoding/json"

	"floreria-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetByUser(ctx context.Context, userID uint) (*Cart, error)
	GetItem(ctx context.Context, userID uint, itemID int64) (*CartItem, error)
	AddItem(ctx context.Context, cartID int64, item CartItem) (*CartItem, error)
	EnsureCart(ctx context.Context, userID uint) (int64, error)
	UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error
	RemoveItem(ctx context.Context, userID uint, itemID int64) error
	Clear(ctx context.Context, userID uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// EnsureCart returns the id of the user's cart, creating one when absent.
func (r *repository) EnsureCart(ctx context.Context, userID uint) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM carts WHERE user_id = $1 LIMIT 1`, userID,
	).Scan(&id)

	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	err = r.db.QueryRowContext(ctx,
		`INSERT INTO carts (user_id) VALUES ($1) RETURNING id`, userID,
	).Scan(&id)

	return id, err
}

func (r *repository) GetByUser(ctx context.Context, userID uint) (*Cart, error) {
	var c Cart
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, created_at FROM carts WHERE user_id = $1 LIMIT 1`, userID,
	).Scan(&c.ID, &c.UserID, &c.CreatedAt)

	if err == sql.ErrNoRows {
		// No cart yet reads as an empty cart.
		return &Cart{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			ci.id, ci.cart_id, ci.kind, ci.product_id,
			COALESCE(b.name, f.name, ''),
			ci.quantity, ci.unit_price, ci.customization,
			ci.created_at, ci.updated_at
		FROM cart_items ci
		LEFT JOIN bouquets b ON ci.kind = 'bouquet' AND b.id = ci.product_id
		LEFT JOIN flowers f  ON ci.kind = 'flower'  AND f.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.created_at ASC
	`, c.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item CartItem
		var custom []byte
		if err := rows.Scan(
			&item.ID, &item.CartID, &item.Kind, &item.ProductID,
			&item.ProductName,
			&item.Quantity, &item.UnitPrice, &custom,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if custom != nil {
			item.Customization = json.RawMessage(custom)
		}
		c.Items = append(c.Items, item)
	}

	return &c, rows.Err()
}

func (r *repository) GetItem(ctx context.Context, userID uint, itemID int64) (*CartItem, error) {
	var item CartItem
	var custom []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT ci.id, ci.cart_id, ci.kind, ci.product_id, ci.quantity, ci.unit_price, ci.customization
		FROM cart_items ci
		JOIN carts c ON c.id = ci.cart_id
		WHERE ci.id = $1 AND c.user_id = $2
	`, itemID, userID).Scan(
		&item.ID, &item.CartID, &item.Kind, &item.ProductID,
		&item.Quantity, &item.UnitPrice, &custom,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}
	if custom != nil {
		item.Customization = json.RawMessage(custom)
	}

	return &item, nil
}

func (r *repository) AddItem(ctx context.Context, cartID int64, item CartItem) (*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "cart.AddItem"),
		zap.Int64("cart_id", cartID),
		zap.String("kind", string(item.Kind)),
		zap.Int64("product_id", item.ProductID),
	)

	var custom any
	if item.Customization != nil {
		custom = []byte(item.Customization)
	}

	var out CartItem
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO cart_items (cart_id, kind, product_id, quantity, unit_price, customization)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (cart_id, kind, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = NOW()
		RETURNING id, cart_id, kind, product_id, quantity, unit_price
	`, cartID, item.Kind, item.ProductID, item.Quantity, item.UnitPrice, custom).
		Scan(&out.ID, &out.CartID, &out.Kind, &out.ProductID, &out.Quantity, &out.UnitPrice)

	if err != nil {
		log.Error("failed to upsert cart item", zap.Error(err))
		return nil, err
	}
	out.Customization = item.Customization

	return &out, nil
}

func (r *repository) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE cart_items SET quantity = $1, updated_at = NOW() WHERE id = $2`,
		quantity, itemID,
	)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (r *repository) RemoveItem(ctx context.Context, userID uint, itemID int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items ci
		USING carts c
		WHERE ci.id = $1 AND ci.cart_id = c.id AND c.user_id = $2
	`, itemID, userID)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// Clear deletes every line of the first cart found for the user. A missing
// cart is a no-op, not an error.
func (r *repository) Clear(ctx context.Context, userID uint) error {
	var cartID int64
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM carts WHERE user_id = $1 LIMIT 1`, userID,
	).Scan(&cartID)

	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE cart_id = $1`, cartID,
	)
	return err
}
