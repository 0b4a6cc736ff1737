package cart

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floreria-be/internal/catalog"
)

func TestEnsureCart_Existing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM carts WHERE user_id = $1 LIMIT 1`)).
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(41)))

	id, err := repo.EnsureCart(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(41), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureCart_CreatesWhenMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM carts WHERE user_id = $1 LIMIT 1`)).
		WithArgs(uint(7)).
		WillReturnError(sql.ErrNoRows)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO carts (user_id) VALUES ($1) RETURNING id`)).
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	id, err := repo.EnsureCart(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUser_NoCartReadsEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, created_at FROM carts WHERE user_id = $1 LIMIT 1`)).
		WithArgs(uint(9)).
		WillReturnError(sql.ErrNoRows)

	c, err := repo.GetByUser(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, uint(9), c.UserID)
	assert.Empty(t, c.Items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUser_WithItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, created_at FROM carts WHERE user_id = $1 LIMIT 1`)).
		WithArgs(uint(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "created_at"}).
			AddRow(int64(11), uint(3), now))

	itemRows := sqlmock.NewRows([]string{
		"id", "cart_id", "kind", "product_id", "name",
		"quantity", "unit_price", "customization", "created_at", "updated_at",
	}).
		AddRow(int64(1), int64(11), "bouquet", int64(5), "Ramo Primavera", 2, 15990, []byte(`{"ribbon":"rojo"}`), now, now).
		AddRow(int64(2), int64(11), "flower", int64(8), "Rosa", 12, 1490, nil, now, now)

	mock.ExpectQuery("SELECT").WithArgs(int64(11)).WillReturnRows(itemRows)

	c, err := repo.GetByUser(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, c.Items, 2)

	assert.Equal(t, catalog.KindBouquet, c.Items[0].Kind)
	assert.Equal(t, "Ramo Primavera", c.Items[0].ProductName)
	assert.JSONEq(t, `{"ribbon":"rojo"}`, string(c.Items[0].Customization))
	assert.Equal(t, 31980, c.Items[0].Subtotal())

	assert.Equal(t, catalog.KindFlower, c.Items[1].Kind)
	assert.Nil(t, c.Items[1].Customization)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetItem_NotOwned(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT").
		WithArgs(int64(77), uint(3)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetItem(context.Background(), 3, 77)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddItem_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("INSERT INTO cart_items").
		WithArgs(int64(11), "flower", int64(8), 3, 1490, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "kind", "product_id", "quantity", "unit_price"}).
			AddRow(int64(2), int64(11), "flower", int64(8), 15, 1490))

	item, err := repo.AddItem(context.Background(), 11, CartItem{
		Kind:      catalog.KindFlower,
		ProductID: 8,
		Quantity:  3,
		UnitPrice: 1490,
	})
	require.NoError(t, err)
	// Quantity comes back accumulated by the upsert.
	assert.Equal(t, 15, item.Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateItemQuantity_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec("UPDATE cart_items").
		WithArgs(4, int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateItemQuantity(context.Background(), 99, 4)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveItem_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec("DELETE FROM cart_items").
		WithArgs(int64(2), uint(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.RemoveItem(context.Background(), 3, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClear_NoCartIsNoop(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM carts WHERE user_id = $1 LIMIT 1`)).
		WithArgs(uint(5)).
		WillReturnError(sql.ErrNoRows)

	assert.NoError(t, repo.Clear(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClear_DeletesLines(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM carts WHERE user_id = $1 LIMIT 1`)).
		WithArgs(uint(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(13)))

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM cart_items WHERE cart_id = $1`)).
		WithArgs(int64(13)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	assert.NoError(t, repo.Clear(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClear_PropagatesQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	boom := errors.New("connection reset")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM carts WHERE user_id = $1 LIMIT 1`)).
		WithArgs(uint(5)).
		WillReturnError(boom)

	assert.ErrorIs(t, repo.Clear(context.Background(), 5), boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
