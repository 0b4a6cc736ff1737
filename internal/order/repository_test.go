package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floreria-be/internal/catalog"
)

func openSettingsRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"is_open", "temporarily_closed", "opens_at", "closes_at", "prep_minutes", "updated_at",
	}).AddRow(true, false, "09:00", "19:00", 120, time.Now())
}

func validRequest() CreateOrderRequest {
	return CreateOrderRequest{
		ContactName:   "Camila Rojas",
		ContactPhone:  "+56912345678",
		RecipientName: "Abuela Rosa",
		PickupDate:    "2025-06-01",
		PickupTime:    "13:00",
		Total:         34470,
		Items: []CreateOrderItem{
			{ProductID: "bouquet-5", Kind: catalog.KindBouquet, Quantity: 2, UnitPrice: 15990,
				Customization: json.RawMessage(`{"ribbon":"rojo"}`)},
			{ProductID: "8", Kind: catalog.KindFlower, Quantity: 1, UnitPrice: 2490},
		},
	}
}

func TestCreate_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, testLoc)
	req := validRequest()
	pickup := time.Date(2025, 6, 1, 13, 0, 0, 0, testLoc)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM store_settings").WillReturnRows(openSettingsRows())

	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(uint(3), req.ContactName, req.ContactPhone, req.RecipientName, now, pickup, req.Total, StatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(101), now, now))

	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(int64(101), int64(5), nil, 2, 15990, 31980, []byte(`{"ribbon":"rojo"}`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(int64(101), nil, int64(8), 1, 2490, 2490, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(2)))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM carts WHERE user_id = $1 LIMIT 1`)).
		WithArgs(uint(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectExec("DELETE FROM cart_items").
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	mock.ExpectCommit()

	o, err := repo.Create(context.Background(), 3, req, now)
	require.NoError(t, err)
	assert.Equal(t, int64(101), o.ID)
	assert.Equal(t, StatusPending, o.Status)
	require.Len(t, o.Lines, 2)

	// The tagged product reference lands in exactly one column per line.
	require.NotNil(t, o.Lines[0].BouquetID)
	assert.Nil(t, o.Lines[0].FlowerID)
	assert.Equal(t, int64(5), *o.Lines[0].BouquetID)
	require.NotNil(t, o.Lines[1].FlowerID)
	assert.Nil(t, o.Lines[1].BouquetID)

	assert.Equal(t, req.Total, o.Lines[0].Subtotal+o.Lines[1].Subtotal)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_NoCartIsStillSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, testLoc)
	req := validRequest()
	req.Items = req.Items[:1]
	req.Total = 31980

	mock.ExpectBegin()
	mock.ExpectQuery("FROM store_settings").WillReturnRows(openSettingsRows())
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(102), now, now))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM carts WHERE user_id = $1 LIMIT 1`)).
		WithArgs(uint(3)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectCommit()

	o, err := repo.Create(context.Background(), 3, req, now)
	require.NoError(t, err)
	assert.Equal(t, int64(102), o.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_StoreClosedRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, testLoc)

	closed := sqlmock.NewRows([]string{
		"is_open", "temporarily_closed", "opens_at", "closes_at", "prep_minutes", "updated_at",
	}).AddRow(false, false, "09:00", "19:00", 120, time.Now())

	mock.ExpectBegin()
	mock.ExpectQuery("FROM store_settings").WillReturnRows(closed)
	mock.ExpectRollback()

	_, err = repo.Create(context.Background(), 3, validRequest(), now)
	require.Error(t, err)
	assert.Equal(t, KindStoreClosed, KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_MissingConfigRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, testLoc)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM store_settings").WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err = repo.Create(context.Background(), 3, validRequest(), now)
	assert.Equal(t, KindConfigUnavailable, KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_InsufficientLeadTimeRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, testLoc)
	req := validRequest()
	req.PickupTime = "10:30"

	mock.ExpectBegin()
	mock.ExpectQuery("FROM store_settings").WillReturnRows(openSettingsRows())
	mock.ExpectRollback()

	_, err = repo.Create(context.Background(), 3, req, now)
	require.Error(t, err)
	assert.Equal(t, KindInsufficientLeadTime, KindOf(err))
	assert.Contains(t, err.Error(), "120")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A malformed product id partway through the lines must leave nothing behind.
func TestCreate_BadThirdItemRollsBackEverything(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, testLoc)
	req := validRequest()
	req.Items = append(req.Items, CreateOrderItem{
		ProductID: "no-digits-here", Kind: catalog.KindFlower, Quantity: 1, UnitPrice: 990,
	})
	req.Total += 990

	mock.ExpectBegin()
	mock.ExpectQuery("FROM store_settings").WillReturnRows(openSettingsRows())
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(103), now, now))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(2)))
	mock.ExpectRollback()

	_, err = repo.Create(context.Background(), 3, req, now)
	require.Error(t, err)
	assert.Equal(t, KindInvalidProductID, KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("FROM orders").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.Get(context.Background(), 404)
	assert.Equal(t, KindOrderNotFound, KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	mock.ExpectQuery("UPDATE orders").
		WithArgs(StatusReady, int64(101)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "contact_name", "contact_phone", "recipient_name",
			"placed_at", "pickup_at", "total", "status", "created_at", "updated_at",
		}).AddRow(int64(101), uint(3), "Camila Rojas", "+56912345678", "Abuela Rosa",
			now, now, 34470, "ready", now, now))

	o, err := repo.UpdateStatus(context.Background(), 101, StatusReady)
	require.NoError(t, err)
	assert.Equal(t, StatusReady, o.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_FiltersByStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	pending := StatusPending

	mock.ExpectQuery("FROM orders").
		WithArgs(pending, int32(20), int32(0)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "contact_name", "contact_phone", "recipient_name",
			"placed_at", "pickup_at", "total", "status", "created_at", "updated_at",
		}))

	out, err := repo.List(context.Background(), ListOptions{Status: &pending})
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}
