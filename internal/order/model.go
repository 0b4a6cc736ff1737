package order

import (
	"encoding/json"
	"time"

	"floreria-be/internal/catalog"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order is the aggregate root. It is created atomically with its lines and is
// never observable half-written.
type Order struct {
	ID            int64
	UserID        uint
	ContactName   string
	ContactPhone  string
	RecipientName string
	PlacedAt      time.Time // server clock, store-local
	PickupAt      time.Time
	Total         int
	Status        Status
	Lines         []OrderLine
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderLine references exactly one product: BouquetID or FlowerID, never both.
type OrderLine struct {
	ID            int64
	OrderID       int64
	BouquetID     *int64
	FlowerID      *int64
	ProductName   string
	Quantity      int
	UnitPrice     int
	Subtotal      int
	Customization json.RawMessage
}

// CreateOrderRequest is the checkout payload. ProductID is the raw client
// identifier, possibly prefixed (e.g. "bouquet-12"); the numeric id is
// extracted at persistence time.
type CreateOrderRequest struct {
	ContactName   string
	ContactPhone  string
	RecipientName string
	PickupDate    string // "2006-01-02"
	PickupTime    string // "15:04"
	Total         int
	Items         []CreateOrderItem
}

type CreateOrderItem struct {
	ProductID     string
	Kind          catalog.Kind
	Quantity      int
	UnitPrice     int
	Customization json.RawMessage
}

type ListOptions struct {
	Status *Status
	Limit  int32
	Page   int32
}
