package cart

import (
	"encoding/json"
	"time"

	"floreria-be/internal/catalog"
)

type Cart struct {
	ID        int64
	UserID    uint
	Items     []CartItem
	CreatedAt time.Time
}

type CartItem struct {
	ID            int64
	CartID        int64
	Kind          catalog.Kind
	ProductID     int64
	ProductName   string
	Quantity      int
	UnitPrice     int
	Customization json.RawMessage // opaque payload, e.g. ribbon text or wrap color
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Subtotal of a single line.
func (i *CartItem) Subtotal() int {
	return i.UnitPrice * i.Quantity
}

type AddItemParams struct {
	UserID        uint
	Kind          catalog.Kind
	ProductID     int64
	Quantity      int
	Customization json.RawMessage
}
