package handler

import (
	"encoding/json"
	"strconv"
	"time"

	"floreria-be/internal/cart"
	"floreria-be/internal/catalog"
	"floreria-be/internal/order"
	"floreria-be/internal/store"
	"floreria-be/internal/user"
)

type userView struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func toUserView(u user.User) userView {
	return userView{ID: u.ID, Email: u.Email, Name: u.Name, Role: string(u.Role)}
}

type bouquetView struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       int     `json:"price"`
	ImageURL    *string `json:"image_url,omitempty"`
	Active      bool    `json:"active"`
}

func toBouquetView(b *catalog.Bouquet) bouquetView {
	return bouquetView{
		ID: b.ID, Name: b.Name, Description: b.Description,
		Price: b.Price, ImageURL: b.ImageURL, Active: b.Active,
	}
}

type flowerView struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Color    *string `json:"color,omitempty"`
	Price    int     `json:"price"`
	Stock    int     `json:"stock"`
	ImageURL *string `json:"image_url,omitempty"`
	Active   bool    `json:"active"`
}

func toFlowerView(f *catalog.Flower) flowerView {
	return flowerView{
		ID: f.ID, Name: f.Name, Color: f.Color,
		Price: f.Price, Stock: f.Stock, ImageURL: f.ImageURL, Active: f.Active,
	}
}

type cartItemView struct {
	ID            int64           `json:"id"`
	Kind          string          `json:"kind"`
	ProductID     int64           `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Quantity      int             `json:"quantity"`
	UnitPrice     int             `json:"unit_price"`
	Subtotal      int             `json:"subtotal"`
	Customization json.RawMessage `json:"customization,omitempty"`
}

type cartView struct {
	Items []cartItemView `json:"items"`
	Total int            `json:"total"`
}

func toCartView(c *cart.Cart) cartView {
	view := cartView{Items: []cartItemView{}}
	for i := range c.Items {
		item := &c.Items[i]
		view.Items = append(view.Items, cartItemView{
			ID:            item.ID,
			Kind:          string(item.Kind),
			ProductID:     item.ProductID,
			ProductName:   item.ProductName,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			Subtotal:      item.Subtotal(),
			Customization: item.Customization,
		})
		view.Total += item.Subtotal()
	}
	return view
}

type orderLineView struct {
	ID            int64           `json:"id"`
	BouquetID     *int64          `json:"bouquet_id,omitempty"`
	FlowerID      *int64          `json:"flower_id,omitempty"`
	ProductName   string          `json:"product_name,omitempty"`
	Quantity      int             `json:"quantity"`
	UnitPrice     int             `json:"unit_price"`
	Subtotal      int             `json:"subtotal"`
	Customization json.RawMessage `json:"customization,omitempty"`
}

// orderView serializes the id as a decimal string: the value may exceed what
// a JSON number survives in a browser.
type orderView struct {
	ID            string          `json:"id"`
	ContactName   string          `json:"contact_name"`
	ContactPhone  string          `json:"contact_phone"`
	RecipientName string          `json:"recipient_name"`
	PlacedAt      time.Time       `json:"placed_at"`
	PickupAt      time.Time       `json:"pickup_at"`
	Total         int             `json:"total"`
	Status        string          `json:"status"`
	Lines         []orderLineView `json:"lines,omitempty"`
}

func toOrderView(o *order.Order) orderView {
	view := orderView{
		ID:            strconv.FormatInt(o.ID, 10),
		ContactName:   o.ContactName,
		ContactPhone:  o.ContactPhone,
		RecipientName: o.RecipientName,
		PlacedAt:      o.PlacedAt,
		PickupAt:      o.PickupAt,
		Total:         o.Total,
		Status:        string(o.Status),
	}
	for i := range o.Lines {
		line := &o.Lines[i]
		view.Lines = append(view.Lines, orderLineView{
			ID:            line.ID,
			BouquetID:     line.BouquetID,
			FlowerID:      line.FlowerID,
			ProductName:   line.ProductName,
			Quantity:      line.Quantity,
			UnitPrice:     line.UnitPrice,
			Subtotal:      line.Subtotal,
			Customization: line.Customization,
		})
	}
	return view
}

type settingsView struct {
	IsOpen            bool    `json:"is_open"`
	TemporarilyClosed bool    `json:"temporarily_closed"`
	OpensAt           *string `json:"opens_at,omitempty"`
	ClosesAt          *string `json:"closes_at,omitempty"`
	PrepMinutes       int     `json:"prep_minutes"`
}

func toSettingsView(s *store.Settings) settingsView {
	return settingsView{
		IsOpen:            s.IsOpen,
		TemporarilyClosed: s.TemporarilyClosed,
		OpensAt:           s.OpensAt,
		ClosesAt:          s.ClosesAt,
		PrepMinutes:       s.EffectivePrepMinutes(),
	}
}
