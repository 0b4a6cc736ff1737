package validation

import "encoding/json"

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type AddCartItemRequest struct {
	Kind          string          `json:"kind" validate:"required,oneof=bouquet flower"`
	ProductID     int64           `json:"product_id" validate:"required,gt=0"`
	Quantity      int             `json:"quantity" validate:"required,min=1"`
	Customization json.RawMessage `json:"customization,omitempty"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// CheckoutItem carries the raw client product id; the numeric id is resolved
// during order creation.
type CheckoutItem struct {
	ProductID     string          `json:"product_id" validate:"required"`
	Kind          string          `json:"kind" validate:"required,oneof=bouquet flower"`
	Quantity      int             `json:"quantity" validate:"required,min=1"`
	UnitPrice     int             `json:"unit_price" validate:"gte=0"`
	Customization json.RawMessage `json:"customization,omitempty"`
}

// CheckoutRequest is the payload for POST /orders.
type CheckoutRequest struct {
	ContactName   string         `json:"contact_name" validate:"required"`
	ContactPhone  string         `json:"contact_phone" validate:"required"`
	RecipientName string         `json:"recipient_name" validate:"required"`
	PickupDate    string         `json:"pickup_date" validate:"required"`
	PickupTime    string         `json:"pickup_time" validate:"required"`
	Total         int            `json:"total" validate:"gte=0"`
	Items         []CheckoutItem `json:"items" validate:"required,min=1,dive"`
}

type UpdateStoreSettingsRequest struct {
	IsOpen            *bool   `json:"is_open,omitempty"`
	TemporarilyClosed *bool   `json:"temporarily_closed,omitempty"`
	OpensAt           *string `json:"opens_at,omitempty" validate:"omitempty,hhmm"`
	ClosesAt          *string `json:"closes_at,omitempty" validate:"omitempty,hhmm"`
	PrepMinutes       *int    `json:"prep_minutes,omitempty" validate:"omitempty,gt=0"`
}

type NewBouquetRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
	Price       int     `json:"price" validate:"gte=0"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type UpdateBouquetRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *int    `json:"price,omitempty" validate:"omitempty,gte=0"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
	Active      *bool   `json:"active,omitempty"`
}

type NewFlowerRequest struct {
	Name     string  `json:"name" validate:"required"`
	Color    *string `json:"color,omitempty"`
	Price    int     `json:"price" validate:"gte=0"`
	Stock    int     `json:"stock" validate:"gte=0"`
	ImageURL *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type UpdateFlowerRequest struct {
	Name     *string `json:"name,omitempty"`
	Color    *string `json:"color,omitempty"`
	Price    *int    `json:"price,omitempty" validate:"omitempty,gte=0"`
	Stock    *int    `json:"stock,omitempty" validate:"omitempty,gte=0"`
	ImageURL *string `json:"image_url,omitempty" validate:"omitempty,url"`
	Active   *bool   `json:"active,omitempty"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending preparing ready delivered cancelled"`
}
