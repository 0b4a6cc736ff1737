package handler

import (
	validatorv10 "github.com/go-playground/validator/v10"

	"floreria-be/internal/cart"
	"floreria-be/internal/catalog"
	"floreria-be/internal/order"
	"floreria-be/internal/realtime"
	"floreria-be/internal/store"
	"floreria-be/internal/user"
	"floreria-be/internal/validation"
)

// Handler holds the wired services behind the HTTP surface.
type Handler struct {
	users    user.Service
	catalog  catalog.Service
	carts    cart.Service
	orders   order.Service
	settings store.Service
	hub      *realtime.Hub
	validate *validatorv10.Validate
}

func New(
	users user.Service,
	cat catalog.Service,
	carts cart.Service,
	orders order.Service,
	settings store.Service,
	hub *realtime.Hub,
) *Handler {
	return &Handler{
		users:    users,
		catalog:  cat,
		carts:    carts,
		orders:   orders,
		settings: settings,
		hub:      hub,
		validate: validation.New(),
	}
}
