package cart

import (
	"context"
	"errors"

	"floreria-be/internal/catalog"
)

// Service defines the business logic for carts.
type Service interface {
	Get(ctx context.Context, userID uint) (*Cart, error)
	AddItem(ctx context.Context, params AddItemParams) (*CartItem, error)
	UpdateItemQuantity(ctx context.Context, userID uint, itemID int64, quantity int) error
	RemoveItem(ctx context.Context, userID uint, itemID int64) error
	Clear(ctx context.Context, userID uint) error
}

type service struct {
	repo        Repository
	catalogRepo catalog.Repository
}

func NewService(repo Repository, catalogRepo catalog.Repository) Service {
	return &service{repo: repo, catalogRepo: catalogRepo}
}

func (s *service) Get(ctx context.Context, userID uint) (*Cart, error) {
	if userID == 0 {
		return nil, ErrUserNotAuthenticated
	}
	return s.repo.GetByUser(ctx, userID)
}

func (s *service) AddItem(ctx context.Context, params AddItemParams) (*CartItem, error) {
	if params.UserID == 0 {
		return nil, ErrUserNotAuthenticated
	}
	if params.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if !params.Kind.Valid() {
		return nil, ErrInvalidKind
	}

	// Price is always taken from the catalog, never from the client.
	var unitPrice int
	switch params.Kind {
	case catalog.KindBouquet:
		b, err := s.catalogRepo.GetBouquet(ctx, params.ProductID)
		if errors.Is(err, catalog.ErrBouquetNotFound) {
			return nil, ErrProductNotFound
		}
		if err != nil {
			return nil, err
		}
		if !b.Active {
			return nil, ErrProductInactive
		}
		unitPrice = b.Price

	case catalog.KindFlower:
		f, err := s.catalogRepo.GetFlower(ctx, params.ProductID)
		if errors.Is(err, catalog.ErrFlowerNotFound) {
			return nil, ErrProductNotFound
		}
		if err != nil {
			return nil, err
		}
		if !f.Active {
			return nil, ErrProductInactive
		}
		if f.Stock < params.Quantity {
			return nil, ErrInsufficientStock
		}
		unitPrice = f.Price
	}

	cartID, err := s.repo.EnsureCart(ctx, params.UserID)
	if err != nil {
		return nil, err
	}

	return s.repo.AddItem(ctx, cartID, CartItem{
		Kind:          params.Kind,
		ProductID:     params.ProductID,
		Quantity:      params.Quantity,
		UnitPrice:     unitPrice,
		Customization: params.Customization,
	})
}

func (s *service) UpdateItemQuantity(ctx context.Context, userID uint, itemID int64, quantity int) error {
	if userID == 0 {
		return ErrUserNotAuthenticated
	}

	// Ownership check before touching the row.
	if _, err := s.repo.GetItem(ctx, userID, itemID); err != nil {
		return err
	}

	if quantity <= 0 {
		// Zero or negative quantity removes the line.
		return s.repo.RemoveItem(ctx, userID, itemID)
	}

	return s.repo.UpdateItemQuantity(ctx, itemID, quantity)
}

func (s *service) RemoveItem(ctx context.Context, userID uint, itemID int64) error {
	if userID == 0 {
		return ErrUserNotAuthenticated
	}
	return s.repo.RemoveItem(ctx, userID, itemID)
}

// Clear is idempotent: clearing an empty or nonexistent cart succeeds.
func (s *service) Clear(ctx context.Context, userID uint) error {
	if userID == 0 {
		return ErrUserNotAuthenticated
	}
	return s.repo.Clear(ctx, userID)
}
