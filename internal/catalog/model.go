package catalog

import "time"

// Bouquet is a composed arrangement sold as a single product.
type Bouquet struct {
	ID          int64
	Name        string
	Description *string
	Price       int
	ImageURL    *string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Flower is an individual stem sold by unit.
type Flower struct {
	ID        int64
	Name      string
	Color     *string
	Price     int
	Stock     int
	ImageURL  *string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ListOptions struct {
	Search     *string
	OnlyActive bool
	Limit      int32
	Page       int32
}

type NewBouquetInput struct {
	Name        string
	Description *string
	Price       int
	ImageURL    *string
}

type UpdateBouquetInput struct {
	Name        *string
	Description *string
	Price       *int
	ImageURL    *string
	Active      *bool
}

type NewFlowerInput struct {
	Name     string
	Color    *string
	Price    int
	Stock    int
	ImageURL *string
}

type UpdateFlowerInput struct {
	Name     *string
	Color    *string
	Price    *int
	Stock    *int
	ImageURL *string
	Active   *bool
}
