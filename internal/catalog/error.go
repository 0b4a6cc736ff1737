package catalog

import "errors"

var (
	ErrBouquetNotFound = errors.New("bouquet not found")
	ErrFlowerNotFound  = errors.New("flower not found")
	ErrInvalidPrice    = errors.New("price must not be negative")
	ErrEmptyName       = errors.New("name is required")
)
