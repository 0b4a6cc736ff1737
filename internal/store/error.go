package store

import "errors"

var (
	ErrSettingsNotFound = errors.New("store settings not found")
	ErrInvalidClock     = errors.New("opening hours must use HH:MM format")
	ErrInvalidWindow    = errors.New("opening time must be before closing time")
	ErrInvalidBuffer    = errors.New("preparation buffer must be positive")
)
