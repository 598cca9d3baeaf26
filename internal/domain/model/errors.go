package model

import "errors"

// Stable error kinds surfaced to the boundary layer. Anything internal
// (storage vs. publish failure) is wrapped into ErrOrderCreationFailed
// with the cause logged, not exposed.
var (
	ErrInvalidItems        = errors.New("one or more invalid item ids")
	ErrItemsUnavailable    = errors.New("items are not available")
	ErrOrderCreationFailed = errors.New("failed to create order")
	ErrOrderNotFound       = errors.New("order not found")
	ErrItemsLoadFailed     = errors.New("failed to load order items")
)
