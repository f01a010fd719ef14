package domain

import "errors"

// Storage-level outcomes the services translate into their own errors.
var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicate       = errors.New("duplicate key")
	ErrVersionConflict = errors.New("order was modified concurrently")
)

// Subscription is an open realtime feed for one restaurant.
type Subscription interface {
	Events() <-chan ChangeEvent
	Close() error
}
