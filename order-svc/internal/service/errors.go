package service

import (
	"errors"

	"restaurant-saas/order-svc/internal/domain"
)

var (
	ErrInvalidToken         = errors.New("invalid table code")
	ErrTokenExpired         = errors.New("table code expired")
	ErrRestaurantNotFound   = errors.New("restaurant not found")
	ErrTableNotFound        = errors.New("table not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrItemNotFound         = errors.New("order item not found")
	ErrInvalidTransition    = errors.New("status transition is not allowed")
	ErrTransitionNotAllowed = errors.New("role may not perform this status change")
	ErrVersionConflict      = domain.ErrVersionConflict
	ErrOrderClosed          = errors.New("order is no longer active")
	ErrForbidden            = errors.New("forbidden")
	ErrMenuItemUnavailable  = errors.New("menu item is not available")
	ErrEmptyOrder           = errors.New("order must contain at least one item")
	ErrSlugTaken            = errors.New("slug is already taken")
	ErrQRGeneration         = errors.New("failed to generate QR code")
	ErrProvisioning         = errors.New("failed to provision staff member")
	ErrCartNotBound         = errors.New("cart is not bound to a table")
)
