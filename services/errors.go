package services

import "errors"

// Service-level failures the controllers translate to HTTP codes. Anything
// not listed here is treated as an internal storage failure.
var (
	ErrEmptyOrder         = errors.New("order must contain at least one item")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrUnknownItem        = errors.New("menu item not found")
	ErrNotFound           = errors.New("not found")
	ErrIllegalTransition  = errors.New("cannot change status")
	ErrTableBusy          = errors.New("table already has an active order")
	ErrInvalidStatus      = errors.New("unknown status")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
)
