package services

import "errors"

// Domain errors; controllers map these onto the HTTP taxonomy.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrInvalidPrice     = errors.New("price must be non-negative")
	ErrShopClosed       = errors.New("shop closed")
	ErrForbidden        = errors.New("forbidden")
	ErrSelfRemoval      = errors.New("cannot remove yourself")
	ErrScopeMismatch    = errors.New("ids do not match target scope")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrBadTransition    = errors.New("illegal status transition")
	ErrInvalidPayload   = errors.New("invalid payload")
)
