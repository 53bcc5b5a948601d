package cart

import "errors"

var (
	// -- Validation & Input --
	ErrSizeRequired    = errors.New("size is required")
	ErrSizeNotOffered  = errors.New("size not offered for this product")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrSessionRequired = errors.New("session id is required")

	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")
)
