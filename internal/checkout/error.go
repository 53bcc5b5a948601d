package checkout

import "errors"

var (
	// -- Validation & Input --
	ErrSessionRequired       = errors.New("session id is required")
	ErrUnknownShippingMethod = errors.New("unknown shipping method")
	ErrUnknownPaymentMethod  = errors.New("unknown payment method")

	// -- Flow State --
	ErrNoCheckout        = errors.New("no checkout in progress")
	ErrWrongStage        = errors.New("operation not allowed in current stage")
	ErrPaymentInProgress = errors.New("payment already in progress")

	// -- External Systems --
	ErrPaymentFailed = errors.New("payment failed")
)
