package payment

import (
	"context"
	"errors"
)

var (
	ErrGateway        = errors.New("payment gateway error")
	ErrChargeDeclined = errors.New("charge declined")
	ErrInvalidAmount  = errors.New("charge amount must be positive")
)

type ChargeRequest struct {
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
	Method    string `json:"method"`
}

type ChargeResult struct {
	ChargeID  string `json:"charge_id"`
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// Gateway is the external payment processor. Charge is invoked once per
// payment submission and blocks until the processor answers.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}
