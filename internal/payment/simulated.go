package payment

import (
	"context"
	"fmt"
	"time"

	"atelier-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Simulated is a gateway that waits Delay and then reports a result. It
// stands in for a real processor during development and demos.
type Simulated struct {
	Delay time.Duration
	// Fail forces every charge to be declined when set.
	Fail bool
}

func NewSimulated(delay time.Duration) *Simulated {
	return &Simulated{Delay: delay}
}

func (g *Simulated) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	select {
	case <-time.After(g.Delay):
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrGateway, ctx.Err())
	}

	if g.Fail {
		return nil, ErrChargeDeclined
	}

	result := &ChargeResult{
		ChargeID:  uuid.NewString(),
		Reference: req.Reference,
		Status:    "PAID",
	}

	logger.FromCtx(ctx).Info("simulated charge accepted",
		zap.String("charge_id", result.ChargeID),
		zap.String("reference", req.Reference),
		zap.Int64("amount", req.Amount),
	)

	return result, nil
}
