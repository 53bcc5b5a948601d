package checkout

import (
	"context"
	"fmt"
	"sync"

	"atelier-be/internal/cart"
	"atelier-be/internal/logger"
	"atelier-be/internal/payment"
	"atelier-be/internal/view"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service drives the checkout flow: shipping details, shipping method,
// payment. One flow per session; a fresh one is created on Begin.
type Service interface {
	Begin(ctx context.Context, sessionID string) (*State, error)
	Get(ctx context.Context, sessionID string) (*State, error)
	Continue(ctx context.Context, sessionID string) (*State, error)
	Back(ctx context.Context, sessionID string) (*State, error)
	SetShipping(ctx context.Context, sessionID string, info ShippingInfo) (*State, error)
	SetShippingMethod(ctx context.Context, sessionID, method string) (*State, error)
	SetPaymentMethod(ctx context.Context, sessionID, method string) (*State, error)
	Submit(ctx context.Context, sessionID string) (*State, error)
	Reset(ctx context.Context, sessionID string) error
}

type service struct {
	mu       sync.Mutex
	machines map[string]*machine

	carts    cart.Service
	gateway  payment.Gateway
	notifier view.Notifier
}

func NewService(carts cart.Service, gateway payment.Gateway, notifier view.Notifier) Service {
	return &service{
		machines: make(map[string]*machine),
		carts:    carts,
		gateway:  gateway,
		notifier: notifier,
	}
}

// Begin starts a checkout for the session's cart. An empty cart routes the
// flow straight to the Empty terminal, bypassing the numbered steps. A flow
// whose payment is still in flight is returned as is rather than replaced.
func (s *service) Begin(ctx context.Context, sessionID string) (*State, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	c, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.machines[sessionID]; ok && existing.processing {
		return existing.snapshot(), nil
	}

	stage := StageShipping
	if c.IsEmpty() {
		stage = StageEmpty
	}

	m := newMachine(stage, c.Total())
	s.machines[sessionID] = m

	logger.FromCtx(ctx).Info("checkout started",
		zap.String("stage", string(stage)),
		zap.Int64("total", m.total),
	)

	// Heading into checkout dismisses the cart panel.
	s.notifier.Publish(view.Intent{Kind: view.IntentCloseCart})
	s.notifier.Publish(view.Intent{Kind: view.IntentNavigate, Target: view.ViewCheckout})

	return m.snapshot(), nil
}

func (s *service) Get(_ context.Context, sessionID string) (*State, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.machines[sessionID]
	if !ok {
		return nil, ErrNoCheckout
	}
	return m.snapshot(), nil
}

// Continue advances Shipping to ShippingMethod and ShippingMethod to
// Payment. Any other stage rejects the transition.
func (s *service) Continue(_ context.Context, sessionID string) (*State, error) {
	return s.transition(sessionID, func(m *machine) error {
		switch m.stage {
		case StageShipping:
			m.stage = StageShippingMethod
		case StageShippingMethod:
			m.stage = StagePayment
		default:
			return ErrWrongStage
		}
		return nil
	})
}

// Back retreats one numbered step. Shipping has nothing behind it.
func (s *service) Back(_ context.Context, sessionID string) (*State, error) {
	return s.transition(sessionID, func(m *machine) error {
		switch m.stage {
		case StageShippingMethod:
			m.stage = StageShipping
		case StagePayment:
			m.stage = StageShippingMethod
		default:
			return ErrWrongStage
		}
		return nil
	})
}

func (s *service) SetShipping(_ context.Context, sessionID string, info ShippingInfo) (*State, error) {
	return s.transition(sessionID, func(m *machine) error {
		if m.stage != StageShipping {
			return ErrWrongStage
		}
		m.shipping = info
		return nil
	})
}

func (s *service) SetShippingMethod(_ context.Context, sessionID, method string) (*State, error) {
	if method != ShippingStandard && method != ShippingExpress {
		return nil, ErrUnknownShippingMethod
	}
	return s.transition(sessionID, func(m *machine) error {
		if m.stage != StageShippingMethod {
			return ErrWrongStage
		}
		m.shippingMethod = method
		return nil
	})
}

func (s *service) SetPaymentMethod(_ context.Context, sessionID, method string) (*State, error) {
	if method != PaymentTransfer && method != PaymentCard && method != PaymentEwallet {
		return nil, ErrUnknownPaymentMethod
	}
	return s.transition(sessionID, func(m *machine) error {
		if m.stage != StagePayment {
			return ErrWrongStage
		}
		m.paymentMethod = method
		return nil
	})
}

// Submit charges the cart total through the gateway. The processing flag is
// a re-entrancy guard: a second submit while a charge is in flight is
// rejected. Success clears the cart and lands in the Success stage; failure
// leaves the flow in Payment so the shopper may retry. The engine never
// retries by itself.
func (s *service) Submit(ctx context.Context, sessionID string) (*State, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SubmitPayment"),
	)

	// The charge amount is the cart's live total at submission time.
	c, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	m, ok := s.machines[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNoCheckout
	}
	if m.processing {
		s.mu.Unlock()
		return nil, ErrPaymentInProgress
	}
	if m.stage != StagePayment {
		s.mu.Unlock()
		return nil, ErrWrongStage
	}

	m.processing = true
	m.total = c.Total()
	req := payment.ChargeRequest{
		Reference: uuid.NewString(),
		Amount:    m.total,
		Method:    m.paymentMethod,
	}
	s.mu.Unlock()

	log.Info("submitting payment",
		zap.String("reference", req.Reference),
		zap.Int64("amount", req.Amount),
	)

	result, chargeErr := s.gateway.Charge(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	m.processing = false

	if chargeErr != nil {
		// Stay in Payment; the shopper decides whether to retry.
		log.Warn("payment failed", zap.Error(chargeErr))
		return m.snapshot(), fmt.Errorf("%w: %v", ErrPaymentFailed, chargeErr)
	}

	m.succeeded = true
	m.stage = StageSuccess
	m.orderRef = result.Reference

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		log.Error("failed to clear cart after payment", zap.Error(err))
	}

	log.Info("payment succeeded",
		zap.String("order_ref", m.orderRef),
		zap.String("charge_id", result.ChargeID),
	)

	return m.snapshot(), nil
}

// Reset discards the flow, as when the shopper continues shopping after
// success or abandons the checkout.
func (s *service) Reset(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrSessionRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.machines[sessionID]
	if !ok {
		return ErrNoCheckout
	}
	if m.processing {
		return ErrPaymentInProgress
	}
	delete(s.machines, sessionID)

	s.notifier.Publish(view.Intent{Kind: view.IntentNavigate, Target: view.ViewCatalog})

	logger.FromCtx(ctx).Debug("checkout reset", zap.String("session", sessionID))
	return nil
}

func (s *service) transition(sessionID string, fn func(*machine) error) (*State, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.machines[sessionID]
	if !ok {
		return nil, ErrNoCheckout
	}
	if m.processing {
		return nil, ErrPaymentInProgress
	}
	if err := fn(m); err != nil {
		return nil, err
	}
	return m.snapshot(), nil
}
