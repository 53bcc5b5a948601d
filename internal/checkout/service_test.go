package checkout

import (
	"context"
	"sync"
	"testing"
	"time"

	"atelier-be/internal/cart"
	"atelier-be/internal/catalog"
	"atelier-be/internal/payment"
	"atelier-be/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCart is a mock implementation of the cart service
type MockCart struct {
	mock.Mock
}

func (m *MockCart) Add(ctx context.Context, params cart.AddParams) (*cart.Cart, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCart) Remove(ctx context.Context, sessionID string, productID int, size string) (*cart.Cart, error) {
	args := m.Called(ctx, sessionID, productID, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCart) UpdateQty(ctx context.Context, sessionID string, productID int, size string, delta int) (*cart.Cart, error) {
	args := m.Called(ctx, sessionID, productID, size, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCart) Clear(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockCart) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

// blockingGateway lets a test hold a charge open to exercise the
// re-entrancy guard.
type blockingGateway struct {
	release chan struct{}
	result  *payment.ChargeResult
	err     error
}

func (g *blockingGateway) Charge(ctx context.Context, req payment.ChargeRequest) (*payment.ChargeResult, error) {
	if g.release != nil {
		<-g.release
	}
	if g.err != nil {
		return nil, g.err
	}
	if g.result != nil {
		return g.result, nil
	}
	return &payment.ChargeResult{ChargeID: "ch-1", Reference: req.Reference, Status: "PAID"}, nil
}

func filledCart() *cart.Cart {
	c := &cart.Cart{}
	c.Add(catalog.Product{ID: 1, Price: 1250000, Sizes: []string{"M"}}, "M", 2)
	return c
}

func TestBegin(t *testing.T) {
	ctx := context.Background()

	t.Run("WithItems", func(t *testing.T) {
		carts := new(MockCart)
		carts.On("Get", ctx, "s1").Return(filledCart(), nil)
		svc := NewService(carts, &blockingGateway{}, view.Nop{})

		st, err := svc.Begin(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, StageShipping, st.Stage)
		assert.Equal(t, 1, st.Step)
		assert.Equal(t, int64(2500000), st.Total)
		assert.Equal(t, ShippingStandard, st.ShippingMethod)
		assert.Equal(t, PaymentTransfer, st.PaymentMethod)
		assert.False(t, st.Processing)
	})

	t.Run("EmptyCart", func(t *testing.T) {
		carts := new(MockCart)
		carts.On("Get", ctx, "s1").Return(&cart.Cart{}, nil)
		svc := NewService(carts, &blockingGateway{}, view.Nop{})

		st, err := svc.Begin(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, StageEmpty, st.Stage)
		assert.Equal(t, 0, st.Step)
		assert.True(t, st.Stage.Terminal())
	})

	t.Run("EmitsNavigateIntent", func(t *testing.T) {
		carts := new(MockCart)
		carts.On("Get", ctx, "s1").Return(filledCart(), nil)
		bus := view.NewBus(8)
		svc := NewService(carts, &blockingGateway{}, bus)

		_, err := svc.Begin(ctx, "s1")
		require.NoError(t, err)

		recent := bus.Recent()
		require.Len(t, recent, 2)
		assert.Equal(t, view.IntentCloseCart, recent[0].Kind)
		assert.Equal(t, view.IntentNavigate, recent[1].Kind)
		assert.Equal(t, view.ViewCheckout, recent[1].Target)
	})
}

func TestTransitions(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) Service {
		t.Helper()
		carts := new(MockCart)
		carts.On("Get", ctx, "s1").Return(filledCart(), nil)
		svc := NewService(carts, &blockingGateway{}, view.Nop{})
		_, err := svc.Begin(ctx, "s1")
		require.NoError(t, err)
		return svc
	}

	t.Run("ForwardSequence", func(t *testing.T) {
		svc := setup(t)

		st, err := svc.Continue(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, StageShippingMethod, st.Stage)
		assert.Equal(t, 2, st.Step)

		st, err = svc.Continue(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, StagePayment, st.Stage)
		assert.Equal(t, 3, st.Step)

		// Payment has no Continue; only Submit leaves it
		_, err = svc.Continue(ctx, "s1")
		assert.ErrorIs(t, err, ErrWrongStage)
	})

	t.Run("Back", func(t *testing.T) {
		svc := setup(t)

		_, err := svc.Back(ctx, "s1")
		assert.ErrorIs(t, err, ErrWrongStage) // nothing behind Shipping

		_, err = svc.Continue(ctx, "s1")
		require.NoError(t, err)

		st, err := svc.Back(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, StageShipping, st.Stage)
	})

	t.Run("SetShipping", func(t *testing.T) {
		svc := setup(t)

		st, err := svc.SetShipping(ctx, "s1", ShippingInfo{FirstName: "Ayu", Email: "ayu@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "Ayu", st.Shipping.FirstName)

		_, err = svc.Continue(ctx, "s1")
		require.NoError(t, err)
		_, err = svc.SetShipping(ctx, "s1", ShippingInfo{})
		assert.ErrorIs(t, err, ErrWrongStage)
	})

	t.Run("SetShippingMethod", func(t *testing.T) {
		svc := setup(t)
		_, err := svc.Continue(ctx, "s1")
		require.NoError(t, err)

		st, err := svc.SetShippingMethod(ctx, "s1", ShippingExpress)
		require.NoError(t, err)
		assert.Equal(t, ShippingExpress, st.ShippingMethod)

		_, err = svc.SetShippingMethod(ctx, "s1", "teleport")
		assert.ErrorIs(t, err, ErrUnknownShippingMethod)
	})

	t.Run("SetPaymentMethod", func(t *testing.T) {
		svc := setup(t)
		_, err := svc.Continue(ctx, "s1")
		require.NoError(t, err)
		_, err = svc.Continue(ctx, "s1")
		require.NoError(t, err)

		st, err := svc.SetPaymentMethod(ctx, "s1", PaymentCard)
		require.NoError(t, err)
		assert.Equal(t, PaymentCard, st.PaymentMethod)

		_, err = svc.SetPaymentMethod(ctx, "s1", "barter")
		assert.ErrorIs(t, err, ErrUnknownPaymentMethod)
	})

	t.Run("NoCheckout", func(t *testing.T) {
		carts := new(MockCart)
		svc := NewService(carts, &blockingGateway{}, view.Nop{})

		_, err := svc.Continue(ctx, "nobody")
		assert.ErrorIs(t, err, ErrNoCheckout)
		_, err = svc.Get(ctx, "nobody")
		assert.ErrorIs(t, err, ErrNoCheckout)
	})
}

func advanceToPayment(t *testing.T, svc Service, sessionID string) {
	t.Helper()
	ctx := context.Background()
	_, err := svc.Begin(ctx, sessionID)
	require.NoError(t, err)
	_, err = svc.Continue(ctx, sessionID)
	require.NoError(t, err)
	_, err = svc.Continue(ctx, sessionID)
	require.NoError(t, err)
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		carts := new(MockCart)
		carts.On("Get", ctx, "s1").Return(filledCart(), nil)
		carts.On("Clear", ctx, "s1").Return(nil)
		svc := NewService(carts, &blockingGateway{}, view.Nop{})
		advanceToPayment(t, svc, "s1")

		st, err := svc.Submit(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, StageSuccess, st.Stage)
		assert.True(t, st.Succeeded)
		assert.False(t, st.Processing)
		assert.NotEmpty(t, st.OrderRef)

		carts.AssertCalled(t, "Clear", ctx, "s1")
	})

	t.Run("WrongStage", func(t *testing.T) {
		carts := new(MockCart)
		carts.On("Get", ctx, "s1").Return(filledCart(), nil)
		svc := NewService(carts, &blockingGateway{}, view.Nop{})
		_, err := svc.Begin(ctx, "s1")
		require.NoError(t, err)

		_, err = svc.Submit(ctx, "s1")
		assert.ErrorIs(t, err, ErrWrongStage)
	})

	t.Run("GatewayFailure", func(t *testing.T) {
		carts := new(MockCart)
		carts.On("Get", ctx, "s1").Return(filledCart(), nil)
		gw := &blockingGateway{err: payment.ErrChargeDeclined}
		svc := NewService(carts, gw, view.Nop{})
		advanceToPayment(t, svc, "s1")

		st, err := svc.Submit(ctx, "s1")
		assert.ErrorIs(t, err, ErrPaymentFailed)

		// Failure leaves the flow in Payment, ready for a manual retry
		require.NotNil(t, st)
		assert.Equal(t, StagePayment, st.Stage)
		assert.False(t, st.Processing)
		assert.False(t, st.Succeeded)

		carts.AssertNotCalled(t, "Clear", ctx, "s1")
	})

	t.Run("ReentrancyGuard", func(t *testing.T) {
		carts := new(MockCart)
		carts.On("Get", mock.Anything, "s1").Return(filledCart(), nil)
		carts.On("Clear", mock.Anything, "s1").Return(nil)
		gw := &blockingGateway{release: make(chan struct{})}
		svc := NewService(carts, gw, view.Nop{})
		advanceToPayment(t, svc, "s1")

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Submit(ctx, "s1")
			assert.NoError(t, err)
		}()

		// Wait until the first submit is inside the gateway call
		require.Eventually(t, func() bool {
			st, err := svc.Get(ctx, "s1")
			return err == nil && st.Processing
		}, time.Second, 5*time.Millisecond)

		_, err := svc.Submit(ctx, "s1")
		assert.ErrorIs(t, err, ErrPaymentInProgress)

		// Other mutations are also rejected while the charge is in flight
		_, err = svc.Back(ctx, "s1")
		assert.ErrorIs(t, err, ErrPaymentInProgress)

		close(gw.release)
		wg.Wait()

		st, err := svc.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, StageSuccess, st.Stage)
	})
}

func TestReset(t *testing.T) {
	ctx := context.Background()

	t.Run("DiscardsFlow", func(t *testing.T) {
		carts := new(MockCart)
		carts.On("Get", ctx, "s1").Return(filledCart(), nil)
		bus := view.NewBus(8)
		svc := NewService(carts, &blockingGateway{}, bus)
		_, err := svc.Begin(ctx, "s1")
		require.NoError(t, err)

		require.NoError(t, svc.Reset(ctx, "s1"))

		_, err = svc.Get(ctx, "s1")
		assert.ErrorIs(t, err, ErrNoCheckout)

		recent := bus.Recent()
		require.Len(t, recent, 3)
		assert.Equal(t, view.ViewCatalog, recent[2].Target)
	})

	t.Run("NoCheckout", func(t *testing.T) {
		carts := new(MockCart)
		svc := NewService(carts, &blockingGateway{}, view.Nop{})
		assert.ErrorIs(t, svc.Reset(ctx, "s1"), ErrNoCheckout)
	})
}

func TestBegin_FreshFlowAfterSuccess(t *testing.T) {
	ctx := context.Background()
	carts := new(MockCart)
	carts.On("Get", ctx, "s1").Return(filledCart(), nil).Once()
	carts.On("Clear", ctx, "s1").Return(nil)
	svc := NewService(carts, &blockingGateway{}, view.Nop{})
	advanceToPayment(t, svc, "s1")

	// Submit re-reads the cart; still filled at this point
	carts.On("Get", ctx, "s1").Return(filledCart(), nil).Once()
	_, err := svc.Submit(ctx, "s1")
	require.NoError(t, err)

	// After success the cart is empty; a new Begin starts a fresh machine
	// in the Empty stage rather than resuming the finished one.
	carts.On("Get", ctx, "s1").Return(&cart.Cart{}, nil)
	st, err := svc.Begin(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, StageEmpty, st.Stage)
	assert.False(t, st.Succeeded)
}
