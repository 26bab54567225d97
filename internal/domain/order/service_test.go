package order

import (
	"context"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franvergara/pepestore/internal/domain/product"
)

// --- Mock implementations ---

type mockProductRepo struct {
	byID   map[int64]*product.Product
	getErr error
}

func (m *mockProductRepo) List(_ context.Context) ([]product.Product, error) {
	return nil, nil
}

func (m *mockProductRepo) GetByID(_ context.Context, id int64) (*product.Product, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	p, ok := m.byID[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	return p, nil
}

type mockGateway struct {
	session *PaymentSession
	err     error

	lastAmount   int64
	lastCurrency string
	lastEmail    string
	calls        int
}

func (m *mockGateway) CreateSession(_ context.Context, amount int64, currency, customerEmail string) (*PaymentSession, error) {
	m.calls++
	m.lastAmount = amount
	m.lastCurrency = currency
	m.lastEmail = customerEmail
	if m.err != nil {
		return nil, m.err
	}
	return m.session, nil
}

type mockLedger struct {
	lastOrder *Order
	err       error
}

func (m *mockLedger) Create(_ context.Context, o *Order) error {
	if m.err != nil {
		return m.err
	}
	m.lastOrder = o
	return nil
}

func (m *mockLedger) Get(_ context.Context, _ string) (*Order, error) {
	if m.lastOrder == nil {
		return nil, ErrNotFound
	}
	return m.lastOrder, nil
}

// --- Helpers ---

func newProductRepo(products ...product.Product) *mockProductRepo {
	byID := make(map[int64]*product.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	return &mockProductRepo{byID: byID}
}

func okGateway() *mockGateway {
	return &mockGateway{session: &PaymentSession{ID: "sess_1", Token: "tok_1"}}
}

func lemon() product.Product {
	return product.Product{ID: 1, Name: "Monster Lemon", Price: 1990, Image: "🍋"}
}

// --- Tests ---

func TestCheckout_EmptyEmail(t *testing.T) {
	svc := NewService(newProductRepo(lemon()), okGateway(), &mockLedger{})

	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		Items: []Item{{ProductID: 1, Quantity: 1}},
		Total: 1990,
	})
	require.ErrorIs(t, err, ErrEmptyEmail)
}

func TestCheckout_NegativeTotal(t *testing.T) {
	svc := NewService(newProductRepo(lemon()), okGateway(), &mockLedger{})

	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		Items:         []Item{{ProductID: 1, Quantity: 1}},
		Total:         -1,
		CustomerEmail: gofakeit.Email(),
	})
	require.ErrorIs(t, err, ErrNegativeTotal)
}

func TestCheckout_EmptyItems(t *testing.T) {
	svc := NewService(newProductRepo(lemon()), okGateway(), &mockLedger{})

	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		CustomerEmail: gofakeit.Email(),
	})
	require.ErrorIs(t, err, ErrEmptyItems)
}

func TestCheckout_InvalidQuantity(t *testing.T) {
	svc := NewService(newProductRepo(lemon()), okGateway(), &mockLedger{})

	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		Items:         []Item{{ProductID: 1, Quantity: 0}},
		Total:         0,
		CustomerEmail: gofakeit.Email(),
	})

	var iqErr *InvalidQuantityError
	require.ErrorAs(t, err, &iqErr)
	assert.Equal(t, int64(1), iqErr.ProductID)
}

func TestCheckout_ProductNotFound(t *testing.T) {
	svc := NewService(newProductRepo(), okGateway(), &mockLedger{})

	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		Items:         []Item{{ProductID: 42, Quantity: 1}},
		Total:         1990,
		CustomerEmail: gofakeit.Email(),
	})

	var pnfErr *ProductNotFoundError
	require.ErrorAs(t, err, &pnfErr)
	assert.Equal(t, int64(42), pnfErr.ProductID)
}

func TestCheckout_TotalMismatch(t *testing.T) {
	gw := okGateway()
	svc := NewService(newProductRepo(lemon()), gw, &mockLedger{})

	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		Items:         []Item{{ProductID: 1, Quantity: 2}},
		Total:         1, // real total is 3980
		CustomerEmail: gofakeit.Email(),
	})

	var tmErr *TotalMismatchError
	require.ErrorAs(t, err, &tmErr)
	assert.Equal(t, int64(1), tmErr.Submitted)
	assert.Equal(t, int64(3980), tmErr.Computed)
	assert.Zero(t, gw.calls, "gateway must not be contacted for a rejected total")
}

func TestCheckout_GatewayFailureLeavesNoOrder(t *testing.T) {
	ledger := &mockLedger{}
	gw := &mockGateway{err: errors.New("gateway timeout")}
	svc := NewService(newProductRepo(lemon()), gw, ledger)

	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		Items:         []Item{{ProductID: 1, Quantity: 2}},
		Total:         3980,
		CustomerEmail: gofakeit.Email(),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "create payment session")
	assert.Nil(t, ledger.lastOrder, "a failed checkout must leave the ledger unmodified")
}

func TestCheckout_Success(t *testing.T) {
	ledger := &mockLedger{}
	gw := okGateway()
	svc := NewService(newProductRepo(lemon()), gw, ledger)

	email := "a@b.com"
	result, err := svc.Checkout(context.Background(), CheckoutRequest{
		Items:         []Item{{ProductID: 1, Quantity: 2}},
		Total:         3980,
		CustomerName:  gofakeit.Name(),
		CustomerEmail: email,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.OrderID)
	assert.True(t, strings.HasPrefix(result.OrderID, "ORD-"))
	assert.Equal(t, "tok_1", result.SessionToken)
	assert.Equal(t, "sess_1", result.PaymentSessionID)

	// Gateway saw the recomputed amount, fixed currency, and email.
	assert.Equal(t, int64(3980), gw.lastAmount)
	assert.Equal(t, Currency, gw.lastCurrency)
	assert.Equal(t, email, gw.lastEmail)

	// Ledger holds a pending order matching the request.
	require.NotNil(t, ledger.lastOrder)
	assert.Equal(t, result.OrderID, ledger.lastOrder.ID)
	assert.Equal(t, StatusPending, ledger.lastOrder.Status)
	assert.Equal(t, email, ledger.lastOrder.CustomerEmail)
	assert.Equal(t, int64(3980), ledger.lastOrder.Total)
	assert.Equal(t, "sess_1", ledger.lastOrder.PaymentSessionID)
	assert.False(t, ledger.lastOrder.CreatedAt.IsZero())
}

func TestCheckout_UniqueOrderIDs(t *testing.T) {
	svc := NewService(newProductRepo(lemon()), okGateway(), &mockLedger{})

	req := CheckoutRequest{
		Items:         []Item{{ProductID: 1, Quantity: 1}},
		Total:         1990,
		CustomerEmail: "a@b.com",
	}

	seen := make(map[string]bool)
	for range 100 {
		result, err := svc.Checkout(context.Background(), req)
		require.NoError(t, err)
		require.False(t, seen[result.OrderID], "order ids must not repeat for identical requests")
		seen[result.OrderID] = true
	}
}

func TestCheckout_LedgerError(t *testing.T) {
	svc := NewService(
		newProductRepo(lemon()),
		okGateway(),
		&mockLedger{err: errors.New("write failed")},
	)

	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		Items:         []Item{{ProductID: 1, Quantity: 1}},
		Total:         1990,
		CustomerEmail: gofakeit.Email(),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "create order")
}
