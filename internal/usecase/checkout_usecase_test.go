package usecase

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/api"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/apitest"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/pricing"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/store"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/validator"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func validShipping() validator.ShippingForm {
	return validator.ShippingForm{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "555-0100",
		Address:   "1 Analytical St",
		City:      "London",
		State:     "LDN",
		ZipCode:   "12345",
	}
}

func validCard() validator.PaymentForm {
	return validator.PaymentForm{
		Method:     model.PaymentCard,
		CardNumber: "4242424242424242",
		ExpiryDate: "12/30",
		CVV:        "123",
		CardName:   "Ada Lovelace",
	}
}

func newCheckout(e *env, orders OrderAPI, results *[]string) *CheckoutUsecase {
	return NewCheckoutUsecase(e.store, orders, validator.NewCheckoutValidator(), 0, nil,
		WithClock(func() time.Time { return fixedNow }),
		WithIdempotencyKeyFunc(func() string { return "key-1" }),
		WithCheckoutResultHook(func(r string) { *results = append(*results, r) }),
	)
}

func TestCheckoutUsecase_Success(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	ctx := context.Background()

	_, err := e.cart.AddProduct(ctx, 1, AddOptions{})
	require.NoError(t, err)

	var results []string
	uc := newCheckout(e, e.client.Orders, &results)

	order, err := uc.Checkout(ctx, CheckoutInput{
		Shipping:  validShipping(),
		Payment:   validCard(),
		PromoCode: "save10",
	})
	require.NoError(t, err)

	assert.Equal(t, "ORD-"+strconv.FormatInt(fixedNow.UnixMilli(), 10), order.OrderNumber)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, "SAVE10", order.PromoCode)
	assert.Equal(t, model.ShippingStandard, order.ShippingMethod)
	assert.True(t, order.Subtotal.Equal(decimal.RequireFromString("99.99")))
	assert.True(t, order.Discount.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, order.Shipping.IsZero())
	assert.True(t, order.Tax.Equal(decimal.RequireFromString("7.20")))
	assert.True(t, order.Total.Equal(decimal.RequireFromString("97.19")))

	st := e.store.State()
	assert.Equal(t, 0, st.Cart.Len())
	require.Len(t, st.Orders, 1)
	assert.Equal(t, order.ID, st.Orders[0].ID)
	assert.False(t, st.Loading)
	assert.Equal(t, []string{CheckoutSuccess}, results)

	req := e.srv.LastRequest()
	assert.Equal(t, "key-1", req.Header.Get("Idempotency-Key"))
	assert.Len(t, e.srv.Orders(), 1)
}

func TestCheckoutUsecase_EmptyCart(t *testing.T) {
	e := newEnv(t)
	m := new(OrderAPIMock)
	var results []string

	_, err := newCheckout(e, m, &results).Checkout(context.Background(), CheckoutInput{
		Shipping: validShipping(),
		Payment:  validCard(),
	})
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, results)
	m.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckoutUsecase_InvalidForm(t *testing.T) {
	e := newEnv(t)
	e.store.Dispatch(store.AddToCart{Line: model.NewCartLine(apiProduct(3), 1)})
	m := new(OrderAPIMock)
	var results []string
	changes := 0
	unsub := e.store.Subscribe(func(prev, next *store.State) { changes++ })
	defer unsub()

	shipping := validShipping()
	shipping.FirstName = "  "
	shipping.ZipCode = ""
	payment := validCard()
	payment.CardName = ""

	_, err := newCheckout(e, m, &results).Checkout(context.Background(), CheckoutInput{
		Shipping: shipping,
		Payment:  payment,
	})
	fe, ok := validator.AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, "First name is required", fe["firstName"])
	assert.Equal(t, "ZIP code is required", fe["zipCode"])
	assert.Equal(t, "Cardholder name is required", fe["cardName"])

	// 入力エラーはストアに流さない
	assert.Equal(t, 0, changes)
	assert.Equal(t, "", e.store.State().Error)
	assert.Equal(t, []string{CheckoutInvalid}, results)
	m.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckoutUsecase_InvalidPromo(t *testing.T) {
	e := newEnv(t)
	e.store.Dispatch(store.AddToCart{Line: model.NewCartLine(apiProduct(3), 1)})
	m := new(OrderAPIMock)
	var results []string

	_, err := newCheckout(e, m, &results).Checkout(context.Background(), CheckoutInput{
		Shipping:  validShipping(),
		Payment:   validator.PaymentForm{Method: model.PaymentPaypal},
		PromoCode: "HALFOFF",
	})
	assert.ErrorIs(t, err, pricing.ErrInvalidPromo)
	assert.Equal(t, []string{CheckoutInvalid}, results)
	assert.Equal(t, 1, e.store.State().Cart.Len())
}

func TestCheckoutUsecase_FailureKeepsCart(t *testing.T) {
	e := newEnv(t)
	e.store.Dispatch(store.AddToCart{Line: model.NewCartLine(apiProduct(3), 2)})
	cart := e.store.State().Cart

	m := new(OrderAPIMock)
	m.On("Create", mock.Anything, mock.MatchedBy(func(in model.OrderInput) bool {
		// 12.00×2 + 15.99 + 1.92
		return in.ShippingMethod == model.ShippingExpress &&
			in.Total.Equal(decimal.RequireFromString("41.91"))
	}), "key-1").Return(nil, &api.Error{Message: "Payment declined", Status: http.StatusPaymentRequired})

	var results []string
	_, err := newCheckout(e, m, &results).Checkout(context.Background(), CheckoutInput{
		Shipping: validShipping(),
		Payment:  validCard(),
		Method:   model.ShippingExpress,
	})
	require.Error(t, err)
	assert.True(t, api.IsStatus(err, http.StatusPaymentRequired))

	st := e.store.State()
	assert.Same(t, cart, st.Cart)
	assert.Empty(t, st.Orders)
	assert.Equal(t, "Payment declined", st.Error)
	assert.False(t, st.Loading)
	assert.Equal(t, []string{CheckoutError}, results)
	m.AssertExpectations(t)
}

func TestCheckoutUsecase_CanceledContext(t *testing.T) {
	e := newEnv(t)
	e.store.Dispatch(store.AddToCart{Line: model.NewCartLine(apiProduct(3), 1)})
	m := new(OrderAPIMock)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := NewCheckoutUsecase(e.store, m, validator.NewCheckoutValidator(), time.Second, nil)
	_, err := uc.Checkout(ctx, CheckoutInput{Shipping: validShipping(), Payment: validCard()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, e.store.State().Cart.Len())
	m.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func apiProduct(id int64) model.Product {
	for _, p := range apitest.Products() {
		if p.ID == id {
			return p
		}
	}
	panic("unknown product")
}
