package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/api"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderUsecase_LoadAndCancel(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	ctx := context.Background()

	_, err := e.cart.AddProduct(ctx, 3, AddOptions{Quantity: 2})
	require.NoError(t, err)
	checkout := NewCheckoutUsecase(e.store, e.client.Orders, validator.NewCheckoutValidator(), 0, nil)
	placed, err := checkout.Checkout(ctx, CheckoutInput{
		Shipping: validShipping(),
		Payment:  validator.PaymentForm{Method: model.PaymentPaypal},
	})
	require.NoError(t, err)

	orders, err := e.orders.LoadOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, placed.OrderNumber, orders[0].OrderNumber)

	cancelled, err := e.orders.Cancel(ctx, placed.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCancelled, cancelled.Status)

	st := e.store.State()
	require.Len(t, st.Orders, 1)
	assert.Equal(t, model.OrderStatusCancelled, st.Orders[0].Status)

	// 2回目はサーバーが拒否する
	_, err = e.orders.Cancel(ctx, placed.ID)
	assert.True(t, api.IsStatus(err, http.StatusBadRequest))
	assert.Equal(t, "Order cannot be cancelled", e.store.State().Error)
}

func TestOrderUsecase_CancelStatusOnly(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	existing := model.Order{ID: 7, OrderNumber: "ORD-1", Status: model.OrderStatusPending, CreatedAt: time.Now()}
	m := new(OrderAPIMock)
	m.On("List", mock.Anything, api.ListParams{}).Return([]model.Order{existing}, nil)
	m.On("Cancel", mock.Anything, int64(7)).Return(model.Order{}, nil)

	uc := NewOrderUsecase(e.store, m)
	_, err := uc.LoadOrders(ctx)
	require.NoError(t, err)

	got, err := uc.Cancel(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "ORD-1", got.OrderNumber)
	assert.Equal(t, model.OrderStatusCancelled, got.Status)
	assert.Equal(t, model.OrderStatusCancelled, e.store.State().Orders[0].Status)
	m.AssertExpectations(t)
}

func TestOrderUsecase_LoadOrdersUnauthorized(t *testing.T) {
	e := newEnv(t)

	_, err := e.orders.LoadOrders(context.Background())
	assert.True(t, api.IsStatus(err, http.StatusUnauthorized))

	st := e.store.State()
	assert.NotEmpty(t, st.Error)
	assert.False(t, st.Loading)
}
