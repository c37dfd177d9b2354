package metrics

import (
	"bytes"
	"testing"
	"time"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/store"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchHook_CountsByKind(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	s := store.New(store.WithDispatchHook(m.DispatchHook()))
	line := model.CartLine{ID: 1, Name: "Mug", Price: decimal.RequireFromString("12"), Quantity: 1}
	s.Dispatch(store.AddToCart{Line: line})
	s.Dispatch(store.AddToCart{Line: line})
	s.Dispatch(store.ClearCart{})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.StoreActions.WithLabelValues(string(store.KindAddToCart), "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreActions.WithLabelValues(string(store.KindClearCart), "true")))
}

func TestRequestObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	obs := m.RequestObserver()
	obs("GET", 200, 10*time.Millisecond)
	obs("GET", 200, 20*time.Millisecond)
	obs("POST", 0, time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.APIRequests.WithLabelValues("GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.APIRequests.WithLabelValues("POST", "0")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.APIDuration))
}

func TestWrite_TextFormat(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.CheckoutResult("success")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, reg))
	assert.Contains(t, buf.String(), `storefront_checkouts_total{result="success"} 1`)
}
