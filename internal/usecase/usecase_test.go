package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/api"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/apitest"
	kvinfra "github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/infra/repository"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/persistence"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/store"

	"github.com/stretchr/testify/require"
)

// 偽APIにつないだストア一式
type env struct {
	srv     *apitest.Server
	store   *store.Store
	client  *api.Client
	tokens  *persistence.TokenStore
	session *SessionUsecase
	catalog *CatalogUsecase
	cart    *CartUsecase
	orders  *OrderUsecase
}

func newEnv(t *testing.T) *env {
	t.Helper()
	srv := apitest.New(t)
	kv := kvinfra.NewKVMemoryRepository()
	tokens := persistence.NewTokenStore(kv)
	client := api.NewClient(srv.URL(), 5*time.Second, api.WithTokenSource(tokens))
	s := store.New()

	catalog := NewCatalogUsecase(s, client.Products, client.Categories)
	return &env{
		srv:     srv,
		store:   s,
		client:  client,
		tokens:  tokens,
		session: NewSessionUsecase(s, client.Auth, tokens, nil),
		catalog: catalog,
		cart:    NewCartUsecase(s, catalog, 0),
		orders:  NewOrderUsecase(s, client.Orders),
	}
}

func (e *env) login(t *testing.T) {
	t.Helper()
	_, err := e.session.Login(context.Background(), apitest.CustomerEmail, apitest.CustomerPassword)
	require.NoError(t, err)
}
