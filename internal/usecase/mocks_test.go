package usecase

import (
	"context"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/api"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"

	"github.com/stretchr/testify/mock"
)

type AuthAPIMock struct{ mock.Mock }

func (m *AuthAPIMock) Login(ctx context.Context, in api.Credentials) (api.AuthResult, error) {
	args := m.Called(ctx, in)
	r, _ := args.Get(0).(api.AuthResult)
	return r, args.Error(1)
}

func (m *AuthAPIMock) Register(ctx context.Context, in api.RegisterInput) (api.AuthResult, error) {
	args := m.Called(ctx, in)
	r, _ := args.Get(0).(api.AuthResult)
	return r, args.Error(1)
}

func (m *AuthAPIMock) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *AuthAPIMock) Profile(ctx context.Context) (model.User, error) {
	args := m.Called(ctx)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *AuthAPIMock) UpdateProfile(ctx context.Context, patch model.UserPatch) (model.User, error) {
	args := m.Called(ctx, patch)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

type TokenStoreMock struct{ mock.Mock }

func (m *TokenStoreMock) SetToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *TokenStoreMock) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type OrderAPIMock struct{ mock.Mock }

func (m *OrderAPIMock) List(ctx context.Context, p api.ListParams) ([]model.Order, error) {
	args := m.Called(ctx, p)
	o, _ := args.Get(0).([]model.Order)
	return o, args.Error(1)
}

func (m *OrderAPIMock) Create(ctx context.Context, in model.OrderInput, key string) (model.Order, error) {
	args := m.Called(ctx, in, key)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderAPIMock) Cancel(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}
