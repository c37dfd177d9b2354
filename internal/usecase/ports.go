package usecase

import (
	"context"
	"errors"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/api"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/store"
)

var (
	ErrEmptyCart  = errors.New("cart is empty")
	ErrOutOfStock = errors.New("product is out of stock")
)

// usecaseが使うAPI（api.Client の各サービスが満たす）
type AuthAPI interface {
	Login(ctx context.Context, in api.Credentials) (api.AuthResult, error)
	Register(ctx context.Context, in api.RegisterInput) (api.AuthResult, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (model.User, error)
	UpdateProfile(ctx context.Context, patch model.UserPatch) (model.User, error)
}

type ProductAPI interface {
	List(ctx context.Context, p api.ListParams) ([]model.Product, error)
	Get(ctx context.Context, productID int64) (model.Product, error)
}

type CategoryAPI interface {
	List(ctx context.Context) ([]model.Category, error)
}

type OrderAPI interface {
	List(ctx context.Context, p api.ListParams) ([]model.Order, error)
	Create(ctx context.Context, in model.OrderInput, idempotencyKey string) (model.Order, error)
	Cancel(ctx context.Context, orderID int64) (model.Order, error)
}

type TokenStore interface {
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// エラーをストアに流してからそのまま返す
func fail(s *store.Store, err error) error {
	msg := err.Error()
	if ae, ok := api.AsError(err); ok {
		msg = ae.Message
	}
	s.Dispatch(store.SetError{Message: msg})
	return err
}
