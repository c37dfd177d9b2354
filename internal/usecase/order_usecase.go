package usecase

import (
	"context"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/api"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/store"
)

type OrderUsecase struct {
	store  *store.Store
	orders OrderAPI
}

// DI
func NewOrderUsecase(s *store.Store, orders OrderAPI) *OrderUsecase {
	return &OrderUsecase{store: s, orders: orders}
}

func (u *OrderUsecase) LoadOrders(ctx context.Context) ([]model.Order, error) {
	u.store.Dispatch(store.SetLoading{Loading: true})

	orders, err := u.orders.List(ctx, api.ListParams{})
	if err != nil {
		return nil, fail(u.store, err)
	}

	u.store.Dispatch(store.SetOrders{Orders: orders})
	u.store.Dispatch(store.SetLoading{Loading: false})
	return orders, nil
}

// キャンセル後、一覧の該当注文を差し替える
func (u *OrderUsecase) Cancel(ctx context.Context, orderID int64) (model.Order, error) {
	cancelled, err := u.orders.Cancel(ctx, orderID)
	if err != nil {
		return model.Order{}, fail(u.store, err)
	}
	if cancelled.ID == 0 {
		cancelled.ID = orderID
	}
	if cancelled.Status == "" {
		cancelled.Status = model.OrderStatusCancelled
	}

	current := u.store.State().Orders
	next := make([]model.Order, 0, len(current))
	for _, o := range current {
		if o.ID == orderID {
			if cancelled.OrderNumber == "" {
				// サーバーがステータスしか返さなかった場合
				o.Status = cancelled.Status
				cancelled = o
			}
			o = cancelled
		}
		next = append(next, o)
	}
	u.store.Dispatch(store.SetOrders{Orders: next})
	return cancelled, nil
}
