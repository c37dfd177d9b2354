package api

import (
	"context"
	"net/http"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
)

type OrderService struct{ c *Client }

type statusBody struct {
	Status model.OrderStatus `json:"status"`
}

func (s *OrderService) List(ctx context.Context, p ListParams) ([]model.Order, error) {
	var out []model.Order
	err := s.c.get(ctx, "/orders", p.values(), "orders", &out)
	return out, err
}

func (s *OrderService) Get(ctx context.Context, orderID int64) (model.Order, error) {
	var out model.Order
	err := s.c.get(ctx, "/orders/"+pathID(orderID), nil, "order", &out)
	return out, err
}

// 二重送信防止のため Idempotency-Key を付ける
func (s *OrderService) Create(ctx context.Context, in model.OrderInput, idempotencyKey string) (model.Order, error) {
	h := http.Header{}
	if idempotencyKey != "" {
		h.Set("Idempotency-Key", idempotencyKey)
	}

	var out model.Order
	err := s.c.do(ctx, request{
		method: http.MethodPost,
		path:   "/orders",
		body:   in,
		header: h,
		key:    "order",
	}, &out)
	return out, err
}

func (s *OrderService) Update(ctx context.Context, orderID int64, in model.OrderInput) (model.Order, error) {
	var out model.Order
	err := s.c.put(ctx, "/orders/"+pathID(orderID), in, "order", &out)
	return out, err
}

func (s *OrderService) Cancel(ctx context.Context, orderID int64) (model.Order, error) {
	var out model.Order
	err := s.c.put(ctx, "/orders/"+pathID(orderID)+"/cancel", nil, "order", &out)
	return out, err
}

func (s *OrderService) ByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	var out []model.Order
	err := s.c.get(ctx, "/orders/user/"+pathID(userID), nil, "orders", &out)
	return out, err
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	return s.c.put(ctx, "/orders/"+pathID(orderID)+"/status", statusBody{Status: status}, "", nil)
}
