package api

import (
	"context"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
)

// サーバー側カート。ローカルのカートはストアが正で、こちらは同期用。
type CartService struct{ c *Client }

type cartItemBody struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

func (s *CartService) Get(ctx context.Context) (model.ServerCart, error) {
	var out model.ServerCart
	err := s.c.get(ctx, "/cart", nil, "cart", &out)
	return out, err
}

// quantityが0以下なら1
func (s *CartService) Add(ctx context.Context, productID, quantity int64) error {
	if quantity <= 0 {
		quantity = 1
	}
	return s.c.post(ctx, "/cart/add", cartItemBody{ProductID: productID, Quantity: quantity}, "", nil)
}

func (s *CartService) Update(ctx context.Context, productID, quantity int64) error {
	return s.c.put(ctx, "/cart/update", cartItemBody{ProductID: productID, Quantity: quantity}, "", nil)
}

func (s *CartService) Remove(ctx context.Context, productID int64) error {
	return s.c.delete(ctx, "/cart/remove/"+pathID(productID), nil)
}

func (s *CartService) Clear(ctx context.Context) error {
	return s.c.delete(ctx, "/cart/clear", nil)
}
