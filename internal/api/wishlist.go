package api

import (
	"context"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
)

type WishlistService struct{ c *Client }

func (s *WishlistService) Get(ctx context.Context) ([]model.WishlistItem, error) {
	var out []model.WishlistItem
	err := s.c.get(ctx, "/wishlist", nil, "wishlist", &out)
	return out, err
}

func (s *WishlistService) Add(ctx context.Context, productID int64) error {
	return s.c.post(ctx, "/wishlist/add", map[string]int64{"productId": productID}, "", nil)
}

func (s *WishlistService) Remove(ctx context.Context, productID int64) error {
	return s.c.delete(ctx, "/wishlist/remove/"+pathID(productID), nil)
}

func (s *WishlistService) Clear(ctx context.Context) error {
	return s.c.delete(ctx, "/wishlist/clear", nil)
}
