package api

import (
	"context"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
)

type ReviewService struct{ c *Client }

func (s *ReviewService) ByProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	var out []model.Review
	err := s.c.get(ctx, "/reviews/product/"+pathID(productID), nil, "reviews", &out)
	return out, err
}

func (s *ReviewService) Create(ctx context.Context, in model.ReviewInput) (model.Review, error) {
	var out model.Review
	err := s.c.post(ctx, "/reviews", in, "review", &out)
	return out, err
}

func (s *ReviewService) Update(ctx context.Context, reviewID int64, in model.ReviewInput) (model.Review, error) {
	var out model.Review
	err := s.c.put(ctx, "/reviews/"+pathID(reviewID), in, "review", &out)
	return out, err
}

func (s *ReviewService) Delete(ctx context.Context, reviewID int64) error {
	return s.c.delete(ctx, "/reviews/"+pathID(reviewID), nil)
}

func (s *ReviewService) ByUser(ctx context.Context, userID int64) ([]model.Review, error) {
	var out []model.Review
	err := s.c.get(ctx, "/reviews/user/"+pathID(userID), nil, "reviews", &out)
	return out, err
}
