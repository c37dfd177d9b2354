package api

import (
	"context"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
)

type CategoryService struct{ c *Client }

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	err := s.c.get(ctx, "/categories", nil, "categories", &out)
	return out, err
}

func (s *CategoryService) Get(ctx context.Context, categoryID int64) (model.Category, error) {
	var out model.Category
	err := s.c.get(ctx, "/categories/"+pathID(categoryID), nil, "category", &out)
	return out, err
}

func (s *CategoryService) Create(ctx context.Context, in model.CategoryInput) error {
	return s.c.post(ctx, "/categories", in, "", nil)
}

func (s *CategoryService) Update(ctx context.Context, categoryID int64, in model.CategoryInput) error {
	return s.c.put(ctx, "/categories/"+pathID(categoryID), in, "", nil)
}

func (s *CategoryService) Delete(ctx context.Context, categoryID int64) error {
	return s.c.delete(ctx, "/categories/"+pathID(categoryID), nil)
}
