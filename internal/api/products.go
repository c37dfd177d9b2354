package api

import (
	"context"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
)

type ProductService struct{ c *Client }

func (s *ProductService) List(ctx context.Context, p ListParams) ([]model.Product, error) {
	var out []model.Product
	err := s.c.get(ctx, "/products", p.values(), "products", &out)
	return out, err
}

func (s *ProductService) Get(ctx context.Context, productID int64) (model.Product, error) {
	var out model.Product
	err := s.c.get(ctx, "/products/"+pathID(productID), nil, "product", &out)
	return out, err
}

// 管理者のみ
func (s *ProductService) Create(ctx context.Context, in model.ProductInput) error {
	return s.c.post(ctx, "/admin/products", in, "", nil)
}

func (s *ProductService) Update(ctx context.Context, productID int64, in model.ProductInput) error {
	return s.c.put(ctx, "/admin/products/"+pathID(productID), in, "", nil)
}

func (s *ProductService) Delete(ctx context.Context, productID int64) error {
	return s.c.delete(ctx, "/admin/products/"+pathID(productID), nil)
}

func (s *ProductService) Search(ctx context.Context, query string, p ListParams) ([]model.Product, error) {
	v := p.values()
	v.Set("q", query)

	var out []model.Product
	err := s.c.get(ctx, "/products/search", v, "products", &out)
	return out, err
}

func (s *ProductService) ByCategory(ctx context.Context, categoryID int64, p ListParams) ([]model.Product, error) {
	var out []model.Product
	err := s.c.get(ctx, "/products/category/"+pathID(categoryID), p.values(), "products", &out)
	return out, err
}

func (s *ProductService) Featured(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	err := s.c.get(ctx, "/products/featured", nil, "products", &out)
	return out, err
}

func (s *ProductService) Recommended(ctx context.Context, productID int64) ([]model.Product, error) {
	var out []model.Product
	err := s.c.get(ctx, "/products/"+pathID(productID)+"/recommended", nil, "products", &out)
	return out, err
}
