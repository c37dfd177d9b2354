package usecase

import (
	"context"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/api"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/store"
)

type CatalogUsecase struct {
	store      *store.Store
	products   ProductAPI
	categories CategoryAPI
}

// DI
func NewCatalogUsecase(s *store.Store, products ProductAPI, categories CategoryAPI) *CatalogUsecase {
	return &CatalogUsecase{store: s, products: products, categories: categories}
}

func (u *CatalogUsecase) LoadProducts(ctx context.Context, p api.ListParams) ([]model.Product, error) {
	u.store.Dispatch(store.SetLoading{Loading: true})

	products, err := u.products.List(ctx, p)
	if err != nil {
		return nil, fail(u.store, err)
	}

	u.store.Dispatch(store.SetProducts{Products: products})
	u.store.Dispatch(store.SetLoading{Loading: false})
	return products, nil
}

func (u *CatalogUsecase) LoadCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := u.categories.List(ctx)
	if err != nil {
		return nil, fail(u.store, err)
	}
	u.store.Dispatch(store.SetCategories{Categories: categories})
	return categories, nil
}

// Browseは検索語とフィルタを反映して、表示対象の商品を返す
func (u *CatalogUsecase) Browse(query string, patch model.FiltersPatch) []model.Product {
	u.store.Dispatch(store.SetSearchQuery{Query: query})
	return u.store.Dispatch(store.SetFilters{Patch: patch}).VisibleProducts()
}

func (u *CatalogUsecase) ResetFilters() {
	u.store.Dispatch(store.ResetFilters{})
}

// キャッシュにあればそれを使う
func (u *CatalogUsecase) ProductDetail(ctx context.Context, productID int64) (model.Product, error) {
	for _, p := range u.store.State().Products {
		if p.ID == productID {
			return p, nil
		}
	}

	p, err := u.products.Get(ctx, productID)
	if err != nil {
		return model.Product{}, fail(u.store, err)
	}
	return p, nil
}
