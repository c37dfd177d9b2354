package store

import (
	"sort"
	"strings"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
	"github.com/shopspring/decimal"
)

// カート合計（Σ 単価×数量）。丸めない。
func (s *State) CartTotal() decimal.Decimal {
	total := decimal.Zero
	if s.Cart == nil {
		return total
	}
	for _, l := range s.Cart.lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// 数量の合計（行数ではない）
func (s *State) CartItemCount() int64 {
	var n int64
	if s.Cart == nil {
		return n
	}
	for _, l := range s.Cart.lines {
		n += l.Quantity
	}
	return n
}

func (s *State) IsInCart(productID int64) bool {
	_, ok := s.Cart.Find(productID)
	return ok
}

func (s *State) CartLine(productID int64) (model.CartLine, bool) {
	return s.Cart.Find(productID)
}

// VisibleProductsは商品キャッシュに検索語とフィルタを適用して並べ替えた一覧を返す。
// キャッシュ自体は変更しない。
func (s *State) VisibleProducts() []model.Product {
	f := s.Filters
	category := strings.ToLower(f.Category)
	query := strings.ToLower(s.SearchQuery)

	out := make([]model.Product, 0, len(s.Products))
	for _, p := range s.Products {
		if category != "" && !strings.Contains(strings.ToLower(p.Category), category) {
			continue
		}
		if f.Rating > 0 && p.Rating < f.Rating {
			continue
		}
		if f.InStock && !(p.InStock || p.Stock > 0) {
			continue
		}
		if !f.PriceRange.Contains(p.Price) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch f.SortBy {
		case model.SortByPriceLow:
			return a.Price.LessThan(b.Price)
		case model.SortByPriceHigh:
			return a.Price.GreaterThan(b.Price)
		case model.SortByRating:
			return a.Rating > b.Rating
		case model.SortByReviews:
			return a.Reviews > b.Reviews
		default:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	})
	return out
}
