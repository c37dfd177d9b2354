package model

import "github.com/shopspring/decimal"

// 並び順
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByPriceLow  SortKey = "price-low"
	SortByPriceHigh SortKey = "price-high"
	SortByRating    SortKey = "rating"
	SortByReviews   SortKey = "reviews"
)

// 価格帯 [min, max]（両端含む）
type PriceRange [2]decimal.Decimal

func (r PriceRange) Min() decimal.Decimal { return r[0] }
func (r PriceRange) Max() decimal.Decimal { return r[1] }

func (r PriceRange) Contains(p decimal.Decimal) bool {
	return p.GreaterThanOrEqual(r[0]) && p.LessThanOrEqual(r[1])
}

type Filters struct {
	Category   string     `json:"category"`
	PriceRange PriceRange `json:"priceRange"`
	Rating     float64    `json:"rating"`
	SortBy     SortKey    `json:"sortBy"`
	InStock    bool       `json:"inStock"`
}

// 初期値
func DefaultFilters() Filters {
	return Filters{
		Category:   "",
		PriceRange: PriceRange{decimal.Zero, decimal.NewFromInt(1000)},
		Rating:     0,
		SortBy:     SortByName,
		InStock:    false,
	}
}

// Equalはdecimalの値で比較する
func (f Filters) Equal(o Filters) bool {
	return f.Category == o.Category &&
		f.PriceRange[0].Equal(o.PriceRange[0]) &&
		f.PriceRange[1].Equal(o.PriceRange[1]) &&
		f.Rating == o.Rating &&
		f.SortBy == o.SortBy &&
		f.InStock == o.InStock
}

// SET_FILTERS の部分更新
type FiltersPatch struct {
	Category   *string
	PriceRange *PriceRange
	Rating     *float64
	SortBy     *SortKey
	InStock    *bool
}

func (p FiltersPatch) Apply(f Filters) Filters {
	if p.Category != nil {
		f.Category = *p.Category
	}
	if p.PriceRange != nil {
		f.PriceRange = *p.PriceRange
	}
	if p.Rating != nil {
		f.Rating = *p.Rating
	}
	if p.SortBy != nil {
		f.SortBy = *p.SortBy
	}
	if p.InStock != nil {
		f.InStock = *p.InStock
	}
	return f
}
