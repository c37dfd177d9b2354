package model

import "github.com/shopspring/decimal"

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusDraft    ProductStatus = "draft"
	ProductStatusArchived ProductStatus = "archived"
)

type Product struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"`
	Stock         int64            `json:"stock"`
	Category      string           `json:"category"`
	Status        ProductStatus    `json:"status,omitempty"`
	Image         string           `json:"image,omitempty"`
	Images        []string         `json:"images,omitempty"`
	Rating        float64          `json:"rating"`
	Reviews       int64            `json:"reviews"`
	InStock       bool             `json:"inStock"`
}

// 管理画面の商品作成/更新リクエスト
type ProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
	Category    string          `json:"category,omitempty"`
	Status      ProductStatus   `json:"status,omitempty"`
	Image       string          `json:"image,omitempty"`
}

type Category struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Image        string `json:"image,omitempty"`
	ProductCount int64  `json:"productCount"`
}

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}
