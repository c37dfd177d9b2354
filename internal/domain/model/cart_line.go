package model

import "github.com/shopspring/decimal"

// カートの明細。
// JSONは保存済みカートとの互換のため id / price のまま。
// 同一判定はIDだけ（size/colorは見ない）。
type CartLine struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
	Image    string          `json:"image,omitempty"`
	Size     string          `json:"size,omitempty"`
	Color    string          `json:"color,omitempty"`
}

// 単価×数量
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(l.Quantity))
}

// 商品からカート明細を作る
func NewCartLine(p Product, qty int64) CartLine {
	return CartLine{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: qty,
		Image:    p.Image,
	}
}

// サーバー側カート（ミラー）
type ServerCart struct {
	Items []ServerCartItem `json:"items"`
	Total decimal.Decimal  `json:"total"`
}

type ServerCartItem struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
}
