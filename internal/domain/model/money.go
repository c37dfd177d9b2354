package model

import "github.com/shopspring/decimal"

func init() {
	// APIもlocalStorage互換のJSONも金額は数値で扱う（"79.99"ではなく79.99）
	decimal.MarshalJSONWithoutQuotes = true
}

// 金額は常にdecimalで持つ。丸めるのは表示のときだけ。
func Money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// 表示用（小数2桁）
func FormatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
