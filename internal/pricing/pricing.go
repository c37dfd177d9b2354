package pricing

import (
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
	"github.com/shopspring/decimal"
)

var (
	// 税率 8%
	TaxRate = decimal.RequireFromString("0.08")

	// 通常配送料（小計50超えで無料）
	StandardShippingFee = decimal.RequireFromString("9.99")

	// お急ぎ便
	ExpressShippingFee = decimal.RequireFromString("15.99")

	// この金額を「超えたら」通常配送は無料
	FreeShippingThreshold = decimal.NewFromInt(50)
)

// Quoteは注文金額の内訳。値は丸めていない。
type Quote struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal

	Promo  *Promo
	Method model.ShippingMethod
}

// Calculateは小計・プロモ・配送方法から金額を計算する。
//
//	discount = subtotal × rate（割引プロモのみ）
//	shipping = 0（送料無料プロモ） / 15.99（お急ぎ便） / 0（小計 > 50） / 9.99
//	tax      = (subtotal − discount) × 0.08
//	total    = subtotal − discount + shipping + tax
func Calculate(subtotal decimal.Decimal, promo *Promo, method model.ShippingMethod) Quote {
	if method == "" {
		method = model.ShippingStandard
	}

	discount := decimal.Zero
	if promo != nil && promo.Type == PromoPercentage {
		discount = subtotal.Mul(promo.Rate)
	}

	shipping := ShippingFee(subtotal, promo, method)
	tax := subtotal.Sub(discount).Mul(TaxRate)
	total := subtotal.Sub(discount).Add(shipping).Add(tax)

	return Quote{
		Subtotal: subtotal,
		Discount: discount,
		Shipping: shipping,
		Tax:      tax,
		Total:    total,
		Promo:    promo,
		Method:   method,
	}
}

func ShippingFee(subtotal decimal.Decimal, promo *Promo, method model.ShippingMethod) decimal.Decimal {
	if promo != nil && promo.Type == PromoShipping {
		return decimal.Zero
	}
	if method == model.ShippingExpress {
		return ExpressShippingFee
	}
	if subtotal.GreaterThan(FreeShippingThreshold) {
		return decimal.Zero
	}
	return StandardShippingFee
}

// 送料無料まであといくら（50未満のときだけ）
func FreeShippingRemaining(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(FreeShippingThreshold) {
		return decimal.Zero
	}
	return FreeShippingThreshold.Sub(subtotal)
}

// Roundedは表示・送信用に小数2桁へ丸めたコピーを返す
func (q Quote) Rounded() Quote {
	q.Subtotal = q.Subtotal.Round(2)
	q.Discount = q.Discount.Round(2)
	q.Shipping = q.Shipping.Round(2)
	q.Tax = q.Tax.Round(2)
	q.Total = q.Total.Round(2)
	return q
}

// 送料無料か
func (q Quote) FreeShipping() bool {
	return q.Shipping.IsZero()
}
