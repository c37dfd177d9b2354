package pricing

import (
	"context"
	"strings"
	"time"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/task"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var ErrInvalidPromo = errors.New("invalid promo code")

type PromoType string

const (
	PromoPercentage PromoType = "percentage"
	PromoShipping   PromoType = "shipping"
)

// チェックアウト時だけ使う。カートには保存しない。
type Promo struct {
	Code        string
	Type        PromoType
	Rate        decimal.Decimal
	Description string
}

var promos = map[string]Promo{
	"SAVE10": {
		Code:        "SAVE10",
		Type:        PromoPercentage,
		Rate:        decimal.RequireFromString("0.1"),
		Description: "10% off",
	},
	"FREESHIP": {
		Code:        "FREESHIP",
		Type:        PromoShipping,
		Rate:        decimal.Zero,
		Description: "Free shipping",
	},
	"WELCOME20": {
		Code:        "WELCOME20",
		Type:        PromoPercentage,
		Rate:        decimal.RequireFromString("0.2"),
		Description: "20% off for new customers",
	},
}

// 大文字小文字は区別しない
func LookupPromo(code string) (Promo, error) {
	key := strings.ToUpper(strings.TrimSpace(code))
	if key == "" {
		return Promo{}, errors.Wrap(ErrInvalidPromo, "empty code")
	}
	p, ok := promos[key]
	if !ok {
		return Promo{}, errors.Wrapf(ErrInvalidPromo, "%q", code)
	}
	return p, nil
}

// ValidatePromoAsyncはdelay後にコードを検証するタスクを返す
func ValidatePromoAsync(ctx context.Context, code string, delay time.Duration) *task.Task[Promo] {
	return task.Run(ctx, delay, func(ctx context.Context) (Promo, error) {
		return LookupPromo(code)
	})
}
