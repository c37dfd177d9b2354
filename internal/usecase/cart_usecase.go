package usecase

import (
	"context"
	"time"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/pricing"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/store"

	"github.com/shopspring/decimal"
)

type CartUsecase struct {
	store      *store.Store
	catalog    *CatalogUsecase
	promoDelay time.Duration
}

// DI
func NewCartUsecase(s *store.Store, catalog *CatalogUsecase, promoDelay time.Duration) *CartUsecase {
	return &CartUsecase{store: s, catalog: catalog, promoDelay: promoDelay}
}

// カートに入れる時の任意項目
type AddOptions struct {
	Quantity int64
	Size     string
	Color    string
}

// カート画面の表示内容
type CartSummary struct {
	Lines     []model.CartLine
	ItemCount int64
	Quote     pricing.Quote
	// 送料無料まであといくら（0なら無料）
	FreeShippingRemaining decimal.Decimal
}

func (u *CartUsecase) AddProduct(ctx context.Context, productID int64, opts AddOptions) (model.CartLine, error) {
	p, err := u.catalog.ProductDetail(ctx, productID)
	if err != nil {
		return model.CartLine{}, err
	}
	if !p.InStock && p.Stock <= 0 {
		return model.CartLine{}, ErrOutOfStock
	}

	line := model.NewCartLine(p, opts.Quantity)
	line.Size = opts.Size
	line.Color = opts.Color

	st := u.store.Dispatch(store.AddToCart{Line: line})
	merged, _ := st.CartLine(productID)
	return merged, nil
}

func (u *CartUsecase) Remove(productID int64) {
	u.store.Dispatch(store.RemoveFromCart{ProductID: productID})
}

// 0以下なら削除
func (u *CartUsecase) SetQuantity(productID, quantity int64) {
	u.store.Dispatch(store.UpdateCartQuantity{ProductID: productID, Quantity: quantity})
}

func (u *CartUsecase) Clear() {
	u.store.Dispatch(store.ClearCart{})
}

// Summaryは合計を計算する。promoCodeがあれば検証してから適用する。
func (u *CartUsecase) Summary(ctx context.Context, promoCode string, method model.ShippingMethod) (CartSummary, error) {
	var promo *pricing.Promo
	if promoCode != "" {
		p, err := pricing.ValidatePromoAsync(ctx, promoCode, u.promoDelay).Wait(ctx)
		if err != nil {
			return CartSummary{}, err
		}
		promo = &p
	}

	st := u.store.State()
	subtotal := st.CartTotal()
	return CartSummary{
		Lines:                 st.Cart.Lines(),
		ItemCount:             st.CartItemCount(),
		Quote:                 pricing.Calculate(subtotal, promo, method),
		FreeShippingRemaining: pricing.FreeShippingRemaining(subtotal),
	}, nil
}
