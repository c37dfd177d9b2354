package usecase

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/pricing"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/store"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/task"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/validator"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// チェックアウト結果（メトリクス用）
const (
	CheckoutSuccess = "success"
	CheckoutError   = "error"
	CheckoutInvalid = "invalid"
)

type CheckoutInput struct {
	Shipping  validator.ShippingForm
	Payment   validator.PaymentForm
	Method    model.ShippingMethod
	PromoCode string
}

type CheckoutUsecase struct {
	store       *store.Store
	orders      OrderAPI
	validator   *validator.CheckoutValidator
	submitDelay time.Duration
	logger      *slog.Logger

	now      func() time.Time
	newKey   func() string
	onResult func(result string)
}

type CheckoutOption func(*CheckoutUsecase)

func WithClock(now func() time.Time) CheckoutOption {
	return func(u *CheckoutUsecase) { u.now = now }
}

func WithIdempotencyKeyFunc(fn func() string) CheckoutOption {
	return func(u *CheckoutUsecase) { u.newKey = fn }
}

func WithCheckoutResultHook(fn func(result string)) CheckoutOption {
	return func(u *CheckoutUsecase) { u.onResult = fn }
}

// DI
func NewCheckoutUsecase(
	s *store.Store,
	orders OrderAPI,
	v *validator.CheckoutValidator,
	submitDelay time.Duration,
	logger *slog.Logger,
	opts ...CheckoutOption,
) *CheckoutUsecase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	u := &CheckoutUsecase{
		store:       s,
		orders:      orders,
		validator:   v,
		submitDelay: submitDelay,
		logger:      logger,
		now:         time.Now,
		newKey:      uuid.NewString,
		onResult:    func(string) {},
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Checkoutは入力を検証して注文を送信する。
// 成功したらADD_ORDER → CLEAR_CART。失敗時はカートを残してSET_ERROR。
// 入力エラー（validator.FieldErrors）はストアに流さない。
func (u *CheckoutUsecase) Checkout(ctx context.Context, in CheckoutInput) (model.Order, error) {
	st := u.store.State()
	if st.Cart.Len() == 0 {
		return model.Order{}, ErrEmptyCart
	}

	if err := u.validate(in); err != nil {
		u.onResult(CheckoutInvalid)
		return model.Order{}, err
	}

	var promo *pricing.Promo
	if in.PromoCode != "" {
		p, err := pricing.LookupPromo(in.PromoCode)
		if err != nil {
			u.onResult(CheckoutInvalid)
			return model.Order{}, err
		}
		promo = &p
	}

	method := in.Method
	if method == "" {
		method = model.ShippingStandard
	}
	lines := st.Cart.Lines()
	q := pricing.Calculate(st.CartTotal(), promo, method).Rounded()

	input := model.OrderInput{
		OrderNumber:     "ORD-" + strconv.FormatInt(u.now().UnixMilli(), 10),
		Items:           lines,
		Subtotal:        q.Subtotal,
		Discount:        q.Discount,
		Shipping:        q.Shipping,
		Tax:             q.Tax,
		Total:           q.Total,
		ShippingMethod:  method,
		PaymentMethod:   in.Payment.Method,
		ShippingAddress: in.Shipping.ToAddress(),
	}
	if promo != nil {
		input.PromoCode = promo.Code
	}

	u.store.Dispatch(store.SetLoading{Loading: true})

	key := u.newKey()
	t := task.Run(ctx, u.submitDelay, func(ctx context.Context) (model.Order, error) {
		return u.orders.Create(ctx, input, key)
	})
	order, err := t.Wait(ctx)
	if err != nil {
		t.Cancel()
		u.onResult(CheckoutError)
		u.logger.WarnContext(ctx, "checkout failed",
			slog.String("orderNumber", input.OrderNumber), slog.Any("error", err))
		return model.Order{}, fail(u.store, errors.Wrap(err, "place order"))
	}

	order = fillOrder(order, input, u.now())
	u.store.Dispatch(store.AddOrder{Order: order})
	u.store.Dispatch(store.ClearCart{})
	u.store.Dispatch(store.SetLoading{Loading: false})
	u.onResult(CheckoutSuccess)
	return order, nil
}

func (u *CheckoutUsecase) validate(in CheckoutInput) error {
	shipErr := u.validator.ValidateShipping(in.Shipping)
	payErr := u.validator.ValidatePayment(in.Payment)

	// 両方のフィールドエラーをまとめる
	out := validator.FieldErrors{}
	for _, err := range []error{shipErr, payErr} {
		if err == nil {
			continue
		}
		fe, ok := validator.AsFieldErrors(err)
		if !ok {
			return err
		}
		for k, v := range fe {
			out[k] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// サーバーが返さなかった項目を送信内容で埋める
func fillOrder(o model.Order, in model.OrderInput, now time.Time) model.Order {
	if o.OrderNumber == "" {
		o.OrderNumber = in.OrderNumber
	}
	if len(o.Items) == 0 {
		o.Items = in.Items
	}
	if o.Total.IsZero() {
		o.Subtotal, o.Discount, o.Shipping, o.Tax, o.Total = in.Subtotal, in.Discount, in.Shipping, in.Tax, in.Total
	}
	if o.Status == "" {
		o.Status = model.OrderStatusPending
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	if o.ShippingAddress == nil {
		addr := in.ShippingAddress
		o.ShippingAddress = &addr
	}
	if o.ShippingMethod == "" {
		o.ShippingMethod = in.ShippingMethod
	}
	if o.PaymentMethod == "" {
		o.PaymentMethod = in.PaymentMethod
	}
	return o
}
