package api

import (
	"context"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "usd"

type PaymentService struct{ c *Client }

type PaymentMethodInput struct {
	Type        model.PaymentMethodType `json:"type"`
	CardNumber  string                  `json:"cardNumber,omitempty"`
	ExpiryDate  string                  `json:"expiryDate,omitempty"`
	CVV         string                  `json:"cvv,omitempty"`
	NameOnCard  string                  `json:"nameOnCard,omitempty"`
	MakeDefault bool                    `json:"makeDefault,omitempty"`
}

// currencyが空なら usd
func (s *PaymentService) CreateIntent(ctx context.Context, amount decimal.Decimal, currency string) (model.PaymentIntent, error) {
	if currency == "" {
		currency = DefaultCurrency
	}

	var out model.PaymentIntent
	err := s.c.post(ctx, "/payment/create-intent", map[string]any{
		"amount":   amount,
		"currency": currency,
	}, "paymentIntent", &out)
	return out, err
}

func (s *PaymentService) Confirm(ctx context.Context, paymentIntentID, paymentMethodID string) (model.PaymentIntent, error) {
	var out model.PaymentIntent
	err := s.c.post(ctx, "/payment/confirm", map[string]string{
		"paymentIntentId": paymentIntentID,
		"paymentMethodId": paymentMethodID,
	}, "paymentIntent", &out)
	return out, err
}

func (s *PaymentService) Methods(ctx context.Context) ([]model.PaymentMethod, error) {
	var out []model.PaymentMethod
	err := s.c.get(ctx, "/payment/methods", nil, "paymentMethods", &out)
	return out, err
}

func (s *PaymentService) AddMethod(ctx context.Context, in PaymentMethodInput) (model.PaymentMethod, error) {
	var out model.PaymentMethod
	err := s.c.post(ctx, "/payment/methods", in, "paymentMethod", &out)
	return out, err
}

func (s *PaymentService) DeleteMethod(ctx context.Context, methodID string) error {
	return s.c.delete(ctx, "/payment/methods/"+methodID, nil)
}
