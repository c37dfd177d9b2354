package validator

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// FieldErrorsは フィールド名(JSON) → メッセージ。
// ストアには流さず、呼び出し元がそのまま表示する。
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, fe[f])
	}
	return strings.Join(msgs, "; ")
}

func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	ok := errors.As(err, &fe)
	return fe, ok
}

// チェックアウト1ステップ目（配送先）
type ShippingForm struct {
	FirstName string `json:"firstName" validate:"notblank"`
	LastName  string `json:"lastName" validate:"notblank"`
	Email     string `json:"email" validate:"notblank,email"`
	Phone     string `json:"phone" validate:"notblank"`
	Address   string `json:"address" validate:"notblank"`
	City      string `json:"city" validate:"notblank"`
	State     string `json:"state" validate:"notblank"`
	ZipCode   string `json:"zipCode" validate:"notblank"`
}

func (f ShippingForm) ToAddress() model.ShippingAddress {
	return model.ShippingAddress{
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.LastName),
		Email:     strings.TrimSpace(f.Email),
		Phone:     strings.TrimSpace(f.Phone),
		Address:   strings.TrimSpace(f.Address),
		City:      strings.TrimSpace(f.City),
		State:     strings.TrimSpace(f.State),
		ZipCode:   strings.TrimSpace(f.ZipCode),
	}
}

// 2ステップ目（支払い）。カード項目はcardのときだけ必須。
type PaymentForm struct {
	Method     model.PaymentMethodType `json:"paymentMethod" validate:"oneof=card paypal"`
	CardNumber string                  `json:"cardNumber" validate:"required_if=Method card,omitempty,notblank"`
	ExpiryDate string                  `json:"expiryDate" validate:"required_if=Method card,omitempty,notblank"`
	CVV        string                  `json:"cvv" validate:"required_if=Method card,omitempty,notblank"`
	CardName   string                  `json:"cardName" validate:"required_if=Method card,omitempty,notblank"`
}

// 表示ラベル
var labels = map[string]string{
	"firstName":     "First name",
	"lastName":      "Last name",
	"email":         "Email",
	"phone":         "Phone",
	"address":       "Address",
	"city":          "City",
	"state":         "State",
	"zipCode":       "ZIP code",
	"paymentMethod": "Payment method",
	"cardNumber":    "Card number",
	"expiryDate":    "Expiry date",
	"cvv":           "CVV",
	"cardName":      "Cardholder name",
}

type CheckoutValidator struct {
	v *validator.Validate
}

// DI
func NewCheckoutValidator() *CheckoutValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// エラーのフィールド名をJSON名にする
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return &CheckoutValidator{v: v}
}

func (cv *CheckoutValidator) ValidateShipping(f ShippingForm) error {
	return cv.validate(f)
}

func (cv *CheckoutValidator) ValidatePayment(f PaymentForm) error {
	return cv.validate(f)
}

func (cv *CheckoutValidator) validate(s any) error {
	err := cv.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := FieldErrors{}
	for _, e := range verrs {
		// 1フィールド1メッセージ（最初のものを優先）
		if _, ok := out[e.Field()]; ok {
			continue
		}
		out[e.Field()] = message(e)
	}
	return out
}

func message(e validator.FieldError) string {
	label, ok := labels[e.Field()]
	if !ok {
		label = e.Field()
	}

	switch e.Tag() {
	case "email":
		return "Please enter a valid email address"
	case "oneof":
		return label + " must be one of: " + e.Param()
	default:
		return label + " is required"
	}
}
