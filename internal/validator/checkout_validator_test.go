package validator

import (
	"testing"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validShipping() ShippingForm {
	return ShippingForm{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "555-0100",
		Address:   "1 Main St",
		City:      "Springfield",
		State:     "IL",
		ZipCode:   "62701",
	}
}

func TestValidateShipping_OK(t *testing.T) {
	assert.NoError(t, NewCheckoutValidator().ValidateShipping(validShipping()))
}

func TestValidateShipping_AllBlank(t *testing.T) {
	err := NewCheckoutValidator().ValidateShipping(ShippingForm{FirstName: "   "})

	fe, ok := AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, FieldErrors{
		"firstName": "First name is required",
		"lastName":  "Last name is required",
		"email":     "Email is required",
		"phone":     "Phone is required",
		"address":   "Address is required",
		"city":      "City is required",
		"state":     "State is required",
		"zipCode":   "ZIP code is required",
	}, fe)
}

func TestValidateShipping_BadEmail(t *testing.T) {
	f := validShipping()
	f.Email = "not-an-email"

	fe, ok := AsFieldErrors(NewCheckoutValidator().ValidateShipping(f))
	require.True(t, ok)
	assert.Equal(t, FieldErrors{"email": "Please enter a valid email address"}, fe)
	assert.Equal(t, "Please enter a valid email address", fe.Error())
}

func TestValidatePayment(t *testing.T) {
	v := NewCheckoutValidator()

	// paypalならカード項目は不要
	assert.NoError(t, v.ValidatePayment(PaymentForm{Method: model.PaymentPaypal}))

	fe, ok := AsFieldErrors(v.ValidatePayment(PaymentForm{Method: model.PaymentCard, CVV: "123"}))
	require.True(t, ok)
	assert.Equal(t, FieldErrors{
		"cardNumber": "Card number is required",
		"expiryDate": "Expiry date is required",
		"cardName":   "Cardholder name is required",
	}, fe)

	assert.NoError(t, v.ValidatePayment(PaymentForm{
		Method:     model.PaymentCard,
		CardNumber: "4242 4242 4242 4242",
		ExpiryDate: "12/30",
		CVV:        "123",
		CardName:   "Ada Lovelace",
	}))

	fe, ok = AsFieldErrors(v.ValidatePayment(PaymentForm{Method: "bitcoin"}))
	require.True(t, ok)
	assert.Equal(t, "Payment method must be one of: card paypal", fe["paymentMethod"])
}

func TestShippingForm_ToAddressTrims(t *testing.T) {
	f := validShipping()
	f.City = "  Springfield "
	assert.Equal(t, "Springfield", f.ToAddress().City)
}
