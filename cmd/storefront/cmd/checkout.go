package cmd

import (
	"context"
	"fmt"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/usecase"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/validator"

	"github.com/spf13/cobra"
)

var checkoutFlags struct {
	shipping validator.ShippingForm
	payment  validator.PaymentForm
	method   string
	promo    string
	express  bool
}

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Place an order for the cart",
	Long: `Place an order for everything in the cart.

Shipping details are required. Card details are required when
--payment is card (the default).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := usecase.CheckoutInput{
			Shipping:  checkoutFlags.shipping,
			Payment:   checkoutFlags.payment,
			Method:    shippingMethod(checkoutFlags.express),
			PromoCode: checkoutFlags.promo,
		}
		in.Payment.Method = model.PaymentMethodType(checkoutFlags.method)

		return withRuntime(cmd, func(ctx context.Context, rt *runtime) error {
			order, err := rt.Checkout.Checkout(ctx, in)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Order %s placed\n", order.OrderNumber)
			fmt.Fprintf(out, "Total charged: %s\n", money(order.Total))
			return nil
		})
	},
}

func init() {
	f := checkoutCmd.Flags()
	s := &checkoutFlags.shipping
	f.StringVar(&s.FirstName, "first-name", "", "first name")
	f.StringVar(&s.LastName, "last-name", "", "last name")
	f.StringVar(&s.Email, "email", "", "contact email")
	f.StringVar(&s.Phone, "phone", "", "contact phone")
	f.StringVar(&s.Address, "address", "", "street address")
	f.StringVar(&s.City, "city", "", "city")
	f.StringVar(&s.State, "state", "", "state")
	f.StringVar(&s.ZipCode, "zip", "", "ZIP code")

	p := &checkoutFlags.payment
	f.StringVar(&checkoutFlags.method, "payment", string(model.PaymentCard), "card|paypal")
	f.StringVar(&p.CardNumber, "card-number", "", "card number")
	f.StringVar(&p.ExpiryDate, "expiry", "", "card expiry (MM/YY)")
	f.StringVar(&p.CVV, "cvv", "", "card security code")
	f.StringVar(&p.CardName, "card-name", "", "name on card")

	f.StringVar(&checkoutFlags.promo, "promo", "", "promo code")
	f.BoolVar(&checkoutFlags.express, "express", false, "express shipping")

	rootCmd.AddCommand(checkoutCmd)
}
