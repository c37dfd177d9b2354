package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/pricing"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/usecase"

	"github.com/shopspring/decimal"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func money(d decimal.Decimal) string {
	return model.FormatMoney(d)
}

func stockLabel(p model.Product) string {
	if p.InStock || p.Stock > 0 {
		return fmt.Sprintf("%d", p.Stock)
	}
	return "out of stock"
}

func printProducts(w io.Writer, products []model.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No products found")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tRATING\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.1f (%d)\t%s\n",
			p.ID, p.Name, p.Category, money(p.Price), p.Rating, p.Reviews, stockLabel(p))
	}
	tw.Flush()
}

func printProduct(w io.Writer, p model.Product) {
	fmt.Fprintf(w, "%s (#%d)\n", p.Name, p.ID)
	if p.Description != "" {
		fmt.Fprintln(w, p.Description)
	}
	price := money(p.Price)
	if p.OriginalPrice != nil && p.OriginalPrice.GreaterThan(p.Price) {
		price += " (was " + money(*p.OriginalPrice) + ")"
	}
	fmt.Fprintf(w, "Price:    %s\n", price)
	fmt.Fprintf(w, "Category: %s\n", p.Category)
	fmt.Fprintf(w, "Rating:   %.1f (%d reviews)\n", p.Rating, p.Reviews)
	fmt.Fprintf(w, "Stock:    %s\n", stockLabel(p))
}

func printCart(w io.Writer, sum usecase.CartSummary) {
	if len(sum.Lines) == 0 {
		fmt.Fprintln(w, "Your cart is empty")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tITEM\tQTY\tPRICE\tTOTAL")
	for _, l := range sum.Lines {
		name := l.Name
		if opts := lineOptions(l); opts != "" {
			name += " (" + opts + ")"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n", l.ID, name, l.Quantity, money(l.Price), money(l.LineTotal()))
	}
	tw.Flush()

	fmt.Fprintln(w)
	printQuote(w, sum.Quote)
	if sum.FreeShippingRemaining.IsPositive() && !sum.Quote.FreeShipping() {
		fmt.Fprintf(w, "Add %s more for free shipping\n", money(sum.FreeShippingRemaining))
	}
}

func lineOptions(l model.CartLine) string {
	var opts []string
	if l.Size != "" {
		opts = append(opts, "size "+l.Size)
	}
	if l.Color != "" {
		opts = append(opts, l.Color)
	}
	return strings.Join(opts, ", ")
}

func printQuote(w io.Writer, q pricing.Quote) {
	q = q.Rounded()
	tw := newTable(w)
	fmt.Fprintf(tw, "Subtotal\t%s\n", money(q.Subtotal))
	if q.Discount.IsPositive() {
		fmt.Fprintf(tw, "Discount (%s)\t-%s\n", q.Promo.Code, money(q.Discount))
	}
	shipping := money(q.Shipping)
	if q.FreeShipping() {
		shipping = "Free"
	}
	fmt.Fprintf(tw, "Shipping (%s)\t%s\n", q.Method, shipping)
	fmt.Fprintf(tw, "Tax\t%s\n", money(q.Tax))
	fmt.Fprintf(tw, "Total\t%s\n", money(q.Total))
	tw.Flush()
}

func printOrders(w io.Writer, orders []model.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(w, "No orders yet")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNUMBER\tDATE\tITEMS\tTOTAL\tSTATUS")
	for _, o := range orders {
		var items int64
		for _, l := range o.Items {
			items += l.Quantity
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\n",
			o.ID, o.OrderNumber, o.CreatedAt.Local().Format("2006-01-02"), items, money(o.Total), o.Status)
	}
	tw.Flush()
}
