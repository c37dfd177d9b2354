package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
)

type PaymentMethodType string

const (
	PaymentCard   PaymentMethodType = "card"
	PaymentPaypal PaymentMethodType = "paypal"
)

type Order struct {
	ID              int64             `json:"id"`
	OrderNumber     string            `json:"orderNumber"`
	UserID          int64             `json:"userId,omitempty"`
	Items           []CartLine        `json:"items"`
	Subtotal        decimal.Decimal   `json:"subtotal"`
	Discount        decimal.Decimal   `json:"discount"`
	Shipping        decimal.Decimal   `json:"shipping"`
	Tax             decimal.Decimal   `json:"tax"`
	Total           decimal.Decimal   `json:"total"`
	Status          OrderStatus       `json:"status"`
	ShippingMethod  ShippingMethod    `json:"shippingMethod,omitempty"`
	PaymentMethod   PaymentMethodType `json:"paymentMethod,omitempty"`
	PromoCode       string            `json:"promoCode,omitempty"`
	ShippingAddress *ShippingAddress  `json:"shippingAddress,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// 注文時の配送先（チェックアウトフォームの内容）
type ShippingAddress struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
}

// POST /orders のリクエストボディ
type OrderInput struct {
	OrderNumber     string            `json:"orderNumber"`
	Items           []CartLine        `json:"items"`
	Subtotal        decimal.Decimal   `json:"subtotal"`
	Discount        decimal.Decimal   `json:"discount"`
	Shipping        decimal.Decimal   `json:"shipping"`
	Tax             decimal.Decimal   `json:"tax"`
	Total           decimal.Decimal   `json:"total"`
	ShippingMethod  ShippingMethod    `json:"shippingMethod"`
	PaymentMethod   PaymentMethodType `json:"paymentMethod"`
	PromoCode       string            `json:"promoCode,omitempty"`
	ShippingAddress ShippingAddress   `json:"shippingAddress"`
}
