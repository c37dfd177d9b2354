package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Review struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"productId"`
	UserID    int64     `json:"userId"`
	UserName  string    `json:"userName,omitempty"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title,omitempty"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReviewInput struct {
	ProductID int64  `json:"productId"`
	Rating    int    `json:"rating"`
	Title     string `json:"title,omitempty"`
	Comment   string `json:"comment"`
}

type WishlistItem struct {
	ProductID int64     `json:"productId"`
	Product   *Product  `json:"product,omitempty"`
	AddedAt   time.Time `json:"addedAt"`
}

// 登録済み住所
type Address struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Line1     string `json:"line1"`
	Line2     string `json:"line2,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country,omitempty"`
	Phone     string `json:"phone,omitempty"`
	IsDefault bool   `json:"isDefault"`
}

type PaymentIntent struct {
	ID           string          `json:"id"`
	ClientSecret string          `json:"clientSecret"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Status       string          `json:"status"`
}

type PaymentMethod struct {
	ID        string `json:"id"`
	Brand     string `json:"brand"`
	Last4     string `json:"last4"`
	ExpMonth  int    `json:"expMonth"`
	ExpYear   int    `json:"expYear"`
	IsDefault bool   `json:"isDefault"`
}

type UploadedImage struct {
	URL    string `json:"url"`
	Folder string `json:"folder,omitempty"`
}
