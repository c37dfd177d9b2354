package model

import "github.com/shopspring/decimal"

// 管理者（ユーザーとは別テーブル）
type Admin struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

type AdminSession struct {
	LoggedIn bool   `json:"logged_in"`
	Admin    *Admin `json:"admin,omitempty"`
}

type AdminDashboard struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalOrders   int64           `json:"totalOrders"`
	TotalUsers    int64           `json:"totalUsers"`
	TotalProducts int64           `json:"totalProducts"`
	RecentOrders  []Order         `json:"recentOrders"`
}

type AnalyticsPoint struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int64           `json:"orders"`
}

type Analytics struct {
	Period string           `json:"period"`
	Points []AnalyticsPoint `json:"points"`
}

type InventoryItem struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Stock     int64  `json:"stock"`
}
