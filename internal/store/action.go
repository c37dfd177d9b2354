package store

import "github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"

// アクション種別（ログとメトリクスのラベルに使う）
type Kind string

const (
	KindSetLoading Kind = "SET_LOADING"
	KindSetError   Kind = "SET_ERROR"
	KindClearError Kind = "CLEAR_ERROR"

	KindLoginSuccess Kind = "LOGIN_SUCCESS"
	KindLogout       Kind = "LOGOUT"
	KindUpdateUser   Kind = "UPDATE_USER"

	KindSetProducts   Kind = "SET_PRODUCTS"
	KindSetCategories Kind = "SET_CATEGORIES"

	KindAddToCart          Kind = "ADD_TO_CART"
	KindRemoveFromCart     Kind = "REMOVE_FROM_CART"
	KindUpdateCartQuantity Kind = "UPDATE_CART_QUANTITY"
	KindClearCart          Kind = "CLEAR_CART"

	KindSetOrders Kind = "SET_ORDERS"
	KindAddOrder  Kind = "ADD_ORDER"

	KindSetSearchQuery Kind = "SET_SEARCH_QUERY"
	KindSetFilters     Kind = "SET_FILTERS"
	KindResetFilters   Kind = "RESET_FILTERS"
)

// Actionは状態変更の要求。
// 下の構造体のどれか。それ以外はReduceで無視される。
type Action interface {
	Kind() Kind
}

type SetLoading struct{ Loading bool }

// 失敗したのでloadingもfalseに戻す
type SetError struct{ Message string }

type ClearError struct{}

type LoginSuccess struct{ User model.User }

// ユーザー・カート・注文をまとめて消す
type Logout struct{}

type UpdateUser struct{ Patch model.UserPatch }

type SetProducts struct{ Products []model.Product }

type SetCategories struct{ Categories []model.Category }

// 同じIDの明細があれば数量を加算する。
// size/colorは同一判定に使わない（色違いでも1行にまとまる）。
type AddToCart struct{ Line model.CartLine }

type RemoveFromCart struct{ ProductID int64 }

// 0以下なら明細ごと消える
type UpdateCartQuantity struct {
	ProductID int64
	Quantity  int64
}

type ClearCart struct{}

type SetOrders struct{ Orders []model.Order }

// 先頭に追加（新しい順）
type AddOrder struct{ Order model.Order }

type SetSearchQuery struct{ Query string }

type SetFilters struct{ Patch model.FiltersPatch }

// フィルタを初期値に戻し、検索語も消す
type ResetFilters struct{}

func (SetLoading) Kind() Kind         { return KindSetLoading }
func (SetError) Kind() Kind           { return KindSetError }
func (ClearError) Kind() Kind         { return KindClearError }
func (LoginSuccess) Kind() Kind       { return KindLoginSuccess }
func (Logout) Kind() Kind             { return KindLogout }
func (UpdateUser) Kind() Kind         { return KindUpdateUser }
func (SetProducts) Kind() Kind        { return KindSetProducts }
func (SetCategories) Kind() Kind      { return KindSetCategories }
func (AddToCart) Kind() Kind          { return KindAddToCart }
func (RemoveFromCart) Kind() Kind     { return KindRemoveFromCart }
func (UpdateCartQuantity) Kind() Kind { return KindUpdateCartQuantity }
func (ClearCart) Kind() Kind          { return KindClearCart }
func (SetOrders) Kind() Kind          { return KindSetOrders }
func (AddOrder) Kind() Kind           { return KindAddOrder }
func (SetSearchQuery) Kind() Kind     { return KindSetSearchQuery }
func (SetFilters) Kind() Kind         { return KindSetFilters }
func (ResetFilters) Kind() Kind       { return KindResetFilters }
