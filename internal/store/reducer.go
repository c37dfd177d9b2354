package store

import (
	"slices"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
)

// Reduceは (state, action) から次のstateを作る純粋関数。
// 知らないアクションならstateをそのまま返す（同じポインタ）。
// それ以外は必ず新しい*Stateを返す。
func Reduce(s *State, a Action) *State {
	if s == nil {
		s = Initial()
	}

	switch act := a.(type) {
	case SetLoading:
		next := s.clone()
		next.Loading = act.Loading
		return next

	case SetError:
		next := s.clone()
		next.Error = act.Message
		next.Loading = false
		return next

	case ClearError:
		next := s.clone()
		next.Error = ""
		return next

	case LoginSuccess:
		next := s.clone()
		u := act.User
		next.User = &u
		next.IsAuthenticated = true
		next.Error = ""
		return next

	case Logout:
		next := s.clone()
		next.User = nil
		next.IsAuthenticated = false
		next.Cart = newCart(nil)
		next.Orders = []model.Order{}
		return next

	case UpdateUser:
		next := s.clone()
		var base model.User
		if s.User != nil {
			base = *s.User
		}
		u := act.Patch.Apply(base)
		next.User = &u
		return next

	case SetProducts:
		next := s.clone()
		next.Products = cloneOrEmpty(act.Products)
		return next

	case SetCategories:
		next := s.clone()
		next.Categories = cloneOrEmpty(act.Categories)
		return next

	case AddToCart:
		next := s.clone()
		next.Cart = addLine(s.Cart, act.Line)
		return next

	case RemoveFromCart:
		next := s.clone()
		//無ければカートはそのまま（同じポインタ）
		if _, ok := s.Cart.Find(act.ProductID); ok {
			next.Cart = removeLine(s.Cart, act.ProductID)
		}
		return next

	case UpdateCartQuantity:
		next := s.clone()
		next.Cart = setQuantity(s.Cart, act.ProductID, act.Quantity)
		return next

	case ClearCart:
		next := s.clone()
		next.Cart = newCart(nil)
		return next

	case SetOrders:
		next := s.clone()
		next.Orders = cloneOrEmpty(act.Orders)
		return next

	case AddOrder:
		next := s.clone()
		orders := make([]model.Order, 0, len(s.Orders)+1)
		orders = append(orders, act.Order)
		orders = append(orders, s.Orders...)
		next.Orders = orders
		return next

	case SetSearchQuery:
		next := s.clone()
		next.SearchQuery = act.Query
		return next

	case SetFilters:
		next := s.clone()
		next.Filters = act.Patch.Apply(s.Filters)
		return next

	case ResetFilters:
		next := s.clone()
		next.Filters = model.DefaultFilters()
		next.SearchQuery = ""
		return next

	default:
		return s
	}
}

// 同じIDがあれば数量だけ加算（名前・価格・画像は既存のまま）。
// 数量が指定されていなければ1。
func addLine(c *Cart, line model.CartLine) *Cart {
	qty := line.Quantity
	if qty <= 0 {
		qty = 1
	}

	lines := make([]model.CartLine, 0, c.Len()+1)
	found := false
	if c != nil {
		for _, l := range c.lines {
			if l.ID == line.ID {
				l.Quantity += qty
				found = true
			}
			lines = append(lines, l)
		}
	}

	if !found {
		line.Quantity = qty
		lines = append(lines, line)
	}
	return newCart(lines)
}

func removeLine(c *Cart, productID int64) *Cart {
	lines := make([]model.CartLine, 0, c.Len())
	for _, l := range c.lines {
		if l.ID != productID {
			lines = append(lines, l)
		}
	}
	return newCart(lines)
}

// 数量を上書きしてから0以下の明細を落とす（1回の変換で）
func setQuantity(c *Cart, productID int64, qty int64) *Cart {
	lines := make([]model.CartLine, 0, c.Len())
	if c != nil {
		for _, l := range c.lines {
			if l.ID == productID {
				l.Quantity = qty
			}
			if l.Quantity > 0 {
				lines = append(lines, l)
			}
		}
	}
	return newCart(lines)
}

func cloneOrEmpty[T any](in []T) []T {
	out := slices.Clone(in)
	if out == nil {
		return []T{}
	}
	return out
}
