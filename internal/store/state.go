package store

import (
	"encoding/json"
	"slices"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
)

// Cartは不変のカート。
// 変更があれば必ず新しい*Cartになるので、ポインタ比較で変更を検知できる。
type Cart struct {
	lines []model.CartLine
}

func newCart(lines []model.CartLine) *Cart {
	return &Cart{lines: lines}
}

// 明細のコピーを返す
func (c *Cart) Lines() []model.CartLine {
	if c == nil {
		return []model.CartLine{}
	}
	out := slices.Clone(c.lines)
	if out == nil {
		return []model.CartLine{}
	}
	return out
}

func (c *Cart) Len() int {
	if c == nil {
		return 0
	}
	return len(c.lines)
}

func (c *Cart) Find(productID int64) (model.CartLine, bool) {
	if c == nil {
		return model.CartLine{}, false
	}
	for _, l := range c.lines {
		if l.ID == productID {
			return l, true
		}
	}
	return model.CartLine{}, false
}

// 空でも [] で出す（nullにしない）
func (c *Cart) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Lines())
}

// Stateはストアのスナップショット。Reduce以外から書き換えないこと。
type State struct {
	// nilなら未ログイン
	User            *model.User
	IsAuthenticated bool

	Cart       *Cart
	Products   []model.Product
	Categories []model.Category
	Orders     []model.Order

	Loading bool
	// 空文字ならエラーなし
	Error string

	SearchQuery string
	Filters     model.Filters
}

// 初期状態
func Initial() *State {
	return &State{
		Cart:       newCart(nil),
		Products:   []model.Product{},
		Categories: []model.Category{},
		Orders:     []model.Order{},
		Filters:    model.DefaultFilters(),
	}
}

func (s *State) HasError() bool {
	return s.Error != ""
}

// 浅いコピー。スライスは共有するが、Reduceはその場で書き換えない。
func (s *State) clone() *State {
	n := *s
	return &n
}
