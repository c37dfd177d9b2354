package store_test

import (
	"sync"
	"testing"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_DispatchNotifiesSubscribers(t *testing.T) {
	s := store.New()

	var calls int
	var gotPrev, gotNext *store.State
	unsubscribe := s.Subscribe(func(prev, next *store.State) {
		calls++
		gotPrev, gotNext = prev, next
	})

	before := s.State()
	after := s.Dispatch(store.AddToCart{Line: line(1, "10", 1)})

	require.Equal(t, 1, calls)
	assert.Same(t, before, gotPrev)
	assert.Same(t, after, gotNext)
	assert.Same(t, after, s.State())

	unsubscribe()
	s.Dispatch(store.ClearCart{})
	assert.Equal(t, 1, calls)

	// 2回呼んでも問題ない
	unsubscribe()
}

func TestStore_UnknownActionDoesNotNotify(t *testing.T) {
	s := store.New()

	called := false
	s.Subscribe(func(prev, next *store.State) { called = true })

	before := s.State()
	after := s.Dispatch(unknownAction{})

	assert.Same(t, before, after)
	assert.False(t, called)
}

func TestStore_SubscribersRunInOrder(t *testing.T) {
	s := store.New()

	var order []int
	s.Subscribe(func(prev, next *store.State) { order = append(order, 1) })
	unsub := s.Subscribe(func(prev, next *store.State) { order = append(order, 2) })
	s.Subscribe(func(prev, next *store.State) { order = append(order, 3) })

	s.Dispatch(store.ClearError{})
	unsub()
	s.Dispatch(store.ClearError{})

	assert.Equal(t, []int{1, 2, 3, 1, 3}, order)
}

func TestStore_DispatchHook(t *testing.T) {
	var kinds []store.Kind
	var changes []bool
	s := store.New(store.WithDispatchHook(func(a store.Action, changed bool) {
		kinds = append(kinds, a.Kind())
		changes = append(changes, changed)
	}))

	s.Dispatch(store.SetLoading{Loading: true})
	s.Dispatch(unknownAction{})

	assert.Equal(t, []store.Kind{store.KindSetLoading, "SOMETHING_ELSE"}, kinds)
	assert.Equal(t, []bool{true, false}, changes)
}

// goroutineから同時にDispatchしても数量が失われない
func TestStore_ConcurrentDispatch(t *testing.T) {
	s := store.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(store.AddToCart{Line: line(1, "1", 1)})
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(50), s.State().CartItemCount())
	assert.Equal(t, 1, s.State().Cart.Len())
}

func TestStore_WithInitialState(t *testing.T) {
	initial := apply(store.Initial(), store.AddToCart{Line: line(5, "1", 2)})
	s := store.New(store.WithInitialState(initial))

	assert.Same(t, initial, s.State())
	assert.True(t, s.State().IsInCart(5))
}
