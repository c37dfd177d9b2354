package store

import (
	"log/slog"
	"sync"
)

// Listenerはコミット後に (前の状態, 新しい状態) で呼ばれる。
// Listenerの中からDispatchしないこと（デッドロックする）。
type Listener func(prev, next *State)

// DispatchHookはコミット後にアクションごとに呼ばれる（メトリクス用）。
type DispatchHook func(a Action, changed bool)

type subscription struct {
	id int
	fn Listener
}

// Storeは状態の唯一の置き場所。
// グローバルにせず、必要なところへ明示的に渡す。
type Store struct {
	// Dispatch全体（reduce→commit→通知）を直列化する
	dispatchMu sync.Mutex

	mu        sync.RWMutex
	state     *State
	listeners []subscription
	nextID    int

	hooks  []DispatchHook
	logger *slog.Logger
}

type Option func(*Store)

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithInitialState(st *State) Option {
	return func(s *Store) {
		if st != nil {
			s.state = st
		}
	}
}

func WithDispatchHook(h DispatchHook) Option {
	return func(s *Store) {
		if h != nil {
			s.hooks = append(s.hooks, h)
		}
	}
}

// DI
func New(opts ...Option) *Store {
	s := &Store{
		state:  Initial(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// 現在のスナップショット
func (s *Store) State() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatchはアクションを適用して新しい状態を返す。
// 購読者（永続化など）は戻る前に同期的に呼ばれる。
func (s *Store) Dispatch(a Action) *State {
	if a == nil {
		return s.State()
	}

	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	prev := s.state
	next := Reduce(prev, a)
	s.state = next
	listeners := make([]subscription, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	changed := next != prev
	s.logger.Debug("dispatch", slog.String("kind", string(a.Kind())), slog.Bool("changed", changed))

	for _, h := range s.hooks {
		h(a, changed)
	}

	//変更なし（知らないアクション）なら通知しない
	if !changed {
		return next
	}
	for _, l := range listeners {
		l.fn(prev, next)
	}
	return next
}

// Subscribeは購読を登録し、解除関数を返す
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, l := range s.listeners {
				if l.id == id {
					s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}
