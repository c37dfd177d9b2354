// Package task は遅延付き・キャンセル可能な非同期処理（結果は1つ）。
package task

import (
	"context"
	"time"
)

// Taskは1回だけ実行される非同期処理
type Task[T any] struct {
	done   chan struct{}
	cancel context.CancelFunc

	val T
	err error
}

// Runはdelay待ってからfnを実行する。
// delay中にctxがキャンセルされたらfnは呼ばれず、errはctx.Err()になる。
func Run[T any](ctx context.Context, delay time.Duration, fn func(ctx context.Context) (T, error)) *Task[T] {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task[T]{
		done:   make(chan struct{}),
		cancel: cancel,
	}

	go func() {
		defer close(t.done)
		defer cancel()

		if delay > 0 {
			timer := time.NewTimer(delay)
			defer timer.Stop()

			select {
			case <-ctx.Done():
				t.err = ctx.Err()
				return
			case <-timer.C:
			}
		}

		if err := ctx.Err(); err != nil {
			t.err = err
			return
		}
		t.val, t.err = fn(ctx)
	}()

	return t
}

// 呼び出し元がいなくなったときに止める
func (t *Task[T]) Cancel() {
	t.cancel()
}

func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Waitは結果を待つ。ctxが先に終わればctx.Err()を返す（タスク自体は止めない）。
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.val, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
