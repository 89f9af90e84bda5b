// Package async provides a single-assignment result type for operations that complete out of band.
package async

import (
	"context"
	"sync"
)

// Future результат асинхронной операции. Завершается ровно один раз:
// значением (Resolve) или ошибкой (Reject).
type Future[T any] struct {
	value T
	err   error
	done  chan struct{}
	once  sync.Once
}

// NewFuture creates a pending future.
func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolved returns a future already completed with v.
func Resolved[T any](v T) *Future[T] {
	f := NewFuture[T]()
	f.Resolve(v)
	return f
}

// Rejected returns a future already completed with err.
func Rejected[T any](err error) *Future[T] {
	f := NewFuture[T]()
	f.Reject(err)
	return f
}

// Go запускает fn в отдельной горутине и возвращает future с ее результатом.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f := NewFuture[T]()
	go func() {
		v, err := fn(ctx)
		f.complete(v, err)
	}()
	return f
}

// Resolve завершает future значением. Возвращает false, если future уже завершен.
func (f *Future[T]) Resolve(v T) bool {
	return f.complete(v, nil)
}

// Reject завершает future ошибкой. Возвращает false, если future уже завершен.
func (f *Future[T]) Reject(err error) bool {
	var zero T
	return f.complete(zero, err)
}

func (f *Future[T]) complete(v T, err error) bool {
	completed := false
	f.once.Do(func() {
		f.value = v
		f.err = err
		completed = true
		close(f.done)
	})
	return completed
}

// Done returns a channel closed on completion.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Ready reports whether the future has completed.
func (f *Future[T]) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Wait блокируется до завершения future или отмены ctx.
// Отмена ctx не завершает сам future.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
