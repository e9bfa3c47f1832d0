package future

import (
	"context"
	"sync"

	"github.com/ib-77/neat/pkg/neat"
)

// Future is a deferred (T, error) pair settled exactly once. It satisfies
// neat.Awaitable[T].
type Future[T any] struct {
	settled  chan struct{}
	settleIt sync.Once
	value    T
	err      error
}

// New creates an unsettled future together with its resolve and reject
// functions. Only the first settle call wins; later calls are ignored.
func New[T any]() (f *Future[T], resolve func(T), reject func(error)) {
	f = &Future[T]{settled: make(chan struct{})}
	resolve = func(v T) {
		f.settle(func() { f.value = v })
	}
	reject = func(err error) {
		f.settle(func() { f.err = err })
	}
	return f, resolve, reject
}

// Go runs fn in its own goroutine and returns a future settled with its
// result. A panicking fn rejects the future instead of crashing the
// goroutine; a non-error panic value is wrapped in neat.PanicError.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f, resolve, reject := New[T]()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				reject(neat.AsError(r))
			}
		}()

		v, err := fn(ctx)
		if err != nil {
			reject(err)
			return
		}
		resolve(v)
	}()

	return f
}

// Resolved returns an already-settled successful future.
func Resolved[T any](v T) *Future[T] {
	f, resolve, _ := New[T]()
	resolve(v)
	return f
}

// Rejected returns an already-settled failed future.
func Rejected[T any](err error) *Future[T] {
	f, _, reject := New[T]()
	reject(err)
	return f
}

func (f *Future[T]) settle(assign func()) {
	f.settleIt.Do(func() {
		assign()
		close(f.settled)
	})
}

// Await blocks until the future settles or ctx is done. A done context
// returns the zero value and ctx.Err().
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.settled:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done exposes the settle signal for callers that select over channels.
func (f *Future[T]) Done() <-chan struct{} {
	return f.settled
}
