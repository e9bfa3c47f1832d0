package chain

import (
	"context"

	"github.com/ib-77/neat/pkg/neat"
	"github.com/ib-77/neat/pkg/neat/catch"
)

// Chain wraps a neat.Outcome with context to enable fluent chaining
type Chain[T any] struct {
	ctx context.Context
	out neat.Outcome[T]
}

// Start creates a new chain from an existing outcome
func Start[T any](ctx context.Context, out neat.Outcome[T]) Chain[T] {
	return Chain[T]{ctx: ctx, out: out}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, neat.Success(v))
}

// Catch creates a new chain by converting an operation
func Catch[T any](ctx context.Context, op catch.Operation[T], transformers ...neat.Transformer) Chain[T] {
	return Start(ctx, catch.Do(ctx, op, transformers...))
}

// Outcome returns the underlying neat.Outcome
func (c Chain[T]) Outcome() neat.Outcome[T] {
	return c.out
}

// Then composes functions that already return neat.Outcome[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) neat.Outcome[T]) Chain[T] {
	if c.out.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, out: onSuccess(c.ctx, c.out.Value())}
}

// ThenTry composes functions that return (T, error); errors and panics are
// captured via catch.Do
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if c.out.IsFailure() {
		return c
	}
	v := c.out.Value()
	return Chain[T]{ctx: c.ctx, out: catch.Do(c.ctx, func(ctx context.Context) (T, error) {
		return try(ctx, v)
	})}
}

// Map transforms the successful value to a new value of the same type
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if c.out.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, out: neat.Success(onSuccess(c.ctx, c.out.Value()))}
}

// Ensure triggers side effects for success/failure without changing the outcome
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if c.out.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.out.Err())
		}
		return c
	}
	if onSuccess != nil {
		onSuccess(c.ctx, c.out.Value())
	}
	return c
}

// Recover replaces a failure with the outcome of the fallback; successes
// pass through untouched
func (c Chain[T]) Recover(fallback func(ctx context.Context, failure error) neat.Outcome[T]) Chain[T] {
	if c.out.IsSuccess() {
		return c
	}
	return Chain[T]{ctx: c.ctx, out: fallback(c.ctx, c.out.Err())}
}

// Finally collapses the chain to a final value
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
) T {
	if c.out.IsSuccess() {
		return onSuccess(c.ctx, c.out.Value())
	}
	return onFailure(c.ctx, c.out.Err())
}

// Then chains a type-changing function that returns neat.Outcome[U]
func Then[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) neat.Outcome[U]) Chain[U] {
	if c.out.IsFailure() {
		return Chain[U]{ctx: c.ctx, out: neat.FailureFrom[T, U](c.out)}
	}
	return Chain[U]{ctx: c.ctx, out: onSuccess(c.ctx, c.out.Value())}
}

// ThenTry chains a type-changing function that returns (U, error)
func ThenTry[T, U any](c Chain[T], try func(ctx context.Context, t T) (U, error)) Chain[U] {
	if c.out.IsFailure() {
		return Chain[U]{ctx: c.ctx, out: neat.FailureFrom[T, U](c.out)}
	}
	v := c.out.Value()
	return Chain[U]{ctx: c.ctx, out: catch.Do(c.ctx, func(ctx context.Context) (U, error) {
		return try(ctx, v)
	})}
}

// Map chains a pure type-changing transformation
func Map[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) U) Chain[U] {
	if c.out.IsFailure() {
		return Chain[U]{ctx: c.ctx, out: neat.FailureFrom[T, U](c.out)}
	}
	return Chain[U]{ctx: c.ctx, out: neat.Success(onSuccess(c.ctx, c.out.Value()))}
}
