package wrap

import (
	"context"

	"github.com/ib-77/neat/pkg/neat"
	"github.com/ib-77/neat/pkg/neat/catch"
)

// The Fn family adapts fallible functions of fixed arity into functions
// that return an Outcome instead of an error. Wrapped functions never
// panic and never return a raw error; each invocation is independent, the
// closure holds only fn and the transformers.

func Fn0[T any](fn func(ctx context.Context) (T, error),
	transformers ...neat.Transformer) func(ctx context.Context) neat.Outcome[T] {

	return func(ctx context.Context) neat.Outcome[T] {
		return catch.Do(ctx, fn, transformers...)
	}
}

func Fn1[A, T any](fn func(ctx context.Context, a A) (T, error),
	transformers ...neat.Transformer) func(ctx context.Context, a A) neat.Outcome[T] {

	return func(ctx context.Context, a A) neat.Outcome[T] {
		return catch.Do(ctx, func(ctx context.Context) (T, error) {
			return fn(ctx, a)
		}, transformers...)
	}
}

func Fn2[A, B, T any](fn func(ctx context.Context, a A, b B) (T, error),
	transformers ...neat.Transformer) func(ctx context.Context, a A, b B) neat.Outcome[T] {

	return func(ctx context.Context, a A, b B) neat.Outcome[T] {
		return catch.Do(ctx, func(ctx context.Context) (T, error) {
			return fn(ctx, a, b)
		}, transformers...)
	}
}

func Fn3[A, B, C, T any](fn func(ctx context.Context, a A, b B, c C) (T, error),
	transformers ...neat.Transformer) func(ctx context.Context, a A, b B, c C) neat.Outcome[T] {

	return func(ctx context.Context, a A, b B, c C) neat.Outcome[T] {
		return catch.Do(ctx, func(ctx context.Context) (T, error) {
			return fn(ctx, a, b, c)
		}, transformers...)
	}
}

// Async0 wraps fn into a function that starts the work concurrently and
// returns an awaitable of the Outcome.
func Async0[T any](fn func(ctx context.Context) (T, error),
	transformers ...neat.Transformer) func(ctx context.Context) neat.Awaitable[neat.Outcome[T]] {

	return func(ctx context.Context) neat.Awaitable[neat.Outcome[T]] {
		return catch.Async(ctx, fn, transformers...)
	}
}

func Async1[A, T any](fn func(ctx context.Context, a A) (T, error),
	transformers ...neat.Transformer) func(ctx context.Context, a A) neat.Awaitable[neat.Outcome[T]] {

	return func(ctx context.Context, a A) neat.Awaitable[neat.Outcome[T]] {
		return catch.Async(ctx, func(ctx context.Context) (T, error) {
			return fn(ctx, a)
		}, transformers...)
	}
}
