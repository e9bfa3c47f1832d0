package catch

import (
	"context"

	"github.com/ib-77/neat/pkg/neat"
	"github.com/ib-77/neat/pkg/neat/future"
)

// Operation is a fallible unit of work. Operations carry no arguments;
// close over whatever you need before handing one in.
type Operation[T any] func(ctx context.Context) (T, error)

// Do runs op and converts whatever happens into an Outcome. An error return
// or a panic becomes a failure, passed through the transformers; nothing
// escapes. The call returns without any hidden suspension.
func Do[T any](ctx context.Context, op Operation[T], transformers ...neat.Transformer) (out neat.Outcome[T]) {
	defer func() {
		if r := recover(); r != nil {
			out = neat.Failure[T](neat.Transform(neat.AsError(r), transformers...))
		}
	}()

	v, err := op(ctx)
	if err != nil {
		return neat.Failure[T](neat.Transform(err, transformers...))
	}
	return neat.Success(v)
}

// Await suspends until aw settles and converts the settled result into an
// Outcome. Any neat.Awaitable conformer is accepted, whatever its origin;
// a panicking Await implementation is contained the same way as a
// panicking operation.
func Await[T any](ctx context.Context, aw neat.Awaitable[T], transformers ...neat.Transformer) neat.Outcome[T] {
	return Do(ctx, func(ctx context.Context) (T, error) {
		return aw.Await(ctx)
	}, transformers...)
}

// Async starts op in its own goroutine and returns an awaitable that always
// settles with an Outcome, never with an error. The caller decides when to
// await; the conversion itself already happened by then.
func Async[T any](ctx context.Context, op Operation[T], transformers ...neat.Transformer) neat.Awaitable[neat.Outcome[T]] {
	return future.Go(ctx, func(ctx context.Context) (neat.Outcome[T], error) {
		return Do(ctx, op, transformers...), nil
	})
}
