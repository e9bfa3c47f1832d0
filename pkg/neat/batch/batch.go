package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/neat/pkg/neat"
	"github.com/ib-77/neat/pkg/neat/catch"
)

// Batch holds the settled outcomes of a group of operations as two
// index-aligned slices. For every input index exactly one of the two is
// set: Results[i] when operation i succeeded, Errors[i] when it failed;
// the other stays nil.
//
// When no operation succeeded, Results as a whole is nil rather than a
// slice of nil entries; Errors collapses the same way when nothing failed.
// A mixed batch therefore has both slices at full input length with nil
// holes, while a uniform batch reports the unused side as absent.
type Batch[T any] struct {
	Results []*T
	Errors  []error
}

func (b Batch[T]) SuccessCount() int {
	n := 0
	for _, r := range b.Results {
		if r != nil {
			n++
		}
	}
	return n
}

func (b Batch[T]) FailureCount() int {
	n := 0
	for _, e := range b.Errors {
		if e != nil {
			n++
		}
	}
	return n
}

func (b Batch[T]) AllSucceeded() bool {
	return b.Errors == nil
}

func (b Batch[T]) AllFailed() bool {
	return b.Results == nil
}

// All starts every operation concurrently and waits until each one has
// settled. A failing operation never aborts its siblings; per-operation
// capture follows catch.Do, so panics are contained and transformers
// applied per failure.
func All[T any](ctx context.Context, ops []catch.Operation[T], transformers ...neat.Transformer) Batch[T] {
	outcomes := make([]neat.Outcome[T], len(ops))

	g, ctx := errgroup.WithContext(ctx)
	for i, op := range ops {
		i, op := i, op
		g.Go(func() error {
			outcomes[i] = catch.Do(ctx, op, transformers...)
			return nil
		})
	}
	_ = g.Wait() // goroutines only record outcomes, they never error

	return assemble(outcomes)
}

// Settle collects already-started awaitables the same way All collects
// operations. Input order defines index correspondence regardless of
// settle order.
func Settle[T any](ctx context.Context, aws []neat.Awaitable[T], transformers ...neat.Transformer) Batch[T] {
	outcomes := make([]neat.Outcome[T], len(aws))

	g, ctx := errgroup.WithContext(ctx)
	for i, aw := range aws {
		i, aw := i, aw
		g.Go(func() error {
			outcomes[i] = catch.Await(ctx, aw, transformers...)
			return nil
		})
	}
	_ = g.Wait()

	return assemble(outcomes)
}

func assemble[T any](outcomes []neat.Outcome[T]) Batch[T] {
	results := make([]*T, len(outcomes))
	errs := make([]error, len(outcomes))

	succeeded, failed := 0, 0
	for i, out := range outcomes {
		if out.IsSuccess() {
			v := out.Value()
			results[i] = &v
			succeeded++
		} else {
			errs[i] = out.Err()
			failed++
		}
	}

	// explicit population counts; an empty input must not be confused
	// with a populated-but-all-failed batch
	b := Batch[T]{Results: results, Errors: errs}
	if succeeded == 0 {
		b.Results = nil
	}
	if failed == 0 {
		b.Errors = nil
	}
	return b
}
