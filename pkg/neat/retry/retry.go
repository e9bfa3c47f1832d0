package retry

import (
	"context"
	"errors"
	"time"

	"github.com/ib-77/neat/pkg/neat"
	"github.com/ib-77/neat/pkg/neat/catch"
)

// ErrUnexpectedExit marks an exit from the attempt loop that the attempt
// accounting should make impossible. It is reported as a failure outcome
// so the driver never panics or hangs on an invariant violation.
var ErrUnexpectedExit = errors.New("retry: unexpected exit from attempt loop")

// Backoff selects how the inter-attempt delay grows.
type Backoff string

const (
	// Exponential waits delay * 2^n after attempt n fails, so the first
	// wait is already twice the base delay.
	Exponential Backoff = "exponential"
	// Linear waits delay * n after attempt n fails.
	Linear Backoff = "linear"
)

// Options configures a retry run. The zero value is not used directly;
// Defaults() supplies the documented defaults and functional options
// override individual fields.
type Options struct {
	// MaxRetries is the number of retries after the initial attempt;
	// total attempts = MaxRetries + 1.
	MaxRetries int
	// Delay is the base unit for backoff computation.
	Delay time.Duration
	// Backoff governs inter-attempt delay growth.
	Backoff Backoff
	// ShouldRetry decides whether another attempt is made after a failure.
	// It receives the raw, untransformed failure and the 1-based attempt
	// number. Nil means always retry within the attempt budget.
	ShouldRetry func(failure error, attempt int) bool
	// Transform produces the reported error once retrying stops. It
	// receives the failure of the terminating attempt and that attempt's
	// 1-based number. Nil reports the raw failure.
	Transform neat.AttemptTransformer
}

func Defaults() Options {
	return Options{
		MaxRetries: 3,
		Delay:      time.Second,
		Backoff:    Exponential,
	}
}

type Option func(*Options)

func WithMaxRetries(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.MaxRetries = n
		}
	}
}

func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d >= 0 {
			o.Delay = d
		}
	}
}

func WithBackoff(b Backoff) Option {
	return func(o *Options) {
		o.Backoff = b
	}
}

func WithShouldRetry(p func(failure error, attempt int) bool) Option {
	return func(o *Options) {
		o.ShouldRetry = p
	}
}

func WithTransform(t neat.AttemptTransformer) Option {
	return func(o *Options) {
		o.Transform = t
	}
}

// Do invokes op through catch.Do until it succeeds, the predicate refuses,
// or the attempt budget is spent. The raw failure is kept between attempts;
// the transformer runs once, on termination. Total attempts never exceed
// MaxRetries + 1.
func Do[T any](ctx context.Context, op catch.Operation[T], opts ...Option) neat.Outcome[T] {
	o := Defaults()
	for _, opt := range opts {
		opt(&o)
	}

	total := o.MaxRetries + 1
	for attempt := 1; attempt <= total; attempt++ {
		out := catch.Do(ctx, op)
		if out.IsSuccess() {
			return out
		}

		failure := out.Err()
		lastAttempt := attempt == total
		if lastAttempt || !shouldRetry(o, failure, attempt) {
			return neat.Failure[T](neat.TransformAttempt(failure, o.Transform, attempt))
		}

		if err := wait(ctx, delayFor(o, attempt)); err != nil {
			// ctx ended the wait; retrying stops, the failure that was
			// about to be retried is the one reported
			return neat.Failure[T](neat.TransformAttempt(failure, o.Transform, attempt))
		}
	}

	return neat.Failure[T](ErrUnexpectedExit)
}

// Async runs the whole retry loop concurrently, settling with the final
// outcome.
func Async[T any](ctx context.Context, op catch.Operation[T], opts ...Option) neat.Awaitable[neat.Outcome[T]] {
	return catch.Async(ctx, func(ctx context.Context) (T, error) {
		return Do(ctx, op, opts...).Unpack()
	})
}

func shouldRetry(o Options, failure error, attempt int) bool {
	if o.ShouldRetry == nil {
		return true
	}
	return o.ShouldRetry(failure, attempt)
}

// delayFor computes the wait after attempt n (1-based) fails.
func delayFor(o Options, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	switch o.Backoff {
	case Linear:
		return o.Delay * time.Duration(attempt)
	default:
		shift := uint(attempt)
		if shift > 62 {
			shift = 62
		}
		return o.Delay * time.Duration(1<<shift)
	}
}

// wait is a pure time-based suspension; it polls nothing.
func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
