package neat

import (
	"context"
	"time"
)

// Awaitable is any value that can be awaited for a result. Conformance is
// the only requirement; nothing in this module ever checks for a concrete
// future implementation, so deferred values from any source are handled
// uniformly.
type Awaitable[T any] interface {
	// Await blocks until the value settles or ctx is done.
	Await(ctx context.Context) (T, error)
}

// ValueProvider exposes the successful value of an outcome
type ValueProvider[T any] interface {
	// Value returns the successful result value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a value or an error
type WithError[T any] interface {
	ValueProvider[T]
	// Err returns the error if the operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// Transformer converts a raw failure into the error reported to the caller.
// A nil Transformer is identity.
type Transformer func(failure error) error

// AttemptTransformer is the retry-path variant; attempt is 1-based and names
// the attempt whose failure terminated retrying.
type AttemptTransformer func(failure error, attempt int) error
