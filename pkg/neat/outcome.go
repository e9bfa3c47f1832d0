package neat

import (
	"time"

	"github.com/google/uuid"
)

// Outcome holds exactly one of a success value or a failure error.
// Success and failure are tracked by position, not by value identity:
// a successful operation whose value is the zero value of T is still a
// success, never confused with a failure.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
	hasValue  bool
}

func Success[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		hasValue:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T any](err error) Outcome[T] {
	return Outcome[T]{
		err:       err,
		isSuccess: false,
		hasValue:  false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailureFrom carries a failure across a type change, keeping identity
// and creation time of the source outcome.
func FailureFrom[In, Out any](from Outcome[In]) Outcome[Out] {
	return Outcome[Out]{
		err:       from.err,
		isSuccess: false,
		hasValue:  false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (o Outcome[T]) Value() T {
	return o.value
}

func (o Outcome[T]) Err() error {
	return o.err
}

func (o Outcome[T]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[T]) IsFailure() bool {
	return !o.isSuccess
}

func (o Outcome[T]) HasValue() bool {
	return o.hasValue
}

func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}

func (o Outcome[T]) IsEmpty() bool {
	return o.err == nil && !o.isSuccess
}

// Unpack collapses the outcome back into the conventional two-value form.
func (o Outcome[T]) Unpack() (T, error) {
	return o.value, o.err
}
