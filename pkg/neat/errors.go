package neat

import "fmt"

// PanicError wraps a value recovered from a panicking operation. The raw
// panic value is kept uncoerced so sentinel panics stay inspectable.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic recovered: %v", e.Value)
}

// TransformFailure reports that a transformer itself failed while it was
// processing an operation failure. Primary is the original failure,
// Secondary is the transformer's own failure. Both stay reachable through
// Unwrap, so errors.Is/As and Errors work on either leg.
type TransformFailure struct {
	Primary   error
	Secondary error
}

func (e *TransformFailure) Error() string {
	return fmt.Sprintf("transform failed: %v (original: %v)", e.Secondary, e.Primary)
}

func (e *TransformFailure) Unwrap() []error {
	return []error{e.Primary, e.Secondary}
}
