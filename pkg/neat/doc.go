// Package neat defines the Outcome value type and the shared contracts used
// by the converter, wrapper, batch and retry packages. An Outcome replaces
// thrown/propagated errors with an explicit two-slot value: exactly one of
// the value slot and the error slot is meaningful.
//
// Highlights:
// - Success/Failure: construct Outcome[T]
// - Awaitable: capability interface for deferred values of any origin
// - Transformer/AttemptTransformer: caller-supplied error conversion
// - Transform/TransformAttempt: transformer application with panic containment
// - PanicError/TransformFailure: failure wrappers kept pattern-matchable
package neat
