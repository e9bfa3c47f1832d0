package neat

// Transform applies transformers to a raw failure, in order. A panicking
// transformer never escapes: the chain stops and the result is a
// TransformFailure bundling the failure being transformed with the
// transformer's own failure.
func Transform(failure error, transformers ...Transformer) error {
	out := failure
	for _, t := range transformers {
		if t == nil {
			continue
		}
		transformed, tErr := safeTransform(out, t)
		if tErr != nil {
			return &TransformFailure{Primary: out, Secondary: tErr}
		}
		if transformed != nil {
			out = transformed
		}
	}
	return out
}

// TransformAttempt is the retry-path variant of Transform.
func TransformAttempt(failure error, t AttemptTransformer, attempt int) error {
	if t == nil {
		return failure
	}
	return Transform(failure, func(err error) error {
		return t(err, attempt)
	})
}

func safeTransform(failure error, t Transformer) (transformed error, tErr error) {
	defer func() {
		if r := recover(); r != nil {
			transformed = nil
			tErr = AsError(r)
		}
	}()
	return t(failure), nil
}

// AsError converts a recovered panic value into an error. Error values pass
// through untouched; anything else is wrapped in PanicError with the raw
// value preserved.
func AsError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return &PanicError{Value: v}
}
