package parc

// Result is a container holding either a success value or a parse error.
// Exactly one variant is populated; there is no implicit conversion between
// them. Failed parses travel up the combinator chain as Left values, never
// as panics.
type Result[T any] struct {
	value T
	err   *Error
}

// Right creates a success result holding value.
func Right[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Left creates a failure result holding err.
func Left[T any](err *Error) Result[T] {
	return Result[T]{err: err}
}

// IsRight reports whether r holds a success value.
func (r Result[T]) IsRight() bool { return r.err == nil }

// IsLeft reports whether r holds a failure.
func (r Result[T]) IsLeft() bool { return r.err != nil }

// Match performs exhaustive case analysis on r, invoking exactly one of the
// two branches and returning its result. It is the only way to extract the
// payload from a Result.
func Match[T, R any](r Result[T], onLeft func(*Error) R, onRight func(T) R) R {
	if r.err != nil {
		return onLeft(r.err)
	}
	return onRight(r.value)
}
