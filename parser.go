package parc

// Step pairs a parsed value with the state parsing resumes from. It is the
// success payload of every Parser's Result.
type Step[T any] struct {
	Value T
	State State
}

// Parser is an opaque, composable recognizer wrapping a pure state-transition
// function. A Parser value is immutable once constructed; combinators return
// new Parser values rather than mutating the receiver, so a Parser can be
// reused and shared across any number of concurrent runs.
type Parser[T any] struct {
	run      func(State) Result[Step[T]]
	name     string
	override func(*Error) string
}

// NewParser wraps a state-transition function as a Parser. Any total
// function of this type is a valid primitive recognizer.
func NewParser[T any](run func(State) Result[Step[T]]) Parser[T] {
	return Parser[T]{run: run}
}

// Named returns a copy of p carrying a diagnostic label. The name has no
// effect on parsing semantics.
func (p Parser[T]) Named(name string) Parser[T] {
	p.name = name
	return p
}

// Name returns the diagnostic label attached via Named, if any.
func (p Parser[T]) Name() string { return p.name }

// apply runs the transition function against st and substitutes this
// parser's error-message override on failure. Every combinator and Run go
// through apply so the override is honored wherever p's failures surface.
func (p Parser[T]) apply(st State) Result[Step[T]] {
	r := p.run(st)
	if r.err != nil && p.override != nil {
		return Left[Step[T]](r.err.withMessage(p.override(r.err)))
	}
	return r
}

// Run parses input from the start, returning either the parsed value paired
// with the final state or the Error that stopped the parse. Checking that
// the final state's Input is empty is the caller's responsibility.
func (p Parser[T]) Run(input string) Result[Step[T]] {
	return p.apply(NewState(input))
}

// WithError returns a copy of p whose failures report message instead of
// whatever the wrapped parser produced. The failure's Expected list and
// position are preserved, so an outer combinator can give a domain-level
// explanation while retaining the precise failure site.
func (p Parser[T]) WithError(message string) Parser[T] {
	p.override = func(*Error) string { return message }
	return p
}

// WithErrorFn is WithError with the replacement message computed from the
// original Error, enabling contextual messages that mention what was
// expected or where.
func (p Parser[T]) WithErrorFn(fn func(*Error) string) Parser[T] {
	p.override = fn
	return p
}

// Succeed builds a success result whose state has already been advanced past
// consumed. Primitives use it to report a match in one step.
func Succeed[T any](value T, st State, consumed string) Result[Step[T]] {
	return Right(Step[T]{Value: value, State: st.Consume(consumed)})
}

// NewFailure is the raw failure constructor for primitives.
func NewFailure[T any](message string, expected []string, pos Position) Result[Step[T]] {
	return Left[Step[T]](NewError(message, expected, pos))
}

// Fail returns a parser that always fails at the current position with the
// given message and expected alternatives, consuming nothing.
func Fail[T any](message string, expected ...string) Parser[T] {
	return NewParser(func(st State) Result[Step[T]] {
		return NewFailure[T](message, expected, st.Pos)
	})
}
