package parc

import "fmt"

// Sequence is the driver context threaded through a Seq step function. It
// holds the state the next step runs from.
type Sequence struct {
	state State
}

// State returns the state the next step would run from.
func (s *Sequence) State() State { return s.state }

// seqFailure carries a parse failure out of a step function. The Seq driver
// recovers it and turns it back into an ordinary Left result, so the panic
// never escapes the composite parser.
type seqFailure struct {
	err *Error
}

// Next runs p from the sequence's current state and returns its value,
// advancing the sequence past whatever p consumed. A failure unwinds the
// entire step function immediately; no later step runs.
func Next[A any](s *Sequence, p Parser[A]) A {
	r := p.apply(s.state)
	if r.err != nil {
		panic(seqFailure{err: r.err})
	}
	s.state = r.value.State
	return r.value.Value
}

// Seq composes dependent parsing steps written as flat, linear code. The
// step function calls Next once per parser, using earlier values to decide
// later steps, and finally returns either the composite value (a T) or a
// Parser[T] to be run from the current state as-is. Returning anything else
// is a programming error and panics.
//
// Seq is purely sequencing sugar over FlatMap: an intermediate failure
// short-circuits the whole sequence with that failure, and no new failure
// semantics are introduced.
func Seq[T any](f func(*Sequence) any) Parser[T] {
	return NewParser(func(st State) (res Result[Step[T]]) {
		s := &Sequence{state: st}
		defer func() {
			if x := recover(); x != nil {
				fail, ok := x.(seqFailure)
				if !ok {
					panic(x)
				}
				res = Left[Step[T]](fail.err)
			}
		}()
		switch out := f(s).(type) {
		case Parser[T]:
			return out.apply(s.state)
		case T:
			return Right(Step[T]{Value: out, State: s.state})
		default:
			panic(fmt.Sprintf("parc: sequence step function returned %T, want %T or Parser of it", out, *new(T)))
		}
	})
}
