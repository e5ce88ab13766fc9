/*
Package parc provides the core building blocks for monadic parser combinators:
a disjoint success/failure result type, position-tracked parser state, and the
combinator algebra used to compose recursive-descent parsers over text input.

# Overview

A Parser wraps a single pure state-transition function

	func(State) Result[Step[T]]

which consumes part of the remaining input and either succeeds with a value
and the state parsing resumes from, or fails with an Error pinpointing the
exact line, column, and offset where matching could not proceed. Failure is
an ordinary value carried by Result, never a panic or an out-of-band signal.

The package supplies no concrete grammar and no primitive recognizers.
Primitives are supplied by the caller: any function of the transition type
above, wrapped with NewParser, is a valid primitive. Consume (or Succeed,
which calls it) is the sole sanctioned way for a primitive to declare how
much input it ate, keeping line/column bookkeeping in lockstep with the
cursor.

# Position Tracking

Positions are 1-based for line and column and 0-based for offset. Every
consumption step recomputes the position from the consumed substring; a
newline bumps the line and resets the column to 1. States are immutable
values threaded through the combinator chain, so a parse never aliases or
mutates shared state.

# Combinators

Because Go methods cannot introduce type parameters, the value-transforming
combinators are package-level generic functions:

  - Map applies a pure function to a parser's value.
  - FlatMap sequences a parser with a value-dependent continuation; it is
    the fundamental primitive every other multi-step combinator reduces to.
  - Pure succeeds with a fixed value, consuming nothing.
  - Zip runs two parsers back to back and pairs their values.
  - Bind and BindWith grow a Record (a named-field map) one key at a time.

The algebra is fail-fast: once a sub-parser fails, no later combinator
observes or retries it. Alternation and backtracking are deliberately not
part of this core and belong to a layer built on top of it.

# Sequential Composition

Seq lets multi-step, value-dependent parsing read as flat code instead of
nested FlatMap closures:

	number := parc.Seq[int](func(s *parc.Sequence) any {
		parc.Next(s, literal("("))
		n := parc.Next(s, digits)
		parc.Next(s, literal(")"))
		return n
	})

Each Next call runs one parser and hands back its value; an intermediate
failure short-circuits the whole sequence with that failure, exactly as a
chain of FlatMap calls would.

# Error Reporting

An Error carries a message, the ordered list of expected alternatives, and
the failure position. WithError and WithErrorFn substitute a domain-level
message while preserving where the failure happened and what was expected
there. FormatError renders an Error as a caret-style diagnostic against the
original source text.
*/
package parc
