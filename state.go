package parc

import (
	"fmt"
	"strings"
)

// Position is a location within the input text. Line and Column are 1-based
// for human-readable diagnostics; Offset counts characters consumed since
// the start of the parse.
type Position struct {
	Line   int
	Column int
	Offset int
}

// StartPosition returns the position of the very first character: line 1,
// column 1, offset 0.
func StartPosition() Position {
	return Position{Line: 1, Column: 1, Offset: 0}
}

// Advance returns the position after consuming the given text. Each newline
// increments Line and resets Column to 1; every other character increments
// Column. Offset grows by one per character regardless of what it is.
// Advancing past the empty string returns p unchanged.
func (p Position) Advance(consumed string) Position {
	for i := 0; i < len(consumed); i++ {
		if consumed[i] == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
		p.Offset++
	}
	return p
}

// String renders the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// State is the remaining input paired with the position of its first
// character. States are immutable values: every consumption step produces a
// fresh State and leaves the old one untouched.
type State struct {
	Input string
	Pos   Position
}

// NewState creates the state a parse starts from: the full input unconsumed
// at line 1, column 1.
func NewState(input string) State {
	return State{Input: input, Pos: StartPosition()}
}

// Consume returns the state after eating text off the front of the input.
// This is the sole primitive by which a parser declares what it consumed;
// slicing Input without going through Consume desynchronizes line/column
// tracking from the real cursor.
func (s State) Consume(text string) State {
	if text == "" {
		return s
	}
	n := len(text)
	if n > len(s.Input) {
		n = len(s.Input)
	}
	return State{Input: s.Input[n:], Pos: s.Pos.Advance(text)}
}

// AdvanceTo re-anchors s against inner, a state already advanced by an inner
// parser. The consumed text is derived from the length difference of the two
// inputs and the position is recomputed from s. Inner parsers may only
// shrink the input from the front; AdvanceTo panics if inner.Input is not a
// suffix of s.Input, since silently continuing would corrupt position
// bookkeeping.
func (s State) AdvanceTo(inner State) State {
	n := len(s.Input) - len(inner.Input)
	if n < 0 || !strings.HasSuffix(s.Input, inner.Input) {
		panic(fmt.Sprintf("parc: inner state input %q is not a suffix of %q", truncate(inner.Input), truncate(s.Input)))
	}
	return s.Consume(s.Input[:n])
}

// truncate keeps panic messages readable for large inputs.
func truncate(s string) string {
	const max = 32
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
