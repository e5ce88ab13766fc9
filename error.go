package parc

import (
	"fmt"
	"strings"
)

// Error is a parse failure at a specific source position. Message is a
// human-readable description of why matching stopped; Expected lists, in
// order, the alternatives that would have been accepted there. An Error is
// immutable once constructed.
type Error struct {
	Message  string
	Expected []string
	Pos      Position
}

// NewError creates an Error at the given position.
func NewError(message string, expected []string, pos Position) *Error {
	return &Error{Message: message, Expected: expected, Pos: pos}
}

// Error implements the standard error interface so parse failures can flow
// through ordinary error plumbing.
func (e *Error) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return fmt.Sprintf("%s: %s (expected %s)", e.Pos, e.Message, strings.Join(e.Expected, ", "))
}

// withMessage returns a copy of e with the message replaced. Expected and
// Pos carry over untouched: an override changes why, never where or what
// was expected.
func (e *Error) withMessage(message string) *Error {
	return &Error{Message: message, Expected: e.Expected, Pos: e.Pos}
}
