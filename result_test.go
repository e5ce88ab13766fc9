package parc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultVariants(t *testing.T) {
	t.Parallel()

	t.Run("right holds a value", func(t *testing.T) {
		r := Right(42)
		assert.True(t, r.IsRight())
		assert.False(t, r.IsLeft())
	})

	t.Run("left holds an error", func(t *testing.T) {
		r := Left[int](NewError("boom", nil, StartPosition()))
		assert.True(t, r.IsLeft())
		assert.False(t, r.IsRight())
	})
}

func TestResultMatch(t *testing.T) {
	t.Parallel()

	t.Run("right invokes only the right branch", func(t *testing.T) {
		leftCalls, rightCalls := 0, 0

		got := Match(Right("value"),
			func(e *Error) string { leftCalls++; return e.Message },
			func(v string) string { rightCalls++; return v },
		)

		assert.Equal(t, "value", got)
		assert.Equal(t, 0, leftCalls)
		assert.Equal(t, 1, rightCalls)
	})

	t.Run("left invokes only the left branch", func(t *testing.T) {
		leftCalls, rightCalls := 0, 0
		perr := NewError("unexpected token", []string{"digit"}, Position{Line: 2, Column: 5, Offset: 10})

		got := Match(Left[string](perr),
			func(e *Error) string { leftCalls++; return e.Message },
			func(v string) string { rightCalls++; return v },
		)

		assert.Equal(t, "unexpected token", got)
		assert.Equal(t, 1, leftCalls)
		assert.Equal(t, 0, rightCalls)
	})

	t.Run("branches may change the result type", func(t *testing.T) {
		got := Match(Right(21),
			func(*Error) []int { return nil },
			func(v int) []int { return []int{v, v} },
		)
		assert.Equal(t, []int{21, 21}, got)
	})
}

func TestErrorInterface(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "message only",
			err:  NewError("unexpected end of input", nil, Position{Line: 3, Column: 7, Offset: 30}),
			want: "3:7: unexpected end of input",
		},
		{
			name: "with expected alternatives",
			err:  NewError("unexpected token", []string{"number", "string"}, Position{Line: 1, Column: 9, Offset: 8}),
			want: "1:9: unexpected token (expected number, string)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}
