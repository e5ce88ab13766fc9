package parc

// Pure returns a parser that always succeeds with value, consuming nothing.
// It is the identity for sequencing.
func Pure[T any](value T) Parser[T] {
	return NewParser(func(st State) Result[Step[T]] {
		return Right(Step[T]{Value: value, State: st})
	})
}

// Map runs p and applies f to its value on success, leaving the resulting
// state untouched. Failures propagate unchanged. f must be total over the
// success-value domain: a panicking f is a caller programming error and is
// not caught.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return NewParser(func(st State) Result[Step[B]] {
		r := p.apply(st)
		if r.err != nil {
			return Left[Step[B]](r.err)
		}
		return Right(Step[B]{Value: f(r.value.Value), State: r.value.State})
	})
}

// FlatMap runs p, then feeds its value to f to obtain the parser that
// continues from p's resulting state. A failure of p short-circuits without
// invoking f. This is the fundamental sequencing primitive: every other
// multi-step combinator reduces to chained FlatMap calls.
func FlatMap[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return NewParser(func(st State) Result[Step[B]] {
		r := p.apply(st)
		if r.err != nil {
			return Left[Step[B]](r.err)
		}
		return f(r.value.Value).apply(r.value.State)
	})
}

// Pair holds the two values produced by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip runs a, then b against a's resulting state, pairing both values with
// the final state. The first failure wins; there is no backtracking to
// retry alternatives.
func Zip[A, B any](a Parser[A], b Parser[B]) Parser[Pair[A, B]] {
	return FlatMap(a, func(av A) Parser[Pair[A, B]] {
		return Map(b, func(bv B) Pair[A, B] {
			return Pair[A, B]{First: av, Second: bv}
		})
	})
}

// Record is a named-field result grown incrementally by Bind and BindWith.
type Record = map[string]any

// Bind runs p to get a record, then q, merging q's value into a copy of the
// record under key. The input record is never mutated.
func Bind[V any](p Parser[Record], key string, q Parser[V]) Parser[Record] {
	return BindWith(p, key, func(Record) Parser[V] { return q })
}

// BindWith is Bind with the field parser chosen from the record built so
// far, allowing later fields to depend on earlier ones.
func BindWith[V any](p Parser[Record], key string, f func(Record) Parser[V]) Parser[Record] {
	return FlatMap(p, func(rec Record) Parser[Record] {
		return Map(f(rec), func(v V) Record {
			merged := make(Record, len(rec)+1)
			for k, val := range rec {
				merged[k] = val
			}
			merged[key] = v
			return merged
		})
	})
}
