package cartesian

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// A Producer yields a fresh sequence view each time it is called.
//
// Product functions take producers rather than bare sequences because
// every position other than the first must be iterated from the start
// once per value of the position to its left, just as the inner loops
// of nested for loops restart on every outer step. Each producer is
// called exactly once per such activation.
type Producer[T any] func() iter.Seq[T]

// Of returns a Producer over the given values.
func Of[T any](xs ...T) Producer[T] {
	return Slice(xs)
}

// Slice returns a Producer over the elements of xs.
func Slice[T any](xs []T) Producer[T] {
	return func() iter.Seq[T] {
		return slices.Values(xs)
	}
}

// Range returns a Producer over the integers in the half-open
// interval [start, end).
func Range[E constraints.Integer](start, end E) Producer[E] {
	return func() iter.Seq[E] {
		return func(yield func(E) bool) {
			for n := start; n < end; n++ {
				if !yield(n) {
					return
				}
			}
		}
	}
}

// Runes returns a Producer over the runes of s.
func Runes(s string) Producer[rune] {
	return func() iter.Seq[rune] {
		return func(yield func(rune) bool) {
			for _, r := range s {
				if !yield(r) {
					return
				}
			}
		}
	}
}

// Seq wraps an existing sequence as a Producer. The sequence is
// returned as-is on every call, so if it is single-pass the result is
// only usable where a fresh view is demanded at most once: the first
// position of a product that is itself ranged over at most once.
// Sequences that support repeated ranging (such as those returned by
// [slices.Values]) are usable in any position.
func Seq[T any](seq iter.Seq[T]) Producer[T] {
	return func() iter.Seq[T] {
		return seq
	}
}
