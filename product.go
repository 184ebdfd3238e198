package cartesian

import (
	"iter"

	"github.com/seqkit/cartesian/tuple"
)

// Product1 returns p's own sequence: the product of a single producer
// is plain iteration, with no tupling.
func Product1[A any](p Producer[A]) iter.Seq[A] {
	return p()
}

// Product2 returns the pairwise product of pa and pb: for each value
// of pa's sequence, every value of a fresh pb sequence is paired with
// it, in order. pa is instantiated once per ranging of the result,
// pb once per value of pa.
func Product2[A, B any](pa Producer[A], pb Producer[B]) iter.Seq[tuple.T2[A, B]] {
	return func(yield func(tuple.T2[A, B]) bool) {
		for a := range pa() {
			for b := range pb() {
				if !yield(tuple.MkT2(a, b)) {
					return
				}
			}
		}
	}
}

// mapSeq returns the sequence of f applied to each value of seq.
func mapSeq[F, T any](seq iter.Seq[F], f func(F) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}
