package cartesian_test

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/seqkit/cartesian"
	"github.com/seqkit/cartesian/tuple"
)

func TestTwoCombination(t *testing.T) {
	var acc strings.Builder
	for p := range cartesian.Product2(cartesian.Range(0, 2), cartesian.Runes("xy")) {
		fmt.Fprintf(&acc, "%d%c ", p.A, p.B)
	}
	qt.Assert(t, qt.Equals(acc.String(), "0x 0y 1x 1y "))
}

func TestBinaryNumbers(t *testing.T) {
	var acc strings.Builder
	r := cartesian.Range(0, 2)
	v := cartesian.Of(0, 1)
	s := cartesian.Of("0", "1")
	for p := range cartesian.Product3(r, v, s) {
		fmt.Fprintf(&acc, "%d%d%s ", p.A, p.B, p.C)
	}
	qt.Assert(t, qt.Equals(acc.String(), "000 001 010 011 100 101 110 111 "))
}

func TestSingleProducer(t *testing.T) {
	// A single producer passes through untupled. The trailing
	// comma is ordinary call syntax and changes nothing.
	got := slices.Collect(cartesian.Product1(
		cartesian.Range(0, 1),
	))
	qt.Assert(t, qt.DeepEquals(got, []int{0}))
}

var countTests = []struct {
	l0, l1, l2 int
}{
	{2, 3, 4},
	{1, 1, 1},
	{0, 3, 4},
	{2, 0, 4},
	{2, 3, 0},
	{0, 0, 0},
}

func TestProductCounts(t *testing.T) {
	for _, test := range countTests {
		t.Run(fmt.Sprintf("%dx%dx%d", test.l0, test.l1, test.l2), func(t *testing.T) {
			n := 0
			for range cartesian.Product3(
				cartesian.Range(0, test.l0),
				cartesian.Range(0, test.l1),
				cartesian.Range(0, test.l2),
			) {
				n++
			}
			qt.Assert(t, qt.Equals(n, test.l0*test.l1*test.l2))
		})
	}
}

func TestOrderMatchesNestedLoops(t *testing.T) {
	got := slices.Collect(cartesian.Product3(
		cartesian.Range(0, 2),
		cartesian.Range(0, 3),
		cartesian.Range(0, 2),
	))
	var want []tuple.T3[int, int, int]
	for a := 0; a < 2; a++ {
		for b := 0; b < 3; b++ {
			for c := 0; c < 2; c++ {
				want = append(want, tuple.MkT3(a, b, c))
			}
		}
	}
	qt.Assert(t, qt.DeepEquals(got, want))
}

func TestProduct4Order(t *testing.T) {
	bit := cartesian.Of(0, 1)
	got := slices.Collect(cartesian.Product4(bit, bit, bit, bit))
	var want []tuple.T4[int, int, int, int]
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			for c := 0; c < 2; c++ {
				for d := 0; d < 2; d++ {
					want = append(want, tuple.MkT4(a, b, c, d))
				}
			}
		}
	}
	qt.Assert(t, qt.DeepEquals(got, want))
}

// naturals is an infinite sequence; only early break can end it.
func naturals() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

func TestEarlyBreak(t *testing.T) {
	inner := 0
	p := cartesian.Producer[int](func() iter.Seq[int] {
		inner++
		return slices.Values([]int{0, 1})
	})
	var got []tuple.T2[int, int]
	for v := range cartesian.Product2(cartesian.Seq(naturals()), p) {
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}
	qt.Assert(t, qt.DeepEquals(got, []tuple.T2[int, int]{
		tuple.MkT2(0, 0),
		tuple.MkT2(0, 1),
		tuple.MkT2(1, 0),
	}))
	// The inner producer restarts once per outer value actually
	// consumed, and no further.
	qt.Assert(t, qt.Equals(inner, 2))
}

func TestSinglePassOuter(t *testing.T) {
	// A one-shot sequence is fine in the outermost position: it is
	// instantiated exactly once per ranging of the product.
	xs := []int{0, 1}
	i := 0
	oneShot := iter.Seq[int](func(yield func(int) bool) {
		for ; i < len(xs); i++ {
			if !yield(xs[i]) {
				return
			}
		}
	})
	got := slices.Collect(cartesian.Product2(cartesian.Seq(oneShot), cartesian.Of("a")))
	qt.Assert(t, qt.DeepEquals(got, []tuple.T2[int, string]{
		tuple.MkT2(0, "a"),
		tuple.MkT2(1, "a"),
	}))
}

func TestReferenceElements(t *testing.T) {
	// Iterating by reference yields the same combinations as
	// iterating by value.
	xs := []int{1, 2}
	ptrs := make([]*int, len(xs))
	for i := range xs {
		ptrs[i] = &xs[i]
	}
	var got []tuple.T2[int, rune]
	for p := range cartesian.Product2(cartesian.Slice(ptrs), cartesian.Runes("ab")) {
		got = append(got, tuple.MkT2(*p.A, p.B))
	}
	want := slices.Collect(cartesian.Product2(cartesian.Slice(xs), cartesian.Runes("ab")))
	qt.Assert(t, qt.DeepEquals(got, want))
}

func TestMaxProducers(t *testing.T) {
	got := slices.Collect(cartesian.Product26(
		cartesian.Of(1), cartesian.Of(2), cartesian.Of(3), cartesian.Of(4),
		cartesian.Of(5), cartesian.Of(6), cartesian.Of(7), cartesian.Of(8),
		cartesian.Of(9), cartesian.Of(10), cartesian.Of(11), cartesian.Of(12),
		cartesian.Of(13), cartesian.Of(14), cartesian.Of(15), cartesian.Of(16),
		cartesian.Of(17), cartesian.Of(18), cartesian.Of(19), cartesian.Of(20),
		cartesian.Of(21), cartesian.Of(22), cartesian.Of(23), cartesian.Of(24),
		cartesian.Of(25), cartesian.Of(26),
	))
	qt.Assert(t, qt.Equals(len(got), 1))
	qt.Assert(t, qt.Equals(got[0], tuple.MkT26(
		1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13,
		14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26,
	)))
}

func BenchmarkProduct3(b *testing.B) {
	for range b.N {
		for range cartesian.Product3(cartesian.Range(0, 10), cartesian.Range(0, 10), cartesian.Range(0, 10)) {
		}
	}
}

func BenchmarkProductSetup(b *testing.B) {
	for range b.N {
		for range cartesian.Product2(cartesian.Seq(naturals()), cartesian.Range(0, 2)) {
			break
		}
	}
}
