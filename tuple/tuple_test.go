package tuple_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/seqkit/cartesian/tuple"
)

func TestPrependEmpty(t *testing.T) {
	qt.Assert(t, qt.Equals(tuple.Prepend0("x", tuple.T0{}), tuple.MkT1("x")))
}

func TestPrependHeterogeneous(t *testing.T) {
	t2 := tuple.MkT2(1, true)
	t3 := tuple.Prepend2("x", t2)
	qt.Assert(t, qt.Equals(t3, tuple.MkT3("x", 1, true)))

	t4 := tuple.Prepend3(2.5, t3)
	qt.Assert(t, qt.Equals(t4, tuple.MkT4(2.5, "x", 1, true)))
}

func TestPrependRoundTrip(t *testing.T) {
	// Prepending a value and then dropping the first component
	// must recover the original tuple exactly.
	orig := tuple.MkT3("a", 42, 'b')
	got := tuple.Prepend3(true, orig)
	qt.Assert(t, qt.Equals(got.A, true))
	qt.Assert(t, qt.Equals(tuple.MkT3(got.B, got.C, got.D), orig))
}

func TestPrependMaxArity(t *testing.T) {
	t25 := tuple.MkT25(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25)
	t26 := tuple.Prepend25(0, t25)
	qt.Assert(t, qt.Equals(t26, tuple.MkT26(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25)))
	qt.Assert(t, qt.Equals(tuple.MkT25(
		t26.B, t26.C, t26.D, t26.E, t26.F, t26.G, t26.H, t26.I, t26.J, t26.K,
		t26.L, t26.M, t26.N, t26.O, t26.P, t26.Q, t26.R, t26.S, t26.T, t26.U,
		t26.V, t26.W, t26.X, t26.Y, t26.Z,
	), t25))
}

var prependSink tuple.T3[int, int, int]

func TestPrependAllocs(t *testing.T) {
	t2 := tuple.MkT2(1, 2)
	allocs := testing.AllocsPerRun(100, func() {
		prependSink = tuple.Prepend2(0, t2)
	})
	qt.Assert(t, qt.Equals(allocs, 0.0))
}
