package tuple

// T0 is the empty tuple.
type T0 struct{}

// Prepend0 returns the 1-tuple holding v.
func Prepend0[TT any](v TT, _ T0) T1[TT] {
	return T1[TT]{v}
}
