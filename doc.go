// Package cartesian produces the cartesian product of up to 26
// independently typed sequences as a single lazy sequence of flat
// tuples, generalizing nested for loops into one flat loop.
//
// Each argument to a Product function is a [Producer]: something that
// yields a fresh sequence view on demand. Values are produced one at a
// time as the consumer ranges over the result, so breaking out of the
// loop behaves exactly like breaking out of the equivalent nested
// loops, and infinite sequences work:
//
//	for t := range cartesian.Product3(cartesian.Range(0, 10), cartesian.Range(0, 10), cartesian.Range(0, 10)) {
//		x, y, z := t.A, t.B, t.C
//		volume[x][y][z] = x*y + z
//	}
//
// The last argument varies fastest, the first slowest, matching nested
// loops written in argument order.
package cartesian

//go:generate go run generate.go
