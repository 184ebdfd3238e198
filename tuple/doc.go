// Package tuple provides fixed-arity struct types that hold from one
// up to twenty-six independently typed values, along with a Prepend
// function for every arity that inserts a new first component,
// producing the next tuple size up.
//
// All types and functions except T0 and Prepend0 are generated;
// see generate.go.
package tuple

//go:generate go run generate.go
