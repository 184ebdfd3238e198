//go:build ignore

// This program generates tuple_gen.go and prepend_gen.go.
// Invoke it with go generate.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

// maxArity is the largest tuple size. Prepend stops one short of it
// so that every Prepend result is still a representable tuple.
const maxArity = 26

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func main() {
	writeFile("tuple_gen.go", genTuples())
	writeFile("prepend_gen.go", genPrepends())
}

func writeFile(name string, src []byte) {
	formatted, err := format.Source(src)
	if err != nil {
		log.Fatalf("cannot format %s: %v", name, err)
	}
	if err := os.WriteFile(name, formatted, 0o666); err != nil {
		log.Fatal(err)
	}
}

func genTuples() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by generate.go; DO NOT EDIT.\n\npackage tuple\n")
	for n := 1; n <= maxArity; n++ {
		params := typeParams(n)
		fmt.Fprintf(&buf, "\n// T%d is a %d-tuple.\ntype T%d[%s any] struct {\n", n, n, n, params)
		for i := 0; i < n; i++ {
			fmt.Fprintf(&buf, "\t%c %c\n", letters[i], letters[i])
		}
		fmt.Fprintf(&buf, "}\n")
		fmt.Fprintf(&buf, "\n// MkT%d returns a T%d holding the given values.\n", n, n)
		fmt.Fprintf(&buf, "func MkT%d[%s any](%s) T%d[%s] {\n", n, params, args(n), n, params)
		fmt.Fprintf(&buf, "\treturn T%d[%s]{%s}\n}\n", n, params, argNames(n))
	}
	return buf.Bytes()
}

func genPrepends() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by generate.go; DO NOT EDIT.\n\npackage tuple\n")
	for k := 1; k < maxArity; k++ {
		params := typeParams(k)
		fmt.Fprintf(&buf, "\n// Prepend%d inserts v before the components of t.\n", k)
		fmt.Fprintf(&buf, "func Prepend%d[TT, %s any](v TT, t T%d[%s]) T%d[TT, %s] {\n", k, params, k, params, k+1, params)
		fields := make([]string, 0, k+1)
		fields = append(fields, "v")
		for i := 0; i < k; i++ {
			fields = append(fields, fmt.Sprintf("t.%c", letters[i]))
		}
		fmt.Fprintf(&buf, "\treturn T%d[TT, %s]{%s}\n}\n", k+1, params, strings.Join(fields, ", "))
	}
	return buf.Bytes()
}

// typeParams returns "A, B, ..." for the first n letters.
func typeParams(n int) string {
	return strings.Join(strings.Split(letters[:n], ""), ", ")
}

// args returns "a A, b B, ..." for the first n letters.
func args(n int) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("%c %c", letters[i]+'a'-'A', letters[i])
	}
	return strings.Join(parts, ", ")
}

// argNames returns "a, b, ..." for the first n letters.
func argNames(n int) string {
	return strings.Join(strings.Split(strings.ToLower(letters[:n]), ""), ", ")
}
