//go:build ignore

// This program generates product_gen.go. Invoke it with go generate.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

// maxProducers matches the largest tuple arity in the tuple package.
const maxProducers = 26

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func main() {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by generate.go; DO NOT EDIT.\n\npackage cartesian\n\n")
	fmt.Fprintf(&buf, "import (\n\t\"iter\"\n\n\t\"github.com/seqkit/cartesian/tuple\"\n)\n")
	for n := 3; n <= maxProducers; n++ {
		genProduct(&buf, n)
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("cannot format product_gen.go: %v", err)
	}
	if err := os.WriteFile("product_gen.go", formatted, 0o666); err != nil {
		log.Fatal(err)
	}
}

func genProduct(buf *bytes.Buffer, n int) {
	params := typeParams(0, n)
	tail := typeParams(1, n)
	plist := make([]string, n)
	targs := make([]string, n-1)
	for i := 0; i < n; i++ {
		plist[i] = fmt.Sprintf("p%d Producer[%c]", i, letters[i])
		if i > 0 {
			targs[i-1] = fmt.Sprintf("p%d", i)
		}
	}
	fmt.Fprintf(buf, "\n// Product%d returns the cartesian product of %d producers as a lazy\n", n, n)
	fmt.Fprintf(buf, "// sequence of flat %d-tuples; p0 varies slowest and p%d fastest, as\n", n, n-1)
	fmt.Fprintf(buf, "// in %d nested loops written in argument order.\n", n)
	fmt.Fprintf(buf, "func Product%d[%s any](%s) iter.Seq[tuple.T%d[%s]] {\n", n, params, strings.Join(plist, ", "), n, params)
	fmt.Fprintf(buf, "\tvar rest Producer[tuple.T%d[%s]] = func() iter.Seq[tuple.T%d[%s]] {\n", n-1, tail, n-1, tail)
	fmt.Fprintf(buf, "\t\treturn Product%d(%s)\n\t}\n", n-1, strings.Join(targs, ", "))
	fmt.Fprintf(buf, "\treturn mapSeq(Product2(p0, rest), func(p tuple.T2[A, tuple.T%d[%s]]) tuple.T%d[%s] {\n", n-1, tail, n, params)
	fmt.Fprintf(buf, "\t\treturn tuple.Prepend%d(p.A, p.B)\n\t})\n}\n", n-1)
}

// typeParams returns "A, B, ..." for letters i through n-1.
func typeParams(i, n int) string {
	return strings.Join(strings.Split(letters[i:n], ""), ", ")
}
