package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/testhooks/pkg/labels"
)

// PrintSplit writes the canonical labels of each expression, one per line.
func PrintSplit(out io.Writer, exprs []string) {
	for _, expr := range exprs {
		for _, l := range labels.Split(expr) {
			fmt.Fprintln(out, l)
		}
	}
}

// PrintFirst writes the first canonical label of each expression.
// Expressions without labels produce an empty line.
func PrintFirst(out io.Writer, exprs []string) {
	for _, expr := range exprs {
		fmt.Fprintln(out, labels.First(expr))
	}
}

// CompareLabels reports whether two expressions name the same label.
func CompareLabels(out io.Writer, a, b string) bool {
	eq := labels.Equal(a, b)
	fmt.Fprintln(out, eq)
	return eq
}
