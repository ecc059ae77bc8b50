package dimacs_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/maxflow/dimacs"
	"github.com/katalvlaran/maxflow/pushrelabel"
)

// ExampleDecode parses a DIMACS problem and solves it.
func ExampleDecode() {
	const problem = `c two disjoint paths
p max 4 4
n 1 s
n 4 t
a 1 2 10
a 1 3 10
a 2 4 10
a 3 4 10
`
	p, err := dimacs.Decode(strings.NewReader(problem))
	if err != nil {
		panic(err)
	}

	fmt.Println(pushrelabel.New(p.Net).MaxFlow(p.Source, p.Sink))
	// Output:
	// 20
}

// ExampleEncodeSolution writes a solved problem back out in solution form.
func ExampleEncodeSolution() {
	p, err := dimacs.Decode(strings.NewReader("p max 2 1\nn 1 s\nn 2 t\na 1 2 5\n"))
	if err != nil {
		panic(err)
	}
	pushrelabel.New(p.Net).MaxFlow(p.Source, p.Sink)

	dimacs.EncodeSolution(os.Stdout, p)
	// Output:
	// c maxflow solution
	// s 5
	// f 1 2 5
}
