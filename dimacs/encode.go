package dimacs

import (
	"fmt"
	"io"
)

// EncodeSolution writes the flow currently stored on p.Net in DIMACS solution
// style: an `s <value>` line with the net flow leaving the source, then one
// `f <u> <v> <flow>` line (1-indexed) per arc carrying positive flow. Mirror
// arcs hold non-positive flow and are never emitted.
func EncodeSolution(w io.Writer, p *Problem) {
	fmt.Fprint(w, "c maxflow solution\n")
	fmt.Fprintf(w, "s %d\n", p.Net.OutFlow(p.Source))
	for u := 0; u < p.Net.Order(); u++ {
		for _, a := range p.Net.Arcs(u) {
			if a.Flow > 0 {
				fmt.Fprintf(w, "f %d %d %d\n", u+1, a.To+1, a.Flow)
			}
		}
	}
}
