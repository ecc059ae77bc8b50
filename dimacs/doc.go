// Package dimacs reads and writes flow networks in the line-oriented DIMACS
// maximum-flow format, bridging text input and the 0-indexed core packages.
//
// The format is line-oriented; the first field of each line selects its kind:
//
//	c <anything>      comment, ignored
//	p max <n> <m>     problem line: node count and declared arc count
//	n <id> s|t        node designation: source or sink (1-indexed)
//	a <u> <v> <cap>   arc from u to v with the given capacity (1-indexed)
//
// Decode performs the validation the core deliberately skips: exactly one
// problem line, node ids within [1, n], non-negative capacities, and a source
// and sink designated before end of input. Indices reach the core already
// converted to 0-indexed form, so flownet and pushrelabel stay
// format-agnostic.
//
//	p, err := dimacs.Decode(f)
//	if err != nil { ... }
//	flow := pushrelabel.New(p.Net).MaxFlow(p.Source, p.Sink)
//
// EncodeSolution writes the computed flow back out in DIMACS solution style:
// an `s <value>` line followed by one `f <u> <v> <flow>` line per arc that
// carries positive flow.
package dimacs
