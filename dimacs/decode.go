package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/maxflow/flownet"
)

// Decode reads a DIMACS maximum-flow problem from r.
//
// Comment and blank lines are skipped. Exactly one problem line must appear
// before any arc line; node and arc endpoints must lie in [1, n]; capacities
// must be non-negative (the core accepts anything, so the rejection happens
// here, at the boundary). Node designation lines may repeat — the last source
// and last sink win — but at least one of each must be present.
//
// On malformed lines Decode returns a ParseError carrying the line number;
// structurally incomplete inputs yield ErrNoProblemLine, ErrNoSource, or
// ErrNoSink.
func Decode(r io.Reader) (*Problem, error) {
	var net *flownet.Network
	src, sink := -1, -1

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "c":
			// comment

		case "p":
			if net != nil {
				return nil, ParseError{lineNo, "duplicate problem line"}
			}
			if len(fields) != 4 || fields[1] != "max" {
				return nil, ParseError{lineNo, fmt.Sprintf("malformed problem line %q", sc.Text())}
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil || n < 0 {
				return nil, ParseError{lineNo, fmt.Sprintf("invalid node count %q", fields[2])}
			}
			if _, err = strconv.Atoi(fields[3]); err != nil {
				return nil, ParseError{lineNo, fmt.Sprintf("invalid arc count %q", fields[3])}
			}
			net = flownet.New(n)

		case "n":
			if net == nil {
				return nil, ParseError{lineNo, "node line before problem line"}
			}
			if len(fields) != 3 {
				return nil, ParseError{lineNo, fmt.Sprintf("malformed node line %q", sc.Text())}
			}
			id, err := strconv.Atoi(fields[1])
			if err != nil || id < 1 || id > net.Order() {
				return nil, ParseError{lineNo, fmt.Sprintf("node id %q out of range", fields[1])}
			}
			switch fields[2] {
			case "s":
				src = id - 1
			case "t":
				sink = id - 1
			default:
				return nil, ParseError{lineNo, fmt.Sprintf("unknown node designation %q", fields[2])}
			}

		case "a":
			if net == nil {
				return nil, ParseError{lineNo, "arc line before problem line"}
			}
			if len(fields) != 4 {
				return nil, ParseError{lineNo, fmt.Sprintf("malformed arc line %q", sc.Text())}
			}
			u, err := strconv.Atoi(fields[1])
			if err != nil || u < 1 || u > net.Order() {
				return nil, ParseError{lineNo, fmt.Sprintf("arc tail %q out of range", fields[1])}
			}
			v, err := strconv.Atoi(fields[2])
			if err != nil || v < 1 || v > net.Order() {
				return nil, ParseError{lineNo, fmt.Sprintf("arc head %q out of range", fields[2])}
			}
			capacity, err := strconv.ParseInt(fields[3], 10, 64)
			if err != nil || capacity < 0 {
				return nil, ParseError{lineNo, fmt.Sprintf("invalid capacity %q", fields[3])}
			}
			net.AddEdge(u-1, v-1, capacity)

		default:
			return nil, ParseError{lineNo, fmt.Sprintf("unknown line type %q", fields[0])}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: read: %w", err)
	}

	if net == nil {
		return nil, ErrNoProblemLine
	}
	if src < 0 {
		return nil, ErrNoSource
	}
	if sink < 0 {
		return nil, ErrNoSink
	}

	return &Problem{Net: net, Source: src, Sink: sink}, nil
}
