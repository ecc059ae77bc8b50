package dimacs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/maxflow/flownet"
)

// Sentinel errors for structurally incomplete inputs.
var (
	// ErrNoProblemLine is returned when the input ends without a problem line.
	ErrNoProblemLine = errors.New("dimacs: no problem line")

	// ErrNoSource is returned when no node line designates a source.
	ErrNoSource = errors.New("dimacs: no source designated")

	// ErrNoSink is returned when no node line designates a sink.
	ErrNoSink = errors.New("dimacs: no sink designated")
)

// ParseError reports a malformed line together with its 1-based line number.
type ParseError struct {
	Line int
	Msg  string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("dimacs: line %d: %s", e.Line, e.Msg)
}

// Problem is a decoded maximum-flow instance: the network plus 0-indexed
// source and sink.
type Problem struct {
	Net    *flownet.Network
	Source int
	Sink   int
}
