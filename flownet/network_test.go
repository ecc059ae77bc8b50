package flownet_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxflow/flownet"
)

// TestAddEdgeMirrorPair verifies that every insertion creates a forward arc
// and a zero-capacity mirror whose Rev indices point at each other.
func TestAddEdgeMirrorPair(t *testing.T) {
	net := flownet.New(3)
	net.AddEdge(0, 1, 7)

	fwd := net.Arcs(0)
	require.Len(t, fwd, 1)
	require.Equal(t, 1, fwd[0].To)
	require.Equal(t, int64(7), fwd[0].Cap)
	require.Zero(t, fwd[0].Flow)

	back := net.Arcs(1)
	require.Len(t, back, 1)
	require.Equal(t, 0, back[0].To)
	require.Zero(t, back[0].Cap)

	// The pair is mutually linked.
	require.Equal(t, 0, fwd[0].Rev)
	require.Equal(t, 0, back[0].Rev)
	require.Same(t, &net.Arcs(1)[0], net.Mirror(&net.Arcs(0)[0]))
	require.Same(t, &net.Arcs(0)[0], net.Mirror(&net.Arcs(1)[0]))
}

// TestAddEdgeParallel verifies that duplicate (u,v) pairs stay independent.
func TestAddEdgeParallel(t *testing.T) {
	net := flownet.New(2)
	net.AddEdge(0, 1, 3)
	net.AddEdge(0, 1, 4)

	arcs := net.Arcs(0)
	require.Len(t, arcs, 2)
	require.Equal(t, int64(3), arcs[0].Cap)
	require.Equal(t, int64(4), arcs[1].Cap)
	require.Len(t, net.Arcs(1), 2)

	// Mirror indices survive interleaved appends.
	require.Equal(t, arcs[1].To, 1)
	require.Equal(t, net.Arcs(1)[arcs[1].Rev].To, 0)
}

// TestAddEdgeDegenerate: self-loops and out-of-range endpoints are no-ops.
func TestAddEdgeDegenerate(t *testing.T) {
	net := flownet.New(2)
	net.AddEdge(1, 1, 5)
	net.AddEdge(-1, 0, 5)
	net.AddEdge(0, 2, 5)

	require.Empty(t, net.Arcs(0))
	require.Empty(t, net.Arcs(1))
	require.Nil(t, net.Arcs(2))
	require.Nil(t, net.Arcs(-1))
}

// TestResidualAndAntisymmetry exercises manual flow bookkeeping.
func TestResidualAndAntisymmetry(t *testing.T) {
	net := flownet.New(2)
	net.AddEdge(0, 1, 10)

	a := &net.Arcs(0)[0]
	m := net.Mirror(a)
	require.Equal(t, int64(10), a.Residual())
	require.Zero(t, m.Residual())

	a.Flow += 4
	m.Flow -= 4
	require.Equal(t, int64(6), a.Residual())
	require.Equal(t, int64(4), m.Residual(), "freed capacity appears on the mirror")
	require.Equal(t, -a.Flow, m.Flow)
}

// TestOutFlow sums net flow, mirrors included.
func TestOutFlow(t *testing.T) {
	net := flownet.New(3)
	net.AddEdge(0, 1, 10)
	net.AddEdge(2, 0, 10)

	a := &net.Arcs(0)[0]
	net.Mirror(a).Flow -= 6
	a.Flow += 6

	in := &net.Arcs(2)[0]
	net.Mirror(in).Flow -= 2
	in.Flow += 2

	require.Equal(t, int64(4), net.OutFlow(0), "6 out minus 2 in")
	require.Equal(t, int64(2), net.OutFlow(2))
	require.Zero(t, net.OutFlow(-1))
	require.Zero(t, net.OutFlow(3))
}

// TestNewDegenerate: zero and negative node counts yield empty networks.
func TestNewDegenerate(t *testing.T) {
	require.Zero(t, flownet.New(0).Order())
	require.Zero(t, flownet.New(-3).Order())
	require.Equal(t, 5, flownet.New(5).Order())
}
