// Package flownet provides the arena-style residual network that all max-flow
// solvers in this module operate on.
//
// A Network holds one adjacency list per node, indexed 0..n-1. Every inserted
// edge materializes as a pair of arcs: the forward arc carries the edge's
// capacity, its mirror carries capacity zero. Each arc stores the position of
// its mirror inside the destination's adjacency list, so the reverse residual
// arc is always one index lookup away — no search, no map.
//
// Flow antisymmetry is the load-bearing invariant: for every arc e and its
// mirror e', e'.Flow == -e.Flow at all times. Residual capacity of an arc is
// Cap - Flow, which makes capacity freed by existing flow on the opposite
// direction automatically available.
//
// # API
//
//	net := flownet.New(4)
//	net.AddEdge(0, 1, 10)       // forward arc 0→1 (cap 10) + mirror 1→0 (cap 0)
//	arcs := net.Arcs(0)         // mutable adjacency of node 0
//	res := arcs[0].Residual()   // Cap - Flow
//	out := net.OutFlow(0)       // net flow leaving node 0
//
// Degenerate inputs follow value-level branching, never panics: self-loops and
// out-of-range endpoints are silently absorbed as no-ops, and duplicate (u,v)
// pairs create independent parallel arcs rather than merged capacity.
//
// A Network is not safe for concurrent mutation; build it fully, then hand it
// to a solver.
package flownet
