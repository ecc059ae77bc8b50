// Package pushrelabel computes maximum s–t flow with the preflow push-relabel
// method (Goldberg–Tarjan), using a FIFO discharge order, the gap heuristic,
// and the current-arc heuristic.
//
// The method maintains a preflow — node excess may be transiently positive —
// and a height labeling that stays valid throughout: for every residual arc
// (u,v) with positive residual capacity, height(u) ≤ height(v) + 1. Excess is
// pushed downhill along admissible arcs (height(u) == height(v)+1); when a
// node runs out of admissible arcs it is relabeled to the minimal valid
// height. When a height level empties, the gap heuristic bulk-relabels every
// node stranded above it to an unreachable height, so its excess drains back
// toward the source instead of chasing the sink.
//
// # API
//
//	net := flownet.New(4)
//	net.AddEdge(0, 1, 10)
//	net.AddEdge(0, 2, 10)
//	net.AddEdge(1, 3, 10)
//	net.AddEdge(2, 3, 10)
//
//	s := pushrelabel.New(net)
//	flow := s.MaxFlow(0, 3) // 20
//
// A Solver consumes its network: MaxFlow runs once, records its result, and
// repeat calls return the recorded value without touching the network again.
// Construct a fresh Solver (and Network) per problem.
//
// Out-of-range source or sink yields a zero flow rather than an error;
// callers that must tell "legitimately zero" from "invalid index" validate
// indices before calling (the dimacs package does exactly that).
//
// # Discharge order
//
// Active nodes are served strictly first-activated, first-discharged. This is
// deliberate: the FIFO variant is the tested behavior of this solver, and it
// must not be swapped for a highest-label priority scheme, which changes
// iteration order and performance characteristics.
//
// Complexity:
//
//	Time:   O(V³) worst case for the FIFO variant; far better in practice
//	        with the gap and current-arc heuristics.
//	Memory: O(V + E) for the network plus O(V) solver state.
package pushrelabel
