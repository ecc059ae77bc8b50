package pushrelabel_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/maxflow/flownet"
	"github.com/katalvlaran/maxflow/pushrelabel"
)

// randomEdges draws a directed network with V nodes and roughly p probability
// of an arc between any ordered pair, capacities uniform in [1, maxCap].
func randomEdges(V int, p float64, maxCap int64, seed int64) []edge {
	r := rand.New(rand.NewSource(seed)) // deterministic seed for reproducibility
	var edges []edge
	for u := 0; u < V; u++ {
		for v := 0; v < V; v++ {
			if u == v {
				continue // skip self-loops
			}
			if r.Float64() < p {
				edges = append(edges, edge{u, v, r.Int63n(maxCap) + 1})
			}
		}
	}

	return edges
}

// BenchmarkMaxFlow measures the solver on networks of increasing size and
// density. A solver is single-use, so each iteration rebuilds the network;
// construction is cheap relative to the solve on these shapes.
func BenchmarkMaxFlow(b *testing.B) {
	cases := []struct {
		name     string
		vertices int
		edgeProb float64
		maxCap   int64
		seed     int64
	}{
		{"Small", 200, 0.05, 10, 42},
		{"Medium", 500, 0.02, 20, 4242},
		{"Large", 1000, 0.01, 50, 424242},
	}

	for _, tc := range cases {
		tc := tc
		b.Run(tc.name, func(b *testing.B) {
			edges := randomEdges(tc.vertices, tc.edgeProb, tc.maxCap, tc.seed)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				net := flownet.New(tc.vertices)
				for _, e := range edges {
					net.AddEdge(e.u, e.v, e.cap)
				}
				_ = pushrelabel.New(net).MaxFlow(0, tc.vertices-1)
			}
		})
	}
}
