package flownet

// Arc is a directed residual arc.
//
// A forward arc carries the inserted edge's capacity; its mirror carries
// capacity zero. Rev is the index of the mirror arc inside the adjacency list
// of To, giving O(1) access to the reverse residual arc.
type Arc struct {
	// To is the destination node index.
	To int

	// Rev is the mirror arc's position in the adjacency list of To.
	Rev int

	// Flow is the current flow on this arc. Mirrors hold the negated flow of
	// their forward arc (antisymmetry), so Flow may be negative on a mirror.
	Flow int64

	// Cap is the arc capacity. Zero for mirror arcs.
	Cap int64
}

// Residual returns the remaining capacity on this arc (Cap - Flow).
// Flow freed on the opposite direction shows up here through antisymmetry.
func (a *Arc) Residual() int64 {
	return a.Cap - a.Flow
}

// Network is a directed capacitated flow network over nodes 0..n-1.
//
// It owns per-node adjacency lists of arcs, each mirrored by a reverse
// residual arc. Capacity is fixed once a solver starts consuming the network;
// flow changes only through solver pushes.
type Network struct {
	adj [][]Arc
}

// New creates an empty Network with n nodes and no arcs.
// A negative n is treated as zero.
// Complexity: O(n)
func New(n int) *Network {
	if n < 0 {
		n = 0
	}

	return &Network{adj: make([][]Arc, n)}
}

// Order returns the number of nodes in the network.
func (net *Network) Order() int {
	return len(net.adj)
}

// AddEdge appends a forward arc u→v with the given capacity and zero flow,
// plus a mirror arc v→u with zero capacity; each records the other's position
// so the reverse residual arc is reachable in O(1).
//
// Self-loops carry no useful flow and would corrupt the mirror-index
// bookkeeping, so u == v is silently ignored. Out-of-range endpoints are
// ignored the same way. Capacity is not validated beyond what the caller
// guarantees; negative capacities are the caller's contract violation.
//
// Duplicate (u, v) pairs are permitted and create independent parallel arcs.
// Complexity: O(1) amortized.
func (net *Network) AddEdge(u, v int, capacity int64) {
	if u == v {
		return
	}
	if u < 0 || u >= len(net.adj) || v < 0 || v >= len(net.adj) {
		return
	}

	net.adj[u] = append(net.adj[u], Arc{To: v, Rev: len(net.adj[v]), Cap: capacity})
	net.adj[v] = append(net.adj[v], Arc{To: u, Rev: len(net.adj[u]) - 1, Cap: 0})
}

// Arcs returns the adjacency list of node u. The slice shares backing storage
// with the network, so solvers mutate arc flow in place through it.
// Out-of-range u yields nil.
func (net *Network) Arcs(u int) []Arc {
	if u < 0 || u >= len(net.adj) {
		return nil
	}

	return net.adj[u]
}

// Mirror returns a pointer to the mirror of arc a.
// The caller must pass an arc that belongs to this network.
func (net *Network) Mirror(a *Arc) *Arc {
	return &net.adj[a.To][a.Rev]
}

// OutFlow sums the flow over all arcs leaving u. Mirror arcs carry negated
// flow, so the sum is the net flow out of u — for the source node after a
// max-flow run, this is the flow value. Out-of-range u yields 0.
// Complexity: O(deg(u))
func (net *Network) OutFlow(u int) int64 {
	if u < 0 || u >= len(net.adj) {
		return 0
	}

	var total int64
	for i := range net.adj[u] {
		total += net.adj[u][i].Flow
	}

	return total
}
