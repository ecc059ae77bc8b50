package pushrelabel

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/maxflow/flownet"
)

// Solver owns all mutable push-relabel state for one flow network: excess
// values, height labels, per-height population counts, active flags, the FIFO
// queue of active nodes, and the per-node current-arc cursors.
//
// All state belongs exclusively to one Solver value — no process-wide
// singletons — and is not safe for concurrent use. A Solver is single-use:
// see MaxFlow.
type Solver struct {
	net *flownet.Network
	n   int

	excess []int64 // flow awaiting forwarding, per node
	height []int   // height labels (valid labeling invariant)
	count  []int   // population per height, indices 0..2n
	active []bool  // FIFO membership flags
	cursor []int   // current-arc index into each adjacency list

	queue []int // FIFO active queue; queue[head:] is pending
	head  int

	done   bool
	result int64

	stats Stats
	log   *zap.Logger
}

// New creates a Solver over net. The network should be fully built before the
// first MaxFlow call; mutating it afterwards is a contract violation.
// Complexity: O(n)
func New(net *flownet.Network, opts ...Option) *Solver {
	n := net.Order()
	s := &Solver{
		net:    net,
		n:      n,
		excess: make([]int64, n),
		height: make([]int, n),
		count:  make([]int, 2*n+1),
		active: make([]bool, n),
		cursor: make([]int, n),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Stats reports the operation counters accumulated so far.
func (s *Solver) Stats() Stats {
	return s.stats
}

// enqueue appends v to the FIFO active queue iff it is not already a member
// and its excess is strictly positive. Idempotent with respect to membership.
func (s *Solver) enqueue(v int) {
	if !s.active[v] && s.excess[v] > 0 {
		s.active[v] = true
		s.queue = append(s.queue, v)
	}
}

// push sends min(excess[u], residual) units of flow across arc a, updating
// the mirror arc to keep flow antisymmetry, and activates the recipient if
// its excess turned positive. A zero amount — or a push that would go level
// or uphill — is a no-op with no side effects. The caller re-activates u as
// needed; push never does.
func (s *Solver) push(u int, a *flownet.Arc) {
	amt := min(s.excess[u], a.Residual())
	if s.height[u] <= s.height[a.To] || amt == 0 {
		return
	}

	a.Flow += amt
	s.net.Mirror(a).Flow -= amt
	s.excess[u] -= amt
	s.excess[a.To] += amt
	s.stats.Pushes++
	s.enqueue(a.To)
}
