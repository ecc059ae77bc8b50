package pushrelabel

import "go.uber.org/zap"

// relabel lifts u to the minimal height that restores the valid-labeling
// invariant: 1 + min(height(v)) over residual out-arcs (u,v) with positive
// residual capacity. With no such arc the node lands on the 2n sentinel, an
// effectively unreachable height. Population counts move with the node, and u
// is re-enqueued since it may still carry excess.
//
// A relabel strictly increases height(u): the current-arc scan that led here
// found no admissible arc at the old height.
func (s *Solver) relabel(u int) {
	s.count[s.height[u]]--
	s.height[u] = 2 * s.n
	for _, a := range s.net.Arcs(u) {
		if a.Residual() > 0 && s.height[a.To]+1 < s.height[u] {
			s.height[u] = s.height[a.To] + 1
		}
	}
	s.count[s.height[u]]++
	s.stats.Relabels++
	s.enqueue(u)
}

// gap bulk-relabels every node of height ≥ k to max(height, n+1), adjusting
// population counts and re-enqueuing each. It fires when height k is about to
// lose its sole occupant: once no residual path can cross the emptied level,
// nothing above it can reach the sink anymore, so those nodes are lifted past
// n and drain their excess back toward the source instead.
func (s *Solver) gap(k int) {
	for v := 0; v < s.n; v++ {
		if s.height[v] < k {
			continue
		}
		s.count[s.height[v]]--
		if s.height[v] < s.n+1 {
			s.height[v] = s.n + 1
		}
		s.count[s.height[v]]++
		s.enqueue(v)
	}
	s.stats.Gaps++
	s.log.Debug("gap heuristic fired", zap.Int("height", k))
}
