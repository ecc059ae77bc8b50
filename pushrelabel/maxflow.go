package pushrelabel

import "go.uber.org/zap"

// discharge drains the excess of u. It walks u's current-arc cursor over the
// adjacency list, pushing along every admissible arc (positive residual and
// height(u) == height(to)+1) and advancing past the rest. When the cursor
// exhausts the list, u either triggers the gap heuristic (if it is the sole
// occupant of its height) or is relabeled, and the cursor resets.
//
// Termination: every relabel strictly increases height(u), bounded by 2n, and
// the cursor never revisits arcs ruled out at the current height without an
// intervening relabel.
func (s *Solver) discharge(u int) {
	arcs := s.net.Arcs(u)
	for s.excess[u] > 0 {
		if s.cursor[u] < len(arcs) {
			a := &arcs[s.cursor[u]]
			if a.Residual() > 0 && s.height[u] == s.height[a.To]+1 {
				s.push(u, a)
			} else {
				s.cursor[u]++
			}
			continue
		}

		if s.count[s.height[u]] == 1 {
			s.gap(s.height[u])
		} else {
			s.relabel(u)
		}
		s.cursor[u] = 0
	}
}

// MaxFlow computes the maximum flow from src to sink and returns its value.
//
// An out-of-range src or sink yields 0 — a silent degenerate result, not a
// distinguishable error; validate indices beforehand if the difference
// matters (dimacs.Decode does).
//
// The first successful run consumes the Solver: heights, counts, and the
// network's arc flows are mutated irreversibly. The result is recorded, and
// any later call returns that recorded value regardless of arguments.
//
// Steps:
//  1. Seed the labeling: n-1 nodes at height 0, src alone at height n.
//  2. Saturate every arc leaving src (the initial preflow; admissibility is
//     bypassed because height(src) = n exceeds every neighbor), enqueuing
//     each node that receives excess. src and sink are flagged active up
//     front so they are never enqueued nor discharged.
//  3. Pop and discharge active nodes FIFO until the queue is empty.
//  4. Read the flow value as the net flow on arcs leaving src.
//
// On termination every other node has zero excess (the preflow became a
// flow) and the height labeling certifies no augmenting path remains, so the
// value is maximal by min-cut duality.
func (s *Solver) MaxFlow(src, sink int) int64 {
	if s.done {
		return s.result
	}
	if src < 0 || src >= s.n || sink < 0 || sink >= s.n {
		return 0
	}

	s.count[0] = s.n - 1
	s.count[s.n] = 1
	s.height[src] = s.n
	s.active[src] = true
	s.active[sink] = true

	arcs := s.net.Arcs(src)
	for i := range arcs {
		s.excess[src] += arcs[i].Cap
		s.push(src, &arcs[i])
	}

	for s.head < len(s.queue) {
		u := s.queue[s.head]
		s.head++
		s.active[u] = false

		if u == src || u == sink {
			continue
		}
		s.discharge(u)
	}

	s.result = s.net.OutFlow(src)
	s.done = true
	s.log.Debug("max flow computed",
		zap.Int("source", src),
		zap.Int("sink", sink),
		zap.Int64("flow", s.result),
		zap.Uint64("pushes", s.stats.Pushes),
		zap.Uint64("relabels", s.stats.Relabels),
		zap.Uint64("gaps", s.stats.Gaps),
	)

	return s.result
}
