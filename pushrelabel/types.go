package pushrelabel

import "go.uber.org/zap"

// Stats counts the primitive operations performed by one MaxFlow run.
// Useful for benchmarking heuristic effectiveness on a given network shape.
type Stats struct {
	// Pushes is the number of non-zero pushes, the saturating initial pushes
	// out of the source included.
	Pushes uint64

	// Relabels is the number of single-node relabel operations.
	Relabels uint64

	// Gaps is the number of times the gap heuristic fired.
	Gaps uint64
}

// Option configures a Solver at construction time.
type Option func(*Solver)

// WithLogger attaches a structured logger for solver tracing (gap events and
// the end-of-run summary are logged at debug level). A nil logger is ignored
// and the default no-op logger stays in place.
func WithLogger(log *zap.Logger) Option {
	return func(s *Solver) {
		if log != nil {
			s.log = log
		}
	}
}
