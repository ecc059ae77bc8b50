// Command maxflow reads a DIMACS maximum-flow problem from a file argument
// (or stdin when none is given), solves it with the push-relabel solver, and
// writes the solution to stdout.
//
//	maxflow problem.max
//	cat problem.max | maxflow
//
// The flow value is printed as a DIMACS solution; timing and solver counters
// go to the structured log (LOG_LEVEL=-1 for per-event solver tracing).
package main

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/maxflow/dimacs"
	"github.com/katalvlaran/maxflow/logger"
	"github.com/katalvlaran/maxflow/pushrelabel"
)

func main() {
	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	var in io.Reader = os.Stdin
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			log.Error("open problem file", zap.Error(err))
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	p, err := dimacs.Decode(in)
	if err != nil {
		log.Error("decode problem", zap.Error(err))
		os.Exit(1)
	}

	solver := pushrelabel.New(p.Net, pushrelabel.WithLogger(log))

	start := time.Now()
	flow := solver.MaxFlow(p.Source, p.Sink)
	elapsed := time.Since(start)

	stats := solver.Stats()
	log.Info("solved",
		zap.Int("nodes", p.Net.Order()),
		zap.Int64("flow", flow),
		zap.Duration("elapsed", elapsed),
		zap.Uint64("pushes", stats.Pushes),
		zap.Uint64("relabels", stats.Relabels),
		zap.Uint64("gaps", stats.Gaps),
	)

	dimacs.EncodeSolution(os.Stdout, p)
}
