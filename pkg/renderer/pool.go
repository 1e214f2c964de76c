package renderer

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/log"
	"github.com/lumen-render/lumen/pkg/stats"
)

var logger = log.New("renderer")

// SampleGenerator produces image-plane samples one light path at a
// time. Implementations are not safe for concurrent use; the pool gives
// each worker its own generator.
type SampleGenerator interface {
	// Reset returns the generator to its initial deterministic state
	Reset()

	// GeneratePath traces one path and pushes its samples into the sink,
	// returning the number of samples emitted
	GeneratePath(sink core.SampleSink) int

	// Stats returns the statistics accumulated since the last Reset
	Stats() *stats.RenderStats
}

// GeneratorPool drives a set of sample generators in parallel, pushing
// everything they produce into one shared sink
type GeneratorPool struct {
	generators []SampleGenerator
}

// NewGeneratorPool creates a pool over pre-built generators, one per
// worker. Passing generators in (rather than a factory) keeps seeding
// decisions with the caller.
func NewGeneratorPool(generators []SampleGenerator) *GeneratorPool {
	return &GeneratorPool{generators: generators}
}

// DefaultWorkerCount returns the worker count used when the caller does
// not specify one
func DefaultWorkerCount() int {
	return runtime.NumCPU()
}

// Run traces totalPaths light paths split across the pool's generators
// and returns the merged statistics. Cancellation via the context is
// checked between paths, so a cancelled render still leaves the sink
// consistent.
func (gp *GeneratorPool) Run(ctx context.Context, totalPaths int, sink core.SampleSink) *stats.RenderStats {
	start := time.Now()

	numWorkers := len(gp.generators)
	pathsPerWorker := totalPaths / numWorkers
	remainder := totalPaths % numWorkers

	var wg sync.WaitGroup
	for i, generator := range gp.generators {
		quota := pathsPerWorker
		if i < remainder {
			quota++
		}

		wg.Add(1)
		go func(gen SampleGenerator, quota int) {
			defer wg.Done()

			gen.Reset()
			for p := 0; p < quota; p++ {
				select {
				case <-ctx.Done():
					return
				default:
				}
				gen.GeneratePath(sink)
			}
		}(generator, quota)
	}
	wg.Wait()

	merged := &stats.RenderStats{}
	for _, generator := range gp.generators {
		merged.Merge(generator.Stats())
	}
	merged.RenderTime = time.Since(start)

	if err := ctx.Err(); err != nil {
		logger.Warningf("render cancelled after %d of %d paths", merged.PathCount, totalPaths)
	}

	return merged
}
