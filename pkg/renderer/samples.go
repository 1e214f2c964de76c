package renderer

import (
	"sync"
	"sync/atomic"

	"github.com/lumen-render/lumen/pkg/core"
)

const initialQueueSize = 50000

// SampleQueue provides mostly lock-free accumulation of image-plane
// samples from concurrent generators. Appends take an atomic index into
// a pre-grown buffer; the mutex is only taken to grow the buffer or to
// read a consistent snapshot.
type SampleQueue struct {
	samples []core.Sample
	length  int64
	mu      sync.Mutex
}

// NewSampleQueue creates a sample queue with a pre-allocated buffer
func NewSampleQueue() *SampleQueue {
	return &SampleQueue{
		samples: make([]core.Sample, initialQueueSize),
	}
}

// AddSample implements core.SampleSink with a lock-free fast path
func (sq *SampleQueue) AddSample(sample core.Sample) {
	index := atomic.AddInt64(&sq.length, 1) - 1

	if int(index) < len(sq.samples) {
		sq.samples[index] = sample
		return
	}

	// Slow path: buffer is full, grow under the lock
	sq.mu.Lock()
	defer sq.mu.Unlock()

	// Another goroutine may have grown it while we waited
	for int(index) >= len(sq.samples) {
		grown := make([]core.Sample, len(sq.samples)*2)
		copy(grown, sq.samples)
		sq.samples = grown
	}

	sq.samples[index] = sample
}

// All returns a copy of the accumulated samples
func (sq *SampleQueue) All() []core.Sample {
	sq.mu.Lock()
	defer sq.mu.Unlock()

	length := atomic.LoadInt64(&sq.length)
	result := make([]core.Sample, length)
	copy(result, sq.samples[:length])
	return result
}

// Count returns the number of accumulated samples
func (sq *SampleQueue) Count() int {
	return int(atomic.LoadInt64(&sq.length))
}

// Clear discards all accumulated samples
func (sq *SampleQueue) Clear() {
	atomic.StoreInt64(&sq.length, 0)
}
