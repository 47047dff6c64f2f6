// Package metrics aggregates attempt durations across a run using an HDR
// histogram, so the final summary can report percentiles without keeping
// every sample.
package metrics

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Histogram bounds: 1 microsecond to 1 hour at 3 significant figures.
const (
	histogramMin     = 1
	histogramMax     = 3600000000
	histogramSigFigs = 3
)

// Recorder collects attempt durations. It is safe for concurrent use.
type Recorder struct {
	mu   sync.Mutex
	hist *hdrhistogram.Histogram
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		hist: hdrhistogram.New(histogramMin, histogramMax, histogramSigFigs),
	}
}

// Record adds one attempt duration to the histogram. Durations outside the
// recordable range are clamped by the histogram implementation.
func (r *Recorder) Record(d time.Duration) {
	v := d.Microseconds()
	if v < histogramMin {
		v = histogramMin
	}
	if v > histogramMax {
		v = histogramMax
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	_ = r.hist.RecordValue(v)
}

// Snapshot is a point-in-time view of the recorded durations.
type Snapshot struct {
	Count int64
	Min   time.Duration
	Mean  time.Duration
	P95   time.Duration
	Max   time.Duration
}

// Snapshot returns the current duration statistics. An empty Recorder
// yields a zero-valued Snapshot.
func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.hist.TotalCount() == 0 {
		return Snapshot{}
	}

	return Snapshot{
		Count: r.hist.TotalCount(),
		Min:   time.Duration(r.hist.Min()) * time.Microsecond,
		Mean:  time.Duration(r.hist.Mean()) * time.Microsecond,
		P95:   time.Duration(r.hist.ValueAtQuantile(95)) * time.Microsecond,
		Max:   time.Duration(r.hist.Max()) * time.Microsecond,
	}
}
