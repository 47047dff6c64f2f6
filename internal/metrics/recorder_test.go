package metrics

import (
	"testing"
	"time"
)

func TestRecorderSnapshotEmpty(t *testing.T) {
	r := NewRecorder()

	snap := r.Snapshot()
	if snap.Count != 0 {
		t.Errorf("Count = %d, want 0", snap.Count)
	}
	if snap.Min != 0 || snap.Mean != 0 || snap.P95 != 0 || snap.Max != 0 {
		t.Errorf("empty snapshot should be zero-valued, got %+v", snap)
	}
}

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()

	durations := []time.Duration{
		10 * time.Millisecond,
		20 * time.Millisecond,
		30 * time.Millisecond,
		40 * time.Millisecond,
	}
	for _, d := range durations {
		r.Record(d)
	}

	snap := r.Snapshot()
	if snap.Count != int64(len(durations)) {
		t.Errorf("Count = %d, want %d", snap.Count, len(durations))
	}
	if snap.Min > snap.Mean || snap.Mean > snap.Max {
		t.Errorf("expected Min <= Mean <= Max, got min=%v mean=%v max=%v", snap.Min, snap.Mean, snap.Max)
	}
	// HDR histograms trade a little precision for constant-time quantiles.
	if snap.Min < 9*time.Millisecond || snap.Min > 11*time.Millisecond {
		t.Errorf("Min = %v, want ~10ms", snap.Min)
	}
	if snap.Max < 39*time.Millisecond || snap.Max > 41*time.Millisecond {
		t.Errorf("Max = %v, want ~40ms", snap.Max)
	}
	if snap.P95 < snap.Mean {
		t.Errorf("P95 = %v should not be below the mean %v", snap.P95, snap.Mean)
	}
}
