package metrics

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// WriteStats aggregates sink write durations over the process lifetime.
// Individual sinks keep their own last-write time; this collector answers
// distribution questions across runs.
type WriteStats struct {
	mu sync.Mutex

	// Latency histogram in microseconds, 1us to 60s, 3 significant digits.
	histogram *hdrhistogram.Histogram
	lastWrite map[string]time.Duration
	count     int64
}

func NewWriteStats() *WriteStats {
	return &WriteStats{
		histogram: hdrhistogram.New(1, 60_000_000, 3),
		lastWrite: make(map[string]time.Duration),
	}
}

// Record registers one sink write.
func (w *WriteStats) Record(file string, d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	us := d.Microseconds()
	if us < 1 {
		us = 1
	}
	_ = w.histogram.RecordValue(us)
	w.lastWrite[file] = d
	w.count++
}

// Summary is a point-in-time view of the recorded write durations.
type Summary struct {
	Count     int64
	P50       time.Duration
	P95       time.Duration
	Max       time.Duration
	LastWrite map[string]time.Duration
}

func (w *WriteStats) Summary() Summary {
	w.mu.Lock()
	defer w.mu.Unlock()

	last := make(map[string]time.Duration, len(w.lastWrite))
	for file, d := range w.lastWrite {
		last[file] = d
	}

	return Summary{
		Count:     w.count,
		P50:       time.Duration(w.histogram.ValueAtQuantile(50)) * time.Microsecond,
		P95:       time.Duration(w.histogram.ValueAtQuantile(95)) * time.Microsecond,
		Max:       time.Duration(w.histogram.Max()) * time.Microsecond,
		LastWrite: last,
	}
}
