package input

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// latencySamples is the size of the keystroke latency ring.
const latencySamples = 512

// Metrics counts what the input loop did with each keystroke.
//
// Counters are atomic so a snapshot may be taken from another goroutine
// while the loop runs.
type Metrics struct {
	keystrokes   atomic.Uint64
	undecodable  atomic.Uint64
	unmatched    atomic.Uint64
	dispatched   atomic.Uint64
	paletteLines atomic.Uint64
	failures     atomic.Uint64

	mu        sync.Mutex
	latencies []time.Duration
	next      int
	peak      time.Duration

	startTime time.Time
}

// NewMetrics creates a metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{
		latencies: make([]time.Duration, 0, latencySamples),
		startTime: time.Now(),
	}
}

// RecordKeystroke records one handled keystroke and how long handling,
// including any dispatch and render, took.
func (m *Metrics) RecordKeystroke(latency time.Duration) {
	m.keystrokes.Add(1)

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.latencies) < latencySamples {
		m.latencies = append(m.latencies, latency)
	} else {
		m.latencies[m.next] = latency
	}
	m.next = (m.next + 1) % latencySamples
	m.peak = max(m.peak, latency)
}

// RecordUndecodable records a keystroke with no key model representation.
func (m *Metrics) RecordUndecodable() {
	m.undecodable.Add(1)
}

// RecordUnmatched records a buffer cleared without a binding.
func (m *Metrics) RecordUnmatched() {
	m.unmatched.Add(1)
}

// RecordDispatch records a command run from a binding.
func (m *Metrics) RecordDispatch() {
	m.dispatched.Add(1)
}

// RecordPaletteLine records a command line run from the palette.
func (m *Metrics) RecordPaletteLine() {
	m.paletteLines.Add(1)
}

// RecordFailure records an error that was logged and skipped.
func (m *Metrics) RecordFailure() {
	m.failures.Add(1)
}

// MetricsSnapshot holds a point-in-time view of metrics.
type MetricsSnapshot struct {
	Keystrokes   uint64
	Undecodable  uint64
	Unmatched    uint64
	Dispatched   uint64
	PaletteLines uint64
	Failures     uint64

	AvgLatency  time.Duration
	P99Latency  time.Duration
	PeakLatency time.Duration

	Uptime time.Duration
}

// Snapshot returns the current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.Lock()
	samples := slices.Clone(m.latencies)
	peak := m.peak
	m.mu.Unlock()

	snap := MetricsSnapshot{
		Keystrokes:   m.keystrokes.Load(),
		Undecodable:  m.undecodable.Load(),
		Unmatched:    m.unmatched.Load(),
		Dispatched:   m.dispatched.Load(),
		PaletteLines: m.paletteLines.Load(),
		Failures:     m.failures.Load(),
		PeakLatency:  peak,
		Uptime:       time.Since(m.startTime),
	}
	snap.AvgLatency, snap.P99Latency = latencyStats(samples)
	return snap
}

// latencyStats computes the average and 99th percentile of samples.
func latencyStats(samples []time.Duration) (avg, p99 time.Duration) {
	if len(samples) == 0 {
		return 0, 0
	}

	var sum time.Duration
	for _, l := range samples {
		sum += l
	}
	avg = sum / time.Duration(len(samples))

	slices.Sort(samples)
	idx := min(int(float64(len(samples))*0.99), len(samples)-1)
	return avg, samples[idx]
}

// Timer measures one keystroke.
type Timer struct {
	start   time.Time
	metrics *Metrics
}

// StartKeystroke starts timing a keystroke.
func (m *Metrics) StartKeystroke() Timer {
	return Timer{start: time.Now(), metrics: m}
}

// Stop records the elapsed time.
func (t Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	t.metrics.RecordKeystroke(elapsed)
	return elapsed
}
