package engine

import (
	"sync/atomic"
	"time"
)

// Metrics tracks frame timing for the loop. Counters are atomic so tooling
// can snapshot them while the loop runs.
type Metrics struct {
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMinNs   atomic.Int64
	frameMaxNs   atomic.Int64
	lastFrameNs  atomic.Int64

	startTime time.Time
}

// NewMetrics creates a metrics recorder.
func NewMetrics() *Metrics {
	m := &Metrics{startTime: time.Now()}
	m.frameMinNs.Store(1<<63 - 1)
	return m
}

// RecordFrame records one frame's duration.
func (m *Metrics) RecordFrame(d time.Duration) {
	ns := d.Nanoseconds()

	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)
	m.lastFrameNs.Store(ns)

	for {
		old := m.frameMinNs.Load()
		if ns >= old || m.frameMinNs.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.frameMaxNs.Load()
		if ns <= old || m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// Snapshot is a point-in-time view of the metrics.
type Snapshot struct {
	FrameCount uint64
	LastFrame  time.Duration
	MinFrame   time.Duration
	MaxFrame   time.Duration
	AvgFrame   time.Duration
	Uptime     time.Duration
}

// Snapshot returns the current metrics.
func (m *Metrics) Snapshot() Snapshot {
	count := m.frameCount.Load()
	s := Snapshot{
		FrameCount: count,
		LastFrame:  time.Duration(m.lastFrameNs.Load()),
		MaxFrame:   time.Duration(m.frameMaxNs.Load()),
		Uptime:     time.Since(m.startTime),
	}
	if count > 0 {
		s.MinFrame = time.Duration(m.frameMinNs.Load())
		s.AvgFrame = time.Duration(m.frameTotalNs.Load() / int64(count))
	}
	return s
}
