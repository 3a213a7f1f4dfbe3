// Package timer provides a restartable monotonic stopwatch with fractional
// millisecond resolution, used for frame timing and drain budgets.
package timer

import "time"

// Timer is a monotonic stopwatch. The zero value reports zero elapsed time
// until Start is called. Reading elapsed time has no side effects.
type Timer struct {
	start time.Time
}

// Start resets the reference point to now.
func (t *Timer) Start() {
	t.start = time.Now()
}

// ElapsedMillis returns fractional milliseconds since the last Start.
// The value is monotonic and never negative.
func (t *Timer) ElapsedMillis() float64 {
	if t.start.IsZero() {
		return 0
	}
	return float64(time.Since(t.start)) / float64(time.Millisecond)
}

// Elapsed returns the duration since the last Start.
func (t *Timer) Elapsed() time.Duration {
	if t.start.IsZero() {
		return 0
	}
	return time.Since(t.start)
}
