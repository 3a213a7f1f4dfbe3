// Package engine drives the fixed-rate frame loop that sequences Arcadia's
// subsystems and hands the event dispatcher its per-frame time budget.
package engine

// System is the lifecycle contract every subsystem implements: logic,
// physics, render, and the event dispatcher. The loop calls Update once per
// frame; for most systems the argument is the last frame time in fractional
// milliseconds, while the event system receives the leftover frame budget.
type System interface {
	Initialize() error
	Update(dtMillis float64)
	Destroy()
}
