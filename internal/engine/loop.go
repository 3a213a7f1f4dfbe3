package engine

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/castlewood/arcadia/internal/log"
	"github.com/castlewood/arcadia/internal/timer"
)

// Loop is the frame loop driver. Each frame it updates the simulation
// systems in order, then gives the event system whatever remains of the
// frame budget, so event processing never starves simulation or rendering.
type Loop struct {
	log     *log.Logger
	systems []System
	events  System
	metrics *Metrics

	// frameBudget is the per-frame time slice in fractional milliseconds,
	// 1000 / target FPS.
	frameBudget float64

	running    atomic.Bool
	gameTime   float64
	lastFrame  float64
	frameCount uint64

	frameTimer timer.Timer
	sleep      func(time.Duration)
}

// Option configures a Loop.
type Option func(*Loop)

// WithSystems sets the simulation systems updated each frame, in order.
func WithSystems(systems ...System) Option {
	return func(l *Loop) { l.systems = systems }
}

// WithTargetFPS sets the frame rate the loop tries to sustain.
func WithTargetFPS(fps int) Option {
	return func(l *Loop) {
		if fps > 0 {
			l.frameBudget = 1000.0 / float64(fps)
		}
	}
}

// WithMetrics attaches a frame metrics recorder.
func WithMetrics(m *Metrics) Option {
	return func(l *Loop) { l.metrics = m }
}

// New creates a frame loop. The event system is updated last each frame with
// the leftover budget.
func New(logger *log.Logger, events System, opts ...Option) *Loop {
	if logger == nil {
		logger = log.Discard()
	}
	l := &Loop{
		log:         logger,
		events:      events,
		frameBudget: 1000.0 / 30.0,
		sleep:       time.Sleep,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run initializes all systems, drives frames until Stop is called, then
// destroys the systems in reverse order.
func (l *Loop) Run() error {
	if err := l.initialize(); err != nil {
		return err
	}
	l.running.Store(true)

	l.log.Debug("main loop start")
	l.frameTimer.Start()
	for l.running.Load() {
		l.Step()
	}

	l.shutdown()

	if l.frameCount > 0 {
		l.log.Info("processed %d frames in %.4fs", l.frameCount, l.gameTime)
		l.log.Info("avg frame time %.2fms", l.gameTime/float64(l.frameCount)*1000.0)
	}
	return nil
}

// Step runs exactly one frame.
func (l *Loop) Step() {
	l.lastFrame = l.frameTimer.ElapsedMillis()
	l.frameTimer.Start()

	l.gameTime += l.lastFrame / 1000.0
	l.frameCount++
	l.log.Debug("start frame %d, last frame %.2fms", l.frameCount, l.lastFrame)

	for _, sys := range l.systems {
		sys.Update(l.lastFrame)
	}

	budget := l.frameBudget - l.frameTimer.ElapsedMillis()
	if budget < 0 {
		budget = 0
	}
	l.events.Update(budget)

	if l.metrics != nil {
		l.metrics.RecordFrame(l.frameTimer.Elapsed())
	}

	// Yield briefly when the frame finished early, to avoid spinning a core.
	if l.frameTimer.ElapsedMillis() < l.frameBudget {
		l.sleep(time.Microsecond)
	}
}

// Stop makes Run return after the current frame.
func (l *Loop) Stop() {
	l.running.Store(false)
}

// Running reports whether the loop is active.
func (l *Loop) Running() bool {
	return l.running.Load()
}

// GameTime returns the accumulated simulation time in seconds.
func (l *Loop) GameTime() float64 {
	return l.gameTime
}

// FrameCount returns the number of frames run so far.
func (l *Loop) FrameCount() uint64 {
	return l.frameCount
}

func (l *Loop) initialize() error {
	l.log.Debug("initialize start")
	for _, sys := range l.systems {
		if err := sys.Initialize(); err != nil {
			return fmt.Errorf("initializing subsystem: %w", err)
		}
	}
	if err := l.events.Initialize(); err != nil {
		return fmt.Errorf("initializing event system: %w", err)
	}
	l.log.Debug("initialize complete")
	return nil
}

func (l *Loop) shutdown() {
	l.log.Debug("shutdown begin")
	l.events.Destroy()
	for i := len(l.systems) - 1; i >= 0; i-- {
		l.systems[i].Destroy()
	}
	l.log.Debug("shutdown complete")
}
