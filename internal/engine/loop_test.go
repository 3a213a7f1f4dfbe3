package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/castlewood/arcadia/internal/log"
)

// fakeSystem records lifecycle calls.
type fakeSystem struct {
	name        string
	initErr     error
	initialized bool
	destroyed   bool
	updates     []float64
	calls       *[]string
}

func (f *fakeSystem) Initialize() error {
	f.initialized = true
	if f.calls != nil {
		*f.calls = append(*f.calls, f.name+".init")
	}
	return f.initErr
}

func (f *fakeSystem) Update(dt float64) {
	f.updates = append(f.updates, dt)
	if f.calls != nil {
		*f.calls = append(*f.calls, f.name+".update")
	}
}

func (f *fakeSystem) Destroy() {
	f.destroyed = true
	if f.calls != nil {
		*f.calls = append(*f.calls, f.name+".destroy")
	}
}

func TestLoop_StepUpdatesSystemsInOrder(t *testing.T) {
	var calls []string
	logic := &fakeSystem{name: "logic", calls: &calls}
	render := &fakeSystem{name: "render", calls: &calls}
	events := &fakeSystem{name: "events", calls: &calls}

	l := New(log.Discard(), events, WithSystems(logic, render))
	l.Step()

	want := []string{"logic.update", "render.update", "events.update"}
	for i, w := range want {
		if i >= len(calls) || calls[i] != w {
			t.Fatalf("call order %v, want %v", calls, want)
		}
	}
}

// slowSystem burns wall-clock time inside Update.
type slowSystem struct {
	fakeSystem
	delay time.Duration
}

func (s *slowSystem) Update(dt float64) {
	s.fakeSystem.Update(dt)
	time.Sleep(s.delay)
}

func TestLoop_EventBudgetNeverNegative(t *testing.T) {
	// A 1ms frame budget that the simulation systems alone overrun: the
	// event system still gets a zero budget, never a negative one.
	slow := &slowSystem{fakeSystem: fakeSystem{name: "slow"}, delay: 5 * time.Millisecond}
	events := &fakeSystem{name: "events"}

	l := New(log.Discard(), events, WithSystems(slow), WithTargetFPS(1000))
	l.Step()
	l.Step()

	if len(events.updates) != 2 {
		t.Fatalf("event system updated %d times, want 2", len(events.updates))
	}
	for _, budget := range events.updates {
		if budget < 0 {
			t.Errorf("event budget %v, want >= 0", budget)
		}
		if budget > 1 {
			t.Errorf("event budget %v after overrun, want ~0", budget)
		}
	}
}

func TestLoop_RunStopsOnStop(t *testing.T) {
	events := &fakeSystem{name: "events"}
	logic := &fakeSystem{name: "logic"}

	l := New(log.Discard(), events, WithSystems(logic), WithTargetFPS(1000))

	// Stop the loop from within a system update, as the input translator's
	// close handler would.
	stopAfter := 3
	stopper := &stopSystem{loop: nil, after: stopAfter}
	l.systems = append(l.systems, stopper)
	stopper.loop = l

	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !logic.initialized || !events.initialized {
		t.Error("systems not initialized")
	}
	if !logic.destroyed || !events.destroyed {
		t.Error("systems not destroyed")
	}
	if l.FrameCount() < uint64(stopAfter) {
		t.Errorf("FrameCount = %d, want >= %d", l.FrameCount(), stopAfter)
	}
	if l.Running() {
		t.Error("loop still running after Run returned")
	}
}

type stopSystem struct {
	loop   *Loop
	after  int
	frames int
}

func (s *stopSystem) Initialize() error { return nil }
func (s *stopSystem) Destroy()          {}

func (s *stopSystem) Update(float64) {
	s.frames++
	if s.frames >= s.after {
		s.loop.Stop()
	}
}

func TestLoop_InitializeFailureAborts(t *testing.T) {
	bad := &fakeSystem{name: "bad", initErr: errors.New("boom")}
	events := &fakeSystem{name: "events"}

	l := New(log.Discard(), events, WithSystems(bad))
	if err := l.Run(); err == nil {
		t.Fatal("Run should fail when a system fails to initialize")
	}
	if len(events.updates) != 0 {
		t.Error("no frames should run after init failure")
	}
}

func TestLoop_GameTimeAccumulates(t *testing.T) {
	events := &fakeSystem{name: "events"}
	l := New(log.Discard(), events, WithTargetFPS(1000))

	l.Step()
	time.Sleep(10 * time.Millisecond)
	l.Step()

	if l.GameTime() <= 0 {
		t.Errorf("GameTime = %v after a 10ms frame, want > 0", l.GameTime())
	}
}

func TestMetrics_RecordFrame(t *testing.T) {
	m := NewMetrics()

	m.RecordFrame(10 * time.Millisecond)
	m.RecordFrame(20 * time.Millisecond)
	m.RecordFrame(30 * time.Millisecond)

	s := m.Snapshot()
	if s.FrameCount != 3 {
		t.Errorf("FrameCount = %d, want 3", s.FrameCount)
	}
	if s.MinFrame != 10*time.Millisecond {
		t.Errorf("MinFrame = %v, want 10ms", s.MinFrame)
	}
	if s.MaxFrame != 30*time.Millisecond {
		t.Errorf("MaxFrame = %v, want 30ms", s.MaxFrame)
	}
	if s.AvgFrame != 20*time.Millisecond {
		t.Errorf("AvgFrame = %v, want 20ms", s.AvgFrame)
	}
	if s.LastFrame != 30*time.Millisecond {
		t.Errorf("LastFrame = %v, want 30ms", s.LastFrame)
	}
}

func TestMetrics_EmptySnapshot(t *testing.T) {
	m := NewMetrics()
	s := m.Snapshot()

	if s.FrameCount != 0 {
		t.Errorf("FrameCount = %d, want 0", s.FrameCount)
	}
	if s.MinFrame != 0 || s.AvgFrame != 0 {
		t.Errorf("empty snapshot has Min=%v Avg=%v, want zeros", s.MinFrame, s.AvgFrame)
	}
}
