// Package input translates raw platform signals into semantic application
// events. Per-control edge detection collapses key auto-repeat into single
// start/stop transitions; close requests bypass the event queue entirely.
package input

import (
	"time"

	"github.com/castlewood/arcadia/internal/backend"
	"github.com/castlewood/arcadia/internal/event"
	"github.com/castlewood/arcadia/internal/event/events"
	"github.com/castlewood/arcadia/internal/log"
)

// Sink receives the semantic events produced by translation. Satisfied by
// *event.System.
type Sink interface {
	Queue(evt *event.Event)
}

// Translator consumes raw backend events and queues semantic input events.
// It owns the per-control held state, so independent translators can coexist
// in one process.
//
// Translator implements event.Ingestor; the event system polls it once per
// update, before the queue flip.
type Translator struct {
	log      *log.Logger
	backend  backend.Backend
	sink     Sink
	bindings Bindings
	onClose  func()

	held      [controlCount]bool
	lastPress [controlCount]time.Time

	// holdTimeout synthesizes a release for a held control that has not seen
	// a press (including auto-repeat) for this long. Terminals never report
	// key releases, so without it a control would stay held forever. Zero
	// disables synthesis; tests and platforms with real release events
	// don't need it.
	holdTimeout time.Duration

	now func() time.Time
}

// Option configures a Translator.
type Option func(*Translator)

// WithBindings overrides the default key bindings.
func WithBindings(b Bindings) Option {
	return func(t *Translator) { t.bindings = b }
}

// WithHoldTimeout enables release synthesis for terminal backends.
func WithHoldTimeout(d time.Duration) Option {
	return func(t *Translator) { t.holdTimeout = d }
}

// WithCloseHandler sets the synchronous callback invoked on a close request.
func WithCloseHandler(fn func()) Option {
	return func(t *Translator) { t.onClose = fn }
}

// New creates a translator reading raw events from b and queueing semantic
// events into sink.
func New(logger *log.Logger, b backend.Backend, sink Sink, opts ...Option) *Translator {
	if logger == nil {
		logger = log.Discard()
	}
	t := &Translator{
		log:      logger,
		backend:  b,
		sink:     sink,
		bindings: DefaultBindings(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Ingest polls the backend to exhaustion, translating each raw event. Close
// requests are handled synchronously, never queued.
func (t *Translator) Ingest() {
	t.releaseStale()

	count := 0
	for t.backend.HasEvent() {
		ev := t.backend.PollEvent()
		count++
		switch ev.Type {
		case backend.EventClose:
			t.log.Debug("close requested")
			if t.onClose != nil {
				t.onClose()
			}
		case backend.EventKey:
			t.handleKey(ev)
		}
	}

	if count > 0 {
		t.log.Debug("processed %d raw events", count)
	}
}

// handleKey performs edge detection for one key transition. Repeated presses
// while held are collapsed; releases of pulse controls clear the held flag
// silently.
func (t *Translator) handleKey(ev backend.Event) {
	control, bound := t.bindings[ev.Key]
	if !bound {
		return
	}

	if ev.Pressed {
		t.lastPress[control] = t.now()
		if t.held[control] {
			return
		}
		t.held[control] = true
		t.queue(control, events.ActionStart)
		return
	}

	if !t.held[control] {
		return
	}
	t.held[control] = false
	if !control.pulse() {
		t.queue(control, events.ActionStop)
	}
}

// releaseStale synthesizes release edges for controls whose auto-repeat has
// gone quiet for longer than the hold timeout.
func (t *Translator) releaseStale() {
	if t.holdTimeout <= 0 {
		return
	}
	cutoff := t.now().Add(-t.holdTimeout)
	for c := Control(0); c < controlCount; c++ {
		if t.held[c] && t.lastPress[c].Before(cutoff) {
			t.held[c] = false
			if !c.pulse() {
				t.queue(c, events.ActionStop)
			}
		}
	}
}

func (t *Translator) queue(control Control, state events.ActionState) {
	t.sink.Queue(events.NewInputAction(control.action(), state))
	t.log.Debug("queued %s %s", control, state)
}

// Held reports whether the control is currently marked held.
func (t *Translator) Held(c Control) bool {
	if c < 0 || c >= controlCount {
		return false
	}
	return t.held[c]
}
