package event

import (
	"github.com/castlewood/arcadia/internal/log"
	"github.com/castlewood/arcadia/internal/timer"
)

// Ingestor pulls raw platform signals to exhaustion and queues the resulting
// semantic events. The input translator implements this; the system calls it
// once per update, before the buffer flip, so ingested events are drained in
// the same cycle.
type Ingestor interface {
	Ingest()
}

// Ingestors composes several ingestors into one, polled in order.
type Ingestors []Ingestor

// Ingest implements Ingestor.
func (is Ingestors) Ingest() {
	for _, in := range is {
		in.Ingest()
	}
}

// System is the time-budgeted event dispatcher. It owns the listener
// registry and the double-buffered queue and implements the engine subsystem
// lifecycle: the frame loop calls Update once per frame with the leftover
// time budget in fractional milliseconds.
//
// All methods must be called from the single dispatch goroutine; see the
// package documentation for the concurrency model.
type System struct {
	log      *log.Logger
	registry *Registry
	queues   queuePair
	ingest   Ingestor

	updateTimer timer.Timer
	drainTimer  timer.Timer

	delivered uint64
	deferred  uint64
}

// Option configures a System.
type Option func(*System)

// WithIngestor sets the raw-signal source polled at the start of each update.
func WithIngestor(in Ingestor) Option {
	return func(s *System) { s.ingest = in }
}

// WithRegistry supplies an externally constructed registry, for callers that
// register listeners before the system is built.
func WithRegistry(r *Registry) Option {
	return func(s *System) { s.registry = r }
}

// NewSystem creates an event dispatch system.
func NewSystem(logger *log.Logger, opts ...Option) *System {
	if logger == nil {
		logger = log.Discard()
	}
	s := &System{log: logger}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = NewRegistry(logger)
	}
	return s
}

// Registry returns the system's listener registry.
func (s *System) Registry() *Registry {
	return s.registry
}

// SetIngestor replaces the raw-signal source. Ingestors usually queue into
// the system they feed, so callers that cannot use WithIngestor at
// construction wire the cycle up with this instead.
func (s *System) SetIngestor(in Ingestor) {
	s.ingest = in
}

// Initialize implements the subsystem lifecycle. The system has no external
// resources to acquire.
func (s *System) Initialize() error {
	return nil
}

// Update runs one dispatch cycle: ingest raw signals, flip the queue
// buffers, then drain within budgetMillis. Events left over when the budget
// runs out are carried to the front of the next cycle's queue.
func (s *System) Update(budgetMillis float64) {
	s.updateTimer.Start()
	s.log.Debug("starting event processing, time budget %.2fms", budgetMillis)

	if s.ingest != nil {
		s.ingest.Ingest()
	}
	s.processQueue(budgetMillis)

	s.log.Debug("total event time %.2fms", s.updateTimer.ElapsedMillis())
}

// Destroy implements the subsystem lifecycle.
func (s *System) Destroy() {
	s.log.Debug("event system destroyed, %d delivered, %d deferred", s.delivered, s.deferred)
}

// processQueue flips the buffers and drains the previously active queue
// until it empties or the budget runs out. The budget is checked between
// deliveries, never mid-callback; a non-positive budget delivers nothing.
func (s *System) processQueue(budgetMillis float64) {
	drain := s.queues.flip()
	s.drainTimer.Start()

	count := 0
	for i, evt := range drain {
		if budgetMillis <= 0 || s.drainTimer.ElapsedMillis() > budgetMillis {
			rest := drain[i:]
			s.queues.carryOver(rest)
			s.deferred += uint64(len(rest))
			s.log.Warn("event processing aborted after %.2fms, %d events remaining",
				s.drainTimer.ElapsedMillis(), len(rest))
			break
		}
		s.Trigger(evt)
		count++
	}

	s.log.Debug("processed %d events in %.2fms", count, s.drainTimer.ElapsedMillis())
}

// Register generates a fresh subscription ID and adds fn as a listener for
// t, returning the ID.
func (s *System) Register(t Type, fn Callback) SubscriptionID {
	id := s.registry.NextSubscriptionID()
	s.registry.Add(t, id, fn)
	return id
}

// Unregister removes the listener registered under (t, id). It returns true
// on successful removal.
func (s *System) Unregister(t Type, id SubscriptionID) bool {
	return s.registry.Remove(t, id)
}

// Queue appends evt to the active queue for delivery in the next drain.
// A nil event is a programming error.
func (s *System) Queue(evt *Event) {
	if evt == nil {
		panic("event: Queue called with nil event")
	}
	s.queues.push(evt)
	s.log.Debug("queued event type %s (%s)", evt.Type, evt.Name)
}

// Trigger delivers evt synchronously to every listener currently registered
// for its type, in registration order, bypassing the queue and budget.
// Delivering to zero listeners is not an error. A nil event is a programming
// error.
func (s *System) Trigger(evt *Event) {
	if evt == nil {
		panic("event: Trigger called with nil event")
	}
	s.log.Debug("triggering event type %s (%s)", evt.Type, evt.Name)

	for _, fn := range s.registry.Snapshot(evt.Type) {
		fn(evt)
		s.delivered++
	}
}

// Abort removes the first queued active-queue event of type t, returning
// whether one was found.
func (s *System) Abort(t Type) bool {
	if s.queues.abort(t) {
		s.log.Debug("event type %s aborted", t)
		return true
	}
	s.log.Debug("tried to abort event type %s, none found", t)
	return false
}

// AbortAll removes all queued active-queue events of type t and returns the
// number removed.
func (s *System) AbortAll(t Type) int {
	count := s.queues.abortAll(t)
	s.log.Debug("aborted %d events of type %s", count, t)
	return count
}

// Pending returns the number of events waiting in the active queue.
func (s *System) Pending() int {
	return s.queues.len()
}

// PendingTotal returns the event count across both queue buffers.
func (s *System) PendingTotal() int {
	return s.queues.totalLen()
}
