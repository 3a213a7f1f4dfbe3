package event

import (
	"time"

	"github.com/google/uuid"
)

// Type is the stable category identifier for an event, e.g. "input.action"
// or "config.changed". Types are opaque to the dispatcher; delivery is keyed
// on exact match.
type Type string

// SubscriptionID identifies one listener registration. IDs are issued by a
// Registry, start at 1, and are never reused for the process lifetime.
type SubscriptionID uint64

// Callback handles a single delivered event. Callbacks run synchronously on
// the dispatch goroutine; they may register or unregister listeners and queue
// follow-up events during their own invocation.
type Callback func(evt *Event)

// Event is an immutable value delivered to listeners. Events are shared by
// pointer between the queue and any callback that retains a reference; the
// garbage collector keeps an event alive as long as any holder remains.
type Event struct {
	// Type is the event category used for listener lookup.
	Type Type

	// Name is a human-readable label for logs.
	Name string

	// Payload carries kind-specific data. Listeners type-assert.
	Payload any

	// Meta carries standard per-instance information.
	Meta Metadata
}

// Metadata is standard information attached to every event instance.
type Metadata struct {
	// ID uniquely identifies this event instance.
	ID string

	// Timestamp is when the event was created.
	Timestamp time.Time

	// Source identifies the module that produced the event.
	Source string
}

// New creates an event with a fresh instance ID.
func New(t Type, name string, payload any, source string) *Event {
	return &Event{
		Type:    t,
		Name:    name,
		Payload: payload,
		Meta: Metadata{
			ID:        uuid.NewString(),
			Timestamp: time.Now(),
			Source:    source,
		},
	}
}
