package event

import (
	"sync/atomic"

	"github.com/castlewood/arcadia/internal/log"
)

// listenerEntry is one registration inside a type bucket.
type listenerEntry struct {
	id SubscriptionID
	fn Callback
}

// Registry maps event types to listener registrations. Buckets preserve
// registration order so delivery within a type is deterministic.
//
// The registry owns subscription ID generation: IDs start at 1 and are never
// reissued, even after removal. All state is instance-owned so independent
// dispatchers can coexist in one process.
type Registry struct {
	log     *log.Logger
	buckets map[Type][]listenerEntry
	nextID  atomic.Uint64
}

// NewRegistry creates an empty listener registry.
func NewRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Discard()
	}
	return &Registry{
		log:     logger,
		buckets: make(map[Type][]listenerEntry),
	}
}

// NextSubscriptionID returns a fresh, never-before-issued subscription ID.
func (r *Registry) NextSubscriptionID() SubscriptionID {
	return SubscriptionID(r.nextID.Add(1))
}

// Add registers fn under (t, id). It returns false and leaves the registry
// unchanged if that exact pair is already registered or fn is nil.
func (r *Registry) Add(t Type, id SubscriptionID, fn Callback) bool {
	if fn == nil {
		r.log.Warn("subscription %d (type %s): %v", id, t, ErrNilCallback)
		return false
	}

	bucket := r.buckets[t]
	for _, entry := range bucket {
		if entry.id == id {
			r.log.Warn("subscription %d (type %s): %v", id, t, ErrDuplicateListener)
			return false
		}
	}

	r.buckets[t] = append(bucket, listenerEntry{id: id, fn: fn})
	r.log.Debug("added subscription %d (type %s)", id, t)
	return true
}

// Remove deletes the registration for (t, id). It returns true on successful
// removal; an unknown type or ID logs a warning and is a no-op.
func (r *Registry) Remove(t Type, id SubscriptionID) bool {
	bucket, ok := r.buckets[t]
	if !ok {
		r.log.Warn("subscription %d (type %s): %v", id, t, ErrListenerNotFound)
		return false
	}

	for i, entry := range bucket {
		if entry.id == id {
			r.buckets[t] = append(bucket[:i], bucket[i+1:]...)
			if len(r.buckets[t]) == 0 {
				delete(r.buckets, t)
			}
			r.log.Debug("removed subscription %d (type %s)", id, t)
			return true
		}
	}

	r.log.Warn("subscription %d (type %s): %v", id, t, ErrListenerNotFound)
	return false
}

// Snapshot returns a copy of the callbacks registered for t, in registration
// order. Delivery iterates the copy, so a callback may mutate the registry
// mid-dispatch without invalidating the in-progress iteration.
func (r *Registry) Snapshot(t Type) []Callback {
	bucket := r.buckets[t]
	if len(bucket) == 0 {
		return nil
	}
	fns := make([]Callback, len(bucket))
	for i, entry := range bucket {
		fns[i] = entry.fn
	}
	return fns
}

// Count returns the total number of registrations across all types.
func (r *Registry) Count() int {
	n := 0
	for _, bucket := range r.buckets {
		n += len(bucket)
	}
	return n
}

// CountByType returns the number of registrations for t.
func (r *Registry) CountByType(t Type) int {
	return len(r.buckets[t])
}
