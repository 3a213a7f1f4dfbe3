package event

import (
	"testing"

	"github.com/castlewood/arcadia/internal/log"
)

func noopCallback(*Event) {}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry(log.Discard())

	if r == nil {
		t.Fatal("expected non-nil registry")
	}
	if r.Count() != 0 {
		t.Errorf("expected count 0, got %d", r.Count())
	}
}

func TestNextSubscriptionID_StartsAtOne(t *testing.T) {
	r := NewRegistry(log.Discard())

	if id := r.NextSubscriptionID(); id != 1 {
		t.Errorf("first ID = %d, want 1", id)
	}
}

func TestNextSubscriptionID_MonotonicNoReuse(t *testing.T) {
	r := NewRegistry(log.Discard())

	id1 := r.NextSubscriptionID()
	r.Add("test", id1, noopCallback)
	r.Remove("test", id1)

	// Removal never frees the ID for reuse.
	id2 := r.NextSubscriptionID()
	if id2 != id1+1 {
		t.Errorf("second ID = %d, want %d", id2, id1+1)
	}

	prev := id2
	for i := 0; i < 100; i++ {
		next := r.NextSubscriptionID()
		if next != prev+1 {
			t.Fatalf("ID %d followed %d, want %d", next, prev, prev+1)
		}
		prev = next
	}
}

func TestRegistry_Add(t *testing.T) {
	r := NewRegistry(log.Discard())

	if !r.Add("a", 1, noopCallback) {
		t.Error("Add returned false for fresh registration")
	}
	if !r.Add("a", 2, noopCallback) {
		t.Error("Add returned false for second subscription on same type")
	}
	if !r.Add("b", 1, noopCallback) {
		t.Error("Add returned false for same ID under different type")
	}

	if r.Count() != 3 {
		t.Errorf("Count = %d, want 3", r.Count())
	}
	if r.CountByType("a") != 2 {
		t.Errorf("CountByType(a) = %d, want 2", r.CountByType("a"))
	}
}

func TestRegistry_Add_Duplicate(t *testing.T) {
	r := NewRegistry(log.Discard())

	invoked := 0
	r.Add("a", 7, func(*Event) { invoked++ })

	// Second registration under the same (type, id) pair is rejected and the
	// original stays in place.
	if r.Add("a", 7, func(*Event) { invoked += 100 }) {
		t.Error("duplicate Add returned true")
	}
	if r.CountByType("a") != 1 {
		t.Errorf("CountByType(a) = %d, want 1", r.CountByType("a"))
	}

	for _, fn := range r.Snapshot("a") {
		fn(nil)
	}
	if invoked != 1 {
		t.Errorf("original callback invoked %d times, want 1", invoked)
	}
}

func TestRegistry_Add_NilCallback(t *testing.T) {
	r := NewRegistry(log.Discard())

	if r.Add("a", 1, nil) {
		t.Error("Add accepted nil callback")
	}
	if r.Count() != 0 {
		t.Errorf("Count = %d, want 0", r.Count())
	}
}

func TestRegistry_Remove(t *testing.T) {
	r := NewRegistry(log.Discard())

	r.Add("a", 1, noopCallback)
	r.Add("a", 2, noopCallback)

	if !r.Remove("a", 1) {
		t.Error("Remove returned false for present entry")
	}
	if r.CountByType("a") != 1 {
		t.Errorf("CountByType(a) = %d, want 1", r.CountByType("a"))
	}

	// Removing again is a no-op reporting failure.
	if r.Remove("a", 1) {
		t.Error("Remove returned true for absent entry")
	}
}

func TestRegistry_Remove_UnknownType(t *testing.T) {
	r := NewRegistry(log.Discard())

	if r.Remove("missing", 1) {
		t.Error("Remove returned true for unknown type")
	}
}

func TestRegistry_Snapshot_RegistrationOrder(t *testing.T) {
	r := NewRegistry(log.Discard())

	var order []int
	for i := 1; i <= 5; i++ {
		n := i
		r.Add("seq", SubscriptionID(n), func(*Event) { order = append(order, n) })
	}

	for _, fn := range r.Snapshot("seq") {
		fn(nil)
	}

	for i, n := range order {
		if n != i+1 {
			t.Fatalf("delivery order %v, want registration order", order)
		}
	}
}

func TestRegistry_Snapshot_StableUnderMutation(t *testing.T) {
	r := NewRegistry(log.Discard())

	r.Add("a", 1, noopCallback)
	r.Add("a", 2, noopCallback)

	snap := r.Snapshot("a")
	r.Remove("a", 1)
	r.Remove("a", 2)

	// The snapshot taken before mutation is unaffected.
	if len(snap) != 2 {
		t.Errorf("snapshot len = %d, want 2", len(snap))
	}
	if r.Snapshot("a") != nil {
		t.Error("expected nil snapshot after removing all listeners")
	}
}
