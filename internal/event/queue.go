package event

// queuePair is the double-buffered event queue. Two named buffers exist at
// all times: exactly one is active (receiving pushes, drained next) and the
// other is pending. The roles swap exactly once per update cycle via flip,
// never mid-drain, so events produced by a listener during a drain land in
// the buffer deferred to the next cycle.
type queuePair struct {
	buffers [2][]*Event
	active  int
}

// push appends evt to the active buffer.
func (q *queuePair) push(evt *Event) {
	q.buffers[q.active] = append(q.buffers[q.active], evt)
}

// flip swaps the active and pending roles and returns the buffer to drain
// this cycle. After flip, pushes land in the other buffer.
func (q *queuePair) flip() []*Event {
	drain := q.buffers[q.active]
	q.buffers[q.active] = nil
	if q.active == 0 {
		q.active = 1
	} else {
		q.active = 0
	}
	return drain
}

// carryOver moves undrained events to the front of the buffer that will be
// drained next cycle, preserving their relative order. Events already pushed
// there this cycle stay behind them.
func (q *queuePair) carryOver(rest []*Event) {
	if len(rest) == 0 {
		return
	}
	merged := make([]*Event, 0, len(rest)+len(q.buffers[q.active]))
	merged = append(merged, rest...)
	merged = append(merged, q.buffers[q.active]...)
	q.buffers[q.active] = merged
}

// abort removes the first active-buffer event of type t. It returns whether
// one was found. Pending events are out of scope, matching the documented
// active-queue-only contract of the abort operations.
func (q *queuePair) abort(t Type) bool {
	buf := q.buffers[q.active]
	for i, evt := range buf {
		if evt.Type == t {
			q.buffers[q.active] = append(buf[:i], buf[i+1:]...)
			return true
		}
	}
	return false
}

// abortAll removes every active-buffer event of type t, preserving the order
// of the rest, and returns the number removed.
func (q *queuePair) abortAll(t Type) int {
	buf := q.buffers[q.active]
	kept := buf[:0]
	removed := 0
	for _, evt := range buf {
		if evt.Type == t {
			removed++
			continue
		}
		kept = append(kept, evt)
	}
	for i := len(kept); i < len(buf); i++ {
		buf[i] = nil
	}
	q.buffers[q.active] = kept
	return removed
}

// len returns the number of events in the active buffer.
func (q *queuePair) len() int {
	return len(q.buffers[q.active])
}

// totalLen returns the event count across both buffers.
func (q *queuePair) totalLen() int {
	return len(q.buffers[0]) + len(q.buffers[1])
}
