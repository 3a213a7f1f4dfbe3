// Package event provides the time-budgeted, double-buffered event dispatch
// system at the heart of the Arcadia frame loop.
//
// Raw platform signals are translated into semantic events and queued; once
// per frame the System drains the queue against a soft wall-clock budget so
// event processing never starves simulation or rendering. Two buffers are
// kept: the active buffer is drained this cycle while events produced during
// the drain (for example, a listener queueing a follow-up event) land in the
// pending buffer and are deferred to the next cycle. This bounds same-frame
// event cascades.
//
// When the budget runs out mid-drain, the remaining events are carried over
// to the front of the next cycle's queue in their original order. Events are
// delayed under pressure, never dropped.
//
// # Concurrency
//
// The system is single-threaded and cooperative: all dispatch, including
// every listener callback, runs on the goroutine driving the frame loop. The
// budget is advisory and checked only between deliveries, so one slow
// listener can overrun it. Listeners may add or remove registrations and
// queue events during their own invocation; delivery iterates a snapshot of
// the listener bucket, so mid-dispatch mutation never invalidates the drain.
//
// # Usage
//
//	sys := event.NewSystem(logger, event.WithIngestor(translator))
//
//	id := sys.Register(events.TypeInputAction, func(evt *event.Event) {
//	    in := evt.Payload.(events.InputPayload)
//	    // react to in.Action / in.State
//	})
//
//	sys.Queue(event.New(events.TypeInputAction, "move-up", payload, "input"))
//	sys.Update(budgetMillis) // once per frame
//	sys.Unregister(events.TypeInputAction, id)
package event
