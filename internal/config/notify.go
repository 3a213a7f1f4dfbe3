package config

import (
	"github.com/castlewood/arcadia/internal/event"
	"github.com/castlewood/arcadia/internal/event/events"
	"github.com/castlewood/arcadia/internal/log"
)

// Notifier bridges file-change notifications into the event system. It
// implements event.Ingestor: each update it drains pending notifications on
// the dispatch goroutine and queues a config.changed event per notification,
// keeping the single-threaded producer model intact.
type Notifier struct {
	log     *log.Logger
	changes <-chan string
	sink    interface{ Queue(*event.Event) }
}

// NewNotifier creates a notifier draining changes into sink. The channel is
// typically watcher.Events().
func NewNotifier(logger *log.Logger, changes <-chan string, sink interface{ Queue(*event.Event) }) *Notifier {
	if logger == nil {
		logger = log.Discard()
	}
	return &Notifier{log: logger, changes: changes, sink: sink}
}

// Ingest drains pending change notifications without blocking.
func (n *Notifier) Ingest() {
	for {
		select {
		case path := <-n.changes:
			n.log.Info("config file changed: %s", path)
			n.sink.Queue(event.New(events.TypeConfigChanged, "config-changed", path, "config"))
		default:
			return
		}
	}
}
