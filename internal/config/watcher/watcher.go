// Package watcher monitors the configuration file for changes so the engine
// can reload settings without restarting.
//
// fsnotify delivers events on its own goroutine; Watcher funnels them into a
// buffered channel that the frame loop drains from the dispatch goroutine,
// preserving the single-threaded event model.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a single file for writes.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	events   chan string
	debounce time.Duration

	mu      sync.Mutex
	lastHit time.Time

	closeOnce sync.Once
	done      chan struct{}
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce suppresses duplicate notifications closer together than d.
// Editors often produce several writes per save.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// New watches the file at path. The containing directory is registered with
// fsnotify so atomic save (write temp, rename over) is still observed.
func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		path:     abs,
		events:   make(chan string, 16),
		debounce: 100 * time.Millisecond,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	go w.loop()
	return w, nil
}

// Events returns change notifications carrying the watched path. The channel
// is buffered; notifications overflowing the buffer are dropped.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Close stops watching and releases the fsnotify handle.
func (w *Watcher) Close() {
	w.closeOnce.Do(func() {
		close(w.done)
		w.fsw.Close()
	})
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			select {
			case w.events <- w.path:
			default:
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

// relevant reports whether ev is a debounced write/create/rename of the
// watched file.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	now := time.Now()
	if now.Sub(w.lastHit) < w.debounce {
		return false
	}
	w.lastHit = now
	return true
}
