// Package watch reports changes to a single layout file.
//
// The watcher subscribes to the file's parent directory rather than the file
// itself, so editors that save by writing a temporary file and renaming it
// over the original keep triggering reloads. Bursts of events are debounced
// into a single callback.
package watch

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned by operations on a closed watcher.
var ErrWatcherClosed = errors.New("watcher closed")

// Handler is called with the watched path after it changes.
type Handler func(path string)

// Option configures a Watcher.
type Option func(*config)

type config struct {
	debounce time.Duration
	logger   *slog.Logger
}

func defaultConfig() config {
	return config{
		debounce: 100 * time.Millisecond,
		logger:   slog.New(slog.DiscardHandler),
	}
}

// WithDebounce sets how long the watcher waits for further events before
// calling the handler. Zero calls the handler on every event.
func WithDebounce(d time.Duration) Option {
	return func(c *config) {
		if d >= 0 {
			c.debounce = d
		}
	}
}

// WithLogger sets the logger for watch errors and handler panics.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// Stats holds watcher counters.
type Stats struct {
	Events  uint64
	Calls   uint64
	Errors  uint64
	Started time.Time
}

// Watcher watches one file.
type Watcher struct {
	path    string
	handler Handler
	config  config
	fsw     *fsnotify.Watcher

	events atomic.Uint64
	calls  atomic.Uint64
	errs   atomic.Uint64
	start  time.Time

	closeOnce sync.Once
	closeCh   chan struct{}
	wg        sync.WaitGroup
}

// New starts watching path and calls handler after each change. The file
// does not have to exist yet, but its directory does.
func New(path string, handler Handler, opts ...Option) (*Watcher, error) {
	if handler == nil {
		return nil, errors.New("watch: nil handler")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(absPath), err)
	}

	w := &Watcher{
		path:    absPath,
		handler: handler,
		config:  cfg,
		fsw:     fsw,
		start:   time.Now(),
		closeCh: make(chan struct{}),
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Stats returns a snapshot of the watcher counters.
func (w *Watcher) Stats() Stats {
	return Stats{
		Events:  w.events.Load(),
		Calls:   w.calls.Load(),
		Errors:  w.errs.Load(),
		Started: w.start,
	}
}

// Close stops the watcher and waits for a running handler to return.
// Calling Close more than once returns ErrWatcherClosed.
func (w *Watcher) Close() error {
	err := ErrWatcherClosed
	w.closeOnce.Do(func() {
		close(w.closeCh)
		w.wg.Wait()
		err = w.fsw.Close()
	})
	return err
}

// processLoop handles incoming fsnotify events.
func (w *Watcher) processLoop() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.events.Add(1)

			if w.config.debounce == 0 {
				w.call()
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.config.debounce)
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.errs.Add(1)
			w.config.logger.Error("watch error", "path", w.path, "err", err)

		case <-fire:
			fire = nil
			w.call()
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

// call invokes the handler, recovering from panics.
func (w *Watcher) call() {
	w.calls.Add(1)
	defer func() {
		if r := recover(); r != nil {
			w.errs.Add(1)
			w.config.logger.Error("watch handler panic", "path", w.path, "panic", r)
		}
	}()
	w.handler(w.path)
}
