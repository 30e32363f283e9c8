// Package watcher watches remap files for changes.
//
// Files are watched through their parent directory, so editors that save by
// writing a temporary file and renaming it over the original are seen as a
// create of the watched name. Bursts of events for one file are coalesced
// and delivered once the file has been quiet for the debounce period.
package watcher

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned when using a closed watcher.
var ErrWatcherClosed = errors.New("watcher closed")

// Event represents a file change event.
type Event struct {
	// Path is the absolute path to the changed file.
	Path string

	// Op is the operation that triggered the event.
	Op Operation

	// Time is when the event occurred.
	Time time.Time
}

// Operation represents the type of file operation.
type Operation int

const (
	// OpWrite indicates the file was modified.
	OpWrite Operation = iota

	// OpCreate indicates a new file was created.
	OpCreate

	// OpRemove indicates the file was deleted.
	OpRemove

	// OpRename indicates the file was renamed.
	OpRename
)

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case OpWrite:
		return "write"
	case OpCreate:
		return "create"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// Handler is called when a file change is detected.
type Handler func(event Event)

// Watcher delivers change events for a set of files.
type Watcher struct {
	mu sync.RWMutex

	fsw *fsnotify.Watcher

	// Watched files, and the number of files watched in each directory
	files map[string]bool
	dirs  map[string]int

	handlers     []Handler
	errorHandler func(error)

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
	closed  bool

	debounce  time.Duration
	pendingMu sync.Mutex
	pending   map[string]pendingEvent
}

// pendingEvent stores a pending event with its operation for debouncing.
type pendingEvent struct {
	Op   Operation
	Time time.Time
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long a file must be quiet before its event is
// delivered. Zero delivers every event immediately.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithErrorHandler sets the callback for errors reported by the file system
// notifier. Errors are dropped when no handler is set.
func WithErrorHandler(h func(error)) Option {
	return func(w *Watcher) {
		w.errorHandler = h
	}
}

// New creates a new file watcher.
func New(opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		files:    make(map[string]bool),
		dirs:     make(map[string]int),
		debounce: 100 * time.Millisecond,
		pending:  make(map[string]pendingEvent),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Watch adds a file to the watch list. The file need not exist yet, but its
// directory must.
func (w *Watcher) Watch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if w.files[absPath] {
		return nil
	}

	dir := filepath.Dir(absPath)
	if w.dirs[dir] == 0 {
		if err := w.fsw.Add(dir); err != nil {
			return err
		}
	}
	w.dirs[dir]++
	w.files[absPath] = true
	return nil
}

// Unwatch removes a file from the watch list.
func (w *Watcher) Unwatch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if !w.files[absPath] {
		return nil
	}
	delete(w.files, absPath)

	dir := filepath.Dir(absPath)
	w.dirs[dir]--
	if w.dirs[dir] <= 0 {
		delete(w.dirs, dir)
		return w.fsw.Remove(dir)
	}
	return nil
}

// OnChange registers a handler for file change events.
func (w *Watcher) OnChange(handler Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// Start begins delivering events.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running || w.closed {
		w.mu.Unlock()
		return
	}
	w.ctx, w.cancel = context.WithCancel(context.Background())
	w.running = true
	w.mu.Unlock()

	w.wg.Add(1)
	go w.eventLoop()

	if w.debounce > 0 {
		w.wg.Add(1)
		go w.debounceLoop()
	}
}

// Stop stops delivering events. Pending debounced events are discarded.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.cancel()
	w.running = false
	w.mu.Unlock()

	w.wg.Wait()

	w.pendingMu.Lock()
	w.pending = make(map[string]pendingEvent)
	w.pendingMu.Unlock()
}

// Close stops the watcher and releases the notifier.
func (w *Watcher) Close() error {
	w.Stop()

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	return w.fsw.Close()
}

// IsRunning returns whether the watcher is active.
func (w *Watcher) IsRunning() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

// WatchedFiles returns the sorted list of watched files.
func (w *Watcher) WatchedFiles() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	files := make([]string, 0, len(w.files))
	for path := range w.files {
		files = append(files, path)
	}
	sort.Strings(files)
	return files
}

func (w *Watcher) eventLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return

		case fsEvent, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleFSEvent(fsEvent)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.mu.RLock()
			h := w.errorHandler
			w.mu.RUnlock()
			if h != nil {
				h(err)
			}
		}
	}
}

// handleFSEvent filters an fsnotify event down to the watched files.
func (w *Watcher) handleFSEvent(fsEvent fsnotify.Event) {
	op, ok := convertOp(fsEvent.Op)
	if !ok {
		return
	}

	path := filepath.Clean(fsEvent.Name)
	w.mu.RLock()
	watched := w.files[path]
	w.mu.RUnlock()
	if !watched {
		return
	}

	event := Event{Path: path, Op: op, Time: time.Now()}
	if w.debounce > 0 {
		w.queueEvent(event)
	} else {
		w.emitEvent(event)
	}
}

// convertOp reduces an fsnotify op set to the most significant operation.
// Chmod alone is not reported.
func convertOp(fsOp fsnotify.Op) (Operation, bool) {
	switch {
	case fsOp.Has(fsnotify.Remove):
		return OpRemove, true
	case fsOp.Has(fsnotify.Rename):
		return OpRename, true
	case fsOp.Has(fsnotify.Create):
		return OpCreate, true
	case fsOp.Has(fsnotify.Write):
		return OpWrite, true
	default:
		return 0, false
	}
}

// queueEvent queues an event for debounced delivery.
// It coalesces events:
// - create + write => create
// - write + write => write (latest time)
// - any + remove => remove
// - remove + create => create (the file was replaced)
func (w *Watcher) queueEvent(event Event) {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	existing, exists := w.pending[event.Path]
	if !exists {
		w.pending[event.Path] = pendingEvent{Op: event.Op, Time: event.Time}
		return
	}

	op := event.Op
	if event.Op == OpWrite && existing.Op != OpWrite {
		op = existing.Op
	}
	w.pending[event.Path] = pendingEvent{Op: op, Time: event.Time}
}

func (w *Watcher) debounceLoop() {
	defer w.wg.Done()

	interval := w.debounce / 2
	if interval <= 0 {
		interval = w.debounce
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.processPendingEvents(time.Now())
		}
	}
}

// processPendingEvents emits events that have been stable since before
// now minus the debounce period.
func (w *Watcher) processPendingEvents(now time.Time) {
	w.pendingMu.Lock()
	stableThreshold := now.Add(-w.debounce)

	var toEmit []Event
	for path, pending := range w.pending {
		if pending.Time.Before(stableThreshold) {
			toEmit = append(toEmit, Event{
				Path: path,
				Op:   pending.Op,
				Time: pending.Time,
			})
			delete(w.pending, path)
		}
	}
	w.pendingMu.Unlock()

	sort.Slice(toEmit, func(i, j int) bool { return toEmit[i].Path < toEmit[j].Path })
	for _, event := range toEmit {
		w.emitEvent(event)
	}
}

// emitEvent calls all handlers with the event.
// A panicking handler does not stop the watcher goroutine.
func (w *Watcher) emitEvent(event Event) {
	w.mu.RLock()
	handlers := make([]Handler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.RUnlock()

	for _, handler := range handlers {
		safeCallHandler(handler, event)
	}
}

func safeCallHandler(handler Handler, event Event) {
	defer func() {
		_ = recover()
	}()
	handler(event)
}
