// Package notify announces remap reloads to interested components.
//
// Observers subscribe either to every change or to a single mode. A reload
// produces one document-wide change plus one change per mode whose remap
// table differs from the previous snapshot; a rejected reload produces a
// single document-wide change carrying the error.
package notify

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/keychord/internal/input/mode"
)

// ChangeType represents the type of remap change.
type ChangeType int

const (
	// ChangeReload indicates a new remap snapshot was installed.
	ChangeReload ChangeType = iota

	// ChangeMode indicates the remap table of one mode changed.
	ChangeMode

	// ChangeRejected indicates a remap document failed to load and the
	// previous snapshot stays active.
	ChangeRejected
)

// String returns the change type name.
func (c ChangeType) String() string {
	switch c {
	case ChangeReload:
		return "reload"
	case ChangeMode:
		return "mode"
	case ChangeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Change represents a remap change event.
type Change struct {
	// Type is the type of change.
	Type ChangeType

	// Mode is the affected mode. Only meaningful for ChangeMode.
	Mode mode.Mode

	// Snapshot is the ID of the installed snapshot. Zero for rejections.
	Snapshot uuid.UUID

	// Source identifies the document, such as its file path.
	Source string

	// Err is the load error for ChangeRejected.
	Err error
}

// Observer is called when remap changes occur.
type Observer func(change Change)

// Subscription represents an active observer subscription.
type Subscription struct {
	id       uint64
	notifier *Notifier
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

// Notifier manages remap change subscriptions.
type Notifier struct {
	mu sync.RWMutex

	// Observers that receive all changes
	globalObservers map[uint64]Observer

	// Mode-specific observers
	modeObservers map[mode.Mode]map[uint64]Observer

	nextID uint64

	async  bool
	buffer chan Change
	done   chan struct{}
	wg     sync.WaitGroup
	closed bool
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithAsync enables asynchronous notification delivery.
func WithAsync(bufferSize int) Option {
	return func(n *Notifier) {
		if bufferSize > 0 {
			n.async = true
			n.buffer = make(chan Change, bufferSize)
		}
	}
}

// New creates a new Notifier.
func New(opts ...Option) *Notifier {
	n := &Notifier{
		globalObservers: make(map[uint64]Observer),
		modeObservers:   make(map[mode.Mode]map[uint64]Observer),
		done:            make(chan struct{}),
	}

	for _, opt := range opts {
		opt(n)
	}

	if n.async {
		n.wg.Add(1)
		go n.processAsync()
	}

	return n
}

// Subscribe registers an observer for all changes.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.globalObservers[id] = observer

	return &Subscription{id: id, notifier: n}
}

// SubscribeMode registers an observer for changes to m's remap table.
// The observer also receives document-wide reloads and rejections.
func (n *Notifier) SubscribeMode(m mode.Mode, observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++

	if n.modeObservers[m] == nil {
		n.modeObservers[m] = make(map[uint64]Observer)
	}
	n.modeObservers[m][id] = observer

	return &Subscription{id: id, notifier: n}
}

// Notify sends a change notification to all relevant observers.
func (n *Notifier) Notify(change Change) {
	n.mu.RLock()
	if n.closed {
		n.mu.RUnlock()
		return
	}
	n.mu.RUnlock()

	if n.async {
		select {
		case n.buffer <- change:
		case <-n.done:
		}
		return
	}

	n.deliverChange(change)
}

// NotifyReload announces a new snapshot and the modes whose tables changed.
func (n *Notifier) NotifyReload(id uuid.UUID, source string, changed []mode.Mode) {
	n.Notify(Change{Type: ChangeReload, Snapshot: id, Source: source})
	for _, m := range changed {
		n.Notify(Change{Type: ChangeMode, Mode: m, Snapshot: id, Source: source})
	}
}

// NotifyRejected announces a document that failed to load.
func (n *Notifier) NotifyRejected(source string, err error) {
	n.Notify(Change{Type: ChangeRejected, Source: source, Err: err})
}

// Close shuts down the notifier. It is safe to call Close multiple times.
func (n *Notifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	n.mu.Unlock()

	close(n.done)
	n.wg.Wait()
}

func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.globalObservers, id)

	for m, observers := range n.modeObservers {
		delete(observers, id)
		if len(observers) == 0 {
			delete(n.modeObservers, m)
		}
	}
}

// deliverChange sends a change to all matching observers in subscription
// order.
func (n *Notifier) deliverChange(change Change) {
	n.mu.RLock()

	matched := make(map[uint64]Observer)
	for id, obs := range n.globalObservers {
		matched[id] = obs
	}
	for m, modeObs := range n.modeObservers {
		if change.Type == ChangeMode && change.Mode != m {
			continue
		}
		for id, obs := range modeObs {
			matched[id] = obs
		}
	}

	n.mu.RUnlock()

	ids := make([]uint64, 0, len(matched))
	for id := range matched {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	// Call observers outside the lock
	for _, id := range ids {
		matched[id](change)
	}
}

func (n *Notifier) processAsync() {
	defer n.wg.Done()

	for {
		select {
		case change := <-n.buffer:
			n.deliverChange(change)
		case <-n.done:
			// Drain remaining buffered changes
			for {
				select {
				case change := <-n.buffer:
					n.deliverChange(change)
				default:
					return
				}
			}
		}
	}
}
