package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dshills/keychord/internal/config/loader"
	"github.com/dshills/keychord/internal/config/watcher"
	"github.com/dshills/keychord/internal/input/keymap"
)

// ErrNoPaths is returned by Run when the reloader has no files to watch.
var ErrNoPaths = errors.New("no remap files to watch")

// ReloadFunc receives the outcome of each reload triggered by a file change.
// Exactly one of snap and err is non-nil.
type ReloadFunc func(snap *keymap.Snapshot, err error)

// Reloader loads remap documents into a Resolver.
type Reloader struct {
	resolver *keymap.Resolver
	loader   *loader.Loader
	paths    []string
	opts     Options

	// Serializes reloads so snapshots are installed in load order
	mu sync.Mutex
}

// NewReloader creates a reloader for the given remap files. Later files
// override earlier ones.
func NewReloader(resolver *keymap.Resolver, paths []string, opts ...Option) *Reloader {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Reloader{
		resolver: resolver,
		loader:   loader.NewWithFS(o.FS),
		paths:    append([]string(nil), paths...),
		opts:     o,
	}
}

// Source describes the remap files for snapshots and diagnostics.
func (r *Reloader) Source() string {
	return strings.Join(r.paths, ", ")
}

// Reload loads the remap files and installs them as a new snapshot.
// On error the current snapshot is left in place.
func (r *Reloader) Reload() (*keymap.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	remaps, err := r.loader.LoadAll(r.paths...)
	if err != nil {
		if r.opts.Notifier != nil {
			r.opts.Notifier.NotifyRejected(r.Source(), err)
		}
		return nil, err
	}

	prev := r.resolver.Snapshot()
	snap := r.resolver.Swap(remaps, r.Source())

	if r.opts.Notifier != nil {
		r.opts.Notifier.NotifyReload(snap.ID, snap.Source, prev.Remaps.Changed(snap.Remaps))
	}
	return snap, nil
}

// Run watches the remap files and reloads them on change until ctx is
// cancelled. Each outcome is passed to onReload, which may be nil.
// Run returns nil when ctx is cancelled.
func (r *Reloader) Run(ctx context.Context, onReload ReloadFunc) error {
	if len(r.paths) == 0 {
		return ErrNoPaths
	}

	w, err := watcher.New(watcher.WithDebounce(r.opts.Debounce))
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	for _, path := range r.paths {
		if err := w.Watch(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
	}

	// A single pending slot: changes that arrive during a reload collapse
	// into one more reload.
	changed := make(chan struct{}, 1)
	w.OnChange(func(watcher.Event) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	w.Start()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changed:
			snap, err := r.Reload()
			if onReload != nil {
				onReload(snap, err)
			}
		}
	}
}
