// Package config keeps a Resolver's remaps in sync with remap documents on
// disk.
//
// A Reloader loads one or more remap files, layers them in order and
// installs the result into a keymap.Resolver as a new snapshot. A document
// that fails to load is rejected whole: the previous snapshot stays active
// and the error is reported to the caller and to notify observers.
//
// # Usage
//
//	resolver := keymap.NewResolver(keymap.Default())
//	r := config.NewReloader(resolver, []string{path})
//	if _, err := r.Reload(); err != nil {
//	    // report err; default bindings stay active
//	}
//	go r.Run(ctx, func(snap *keymap.Snapshot, err error) { ... })
package config

import (
	"time"

	"github.com/dshills/keychord/internal/config/loader"
	"github.com/dshills/keychord/internal/config/notify"
)

// DefaultDebounce is how long a remap file must be quiet before it is
// reloaded.
const DefaultDebounce = 100 * time.Millisecond

// Options configures a Reloader.
type Options struct {
	// FS is the file system remap documents are read from.
	FS loader.FileSystem

	// Debounce is passed to the file watcher.
	Debounce time.Duration

	// Notifier receives reload outcomes. May be nil.
	Notifier *notify.Notifier
}

// Option configures Options.
type Option func(*Options)

// WithFileSystem sets the file system remap documents are read from.
func WithFileSystem(fs loader.FileSystem) Option {
	return func(o *Options) {
		if fs != nil {
			o.FS = fs
		}
	}
}

// WithDebounce sets the watcher debounce period.
func WithDebounce(d time.Duration) Option {
	return func(o *Options) {
		if d >= 0 {
			o.Debounce = d
		}
	}
}

// WithNotifier sets the notifier that receives reload outcomes.
func WithNotifier(n *notify.Notifier) Option {
	return func(o *Options) {
		o.Notifier = n
	}
}

// DefaultOptions returns the default reloader options.
func DefaultOptions() Options {
	return Options{
		FS:       loader.DefaultFS(),
		Debounce: DefaultDebounce,
	}
}
