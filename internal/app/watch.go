package app

import (
	"context"
	"fmt"

	"github.com/dshills/keychord/internal/config"
	"github.com/dshills/keychord/internal/config/notify"
	"github.com/dshills/keychord/internal/input/keymap"
)

// runWatch loads the remap documents and reloads them whenever they change,
// logging each outcome, until ctx is cancelled. A document that fails to
// load is reported and the previous remaps stay active.
func (a *App) runWatch(ctx context.Context, args []string) error {
	fs := a.flagSet("watch", "[files...]")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = a.opts.RemapPaths
	}
	if len(paths) == 0 {
		fs.Usage()
		return fmt.Errorf("%w: no remap files to watch", ErrUsage)
	}

	log := a.logger.WithComponent("watch")

	n := notify.New()
	defer n.Close()
	n.Subscribe(func(c notify.Change) {
		switch c.Type {
		case notify.ChangeReload:
			log.WithField("snapshot", c.Snapshot).Info("loaded %s", c.Source)
		case notify.ChangeMode:
			log.WithField("mode", c.Mode).Info("remaps changed")
		case notify.ChangeRejected:
			log.Error("rejected %s: %v", c.Source, c.Err)
		}
	})

	resolver := keymap.NewResolver(a.bindings)
	reloader := config.NewReloader(resolver, paths,
		config.WithFileSystem(a.opts.FS),
		config.WithDebounce(a.opts.Debounce),
		config.WithNotifier(n),
	)

	// A bad document at startup is logged by the notifier; the defaults
	// stay active until it is fixed.
	if _, err := reloader.Reload(); err != nil {
		log.Warn("using default bindings until the remaps load")
	}

	log.Info("watching %s", reloader.Source())
	return reloader.Run(ctx, func(snap *keymap.Snapshot, err error) {
		if err == nil {
			log.Debug("%d remaps active", snap.Remaps.Len())
		}
	})
}
