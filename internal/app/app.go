// Package app implements the keychord command line tool.
//
// The tool works with the built-in key bindings and user remap documents:
//
//	check    validate remap documents
//	fmt      rewrite a remap document in canonical form
//	show     list the bindings of one or all modes
//	resolve  resolve chords through remaps and bindings
//	watch    reload remap documents as they change
//	keys     read chords from the terminal and show what they resolve to
//
// Each command is a method on App. Commands write their output to
// Options.Out and diagnostics to Options.Err.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keychord/internal/config"
	"github.com/dshills/keychord/internal/config/loader"
	"github.com/dshills/keychord/internal/input/fuzzy"
	"github.com/dshills/keychord/internal/input/keymap"
	"github.com/dshills/keychord/internal/input/mode"
)

// Options configures the application.
type Options struct {
	// RemapPaths are the remap documents applied on top of the default
	// bindings. Later files override earlier ones.
	RemapPaths []string

	// NoColor disables colored output.
	NoColor bool

	// LogLevel is the minimum level for log output.
	LogLevel string

	// Out receives command output. Defaults to os.Stdout.
	Out io.Writer

	// Err receives logs and diagnostics. Defaults to os.Stderr.
	Err io.Writer

	// FS is the file system remap documents are read from.
	FS loader.FileSystem

	// Debounce is how long watch waits for a remap file to settle.
	Debounce time.Duration
}

// ScreenFactory creates an initialized terminal screen.
type ScreenFactory func() (tcell.Screen, error)

// App runs keychord commands.
type App struct {
	opts      Options
	loader    *loader.Loader
	bindings  keymap.Set
	logger    *Logger
	palette   *palette
	newScreen ScreenFactory
	writeFile func(name string, data []byte, perm os.FileMode) error
}

type command struct {
	name    string
	summary string
	run     func(a *App, ctx context.Context, args []string) error
}

var commands = []command{
	{"check", "Validate remap documents", (*App).runCheck},
	{"fmt", "Print a remap document in canonical form", (*App).runFmt},
	{"show", "List key bindings", (*App).runShow},
	{"resolve", "Resolve chords to actions", (*App).runResolve},
	{"watch", "Reload remap documents as they change", (*App).runWatch},
	{"keys", "Read chords from the terminal and resolve them", (*App).runKeys},
}

// New creates an application with the default bindings.
func New(opts Options) *App {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.FS == nil {
		opts.FS = loader.DefaultFS()
	}
	if opts.Debounce <= 0 {
		opts.Debounce = config.DefaultDebounce
	}

	logger := NewLogger(LoggerConfig{
		Level:   ParseLogLevel(opts.LogLevel),
		Output:  opts.Err,
		Prefix:  "keychord",
		NoColor: opts.NoColor,
	})

	return &App{
		opts:      opts,
		loader:    loader.NewWithFS(opts.FS),
		bindings:  keymap.Default(),
		logger:    logger,
		palette:   newPalette(opts.Out, opts.NoColor),
		newScreen: newTerminalScreen,
		writeFile: os.WriteFile,
	}
}

// SetScreenFactory replaces the function used to open the terminal.
func (a *App) SetScreenFactory(f ScreenFactory) {
	if f != nil {
		a.newScreen = f
	}
}

// Logger returns the application logger.
func (a *App) Logger() *Logger {
	return a.logger
}

// Run dispatches args[0] to its command.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		Usage(a.opts.Err)
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	name := args[0]
	if name == "help" {
		Usage(a.opts.Out)
		return nil
	}

	for _, cmd := range commands {
		if cmd.name == name {
			a.logger.Debug("running %s", name)
			return cmd.run(a, ctx, args[1:])
		}
	}

	Usage(a.opts.Err)
	return fmt.Errorf("%w %q", ErrUnknownCommand, name)
}

// Usage writes the command summary to w.
func Usage(w io.Writer) {
	fmt.Fprintf(w, "Commands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", cmd.name, cmd.summary)
	}
	fmt.Fprintf(w, "\nRun 'keychord <command> -h' for command options.\n")
}

// flagSet creates a flag set for a command that reports errors instead of
// exiting.
func (a *App) flagSet(name, usage string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.opts.Err)
	fs.Usage = func() {
		fmt.Fprintf(a.opts.Err, "Usage: keychord %s %s\n", name, usage)
		fs.PrintDefaults()
	}
	return fs
}

// parseFlags parses args, mapping flag errors to ErrUsage.
// A request for help is reported as flag.ErrHelp.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

// loadRemaps loads the configured remap documents.
func (a *App) loadRemaps() (keymap.Remaps, error) {
	remaps, err := a.loader.LoadAll(a.opts.RemapPaths...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRemaps, err)
	}
	return remaps, nil
}

// resolver returns a resolver over the default bindings with the configured
// remaps installed.
func (a *App) resolver() (*keymap.Resolver, error) {
	remaps, err := a.loadRemaps()
	if err != nil {
		return nil, err
	}
	r := keymap.NewResolver(a.bindings)
	r.Swap(remaps, strings.Join(a.opts.RemapPaths, ", "))
	return r, nil
}

// parseModes parses a comma separated list of mode names. An empty list
// selects every mode.
func parseModes(list string) ([]mode.Mode, error) {
	if list == "" {
		return mode.All(), nil
	}

	seen := make(map[mode.Mode]bool)
	var modes []mode.Mode
	for _, name := range strings.Split(list, ",") {
		m, err := parseMode(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		if !seen[m] {
			seen[m] = true
			modes = append(modes, m)
		}
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes, nil
}

// parseMode parses a mode name, suggesting the closest mode on error.
func parseMode(name string) (mode.Mode, error) {
	m, err := mode.Parse(name)
	if err == nil {
		return m, nil
	}

	names := make([]string, 0, len(mode.All()))
	for _, md := range mode.All() {
		names = append(names, md.String())
	}
	if s, ok := fuzzy.Closest(name, names); ok {
		return 0, fmt.Errorf("%w: %w (did you mean %q?)", ErrUsage, err, s)
	}
	return 0, fmt.Errorf("%w: %w", ErrUsage, err)
}

func newTerminalScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	return screen, nil
}
