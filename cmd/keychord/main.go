// Package main is the entry point for the keychord tool.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"

	"github.com/dshills/keychord/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// pathList is a repeatable string flag.
type pathList []string

func (p *pathList) String() string {
	return strings.Join(*p, ",")
}

func (p *pathList) Set(value string) error {
	*p = append(*p, value)
	return nil
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, args, code := parseFlags()
	if code >= 0 {
		return code
	}

	if opts.NoColor {
		color.NoColor = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application := app.New(opts)
	if err := application.Run(ctx, args); err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			return 0
		case errors.Is(err, app.ErrUsage), errors.Is(err, app.ErrUnknownCommand):
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	return 0
}

// parseFlags parses the global flags. A non-negative code means the
// program should exit with it.
func parseFlags() (app.Options, []string, int) {
	var opts app.Options
	var remaps pathList
	var showVersion bool
	var showHelp bool

	flag.Var(&remaps, "remaps", "Remap document to apply (repeatable; later files win)")
	flag.Var(&remaps, "r", "Remap document to apply (shorthand)")
	flag.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "keychord - key bindings and remaps for a modal editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keychord [options] <command> [command options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\n")
		app.Usage(os.Stderr)
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  keychord show -mode Insert             List insert mode bindings\n")
		fmt.Fprintf(os.Stderr, "  keychord -r remaps.toml resolve C-h    Resolve a chord through remaps\n")
		fmt.Fprintf(os.Stderr, "  keychord check remaps.toml             Validate a remap document\n")
		fmt.Fprintf(os.Stderr, "  keychord -r remaps.toml watch          Reload remaps as they change\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		return opts, nil, 0
	}

	if showVersion {
		fmt.Printf("keychord %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return opts, nil, 0
	}

	if !app.ValidLogLevel(opts.LogLevel) {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		return opts, nil, 2
	}

	opts.RemapPaths = remaps
	return opts, flag.Args(), -1
}
