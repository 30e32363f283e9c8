package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/dshills/keychord/internal/config/loader"
	"github.com/dshills/keychord/internal/input/keymap"
	"github.com/dshills/keychord/internal/input/mode"
)

// runCheck validates each remap document. Every file is checked even after
// a failure so all problems are reported in one run.
func (a *App) runCheck(_ context.Context, args []string) error {
	fs := a.flagSet("check", "[-q] [files...]")
	quiet := fs.Bool("q", false, "Only report failures")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = a.opts.RemapPaths
	}
	if len(paths) == 0 {
		fs.Usage()
		return fmt.Errorf("%w: no remap files given", ErrUsage)
	}

	out := a.opts.Out
	errs := NewErrorList()
	for _, path := range paths {
		if !a.loader.Exists(path) {
			a.palette.warn.Fprintf(out, "- %s: not found\n", path)
			continue
		}

		remaps, err := a.loader.Load(path)
		if err != nil {
			a.palette.fail.Fprintf(out, "✗ %s\n", path)
			fmt.Fprintf(out, "    %v\n", err)
			errs.Add(NewOperationError("check", path, err))
			continue
		}

		if !*quiet {
			a.palette.ok.Fprintf(out, "✓ %s", path)
			fmt.Fprintf(out, " (%s)\n", summarize(remaps))
		}
	}

	if errs.HasErrors() {
		return fmt.Errorf("%w: %w", ErrInvalidRemaps, errs)
	}
	return nil
}

// summarize describes remaps as "3 remaps: Normal 2, Insert 1".
func summarize(remaps keymap.Remaps) string {
	n := remaps.Len()
	if n == 0 {
		return "no remaps"
	}

	noun := "remaps"
	if n == 1 {
		noun = "remap"
	}

	var parts []string
	for _, m := range mode.All() {
		if c := len(remaps[m]); c > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", m, c))
		}
	}
	return fmt.Sprintf("%d %s: %s", n, noun, strings.Join(parts, ", "))
}

// runFmt prints a remap document in canonical form: sections and keys
// sorted, and every chord in canonical spelling.
func (a *App) runFmt(_ context.Context, args []string) error {
	fs := a.flagSet("fmt", "[-w] [-format toml|yaml|lua] file")
	write := fs.Bool("w", false, "Write the result back to the file")
	formatName := fs.String("format", "", "Output format (toml, yaml or lua); defaults to the file's format")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("%w: fmt takes exactly one file", ErrUsage)
	}
	path := fs.Arg(0)

	format := loader.FormatForPath(path)
	switch *formatName {
	case "":
	case "toml":
		format = loader.FormatTOML
	case "yaml", "yml":
		format = loader.FormatYAML
	case "lua":
		format = loader.FormatLua
	default:
		return fmt.Errorf("%w: unknown format %q", ErrUsage, *formatName)
	}

	if !a.loader.Exists(path) {
		return NewOperationError("fmt", path, fmt.Errorf("file not found"))
	}
	remaps, err := a.loader.Load(path)
	if err != nil {
		return NewOperationError("fmt", path, err)
	}

	data, err := loader.Encode(remaps, format)
	if err != nil {
		return NewOperationError("fmt", path, err)
	}

	if *write {
		if err := a.writeFile(path, data, 0o644); err != nil {
			return NewOperationError("fmt", path, err)
		}
		a.logger.Info("formatted %s", path)
		return nil
	}

	_, err = a.opts.Out.Write(data)
	return err
}
