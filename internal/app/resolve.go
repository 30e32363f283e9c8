package app

import (
	"context"
	"fmt"

	"github.com/dshills/keychord/internal/input/action"
	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/keymap"
	"github.com/dshills/keychord/internal/input/mode"
)

// runResolve resolves each chord specification in one mode and prints the
// results as a table.
func (a *App) runResolve(_ context.Context, args []string) error {
	fs := a.flagSet("resolve", "[-mode Normal] chords...")
	modeName := fs.String("mode", mode.Normal.String(), "Mode to resolve in")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("%w: no chords given", ErrUsage)
	}

	m, err := parseMode(*modeName)
	if err != nil {
		return err
	}

	// Parse everything first so a typo prints no partial table.
	chords := make([]key.Chord, 0, fs.NArg())
	for _, spec := range fs.Args() {
		c, err := key.Parse(spec)
		if err != nil {
			return NewOperationError("resolve", spec, err)
		}
		chords = append(chords, c)
	}

	resolver, err := a.resolver()
	if err != nil {
		return err
	}

	t := a.palette.table("KEY", "REMAP", "ACTION", "DESCRIPTION")
	for _, c := range chords {
		t.Row(resultRow(resolver.Resolve(m, c))...)
	}
	fmt.Fprintln(a.opts.Out, t.String())
	return nil
}

// resultRow formats a resolution as KEY, REMAP, ACTION and DESCRIPTION
// cells.
func resultRow(res keymap.Result) []string {
	remap := "-"
	if res.Remapped {
		remap = displayChord(res.Chord)
	}

	if !res.Bound {
		return []string{displayChord(res.Input), remap, "(unbound)", ""}
	}
	return []string{
		displayChord(res.Input),
		remap,
		res.Action.String(),
		action.Describe(res.Action),
	}
}
