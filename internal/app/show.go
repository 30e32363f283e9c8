package app

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	bkey "github.com/charmbracelet/bubbles/key"

	"github.com/dshills/keychord/internal/input/action"
	"github.com/dshills/keychord/internal/input/fuzzy"
	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/keymap"
	"github.com/dshills/keychord/internal/input/mode"
)

// displayChord returns the chord as shown to users. The space chord has no
// visible spelling of its own.
func displayChord(c key.Chord) string {
	if c == key.Char(' ') {
		return "Space"
	}
	return key.Format(c)
}

// helpBindings converts key bindings to help entries.
func helpBindings(bindings []keymap.Binding) []bkey.Binding {
	out := make([]bkey.Binding, 0, len(bindings))
	for _, b := range bindings {
		display := displayChord(b.Chord)
		out = append(out, bkey.NewBinding(
			bkey.WithKeys(key.Format(b.Chord)),
			bkey.WithHelp(display, action.Describe(b.Action)),
		))
	}
	return out
}

// filterBindings keeps the bindings whose action name or description
// fuzzy-matches query. An empty query keeps everything.
func filterBindings(bindings []keymap.Binding, query string) []keymap.Binding {
	if strings.TrimSpace(query) == "" {
		return bindings
	}

	out := make([]keymap.Binding, 0, len(bindings))
	for _, b := range bindings {
		if fuzzy.Matches(query, b.Action.String()) || fuzzy.Matches(query, action.Describe(b.Action)) {
			out = append(out, b)
		}
	}
	return out
}

// runShow lists the bindings of each requested mode grouped by category,
// followed by the mode's active remaps.
func (a *App) runShow(_ context.Context, args []string) error {
	fs := a.flagSet("show", "[-mode Normal,Select,Insert] [-filter query]")
	modeList := fs.String("mode", "", "Comma separated modes to show (default all)")
	filter := fs.String("filter", "", "Only show bindings whose action fuzzy-matches this query")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("%w: unexpected arguments %v", ErrUsage, fs.Args())
	}

	modes, err := parseModes(*modeList)
	if err != nil {
		return err
	}

	remaps, err := a.loadRemaps()
	if err != nil {
		return err
	}

	out := a.opts.Out
	for i, m := range modes {
		if i > 0 {
			fmt.Fprintln(out)
		}
		a.showMode(out, m, remaps[m], *filter)
	}
	return nil
}

func (a *App) showMode(out io.Writer, m mode.Mode, remap keymap.Remap, filter string) {
	p := a.palette
	title := fmt.Sprintf("%s mode (%s cursor)", m, m.CursorStyle())
	fmt.Fprintln(out, p.heading.Render(title))

	bindings := filterBindings(a.bindings.Table(m).Bindings(), filter)
	if len(bindings) == 0 {
		fmt.Fprintln(out, p.subheading.Render("No matching bindings"))
	}

	h := p.help()
	for _, cat := range keymap.GroupByCategory(bindings) {
		fmt.Fprintln(out, p.subheading.Render(cat.Name))
		fmt.Fprintln(out, h.FullHelpView([][]bkey.Binding{helpBindings(cat.Bindings)}))
	}

	if len(remap) == 0 {
		return
	}

	fmt.Fprintln(out, p.subheading.Render("Remaps"))
	sources := make([]key.Chord, 0, len(remap))
	for c := range remap {
		sources = append(sources, c)
	}
	sort.Slice(sources, func(i, j int) bool {
		return key.Format(sources[i]) < key.Format(sources[j])
	})

	entries := make([]bkey.Binding, 0, len(sources))
	for _, src := range sources {
		res := keymap.Resolve(a.bindings, keymap.Remaps{m: remap}, m, src)
		desc := displayChord(res.Chord)
		if res.Bound {
			desc += " (" + action.Describe(res.Action) + ")"
		} else {
			desc += " (unbound)"
		}
		entries = append(entries, bkey.NewBinding(
			bkey.WithKeys(key.Format(src)),
			bkey.WithHelp(displayChord(src), desc),
		))
	}
	fmt.Fprintln(out, h.FullHelpView([][]bkey.Binding{entries}))
}
