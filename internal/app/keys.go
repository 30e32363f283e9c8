package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/keymap"
	"github.com/dshills/keychord/internal/input/mode"
	"github.com/dshills/keychord/internal/input/term"
)

// quitChord ends the keys command.
var quitChord = key.Ctrl('c')

// runKeys reads chords from the terminal and shows what each resolves to in
// one mode. It returns after C-c, when ctx is cancelled, or when the
// terminal closes. The resolved lines are echoed to the output afterwards.
func (a *App) runKeys(ctx context.Context, args []string) error {
	fs := a.flagSet("keys", "[-mode Normal]")
	modeName := fs.String("mode", mode.Normal.String(), "Mode to resolve in")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	m, err := parseMode(*modeName)
	if err != nil {
		return err
	}

	resolver, err := a.resolver()
	if err != nil {
		return err
	}

	screen, err := a.newScreen()
	if err != nil {
		return err
	}

	var finiOnce sync.Once
	fini := func() { finiOnce.Do(screen.Fini) }
	defer fini()

	// Cancellation finalizes the screen, which unblocks the source.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			fini()
		case <-done:
		}
	}()

	v := &keysView{
		screen: screen,
		header: fmt.Sprintf("%s mode: press keys, C-c to quit", m),
	}

	src := term.NewSource(screen)
	src.OnResize(func(int, int) {
		screen.Sync()
		v.draw()
	})
	src.ShowMode(m)
	v.draw()

	for {
		c, err := src.Next()
		if err != nil {
			if errors.Is(err, term.ErrClosed) {
				break
			}
			return err
		}
		if c == quitChord {
			break
		}

		line := describeResult(resolver.Resolve(m, c))
		a.logger.Debug("%s", line)
		v.add(line)
		v.draw()
	}

	fini()
	for _, line := range v.lines {
		fmt.Fprintln(a.opts.Out, line)
	}
	return nil
}

// describeResult formats a resolution as a single line, such as
// "C-h => Bs: insert.deleteCharBackward".
func describeResult(res keymap.Result) string {
	var b strings.Builder
	b.WriteString(displayChord(res.Input))
	if res.Remapped {
		b.WriteString(" => ")
		b.WriteString(displayChord(res.Chord))
	}
	b.WriteString(": ")
	if res.Bound {
		b.WriteString(res.Action.String())
	} else {
		b.WriteString("(unbound)")
	}
	return b.String()
}

// keysView draws the header and the most recent lines that fit the screen.
type keysView struct {
	screen tcell.Screen
	header string
	lines  []string
}

func (v *keysView) add(line string) {
	v.lines = append(v.lines, line)
}

func (v *keysView) draw() {
	v.screen.Clear()
	_, h := v.screen.Size()
	if h <= 0 {
		return
	}

	v.drawText(0, v.header, tcell.StyleDefault.Bold(true))

	visible := v.lines
	room := h - 2
	if room < 0 {
		room = 0
	}
	if len(visible) > room {
		visible = visible[len(visible)-room:]
	}
	for i, line := range visible {
		v.drawText(i+2, line, tcell.StyleDefault)
	}
	v.screen.Show()
}

func (v *keysView) drawText(y int, text string, style tcell.Style) {
	w, _ := v.screen.Size()
	x := 0
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > w {
			return
		}
		v.screen.SetContent(x, y, r, nil, style)
		x += rw
	}
}
