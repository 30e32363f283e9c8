// Package term converts between terminal key events and key chords.
//
// Terminals report far less than a keyboard does: Shift is usually folded
// into the rune, Ctrl with a letter arrives as a dedicated control key, and
// Meta is reported as Alt. FromEvent normalizes these reports into chords
// that compare equal to the ones parsed from a binding specification.
package term

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/mode"
)

// ErrClosed is returned by Source.Next once the screen has been finalized.
var ErrClosed = errors.New("terminal closed")

// namedKeys maps tcell's non-rune keys to chord keys.
var namedKeys = map[tcell.Key]key.Key{
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBacktab:    key.KeyBackTab,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyNUL:        key.KeyNull,
	tcell.KeyF1:         key.KeyF1,
	tcell.KeyF2:         key.KeyF2,
	tcell.KeyF3:         key.KeyF3,
	tcell.KeyF4:         key.KeyF4,
	tcell.KeyF5:         key.KeyF5,
	tcell.KeyF6:         key.KeyF6,
	tcell.KeyF7:         key.KeyF7,
	tcell.KeyF8:         key.KeyF8,
	tcell.KeyF9:         key.KeyF9,
	tcell.KeyF10:        key.KeyF10,
	tcell.KeyF11:        key.KeyF11,
	tcell.KeyF12:        key.KeyF12,
}

// tcellKeys is the reverse of namedKeys. Backspace always maps to
// tcell.KeyBackspace2, the code terminals send for the Backspace key.
var tcellKeys = func() map[key.Key]tcell.Key {
	m := make(map[key.Key]tcell.Key, len(namedKeys))
	for tk, k := range namedKeys {
		m[k] = tk
	}
	m[key.KeyBackspace] = tcell.KeyBackspace2
	return m
}()

// FromEvent converts a tcell key event to a chord. It returns false for keys
// that have no chord representation, such as F13 or the keypad center key.
func FromEvent(ev *tcell.EventKey) (key.Chord, bool) {
	mods := convertMod(ev.Modifiers())
	k := ev.Key()

	switch {
	case k == tcell.KeyRune:
		return key.New(key.KeyRune, ev.Rune(), mods), true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return key.New(key.KeyRune, 'a'+rune(k-tcell.KeyCtrlA), mods).WithModifier(key.ModCtrl), true
	case k == tcell.KeyCtrlSpace:
		return key.New(key.KeyRune, ' ', mods).WithModifier(key.ModCtrl), true
	}

	if ck, ok := namedKeys[k]; ok {
		return key.New(ck, 0, mods), true
	}
	return key.Chord{}, false
}

// ToEvent builds the tcell event a terminal would deliver for c.
//
// The conversion is lossy where tcell is: a Shift-only rune event drops the
// Shift modifier, and Ctrl with a printable rune between '@' and '_' becomes
// the matching control key.
func ToEvent(c key.Chord) *tcell.EventKey {
	mods := convertToTcellMod(c.Modifiers)
	if c.Key == key.KeyRune {
		return tcell.NewEventKey(tcell.KeyRune, c.Rune, mods)
	}
	tk, ok := tcellKeys[c.Key]
	if !ok {
		return tcell.NewEventKey(tcell.KeyNUL, 0, mods)
	}
	return tcell.NewEventKey(tk, 0, mods)
}

// convertMod converts tcell modifiers. Meta is folded into Alt.
func convertMod(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods |= key.ModShift
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		mods |= key.ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	return mods
}

func convertToTcellMod(m key.Modifier) tcell.ModMask {
	mask := tcell.ModNone
	if m.HasShift() {
		mask |= tcell.ModShift
	}
	if m.HasAlt() {
		mask |= tcell.ModAlt
	}
	if m.HasCtrl() {
		mask |= tcell.ModCtrl
	}
	return mask
}

// CursorStyle converts a mode's cursor style to tcell's.
func CursorStyle(style mode.CursorStyle) tcell.CursorStyle {
	switch style {
	case mode.CursorBar:
		return tcell.CursorStyleSteadyBar
	case mode.CursorUnderline:
		return tcell.CursorStyleSteadyUnderline
	default:
		return tcell.CursorStyleSteadyBlock
	}
}
