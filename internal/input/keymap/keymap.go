package keymap

import (
	"sort"

	"github.com/dshills/keychord/internal/input/action"
	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/mode"
)

// Table maps chords to actions for a single mode.
// Each chord has at most one action; a later insertion replaces an earlier one.
type Table map[key.Chord]action.Name

// NewTable builds a table by inserting bindings in order.
// When a chord appears more than once, the last binding wins.
func NewTable(bindings ...Binding) Table {
	t := make(Table, len(bindings))
	t.Overlay(bindings...)
	return t
}

// Overlay applies bindings to t in order, last writer wins.
func (t Table) Overlay(bindings ...Binding) {
	for _, b := range bindings {
		t[b.Chord] = b.Action
	}
}

// Clone returns an independent copy of t.
func (t Table) Clone() Table {
	clone := make(Table, len(t))
	for c, a := range t {
		clone[c] = a
	}
	return clone
}

// Lookup returns the action bound to c.
func (t Table) Lookup(c key.Chord) (action.Name, bool) {
	a, ok := t[c]
	return a, ok
}

// Bindings returns the table's entries sorted by chord specification.
func (t Table) Bindings() []Binding {
	bindings := make([]Binding, 0, len(t))
	for c, a := range t {
		bindings = append(bindings, Binding{Chord: c, Action: a})
	}
	sort.Slice(bindings, func(i, j int) bool {
		return bindings[i].Chord.String() < bindings[j].Chord.String()
	})
	return bindings
}

// Equal reports whether t and other hold the same entries.
func (t Table) Equal(other Table) bool {
	if len(t) != len(other) {
		return false
	}
	for c, a := range t {
		if b, ok := other[c]; !ok || a != b {
			return false
		}
	}
	return true
}

// Set holds a binding table per mode.
type Set map[mode.Mode]Table

// Table returns the table for m, or nil if the mode has none.
func (s Set) Table(m mode.Mode) Table {
	return s[m]
}

// Lookup returns the action bound to c in mode m.
func (s Set) Lookup(m mode.Mode, c key.Chord) (action.Name, bool) {
	return s[m].Lookup(c)
}

// Clone returns a deep copy of s.
func (s Set) Clone() Set {
	clone := make(Set, len(s))
	for m, t := range s {
		clone[m] = t.Clone()
	}
	return clone
}

// Equal reports whether s and other hold equal tables for the same modes.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for m, t := range s {
		o, ok := other[m]
		if !ok || !t.Equal(o) {
			return false
		}
	}
	return true
}
