package keymap

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/keychord/internal/input/action"
	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/mode"
)

// Result describes how a chord was resolved.
type Result struct {
	// Input is the chord that was observed.
	Input key.Chord

	// Chord is the chord looked up in the binding table, after remapping.
	Chord key.Chord

	// Action is the bound action. Empty when Bound is false.
	Action action.Name

	// Remapped is true if a remap table substituted Chord for Input.
	Remapped bool

	// Bound is true if Chord has a binding in the mode's table.
	Bound bool
}

// Apply runs the remap stage: it returns the target of c in m's remap
// table, or c unchanged. Remaps are applied once, never chained.
func Apply(remaps Remaps, m mode.Mode, c key.Chord) (key.Chord, bool) {
	return remaps[m].Apply(c)
}

// Resolve remaps c for mode m and looks the result up in the mode's binding
// table. An unbound chord is reported through Result.Bound, not an error.
func Resolve(bindings Set, remaps Remaps, m mode.Mode, c key.Chord) Result {
	target, remapped := Apply(remaps, m, c)
	a, bound := bindings.Lookup(m, target)
	return Result{
		Input:    c,
		Chord:    target,
		Action:   a,
		Remapped: remapped,
		Bound:    bound,
	}
}

// Snapshot is an immutable remap configuration installed in a Resolver.
type Snapshot struct {
	// ID identifies this load of the remap document.
	ID uuid.UUID

	// Remaps must not be modified once the snapshot is installed.
	Remaps Remaps

	// Source describes where the remaps came from, such as a file path.
	Source string

	// LoadedAt is when the snapshot was created.
	LoadedAt time.Time
}

// NewSnapshot wraps remaps in a snapshot with a fresh ID.
func NewSnapshot(remaps Remaps, source string) *Snapshot {
	if remaps == nil {
		remaps = Remaps{}
	}
	return &Snapshot{
		ID:       uuid.New(),
		Remaps:   remaps,
		Source:   source,
		LoadedAt: time.Now(),
	}
}

// Resolver resolves chords against a fixed binding set and the current remap
// snapshot.
//
// Thread Safety:
// Resolver is safe for concurrent use. The binding set is never modified
// after construction, and remap snapshots are replaced whole with an atomic
// swap: a reader sees either the old snapshot or the new one, never a mix.
type Resolver struct {
	bindings Set
	current  atomic.Pointer[Snapshot]
}

// NewResolver creates a resolver over bindings with an empty remap snapshot.
// The resolver takes ownership of bindings.
func NewResolver(bindings Set) *Resolver {
	r := &Resolver{bindings: bindings}
	r.current.Store(NewSnapshot(nil, ""))
	return r
}

// Bindings returns the binding set. Callers must treat it as read-only.
func (r *Resolver) Bindings() Set {
	return r.bindings
}

// Snapshot returns the current remap snapshot.
func (r *Resolver) Snapshot() *Snapshot {
	return r.current.Load()
}

// Swap installs remaps as the current snapshot and returns it. The resolver
// takes ownership of remaps.
func (r *Resolver) Swap(remaps Remaps, source string) *Snapshot {
	snap := NewSnapshot(remaps, source)
	r.current.Store(snap)
	return snap
}

// Resolve resolves c in mode m using the current snapshot.
func (r *Resolver) Resolve(m mode.Mode, c key.Chord) Result {
	return Resolve(r.bindings, r.current.Load().Remaps, m, c)
}

// Lookup returns the action c resolves to in mode m.
func (r *Resolver) Lookup(m mode.Mode, c key.Chord) (action.Name, bool) {
	res := r.Resolve(m, c)
	return res.Action, res.Bound
}
