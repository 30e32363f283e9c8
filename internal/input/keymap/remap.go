package keymap

import (
	"fmt"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/mode"
)

// Remap substitutes one chord for another within a mode.
type Remap map[key.Chord]key.Chord

// Remaps holds a remap table per mode.
type Remaps map[mode.Mode]Remap

// Document is the raw shape of a remap document: mode name to a mapping of
// source chord specification to target chord specification.
type Document map[string]map[string]string

// RemapError reports the document entry that could not be loaded.
type RemapError struct {
	// Mode is the section name as written in the document.
	Mode string

	// Key is the source chord specification, empty for mode errors.
	Key string

	// Err is mode.ErrUnknownMode or a *key.SyntaxError.
	Err error
}

func (e *RemapError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("remap [%s]: %v", e.Mode, e.Err)
	}
	return fmt.Sprintf("remap [%s] %q: %v", e.Mode, e.Key, e.Err)
}

func (e *RemapError) Unwrap() error {
	return e.Err
}

// ParseRemaps parses a TOML remap document:
//
//	[Insert]
//	y = "x"
//	S-C-a = "F12"
//
//	[Normal]
//	A-F12 = "S-C-w"
//
// Section names must be canonical mode names. Targets are not checked
// against any binding table.
func ParseRemaps(doc string) (Remaps, error) {
	var raw Document
	if err := toml.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, fmt.Errorf("decoding remaps: %w", err)
	}
	return DecodeRemaps(raw)
}

// DecodeRemaps converts a decoded document into Remaps.
// Sections and keys are processed in sorted order, so the error reported for
// a document with several bad entries is always the same one.
func DecodeRemaps(doc Document) (Remaps, error) {
	remaps := make(Remaps, len(doc))

	for _, section := range sortedKeys(doc) {
		m, err := mode.Parse(section)
		if err != nil {
			return nil, &RemapError{Mode: section, Err: err}
		}

		entries := doc[section]
		remap := make(Remap, len(entries))
		for _, source := range sortedKeys(entries) {
			from, err := key.Parse(source)
			if err != nil {
				return nil, &RemapError{Mode: section, Key: source, Err: err}
			}
			to, err := key.Parse(entries[source])
			if err != nil {
				return nil, &RemapError{Mode: section, Key: source, Err: err}
			}
			remap[from] = to
		}
		remaps[m] = remap
	}

	return remaps, nil
}

// Document converts r back to its raw document shape, using canonical mode
// names and chord specifications.
func (r Remaps) Document() Document {
	doc := make(Document, len(r))
	for m, remap := range r {
		entries := make(map[string]string, len(remap))
		for from, to := range remap {
			entries[from.String()] = to.String()
		}
		doc[m.String()] = entries
	}
	return doc
}

// FormatRemaps renders r as a TOML remap document that ParseRemaps reads
// back to an equal value.
func FormatRemaps(r Remaps) (string, error) {
	data, err := toml.Marshal(r.Document())
	if err != nil {
		return "", fmt.Errorf("encoding remaps: %w", err)
	}
	return string(data), nil
}

// Apply returns the target for c, or c itself when it is not remapped.
func (r Remap) Apply(c key.Chord) (key.Chord, bool) {
	if to, ok := r[c]; ok {
		return to, true
	}
	return c, false
}

// Clone returns a deep copy of r.
func (r Remaps) Clone() Remaps {
	clone := make(Remaps, len(r))
	for m, remap := range r {
		rc := make(Remap, len(remap))
		for from, to := range remap {
			rc[from] = to
		}
		clone[m] = rc
	}
	return clone
}

// Merge returns a new Remaps with the entries of other layered over r.
// Neither input is modified.
func (r Remaps) Merge(other Remaps) Remaps {
	merged := r.Clone()
	for m, remap := range other {
		dst, ok := merged[m]
		if !ok {
			dst = make(Remap, len(remap))
			merged[m] = dst
		}
		for from, to := range remap {
			dst[from] = to
		}
	}
	return merged
}

// Equal reports whether r and other hold the same entries.
func (r Remaps) Equal(other Remaps) bool {
	if len(r) != len(other) {
		return false
	}
	for m, remap := range r {
		o, ok := other[m]
		if !ok || len(o) != len(remap) {
			return false
		}
		for from, to := range remap {
			if got, ok := o[from]; !ok || got != to {
				return false
			}
		}
	}
	return true
}

// Changed returns the modes whose remap tables differ between r and other,
// in mode order. A missing table and an empty one are the same.
func (r Remaps) Changed(other Remaps) []mode.Mode {
	var changed []mode.Mode
	for _, m := range mode.All() {
		a, b := r[m], other[m]
		if len(a) != len(b) {
			changed = append(changed, m)
			continue
		}
		for from, to := range a {
			if got, ok := b[from]; !ok || got != to {
				changed = append(changed, m)
				break
			}
		}
	}
	return changed
}

// Len returns the total number of remapped chords across all modes.
func (r Remaps) Len() int {
	n := 0
	for _, remap := range r {
		n += len(remap)
	}
	return n
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
