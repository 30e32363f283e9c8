package key

import "strings"

// Modifier is the set of modifier keys held with a chord.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << (iota - 1)

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModCtrl indicates the Control key.
	ModCtrl
)

// modifierOrder is the order modifiers are written in a chord specification.
var modifierOrder = []struct {
	token string
	mod   Modifier
}{
	{"S", ModShift},
	{"A", ModAlt},
	{"C", ModCtrl},
}

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasShift returns true if Shift is pressed.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// HasAlt returns true if Alt is pressed.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasCtrl returns true if Control is pressed.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// Prefix returns the specification prefix for m, such as "S-C-".
// Modifiers are always written Shift, Alt, Control.
func (m Modifier) Prefix() string {
	var b strings.Builder
	for _, mo := range modifierOrder {
		if m.Has(mo.mod) {
			b.WriteString(mo.token)
			b.WriteByte(separator)
		}
	}
	return b.String()
}

// String returns a human-readable representation like "Shift+Ctrl".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	return strings.Join(parts, "+")
}

// ModifierFromToken returns the Modifier for a specification token
// ("S", "A" or "C"). Returns ModNone if the token is not recognized.
func ModifierFromToken(token string) Modifier {
	for _, mo := range modifierOrder {
		if mo.token == token {
			return mo.mod
		}
	}
	return ModNone
}
