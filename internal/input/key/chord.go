package key

import (
	"fmt"
	"unicode/utf8"
)

// Chord is a single key press with the modifiers held at the time.
// Chords are comparable and are used directly as map keys.
type Chord struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune chords. It is zero otherwise.
	// Constructors replace runes that are not valid Unicode scalar values
	// with utf8.RuneError, so every constructed chord round-trips.
	Rune rune

	// Modifiers contains the held modifier keys.
	Modifiers Modifier
}

// New creates a chord. The rune is ignored for non-character keys.
func New(k Key, r rune, mods Modifier) Chord {
	switch {
	case k != KeyRune:
		r = 0
	case !utf8.ValidRune(r):
		r = utf8.RuneError
	}
	return Chord{Key: k, Rune: r, Modifiers: mods}
}

// Plain creates an unmodified chord for a special key.
func Plain(k Key) Chord {
	return New(k, 0, ModNone)
}

// Char creates an unmodified chord for a character.
func Char(r rune) Chord {
	return New(KeyRune, r, ModNone)
}

// Ctrl creates a Control+character chord.
func Ctrl(r rune) Chord {
	return New(KeyRune, r, ModCtrl)
}

// Alt creates an Alt+character chord.
func Alt(r rune) Chord {
	return New(KeyRune, r, ModAlt)
}

// Function creates a chord for function key n with the given modifiers.
func Function(n int, mods Modifier) (Chord, error) {
	k, err := FunctionKey(n)
	if err != nil {
		return Chord{}, err
	}
	return Chord{Key: k, Modifiers: mods}, nil
}

// IsZero returns true for the zero chord, which represents no key.
func (c Chord) IsZero() bool {
	return c == Chord{}
}

// IsRune returns true if this is a character chord.
func (c Chord) IsRune() bool {
	return c.Key == KeyRune
}

// IsModified returns true if any modifier is held.
func (c Chord) IsModified() bool {
	return c.Modifiers != ModNone
}

// WithModifier returns a copy with the specified modifier added.
func (c Chord) WithModifier(mod Modifier) Chord {
	c.Modifiers = c.Modifiers.With(mod)
	return c
}

// String returns the canonical specification of the chord, for example
// "a", "S-C-a", "A-F12" or "Esc". The result parses back to c.
func (c Chord) String() string {
	code := c.Key.String()
	if c.Key == KeyRune {
		code = string(c.Rune)
	}
	return c.Modifiers.Prefix() + code
}

// MarshalText implements encoding.TextMarshaler.
func (c Chord) MarshalText() ([]byte, error) {
	if c.IsZero() {
		return nil, fmt.Errorf("%w: empty chord", ErrMissingCode)
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Chord) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// GoString implements fmt.GoStringer for debugging.
func (c Chord) GoString() string {
	return fmt.Sprintf("Chord{Key: %s, Rune: %q, Modifiers: %s}",
		c.Key.String(), c.Rune, c.Modifiers.String())
}
