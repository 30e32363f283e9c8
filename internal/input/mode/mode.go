package mode

import (
	"errors"
	"fmt"
)

// ErrUnknownMode is returned by Parse for names that are not a mode.
var ErrUnknownMode = errors.New("unknown mode")

// Mode identifies an editing context. Each mode selects its own binding
// table and remap table.
type Mode uint8

// Editing modes.
const (
	Normal Mode = iota
	Select
	Insert
)

// modeNames holds the canonical name of each mode, indexed by Mode.
var modeNames = [...]string{
	Normal: "Normal",
	Select: "Select",
	Insert: "Insert",
}

// All returns every mode in declaration order.
func All() []Mode {
	return []Mode{Normal, Select, Insert}
}

// String returns the canonical mode name, as used for remap document
// section keys.
func (m Mode) String() string {
	if m.Valid() {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// Valid reports whether m is a declared mode.
func (m Mode) Valid() bool {
	return int(m) < len(modeNames)
}

// Parse returns the mode with the given canonical name.
// Names are case-sensitive: "Normal" parses, "normal" does not.
func Parse(name string) (Mode, error) {
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownMode, name)
}

// CursorStyle returns the cursor style shown while the mode is active.
func (m Mode) CursorStyle() CursorStyle {
	if m == Insert {
		return CursorBar
	}
	return CursorBlock
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar

	// CursorUnderline is an underline cursor.
	CursorUnderline

	// CursorHidden hides the cursor.
	CursorHidden
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorUnderline:
		return "underline"
	case CursorHidden:
		return "hidden"
	default:
		return "unknown"
	}
}
