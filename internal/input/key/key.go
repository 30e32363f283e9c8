package key

import (
	"fmt"
	"strconv"
)

// Key identifies the code of a chord.
// For character keys, use KeyRune and set the Rune field in Chord.
type Key uint8

const (
	// KeyNone represents no key. It is the zero value of a Chord.
	KeyNone Key = iota

	// Editing keys
	KeyBackspace
	KeyEnter
	KeyTab
	KeyBackTab
	KeyDelete
	KeyInsert
	KeyEscape

	// Arrow keys
	KeyLeft
	KeyRight
	KeyUp
	KeyDown

	// Navigation keys
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// KeyNull is the NUL key some terminals report for Ctrl+Space.
	KeyNull

	// KeyRune is used for character keys (letters, numbers, punctuation).
	// The actual character is stored in Chord.Rune.
	KeyRune
)

// MaxFunctionKey is the highest function key number a chord can carry.
const MaxFunctionKey = 12

// keyNames is the control-key name table. It drives both parsing and
// formatting, so the two directions cannot disagree.
var keyNames = []struct {
	name string
	key  Key
}{
	{"Bs", KeyBackspace},
	{"Enter", KeyEnter},
	{"Left", KeyLeft},
	{"Right", KeyRight},
	{"Up", KeyUp},
	{"Down", KeyDown},
	{"Home", KeyHome},
	{"End", KeyEnd},
	{"PageUp", KeyPageUp},
	{"PageDown", KeyPageDown},
	{"Tab", KeyTab},
	{"BackTab", KeyBackTab},
	{"Del", KeyDelete},
	{"Insert", KeyInsert},
	{"Null", KeyNull},
	{"Esc", KeyEscape},
}

var (
	nameToKey = make(map[string]Key, len(keyNames))
	keyToName = make(map[Key]string, len(keyNames))
)

func init() {
	for _, kn := range keyNames {
		nameToKey[kn.name] = kn.key
		keyToName[kn.key] = kn.name
	}
}

// String returns the name used for the key in chord specifications.
// Function keys render as "F1".."F12".
func (k Key) String() string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	switch {
	case k.IsFunctionKey():
		return "F" + strconv.Itoa(k.FunctionNumber())
	case k == KeyNone:
		return "None"
	case k == KeyRune:
		return "Rune"
	default:
		return fmt.Sprintf("Key(%d)", k)
	}
}

// IsSpecial returns true if this is a special (non-character) key.
func (k Key) IsSpecial() bool {
	return k > KeyNone && k < KeyRune
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// FunctionNumber returns n for function key Fn, or 0 for other keys.
func (k Key) FunctionNumber() int {
	if !k.IsFunctionKey() {
		return 0
	}
	return int(k-KeyF1) + 1
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyLeft && k <= KeyDown
}

// IsNavigationKey returns true if this is a navigation key.
func (k Key) IsNavigationKey() bool {
	return k.IsArrowKey() || (k >= KeyHome && k <= KeyPageDown)
}

// FunctionKey returns the key for function key n.
// Only 1 <= n <= 12 is valid.
func FunctionKey(n int) (Key, error) {
	if n < 1 || n > MaxFunctionKey {
		return KeyNone, fmt.Errorf("%w: F%d", ErrInvalidFunctionKey, n)
	}
	return KeyF1 + Key(n-1), nil
}

// KeyFromName returns the Key for a control-key name such as "Bs" or "Esc".
// Names are case-sensitive. Returns KeyNone if the name is not recognized.
func KeyFromName(name string) Key {
	return nameToKey[name]
}

// Names returns the control-key names in table order.
func Names() []string {
	names := make([]string, len(keyNames))
	for i, kn := range keyNames {
		names[i] = kn.name
	}
	return names
}
