package key

import (
	"errors"
	"testing"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyEscape, "Esc"},
		{KeyEnter, "Enter"},
		{KeyTab, "Tab"},
		{KeyBackTab, "BackTab"},
		{KeyBackspace, "Bs"},
		{KeyDelete, "Del"},
		{KeyInsert, "Insert"},
		{KeyUp, "Up"},
		{KeyDown, "Down"},
		{KeyLeft, "Left"},
		{KeyRight, "Right"},
		{KeyPageUp, "PageUp"},
		{KeyPageDown, "PageDown"},
		{KeyNull, "Null"},
		{KeyF1, "F1"},
		{KeyF12, "F12"},
		{KeyRune, "Rune"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyIsSpecial(t *testing.T) {
	tests := []struct {
		key  Key
		want bool
	}{
		{KeyNone, false},
		{KeyRune, false},
		{KeyEscape, true},
		{KeyEnter, true},
		{KeyF1, true},
		{KeyUp, true},
		{KeyNull, true},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			if got := tt.key.IsSpecial(); got != tt.want {
				t.Errorf("Key.IsSpecial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeyClassification(t *testing.T) {
	if !KeyF7.IsFunctionKey() || KeyEscape.IsFunctionKey() {
		t.Error("IsFunctionKey misclassified F7 or Esc")
	}
	if !KeyDown.IsArrowKey() || KeyHome.IsArrowKey() {
		t.Error("IsArrowKey misclassified Down or Home")
	}
	if !KeyPageDown.IsNavigationKey() || KeyTab.IsNavigationKey() {
		t.Error("IsNavigationKey misclassified PageDown or Tab")
	}
}

func TestFunctionKey(t *testing.T) {
	for n := 1; n <= MaxFunctionKey; n++ {
		k, err := FunctionKey(n)
		if err != nil {
			t.Fatalf("FunctionKey(%d) error = %v", n, err)
		}
		if got := k.FunctionNumber(); got != n {
			t.Errorf("FunctionKey(%d).FunctionNumber() = %d", n, got)
		}
	}

	for _, n := range []int{-1, 0, 13, 255} {
		if _, err := FunctionKey(n); !errors.Is(err, ErrInvalidFunctionKey) {
			t.Errorf("FunctionKey(%d) error = %v, want ErrInvalidFunctionKey", n, err)
		}
	}

	if got := KeyEnter.FunctionNumber(); got != 0 {
		t.Errorf("KeyEnter.FunctionNumber() = %d, want 0", got)
	}
}

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"Bs", KeyBackspace},
		{"Esc", KeyEscape},
		{"Del", KeyDelete},
		{"Up", KeyUp},
		{"Down", KeyDown},
		{"esc", KeyNone},
		{"Escape", KeyNone},
		{"", KeyNone},
	}

	for _, tt := range tests {
		if got := KeyFromName(tt.name); got != tt.want {
			t.Errorf("KeyFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNamesRoundTrip(t *testing.T) {
	names := Names()
	if len(names) != 16 {
		t.Fatalf("len(Names()) = %d, want 16", len(names))
	}
	seen := make(map[Key]string)
	for _, name := range names {
		k := KeyFromName(name)
		if k == KeyNone {
			t.Errorf("KeyFromName(%q) = KeyNone", name)
			continue
		}
		if prev, dup := seen[k]; dup {
			t.Errorf("names %q and %q both map to %v", prev, name, k)
		}
		seen[k] = name
		if got := k.String(); got != name {
			t.Errorf("KeyFromName(%q).String() = %q", name, got)
		}
	}
}
