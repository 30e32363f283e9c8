package key

import (
	"errors"
	"testing"
	"unicode/utf8"
)

func TestChordConstructors(t *testing.T) {
	tests := []struct {
		name  string
		chord Chord
		want  Chord
	}{
		{"Char", Char('x'), Chord{Key: KeyRune, Rune: 'x'}},
		{"Ctrl", Ctrl('w'), Chord{Key: KeyRune, Rune: 'w', Modifiers: ModCtrl}},
		{"Alt", Alt(';'), Chord{Key: KeyRune, Rune: ';', Modifiers: ModAlt}},
		{"Plain", Plain(KeyEscape), Chord{Key: KeyEscape}},
		{"New drops rune for special keys", New(KeyTab, 'q', ModShift), Chord{Key: KeyTab, Modifiers: ModShift}},
		{"Char surrogate", Char(0xD800), Chord{Key: KeyRune, Rune: utf8.RuneError}},
		{"Ctrl negative", Ctrl(-1), Chord{Key: KeyRune, Rune: utf8.RuneError, Modifiers: ModCtrl}},
		{"New out of range", New(KeyRune, 0x110000, ModAlt), Chord{Key: KeyRune, Rune: utf8.RuneError, Modifiers: ModAlt}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.chord != tt.want {
				t.Errorf("got %#v, want %#v", tt.chord, tt.want)
			}
		})
	}
}

func TestFunctionChord(t *testing.T) {
	c, err := Function(12, ModAlt)
	if err != nil {
		t.Fatalf("Function(12) error = %v", err)
	}
	if c.Key != KeyF12 || c.Modifiers != ModAlt {
		t.Errorf("Function(12, ModAlt) = %#v", c)
	}

	for _, n := range []int{0, 13} {
		if _, err := Function(n, ModNone); !errors.Is(err, ErrInvalidFunctionKey) {
			t.Errorf("Function(%d) error = %v, want ErrInvalidFunctionKey", n, err)
		}
	}
}

func TestChordEquality(t *testing.T) {
	a := New(KeyRune, 'a', ModShift|ModCtrl)
	b := New(KeyRune, 'a', ModCtrl).WithModifier(ModShift)
	if a != b {
		t.Errorf("chords with the same modifier set should be equal: %#v vs %#v", a, b)
	}

	m := map[Chord]string{a: "first"}
	m[b] = "second"
	if len(m) != 1 || m[a] != "second" {
		t.Errorf("chord map keys not structural: %v", m)
	}

	if Char('a') == Ctrl('a') {
		t.Error("modifiers must participate in equality")
	}
}

func TestChordPredicates(t *testing.T) {
	var zero Chord
	if !zero.IsZero() {
		t.Error("zero chord should report IsZero")
	}
	if Plain(KeyNull).IsZero() {
		t.Error("Null chord is a real chord")
	}
	if !Char('a').IsRune() || Plain(KeyEnter).IsRune() {
		t.Error("IsRune misreports")
	}
	if Char('a').IsModified() || !Alt('a').IsModified() {
		t.Error("IsModified misreports")
	}
}

func TestChordTextMarshaling(t *testing.T) {
	c := New(KeyRune, 'a', ModShift|ModCtrl)
	text, err := c.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText error = %v", err)
	}
	if string(text) != "S-C-a" {
		t.Errorf("MarshalText = %q, want %q", text, "S-C-a")
	}

	var got Chord
	if err := got.UnmarshalText([]byte("A-F12")); err != nil {
		t.Fatalf("UnmarshalText error = %v", err)
	}
	if got != New(KeyF12, 0, ModAlt) {
		t.Errorf("UnmarshalText(\"A-F12\") = %#v", got)
	}

	if err := got.UnmarshalText([]byte("F13")); !errors.Is(err, ErrInvalidFunctionKey) {
		t.Errorf("UnmarshalText(\"F13\") error = %v", err)
	}

	var zero Chord
	if _, err := zero.MarshalText(); err == nil {
		t.Error("MarshalText of zero chord should fail")
	}
}

func TestChordGoString(t *testing.T) {
	got := Ctrl('w').GoString()
	want := `Chord{Key: Rune, Rune: 'w', Modifiers: Ctrl}`
	if got != want {
		t.Errorf("GoString() = %q, want %q", got, want)
	}
}
