package keymap

import (
	"errors"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/mode"
)

const sampleRemaps = `[Insert]
y = "x"
S-C-a = "F12"

[Normal]
A-F12 = "S-C-w"
`

func TestParseRemaps(t *testing.T) {
	remaps, err := ParseRemaps(sampleRemaps)
	if err != nil {
		t.Fatalf("ParseRemaps() error = %v", err)
	}

	want := Remaps{
		mode.Insert: Remap{
			key.Char('y'): key.Char('x'),
			key.New(key.KeyRune, 'a', key.ModShift|key.ModCtrl): key.Plain(key.KeyF12),
		},
		mode.Normal: Remap{
			key.New(key.KeyF12, 0, key.ModAlt): key.New(key.KeyRune, 'w', key.ModShift|key.ModCtrl),
		},
	}

	if !remaps.Equal(want) {
		t.Errorf("ParseRemaps() = %v, want %v", remaps, want)
	}
	if remaps.Len() != 3 {
		t.Errorf("Len() = %d, want 3", remaps.Len())
	}
	if _, ok := remaps[mode.Select]; ok {
		t.Error("Select should have no remap table")
	}
}

func TestParseRemapsEmpty(t *testing.T) {
	remaps, err := ParseRemaps("")
	if err != nil {
		t.Fatalf("ParseRemaps(\"\") error = %v", err)
	}
	if remaps.Len() != 0 {
		t.Errorf("Len() = %d, want 0", remaps.Len())
	}
}

func TestParseRemapsErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		mode    string
		key     string
		wantErr error
	}{
		{
			name:    "unknown mode",
			doc:     "[Bogus]\na = \"b\"\n",
			mode:    "Bogus",
			wantErr: mode.ErrUnknownMode,
		},
		{
			name:    "lowercase mode",
			doc:     "[normal]\na = \"b\"\n",
			mode:    "normal",
			wantErr: mode.ErrUnknownMode,
		},
		{
			name:    "bad source",
			doc:     "[Normal]\nF13 = \"a\"\n",
			mode:    "Normal",
			key:     "F13",
			wantErr: key.ErrInvalidFunctionKey,
		},
		{
			name:    "bad target",
			doc:     "[Insert]\na = \"Q-b\"\n",
			mode:    "Insert",
			key:     "a",
			wantErr: key.ErrInvalidModifier,
		},
		{
			name:    "repeated modifier",
			doc:     "[Select]\n\"C-C-a\" = \"b\"\n",
			mode:    "Select",
			key:     "C-C-a",
			wantErr: key.ErrRepeatedModifier,
		},
		{
			name:    "first error in sorted order",
			doc:     "[Insert]\nzz = \"a\"\n\n[Bogus]\na = \"b\"\n",
			mode:    "Bogus",
			wantErr: mode.ErrUnknownMode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remaps, err := ParseRemaps(tt.doc)
			if err == nil {
				t.Fatalf("ParseRemaps() = %v, want error", remaps)
			}
			if remaps != nil {
				t.Errorf("ParseRemaps() returned partial remaps %v", remaps)
			}

			var re *RemapError
			if !errors.As(err, &re) {
				t.Fatalf("error %v is not a *RemapError", err)
			}
			if re.Mode != tt.mode {
				t.Errorf("Mode = %q, want %q", re.Mode, tt.mode)
			}
			if re.Key != tt.key {
				t.Errorf("Key = %q, want %q", re.Key, tt.key)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error %v does not wrap %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseRemapsMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unterminated table", "[Normal\na = \"b\"\n"},
		{"non-string target", "[Normal]\na = 1\n"},
		{"top-level value", "a = \"b\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRemaps(tt.doc)
			if err == nil {
				t.Fatal("ParseRemaps() should fail")
			}
			var re *RemapError
			if errors.As(err, &re) {
				t.Errorf("malformed document reported as remap error: %v", err)
			}
		})
	}
}

func TestParseRemapsSyntaxPosition(t *testing.T) {
	_, err := ParseRemaps("[Normal]\na = \n")
	var de *toml.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error %v does not wrap *toml.DecodeError", err)
	}
	if line, _ := de.Position(); line != 2 {
		t.Errorf("line = %d, want 2", line)
	}
}

func TestRemapErrorMessage(t *testing.T) {
	_, err := ParseRemaps("[Normal]\nF13 = \"a\"\n")
	want := `remap [Normal] "F13": key "F13": invalid function key "F13"`
	if err == nil || err.Error() != want {
		t.Errorf("error = %v, want %s", err, want)
	}

	_, err = ParseRemaps("[Bogus]\n")
	want = `remap [Bogus]: unknown mode "Bogus"`
	if err == nil || err.Error() != want {
		t.Errorf("error = %v, want %s", err, want)
	}
}

func TestFormatRemapsRoundTrip(t *testing.T) {
	tests := []Remaps{
		{},
		{mode.Normal: Remap{}},
		{
			mode.Normal: Remap{
				key.Char(' '):                        key.Char('-'),
				key.Char('"'):                        key.Ctrl('r'),
				key.New(key.KeyRune, '-', key.ModCtrl): key.Plain(key.KeyEscape),
			},
			mode.Select: Remap{
				key.Char('é'): key.New(key.KeyF1, 0, key.ModShift|key.ModAlt|key.ModCtrl),
			},
			mode.Insert: Remap{
				key.Plain(key.KeyTab): key.Plain(key.KeyBackTab),
			},
		},
	}

	for _, r := range tests {
		doc, err := FormatRemaps(r)
		if err != nil {
			t.Fatalf("FormatRemaps(%v) error = %v", r, err)
		}
		got, err := ParseRemaps(doc)
		if err != nil {
			t.Fatalf("ParseRemaps(%q) error = %v", doc, err)
		}
		if !got.Equal(r) {
			t.Errorf("round trip of %v = %v\ndocument:\n%s", r, got, doc)
		}
	}
}

func TestRemapsDocument(t *testing.T) {
	remaps, err := ParseRemaps(sampleRemaps)
	if err != nil {
		t.Fatal(err)
	}

	doc := remaps.Document()
	if got := doc["Normal"]["A-F12"]; got != "S-C-w" {
		t.Errorf(`doc["Normal"]["A-F12"] = %q, want "S-C-w"`, got)
	}
	if got := doc["Insert"]["S-C-a"]; got != "F12" {
		t.Errorf(`doc["Insert"]["S-C-a"] = %q, want "F12"`, got)
	}
}

func TestRemapApply(t *testing.T) {
	r := Remap{key.Char('y'): key.Char('x')}

	if got, ok := r.Apply(key.Char('y')); !ok || got != key.Char('x') {
		t.Errorf("Apply(y) = %v, %v; want x, true", got, ok)
	}
	if got, ok := r.Apply(key.Char('z')); ok || got != key.Char('z') {
		t.Errorf("Apply(z) = %v, %v; want z, false", got, ok)
	}

	var empty Remap
	if got, ok := empty.Apply(key.Char('y')); ok || got != key.Char('y') {
		t.Errorf("nil Apply(y) = %v, %v; want y, false", got, ok)
	}
}

func TestRemapsMerge(t *testing.T) {
	base := Remaps{
		mode.Normal: Remap{key.Char('a'): key.Char('b'), key.Char('c'): key.Char('d')},
	}
	over := Remaps{
		mode.Normal: Remap{key.Char('a'): key.Char('z')},
		mode.Insert: Remap{key.Char('q'): key.Char('r')},
	}

	merged := base.Merge(over)

	want := Remaps{
		mode.Normal: Remap{key.Char('a'): key.Char('z'), key.Char('c'): key.Char('d')},
		mode.Insert: Remap{key.Char('q'): key.Char('r')},
	}
	if !merged.Equal(want) {
		t.Errorf("Merge() = %v, want %v", merged, want)
	}
	if base[mode.Normal][key.Char('a')] != key.Char('b') {
		t.Error("Merge modified its receiver")
	}
	if _, ok := base[mode.Insert]; ok {
		t.Error("Merge added a mode to its receiver")
	}

	merged[mode.Insert][key.Char('q')] = key.Char('s')
	if over[mode.Insert][key.Char('q')] != key.Char('r') {
		t.Error("Merge result shares tables with its argument")
	}
}

func TestRemapsClone(t *testing.T) {
	r := Remaps{mode.Normal: Remap{key.Char('a'): key.Char('b')}}
	c := r.Clone()
	c[mode.Normal][key.Char('a')] = key.Char('z')

	if r[mode.Normal][key.Char('a')] != key.Char('b') {
		t.Error("Clone shares tables with the original")
	}
}

func TestRemapsChanged(t *testing.T) {
	prev := Remaps{
		mode.Normal: Remap{key.Char('a'): key.Char('b')},
		mode.Insert: Remap{},
	}
	next := Remaps{
		mode.Normal: Remap{key.Char('a'): key.Char('c')},
		mode.Select: Remap{key.Char('x'): key.Char('y')},
	}

	got := prev.Changed(next)
	want := []mode.Mode{mode.Normal, mode.Select}
	if len(got) != len(want) {
		t.Fatalf("Changed() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Changed()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if got := prev.Changed(prev.Clone()); len(got) != 0 {
		t.Errorf("Changed() of equal remaps = %v, want none", got)
	}
}
