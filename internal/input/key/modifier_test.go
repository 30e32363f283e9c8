package key

import (
	"testing"
)

func TestModifierHas(t *testing.T) {
	tests := []struct {
		mod    Modifier
		check  Modifier
		expect bool
	}{
		{ModNone, ModCtrl, false},
		{ModCtrl, ModCtrl, true},
		{ModCtrl | ModAlt, ModCtrl, true},
		{ModCtrl | ModAlt, ModAlt, true},
		{ModCtrl | ModAlt, ModShift, false},
		{ModCtrl | ModAlt | ModShift, ModShift, true},
	}

	for _, tt := range tests {
		if got := tt.mod.Has(tt.check); got != tt.expect {
			t.Errorf("Modifier(%d).Has(%d) = %v, want %v", tt.mod, tt.check, got, tt.expect)
		}
	}
}

func TestModifierWith(t *testing.T) {
	mod := ModNone
	mod = mod.With(ModCtrl)
	if !mod.HasCtrl() {
		t.Error("With(ModCtrl) should set Ctrl")
	}

	mod = mod.With(ModAlt)
	if !mod.HasCtrl() || !mod.HasAlt() {
		t.Error("With(ModAlt) should keep Ctrl and add Alt")
	}

	if mod.With(ModAlt) != mod {
		t.Error("With should be idempotent")
	}
}

func TestModifierWithout(t *testing.T) {
	mod := ModCtrl | ModAlt | ModShift
	mod = mod.Without(ModAlt)
	if mod.HasAlt() {
		t.Error("Without(ModAlt) should remove Alt")
	}
	if !mod.HasCtrl() || !mod.HasShift() {
		t.Error("Without(ModAlt) should keep Ctrl and Shift")
	}
}

func TestModifierDistinctBits(t *testing.T) {
	if ModShift&ModAlt != 0 || ModShift&ModCtrl != 0 || ModAlt&ModCtrl != 0 {
		t.Errorf("modifier bits overlap: S=%d A=%d C=%d", ModShift, ModAlt, ModCtrl)
	}
	if !ModNone.IsEmpty() || ModShift.IsEmpty() {
		t.Error("IsEmpty misreports")
	}
}

func TestModifierPrefix(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModShift, "S-"},
		{ModAlt, "A-"},
		{ModCtrl, "C-"},
		{ModCtrl | ModShift, "S-C-"},
		{ModCtrl | ModAlt, "A-C-"},
		{ModCtrl | ModAlt | ModShift, "S-A-C-"},
	}

	for _, tt := range tests {
		if got := tt.mod.Prefix(); got != tt.want {
			t.Errorf("Modifier(%d).Prefix() = %q, want %q", tt.mod, got, tt.want)
		}
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "Ctrl"},
		{ModShift | ModCtrl, "Shift+Ctrl"},
		{ModShift | ModAlt | ModCtrl, "Shift+Alt+Ctrl"},
	}

	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("Modifier(%d).String() = %q, want %q", tt.mod, got, tt.want)
		}
	}
}

func TestModifierFromToken(t *testing.T) {
	tests := []struct {
		token string
		want  Modifier
	}{
		{"S", ModShift},
		{"A", ModAlt},
		{"C", ModCtrl},
		{"s", ModNone},
		{"Ctrl", ModNone},
		{"M", ModNone},
		{"", ModNone},
	}

	for _, tt := range tests {
		if got := ModifierFromToken(tt.token); got != tt.want {
			t.Errorf("ModifierFromToken(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}
