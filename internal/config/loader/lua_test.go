package loader

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/keymap"
	"github.com/dshills/keychord/internal/input/mode"
)

const luaRemaps = `
local ctrl = function(c) return "S-C-" .. c end

return {
  Insert = { y = "x", [ctrl("a")] = "F12" },
  Normal = { ["A-F12"] = ctrl("w") },
}
`

func TestLoader_LoadLua(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/remaps.lua", luaRemaps)

	remaps, err := NewWithFS(memfs).Load("/remaps.lua")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !remaps.Equal(wantRemaps()) {
		t.Errorf("Load() = %v, want %v", remaps, wantRemaps())
	}
}

func TestParseLuaEmpty(t *testing.T) {
	for _, script := range []string{"", "return nil", "return {}"} {
		remaps, err := Parse("/r.lua", FormatLua, []byte(script))
		if err != nil {
			t.Errorf("Parse(%q) error = %v", script, err)
			continue
		}
		if remaps.Len() != 0 {
			t.Errorf("Parse(%q) = %v, want no remaps", script, remaps)
		}
	}
}

func TestParseLuaErrors(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		message string
	}{
		{"returns string", `return "Normal"`, "script must return a table, got string"},
		{"mode not table", `return { Normal = "h" }`, "mode Normal must be a table, got string"},
		{"numeric mode", `return { "h" }`, "mode name must be a string, got number"},
		{"numeric target", `return { Normal = { q = 1 } }`, "remaps must map strings to strings, got string = number"},
		{"no os library", `return { Normal = { q = os.getenv("HOME") } }`, "getenv"},
		{"no io library", `return { Normal = { q = io.read() } }`, "read"},
		{"no dofile", `return dofile("/etc/passwd")`, "non-function"},
		{"runtime error", "local t = {}\nerror(\"boom\")\n", "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("/r.lua", FormatLua, []byte(tt.script))
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error = %v, want *ParseError", err)
			}
			if pe.Path != "/r.lua" {
				t.Errorf("Path = %q", pe.Path)
			}
			if !strings.Contains(pe.Message, tt.message) {
				t.Errorf("Message = %q, want it to contain %q", pe.Message, tt.message)
			}
		})
	}
}

func TestParseLuaPrintIsSilent(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	stdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = stdout }()

	remaps, parseErr := Parse("/r.lua", FormatLua, []byte(`print("garbage = ") return { Normal = { q = "h" } }`))

	os.Stdout = stdout
	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}

	if parseErr != nil {
		t.Fatalf("Parse failed: %v", parseErr)
	}
	if remaps.Len() != 1 {
		t.Errorf("Parse() = %v, want one remap", remaps)
	}
	if len(out) != 0 {
		t.Errorf("script wrote %q to stdout", out)
	}
}

func TestParseLuaSyntaxError(t *testing.T) {
	_, err := Parse("/r.lua", FormatLua, []byte("return {\n  Normal = = 1\n}\n"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if pe.Line != 2 {
		t.Errorf("Line = %d, want 2 (%v)", pe.Line, err)
	}
}

func TestParseLuaRemapError(t *testing.T) {
	_, err := Parse("/r.lua", FormatLua, []byte(`return { Visual = { a = "b" } }`))
	var re *keymap.RemapError
	if !errors.As(err, &re) {
		t.Fatalf("error = %v, want *keymap.RemapError", err)
	}
	if !errors.Is(err, mode.ErrUnknownMode) {
		t.Errorf("error %v should wrap ErrUnknownMode", err)
	}
}

func TestParseLuaTimeout(t *testing.T) {
	old := luaTimeout
	luaTimeout = 50 * time.Millisecond
	defer func() { luaTimeout = old }()

	start := time.Now()
	_, err := Parse("/r.lua", FormatLua, []byte("while true do end"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if !strings.Contains(pe.Message, "did not finish") {
		t.Errorf("Message = %q", pe.Message)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("script ran for %v", elapsed)
	}
}

func TestEncodeLua(t *testing.T) {
	remaps := keymap.Remaps{
		mode.Normal: keymap.Remap{
			key.Char('q'):        key.Char('h'),
			key.MustParse("C-w"): key.Char('"'),
		},
	}

	data, err := Encode(remaps, FormatLua)
	if err != nil {
		t.Fatal(err)
	}
	want := "return {\n  Normal = {\n    [\"C-w\"] = \"\\\"\",\n    q = \"h\",\n  },\n}\n"
	if string(data) != want {
		t.Errorf("Encode() =\n%s\nwant\n%s", data, want)
	}
}

func TestLuaQuoting(t *testing.T) {
	tests := []struct {
		in  string
		key string
		lit string
	}{
		{"q", "q", `"q"`},
		{"end", `["end"]`, `"end"`},
		{"S-C-a", `["S-C-a"]`, `"S-C-a"`},
		{"\\", `["\\"]`, `"\\"`},
		{"é", `["\195\169"]`, `"\195\169"`},
		{"\t1", `["\0091"]`, `"\0091"`},
	}
	for _, tt := range tests {
		if got := luaKey(tt.in); got != tt.key {
			t.Errorf("luaKey(%q) = %s, want %s", tt.in, got, tt.key)
		}
		if got := luaString(tt.in); got != tt.lit {
			t.Errorf("luaString(%q) = %s, want %s", tt.in, got, tt.lit)
		}
	}
}
