package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keychord/internal/input/keymap"
)

// luaTimeout bounds how long a Lua remap script may run.
var luaTimeout = 2 * time.Second

var (
	luaSyntaxLine  = regexp.MustCompile(`line:(\d+)\(column:(\d+)\)`)
	luaRuntimeLine = regexp.MustCompile(`^[^:\n]*:(\d+):`)
)

// decodeLua runs a Lua remap script and converts the table it returns.
//
// The script runs with only the base, table, string and math libraries, so
// it cannot touch the file system or spawn processes:
//
//	local leader = "C-w"
//	return {
//	  Normal = { q = "h", [leader] = "S-C-w" },
//	}
func decodeLua(source string, data []byte) (keymap.Document, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibraries(L)

	ctx, cancel := context.WithTimeout(context.Background(), luaTimeout)
	defer cancel()
	L.SetContext(ctx)

	fn, err := L.Load(bytes.NewReader(data), source)
	if err != nil {
		return nil, luaParseError(source, err)
	}
	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		return nil, luaParseError(source, err)
	}

	ret := L.Get(-1)
	if ret == lua.LNil {
		return keymap.Document{}, nil
	}
	root, ok := ret.(*lua.LTable)
	if !ok {
		return nil, &ParseError{
			Path:    source,
			Message: fmt.Sprintf("script must return a table, got %s", ret.Type()),
		}
	}
	return luaDocument(source, root)
}

// openSafeLibraries opens the Lua libraries that cannot reach outside the
// interpreter. io, os, debug and package are left closed and print is
// silenced.
func openSafeLibraries(L *lua.LState) {
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	// dofile and loadfile are part of the base library but read files.
	L.SetGlobal("dofile", lua.LNil)
	L.SetGlobal("loadfile", lua.LNil)
	// print would write into whatever the caller sends to stdout, such as
	// the output of fmt.
	L.SetGlobal("print", L.NewFunction(func(*lua.LState) int { return 0 }))
}

func luaDocument(source string, root *lua.LTable) (keymap.Document, error) {
	doc := keymap.Document{}
	var err error
	root.ForEach(func(k, v lua.LValue) {
		if err != nil {
			return
		}
		section, ok := k.(lua.LString)
		if !ok {
			err = &ParseError{Path: source, Message: fmt.Sprintf("mode name must be a string, got %s", k.Type())}
			return
		}
		tbl, ok := v.(*lua.LTable)
		if !ok {
			err = &ParseError{Path: source, Message: fmt.Sprintf("mode %s must be a table, got %s", section, v.Type())}
			return
		}

		entries := map[string]string{}
		tbl.ForEach(func(k, v lua.LValue) {
			if err != nil {
				return
			}
			from, kok := k.(lua.LString)
			to, vok := v.(lua.LString)
			if !kok || !vok {
				err = &ParseError{
					Path:    source,
					Message: fmt.Sprintf("mode %s: remaps must map strings to strings, got %s = %s", section, k.Type(), v.Type()),
				}
				return
			}
			entries[string(from)] = string(to)
		})
		doc[string(section)] = entries
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func luaParseError(source string, err error) *ParseError {
	msg := err.Error()
	var apiErr *lua.ApiError
	if errors.As(err, &apiErr) && apiErr.Object != nil {
		msg = apiErr.Object.String()
	}
	if errors.Is(err, context.DeadlineExceeded) || strings.Contains(msg, context.DeadlineExceeded.Error()) {
		msg = fmt.Sprintf("script did not finish within %v", luaTimeout)
	}

	pe := &ParseError{Path: source, Message: msg, Err: err}
	if m := luaSyntaxLine.FindStringSubmatch(msg); m != nil {
		pe.Line, _ = strconv.Atoi(m[1])
		pe.Column, _ = strconv.Atoi(m[2])
	} else if m := luaRuntimeLine.FindStringSubmatch(msg); m != nil {
		pe.Line, _ = strconv.Atoi(m[1])
	}
	return pe
}

// encodeLua renders a document as a Lua script returning a table.
func encodeLua(doc keymap.Document) ([]byte, error) {
	var b strings.Builder
	b.WriteString("return {\n")
	for _, section := range sortedKeys(doc) {
		fmt.Fprintf(&b, "  %s = {\n", luaKey(section))
		entries := doc[section]
		for _, from := range sortedKeys(entries) {
			fmt.Fprintf(&b, "    %s = %s,\n", luaKey(from), luaString(entries[from]))
		}
		b.WriteString("  },\n")
	}
	b.WriteString("}\n")
	return []byte(b.String()), nil
}

var luaIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var luaReserved = map[string]bool{
	"and": true, "break": true, "do": true, "else": true, "elseif": true,
	"end": true, "false": true, "for": true, "function": true, "if": true,
	"in": true, "local": true, "nil": true, "not": true, "or": true,
	"repeat": true, "return": true, "then": true, "true": true, "until": true,
	"while": true, "goto": true,
}

func luaKey(s string) string {
	if luaIdent.MatchString(s) && !luaReserved[s] {
		return s
	}
	return "[" + luaString(s) + "]"
}

// luaString quotes s as a Lua string literal. Bytes outside printable
// ASCII are written as decimal escapes, which Lua 5.1 understands.
func luaString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c < 0x20 || c >= 0x7f:
			fmt.Fprintf(&b, "\\%03d", c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
