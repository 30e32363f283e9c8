package key

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// separator splits modifier tokens from each other and from the code.
const separator = '-'

// Parse errors. Parse wraps them in a *SyntaxError.
var (
	ErrMissingCode        = errors.New("missing key code")
	ErrInvalidCode        = errors.New("invalid key code")
	ErrInvalidModifier    = errors.New("invalid key modifier")
	ErrRepeatedModifier   = errors.New("repeated key modifier")
	ErrInvalidFunctionKey = errors.New("invalid function key")
)

// SyntaxError reports a chord specification that could not be parsed.
type SyntaxError struct {
	// Spec is the full specification being parsed.
	Spec string

	// Token is the offending segment, if any.
	Token string

	// Err is one of the Err* parse errors.
	Err error
}

func (e *SyntaxError) Error() string {
	if errors.Is(e.Err, ErrMissingCode) {
		return fmt.Sprintf("key %q: %v", e.Spec, e.Err)
	}
	return fmt.Sprintf("key %q: %v %q", e.Spec, e.Err, e.Token)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Parse parses a chord specification.
//
// The grammar is (<Modifier>-)*<Code> where Modifier is one of S (Shift),
// A (Alt) or C (Control), each at most once, and Code is a control-key name
// ("Bs", "Enter", "Esc", ...), a single character, or F1..F12.
// Names are case-sensitive. A trailing "-" code is written as "-" or "C--".
//
// Examples: "a", "S-C-a", "A-F12", "Esc", "C-A-Del".
func Parse(spec string) (Chord, error) {
	tokens, code := splitSpec(spec)

	k, r, err := parseCode(code)
	if err != nil {
		return Chord{}, &SyntaxError{Spec: spec, Token: code, Err: err}
	}

	var mods Modifier
	for _, token := range tokens {
		mod := ModifierFromToken(token)
		if mod == ModNone {
			return Chord{}, &SyntaxError{Spec: spec, Token: token, Err: ErrInvalidModifier}
		}
		if mods.Has(mod) {
			return Chord{}, &SyntaxError{Spec: spec, Token: token, Err: ErrRepeatedModifier}
		}
		mods = mods.With(mod)
	}

	return New(k, r, mods), nil
}

// splitSpec separates the modifier tokens from the code token.
// A code of "-" is recognized when the spec is "-" or ends in "--".
func splitSpec(spec string) (tokens []string, code string) {
	if spec == "-" {
		return nil, "-"
	}
	if strings.HasSuffix(spec, "--") {
		return strings.Split(spec[:len(spec)-2], string(separator)), "-"
	}
	i := strings.LastIndexByte(spec, separator)
	if i < 0 {
		return nil, spec
	}
	return strings.Split(spec[:i], string(separator)), spec[i+1:]
}

// parseCode classifies the code token: control-key name first, then a single
// character, then a function key.
func parseCode(code string) (Key, rune, error) {
	if code == "" {
		return KeyNone, 0, ErrMissingCode
	}

	if k := KeyFromName(code); k != KeyNone {
		return k, 0, nil
	}

	if utf8.RuneCountInString(code) == 1 {
		r, size := utf8.DecodeRuneInString(code)
		if r == utf8.RuneError && size == 1 {
			return KeyNone, 0, ErrInvalidCode
		}
		return KeyRune, r, nil
	}

	if strings.HasPrefix(code, "F") {
		n, err := strconv.ParseUint(code[1:], 10, 8)
		if err != nil || n < 1 || n > MaxFunctionKey {
			return KeyNone, 0, ErrInvalidFunctionKey
		}
		return KeyF1 + Key(n-1), 0, nil
	}

	return KeyNone, 0, ErrInvalidCode
}

// MustParse parses a chord specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Chord {
	c, err := Parse(spec)
	if err != nil {
		panic("invalid chord specification: " + err.Error())
	}
	return c
}

// Format returns the canonical specification for a chord.
func Format(c Chord) string {
	return c.String()
}

// Normalize parses and re-formats a chord specification to its canonical
// form, so "C-S-a" becomes "S-C-a".
func Normalize(spec string) (string, error) {
	c, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}
