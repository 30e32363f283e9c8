// Package key provides the key chord type and its textual form.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a key code (control keys, function keys, or runes)
//   - Modifier: The set of held modifiers (Shift, Alt, Control)
//   - Chord: A single key press with modifiers, usable as a map key
//
// # Chord Specifications
//
// A chord is written as (<Modifier>-)*<Code>:
//
//   - Modifiers: "S" (Shift), "A" (Alt), "C" (Control), each at most once
//   - Codes: control-key names ("Bs", "Enter", "Esc", "Del", "PageUp", ...),
//     a single character ("a", ",", "-"), or a function key ("F1".."F12")
//
// Examples: "a", "S-C-a", "A-F12", "Esc", "C--".
//
// Formatting always writes modifiers in the order Shift, Alt, Control, so
// Parse(c.String()) == c for every chord.
package key
