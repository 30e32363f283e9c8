// Package keymap maps key chords to editor actions.
//
// # Key Concepts
//
// Table: The chord-to-action bindings of one mode.
//
// Set: A Table per mode. Default builds the built-in set; select mode is a
// copy of normal mode with motions overridden to extend the selection.
//
// Remap: A per-mode substitution of one chord for another, loaded from a
// user document with ParseRemaps.
//
// Resolver: Applies the current remaps, then looks the resulting chord up in
// the binding set.
//
// # Lookup Order
//
// When a chord arrives in a mode:
//  1. If the mode's remap table has the chord, it is replaced by its target
//  2. The (possibly replaced) chord is looked up in the mode's binding table
//  3. No binding means the chord is unbound; that is not an error
//
// # Remap Documents
//
// Remap documents are TOML with one section per mode:
//
//	[Normal]
//	A-F12 = "S-C-w"
//
//	[Insert]
//	y = "x"
//
// # Usage
//
//	resolver := keymap.NewResolver(keymap.Default())
//
//	remaps, err := keymap.ParseRemaps(doc)
//	if err != nil {
//	    // report err; the previous remaps stay active
//	}
//	resolver.Swap(remaps, path)
//
//	res := resolver.Resolve(mode.Normal, chord)
//	if res.Bound {
//	    // Execute res.Action
//	}
package keymap
