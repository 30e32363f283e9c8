// Package fuzzy ranks short strings, such as action names and mode names,
// against a typed query.
//
// A query matches a candidate when every query rune appears in the
// candidate in order. Matches are scored so that runs of consecutive
// runes, matches at word starts ("cursor.moveDown" has word starts at
// c, m and D) and matches near the front rank higher.
//
// # Usage
//
//	results := fuzzy.Match("mvdn", names, 5)
//	for _, r := range results {
//	    fmt.Println(names[r.Index], r.Score)
//	}
//
//	if best, ok := fuzzy.Closest("normal", []string{"Normal", "Insert"}); ok {
//	    fmt.Printf("did you mean %q?\n", best)
//	}
package fuzzy
