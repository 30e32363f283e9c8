package fuzzy

import "unicode"

// Scoring weights.
const (
	baseScore         = 100
	consecutiveBonus  = 20
	wordStartBonus    = 15
	firstRuneBonus    = 25
	exactPrefixBonus  = 50
	gapPenalty        = 2
	leadingPenalty    = 1
	lengthBonusCutoff = 20
)

// score rates a match. textRunes keeps its original case so camelCase
// word starts can be found.
func score(queryRunes, textRunes []rune, positions []int) int {
	if len(positions) == 0 {
		return 0
	}

	s := baseScore

	for i := 1; i < len(positions); i++ {
		if positions[i] == positions[i-1]+1 {
			s += consecutiveBonus
		}
	}

	for _, idx := range positions {
		if isWordStart(textRunes, idx) {
			s += wordStartBonus
		}
	}

	if positions[0] == 0 {
		s += firstRuneBonus
	}

	if gap := positions[len(positions)-1] - positions[0] - len(positions) + 1; gap > 0 {
		s -= gap * gapPenalty
	}
	s -= positions[0] * leadingPenalty

	if n := len(textRunes); n < lengthBonusCutoff {
		s += lengthBonusCutoff - n
	}

	if isPrefix(queryRunes, textRunes) {
		s += exactPrefixBonus
	}

	if s < 1 {
		s = 1
	}
	return s
}

// isPrefix reports whether queryRunes, which are lower case, start text.
func isPrefix(queryRunes, textRunes []rune) bool {
	if len(textRunes) < len(queryRunes) {
		return false
	}
	for i, r := range queryRunes {
		if unicode.ToLower(textRunes[i]) != r {
			return false
		}
	}
	return true
}

// isWordStart reports whether the rune at idx begins a word: it is first,
// follows a separator such as '.', or is an upper-case rune after a
// lower-case one.
func isWordStart(runes []rune, idx int) bool {
	if idx == 0 {
		return true
	}
	if idx >= len(runes) {
		return false
	}

	prev, curr := runes[idx-1], runes[idx]
	if unicode.IsSpace(prev) || unicode.IsPunct(prev) {
		return true
	}
	return unicode.IsLower(prev) && unicode.IsUpper(curr)
}
