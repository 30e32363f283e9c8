package fuzzy

import (
	"sort"
	"strings"
)

// Result is a candidate that matched a query.
type Result struct {
	// Index is the candidate's position in the slice passed to Match.
	Index int

	// Text is the candidate.
	Text string

	// Score ranks the match. Higher is better.
	Score int

	// Positions holds the rune indices of the matched runes.
	Positions []int
}

// Match returns the candidates matching query, best first. Ties keep the
// candidates' original order. A limit of zero or less returns every match.
// Matching ignores case. An empty query matches every candidate with a
// score of zero.
func Match(query string, candidates []string, limit int) []Result {
	query = strings.ToLower(strings.TrimSpace(query))
	queryRunes := []rune(query)

	results := make([]Result, 0, len(candidates))
	for i, text := range candidates {
		if len(queryRunes) == 0 {
			results = append(results, Result{Index: i, Text: text})
			continue
		}
		positions, ok := locate(queryRunes, text)
		if !ok {
			continue
		}
		results = append(results, Result{
			Index:     i,
			Text:      text,
			Score:     score(queryRunes, []rune(text), positions),
			Positions: positions,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if limit > 0 && limit < len(results) {
		results = results[:limit]
	}
	return results
}

// Matches reports whether every rune of query appears in text in order,
// ignoring case.
func Matches(query, text string) bool {
	_, ok := locate([]rune(strings.ToLower(strings.TrimSpace(query))), text)
	return ok
}

// Closest returns the best candidate for query, for "did you mean"
// suggestions. Only a candidate that contains every query rune, or that
// equals query ignoring case, is suggested.
func Closest(query string, candidates []string) (string, bool) {
	for _, c := range candidates {
		if strings.EqualFold(c, query) {
			return c, true
		}
	}

	results := Match(query, candidates, 1)
	if len(results) == 0 || strings.TrimSpace(query) == "" {
		return "", false
	}
	return results[0].Text, true
}

// locate scans text left to right for the query runes. It returns the rune
// index of each match.
func locate(queryRunes []rune, text string) ([]int, bool) {
	textRunes := []rune(strings.ToLower(text))
	positions := make([]int, 0, len(queryRunes))

	q := 0
	for i := 0; i < len(textRunes) && q < len(queryRunes); i++ {
		if textRunes[i] == queryRunes[q] {
			positions = append(positions, i)
			q++
		}
	}
	if q != len(queryRunes) {
		return nil, false
	}
	return positions, true
}
