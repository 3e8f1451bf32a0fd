// Package suggest ranks known names by edit distance to an unknown one, for
// "did you mean" hints on lookups that miss.
package suggest

import (
	"slices"
	"strings"
)

// DefaultLimit is the number of suggestions Closest returns by default.
const DefaultLimit = 3

// Matcher computes Levenshtein distances with a reused scratch column, so
// repeated calls do not allocate. A Matcher is not safe for concurrent use.
type Matcher struct {
	column []int
}

// Distance returns the Levenshtein distance between a and b, counted in runes.
func (m *Matcher) Distance(a, b string) int {
	s1 := []rune(a)
	s2 := []rune(b)

	if len(s2) == 0 {
		return len(s1)
	}

	if cap(m.column) < len(s1)+1 {
		m.column = make([]int, len(s1)+1)
	}

	column := m.column[:len(s1)+1]
	for i := range column {
		column[i] = i
	}

	for col, r2 := range s2 {
		column[0] = col + 1
		diag := col

		for row, r1 := range s1 {
			above := column[row+1]

			cost := 1
			if r1 == r2 {
				cost = 0
			}

			column[row+1] = min(above+1, column[row]+1, diag+cost)
			diag = above
		}
	}

	return column[len(s1)]
}

// Closest returns up to limit candidates within a distance of half the
// query length (at least 1), nearest first, ties in lexical order.
// Comparison is case-insensitive.
func Closest(query string, candidates []string, limit int) []string {
	if limit <= 0 {
		limit = DefaultLimit
	}

	type scored struct {
		name     string
		distance int
	}

	needle := strings.ToLower(query)
	threshold := max(1, len([]rune(needle))/2)

	var (
		m       Matcher
		matches []scored
	)

	for _, name := range candidates {
		d := m.Distance(needle, strings.ToLower(name))
		if d <= threshold {
			matches = append(matches, scored{name: name, distance: d})
		}
	}

	slices.SortFunc(matches, func(x, y scored) int {
		if x.distance != y.distance {
			return x.distance - y.distance
		}

		return strings.Compare(x.name, y.name)
	})

	out := make([]string, 0, min(limit, len(matches)))
	for _, match := range matches[:min(limit, len(matches))] {
		out = append(out, match.name)
	}

	return out
}

// Hint formats suggestions as " (did you mean: a, b?)", or "" when there
// are none.
func Hint(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}

	return " (did you mean: " + strings.Join(suggestions, ", ") + "?)"
}
