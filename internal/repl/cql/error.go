package cql

import (
	"fmt"
	"slices"
)

// ParseError reports a line that no CQL production matches in full.
type ParseError struct {
	Message    string
	Pos        int    // byte offset of the furthest token the parser reached
	Suggestion string // "did you mean 'list'?" or ""
}

func (e *ParseError) Error() string {
	if e.Suggestion != "" {
		return e.Message + " (" + e.Suggestion + ")"
	}
	return e.Message
}

// Levenshtein computes the edit distance between two strings.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}

// SuggestFrom finds the closest match from candidates within a maximum
// edit distance. An input that is itself a candidate gets no suggestion.
// Returns "" if no good match is found; ties go to the earliest candidate.
func SuggestFrom(input string, candidates []string, maxDist int) string {
	if slices.Contains(candidates, input) {
		return ""
	}
	best := ""
	bestDist := maxDist + 1
	for _, c := range candidates {
		d := Levenshtein(input, c)
		if d < bestDist {
			bestDist = d
			best = c
		}
	}
	if bestDist <= maxDist {
		return fmt.Sprintf("did you mean '%s'?", best)
	}
	return ""
}
