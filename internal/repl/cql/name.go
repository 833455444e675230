package cql

import "strings"

const quoteMark = `"`

// nameSpan is one reading of a Name: its canonical value and the index of
// the first token after it.
type nameSpan struct {
	value string
	end   int
}

func opensQuote(lit string) bool  { return strings.HasPrefix(lit, quoteMark) }
func closesQuote(lit string) bool { return strings.HasSuffix(lit, quoteMark) }

// isQuotedWord reports whether lit is a complete quoted name on its own.
// The two-character token `""` qualifies and reads as the empty name.
func isQuotedWord(lit string) bool {
	return len(lit) >= 2 && opensQuote(lit) && closesQuote(lit)
}

// isPlain reports whether lit may appear in an unquoted name.
func isPlain(lit string) bool {
	return !opensQuote(lit) && !closesQuote(lit)
}

// nameSpans returns every reading of a Name that starts at tokens[pos], in
// the order a matcher should try them. Quoted forms are self-delimiting and
// yield at most one reading. Unquoted forms yield one reading per length,
// shortest first, so the enclosing production can claim any later keyword.
func nameSpans(tokens []Token, pos int) []nameSpan {
	if pos >= len(tokens) {
		return nil
	}
	first := tokens[pos].Literal

	switch {
	case isQuotedWord(first):
		return []nameSpan{{value: first[1 : len(first)-1], end: pos + 1}}

	case opensQuote(first):
		parts := []string{first[1:]}
		for i := pos + 1; i < len(tokens); i++ {
			lit := tokens[i].Literal
			if closesQuote(lit) {
				parts = append(parts, lit[:len(lit)-1])
				return []nameSpan{{value: strings.Join(parts, " "), end: i + 1}}
			}
			if !isPlain(lit) {
				return nil
			}
			parts = append(parts, lit)
		}
		return nil

	case !isPlain(first):
		return nil
	}

	var spans []nameSpan
	var parts []string
	for i := pos; i < len(tokens) && isPlain(tokens[i].Literal); i++ {
		parts = append(parts, tokens[i].Literal)
		spans = append(spans, nameSpan{value: strings.Join(parts, " "), end: i + 1})
	}
	return spans
}
