// Package cql implements the tokenizer, parser, and AST for CQL
// (Catalog Query Language), the line-oriented command language of the
// playcount REPL.
package cql

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a maximal run of non-whitespace characters from an input line.
type Token struct {
	Literal string
	Pos     int // byte offset in source
}

// Keywords are the literal words the grammar matches. They are only reserved
// where a literal is expected; elsewhere they may appear inside a name.
var Keywords = []string{
	"add", "artist", "album", "track",
	"list", "albums", "tracks", "top", "artists",
	"listen", "to", "on", "by",
	"quit", "help",
}

// Verbs are the keywords that can start a command.
var Verbs = []string{"add", "list", "listen", "quit", "help"}

// IsKeyword reports whether lit is one of the grammar's literal words.
// Matching is case-sensitive.
func IsKeyword(lit string) bool {
	for _, k := range Keywords {
		if k == lit {
			return true
		}
	}
	return false
}

// Tokenize splits a line on runs of whitespace. Leading and trailing
// whitespace is discarded and no empty tokens are produced, so an empty or
// all-whitespace line yields no tokens.
func Tokenize(line string) []Token {
	var tokens []Token
	start := -1
	for pos := 0; pos < len(line); {
		r, size := utf8.DecodeRuneInString(line[pos:])
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, Token{Literal: line[start:pos], Pos: start})
				start = -1
			}
		} else if start < 0 {
			start = pos
		}
		pos += size
	}
	if start >= 0 {
		tokens = append(tokens, Token{Literal: line[start:], Pos: start})
	}
	return tokens
}

// Literals returns the raw text of each token.
func Literals(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Literal
	}
	return out
}

// Quote renders a name so that it reads back as a single Name: names that
// are a single plain non-keyword word stay bare, everything else is wrapped
// in quotes.
func Quote(name string) string {
	if name != "" && !strings.ContainsFunc(name, unicode.IsSpace) && isPlain(name) && !IsKeyword(name) {
		return name
	}
	return `"` + name + `"`
}
