package cql

import (
	"math"
	"strconv"
)

// ── Grammar ─────────────────────────────────────────────────────────────────

type elementKind int

const (
	elemLiteral elementKind = iota
	elemName
	elemUInt
)

// element is one symbol on the right-hand side of a production.
type element struct {
	kind    elementKind
	literal string
}

func lit(s string) element { return element{kind: elemLiteral, literal: s} }

var (
	nameElem = element{kind: elemName}
	uintElem = element{kind: elemUInt}
)

// production is a flat sequence of symbols plus the constructor for the
// command it denotes. Names and counts are handed to build in source order.
type production struct {
	elems []element
	build func(names []string, counts []int) Command
}

// grammar lists the expr alternatives in the order they are tried.
var grammar = []production{
	{
		elems: []element{lit("add"), lit("artist"), nameElem},
		build: func(n []string, _ []int) Command {
			return &Add{Object: &AddArtist{Artist: n[0]}}
		},
	},
	{
		elems: []element{lit("add"), lit("album"), nameElem, lit("by"), nameElem},
		build: func(n []string, _ []int) Command {
			return &Add{Object: &AddAlbum{Album: n[0], Artist: n[1]}}
		},
	},
	{
		elems: []element{lit("add"), lit("track"), nameElem, lit("on"), nameElem, lit("by"), nameElem},
		build: func(n []string, _ []int) Command {
			return &Add{Object: &AddTrack{Track: n[0], Album: n[1], Artist: n[2]}}
		},
	},
	{
		elems: []element{lit("list"), lit("albums"), lit("by"), nameElem},
		build: func(n []string, _ []int) Command {
			return &List{Object: &ListAlbums{Artist: n[0]}}
		},
	},
	{
		elems: []element{lit("list"), lit("tracks"), lit("on"), nameElem, lit("by"), nameElem},
		build: func(n []string, _ []int) Command {
			return &List{Object: &ListTracks{Album: n[0], Artist: n[1]}}
		},
	},
	{
		elems: []element{lit("list"), lit("top"), uintElem, lit("tracks")},
		build: func(_ []string, c []int) Command {
			return &List{Object: &ListTopTracks{N: c[0]}}
		},
	},
	{
		elems: []element{lit("list"), lit("top"), uintElem, lit("artists")},
		build: func(_ []string, c []int) Command {
			return &List{Object: &ListTopArtists{N: c[0]}}
		},
	},
	{
		elems: []element{lit("listen"), lit("to"), nameElem, lit("on"), nameElem, lit("by"), nameElem},
		build: func(n []string, _ []int) Command {
			return &ListenTo{Object: &ListenTrack{Track: n[0], Album: n[1], Artist: n[2]}}
		},
	},
	{
		elems: []element{lit("quit")},
		build: func([]string, []int) Command { return &Quit{} },
	},
	{
		elems: []element{lit("help")},
		build: func([]string, []int) Command { return &Help{} },
	},
}

// ── Parser ──────────────────────────────────────────────────────────────────

// Parser implements a backtracking recursive descent matcher for CQL.
// A production matches only if it consumes every token.
type Parser struct {
	tokens   []Token
	names    []string
	counts   []int
	furthest int // index of the furthest token any alternative reached
}

// NewParser creates a parser from a token slice (typically from Tokenize).
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse tokenizes and parses a single line.
func Parse(line string) Command {
	return NewParser(Tokenize(line)).Parse()
}

// Parse returns the command denoted by the whole token sequence, or an
// *Invalid when no alternative consumes it in full. It never returns nil.
func (p *Parser) Parse() Command {
	for _, prod := range grammar {
		p.names = p.names[:0]
		p.counts = p.counts[:0]
		if p.match(prod.elems, 0) {
			return prod.build(append([]string(nil), p.names...), append([]int(nil), p.counts...))
		}
	}
	return &Invalid{Err: p.invalid()}
}

// match reports whether elems can consume tokens[pos:] exactly. Name
// readings are tried shortest first; on failure the capture is dropped and
// the next reading is tried.
func (p *Parser) match(elems []element, pos int) bool {
	p.furthest = max(p.furthest, pos)
	if len(elems) == 0 {
		return pos == len(p.tokens)
	}
	if pos >= len(p.tokens) {
		return false
	}

	rest := elems[1:]
	switch el := elems[0]; el.kind {
	case elemLiteral:
		return p.tokens[pos].Literal == el.literal && p.match(rest, pos+1)

	case elemUInt:
		n, ok := parseUInt(p.tokens[pos].Literal)
		if !ok {
			return false
		}
		p.counts = append(p.counts, n)
		if p.match(rest, pos+1) {
			return true
		}
		p.counts = p.counts[:len(p.counts)-1]
		return false

	case elemName:
		for _, span := range nameSpans(p.tokens, pos) {
			p.names = append(p.names, span.value)
			if p.match(rest, span.end) {
				return true
			}
			p.names = p.names[:len(p.names)-1]
		}
		return false
	}
	return false
}

func (p *Parser) invalid() *ParseError {
	err := &ParseError{Message: "unrecognized input"}
	if len(p.tokens) == 0 {
		return err
	}
	if p.furthest < len(p.tokens) {
		err.Pos = p.tokens[p.furthest].Pos
	} else {
		last := p.tokens[len(p.tokens)-1]
		err.Pos = last.Pos + len(last.Literal)
	}
	if verb := p.tokens[0].Literal; !isVerb(verb) {
		err.Suggestion = SuggestFrom(verb, Verbs, 2)
	}
	return err
}

func isVerb(lit string) bool {
	for _, v := range Verbs {
		if v == lit {
			return true
		}
	}
	return false
}

// parseUInt accepts one or more ASCII digits. Values beyond the range of int
// saturate at math.MaxInt.
func parseUInt(lit string) (int, bool) {
	if lit == "" {
		return 0, false
	}
	for i := 0; i < len(lit); i++ {
		if lit[i] < '0' || lit[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(lit, 10, 0)
	if err != nil {
		// Only a range error is possible once the digits are validated.
		return math.MaxInt, true
	}
	return int(n), true
}
