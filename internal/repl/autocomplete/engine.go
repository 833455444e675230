// Package autocomplete provides context-aware completions for CQL.
package autocomplete

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/matthewbaird/playcount/internal/catalog"
	"github.com/matthewbaird/playcount/internal/repl/cql"
	"github.com/matthewbaird/playcount/internal/repl/meta"
)

// CompletionItem is a single autocomplete suggestion.
type CompletionItem struct {
	Label      string `json:"label"`
	Kind       string `json:"kind"` // "verb", "command", "topic", "keyword", "artist", "album", "track"
	InsertText string `json:"insert_text,omitempty"`
}

// text returns what should replace the partial word.
func (c CompletionItem) text() string {
	if c.InsertText != "" {
		return c.InsertText
	}
	return c.Label
}

// Engine completes CQL against the names in a live store.
type Engine struct {
	store func() *catalog.Store
}

// New creates an autocomplete engine that reads names from the store
// returned by store at completion time.
func New(store func() *catalog.Store) *Engine {
	return &Engine{store: store}
}

type slotKind int

const (
	slotNew slotKind = iota // a name that does not exist yet
	slotArtist
	slotAlbum
	slotTrack
)

// shape describes a command after its head keywords: the literal markers
// separating its names, and what each name refers to. slots[0] follows the
// head, slots[i] follows markers[i-1].
type shape struct {
	head    []string
	markers []string
	slots   []slotKind
}

var shapes = []shape{
	{head: []string{"add", "artist"}, slots: []slotKind{slotNew}},
	{head: []string{"add", "album"}, markers: []string{"by"}, slots: []slotKind{slotNew, slotArtist}},
	{head: []string{"add", "track"}, markers: []string{"on", "by"}, slots: []slotKind{slotNew, slotAlbum, slotArtist}},
	{head: []string{"list", "albums", "by"}, slots: []slotKind{slotArtist}},
	{head: []string{"list", "tracks", "on"}, markers: []string{"by"}, slots: []slotKind{slotAlbum, slotArtist}},
	{head: []string{"list", "top"}},
	{head: []string{"listen", "to"}, markers: []string{"on", "by"}, slots: []slotKind{slotTrack, slotAlbum, slotArtist}},
}

var topObjects = []string{"tracks", "artists"}

// Complete returns autocomplete suggestions for the text before cursor.
func (e *Engine) Complete(text string, cursor int) []CompletionItem {
	if cursor > len(text) {
		cursor = len(text)
	}
	words, partial := split(text[:cursor])
	return e.complete(words, partial)
}

// CompleteLine returns whole-line candidates in the form a line editor
// expects: the input with its last partial word replaced.
func (e *Engine) CompleteLine(line string) []string {
	_, partial := split(line)
	base := line[:len(line)-len(partial)]
	var out []string
	for _, item := range e.Complete(line, len(line)) {
		out = append(out, base+item.text())
	}
	return out
}

func (e *Engine) complete(words []string, partial string) []CompletionItem {
	if len(words) == 0 {
		items := e.completeVerbs(partial)
		return append(items, e.completeMetaCmds(partial)...)
	}

	// :help → topic; other meta-commands take no arguments.
	if meta.IsMeta(words[0]) {
		if len(words) == 1 && words[0] == ":help" {
			return filterItems(meta.Topics, partial, "topic")
		}
		return nil
	}

	// list top N → tracks | artists
	if len(words) == 3 && words[0] == "list" && words[1] == "top" {
		return filterItems(topObjects, partial, "keyword")
	}

	// Still inside the head keywords.
	var next []string
	for _, sh := range shapes {
		if len(words) < len(sh.head) && slices.Equal(sh.head[:len(words)], words) {
			if w := sh.head[len(words)]; !slices.Contains(next, w) {
				next = append(next, w)
			}
		}
	}
	if len(next) > 0 {
		return filterItems(next, partial, "keyword")
	}

	for _, sh := range shapes {
		if len(words) < len(sh.head) || !slices.Equal(sh.head, words[:len(sh.head)]) {
			continue
		}
		if len(sh.slots) == 0 {
			return nil
		}

		slot, sinceMarker := 0, 0
		for _, w := range words[len(sh.head):] {
			if slot < len(sh.markers) && sinceMarker > 0 && w == sh.markers[slot] {
				slot++
				sinceMarker = 0
				continue
			}
			sinceMarker++
		}

		if sinceMarker == 0 {
			return e.completeNames(sh.slots[slot], partial)
		}
		if slot < len(sh.markers) {
			return filterItems(sh.markers[slot:slot+1], partial, "keyword")
		}
		return nil
	}
	return nil
}

// ── Completion providers ────────────────────────────────────────────────────

func (e *Engine) completeVerbs(partial string) []CompletionItem {
	return filterItems(cql.Verbs, partial, "verb")
}

func (e *Engine) completeMetaCmds(partial string) []CompletionItem {
	return filterItems(meta.Commands, partial, "command")
}

func (e *Engine) completeNames(kind slotKind, partial string) []CompletionItem {
	if e.store == nil {
		return nil
	}
	store := e.store()
	if store == nil {
		return nil
	}

	var names []string
	var label string
	switch kind {
	case slotArtist:
		names, label = store.Artists(), "artist"
	case slotAlbum:
		names, label = store.AllAlbums(), "album"
	case slotTrack:
		names, label = store.AllTracks(), "track"
	default:
		return nil
	}

	var items []CompletionItem
	for _, name := range names {
		quoted := cql.Quote(name)
		if partial == "" || strings.HasPrefix(name, partial) || strings.HasPrefix(quoted, partial) {
			items = append(items, CompletionItem{
				Label:      name,
				Kind:       label,
				InsertText: quoted,
			})
		}
	}
	return items
}

// ── Helpers ─────────────────────────────────────────────────────────────────

// split returns the completed words of prefix and the partial word the
// cursor is in, if any.
func split(prefix string) ([]string, string) {
	words := cql.Literals(cql.Tokenize(prefix))
	if len(words) == 0 || endsInSpace(prefix) {
		return words, ""
	}
	return words[:len(words)-1], words[len(words)-1]
}

func endsInSpace(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsSpace(r)
}

func filterItems(candidates []string, partial, kind string) []CompletionItem {
	var items []CompletionItem
	for _, c := range candidates {
		if partial == "" || strings.HasPrefix(c, partial) {
			items = append(items, CompletionItem{
				Label: c,
				Kind:  kind,
			})
		}
	}
	return items
}
