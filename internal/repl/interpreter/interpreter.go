// Package interpreter applies parsed CQL commands to a catalog store.
package interpreter

import (
	"errors"
	"fmt"

	"github.com/matthewbaird/playcount/internal/catalog"
	"github.com/matthewbaird/playcount/internal/repl/cql"
)

// suggestDistance is the maximum edit distance for "did you mean" hints on
// unknown names.
const suggestDistance = 2

// Result is the outcome of one command line.
//
// Next is the store to use for the following line. It is nil only after
// quit. When Err is non-nil, Next is the exact store that was passed in.
type Result struct {
	Next    *catalog.Store `json:"-"`
	Message string         `json:"message"`
	Err     error          `json:"-"`

	// At most one of these is set, for list commands that found rows.
	Names      []string                `json:"names,omitempty"`
	TopTracks  []catalog.TrackListens  `json:"top_tracks,omitempty"`
	TopArtists []catalog.ArtistListens `json:"top_artists,omitempty"`
}

// Failed reports whether the command was rejected.
func (r Result) Failed() bool { return r.Err != nil }

// Quit reports whether the command ends the session.
func (r Result) Quit() bool { return r.Next == nil }

// Execute tokenizes, parses, and interprets one line.
func Execute(store *catalog.Store, line string) Result {
	return Interpret(store, cql.Parse(line))
}

// Interpret applies cmd to store. It never modifies store.
func Interpret(store *catalog.Store, cmd cql.Command) Result {
	switch c := cmd.(type) {
	case *cql.Add:
		return execAdd(store, c.Object)
	case *cql.List:
		return execList(store, c.Object)
	case *cql.ListenTo:
		return execListen(store, c.Object)
	case *cql.Quit:
		return Result{Next: nil, Message: "quitting"}
	case *cql.Help:
		return Result{Next: store, Message: HelpText}
	case *cql.Invalid:
		if c.Err == nil {
			return fail(store, &cql.ParseError{Message: "unrecognized input"})
		}
		return fail(store, c.Err)
	default:
		return fail(store, fmt.Errorf("unsupported command %T", cmd))
	}
}

// ── add ─────────────────────────────────────────────────────────────────────

func execAdd(store *catalog.Store, obj cql.AddObject) Result {
	switch o := obj.(type) {
	case *cql.AddArtist:
		return ok(store.AddArtist(o.Artist), fmt.Sprintf("added artist '%s'", o.Artist))

	case *cql.AddAlbum:
		next, err := store.AddAlbum(o.Artist, o.Album)
		if err != nil {
			return fail(store, err)
		}
		return ok(next, fmt.Sprintf("added album '%s' by '%s'", o.Album, o.Artist))

	case *cql.AddTrack:
		next, err := store.AddTrack(o.Artist, o.Album, o.Track)
		if err != nil {
			return fail(store, err)
		}
		return ok(next, fmt.Sprintf("added track '%s' on '%s' by '%s'", o.Track, o.Album, o.Artist))

	default:
		return fail(store, fmt.Errorf("unsupported add object %T", obj))
	}
}

// ── list ────────────────────────────────────────────────────────────────────

func execList(store *catalog.Store, obj cql.ListObject) Result {
	switch o := obj.(type) {
	case *cql.ListAlbums:
		albums, err := store.Albums(o.Artist)
		if err != nil {
			return fail(store, err)
		}
		if len(albums) == 0 {
			return ok(store, "no albums found")
		}
		res := ok(store, fmt.Sprintf("albums by '%s'", o.Artist))
		res.Names = albums
		return res

	case *cql.ListTracks:
		tracks, err := store.Tracks(o.Artist, o.Album)
		if err != nil {
			return fail(store, err)
		}
		if len(tracks) == 0 {
			return ok(store, "no tracks found")
		}
		res := ok(store, fmt.Sprintf("tracks on '%s' by '%s'", o.Album, o.Artist))
		res.Names = tracks
		return res

	case *cql.ListTopTracks:
		top := store.TopTracks(o.N)
		if len(top) == 0 {
			return ok(store, "no tracks found")
		}
		res := ok(store, fmt.Sprintf("top %d %s", len(top), plural(len(top), "track")))
		res.TopTracks = top
		return res

	case *cql.ListTopArtists:
		top := store.TopArtists(o.N)
		if len(top) == 0 {
			return ok(store, "no artists found")
		}
		res := ok(store, fmt.Sprintf("top %d %s", len(top), plural(len(top), "artist")))
		res.TopArtists = top
		return res

	default:
		return fail(store, fmt.Errorf("unsupported list object %T", obj))
	}
}

// ── listen to ───────────────────────────────────────────────────────────────

func execListen(store *catalog.Store, obj cql.ListenObject) Result {
	switch o := obj.(type) {
	case *cql.ListenTrack:
		next, err := store.Listen(o.Artist, o.Album, o.Track)
		if err != nil {
			return fail(store, err)
		}
		return ok(next, fmt.Sprintf("listened to '%s' on '%s' by '%s'", o.Track, o.Album, o.Artist))

	default:
		return fail(store, fmt.Errorf("unsupported listen object %T", obj))
	}
}

// ── helpers ─────────────────────────────────────────────────────────────────

func ok(next *catalog.Store, msg string) Result {
	return Result{Next: next, Message: msg}
}

// fail returns store unchanged with err as the message. Unknown-name errors
// get a suggestion drawn from the names that do exist in the same scope.
func fail(store *catalog.Store, err error) Result {
	suggest(store, err)
	return Result{Next: store, Message: err.Error(), Err: err}
}

func suggest(store *catalog.Store, err error) {
	var (
		unknownArtist *catalog.UnknownArtistError
		unknownAlbum  *catalog.UnknownAlbumError
		unknownTrack  *catalog.UnknownTrackError
	)
	switch {
	case errors.As(err, &unknownArtist):
		unknownArtist.Suggestion = cql.SuggestFrom(unknownArtist.Artist, store.Artists(), suggestDistance)
	case errors.As(err, &unknownAlbum):
		albums, _ := store.Albums(unknownAlbum.Artist)
		unknownAlbum.Suggestion = cql.SuggestFrom(unknownAlbum.Album, albums, suggestDistance)
	case errors.As(err, &unknownTrack):
		tracks, _ := store.Tracks(unknownTrack.Artist, unknownTrack.Album)
		unknownTrack.Suggestion = cql.SuggestFrom(unknownTrack.Track, tracks, suggestDistance)
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
