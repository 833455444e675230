// Package catalog holds the artist → album → track listen-count store that
// the REPL threads through each command.
//
// A Store is immutable: every mutating method returns a new Store and leaves
// the receiver untouched. Unchanged artists and albums are shared between
// the old and new Store, so a Store must never be modified in place.
package catalog

import (
	"maps"
	"math"
	"slices"
)

type (
	tracks map[string]uint64 // track → listens
	albums map[string]tracks // album → tracks
)

// Store is the full catalog.
type Store struct {
	artists map[string]albums
}

// New creates an empty store.
func New() *Store {
	return &Store{artists: map[string]albums{}}
}

// FromMap builds a store from nested artist → album → track → listens maps.
// The input is copied.
func FromMap(m map[string]map[string]map[string]uint64) *Store {
	s := New()
	for artist, as := range m {
		al := make(albums, len(as))
		for album, ts := range as {
			tr := make(tracks, len(ts))
			for track, n := range ts {
				tr[track] = n
			}
			al[album] = tr
		}
		s.artists[artist] = al
	}
	return s
}

// Snapshot returns a deep copy of the store as nested maps.
func (s *Store) Snapshot() map[string]map[string]map[string]uint64 {
	out := make(map[string]map[string]map[string]uint64, len(s.artists))
	for artist, as := range s.artists {
		al := make(map[string]map[string]uint64, len(as))
		for album, ts := range as {
			tr := make(map[string]uint64, len(ts))
			for track, n := range ts {
				tr[track] = n
			}
			al[album] = tr
		}
		out[artist] = al
	}
	return out
}

// ── Queries ─────────────────────────────────────────────────────────────────

// Len returns the number of artists.
func (s *Store) Len() int { return len(s.artists) }

// HasArtist reports whether artist is in the store.
func (s *Store) HasArtist(artist string) bool {
	_, ok := s.artists[artist]
	return ok
}

// Artists returns all artist names in ascending order.
func (s *Store) Artists() []string {
	return sortedKeys(s.artists)
}

// Albums returns the albums by artist in ascending order.
func (s *Store) Albums(artist string) ([]string, error) {
	as, ok := s.artists[artist]
	if !ok {
		return nil, &UnknownArtistError{Artist: artist}
	}
	return sortedKeys(as), nil
}

// Tracks returns the tracks on album by artist in ascending order.
func (s *Store) Tracks(artist, album string) ([]string, error) {
	ts, err := s.lookupAlbum(artist, album)
	if err != nil {
		return nil, err
	}
	return sortedKeys(ts), nil
}

// Listens returns the listen count of a track.
func (s *Store) Listens(artist, album, track string) (uint64, error) {
	ts, err := s.lookupAlbum(artist, album)
	if err != nil {
		return 0, err
	}
	n, ok := ts[track]
	if !ok {
		return 0, &UnknownTrackError{Track: track, Album: album, Artist: artist}
	}
	return n, nil
}

// AllAlbums returns every album name in the store, across artists, in
// ascending order without duplicates.
func (s *Store) AllAlbums() []string {
	var out []string
	for _, as := range s.artists {
		for album := range as {
			out = append(out, album)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// AllTracks returns every track name in the store, across albums, in
// ascending order without duplicates.
func (s *Store) AllTracks() []string {
	var out []string
	for _, as := range s.artists {
		for _, ts := range as {
			for track := range ts {
				out = append(out, track)
			}
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func (s *Store) lookupAlbum(artist, album string) (tracks, error) {
	as, ok := s.artists[artist]
	if !ok {
		return nil, &UnknownArtistError{Artist: artist}
	}
	ts, ok := as[album]
	if !ok {
		return nil, &UnknownAlbumError{Album: album, Artist: artist}
	}
	return ts, nil
}

// ── Mutations ───────────────────────────────────────────────────────────────

// AddArtist adds artist with no albums. An existing artist keeps its albums
// and tracks, and the receiver is returned.
func (s *Store) AddArtist(artist string) *Store {
	if s.HasArtist(artist) {
		return s
	}
	return s.withArtist(artist, albums{})
}

// AddAlbum adds album to an existing artist. An existing album keeps its
// tracks, and the receiver is returned.
func (s *Store) AddAlbum(artist, album string) (*Store, error) {
	as, ok := s.artists[artist]
	if !ok {
		return s, &UnknownArtistError{Artist: artist}
	}
	if _, ok := as[album]; ok {
		return s, nil
	}
	return s.withAlbum(artist, album, tracks{}), nil
}

// AddTrack sets track's listen count to zero on an existing album. Adding a
// track that is already present resets its count.
func (s *Store) AddTrack(artist, album, track string) (*Store, error) {
	ts, err := s.lookupAlbum(artist, album)
	if err != nil {
		return s, err
	}
	return s.withAlbum(artist, album, withCount(ts, track, 0)), nil
}

// Listen increments the listen count of an existing track by one. The count
// saturates at math.MaxUint64.
func (s *Store) Listen(artist, album, track string) (*Store, error) {
	n, err := s.Listens(artist, album, track)
	if err != nil {
		return s, err
	}
	if n < math.MaxUint64 {
		n++
	}
	ts := s.artists[artist][album]
	return s.withAlbum(artist, album, withCount(ts, track, n)), nil
}

// withArtist returns a copy of s with artist mapped to as.
func (s *Store) withArtist(artist string, as albums) *Store {
	next := make(map[string]albums, len(s.artists)+1)
	maps.Copy(next, s.artists)
	next[artist] = as
	return &Store{artists: next}
}

// withAlbum returns a copy of s with album under an existing artist mapped
// to ts.
func (s *Store) withAlbum(artist, album string, ts tracks) *Store {
	prev := s.artists[artist]
	as := make(albums, len(prev)+1)
	maps.Copy(as, prev)
	as[album] = ts
	return s.withArtist(artist, as)
}

func withCount(ts tracks, track string, n uint64) tracks {
	next := make(tracks, len(ts)+1)
	maps.Copy(next, ts)
	next[track] = n
	return next
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
