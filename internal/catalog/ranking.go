package catalog

import (
	"cmp"
	"math"
	"slices"
)

// TrackListens is one flattened track row.
type TrackListens struct {
	Artist  string `json:"artist"`
	Album   string `json:"album"`
	Track   string `json:"track"`
	Listens uint64 `json:"listens"`
}

// ArtistListens is the total listen count across every track by an artist.
type ArtistListens struct {
	Artist  string `json:"artist"`
	Listens uint64 `json:"listens"`
}

// TrackListens flattens the store into one row per track.
func (s *Store) TrackListens() []TrackListens {
	var rows []TrackListens
	for artist, as := range s.artists {
		for album, ts := range as {
			for track, n := range ts {
				rows = append(rows, TrackListens{Artist: artist, Album: album, Track: track, Listens: n})
			}
		}
	}
	return rows
}

// ArtistListens flattens the store into one row per artist. Artists without
// tracks are included with zero listens. Totals saturate at math.MaxUint64.
func (s *Store) ArtistListens() []ArtistListens {
	rows := make([]ArtistListens, 0, len(s.artists))
	for artist, as := range s.artists {
		var total uint64
		for _, ts := range as {
			for _, n := range ts {
				total = addSaturating(total, n)
			}
		}
		rows = append(rows, ArtistListens{Artist: artist, Listens: total})
	}
	return rows
}

// TotalListens sums every track's listens, saturating at math.MaxUint64.
func (s *Store) TotalListens() uint64 {
	var total uint64
	for _, a := range s.ArtistListens() {
		total = addSaturating(total, a.Listens)
	}
	return total
}

// TopTracks returns at most n tracks ordered by listens descending. Equal
// counts are ordered by artist, album, then track name ascending.
func (s *Store) TopTracks(n int) []TrackListens {
	rows := s.TrackListens()
	slices.SortFunc(rows, func(a, b TrackListens) int {
		if c := cmp.Compare(b.Listens, a.Listens); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Artist, b.Artist); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Album, b.Album); c != 0 {
			return c
		}
		return cmp.Compare(a.Track, b.Track)
	})
	return truncate(rows, n)
}

// TopArtists returns at most n artists ordered by total listens descending.
// Equal totals are ordered by artist name ascending.
func (s *Store) TopArtists(n int) []ArtistListens {
	rows := s.ArtistListens()
	slices.SortFunc(rows, func(a, b ArtistListens) int {
		if c := cmp.Compare(b.Listens, a.Listens); c != 0 {
			return c
		}
		return cmp.Compare(a.Artist, b.Artist)
	})
	return truncate(rows, n)
}

func truncate[T any](rows []T, n int) []T {
	if n <= 0 {
		return nil
	}
	if n < len(rows) {
		return rows[:n]
	}
	return rows
}

func addSaturating(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}
