package catalog

import "fmt"

// UnknownArtistError reports a command that names an artist not in the store.
type UnknownArtistError struct {
	Artist     string
	Suggestion string // "did you mean 'bob'?" or ""
}

func (e *UnknownArtistError) Error() string {
	return withSuggestion(fmt.Sprintf("unknown artist '%s'", e.Artist), e.Suggestion)
}

// UnknownAlbumError reports an album missing from an existing artist.
type UnknownAlbumError struct {
	Album      string
	Artist     string
	Suggestion string
}

func (e *UnknownAlbumError) Error() string {
	return withSuggestion(fmt.Sprintf("unknown album '%s' by '%s'", e.Album, e.Artist), e.Suggestion)
}

// UnknownTrackError reports a track missing from an existing album.
type UnknownTrackError struct {
	Track      string
	Album      string
	Artist     string
	Suggestion string
}

func (e *UnknownTrackError) Error() string {
	return withSuggestion(fmt.Sprintf("unknown track '%s' on '%s' by '%s'", e.Track, e.Album, e.Artist), e.Suggestion)
}

func withSuggestion(msg, suggestion string) string {
	if suggestion == "" {
		return msg
	}
	return msg + " (" + suggestion + ")"
}
