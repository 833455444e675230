package cql

// Command is the interface for top-level CQL commands. The set of
// implementations is closed: Add, List, ListenTo, Quit, Help, and Invalid.
type Command interface {
	commandNode()
}

// ── Top-level commands ──────────────────────────────────────────────────────

// Add represents: add (artist | album | track) ...
type Add struct {
	Object AddObject
}

// List represents: list (albums | tracks | top N tracks | top N artists) ...
type List struct {
	Object ListObject
}

// ListenTo represents: listen to <track> on <album> by <artist>
type ListenTo struct {
	Object ListenObject
}

// Quit represents: quit
type Quit struct{}

// Help represents: help
type Help struct{}

// Invalid is produced when no production consumes the whole token sequence.
type Invalid struct {
	Err *ParseError
}

func (*Add) commandNode()      {}
func (*List) commandNode()     {}
func (*ListenTo) commandNode() {}
func (*Quit) commandNode()     {}
func (*Help) commandNode()     {}
func (*Invalid) commandNode()  {}

// ── add objects ─────────────────────────────────────────────────────────────

// AddObject is implemented by AddArtist, AddAlbum, and AddTrack.
type AddObject interface {
	addObject()
}

// AddArtist represents: add artist <artist>
type AddArtist struct {
	Artist string
}

// AddAlbum represents: add album <album> by <artist>
type AddAlbum struct {
	Album  string
	Artist string
}

// AddTrack represents: add track <track> on <album> by <artist>
type AddTrack struct {
	Track  string
	Album  string
	Artist string
}

func (*AddArtist) addObject() {}
func (*AddAlbum) addObject()  {}
func (*AddTrack) addObject()  {}

// ── list objects ────────────────────────────────────────────────────────────

// ListObject is implemented by ListAlbums, ListTracks, ListTopTracks, and
// ListTopArtists.
type ListObject interface {
	listObject()
}

// ListAlbums represents: list albums by <artist>
type ListAlbums struct {
	Artist string
}

// ListTracks represents: list tracks on <album> by <artist>
type ListTracks struct {
	Album  string
	Artist string
}

// ListTopTracks represents: list top N tracks
type ListTopTracks struct {
	N int
}

// ListTopArtists represents: list top N artists
type ListTopArtists struct {
	N int
}

func (*ListAlbums) listObject()     {}
func (*ListTracks) listObject()     {}
func (*ListTopTracks) listObject()  {}
func (*ListTopArtists) listObject() {}

// ── listen objects ──────────────────────────────────────────────────────────

// ListenObject is implemented by ListenTrack.
type ListenObject interface {
	listenObject()
}

// ListenTrack is the track addressed by a listen command.
type ListenTrack struct {
	Track  string
	Album  string
	Artist string
}

func (*ListenTrack) listenObject() {}
