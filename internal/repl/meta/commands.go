// Package meta handles REPL meta-commands (:help, :clear, :env, :history, :stats, :dump).
package meta

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/matthewbaird/playcount/internal/repl/interpreter"
	"github.com/matthewbaird/playcount/internal/repl/render"
	"github.com/matthewbaird/playcount/internal/repl/session"
)

// Prefix marks a line as a meta-command rather than a catalog command.
const Prefix = ":"

// Commands lists the available meta-commands.
var Commands = []string{":help", ":clear", ":env", ":history", ":stats", ":dump"}

// Topics lists the arguments :help accepts.
var Topics = []string{"add", "list", "listen", "names"}

// Handler dispatches meta-commands.
type Handler struct{}

// New creates a meta-command handler.
func New() *Handler {
	return &Handler{}
}

// Result is the output of a meta-command execution.
type Result struct {
	Output string `json:"output"`
	Clear  bool   `json:"clear,omitempty"` // Signal the console to clear the screen
}

// IsMeta reports whether line should be routed to Execute.
func IsMeta(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), Prefix)
}

// ExecuteLine splits a ":command args" line and runs it.
func (h *Handler) ExecuteLine(sess *session.Session, line string) (*Result, error) {
	fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(line), Prefix))
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty meta-command. Type :help for available commands")
	}
	return h.Execute(sess, fields[0], fields[1:])
}

// Execute runs a meta-command and returns the result.
func (h *Handler) Execute(sess *session.Session, command string, args []string) (*Result, error) {
	switch command {
	case "help":
		return h.help(args)
	case "clear":
		return &Result{Clear: true}, nil
	case "env":
		return h.env(sess)
	case "history":
		return h.history(sess)
	case "stats":
		return h.stats(sess)
	case "dump":
		return h.dump(sess)
	default:
		return nil, fmt.Errorf("unknown meta-command ':%s'. Type :help for available commands", command)
	}
}

func (h *Handler) help(args []string) (*Result, error) {
	if len(args) > 0 {
		return h.helpTopic(args[0])
	}

	help := interpreter.HelpText + `

Meta-commands:
  :help [command]  Show help
  :clear           Clear the screen
  :env             Show session info
  :history         Show command history
  :stats           Show catalog totals
  :dump            Print the catalog as JSON`

	return &Result{Output: help}, nil
}

func (h *Handler) helpTopic(topic string) (*Result, error) {
	switch topic {
	case "add":
		return &Result{Output: "add artist <name>\nadd album <name> by <artist>\nadd track <name> on <album> by <artist>\n\nAdding a track that already exists resets its listen count to 0."}, nil
	case "list":
		return &Result{Output: "list albums by <artist>\nlist tracks on <album> by <artist>\nlist top <n> tracks\nlist top <n> artists\n\nTies are ordered by artist, album, then track name."}, nil
	case "listen":
		return &Result{Output: "listen to <track> on <album> by <artist>\n\nIncrements the track's listen count by one."}, nil
	case "names":
		return &Result{Output: "Names are a single word, several unquoted words, or \"quoted words\".\nQuote a name that contains by, on or to to keep it from splitting."}, nil
	default:
		return &Result{Output: fmt.Sprintf("No help available for '%s'", topic)}, nil
	}
}

func (h *Handler) env(sess *session.Session) (*Result, error) {
	out := fmt.Sprintf("Session: %s\nCreated: %s\nLast active: %s\nHistory entries: %d\nArtists: %d",
		sess.ID,
		sess.CreatedAt.Format("2006-01-02 15:04:05"),
		sess.LastActiveAt.Format("2006-01-02 15:04:05"),
		len(sess.History), sess.Store().Len())
	return &Result{Output: out}, nil
}

func (h *Handler) history(sess *session.Session) (*Result, error) {
	if len(sess.History) == 0 {
		return &Result{Output: "(no history)"}, nil
	}

	var b strings.Builder
	for i, entry := range sess.History {
		fmt.Fprintf(&b, "%3d  %s\n", i+1, entry)
	}
	return &Result{Output: b.String()}, nil
}

func (h *Handler) stats(sess *session.Session) (*Result, error) {
	store := sess.Store()
	albums := 0
	for _, artist := range store.Artists() {
		names, err := store.Albums(artist)
		if err != nil {
			return nil, err
		}
		albums += len(names)
	}

	out := fmt.Sprintf("Artists: %d\nAlbums: %d\nTracks: %d\nListens: %s",
		store.Len(), albums, len(store.TrackListens()), render.Listens(store.TotalListens()))
	return &Result{Output: out}, nil
}

func (h *Handler) dump(sess *session.Session) (*Result, error) {
	data, err := json.MarshalIndent(sess.Store().Snapshot(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	return &Result{Output: string(data)}, nil
}
