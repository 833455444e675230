package console

import (
	"bytes"
	"log"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// Editor is a liner line editor backed by a history file.
type Editor struct {
	*liner.State
	historyFile string
	limit       int
}

// NewEditor opens a line editor. History is loaded from historyFile when it
// is set; complete, when non-nil, drives tab completion.
func NewEditor(historyFile string, limit int, complete func(string) []string) *Editor {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	if complete != nil {
		state.SetCompleter(complete)
	}

	e := &Editor{State: state, historyFile: historyFile, limit: limit}
	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			if _, err := state.ReadHistory(f); err != nil {
				log.Printf("console: reading history %s: %v", historyFile, err)
			}
			f.Close()
		}
	}
	return e
}

// Close saves history and restores the terminal.
func (e *Editor) Close() error {
	if e.historyFile != "" && e.limit > 0 {
		var buf bytes.Buffer
		if _, err := e.WriteHistory(&buf); err != nil {
			log.Printf("console: collecting history: %v", err)
		} else if err := os.WriteFile(e.historyFile, []byte(lastLines(buf.String(), e.limit)), 0o600); err != nil {
			log.Printf("console: writing history %s: %v", e.historyFile, err)
		}
	}
	return e.State.Close()
}

// lastLines keeps the final n newline-terminated lines of s.
func lastLines(s string, n int) string {
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "")
}
