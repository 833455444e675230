// Package session manages REPL session lifecycle.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/matthewbaird/playcount/internal/catalog"
	"github.com/matthewbaird/playcount/internal/repl/interpreter"
)

// Session holds the state of one REPL run: the catalog store threaded
// between commands and the lines entered so far.
type Session struct {
	ID           string    `json:"id"`
	History      []string  `json:"history"`
	CreatedAt    time.Time `json:"created_at"`
	LastActiveAt time.Time `json:"last_active_at"`

	store *catalog.Store
	done  bool
}

// New creates a session with an empty catalog.
func New() *Session {
	return WithStore(catalog.New())
}

// WithStore creates a session that starts from store.
func WithStore(store *catalog.Store) *Session {
	now := time.Now()
	return &Session{
		ID:           uuid.New().String(),
		CreatedAt:    now,
		LastActiveAt: now,
		store:        store,
	}
}

// Store returns the current catalog. After quit it is the last store the
// session held.
func (s *Session) Store() *catalog.Store { return s.store }

// Done reports whether the session has received quit.
func (s *Session) Done() bool { return s.done }

// Touch updates the last activity timestamp.
func (s *Session) Touch() {
	s.LastActiveAt = time.Now()
}

// AddHistory appends a line to the session history.
func (s *Session) AddHistory(line string) {
	s.History = append(s.History, line)
	s.Touch()
}

// Exec runs one line against the current store and replaces the store with
// the result. Lines sent after quit are rejected without being run.
func (s *Session) Exec(line string) interpreter.Result {
	if s.done {
		return interpreter.Result{Next: s.store, Message: ErrClosed.Error(), Err: ErrClosed}
	}
	s.AddHistory(line)

	res := interpreter.Execute(s.store, line)
	switch {
	case res.Quit():
		s.done = true
	case !res.Failed():
		s.store = res.Next
	}
	return res
}
