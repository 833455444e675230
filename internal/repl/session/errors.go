package session

import "errors"

// ErrClosed is returned for lines sent to a session that has quit.
var ErrClosed = errors.New("session is closed")
