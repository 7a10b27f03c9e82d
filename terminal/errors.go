package terminal

import "errors"

var (
	// ErrNotTerminal is returned by Init when the input is not a tty
	ErrNotTerminal = errors.New("stdin is not a terminal")

	// ErrMalformed marks an input chunk that looked like a mouse report but did not parse
	ErrMalformed = errors.New("malformed mouse report")

	// ErrClosed is returned by session writes after Close
	ErrClosed = errors.New("terminal session closed")
)
