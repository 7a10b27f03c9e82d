package terminal

import "io"

// Backend abstracts the terminal-mode provider.
// The session treats it as a black box: enter raw mode, restore mode, report size,
// and move bytes in both directions.
type Backend interface {
	io.Reader
	io.Writer

	// Init enters raw input mode
	Init() error

	// Fini restores the mode saved by Init. Safe to call without a prior Init
	Fini() error

	// Size reports the terminal dimensions in cells
	Size() (width, height int, err error)
}
