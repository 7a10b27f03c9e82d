//go:build unix

package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// tcellBackend drives /dev/tty through tcell's Tty, useful when stdin/stdout are redirected
type tcellBackend struct {
	tty     tcell.Tty
	started bool
}

// NewTcellBackend opens the controlling terminal via tcell
func NewTcellBackend() (Backend, error) {
	tty, err := tcell.NewDevTty()
	if err != nil {
		return nil, fmt.Errorf("open tty: %w", err)
	}
	return &tcellBackend{tty: tty}, nil
}

func (b *tcellBackend) Init() error {
	if err := b.tty.Start(); err != nil {
		return fmt.Errorf("tty start: %w", err)
	}
	b.started = true
	return nil
}

func (b *tcellBackend) Fini() error {
	if !b.started {
		return nil
	}
	b.started = false
	if err := b.tty.Stop(); err != nil {
		return fmt.Errorf("tty stop: %w", err)
	}
	return b.tty.Close()
}

func (b *tcellBackend) Size() (int, int, error) {
	ws, err := b.tty.WindowSize()
	if err != nil {
		return 0, 0, fmt.Errorf("tty size: %w", err)
	}
	return ws.Width, ws.Height, nil
}

func (b *tcellBackend) Read(p []byte) (int, error) {
	return b.tty.Read(p)
}

func (b *tcellBackend) Write(p []byte) (int, error) {
	return b.tty.Write(p)
}
