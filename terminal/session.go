package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"sync"
)

// Options tunes session acquisition
type Options struct {
	// MultiplexerNote prints advice after teardown when Term names a multiplexer
	MultiplexerNote bool
	// Term is the value of $TERM at startup
	Term string
}

// Session is the scoped handle on a terminal: raw mode, alternate screen and mouse
// reporting are held from Open until Close. Close is idempotent and safe to call from
// a signal watcher concurrently with the owner.
type Session struct {
	backend Backend
	opts    Options

	mu     sync.Mutex
	writer *bufio.Writer
	width  int
	height int
	closed bool

	closeOnce   sync.Once
	closeErr    error
	stopSignals func()
}

// Open acquires the terminal. On any failure the backend is left in its original mode.
func Open(b Backend, opts Options) (*Session, error) {
	if err := b.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}

	w, h, err := b.Size()
	if err != nil {
		b.Fini()
		return nil, fmt.Errorf("terminal size: %w", err)
	}

	s := &Session{
		backend: b,
		opts:    opts,
		writer:  bufio.NewWriterSize(b, 65536),
		width:   w,
		height:  h,
	}

	s.writer.Write(startSequence)
	if err := s.writer.Flush(); err != nil {
		b.Fini()
		return nil, fmt.Errorf("terminal start: %w", err)
	}
	return s, nil
}

// Close restores the terminal exactly once and returns the first teardown error
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.closed = true
		if s.stopSignals != nil {
			s.stopSignals()
		}

		s.writer.Write(stopSequence)
		werr := s.writer.Flush()
		ferr := s.backend.Fini()
		s.closeErr = errors.Join(werr, ferr)

		if s.opts.MultiplexerNote {
			if note := MultiplexerNote(s.opts.Term); note != "" {
				s.backend.Write([]byte(note))
			}
		}
	})
	return s.closeErr
}

// Closed reports whether Close has run
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Size returns the dimensions captured at Open or the last Refresh
func (s *Session) Size() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// Refresh re-queries the backend for the terminal size
func (s *Session) Refresh() (width, height int, err error) {
	w, h, err := s.backend.Size()
	if err != nil {
		return 0, 0, fmt.Errorf("terminal size: %w", err)
	}

	s.mu.Lock()
	s.width, s.height = w, h
	s.mu.Unlock()
	return w, h, nil
}

// Read reads one raw input chunk from the backend
func (s *Session) Read(p []byte) (int, error) {
	return s.backend.Read(p)
}

// Print writes text at a 1-indexed screen position
func (s *Session) Print(row, col int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	writeCursorPos(s.writer, row, col)
	_, err := s.writer.WriteString(text)
	return err
}

// ClearScreen resets attributes and erases the display
func (s *Session) ClearScreen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.writer.Write(csiSGR0)
	_, err := s.writer.Write(csiClear)
	return err
}

// Flush pushes buffered output to the terminal
func (s *Session) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	return s.writer.Flush()
}

// MultiplexerNote returns advice for terminals running under screen or tmux, empty otherwise
func MultiplexerNote(term string) string {
	if term != "screen" && term != "tmux" {
		return ""
	}
	return "Note: terminal multiplexer detected.\n" +
		"  Rendering through a multiplexer may flicker; a GPU-accelerated terminal\n" +
		"  such as alacritty or kitty gives the smoothest result.\n"
}
