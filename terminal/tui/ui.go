package tui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lixenwraith/tuibox/config"
	"github.com/lixenwraith/tuibox/terminal"
)

// UI is one interactive session: a box arena, key bindings, and the terminal it owns.
// All methods run on the goroutine that calls Run; callbacks may re-enter the UI.
type UI struct {
	sess *terminal.Session
	cfg  config.Config
	log  *slog.Logger

	width  int
	height int

	boxes  []*Box
	keys   []keyBinding
	nextID int
	gen    uint64 // bumped by Clear so in-flight dispatch can tell

	screen    int
	scroll    int
	canScroll bool
	force     bool
	drag      dragState

	quit bool
	err  error // first output error, fatal for Run
}

// New acquires the terminal through b and returns an empty session.
// On error nothing is left changed on the terminal.
func New(b terminal.Backend, cfg config.Config) (*UI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	sess, err := terminal.Open(b, terminal.Options{
		MultiplexerNote: cfg.MultiplexerNote,
		Term:            os.Getenv("TERM"),
	})
	if err != nil {
		return nil, err
	}
	if cfg.HandleSignals {
		sess.WatchSignals()
	}

	w, h := sess.Size()
	u := &UI{
		sess:      sess,
		cfg:       cfg,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		width:     w,
		height:    h,
		screen:    cfg.Screen,
		canScroll: cfg.CanScroll,
	}
	return u, nil
}

// SetLogger routes diagnostics; the default discards
func (u *UI) SetLogger(l *slog.Logger) {
	if l != nil {
		u.log = l
	}
}

// Close restores the terminal. Safe to call more than once.
func (u *UI) Close() error {
	return u.sess.Close()
}

// Run reads input chunks and dispatches them until Quit, end of input, or an error.
// A panic escaping a callback restores the terminal before it propagates.
func (u *UI) Run() error {
	defer func() {
		if r := recover(); r != nil {
			u.Close()
			panic(r)
		}
	}()

	buf := make([]byte, u.cfg.ReadBuffer)
	u.quit = false
	for !u.quit {
		n, err := u.sess.Read(buf)
		if n > 0 {
			u.Feed(buf[:n])
		}
		if u.err != nil {
			return fmt.Errorf("render: %w", u.err)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}
	}
	return nil
}

// Quit makes Run return after the current chunk
func (u *UI) Quit() {
	u.quit = true
}

// Exit restores the terminal and terminates the process
func (u *UI) Exit(code int) {
	u.Close()
	os.Exit(code)
}

// Clear starts a fresh logical session on the same terminal: boxes, bindings, drag,
// scroll and ids are reset and the size is re-read. The active screen is kept.
func (u *UI) Clear() error {
	u.boxes = nil
	u.keys = nil
	u.nextID = 0
	u.gen++
	u.drag = dragState{}
	u.scroll = 0
	u.canScroll = u.cfg.CanScroll
	u.force = false

	w, h, err := u.sess.Refresh()
	if err != nil {
		return err
	}
	u.width, u.height = w, h

	if err := u.fail(u.sess.ClearScreen()); err != nil {
		return err
	}
	return u.fail(u.sess.Flush())
}

// Err returns the output error that stopped rendering, if any
func (u *UI) Err() error {
	return u.err
}

// Size returns the terminal dimensions used for centering and clipping
func (u *UI) Size() (width, height int) {
	return u.width, u.height
}

// Screen returns the active screen id
func (u *UI) Screen() int {
	return u.screen
}

// SetScreen switches the active screen; boxes registered afterwards join it
func (u *UI) SetScreen(id int) {
	u.screen = id
}

// ScrollEnabled reports whether the wheel moves the scroll offset
func (u *UI) ScrollEnabled() bool {
	return u.canScroll
}

// SetScrollEnabled toggles wheel scrolling and scroll-offset line placement
func (u *UI) SetScrollEnabled(on bool) {
	u.canScroll = on
}

// ScrollOffset returns the vertical scroll offset in rows
func (u *UI) ScrollOffset() int {
	return u.scroll
}

// fail records the first output error
func (u *UI) fail(err error) error {
	if err != nil && u.err == nil {
		u.err = err
		u.log.Error("output failed", "err", err)
	}
	return err
}
