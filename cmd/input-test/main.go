package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lixenwraith/tuibox/config"
	"github.com/lixenwraith/tuibox/terminal"
)

const ctrlC = 0x03

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	backend, err := terminal.NewBackend(cfg.Backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "backend: %v\n", err)
		os.Exit(1)
	}

	sess, err := terminal.Open(backend, terminal.Options{
		MultiplexerNote: cfg.MultiplexerNote,
		Term:            os.Getenv("TERM"),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer sess.Close()
	if cfg.HandleSignals {
		sess.WatchSignals()
	}

	w, h := sess.Size()

	// Event log (last N events)
	maxLog := max(1, h-4)
	eventLog := make([]string, 0, maxLog)

	addLog := func(s string) {
		if len(eventLog) >= maxLog {
			copy(eventLog, eventLog[1:])
			eventLog = eventLog[:maxLog-1]
		}
		eventLog = append(eventLog, s)
	}

	var last terminal.Event
	render := func() {
		sess.ClearScreen()
		sess.Print(1, 1, "Input Test - press keys, move/click/drag/scroll the mouse - q or Ctrl+C to quit")
		sess.Print(2, 1, strings.Repeat("-", w))
		for i, entry := range eventLog {
			sess.Print(3+i, 2, entry)
		}
		sess.Print(h-1, 1, strings.Repeat("-", w))
		sess.Print(h, 1, fmt.Sprintf("Size: %dx%d | Last: %v", w, h, last))
		sess.Flush()
	}

	render()

	buf := make([]byte, cfg.ReadBuffer)
	for {
		n, err := sess.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			events, derr := terminal.Decode(chunk)
			for _, ev := range events {
				if ev.Type == terminal.EventKey && (ev.Rune == 'q' || ev.Rune == ctrlC) {
					return
				}
				addLog(fmt.Sprintf("%-28s raw=%q", ev, chunk))
				last = ev
			}
			if derr != nil {
				addLog(fmt.Sprintf("error: %v", derr))
			}
			render()
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				sess.Close()
				fmt.Fprintf(os.Stderr, "read: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}
}
