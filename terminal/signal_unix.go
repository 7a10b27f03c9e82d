//go:build unix

package terminal

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
)

// WatchSignals restores the terminal and exits when the process is told to terminate.
// The watcher is stopped by Close.
func (s *Session) WatchSignals() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGINT, syscall.SIGQUIT)
	doneCh := make(chan struct{})

	s.mu.Lock()
	s.stopSignals = func() {
		signal.Stop(sigCh)
		close(doneCh)
	}
	s.mu.Unlock()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				EmergencyReset(os.Stdout)
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSIGNAL WATCHER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		select {
		case sig := <-sigCh:
			s.Close()
			code := 1
			if n, ok := sig.(syscall.Signal); ok {
				code = 128 + int(n)
			}
			os.Exit(code)
		case <-doneCh:
		}
	}()
}
