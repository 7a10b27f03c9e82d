//go:build !unix

package terminal

// WatchSignals is a no-op where POSIX termination signals don't apply
func (s *Session) WatchSignals() {}
