// @focus: #sys { term }
// Package terminal provides direct ANSI terminal control for box-based UIs.
//
// Features:
//   - Scoped session: raw mode, alternate screen, any-motion SGR mouse reporting
//   - Pluggable terminal-mode provider (x/term, tcell Tty, in-memory virtual)
//   - SGR mouse report and key chunk decoding without panics on garbage
//   - True color (24-bit) with 256-color fallback
//   - Clean terminal restoration on exit, signal and panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
