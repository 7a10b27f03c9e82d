// @focus: #terminal { ansi }
package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments
var (
	csiCursorPos = []byte("\x1b[") // followed by row;colH
	csiSGR0      = []byte("\x1b[0m")
	csiClear     = []byte("\x1b[2J")
	csiRIS       = []byte("\x1bc") // Reset to Initial State (emergency)

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Screen modes
	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")

	// Mouse reporting: any-motion tracking, urxvt extended coords, SGR extended coords
	csiMouseMotionOn  = []byte("\x1b[?1003h")
	csiMouseMotionOff = []byte("\x1b[?1003l")
	csiMouseURXVTOn   = []byte("\x1b[?1015h")
	csiMouseURXVTOff  = []byte("\x1b[?1015l")
	csiMouseSGROn     = []byte("\x1b[?1006h")
	csiMouseSGROff    = []byte("\x1b[?1006l")

	// Color prefixes
	csiBgRGB = []byte("\x1b[48;2;") // followed by R;G;Bm
	csiBg256 = []byte("\x1b[48;5;") // followed by Nm
)

// startSequence is emitted once when a session acquires the terminal
var startSequence = concat(
	csiAltScreenEnter,
	csiSGR0,
	csiClear,
	csiMouseMotionOn,
	csiMouseURXVTOn,
	csiMouseSGROn,
	csiCursorHide,
)

// stopSequence reverses startSequence, order matters: clear while still on the alternate screen
var stopSequence = concat(
	csiSGR0,
	csiClear,
	csiAltScreenExit,
	csiMouseMotionOff,
	csiMouseURXVTOff,
	csiMouseSGROff,
	csiCursorShow,
)

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// StartSequence returns the bytes written on session start
func StartSequence() string {
	return string(startSequence)
}

// StopSequence returns the bytes written on session stop
func StopSequence() string {
	return string(stopSequence)
}

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		w.WriteByte('-')
		n = -n
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [20]byte
	i := len(buf) - 1
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeCursorPos writes cursor positioning sequence (1-indexed input, row first)
func writeCursorPos(w *bufio.Writer, row, col int) {
	w.Write(csiCursorPos)
	writeInt(w, row)
	w.WriteByte(';')
	writeInt(w, col)
	w.WriteByte('H')
}
