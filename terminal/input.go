// @focus: #sys { io } #input { mouse }
package terminal

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// sgrPrefix opens an SGR extended mouse report
var sgrPrefix = []byte("\x1b[<")

// maxReportLen bounds the terminator scan so garbage can't stall the decoder
const maxReportLen = 32

// Decode classifies one raw input chunk.
//
// A chunk that does not open with an SGR mouse prefix is key input and yields a single
// EventKey with the chunk's first character. Otherwise the chunk holds one or more
// back-to-back reports of the form ESC [ < Btn ; X ; Y (M|m); fast pointer motion often
// packs several into one read. Reports with unrecognised button codes are consumed
// without producing an event.
//
// Malformed input never panics: decoding stops at the first bad report and the events
// decoded before it are returned along with an error wrapping ErrMalformed.
func Decode(chunk []byte) ([]Event, error) {
	if len(chunk) == 0 {
		return nil, nil
	}

	if !bytes.HasPrefix(chunk, sgrPrefix) {
		r, _ := utf8.DecodeRune(chunk)
		return []Event{{Type: EventKey, Rune: r}}, nil
	}

	var events []Event
	rest := chunk
	for bytes.HasPrefix(rest, sgrPrefix) {
		n, ev, err := parseSGRMouse(rest)
		if err != nil {
			return events, err
		}
		if ev.Type != EventNone {
			events = append(events, ev)
		}
		rest = rest[n:]
	}
	return events, nil
}

// parseSGRMouse parses a single report at the head of data, returns bytes consumed
func parseSGRMouse(data []byte) (int, Event, error) {
	// Find terminator: first byte after the prefix that is neither a digit nor ';'
	end := len(sgrPrefix)
	for end < len(data) && end < maxReportLen {
		b := data[end]
		if b != ';' && (b < '0' || b > '9') {
			break
		}
		end++
	}
	if end >= len(data) || end >= maxReportLen {
		return 0, Event{}, fmt.Errorf("%w: missing terminator in %q", ErrMalformed, data)
	}
	marker := data[end]
	if marker != 'M' && marker != 'm' {
		return 0, Event{}, fmt.Errorf("%w: unexpected terminator %q", ErrMalformed, marker)
	}

	btn, x, y, err := parseSGRParams(data[len(sgrPrefix):end])
	if err != nil {
		return 0, Event{}, err
	}

	ev := Event{X: x, Y: y, Button: btn}
	switch {
	case btn[0] == '6':
		if len(btn) < 2 {
			return 0, Event{}, fmt.Errorf("%w: wheel code %q", ErrMalformed, btn)
		}
		if btn[1] == '4' {
			ev.Type = EventWheelDown
		} else {
			ev.Type = EventWheelUp
		}
	case btn == "0" && marker == 'm':
		ev.Type = EventMouseUp
	case btn == "0":
		ev.Type = EventMouseDown
	case len(btn) >= 2 && btn[:2] == "32":
		ev.Type = EventMouseDrag
	case len(btn) >= 2 && btn[:2] == "35":
		ev.Type = EventHover
	default:
		ev.Type = EventNone
	}

	return end + 1, ev, nil
}

// parseSGRParams splits "Btn;X;Y" into the raw button token and numeric coordinates
func parseSGRParams(data []byte) (btn string, x, y int, err error) {
	parts := bytes.Split(data, []byte{';'})
	if len(parts) != 3 {
		return "", 0, 0, fmt.Errorf("%w: want 3 fields, got %d", ErrMalformed, len(parts))
	}
	if len(parts[0]) == 0 {
		return "", 0, 0, fmt.Errorf("%w: empty button", ErrMalformed)
	}

	x, err = strconv.Atoi(string(parts[1]))
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: x: %v", ErrMalformed, err)
	}
	y, err = strconv.Atoi(string(parts[2]))
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: y: %v", ErrMalformed, err)
	}
	return string(parts[0]), x, y, nil
}
