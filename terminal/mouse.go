package terminal

import "fmt"

// EventType distinguishes decoded interaction events
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventMouseDown // button 0 press
	EventMouseUp   // button 0 release
	EventMouseDrag // button held, moving
	EventHover     // no button, moving
	EventWheelDown // wheel code 64: scroll offset grows
	EventWheelUp   // other wheel codes: scroll offset shrinks
)

// Event is one decoded unit of input
type Event struct {
	Type EventType
	Rune rune // EventKey: first character of the chunk

	// Mouse fields, 1-indexed screen coordinates
	X      int
	Y      int
	Button string // raw SGR button token
}

// IsMouse reports whether the event carries coordinates
func (e Event) IsMouse() bool {
	return e.Type >= EventMouseDown
}

// IsWheel reports whether the event is a scroll wheel tick
func (e Event) IsWheel() bool {
	return e.Type == EventWheelDown || e.Type == EventWheelUp
}

// String returns human-readable event type name
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "Key"
	case EventMouseDown:
		return "MouseDown"
	case EventMouseUp:
		return "MouseUp"
	case EventMouseDrag:
		return "MouseDrag"
	case EventHover:
		return "Hover"
	case EventWheelDown:
		return "WheelDown"
	case EventWheelUp:
		return "WheelUp"
	default:
		return "None"
	}
}

func (e Event) String() string {
	switch {
	case e.Type == EventKey:
		if e.Rune >= 0x20 && e.Rune < 0x7f {
			return fmt.Sprintf("Key '%c'", e.Rune)
		}
		return fmt.Sprintf("Key U+%04X", e.Rune)
	case e.IsMouse():
		return fmt.Sprintf("%s @ (%d,%d) btn=%s", e.Type, e.X, e.Y, e.Button)
	default:
		return e.Type.String()
	}
}
