package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// TextPhase is the lifecycle of a one-shot text box's content
type TextPhase uint8

const (
	TextEmpty    TextPhase = iota // nothing set since registration
	TextPending                   // set, not yet rendered
	TextRendered                  // consumed by a render
)

func (p TextPhase) String() string {
	switch p {
	case TextPending:
		return "Pending"
	case TextRendered:
		return "Rendered"
	default:
		return "Empty"
	}
}

// oneShotText renders Data1 exactly once per SetText; later derivations render empty
type oneShotText struct{}

func (oneShotText) Draw(b *Box) string {
	if b.text != TextPending && b.Data1 == "" {
		return ""
	}
	s := b.Data1
	b.Data1 = ""
	b.text = TextRendered
	return s
}

// SetText stores content for the next render of a text box and marks the box dirty
func (b *Box) SetText(s string) {
	b.Data1 = s
	b.text = TextPending
	b.Invalidate()
}

// TextPhase reports the content lifecycle; content assigned straight to Data1 counts as pending
func (b *Box) TextPhase() TextPhase {
	if b.Data1 != "" && b.text != TextPending {
		if _, ok := b.draw.(oneShotText); ok {
			return TextPending
		}
	}
	return b.text
}

// Text registers a one-row box showing content once. Width is the byte length of content,
// escape sequences and newlines included.
func (u *UI) Text(x, y Position, content string, state int, click Clicker, hover Hoverer) int {
	id := u.Add(BoxSpec{
		X:     x,
		Y:     y,
		Size:  Size{W: len(content), H: 1},
		State: state,
		Draw:  oneShotText{},
		Click: click,
		Hover: hover,
		Data1: content,
	})
	return id
}

// DisplayWidth returns the widest line of s in terminal cells, ignoring escape sequences
func DisplayWidth(s string) int {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		if w := runewidth.StringWidth(xansi.Strip(line)); w > widest {
			widest = w
		}
	}
	return widest
}

// CenterTextX returns the column centering content's visible width
func (u *UI) CenterTextX(content string) int {
	return u.CenterX(DisplayWidth(content))
}
