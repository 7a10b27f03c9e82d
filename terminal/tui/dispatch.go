package tui

import (
	"slices"

	"github.com/lixenwraith/tuibox/terminal"
)

type keyBinding struct {
	r  rune
	fn func(*UI)
}

// dragState is Idle when !active; Dragging holds the pressed box's id and a detached
// copy refreshed after every delivery
type dragState struct {
	active   bool
	id       int
	gen      uint64
	snapshot Box
}

// Feed decodes and dispatches one raw input chunk. Malformed mouse reports are dropped;
// events decoded before the bad report still dispatch.
func (u *UI) Feed(chunk []byte) {
	events, err := terminal.Decode(chunk)
	if err != nil {
		u.log.Debug("dropped malformed input", "err", err)
	}

	for _, ev := range events {
		if u.quit || u.err != nil {
			return
		}
		u.dispatch(ev)
	}
}

func (u *UI) dispatch(ev terminal.Event) {
	if ev.Type == terminal.EventKey {
		u.keyPress(ev.Rune)
		return
	}

	if ev.IsWheel() {
		u.wheel(ev.Type)
		return
	}

	// Screen space to content space
	x, y := ev.X, ev.Y
	if u.canScroll {
		y -= u.scroll
	}

	switch ev.Type {
	case terminal.EventMouseDown:
		u.mouseDown(x, y)
	case terminal.EventMouseUp:
		u.mouseUp(x, y)
	case terminal.EventMouseDrag:
		u.mouseDrag(x, y)
	case terminal.EventHover:
		u.hover(x, y)
	}
}

func (u *UI) keyPress(r rune) {
	// Bindings added or cleared by a handler take effect from the next key
	for _, k := range slices.Clone(u.keys) {
		if k.r == r {
			k.fn(u)
		}
	}
}

func (u *UI) wheel(t terminal.EventType) {
	if !u.canScroll {
		return
	}
	if t == terminal.EventWheelDown {
		u.scroll += u.cfg.ScrollStep
	} else {
		u.scroll -= u.cfg.ScrollStep
	}
	u.RenderAll()
}

// mouseDown delivers to the first active-screen box containing the point that has a
// click handler, then starts dragging it
func (u *UI) mouseDown(x, y int) {
	gen := u.gen
	n := len(u.boxes)
	for id := 0; id < n; id++ {
		b := u.boxes[id]
		if b.screen != u.screen || !b.Contains(x, y) || b.click == nil {
			continue
		}

		b.click.OnClick(u, b, x, y, PhaseDown)
		if gen != u.gen {
			// Session cleared inside the callback
			return
		}
		u.drag = dragState{active: true, id: id, gen: gen, snapshot: *b}
		return
	}
}

// mouseDrag redelivers a continued press to the drag target
func (u *UI) mouseDrag(x, y int) {
	b, ok := u.dragTarget()
	if !ok {
		return
	}

	gen := u.gen
	b.click.OnClick(u, b, x, y, PhaseDown)
	if gen == u.gen && u.drag.active && u.drag.id == b.id {
		u.drag.snapshot = *b
	}
}

// mouseUp releases the drag target; the handler sees PhaseUp only if the release lands inside it
func (u *UI) mouseUp(x, y int) {
	b, ok := u.dragTarget()
	u.drag = dragState{}
	if !ok || !b.Contains(x, y) {
		return
	}
	b.click.OnClick(u, b, x, y, PhaseUp)
}

// hover fans out to every active-screen box containing the point, in registration order
func (u *UI) hover(x, y int) {
	gen := u.gen
	n := len(u.boxes)
	for id := 0; id < n; id++ {
		b := u.boxes[id]
		if b.screen != u.screen || !b.Contains(x, y) || b.hover == nil {
			continue
		}

		b.hover.OnHover(u, b, x, y)
		if gen != u.gen {
			return
		}
	}
}

func (u *UI) dragTarget() (*Box, bool) {
	if !u.drag.active || u.drag.gen != u.gen {
		return nil, false
	}
	b, ok := u.Box(u.drag.id)
	if !ok || b.click == nil {
		return nil, false
	}
	return b, true
}

// Dragging reports whether a press is being tracked
func (u *UI) Dragging() bool {
	return u.drag.active
}

// DragTarget returns a copy of the pressed box as of its last delivery
func (u *UI) DragTarget() (Box, bool) {
	if !u.drag.active {
		return Box{}, false
	}
	return u.drag.snapshot, true
}
