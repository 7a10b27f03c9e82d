package tui

import "strings"

// RenderAll clears the screen, renders every box in registration order, flushes once,
// then drops the force flag
func (u *UI) RenderAll() error {
	if err := u.fail(u.sess.ClearScreen()); err != nil {
		return err
	}
	for _, b := range u.boxes {
		if _, err := u.renderBox(b); err != nil {
			return err
		}
	}
	if err := u.fail(u.sess.Flush()); err != nil {
		return err
	}
	u.force = false
	return nil
}

// ForceRedraw re-derives every box's cache regardless of dirty state
func (u *UI) ForceRedraw() error {
	u.force = true
	return u.RenderAll()
}

// RenderOne renders a single box, flushing right after it when asked.
// Callbacks use this to make a change visible before the next input read.
func (u *UI) RenderOne(b *Box, flush bool) error {
	drawn, err := u.renderBox(b)
	if err != nil || !drawn || !flush {
		return err
	}
	return u.fail(u.sess.Flush())
}

// renderBox writes a box's lines; reports false when the box is off the active screen or has no drawer
func (u *UI) renderBox(b *Box) (bool, error) {
	if u.err != nil {
		return false, u.err
	}
	if b.screen != u.screen || b.draw == nil {
		return false, nil
	}

	text := b.cache
	if u.force || b.StateCurrent != b.StateNext {
		text = b.draw.Draw(b)
		b.cache = text
		b.StateCurrent = b.StateNext
	}

	// n counts drawn lines only: a line outside the terminal vanishes without advancing
	// the placement of the lines after it
	n := 0
	for _, line := range strings.Split(text, "\n") {
		row := u.lineRow(b, n)
		if 1 <= b.x && b.x <= u.width && 1 <= row && row <= u.height {
			if err := u.fail(u.sess.Print(row, b.x, line)); err != nil {
				return false, err
			}
			n++
		}
	}
	return true, nil
}

func (u *UI) lineRow(b *Box, n int) int {
	if u.canScroll {
		return b.y + n + u.scroll
	}
	return b.y + n
}
