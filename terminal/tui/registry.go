package tui

// Add registers a box on the active screen and returns its id.
// Centered positions use the terminal size at the time of the call. A drawer, if any,
// runs once immediately to seed the cache.
func (u *UI) Add(spec BoxSpec) int {
	id := u.nextID
	draw, click, hover := spec.capabilities()

	b := &Box{
		id:           id,
		x:            spec.X.resolve(u.width, spec.Size.W),
		y:            spec.Y.resolve(u.height, spec.Size.H),
		Size:         spec.Size,
		screen:       u.screen,
		StateCurrent: spec.State,
		StateNext:    spec.State,
		draw:         draw,
		click:        click,
		hover:        hover,
		Data1:        spec.Data1,
		Data2:        spec.Data2,
	}

	if b.draw != nil {
		b.cache = b.draw.Draw(b)
	}

	// Arena slot id == index: ids start at 0 per session and are never reused
	u.boxes = append(u.boxes, b)
	u.nextID++

	u.log.Debug("box registered", "id", id, "x", b.x, "y", b.y, "w", b.Size.W, "h", b.Size.H, "screen", b.screen)
	return id
}

// Box returns the box registered under id
func (u *UI) Box(id int) (*Box, bool) {
	if id < 0 || id >= len(u.boxes) {
		return nil, false
	}
	return u.boxes[id], true
}

// Len returns the number of registered boxes
func (u *UI) Len() int {
	return len(u.boxes)
}

// CenterX returns the column that centers a width on the terminal
func (u *UI) CenterX(w int) int {
	return (u.width - w) / 2
}

// CenterY returns the row that centers a height on the terminal
func (u *UI) CenterY(h int) int {
	return (u.height - h) / 2
}

// Key binds a handler to a character. Several handlers may share a character; all fire
// in binding order.
func (u *UI) Key(r rune, fn func(*UI)) {
	if fn == nil {
		return
	}
	u.keys = append(u.keys, keyBinding{r: r, fn: fn})
}
