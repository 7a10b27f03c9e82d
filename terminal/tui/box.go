package tui

// Size is a box extent in cells
type Size struct {
	W, H int
}

// Position is an axis coordinate request, resolved once when a box is registered
type Position struct {
	centered bool
	at       int
}

// Center requests centering on the terminal size at registration time
var Center = Position{centered: true}

// At requests an absolute 1-based coordinate
func At(n int) Position {
	return Position{at: n}
}

// resolve returns the absolute coordinate for an extent on a screen axis
func (p Position) resolve(screen, extent int) int {
	if p.centered {
		return (screen - extent) / 2
	}
	return p.at
}

// Phase is the button state delivered to click handlers
type Phase uint8

const (
	PhaseUp Phase = iota
	PhaseDown
)

func (p Phase) String() string {
	if p == PhaseDown {
		return "Down"
	}
	return "Up"
}

// Drawer produces a box's text: rows separated by '\n', ANSI sequences allowed
type Drawer interface {
	Draw(b *Box) string
}

// Clicker receives button-0 press, drag (as PhaseDown) and release
type Clicker interface {
	OnClick(u *UI, b *Box, x, y int, phase Phase)
}

// Hoverer receives buttonless pointer motion
type Hoverer interface {
	OnHover(u *UI, b *Box, x, y int)
}

// DrawFunc adapts a function to Drawer
type DrawFunc func(b *Box) string

func (f DrawFunc) Draw(b *Box) string { return f(b) }

// ClickFunc adapts a function to Clicker
type ClickFunc func(u *UI, b *Box, x, y int, phase Phase)

func (f ClickFunc) OnClick(u *UI, b *Box, x, y int, phase Phase) { f(u, b, x, y, phase) }

// HoverFunc adapts a function to Hoverer
type HoverFunc func(u *UI, b *Box, x, y int)

func (f HoverFunc) OnHover(u *UI, b *Box, x, y int) { f(u, b, x, y) }

// Box is a registered rectangular region with its own behavior and render cache.
// The UI owns every Box; callbacks get a pointer for the duration of the call only.
type Box struct {
	id     int
	x, y   int
	screen int
	cache  string
	text   TextPhase

	Size Size

	// StateCurrent != StateNext marks the box dirty; set StateNext to request a redraw
	StateCurrent int
	StateNext    int

	draw  Drawer
	click Clicker
	hover Hoverer

	// Free-form payload for callbacks
	Data1 string
	Data2 string
}

// ID returns the registration id
func (b *Box) ID() int { return b.id }

// X returns the resolved 1-based column
func (b *Box) X() int { return b.x }

// Y returns the resolved 1-based row
func (b *Box) Y() int { return b.y }

// Screen returns the screen id the box belongs to
func (b *Box) Screen() int { return b.screen }

// Cache returns the last derived text
func (b *Box) Cache() string { return b.cache }

// Dirty reports whether the next render re-derives the cache. Boxes without a drawer never are.
func (b *Box) Dirty() bool {
	return b.draw != nil && b.StateCurrent != b.StateNext
}

// Invalidate marks the box dirty
func (b *Box) Invalidate() {
	b.StateNext = b.StateCurrent + 1
}

// Contains reports whether a point is inside the box.
// Both edges are inclusive, so the hit area is one cell wider and taller than Size.
func (b *Box) Contains(x, y int) bool {
	return b.x <= x && x <= b.x+b.Size.W && b.y <= y && y <= b.y+b.Size.H
}

// BoxSpec describes a box to register
type BoxSpec struct {
	X, Y  Position
	Size  Size
	State int

	Draw  Drawer
	Click Clicker
	Hover Hoverer

	// Kind supplies any capability not set explicitly above
	Kind any

	Data1 string
	Data2 string
}

// capabilities resolves the BoxSpec's behavior, dropping nil function adapters
func (s BoxSpec) capabilities() (Drawer, Clicker, Hoverer) {
	d, c, h := s.Draw, s.Click, s.Hover
	if d == nil {
		d, _ = s.Kind.(Drawer)
	}
	if c == nil {
		c, _ = s.Kind.(Clicker)
	}
	if h == nil {
		h, _ = s.Kind.(Hoverer)
	}

	if f, ok := d.(DrawFunc); ok && f == nil {
		d = nil
	}
	if f, ok := c.(ClickFunc); ok && f == nil {
		c = nil
	}
	if f, ok := h.(HoverFunc); ok && f == nil {
		h = nil
	}
	return d, c, h
}
