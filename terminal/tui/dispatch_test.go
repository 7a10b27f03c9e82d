package tui

import (
	"fmt"
	"strings"
	"testing"
)

type clickRecord struct {
	id    int
	x, y  int
	phase Phase
}

// recorder collects click deliveries across boxes
type recorder struct {
	clicks []clickRecord
	hovers []int
}

func (r *recorder) click() ClickFunc {
	return func(_ *UI, b *Box, x, y int, phase Phase) {
		r.clicks = append(r.clicks, clickRecord{b.ID(), x, y, phase})
	}
}

func (r *recorder) hover() HoverFunc {
	return func(_ *UI, b *Box, _, _ int) {
		r.hovers = append(r.hovers, b.ID())
	}
}

func TestClickPressRelease(t *testing.T) {
	u, _ := newTestUI(t, 80, 24)
	rec := &recorder{}
	id := u.Text(At(10), At(5), "click me", 0, rec.click(), nil)

	u.Feed([]byte("\x1b[<0;12;5M"))
	if len(rec.clicks) != 1 || rec.clicks[0] != (clickRecord{id, 12, 5, PhaseDown}) {
		t.Fatalf("Expected Down at (12,5), got %v", rec.clicks)
	}
	if !u.Dragging() {
		t.Error("Expected drag tracking after press")
	}

	u.Feed([]byte("\x1b[<0;12;5m"))
	if len(rec.clicks) != 2 || rec.clicks[1].phase != PhaseUp {
		t.Fatalf("Expected Up delivery, got %v", rec.clicks)
	}
	if u.Dragging() {
		t.Error("Expected drag cleared after release")
	}
}

func TestClickInclusiveEdges(t *testing.T) {
	u, _ := newTestUI(t, 80, 24)
	rec := &recorder{}
	u.Text(At(10), At(5), "click me", 0, rec.click(), nil)

	// Width 8 from column 10: columns 10..18 and rows 5..6 hit
	for _, p := range [][2]int{{10, 5}, {18, 5}, {18, 6}} {
		u.Feed([]byte(fmt.Sprintf("\x1b[<0;%d;%dM", p[0], p[1])))
	}
	for _, p := range [][2]int{{9, 5}, {19, 5}, {10, 4}, {10, 7}} {
		u.Feed([]byte(fmt.Sprintf("\x1b[<0;%d;%dM", p[0], p[1])))
	}
	if len(rec.clicks) != 3 {
		t.Errorf("Expected 3 hits, got %v", rec.clicks)
	}
}

func TestClickFirstMatchWins(t *testing.T) {
	u, _ := newTestUI(t, 80, 24)
	rec := &recorder{}

	// Hover-only box on top does not swallow the press
	u.Add(BoxSpec{X: At(1), Y: At(1), Size: Size{W: 20, H: 5}, Hover: rec.hover()})
	first := u.Add(BoxSpec{X: At(1), Y: At(1), Size: Size{W: 20, H: 5}, Click: rec.click()})
	u.Add(BoxSpec{X: At(1), Y: At(1), Size: Size{W: 20, H: 5}, Click: rec.click()})

	u.Feed([]byte("\x1b[<0;3;3M"))
	if len(rec.clicks) != 1 || rec.clicks[0].id != first {
		t.Errorf("Expected only box %d pressed, got %v", first, rec.clicks)
	}
}

func TestClickScreenFilter(t *testing.T) {
	u, _ := newTestUI(t, 80, 24)
	rec := &recorder{}
	u.Add(BoxSpec{X: At(1), Y: At(1), Size: Size{W: 5, H: 5}, Click: rec.click()})
	u.SetScreen(1)

	u.Feed([]byte("\x1b[<0;2;2M"))
	if len(rec.clicks) != 0 {
		t.Errorf("Expected inactive-screen box ignored, got %v", rec.clicks)
	}
}

func TestDragRedelivery(t *testing.T) {
	u, _ := newTestUI(t, 80, 24)
	var phases []Phase
	var xs []int
	id := u.Add(BoxSpec{X: At(1), Y: At(1), Size: Size{W: 10, H: 2}, Click: ClickFunc(
		func(_ *UI, b *Box, x, _ int, phase Phase) {
			phases = append(phases, phase)
			xs = append(xs, x)
			b.Data2 = fmt.Sprintf("at %d", x)
		})})

	u.Feed([]byte("\x1b[<0;2;1M"))
	// Drag far outside the box still reaches it
	u.Feed([]byte("\x1b[<32;50;20M"))

	if len(phases) != 2 || phases[1] != PhaseDown || xs[1] != 50 {
		t.Fatalf("Expected drag as Down at x=50, got %v %v", phases, xs)
	}

	snap, ok := u.DragTarget()
	if !ok || snap.ID() != id || snap.Data2 != "at 50" {
		t.Errorf("Expected snapshot refreshed after drag, got %+v", snap)
	}
	b, _ := u.Box(id)
	if b.Data2 != "at 50" {
		t.Errorf("Expected live box mutated, got %q", b.Data2)
	}

	// Release outside: no Up, drag cleared
	u.Feed([]byte("\x1b[<0;50;20m"))
	if len(phases) != 2 {
		t.Errorf("Expected no Up outside target, got %v", phases)
	}
	if u.Dragging() {
		t.Error("Expected drag cleared")
	}
	if _, ok := u.DragTarget(); ok {
		t.Error("Expected no drag target when idle")
	}
}

func TestDragWithoutPress(t *testing.T) {
	u, _ := newTestUI(t, 80, 24)
	rec := &recorder{}
	u.Add(BoxSpec{X: At(1), Y: At(1), Size: Size{W: 10, H: 10}, Click: rec.click()})

	u.Feed([]byte("\x1b[<32;2;2M\x1b[<0;2;2m"))
	if len(rec.clicks) != 0 {
		t.Errorf("Expected drag and release ignored while idle, got %v", rec.clicks)
	}
}

func TestHoverFanOut(t *testing.T) {
	u, _ := newTestUI(t, 80, 24)
	rec := &recorder{}
	a := u.Add(BoxSpec{X: At(1), Y: At(1), Size: Size{W: 10, H: 10}, Hover: rec.hover()})
	u.Add(BoxSpec{X: At(30), Y: At(1), Size: Size{W: 5, H: 5}, Hover: rec.hover()})
	c := u.Add(BoxSpec{X: At(5), Y: At(5), Size: Size{W: 10, H: 10}, Hover: rec.hover()})
	u.Add(BoxSpec{X: At(1), Y: At(1), Size: Size{W: 10, H: 10}, Click: rec.click()})

	u.Feed([]byte("\x1b[<35;6;6M"))
	if len(rec.hovers) != 2 || rec.hovers[0] != a || rec.hovers[1] != c {
		t.Errorf("Expected hovers [%d %d], got %v", a, c, rec.hovers)
	}
	if len(rec.clicks) != 0 {
		t.Error("Expected hover not to reach click handlers")
	}
}

func TestHoverClearStopsFanOut(t *testing.T) {
	u, _ := newTestUI(t, 80, 24)
	calls := 0
	h := HoverFunc(func(u *UI, _ *Box, _, _ int) {
		calls++
		u.Clear()
	})
	u.Add(BoxSpec{X: At(1), Y: At(1), Size: Size{W: 5, H: 5}, Hover: h})
	u.Add(BoxSpec{X: At(1), Y: At(1), Size: Size{W: 5, H: 5}, Hover: h})

	u.Feed([]byte("\x1b[<35;2;2M"))
	if calls != 1 {
		t.Errorf("Expected fan-out to stop after Clear, got %d calls", calls)
	}
	if u.Len() != 0 {
		t.Errorf("Expected empty arena, got %d boxes", u.Len())
	}
}

func TestClearDuringPress(t *testing.T) {
	u, vb := newTestUI(t, 80, 24)
	u.Add(BoxSpec{X: At(1), Y: At(1), Size: Size{W: 5, H: 5}, Click: ClickFunc(
		func(u *UI, _ *Box, _, _ int, _ Phase) {
			u.Clear()
			u.Text(At(1), At(1), "fresh", 0, nil, nil)
		})})

	u.Feed([]byte("\x1b[<0;2;2M"))
	if u.Dragging() {
		t.Error("Expected no drag after Clear in handler")
	}
	if u.Len() != 1 {
		t.Errorf("Expected rebuilt arena of 1, got %d", u.Len())
	}
	if !strings.HasPrefix(vb.Output(), clearSeq) {
		t.Errorf("Expected Clear to wipe the screen, got %q", vb.Output())
	}

	// Release goes nowhere
	u.Feed([]byte("\x1b[<0;2;2m"))
}

func TestWheelScroll(t *testing.T) {
	u, vb := newTestUI(t, 80, 24)
	u.Add(BoxSpec{X: At(1), Y: At(1), Draw: DrawFunc(func(*Box) string { return "top" })})

	u.Feed([]byte("\x1b[<64;1;1M"))
	if u.ScrollOffset() != 2 {
		t.Errorf("Expected offset 2, got %d", u.ScrollOffset())
	}
	if got, want := vb.Output(), clearSeq+"\x1b[3;1Htop"; got != want {
		t.Errorf("Expected re-render at row 3, got %q, want %q", got, want)
	}

	u.Feed([]byte("\x1b[<65;1;1M\x1b[<65;1;1M"))
	if u.ScrollOffset() != -2 {
		t.Errorf("Expected offset -2, got %d", u.ScrollOffset())
	}
}

func TestWheelDisabled(t *testing.T) {
	u, vb := newTestUI(t, 80, 24)
	u.SetScrollEnabled(false)

	u.Feed([]byte("\x1b[<64;1;1M"))
	if u.ScrollOffset() != 0 {
		t.Errorf("Expected offset unchanged, got %d", u.ScrollOffset())
	}
	if vb.Output() != "" {
		t.Errorf("Expected no render, got %q", vb.Output())
	}
}

func TestScrollTranslatesPointer(t *testing.T) {
	u, _ := newTestUI(t, 80, 24)
	rec := &recorder{}
	u.Add(BoxSpec{X: At(1), Y: At(5), Size: Size{W: 4}, Click: rec.click()})

	u.Feed([]byte("\x1b[<64;1;1M"))
	// Box now shows on row 7; content-space row 5
	u.Feed([]byte("\x1b[<0;2;7M"))
	if len(rec.clicks) != 1 || rec.clicks[0].y != 5 {
		t.Errorf("Expected hit with content y=5, got %v", rec.clicks)
	}
}

func TestKeyBindings(t *testing.T) {
	u, _ := newTestUI(t, 80, 24)
	var order []string
	u.Key('a', func(*UI) { order = append(order, "a1") })
	u.Key('b', func(*UI) { order = append(order, "b") })
	u.Key('a', func(*UI) { order = append(order, "a2") })
	u.Key('a', nil)

	u.Feed([]byte("a"))
	if strings.Join(order, ",") != "a1,a2" {
		t.Errorf("Expected a1,a2, got %v", order)
	}

	// Only the first character of a chunk counts
	order = nil
	u.Feed([]byte("bab"))
	if strings.Join(order, ",") != "b" {
		t.Errorf("Expected b, got %v", order)
	}

	order = nil
	u.Feed([]byte("z"))
	if len(order) != 0 {
		t.Errorf("Expected unbound key ignored, got %v", order)
	}
}

func TestKeyBindingAddedByHandler(t *testing.T) {
	u, _ := newTestUI(t, 80, 24)
	calls := 0
	u.Key('x', func(u *UI) {
		calls++
		u.Key('x', func(*UI) { calls += 10 })
	})

	u.Feed([]byte("x"))
	if calls != 1 {
		t.Errorf("Expected new binding to wait for next key, got %d", calls)
	}
	u.Feed([]byte("x"))
	if calls != 12 {
		t.Errorf("Expected both bindings on second key, got %d", calls)
	}
}

func TestMalformedInput(t *testing.T) {
	u, _ := newTestUI(t, 80, 24)
	rec := &recorder{}
	u.Add(BoxSpec{X: At(1), Y: At(1), Size: Size{W: 5, H: 5}, Click: rec.click(), Hover: rec.hover()})

	for _, chunk := range []string{"\x1b[<", "\x1b[<0;2", "\x1b[<0;x;1M", "\x1b[<6;1;1M"} {
		u.Feed([]byte(chunk))
	}
	if len(rec.clicks) != 0 || len(rec.hovers) != 0 {
		t.Errorf("Expected nothing delivered, got %v %v", rec.clicks, rec.hovers)
	}

	// Reports before the bad one still dispatch
	u.Feed([]byte("\x1b[<35;2;2M\x1b[<0;2"))
	if len(rec.hovers) != 1 {
		t.Errorf("Expected leading hover delivered, got %v", rec.hovers)
	}
}

func TestQuitStopsChunk(t *testing.T) {
	u, _ := newTestUI(t, 80, 24)
	rec := &recorder{}
	u.Add(BoxSpec{X: At(1), Y: At(1), Size: Size{W: 5, H: 5}, Hover: HoverFunc(
		func(u *UI, b *Box, _, _ int) {
			rec.hovers = append(rec.hovers, b.ID())
			u.Quit()
		})})

	u.Feed([]byte("\x1b[<35;2;2M\x1b[<35;3;2M"))
	if len(rec.hovers) != 1 {
		t.Errorf("Expected dispatch to stop after Quit, got %v", rec.hovers)
	}
}

func TestClickSetsPayload(t *testing.T) {
	u, _ := newTestUI(t, 80, 24)
	var phases []Phase
	id := u.Add(BoxSpec{X: At(1), Y: At(1), Size: Size{W: 10, H: 3}, Click: ClickFunc(
		func(_ *UI, b *Box, _, _ int, phase Phase) {
			phases = append(phases, phase)
			b.Data1 = "clicked"
		})})

	u.Feed([]byte("\x1b[<0;3;2M"))
	u.Feed([]byte("\x1b[<0;3;2m"))

	if len(phases) != 2 || phases[0] != PhaseDown || phases[1] != PhaseUp {
		t.Errorf("Expected [Down Up], got %v", phases)
	}
	if b, _ := u.Box(id); b.Data1 != "clicked" {
		t.Errorf("Expected data1 clicked, got %q", b.Data1)
	}
	if u.Dragging() {
		t.Error("Expected Idle after release")
	}
}
