package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lixenwraith/tuibox/config"
	"github.com/lixenwraith/tuibox/terminal"
	"github.com/lixenwraith/tuibox/terminal/tui"
)

const (
	screenMain = 0
	screenList = 1
	listItems  = 60
)

// Colors
var (
	bgTop    = terminal.RGB{R: 20, G: 20, B: 30}
	bgBottom = terminal.RGB{R: 40, G: 50, B: 70}
	accent   = terminal.RGB{R: 100, G: 200, B: 220}
	warn     = terminal.RGB{R: 255, G: 180, B: 100}
)

// demo keeps the ids and counters callbacks need between events
type demo struct {
	mode terminal.ColorMode

	clicks  int
	status  int
	palette []terminal.RGB
	hue     int
}

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser, err := config.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	backend, err := terminal.NewBackend(cfg.Backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "backend: %v\n", err)
		os.Exit(1)
	}

	u, err := tui.New(backend, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer u.Close()
	u.SetLogger(logger)

	d := &demo{
		mode:    terminal.DetectColorMode(),
		palette: []terminal.RGB{bgBottom, accent, warn},
	}
	d.build(u)

	if err := u.RenderAll(); err != nil {
		logger.Error("initial render", "err", err)
		return
	}
	if err := u.Run(); err != nil {
		logger.Error("session ended", "err", err)
	}
}

// build registers every box and binding; also used to rebuild after Clear
func (d *demo) build(u *tui.UI) {
	w, h := u.Size()

	u.SetScreen(screenMain)
	bg := u.Add(tui.BoxSpec{
		X:     tui.At(1),
		Y:     tui.At(1),
		Size:  tui.Size{W: w, H: h},
		Draw:  tui.DrawFunc(d.drawBackground(w, h)),
		Hover: tui.HoverFunc(d.onHover),
	})

	title := "tuibox demo"
	u.Text(tui.At(u.CenterTextX(title)), tui.At(2), title, 0, nil, nil)

	u.Text(tui.Center, tui.Center, d.buttonLabel(), 0, tui.ClickFunc(d.onClick), nil)

	help := "click the button | n: list screen (b: back) | p: tint | c: rebuild | q: quit"
	u.Text(tui.At(max(1, u.CenterTextX(help))), tui.At(h-1), help, 0, nil, nil)
	d.status = u.Text(tui.At(2), tui.At(h), strings.Repeat(" ", 40), 0, nil, nil)

	// Second screen: a list taller than the terminal, wheel to scroll
	u.SetScreen(screenList)
	u.Add(tui.BoxSpec{
		X:    tui.At(4),
		Y:    tui.At(2),
		Size: tui.Size{W: 30, H: listItems},
		Draw: tui.DrawFunc(drawList),
	})
	u.SetScreen(screenMain)
	u.SetScrollEnabled(false)

	u.Key('q', (*tui.UI).Quit)
	u.Key('n', func(u *tui.UI) { d.switchScreen(u, screenList) })
	u.Key('b', func(u *tui.UI) { d.switchScreen(u, screenMain) })
	u.Key('c', func(u *tui.UI) {
		if err := u.Clear(); err != nil {
			return
		}
		d.build(u)
		u.RenderAll()
	})
	u.Key('p', func(u *tui.UI) {
		// Cycle the background tint
		if b, ok := u.Box(bg); ok {
			d.hue = (d.hue + 1) % len(d.palette)
			b.Invalidate()
			u.RenderAll()
		}
	})
}

func (d *demo) switchScreen(u *tui.UI, screen int) {
	u.SetScreen(screen)
	u.SetScrollEnabled(screen == screenList)
	u.RenderAll()
}

func (d *demo) drawBackground(w, h int) func(*tui.Box) string {
	return func(*tui.Box) string {
		bottom := d.palette[d.hue]
		row := strings.Repeat(" ", w)
		lines := make([]string, h)
		for i := range lines {
			c := lerp(bgTop, bottom, i, h)
			lines[i] = terminal.BgSGR(c, d.mode) + row + terminal.ResetSGR()
		}
		return strings.Join(lines, "\n")
	}
}

func (d *demo) buttonLabel() string {
	return fmt.Sprintf("[ clicked %3d ]", d.clicks)
}

func (d *demo) onClick(u *tui.UI, b *tui.Box, x, y int, phase tui.Phase) {
	if phase == tui.PhaseUp {
		d.clicks++
		b.SetText(d.buttonLabel())
		u.RenderOne(b, true)
	}
	d.setStatus(u, fmt.Sprintf("%s @ %d,%d", phase, x, y))
}

func (d *demo) onHover(u *tui.UI, _ *tui.Box, x, y int) {
	d.setStatus(u, fmt.Sprintf("hover @ %d,%d", x, y))
}

// setStatus overwrites the status line, padded so shorter text erases longer
func (d *demo) setStatus(u *tui.UI, s string) {
	b, ok := u.Box(d.status)
	if !ok {
		return
	}
	b.SetText(fmt.Sprintf("%-40s", s))
	u.RenderOne(b, true)
}

func drawList(*tui.Box) string {
	var sb strings.Builder
	for i := 1; i <= listItems; i++ {
		if i > 1 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "item %02d", i)
	}
	return sb.String()
}

// lerp blends a toward b by step i of n
func lerp(a, b terminal.RGB, i, n int) terminal.RGB {
	if n <= 1 {
		return a
	}
	mix := func(x, y uint8) uint8 {
		return uint8(int(x) + (int(y)-int(x))*i/(n-1))
	}
	return terminal.RGB{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B)}
}
