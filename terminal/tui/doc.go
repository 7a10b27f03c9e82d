// FILE: terminal/tui/doc.go
// Package tui provides a retained box toolkit on top of the terminal package.
//
// Core abstraction is Box, a rectangular region registered on a UI with optional
// Drawer, Clicker and Hoverer capabilities. Each box caches its drawn text and is only
// re-drawn when its StateNext differs from StateCurrent or a forced redraw runs.
//
// Design principles:
//   - Single goroutine: one blocking read, then decode, hit-test, callbacks, render
//   - Arena by id: insertion order is z-order, the first hit wins a click
//   - Screens: only boxes on the active screen render or receive input
//   - Re-entrant: callbacks may call RenderOne, Clear or SetScreen on the UI
//
// Usage pattern:
//
//	u, err := tui.New(terminal.NewUnixBackend(), config.Default())
//	if err != nil {
//	    return err
//	}
//	defer u.Close()
//
//	u.Add(tui.BoxSpec{X: tui.At(1), Y: tui.At(1), Size: tui.Size{W: w, H: h}, Draw: bg})
//	u.Text(tui.Center, tui.Center, "click me", 0, onClick, nil)
//	u.Key('q', (*tui.UI).Quit)
//
//	u.RenderAll()
//	return u.Run()
package tui
