package window

import (
	"fmt"
	"time"

	"github.com/Carmen-Shannon/oxy-eyes/common"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gdamore/tcell/v2"
)

// terminalFrameInterval paces the terminal message loop at roughly 60 iterations per second.
const terminalFrameInterval = time.Second / 60

// terminalWindow drives a tcell screen. The screen is addressed in half-block pixels: one
// pixel per column and two per row.
type terminalWindow struct {
	parent *engineWindow
	scr    tcell.Screen

	events  chan tcell.Event
	quit    chan struct{}
	ticker  *time.Ticker
	running bool
}

func newTerminalWindow(w *engineWindow) (*terminalWindow, error) {
	scr := w.terminalScreen
	if scr == nil {
		var err error
		if scr, err = tcell.NewScreen(); err != nil {
			return nil, err
		}
	}
	if err := scr.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}
	scr.EnableMouse(tcell.MouseMotionEvents)
	scr.HideCursor()

	t := &terminalWindow{
		parent:  w,
		scr:     scr,
		events:  make(chan tcell.Event, 64),
		quit:    make(chan struct{}),
		ticker:  time.NewTicker(terminalFrameInterval),
		running: true,
	}
	cols, rows := scr.Size()
	w.width, w.height = cols, rows*2

	go scr.ChannelEvents(t.events, t.quit)
	return t, nil
}

func (t *terminalWindow) surfaceDescriptor() *wgpu.SurfaceDescriptor {
	return nil
}

func (t *terminalWindow) screen() tcell.Screen {
	return t.scr
}

func (t *terminalWindow) isRunning() bool {
	return t.running
}

func (t *terminalWindow) close() error {
	t.running = false
	t.ticker.Stop()
	close(t.quit)
	t.scr.Fini()
	return nil
}

func (t *terminalWindow) setSize(width, height int) {
	t.scr.SetSize(width, (height+1)/2)
	t.parent.resized(width, height)
}

// processMessages handles events until the next frame is due.
func (t *terminalWindow) processMessages() bool {
	for t.running {
		select {
		case ev, ok := <-t.events:
			if !ok {
				t.running = false
				return false
			}
			t.handle(ev)
		case <-t.ticker.C:
			return t.running
		}
	}
	return false
}

func (t *terminalWindow) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			t.running = false
			t.parent.keyDown(common.KeyEsc)
		case ev.Key() == tcell.KeyRune:
			r := ev.Rune()
			if r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			if r == 'Q' {
				t.running = false
			}
			t.parent.keyDown(uint32(r))
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		t.parent.mouseMoved(float64(x)+0.5, float64(y)*2+1)
	case *tcell.EventResize:
		cols, rows := ev.Size()
		t.scr.Sync()
		t.parent.resized(cols, rows*2)
	}
}
