package app

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/aether/route"
)

// keyRotateStep is the orbit step of one arrow key press, radians
const keyRotateStep = 0.15

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// pointer tracks the primary button between mouse events
type pointer struct {
	down    bool
	dragged bool
	lastX   int
	lastY   int
}

// HandleEvent dispatches one screen event
func (h *Host) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.resize()
	case *tcell.EventKey:
		h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	}
}

func (h *Host) handleKey(ev *tcell.EventKey) {
	s := h.session
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		h.Stop()
	case tcell.KeyTab:
		h.cyclePage(1)
	case tcell.KeyBacktab:
		h.cyclePage(-1)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		h.back()
	case tcell.KeyEnter:
		if s != nil {
			s.Click()
		}
	case tcell.KeyLeft:
		h.rotate(-keyRotateStep, 0)
	case tcell.KeyRight:
		h.rotate(keyRotateStep, 0)
	case tcell.KeyUp:
		h.rotate(0, -keyRotateStep)
	case tcell.KeyDown:
		h.rotate(0, keyRotateStep)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			h.Stop()
		case 'b':
			h.back()
		case '+', '=':
			h.zoom(1)
		case '-', '_':
			h.zoom(-1)
		case 'm':
			on := h.player.ToggleMute()
			h.mAudio.Store(on)
		case 'h':
			h.renderer.ShowHUD = !h.renderer.ShowHUD
		case ' ', 'p':
			h.TogglePause()
		}
	}
}

func (h *Host) rotate(dAz, dPolar float64) {
	if h.session != nil {
		h.session.Rotate(dAz, dPolar)
	}
}

func (h *Host) zoom(steps float64) {
	if h.session != nil {
		h.session.Zoom(steps)
	}
}

// cyclePage moves through the sidebar pages
func (h *Host) cyclePage(dir int) {
	items := route.Sidebar()
	cur := 0
	for i, p := range items {
		if p.Path == h.router.Current().Path {
			cur = i
			break
		}
	}
	next := (cur + dir + len(items)) % len(items)
	h.router.Navigate(items[next].Path)
}

// back returns to the previous page; the core page always returns to the scene
func (h *Host) back() {
	if h.router.Current().Path == route.ComputationalCore || !h.router.Back() {
		h.router.Navigate(route.Home)
	}
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	btn := ev.Buttons()
	pressed := btn&tcell.Button1 != 0

	if x < h.layout.sidebarW {
		if pressed && !h.mouse.down {
			if p, ok := sidebarHit(y); ok {
				h.router.Navigate(p.Path)
			}
		}
		h.mouse = pointer{down: pressed}
		return
	}
	x -= h.layout.sidebarW

	if btn&wheelMask != 0 {
		switch {
		case btn&tcell.WheelUp != 0:
			h.zoom(1)
		case btn&tcell.WheelDown != 0:
			h.zoom(-1)
		}
		return
	}

	switch {
	case pressed && !h.mouse.down:
		h.mouse = pointer{down: true, lastX: x, lastY: y}
	case pressed:
		if dx, dy := x-h.mouse.lastX, y-h.mouse.lastY; dx != 0 || dy != 0 {
			if h.session != nil {
				h.session.Drag(dx, dy)
			}
			h.mouse.dragged = true
			h.mouse.lastX, h.mouse.lastY = x, y
		}
	case h.mouse.down:
		dragged := h.mouse.dragged
		h.mouse = pointer{}
		if !dragged {
			h.click(x, y)
		}
	default:
		if h.session != nil {
			h.session.PointerMove(x, y)
		}
	}
}

// click handles a primary click at content cell (x, y)
func (h *Host) click(x, y int) {
	switch {
	case h.session != nil:
		h.session.PointerMove(x, y)
		if !h.session.Click() {
			log.Printf("app: click at %d,%d selected nothing", x, y)
		}
	case h.coreView != nil && backHit(x, y):
		h.router.Navigate(route.Home)
	}
}
