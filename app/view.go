package app

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/aether/render"
	"github.com/lixenwraith/aether/route"
	"github.com/lixenwraith/aether/scene"
)

// Layout constants, in cells
const (
	SidebarWidth    = 18
	minSidebarTotal = 50 // narrower screens hide the sidebar
	sidebarTop      = 3
	sidebarSpacing  = 2
	pageMargin      = 2
	coreHeaderRows  = 6
	backRow         = 4
	backLabel       = "[ ← Back ]"
	brand           = "NodeLab"
)

var (
	rgbAccent  = render.RGB{R: 0x9C, G: 0x27, B: 0xB0}
	rgbSidebar = render.RGB{R: 0x14, G: 0x16, B: 0x1C}
)

// layout splits the screen into the sidebar and the content region
type layout struct {
	width, height int
	sidebarW      int
	contentW      int
}

func newLayout(w, h int) layout {
	l := layout{width: max(w, 0), height: max(h, 0)}
	if l.width >= minSidebarTotal {
		l.sidebarW = SidebarWidth
	}
	l.contentW = l.width - l.sidebarW
	return l
}

// applyLayout reads the screen size and sizes every surface
func (h *Host) applyLayout() {
	w, ht := h.screen.Size()
	h.layout = newLayout(w, ht)
	l := h.layout
	h.sidebar.Resize(l.sidebarW, l.height)
	h.page.Resize(l.contentW, l.height)
	h.core.Resize(l.contentW, max(l.height-coreHeaderRows, 0))
	h.renderer.SetRegion(l.sidebarW, 0, l.contentW, l.height)
}

// resize follows a terminal size change
func (h *Host) resize() {
	h.screen.Sync()
	h.applyLayout()
	l := h.layout

	vp := scene.Viewport{Width: l.contentW, Height: l.height}
	switch {
	case h.session != nil:
		if err := h.session.Resize(vp); err != nil {
			// Nothing to draw into, the scene comes back on the next usable size
			h.unmountScene()
		}
	case h.router.Current().Path == route.Home:
		h.mountScene()
	}
	h.redraw()
}

// redraw paints the static parts of the screen and presents it
func (h *Host) redraw() {
	h.screen.Clear()
	h.drawSidebar()

	switch {
	case h.session != nil:
		h.renderer.DrawFrame(h.session)
	case h.coreView != nil:
		h.drawCorePage()
	default:
		h.drawPage(h.router.Current())
	}
	h.screen.Show()
}

func (h *Host) drawSidebar() {
	buf := h.sidebar
	if buf.Width() == 0 {
		return
	}
	buf.Clear()
	buf.FillBg(0, 0, buf.Width(), buf.Height(), rgbSidebar, 1)
	buf.WriteString(2, 1, brand, rgbAccent, tcell.AttrBold)

	current := h.router.Current().Path
	for i, p := range route.Sidebar() {
		y := sidebarTop + i*sidebarSpacing
		if p.Path == current {
			buf.FillBg(0, y, buf.Width(), 1, rgbAccent, 0.35)
			buf.WriteString(1, y, "▸ "+p.Label, render.RGBWhite, tcell.AttrBold)
			continue
		}
		buf.WriteString(3, y, p.Label, render.RGBText, 0)
	}
	buf.FlushTo(h.screen, 0, 0)
}

// sidebarHit returns the page under sidebar row y
func sidebarHit(y int) (route.Page, bool) {
	off := y - sidebarTop
	if off < 0 || off%sidebarSpacing != 0 {
		return route.Page{}, false
	}
	items := route.Sidebar()
	if i := off / sidebarSpacing; i < len(items) {
		return items[i], true
	}
	return route.Page{}, false
}

// writePage draws a page title and body into buf, returning the next free row
func writePage(buf *render.Buffer, p route.Page) int {
	buf.Clear()
	buf.FillBg(0, 0, buf.Width(), buf.Height(), render.RGBBackground, 1)
	buf.WriteString(pageMargin, 1, p.Title, render.RGBWhite, tcell.AttrBold)

	width := buf.Width() - 2*pageMargin
	y := 3
	for _, para := range p.Body {
		if para == "" {
			y++
			continue
		}
		text := strings.TrimLeft(para, " ")
		indent := len(para) - len(text)
		fg := render.RGBText
		if indent == 0 && runewidth.StringWidth(text) < width/2 {
			fg = render.RGBWhite
		}
		for _, line := range render.Wrap(text, max(width-indent, 1)) {
			buf.WriteString(pageMargin+indent, y, line, fg, 0)
			y++
		}
	}
	return y
}

func (h *Host) drawPage(p route.Page) {
	if h.page.Width() == 0 {
		return
	}
	writePage(h.page, p)
	h.page.FlushTo(h.screen, h.layout.sidebarW, 0)
}

// drawCorePage draws the header with the back action, then the core view
func (h *Host) drawCorePage() {
	buf := h.page
	if buf.Width() == 0 {
		return
	}
	p, _ := route.Lookup(route.ComputationalCore)
	buf.Clear()
	buf.FillBg(0, 0, buf.Width(), buf.Height(), render.RGBBackground, 1)
	buf.WriteString(pageMargin, 1, p.Title, render.RGBWhite, tcell.AttrBold)
	for i, line := range p.Body {
		buf.WriteString(pageMargin, 2+i, line, render.RGBText, 0)
	}
	buf.WriteString(pageMargin, backRow, backLabel, rgbAccent, tcell.AttrBold)
	buf.FlushTo(h.screen, h.layout.sidebarW, 0)
	h.drawCoreView()
}

func (h *Host) drawCoreView() {
	if h.coreView == nil || h.core.Height() == 0 {
		return
	}
	render.DrawCoreView(h.core, h.coreView)
	h.core.FlushTo(h.screen, h.layout.sidebarW, coreHeaderRows)
}

// backHit reports whether content cell (x, y) is on the back action
func backHit(x, y int) bool {
	return y == backRow && x >= pageMargin && x < pageMargin+runewidth.StringWidth(backLabel)
}
