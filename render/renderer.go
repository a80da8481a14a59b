package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/aether/scene"
	"github.com/lixenwraith/aether/status"
)

// Hint is the key help shown on the HUD
const Hint = "drag/arrows orbit  wheel/+- zoom  click select  space pause  m mute  tab pages  q quit"

// Renderer draws sessions into a region of a tcell screen
// It implements scene.FrameSink
type Renderer struct {
	screen tcell.Screen
	stats  *status.Registry
	buf    *Buffer
	ox, oy int

	ShowHUD bool
}

// NewRenderer creates a renderer; screen and stats may be nil for headless use
func NewRenderer(screen tcell.Screen, stats *status.Registry) *Renderer {
	return &Renderer{
		screen:  screen,
		stats:   stats,
		buf:     NewBuffer(0, 0),
		ShowHUD: true,
	}
}

// SetRegion places the scene surface at (x, y) with size w x h
func (r *Renderer) SetRegion(x, y, w, h int) {
	r.ox, r.oy = x, y
	if w != r.buf.Width() || h != r.buf.Height() {
		r.buf.Resize(w, h)
	}
}

// Buffer returns the composed frame
func (r *Renderer) Buffer() *Buffer {
	return r.buf
}

// Compose draws s into the buffer without touching the screen
func (r *Renderer) Compose(s *scene.Session) {
	compose(r.buf, s)
	if r.ShowHUD {
		var metrics []string
		if r.stats != nil {
			metrics = r.stats.Lines()
		}
		drawHUD(r.buf, metrics, Hint)
	}
	drawTooltip(r.buf, s.Tooltip())
}

// DrawFrame composes s and presents it
func (r *Renderer) DrawFrame(s *scene.Session) {
	r.Compose(s)
	if r.screen == nil {
		return
	}
	r.buf.FlushTo(r.screen, r.ox, r.oy)
	r.screen.Show()
}
