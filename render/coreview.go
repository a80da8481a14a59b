package render

import (
	"math"

	"github.com/lixenwraith/aether/scene"
)

// coreViewFill is the share of the surface height the core sphere spans
const coreViewFill = 0.6

// DrawCoreView draws the standalone pulsing core centred in buf
func DrawCoreView(buf *Buffer, v *scene.CoreView) {
	buf.Clear()
	w, h := float64(buf.Width()), float64(buf.Height())
	if w == 0 || h == 0 {
		return
	}
	ry := h * coreViewFill / 2
	rx := math.Min(ry*scene.CellAspect, w*0.35)
	ry = rx / scene.CellAspect

	drawSphere(buf, projectedNode{
		node:  v.Core,
		cx:    w / 2,
		cy:    h / 2,
		rx:    rx,
		ry:    ry,
		depth: 1,
	}, v.Effects().CorePulse())
}
