package render

import (
	"math"

	"github.com/lixenwraith/aether/scene"
)

// applyDepthOfField blurs cells by their distance from the focus plane
// Blur strength scales with the aperture; zero aperture leaves buf untouched
func applyDepthOfField(buf *Buffer, fx scene.Effects) {
	if fx.Aperture <= 0 || fx.MaxAperture <= 0 {
		return
	}
	strength := math.Min(1, fx.Aperture/fx.MaxAperture)
	w, h := buf.Width(), buf.Height()
	src := make([]Cell, len(buf.cells))
	copy(src, buf.cells)

	var window [9]RGB
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			coc := strength * circleOfConfusion(buf.Depth(x, y), fx.Focus)
			if coc <= 0.02 {
				continue
			}
			k := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					xx, yy := x+dx, y+dy
					if xx < 0 || xx >= w || yy < 0 || yy >= h {
						continue
					}
					window[k] = src[yy*w+xx].Bg
					k++
				}
			}
			dst := &buf.cells[y*w+x]
			blurred := average(window[:k])
			dst.Bg = Blend(dst.Bg, blurred, coc)
			dst.Fg = Blend(dst.Fg, dst.Bg, coc*0.8)
		}
	}
}

// circleOfConfusion is 0 at the focus distance and 1 far from it
func circleOfConfusion(depth, focus float64) float64 {
	if math.IsInf(depth, 1) {
		return 1
	}
	if focus <= 0 {
		focus = 1
	}
	return math.Min(1, math.Abs(depth-focus)/(2*focus))
}
