package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	trailHeadBoost = 1.5
	trailFadePower = 1.5
)

// TrailSample is one point of a trail
type TrailSample struct {
	Pos     mgl64.Vec3
	Color   colorful.Color
	Opacity float64
}

// Trail is a fixed-length history of a node's positions, newest at index 0
// Fade depends only on the index, so colours and opacities are fixed per slot
type Trail struct {
	Node      *Node
	base      colorful.Color
	samples   []TrailSample
	pushes    int
	filled    bool
	drawScale float64
}

// NewTrail creates a trail of length samples, all at start
func NewTrail(node *Node, length int, start mgl64.Vec3, drawScale float64) *Trail {
	if length < 1 {
		length = 1
	}
	if drawScale <= 0 {
		drawScale = 1
	}
	t := &Trail{
		Node:      node,
		base:      node.Color,
		samples:   make([]TrailSample, length),
		drawScale: drawScale,
	}
	for i := range t.samples {
		t.samples[i].Pos = start
	}
	t.recolor()
	return t
}

// recolor applies the head boost and the power-law fade to black
func (t *Trail) recolor() {
	n := float64(len(t.samples))
	for i := range t.samples {
		s := &t.samples[i]
		if i == 0 {
			s.Opacity = 1
			s.Color = scaleColor(t.base, trailHeadBoost)
			continue
		}
		f := math.Pow(float64(i)/n, trailFadePower)
		op := math.Max(0, 1-f)
		s.Opacity = op
		s.Color = scaleColor(t.base.BlendRgb(colorful.Color{}, f), op)
	}
}

// Push records p as the newest sample, evicting the oldest
func (t *Trail) Push(p mgl64.Vec3) {
	for i := len(t.samples) - 1; i > 0; i-- {
		t.samples[i].Pos = t.samples[i-1].Pos
	}
	t.samples[0].Pos = p
	if t.pushes < len(t.samples) {
		t.pushes++
	}
	if t.pushes >= len(t.samples) {
		t.filled = true
	}
}

// Len returns the buffer length
func (t *Trail) Len() int {
	return len(t.samples)
}

// Pushes returns the number of recorded samples, capped at Len
func (t *Trail) Pushes() int {
	return t.pushes
}

// Filled reports whether every slot holds a recorded sample
func (t *Trail) Filled() bool {
	return t.filled
}

// DrawCount returns how many samples from the head are drawn
func (t *Trail) DrawCount() int {
	if t.filled {
		return len(t.samples)
	}
	n := int(math.Floor(float64(t.pushes) * t.drawScale))
	if n > len(t.samples) {
		n = len(t.samples)
	}
	return n
}

// Sample returns slot i, 0 is the newest
func (t *Trail) Sample(i int) TrailSample {
	return t.samples[i]
}

// Visible returns the drawn prefix; callers must not modify it
func (t *Trail) Visible() []TrailSample {
	return t.samples[:t.DrawCount()]
}

func scaleColor(c colorful.Color, k float64) colorful.Color {
	return colorful.Color{
		R: math.Min(1, c.R*k),
		G: math.Min(1, c.G*k),
		B: math.Min(1, c.B*k),
	}
}
