package scene

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/aether/config"
	"github.com/lixenwraith/aether/vmath"
)

const (
	polarMin      = 0.01
	polarMax      = math.Pi - 0.01
	springDamping = 1.0 // critically damped, no overshoot
	defaultFPS    = 60
)

// Controls orbits the camera around a target on spherical coordinates
// User input moves the goal angles/distance; springs ease the camera there
type Controls struct {
	Enabled bool

	target mgl64.Vec3

	azimuth, polar, distance    float64
	goalAz, goalPolar, goalDist float64
	velAz, velPolar, velDist    float64

	spring      harmonica.Spring
	damping     float64
	rotateSpeed float64
	minDist     float64
	maxDist     float64
	zoomStep    float64
}

// NewControls creates enabled controls around the origin
// The spring frequency matches the per-frame damping factor at fps
func NewControls(cfg config.ControlsConfig, fps int) *Controls {
	if fps <= 0 {
		fps = defaultFPS
	}
	freq := -math.Log(1-math.Min(cfg.Damping, 0.99)) * float64(fps)
	return &Controls{
		Enabled:     true,
		spring:      harmonica.NewSpring(harmonica.FPS(fps), freq, springDamping),
		damping:     cfg.Damping,
		rotateSpeed: cfg.RotateSpeed,
		minDist:     cfg.MinDistance,
		maxDist:     cfg.MaxDistance,
		zoomStep:    cfg.ZoomStep,
	}
}

// Sync adopts the camera position as both current and goal state
func (c *Controls) Sync(cam *Camera) {
	off := cam.Position.Sub(c.target)
	d := off.Len()
	if d == 0 {
		off = mgl64.Vec3{0, 0, c.minDist}
		d = c.minDist
	}
	c.distance = d
	c.polar = clamp(math.Acos(clamp(off[1]/d, -1, 1)), polarMin, polarMax)
	c.azimuth = math.Atan2(off[0], off[2])

	c.goalAz, c.goalPolar = c.azimuth, c.polar
	c.goalDist = clamp(d, c.minDist, c.maxDist)
	c.velAz, c.velPolar, c.velDist = 0, 0, 0
}

// Rotate moves the goal by angles in radians, scaled by the rotate speed
func (c *Controls) Rotate(dAz, dPolar float64) {
	if !c.Enabled {
		return
	}
	c.goalAz += dAz * c.rotateSpeed
	c.goalPolar = clamp(c.goalPolar+dPolar*c.rotateSpeed, polarMin, polarMax)
}

// Drag rotates by a pointer drag in cells; a full viewport height is one turn
func (c *Controls) Drag(dx, dy float64, viewportHeight int) {
	if viewportHeight <= 0 {
		return
	}
	turn := 2 * math.Pi / float64(viewportHeight)
	c.Rotate(-dx*turn/CellAspect, -dy*turn)
}

// Zoom moves the goal distance by steps, positive zooms in
func (c *Controls) Zoom(steps float64) {
	if !c.Enabled {
		return
	}
	c.goalDist = clamp(c.goalDist-steps*c.zoomStep, c.minDist, c.maxDist)
}

// Distance returns the current camera distance from the target
func (c *Controls) Distance() float64 {
	return c.distance
}

// GoalDistance returns the distance the camera is easing toward
func (c *Controls) GoalDistance() float64 {
	return c.goalDist
}

// Update advances the springs and places the camera
// Returns false without touching the camera while disabled
func (c *Controls) Update(cam *Camera) bool {
	if !c.Enabled {
		return false
	}
	c.azimuth, c.velAz = c.spring.Update(c.azimuth, c.velAz, c.goalAz)
	c.polar, c.velPolar = c.spring.Update(c.polar, c.velPolar, c.goalPolar)
	c.distance, c.velDist = c.spring.Update(c.distance, c.velDist, c.goalDist)
	c.polar = clamp(c.polar, polarMin, polarMax)

	sp, cp := math.Sincos(c.polar)
	sa, ca := math.Sincos(c.azimuth)
	cam.Position = c.target.Add(mgl64.Vec3{sp * sa, cp, sp * ca}.Mul(c.distance))

	want := vmath.LookRotation(cam.Position, c.target, worldUp)
	cam.Orientation = vmath.Slerp(cam.Orientation, want, c.damping)
	return true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
