package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/aether/config"
	"github.com/lixenwraith/aether/vmath"
)

var (
	worldUp     = mgl64.Vec3{0, 1, 0}
	cameraFwd   = mgl64.Vec3{0, 0, -1}
	sceneOrigin = mgl64.Vec3{}
)

// Camera is a perspective camera looking down its local -Z
type Camera struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	FOV         float64 // vertical, radians
	Aspect      float64
	Near        float64
	Far         float64
}

// Projected is a point in normalized device coordinates plus view depth
type Projected struct {
	X, Y  float64
	Depth float64
}

// NewCamera creates the initial camera looking at the origin
func NewCamera(cfg config.CameraConfig, aspect float64) *Camera {
	c := &Camera{
		Position: mgl64.Vec3(cfg.Position),
		FOV:      mgl64.DegToRad(cfg.FOV),
		Aspect:   aspect,
		Near:     cfg.Near,
		Far:      cfg.Far,
	}
	c.LookAt(sceneOrigin)
	return c
}

// LookAt turns the camera toward target
func (c *Camera) LookAt(target mgl64.Vec3) {
	c.Orientation = vmath.LookRotation(c.Position, target, worldUp)
}

// Forward returns the unit view direction
func (c *Camera) Forward() mgl64.Vec3 {
	return c.Orientation.Rotate(cameraFwd)
}

func (c *Camera) tanHalf() float64 {
	return math.Tan(c.FOV / 2)
}

// Ray returns the world-space picking ray through an NDC point
func (c *Camera) Ray(nx, ny float64) vmath.Ray {
	th := c.tanHalf()
	local := mgl64.Vec3{nx * th * c.Aspect, ny * th, -1}
	return vmath.NewRay(c.Position, c.Orientation.Rotate(local))
}

// Project maps a world point to NDC; false when it lies outside the
// near/far range
func (c *Camera) Project(p mgl64.Vec3) (Projected, bool) {
	rel := c.Orientation.Inverse().Rotate(p.Sub(c.Position))
	depth := -rel[2]
	if depth < c.Near || depth > c.Far {
		return Projected{}, false
	}
	th := c.tanHalf()
	return Projected{
		X:     rel[0] / (depth * th * c.Aspect),
		Y:     rel[1] / (depth * th),
		Depth: depth,
	}, true
}

// ProjectedRadius returns the NDC height spanned by radius r at depth
func (c *Camera) ProjectedRadius(r, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return r / (depth * c.tanHalf())
}
