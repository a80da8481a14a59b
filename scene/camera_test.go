package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/aether/config"
	"github.com/lixenwraith/aether/vmath"
)

func TestCamera_InitialLooksAtOrigin(t *testing.T) {
	cam := NewCamera(config.Default().Camera, 1)
	assert.True(t, vmath.ApproxEqualV3(mgl64.Vec3{0, 0, -1}, cam.Forward(), 1e-9))

	p, ok := cam.Project(mgl64.Vec3{})
	require.True(t, ok)
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)
	assert.InDelta(t, 6, p.Depth, 1e-9)
}

func TestCamera_RayProjectRoundTrip(t *testing.T) {
	cam := NewCamera(config.Default().Camera, 1.6)
	cam.Position = mgl64.Vec3{2, 3, 5}
	cam.LookAt(mgl64.Vec3{0.5, -0.5, 0})

	for _, ndc := range [][2]float64{{0, 0}, {0.5, -0.25}, {-0.9, 0.9}} {
		ray := cam.Ray(ndc[0], ndc[1])
		p, ok := cam.Project(ray.At(4))
		require.True(t, ok)
		assert.InDelta(t, ndc[0], p.X, 1e-9)
		assert.InDelta(t, ndc[1], p.Y, 1e-9)
	}
}

func TestCamera_BehindIsNotProjected(t *testing.T) {
	cam := NewCamera(config.Default().Camera, 1)
	_, ok := cam.Project(mgl64.Vec3{0, 0, 10})
	assert.False(t, ok)
}

func TestViewport_NDCRoundTrip(t *testing.T) {
	vp := Viewport{Width: 80, Height: 40}
	assert.InDelta(t, 1.0, vp.Aspect(), 1e-12)
	nx, ny := vp.ToNDC(10, 30)
	x, y := vp.ToCell(nx, ny)
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 30, y, 1e-9)
	assert.True(t, Viewport{Width: 0, Height: 10}.Empty())
}

func TestControls_DisabledLeavesCamera(t *testing.T) {
	cfg := config.Default()
	cam := NewCamera(cfg.Camera, 1)
	ctl := NewControls(cfg.Controls, 60)
	ctl.Sync(cam)
	ctl.Enabled = false

	ctl.Rotate(1, 0.5)
	ctl.Zoom(3)
	before := cam.Position
	assert.False(t, ctl.Update(cam))
	assert.Equal(t, before, cam.Position)
}

func TestControls_ZoomClampedAndEased(t *testing.T) {
	cfg := config.Default()
	cam := NewCamera(cfg.Camera, 1)
	ctl := NewControls(cfg.Controls, 60)
	ctl.Sync(cam)

	ctl.Zoom(100)
	assert.Equal(t, cfg.Controls.MinDistance, ctl.GoalDistance())
	ctl.Zoom(-100)
	assert.Equal(t, cfg.Controls.MaxDistance, ctl.GoalDistance())

	// Damped: the first step moves only part of the way
	require.True(t, ctl.Update(cam))
	assert.Greater(t, ctl.Distance(), 6.0)
	assert.Less(t, ctl.Distance(), 10.0)

	for i := 0; i < 1200; i++ {
		ctl.Update(cam)
	}
	assert.InDelta(t, 10, ctl.Distance(), 1e-3)
	assert.InDelta(t, 10, cam.Position.Len(), 1e-3)
}

func TestControls_RotateKeepsDistance(t *testing.T) {
	cfg := config.Default()
	cam := NewCamera(cfg.Camera, 1)
	ctl := NewControls(cfg.Controls, 60)
	ctl.Sync(cam)

	ctl.Rotate(1, 0)
	for i := 0; i < 600; i++ {
		ctl.Update(cam)
	}
	assert.InDelta(t, 6, cam.Position.Len(), 1e-6)
	assert.InDelta(t, 0, cam.Position[1], 1e-6)
	// Camera keeps facing the target
	toTarget := cam.Position.Mul(-1).Normalize()
	assert.InDelta(t, 1, cam.Forward().Dot(toTarget), 1e-3)
}
