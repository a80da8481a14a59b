package scene

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	starSpinY = 0.0005
	starSpinX = 0.0002
)

// Starfield is the slowly rotating background point cloud
type Starfield struct {
	Points   []mgl64.Vec3
	Rotation mgl64.Vec3
}

// NewStarfield scatters n stars uniformly in a cube of edge spread
// The same seed always yields the same sky
func NewStarfield(n int, spread float64, seed int64) *Starfield {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]mgl64.Vec3, n)
	for i := range pts {
		pts[i] = mgl64.Vec3{
			(rng.Float64() - 0.5) * spread,
			(rng.Float64() - 0.5) * spread,
			(rng.Float64() - 0.5) * spread,
		}
	}
	return &Starfield{Points: pts}
}

func (s *Starfield) step() {
	s.Rotation[1] += starSpinY
	s.Rotation[0] += starSpinX
}

// Transform returns the current rotation, X applied after Y
func (s *Starfield) Transform() mgl64.Mat3 {
	return mgl64.Rotate3DX(s.Rotation[0]).Mul3(mgl64.Rotate3DY(s.Rotation[1]))
}
