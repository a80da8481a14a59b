package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultSeparation is the minimum distance kept between orbiting bodies
const DefaultSeparation = 0.6

// Body is anything the resolver may push around
type Body interface {
	Pos() mgl64.Vec3
	SetPos(mgl64.Vec3)
}

// SeparatePair pushes a and b apart so their distance reaches minDist
// Each body moves half the penetration depth along the connecting line
// Returns true when a correction was applied
func SeparatePair(a, b mgl64.Vec3, minDist float64) (mgl64.Vec3, mgl64.Vec3, bool) {
	delta := a.Sub(b)
	dist := delta.Len()
	if dist >= minDist {
		return a, b, false
	}

	// Coincident bodies: fall back to the X axis
	n := mgl64.Vec3{1, 0, 0}
	if dist > 0 {
		n = delta.Mul(1 / dist)
	}

	push := n.Mul((minDist - dist) * 0.5)
	return a.Add(push), b.Sub(push), true
}

// ResolveSeparation runs one pass over every unordered pair of bodies
// Later pairs see positions already corrected by earlier ones; a single pass is
// not guaranteed to leave every pair separated
// Returns the number of corrected pairs
func ResolveSeparation(bodies []Body, minDist float64) int {
	corrected := 0
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			a, b, hit := SeparatePair(bodies[i].Pos(), bodies[j].Pos(), minDist)
			if !hit {
				continue
			}
			bodies[i].SetPos(a)
			bodies[j].SetPos(b)
			corrected++
		}
	}
	return corrected
}
