// Package physics holds the closed-form motion and separation rules applied to
// scene bodies once per tick.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Orbit contains the static parameters of a circular orbit
type Orbit struct {
	Radius float64 // orbit radius in scene units
	Speed  float64 // angular speed in radians per unit time
	Phase  float64 // phase offset in radians
	Tilt   float64 // orbital-plane rotation about X in radians
}

// Period returns the time for one full revolution, +Inf for a stationary orbit
func (o Orbit) Period() float64 {
	if o.Speed == 0 {
		return math.Inf(1)
	}
	return 2 * math.Pi / math.Abs(o.Speed)
}

// Position returns the orbit position at time t
// The circle is swept in the XZ plane, then rotated by Tilt about the X axis
func (o Orbit) Position(t float64) mgl64.Vec3 {
	return OrbitPosition(t, o.Radius, o.Speed, o.Phase, o.Tilt)
}

// OrbitPosition is the pure parametric orbit: angle = speed*t + phase
func OrbitPosition(t, radius, speed, phase, tilt float64) mgl64.Vec3 {
	sinA, cosA := math.Sincos(speed*t + phase)
	flat := mgl64.Vec3{radius * cosA, 0, radius * sinA}
	return mgl64.Rotate3DX(tilt).Mul3x1(flat)
}
