// Package vmath provides the scalar and vector helpers shared by the scene,
// physics and render packages. Vectors are mgl64 float64 types so that every
// per-tick computation is bit-for-bit reproducible.
package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the tolerance used by callers comparing float positions
const Epsilon = 1e-9

// Lerp linearly interpolates between a and b
// t=0 returns a, t=1 returns b, no clamping
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 limits v to [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// LerpV3 interpolates two vectors component-wise
func LerpV3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return mgl64.Vec3{
		Lerp(a[0], b[0], t),
		Lerp(a[1], b[1], t),
		Lerp(a[2], b[2], t),
	}
}

// NormalizeOr returns v normalized, or fallback when v has zero length
func NormalizeOr(v, fallback mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 {
		return fallback
	}
	return v.Mul(1 / l)
}

// ApproxEqualV3 compares two vectors within tol per component
func ApproxEqualV3(a, b mgl64.Vec3, tol float64) bool {
	return math.Abs(a[0]-b[0]) <= tol &&
		math.Abs(a[1]-b[1]) <= tol &&
		math.Abs(a[2]-b[2]) <= tol
}

// LookRotation returns the orientation of an object at eye facing center
// Forward is -Z and up is +Y in object space, matching camera conventions
func LookRotation(eye, center, up mgl64.Vec3) mgl64.Quat {
	dir := center.Sub(eye)
	if dir.Len() == 0 {
		return mgl64.QuatIdent()
	}
	// View matrix from origin carries no translation, its rotation is the inverse orientation
	view := mgl64.LookAtV(mgl64.Vec3{}, dir, up)
	return mgl64.Mat4ToQuat(view).Inverse().Normalize()
}

// Slerp interpolates orientations along the shorter arc
func Slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatSlerp(a, b, t).Normalize()
}
