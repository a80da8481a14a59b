package scene

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/aether/asset"
	"github.com/lixenwraith/aether/physics"
)

// Visual constants of node state
const (
	InitialOpacity  = 0.95
	HoverOpacity    = 1.0
	RestingOpacity  = 0.8
	FlashEmissive   = 1.0
	coreSpinX       = 0.002
	coreSpinY       = 0.005
	nodeSpinPerTick = 0.01
)

// Node is one sphere of the scene
// Static fields are fixed at build time; live fields change every tick
type Node struct {
	ID       int
	Title    string
	Label    string // category as configured, shown for unknown categories
	Category Category
	Color    colorful.Color
	Orbit    physics.Orbit
	Radius   float64
	Material Material
	Texture  *asset.Texture

	// Live state
	pos       mgl64.Vec3
	Rotation  mgl64.Vec3 // Euler angles, X then Y then Z
	Opacity   float64
	Animating bool

	flashing   bool
	flashUntil time.Time // zero while the owning transition is in flight
}

// IsCore reports whether n is the central node
func (n *Node) IsCore() bool {
	return n.Category == CategoryCore
}

// Pos returns the live position
func (n *Node) Pos() mgl64.Vec3 {
	return n.pos
}

// SetPos moves the node
func (n *Node) SetPos(p mgl64.Vec3) {
	n.pos = p
}

// Flashing reports whether the click highlight is active
func (n *Node) Flashing() bool {
	return n.flashing
}

// Emissive returns the current emissive intensity
func (n *Node) Emissive() float64 {
	if n.flashing {
		return FlashEmissive
	}
	return n.Material.Emissive
}

// CategoryLabel returns the name shown in the tooltip
func (n *Node) CategoryLabel() string {
	if n.Category == CategoryUnknown && n.Label != "" {
		return n.Label
	}
	return n.Category.String()
}

func (n *Node) spin() {
	if n.IsCore() {
		n.Rotation[0] += coreSpinX
		n.Rotation[1] += coreSpinY
		return
	}
	n.Rotation[0] += nodeSpinPerTick
	n.Rotation[1] += nodeSpinPerTick
	n.Rotation[2] += nodeSpinPerTick
}

func (n *Node) startFlash() {
	n.flashing = true
	n.flashUntil = time.Time{}
}

func (n *Node) scheduleFlashEnd(at time.Time) {
	if n.flashing {
		n.flashUntil = at
	}
}

// expireFlash clears the highlight once its scheduled end has passed
func (n *Node) expireFlash(now time.Time) {
	if n.flashing && !n.flashUntil.IsZero() && !now.Before(n.flashUntil) {
		n.flashing = false
		n.flashUntil = time.Time{}
	}
}

// nodeBodies adapts orbiting nodes to the collision resolver
func nodeBodies(nodes []*Node) []physics.Body {
	bodies := make([]physics.Body, 0, len(nodes))
	for _, n := range nodes {
		if !n.IsCore() {
			bodies = append(bodies, n)
		}
	}
	return bodies
}
