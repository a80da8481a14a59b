package scene

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/aether/vmath"
)

// TransitionState is the camera flight state machine
type TransitionState uint8

const (
	StateIdle TransitionState = iota
	StateTransitioning
)

func (s TransitionState) String() string {
	if s == StateTransitioning {
		return "transitioning"
	}
	return "idle"
}

// TransitionKind selects the flight and its completion action
type TransitionKind uint8

const (
	TransitionNode TransitionKind = iota
	TransitionCore
)

// Transition is one in-flight camera flight
type Transition struct {
	Kind      TransitionKind
	Focus     *Node
	StartPos  mgl64.Vec3
	StartRot  mgl64.Quat
	TargetPos mgl64.Vec3
	TargetRot mgl64.Quat
	Start     time.Time
	Duration  time.Duration
}

// Eased returns the eased progress at now in [0, 1]
func (t *Transition) Eased(now time.Time) float64 {
	return vmath.EaseInOutQuad(vmath.Progress(now.Sub(t.Start).Seconds(), t.Duration.Seconds()))
}

// Done reports whether the full duration has elapsed
func (t *Transition) Done(now time.Time) bool {
	return now.Sub(t.Start) >= t.Duration
}

// End returns the scheduled completion time
func (t *Transition) End() time.Time {
	return t.Start.Add(t.Duration)
}

// Apply places cam at eased progress e
func (t *Transition) Apply(cam *Camera, e float64) {
	cam.Position = vmath.LerpV3(t.StartPos, t.TargetPos, e)
	cam.Orientation = vmath.Slerp(t.StartRot, t.TargetRot, e)
}

// newCoreTransition flies into the core and looks at the origin
func newCoreTransition(cam *Camera, core *Node, target mgl64.Vec3, now time.Time, d time.Duration) *Transition {
	return &Transition{
		Kind:      TransitionCore,
		Focus:     core,
		StartPos:  cam.Position,
		StartRot:  cam.Orientation,
		TargetPos: target,
		TargetRot: vmath.LookRotation(target, sceneOrigin, worldUp),
		Start:     now,
		Duration:  d,
	}
}

// newNodeTransition recenters on the node's direction at radius
// The final orientation looks from the start position toward the node
func newNodeTransition(cam *Camera, node *Node, radius float64, now time.Time, d time.Duration) *Transition {
	nodePos := node.Pos()
	return &Transition{
		Kind:      TransitionNode,
		Focus:     node,
		StartPos:  cam.Position,
		StartRot:  cam.Orientation,
		TargetPos: vmath.NormalizeOr(nodePos, mgl64.Vec3{0, 0, 1}).Mul(radius),
		TargetRot: vmath.LookRotation(cam.Position, nodePos, worldUp),
		Start:     now,
		Duration:  d,
	}
}
