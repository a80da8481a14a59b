package scene

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Tooltip offset from the cursor in cells
const (
	TooltipOffsetX = 2
	TooltipOffsetY = 1
)

// Tooltip is the hover card shown next to the cursor
type Tooltip struct {
	Visible     bool
	X, Y        int
	Icon        string
	Title       string
	Category    string
	Description string
	Accent      colorful.Color
}

// Pick returns the nearest node under cell (x, y), nil on a miss
// Fully transparent nodes are not pickable
func (s *Session) Pick(x, y int) *Node {
	if !s.mounted {
		return nil
	}
	ray := s.camera.Ray(s.viewport.ToNDC(x, y))
	var hit *Node
	nearest := math.Inf(1)
	for _, n := range s.graph.Nodes {
		if n.Opacity <= 0 {
			continue
		}
		if t, ok := ray.IntersectSphere(n.Pos(), n.Radius); ok && t < nearest {
			nearest = t
			hit = n
		}
	}
	return hit
}

// PointerMove updates hover state for the cursor at cell (x, y)
func (s *Session) PointerMove(x, y int) {
	if !s.mounted {
		return
	}
	hit := s.Pick(x, y)

	switch {
	case hit != nil && hit != s.hovered:
		if s.hovered != nil {
			release(s.hovered)
		}
		s.hovered = hit
		hit.Opacity = HoverOpacity
		hit.Animating = false
		s.tooltip = Tooltip{
			Visible:     true,
			X:           x + TooltipOffsetX,
			Y:           y + TooltipOffsetY,
			Icon:        hit.Material.Icon,
			Title:       hit.Title,
			Category:    hit.CategoryLabel(),
			Description: hit.Material.Description,
			Accent:      hit.Material.Accent,
		}
		s.cue(CueHover)

	case hit != nil:
		s.tooltip.X = x + TooltipOffsetX
		s.tooltip.Y = y + TooltipOffsetY

	case s.hovered != nil:
		release(s.hovered)
		s.hovered = nil
		s.tooltip = Tooltip{}
	}
}

// release restores a node after hover-out
func release(n *Node) {
	n.Opacity = RestingOpacity
	n.Animating = true
}

// Click starts a camera flight to the hovered node
// Returns false when nothing is hovered or a flight is already running
func (s *Session) Click() bool {
	if !s.mounted || s.hovered == nil {
		return false
	}
	n := s.hovered
	if s.transition != nil {
		log.Printf("scene: click on %q ignored, %s", n.Title, s.State())
		return false
	}

	now := s.deps.Clock.Now()
	t := s.cfg.Transition
	s.controls.Enabled = false

	if n.IsCore() {
		s.transition = newCoreTransition(s.camera, n, mgl64.Vec3(t.CoreTarget), now, t.CoreDuration.Duration)
		s.cue(CueCore)
	} else {
		s.transition = newNodeTransition(s.camera, n, t.RecenterRadius, now, t.NodeDuration.Duration)
		n.startFlash()
		s.cue(CueSelect)
	}
	log.Printf("scene: transition to %q started", n.Title)
	return true
}

func (s *Session) cue(c Cue) {
	if s.deps.Cues != nil {
		s.deps.Cues.Play(c)
	}
}
