package scene

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/lixenwraith/aether/asset"
	"github.com/lixenwraith/aether/config"
	"github.com/lixenwraith/aether/engine"
	"github.com/lixenwraith/aether/physics"
)

var (
	// ErrNoSurface is returned when there is nothing to render into
	ErrNoSurface = errors.New("scene: no render surface")
	// ErrNoScheduler is returned when Mount has no frame scheduler
	ErrNoScheduler = errors.New("scene: no frame scheduler")
)

// Navigator changes the current page
type Navigator interface {
	Navigate(path string)
}

// Cue identifies an audio cue fired by an interaction
type Cue uint8

const (
	CueHover Cue = iota
	CueSelect
	CueCore
)

// CuePlayer plays interaction cues, it must not block
type CuePlayer interface {
	Play(Cue)
}

// FrameSink draws a session after each tick
type FrameSink interface {
	DrawFrame(s *Session)
}

// Deps are the host services a session uses
// Clock and Scheduler are required, the rest may be nil
type Deps struct {
	Clock     engine.Clock
	Scheduler engine.FrameScheduler
	Navigator Navigator
	Cues      CuePlayer
	Sink      FrameSink
	Textures  asset.Set
}

// Effects are the per-frame shader-like parameters read by the renderer
type Effects struct {
	GlowTime    float64
	Focus       float64 // depth-of-field focus distance
	Aperture    float64 // 0 disables blur
	MaxAperture float64
}

// CorePulse returns the glow intensity multiplier of the core
func (e Effects) CorePulse() float64 {
	return 1 + 0.2*math.Sin(0.5*e.GlowTime)
}

// Session is one mounted scene; every handler operates on it
// Not safe for concurrent use, the host drives it from one goroutine
type Session struct {
	cfg      *config.Config
	deps     Deps
	viewport Viewport

	graph    *Graph
	bodies   []physics.Body
	camera   *Camera
	controls *Controls
	effects  Effects

	time  float64
	ticks uint64

	hovered *Node
	tooltip Tooltip

	transition *Transition
	navigated  bool

	frameID engine.FrameID
	mounted bool
}

// Mount builds a fresh scene and starts its frame loop
func Mount(cfg *config.Config, vp Viewport, deps Deps) (*Session, error) {
	if vp.Empty() {
		return nil, ErrNoSurface
	}
	if deps.Scheduler == nil {
		return nil, ErrNoScheduler
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if deps.Clock == nil {
		deps.Clock = engine.NewTimeProvider()
	}

	g, err := Build(cfg, deps.Textures)
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}

	cam := NewCamera(cfg.Camera, vp.Aspect())
	ctl := NewControls(cfg.Controls, cfg.Loop.FPS)
	ctl.Sync(cam)

	s := &Session{
		cfg:      cfg,
		deps:     deps,
		viewport: vp,
		graph:    g,
		bodies:   nodeBodies(g.Nodes),
		camera:   cam,
		controls: ctl,
		effects: Effects{
			Focus:       cfg.Transition.FocusStart,
			MaxAperture: cfg.Transition.MaxAperture,
		},
		mounted: true,
	}
	s.frameID = deps.Scheduler.RequestFrame(s.frame)
	log.Printf("scene: mounted %d nodes, %d stars, viewport %dx%d", len(g.Nodes), len(g.Stars.Points), vp.Width, vp.Height)
	return s, nil
}

// Unmount stops the loop, cancels any flight and releases the scene
// Safe to call more than once
func (s *Session) Unmount() {
	if !s.mounted {
		return
	}
	s.mounted = false
	s.deps.Scheduler.CancelFrame(s.frameID)
	s.frameID = 0

	if s.transition != nil {
		log.Printf("scene: unmount cancelled transition to %q", s.transition.Focus.Title)
		s.transition = nil
	}
	s.controls.Enabled = true
	s.hovered = nil
	s.tooltip = Tooltip{}
	s.graph = nil
	s.bodies = nil
	log.Printf("scene: unmounted after %d ticks", s.ticks)
}

// frame is the single self-rescheduling loop callback
func (s *Session) frame(now time.Time) {
	s.frameID = 0
	if !s.mounted {
		return
	}
	s.Tick(now)
	// Navigation on completion may unmount the session synchronously
	if !s.mounted {
		return
	}
	if s.deps.Sink != nil {
		s.deps.Sink.DrawFrame(s)
	}
	s.frameID = s.deps.Scheduler.RequestFrame(s.frame)
}

// Tick advances the scene one frame without drawing
func (s *Session) Tick(now time.Time) {
	if !s.mounted {
		return
	}
	g := s.graph
	s.ticks++
	s.time += s.cfg.Scene.TickStep

	g.Core.spin()
	g.Stars.step()

	for _, n := range g.Orbiting() {
		if !n.Animating {
			continue
		}
		n.SetPos(n.Orbit.Position(s.time))
		n.spin()
	}
	for _, tr := range g.Trails {
		if tr.Node.Animating {
			tr.Push(tr.Node.Pos())
		}
	}
	physics.ResolveSeparation(s.bodies, s.cfg.Scene.CollisionDistance)

	s.effects.GlowTime = s.time

	s.advanceTransition(now)
	if !s.mounted {
		return
	}
	for _, n := range g.Nodes {
		n.expireFlash(now)
	}
	s.controls.Update(s.camera)
}

func (s *Session) advanceTransition(now time.Time) {
	tr := s.transition
	if tr == nil {
		return
	}
	e := tr.Eased(now)
	tr.Apply(s.camera, e)

	if tr.Kind == TransitionCore {
		for _, n := range s.graph.Nodes {
			if n != tr.Focus {
				n.Opacity = math.Max(0, 1-e)
			}
		}
		t := s.cfg.Transition
		s.effects.Focus = t.FocusStart + t.FocusRange*e
		s.effects.Aperture = t.MaxAperture * e
	}

	if !tr.Done(now) {
		return
	}

	s.transition = nil
	s.controls.Sync(s.camera)
	s.controls.Enabled = true

	switch tr.Kind {
	case TransitionNode:
		tr.Focus.scheduleFlashEnd(tr.End().Add(s.cfg.Transition.FlashDuration.Duration))
	case TransitionCore:
		if s.navigated {
			return
		}
		s.navigated = true
		route := s.cfg.Transition.CoreRoute
		log.Printf("scene: core transition complete, navigating to %s", route)
		if s.deps.Navigator != nil {
			s.deps.Navigator.Navigate(route)
		}
		// Still mounted: the navigator did not leave the scene
		if s.mounted {
			s.restoreScene()
		}
	}
}

// restoreScene undoes the core flight fade and blur
func (s *Session) restoreScene() {
	log.Printf("scene: still mounted after navigating to %s, restoring", s.cfg.Transition.CoreRoute)
	for _, n := range s.graph.Nodes {
		if n != s.hovered {
			n.Opacity = RestingOpacity
		}
	}
	s.effects.Focus = s.cfg.Transition.FocusStart
	s.effects.Aperture = 0
}

// Resize updates the surface and the camera aspect
func (s *Session) Resize(vp Viewport) error {
	if !s.mounted {
		return nil
	}
	if vp.Empty() {
		return ErrNoSurface
	}
	s.viewport = vp
	s.camera.Aspect = vp.Aspect()
	return nil
}

// Drag orbits the camera by a pointer drag in cells
func (s *Session) Drag(dx, dy int) {
	if s.mounted {
		s.controls.Drag(float64(dx), float64(dy), s.viewport.Height)
	}
}

// Rotate orbits the camera by angles in radians
func (s *Session) Rotate(dAz, dPolar float64) {
	if s.mounted {
		s.controls.Rotate(dAz, dPolar)
	}
}

// Zoom moves the camera toward (positive) or away from the target
func (s *Session) Zoom(steps float64) {
	if s.mounted {
		s.controls.Zoom(steps)
	}
}

// Mounted reports whether the session is live
func (s *Session) Mounted() bool { return s.mounted }

// Graph returns the scene contents, nil after unmount
func (s *Session) Graph() *Graph { return s.graph }

// Camera returns the live camera
func (s *Session) Camera() *Camera { return s.camera }

// Controls returns the orbit controls
func (s *Session) Controls() *Controls { return s.controls }

// Viewport returns the current surface size
func (s *Session) Viewport() Viewport { return s.viewport }

// Effects returns the current render parameters
func (s *Session) Effects() Effects { return s.effects }

// Time returns the simulated scene time
func (s *Session) Time() float64 { return s.time }

// Ticks returns the number of frames run
func (s *Session) Ticks() uint64 { return s.ticks }

// Hovered returns the hovered node, nil when none
func (s *Session) Hovered() *Node { return s.hovered }

// Tooltip returns the current tooltip
func (s *Session) Tooltip() Tooltip { return s.tooltip }

// State returns the transition state
func (s *Session) State() TransitionState {
	if s.transition != nil {
		return StateTransitioning
	}
	return StateIdle
}

// Transition returns the in-flight transition, nil when idle
func (s *Session) Transition() *Transition { return s.transition }

// Config returns the configuration the session was built from
func (s *Session) Config() *config.Config { return s.cfg }
