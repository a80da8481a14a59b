package config

import (
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/aether/route"
)

// ErrInvalid marks configuration errors
var ErrInvalid = errors.New("invalid configuration")

// KnownCategories lists the orbiting-node categories
var KnownCategories = []string{"AI", "Finance", "CompEng", "DataSci"}

// Validate reports every problem found, joined
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	s := c.Scene
	if s.TickStep <= 0 {
		bad("scene.tick_step must be positive, got %v", s.TickStep)
	}
	if s.TrailLength < 1 {
		bad("scene.trail_length must be at least 1, got %d", s.TrailLength)
	}
	if s.TrailDrawScale <= 0 {
		bad("scene.trail_draw_scale must be positive, got %v", s.TrailDrawScale)
	}
	if s.CollisionDistance < 0 {
		bad("scene.collision_distance must not be negative, got %v", s.CollisionDistance)
	}
	if s.NodeRadius <= 0 || s.CoreRadius <= 0 {
		bad("scene radii must be positive")
	}
	if s.Stars < 0 {
		bad("scene.stars must not be negative, got %d", s.Stars)
	}

	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		bad("camera.fov must be in (0, 180), got %v", c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		bad("camera near/far must satisfy 0 < near < far")
	}

	if c.Controls.MinDistance <= 0 || c.Controls.MaxDistance < c.Controls.MinDistance {
		bad("controls distance range [%v, %v] is empty", c.Controls.MinDistance, c.Controls.MaxDistance)
	}
	if c.Controls.Damping <= 0 || c.Controls.Damping > 1 {
		bad("controls.damping must be in (0, 1], got %v", c.Controls.Damping)
	}

	t := c.Transition
	if t.CoreDuration.Duration < 0 || t.NodeDuration.Duration < 0 || t.FlashDuration.Duration < 0 {
		bad("transition durations must not be negative")
	}
	if t.RecenterRadius <= 0 {
		bad("transition.recenter_radius must be positive, got %v", t.RecenterRadius)
	}
	if t.CoreRoute == "" {
		bad("transition.core_route must not be empty")
	} else if _, ok := route.Lookup(t.CoreRoute); !ok {
		bad("transition.core_route %q is not a known page", t.CoreRoute)
	}

	if c.Loop.FPS < 1 || c.Loop.FPS > 240 {
		bad("loop.fps must be in [1, 240], got %d", c.Loop.FPS)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		bad("audio.master_volume must be in [0, 1], got %v", c.Audio.MasterVolume)
	}

	if _, err := colorful.Hex(c.Core.Color); err != nil {
		bad("core.color %q: %v", c.Core.Color, err)
	}
	for i, n := range c.Nodes {
		if n.Title == "" {
			bad("nodes[%d]: title is required", i)
		}
		if n.Category == "Core" {
			bad("nodes[%d]: the core node is configured under [core], not [[nodes]]", i)
		}
		if _, err := colorful.Hex(n.Color); err != nil {
			bad("nodes[%d] (%s): color %q: %v", i, n.Title, n.Color, err)
		}
		if n.OrbitRadius <= 0 {
			bad("nodes[%d] (%s): orbit_radius must be positive", i, n.Title)
		}
	}

	return errors.Join(errs...)
}
