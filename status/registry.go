// Package status publishes live counters of the running scene. The host loop
// writes them; the HUD overlay and the snapshot command read them.
package status

import (
	"fmt"
	"sync/atomic"
)

// Well-known metric keys
const (
	KeyFrames     = "frames"
	KeyFPS        = "fps"
	KeyFrameMs    = "frame_ms"
	KeyPage       = "page"
	KeyHovered    = "hovered"
	KeyTransition = "transition"
	KeyControls   = "controls"
	KeyAudio      = "audio"
	KeyPaused     = "paused"
)

// Registry is the metrics facade
// Writers cache pointers once; per-frame updates are lock-free atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of registered metrics
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Lines formats every metric as "key value", grouped by type then key
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Strings.Range(func(k string, v *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s %s", k, v.Load()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s %d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s %.1f", k, v.Get()))
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		state := "off"
		if v.Load() {
			state = "on"
		}
		lines = append(lines, fmt.Sprintf("%s %s", k, state))
	})
	return lines
}
