package scene

import (
	"github.com/lixenwraith/aether/asset"
	"github.com/lixenwraith/aether/config"
)

// CoreView is the standalone core shown on the computational-core page
type CoreView struct {
	Core *Node
	time float64
	step float64
}

// NewCoreView builds a lone, fully opaque core
func NewCoreView(cfg *config.Config, textures asset.Set) (*CoreView, error) {
	core, err := NewCore(cfg, NewMaterialTable(), textures)
	if err != nil {
		return nil, err
	}
	core.Opacity = HoverOpacity
	return &CoreView{Core: core, step: cfg.Scene.TickStep}, nil
}

// Step advances the spin and the glow pulse by one tick
func (v *CoreView) Step() {
	v.time += v.step
	v.Core.spin()
}

// Effects returns the glow parameters; the view has no depth of field
func (v *CoreView) Effects() Effects {
	return Effects{GlowTime: v.time}
}
