package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/aether/config"
)

func TestCoreView_StepSpinsAndPulses(t *testing.T) {
	v, err := NewCoreView(config.Default(), nil)
	require.NoError(t, err)

	assert.True(t, v.Core.IsCore())
	assert.Equal(t, mgl64.Vec3{}, v.Core.Pos())
	assert.Equal(t, HoverOpacity, v.Core.Opacity)
	assert.Equal(t, 1.0, v.Effects().CorePulse())

	for i := 0; i < 100; i++ {
		v.Step()
	}
	assert.InDelta(t, 1.0, v.Effects().GlowTime, 1e-9)
	assert.InDelta(t, 0.2, v.Core.Rotation[0], 1e-9)
	assert.InDelta(t, 0.5, v.Core.Rotation[1], 1e-9)
	assert.Greater(t, v.Effects().CorePulse(), 1.0)
}

func TestNewCore_BadColor(t *testing.T) {
	cfg := config.Default()
	cfg.Core.Color = "purple"
	_, err := NewCore(cfg, NewMaterialTable(), nil)
	assert.Error(t, err)
}
