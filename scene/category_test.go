package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	assert.Equal(t, CategoryCore, ParseCategory("Core"))
	assert.Equal(t, CategoryAI, ParseCategory("AI"))
	assert.Equal(t, CategoryFinance, ParseCategory("Finance"))
	assert.Equal(t, CategoryCompEng, ParseCategory("CompEng"))
	assert.Equal(t, CategoryDataSci, ParseCategory("DataSci"))
	assert.Equal(t, CategoryUnknown, ParseCategory("Quantum"))
	assert.Equal(t, CategoryUnknown, ParseCategory(""))
	assert.Equal(t, "Unknown", CategoryUnknown.String())
}

func TestMaterialTable(t *testing.T) {
	mt := NewMaterialTable()

	core := mt.Lookup(CategoryCore)
	assert.Equal(t, "🧠", core.Icon)
	assert.Equal(t, 0.6, core.Emissive)

	ai := mt.Lookup(CategoryAI)
	assert.Equal(t, "🤖", ai.Icon)
	assert.Equal(t, 0.5, ai.Emissive)
	assert.Equal(t, "Advanced artificial intelligence and machine learning technologies", ai.Description)

	unknown := mt.Lookup(CategoryUnknown)
	assert.Equal(t, "🔮", unknown.Icon)
	assert.Equal(t, "Specialized computational technology", unknown.Description)
	assert.Empty(t, unknown.TextureKey)
}
