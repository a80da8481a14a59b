package scene

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Category classifies a node; it selects icon, description and texture
type Category uint8

const (
	CategoryUnknown Category = iota
	CategoryCore
	CategoryAI
	CategoryFinance
	CategoryCompEng
	CategoryDataSci
)

var categoryNames = [...]string{
	CategoryUnknown: "",
	CategoryCore:    "Core",
	CategoryAI:      "AI",
	CategoryFinance: "Finance",
	CategoryCompEng: "CompEng",
	CategoryDataSci: "DataSci",
}

// ParseCategory maps a configured label to its category
// Unrecognized labels yield CategoryUnknown
func ParseCategory(label string) Category {
	for c, name := range categoryNames {
		if name != "" && name == label {
			return Category(c)
		}
	}
	return CategoryUnknown
}

func (c Category) String() string {
	if int(c) < len(categoryNames) && c != CategoryUnknown {
		return categoryNames[c]
	}
	return "Unknown"
}

// Material is the per-category visual and tooltip record
type Material struct {
	Icon        string
	Description string
	Accent      colorful.Color // tooltip border and glow tint
	Emissive    float64        // emissive intensity relative to base colour
	TextureKey  string
}

const (
	coreEmissive = 0.6
	nodeEmissive = 0.5
)

// MaterialTable is the closed category mapping, built once per scene
type MaterialTable struct {
	entries  map[Category]Material
	fallback Material
}

// NewMaterialTable builds the category table
func NewMaterialTable() *MaterialTable {
	accent := func(hex string) colorful.Color {
		c, _ := colorful.Hex(hex)
		return c
	}
	return &MaterialTable{
		entries: map[Category]Material{
			CategoryCore: {
				Icon:        "🧠",
				Description: "The central computational hub integrating all technologies",
				Accent:      accent("#9C27B0"),
				Emissive:    coreEmissive,
				TextureKey:  "Core",
			},
			CategoryAI: {
				Icon:        "🤖",
				Description: "Advanced artificial intelligence and machine learning technologies",
				Accent:      accent("#FF5252"),
				Emissive:    nodeEmissive,
				TextureKey:  "AI",
			},
			CategoryFinance: {
				Icon:        "📈",
				Description: "Sophisticated financial modeling and algorithmic trading systems",
				Accent:      accent("#2196F3"),
				Emissive:    nodeEmissive,
				TextureKey:  "Finance",
			},
			CategoryCompEng: {
				Icon:        "💻",
				Description: "Computer engineering innovations and distributed computing architectures",
				Accent:      accent("#FFEB3B"),
				Emissive:    nodeEmissive,
				TextureKey:  "CompEng",
			},
			CategoryDataSci: {
				Icon:        "📊",
				Description: "Data science methodologies and predictive analytics frameworks",
				Accent:      accent("#00BCD4"),
				Emissive:    nodeEmissive,
				TextureKey:  "DataSci",
			},
		},
		fallback: Material{
			Icon:        "🔮",
			Description: "Specialized computational technology",
			Accent:      accent("#9E9E9E"),
			Emissive:    nodeEmissive,
		},
	}
}

// Lookup returns the material of c, or the default record
func (t *MaterialTable) Lookup(c Category) Material {
	if m, ok := t.entries[c]; ok {
		return m
	}
	return t.fallback
}
