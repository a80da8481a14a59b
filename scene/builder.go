package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/aether/asset"
	"github.com/lixenwraith/aether/config"
	"github.com/lixenwraith/aether/physics"
)

// Graph is everything a mount builds from configuration
type Graph struct {
	Core      *Node
	Nodes     []*Node // core first, then orbiting nodes in configuration order
	Trails    []*Trail
	Stars     *Starfield
	Materials *MaterialTable
}

// Build creates the core, the orbiting nodes with their trails and the
// star field; textures may be nil
func Build(cfg *config.Config, textures asset.Set) (*Graph, error) {
	materials := NewMaterialTable()
	core, err := NewCore(cfg, materials, textures)
	if err != nil {
		return nil, err
	}

	g := &Graph{
		Core:      core,
		Nodes:     []*Node{core},
		Trails:    make([]*Trail, 0, len(cfg.Nodes)),
		Stars:     NewStarfield(cfg.Scene.Stars, cfg.Scene.StarSpread, cfg.Scene.StarSeed),
		Materials: materials,
	}

	for i, nc := range cfg.Nodes {
		col, err := colorful.Hex(nc.Color)
		if err != nil {
			return nil, fmt.Errorf("node %q color: %w", nc.Title, err)
		}
		cat := ParseCategory(nc.Category)
		mat := materials.Lookup(cat)
		n := &Node{
			ID:       i + 1,
			Title:    nc.Title,
			Label:    nc.Category,
			Category: cat,
			Color:    col,
			Orbit: physics.Orbit{
				Radius: nc.OrbitRadius,
				Speed:  nc.OrbitSpeed,
				Phase:  nc.Phase,
				Tilt:   nc.OrbitPlane,
			},
			Radius:    cfg.Scene.NodeRadius,
			Material:  mat,
			Texture:   textures.Get(mat.TextureKey),
			pos:       mgl64.Vec3(nc.Position),
			Opacity:   InitialOpacity,
			Animating: true,
		}
		g.Nodes = append(g.Nodes, n)
		g.Trails = append(g.Trails, NewTrail(n, cfg.Scene.TrailLength, n.pos, cfg.Scene.TrailDrawScale))
	}
	return g, nil
}

// NewCore creates the central node at the origin
func NewCore(cfg *config.Config, materials *MaterialTable, textures asset.Set) (*Node, error) {
	col, err := colorful.Hex(cfg.Core.Color)
	if err != nil {
		return nil, fmt.Errorf("core color: %w", err)
	}
	mat := materials.Lookup(CategoryCore)
	return &Node{
		ID:        0,
		Title:     cfg.Core.Title,
		Label:     CategoryCore.String(),
		Category:  CategoryCore,
		Color:     col,
		Radius:    cfg.Scene.CoreRadius,
		Material:  mat,
		Texture:   textures.Get(mat.TextureKey),
		Opacity:   InitialOpacity,
		Animating: true,
	}, nil
}

// Orbiting returns the non-core nodes
func (g *Graph) Orbiting() []*Node {
	return g.Nodes[1:]
}

// NodeByTitle finds a node, nil when absent
func (g *Graph) NodeByTitle(title string) *Node {
	for _, n := range g.Nodes {
		if n.Title == title {
			return n
		}
	}
	return nil
}
