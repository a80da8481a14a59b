// Package render draws a scene session into a terminal cell buffer: star field,
// orbit trails, shaded node spheres with glow, a depth-of-field pass, and the
// tooltip and HUD overlays.
package render

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/aether/scene"
)

// Shading constants
const (
	glowExtentSq   = 2.5 // squared radius, in sphere radii, where glow ends
	coreHotRadius  = 0.7
	minSphereCells = 0.4
	trailAlpha     = 0.85
	starRune       = '·'
	brightStarRune = '•'
)

// Blinn-Phong light, view space, y up
var lightDir, halfDir mgl64.Vec3

func init() {
	lightDir = mgl64.Vec3{-0.35, 0.55, 0.75}.Normalize()
	halfDir = lightDir.Add(mgl64.Vec3{0, 0, 1}).Normalize()
}

type projectedNode struct {
	node   *scene.Node
	cx, cy float64 // centre, cells
	rx, ry float64 // radii, cells
	depth  float64
}

// compose draws the whole scene into buf
func compose(buf *Buffer, s *scene.Session) {
	buf.Clear()
	g := s.Graph()
	if g == nil {
		return
	}
	vp := scene.Viewport{Width: buf.Width(), Height: buf.Height()}

	drawStars(buf, s, vp)
	drawTrails(buf, s, vp)
	drawNodes(buf, s, vp)
	applyDepthOfField(buf, s.Effects())
}

// cellOf maps NDC to fractional cell coordinates
func cellOf(vp scene.Viewport, p scene.Projected) (float64, float64) {
	return vp.ToCell(p.X, p.Y)
}

func drawStars(buf *Buffer, s *scene.Session, vp scene.Viewport) {
	g := s.Graph()
	cam := s.Camera()
	rot := g.Stars.Transform()
	for _, p := range g.Stars.Points {
		pr, ok := cam.Project(rot.Mul3x1(p))
		if !ok || math.Abs(pr.X) > 1 || math.Abs(pr.Y) > 1 {
			continue
		}
		x, y := cellOf(vp, pr)
		cx, cy := int(math.Round(x)), int(math.Round(y))
		// Nearer stars are brighter
		bright := 1 - math.Min(1, pr.Depth/cam.Far*8)
		r := starRune
		if bright > 0.85 {
			r = brightStarRune
		}
		buf.SetFgOnly(cx, cy, r, Scale(RGBStar, 0.35+0.65*bright), 0)
	}
}

func drawTrails(buf *Buffer, s *scene.Session, vp scene.Viewport) {
	cam := s.Camera()
	for _, tr := range s.Graph().Trails {
		visible := tr.Visible()
		alpha := trailAlpha * tr.Node.Opacity
		// Oldest first so the head lands on top
		for i := len(visible) - 1; i >= 0; i-- {
			smp := visible[i]
			pr, ok := cam.Project(smp.Pos)
			if !ok {
				continue
			}
			x, y := cellOf(vp, pr)
			cx, cy := int(math.Round(x)), int(math.Round(y))
			c := FromColorful(smp.Color)
			buf.Set(cx, cy, ' ', RGB{}, c, BlendScreenBg, alpha*smp.Opacity)
			buf.SetDepth(cx, cy, pr.Depth)
		}
	}
}

func drawNodes(buf *Buffer, s *scene.Session, vp scene.Viewport) {
	cam := s.Camera()
	nodes := s.Graph().Nodes
	projs := make([]projectedNode, 0, len(nodes))
	for _, n := range nodes {
		if n.Opacity <= 0 {
			continue
		}
		pr, ok := cam.Project(n.Pos())
		if !ok {
			continue
		}
		cx, cy := cellOf(vp, pr)
		ry := cam.ProjectedRadius(n.Radius, pr.Depth) * float64(vp.Height) / 2
		projs = append(projs, projectedNode{
			node:  n,
			cx:    cx + 0.5,
			cy:    cy + 0.5,
			rx:    ry * scene.CellAspect,
			ry:    ry,
			depth: pr.Depth,
		})
	}

	// Painter's algorithm: far to near
	sort.SliceStable(projs, func(i, j int) bool {
		return projs[i].depth > projs[j].depth
	})

	fx := s.Effects()
	for _, p := range projs {
		glow := 1.0
		if p.node.IsCore() {
			glow = fx.CorePulse()
		}
		drawSphere(buf, p, glow)
	}
}

// drawSphere shades one node: textured diffuse, rim light, hot centre,
// specular, emissive and an outer glow halo
func drawSphere(buf *Buffer, p projectedNode, glow float64) {
	if p.ry < minSphereCells {
		return
	}
	n := p.node
	base := n.Color
	emissive := n.Emissive()

	ext := math.Sqrt(glowExtentSq)
	minX := int(math.Floor(p.cx - p.rx*ext))
	maxX := int(math.Ceil(p.cx + p.rx*ext))
	minY := int(math.Floor(p.cy - p.ry*ext))
	maxY := int(math.Ceil(p.cy + p.ry*ext))

	for sy := minY; sy <= maxY; sy++ {
		for sx := minX; sx <= maxX; sx++ {
			nx := (float64(sx) + 0.5 - p.cx) / p.rx
			ny := (p.cy - float64(sy) - 0.5) / p.ry
			distSq := nx*nx + ny*ny
			if distSq > glowExtentSq {
				continue
			}

			if distSq <= 1 {
				nz := math.Sqrt(1 - distSq)
				albedo := base
				if n.Texture != nil {
					albedo = modulate(base, n.Texture.Sample(texCoords(nx, ny, nz, n.Rotation)))
				}

				diffuse := math.Max(0, mgl64.Vec3{nx, ny, nz}.Dot(lightDir))
				rim := (1 - nz) * (1 - nz) * 0.8
				hot := 0.0
				if d := math.Sqrt(distSq) / coreHotRadius; d < 1 {
					hot = (1 - d) * 0.35
				}
				spec := math.Pow(math.Max(0, mgl64.Vec3{nx, ny, nz}.Dot(halfDir)), 20) * 0.8

				lit := 0.35 + 0.65*diffuse + rim*0.6
				col := colorful.Color{
					R: albedo.R*lit + base.R*emissive*0.5 + hot + spec,
					G: albedo.G*lit + base.G*emissive*0.5 + hot + spec,
					B: albedo.B*lit + base.B*emissive*0.5 + hot + spec,
				}

				alpha := n.Opacity
				if edge := 1 - math.Sqrt(distSq); edge < 0.08 {
					alpha *= edge / 0.08
				}
				buf.Set(sx, sy, ' ', RGB{}, FromColorful(col), BlendAlphaBg, alpha)
				buf.SetDepth(sx, sy, p.depth-nz*n.Radius)
				continue
			}

			// Outer glow, exponential falloff
			falloff := math.Exp(-(math.Sqrt(distSq)-1)*3) * 0.5 * glow * (0.6 + emissive)
			c := FromColorful(colorful.Color{R: base.R * falloff, G: base.G * falloff, B: base.B * falloff})
			buf.Set(sx, sy, 0, RGB{}, c, BlendScreenBg, 0.7*n.Opacity)
		}
	}
}

// texCoords maps a view-space sphere normal to equirectangular coordinates,
// shifted by the node's spin
func texCoords(nx, ny, nz float64, rot mgl64.Vec3) (float64, float64) {
	u := 0.5 + math.Atan2(nx, nz)/(2*math.Pi) + rot[1]/(2*math.Pi)
	v := 0.5 - math.Asin(math.Max(-1, math.Min(1, ny)))/math.Pi + rot[0]/(2*math.Pi)
	return u, v
}

// modulate multiplies base by a texel, keeping some of the base tint
func modulate(base, texel colorful.Color) colorful.Color {
	return colorful.Color{
		R: base.R * (0.4 + 0.6*texel.R),
		G: base.G * (0.4 + 0.6*texel.G),
		B: base.B * (0.4 + 0.6*texel.B),
	}
}
