package render

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit terminal colour
type RGB struct {
	R, G, B uint8
}

// Predefined colours
var (
	RGBBlack      = RGB{0, 0, 0}
	RGBWhite      = RGB{255, 255, 255}
	RGBBackground = RGB{0x1C, 0x1F, 0x26}
	RGBText       = RGB{0xE0, 0xE0, 0xE0}
	RGBDim        = RGB{100, 100, 110}
	RGBStar       = RGB{200, 200, 215}
)

// FromColorful converts a colorful colour, clamping out-of-gamut channels
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// Colorful converts to a colorful colour
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// clamp converts float to uint8
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Blend is alpha blending of src over c
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Max returns the per-channel maximum, alpha blended
func Max(c, src RGB, alpha float64) RGB {
	if alpha <= 0.0 {
		return c
	}
	return Blend(c, RGB{max(c.R, src.R), max(c.G, src.G), max(c.B, src.B)}, alpha)
}

func add(a, b uint8) uint8 {
	sum := int(a) + int(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// Add is clamped additive blending
func Add(c, src RGB, alpha float64) RGB {
	if alpha <= 0.0 {
		return c
	}
	return Blend(c, RGB{add(c.R, src.R), add(c.G, src.G), add(c.B, src.B)}, alpha)
}

// fastDiv255 approximates x / 255: (x + (x >> 8) + 1) >> 8
func fastDiv255(x int) int {
	return (x + (x >> 8) + 1) >> 8
}

// Screen is 1 - (1-Dst)*(1-Src), alpha blended
func Screen(c, src RGB, alpha float64) RGB {
	if alpha <= 0.0 {
		return c
	}
	screened := RGB{
		R: uint8(255 - fastDiv255((255-int(c.R))*(255-int(src.R)))),
		G: uint8(255 - fastDiv255((255-int(c.G))*(255-int(src.G)))),
		B: uint8(255 - fastDiv255((255-int(c.B))*(255-int(src.B)))),
	}
	return Blend(c, screened, alpha)
}

// Scale multiplies all channels by factor, clamped
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}

// Lerp interpolates two colours, t=0 returns a
func Lerp(a, b RGB, t float64) RGB {
	return Blend(a, b, t)
}

// Luma returns Rec. 601 brightness in [0, 1]
func Luma(c RGB) float64 {
	return (float64(c.R)*0.299 + float64(c.G)*0.587 + float64(c.B)*0.114) / 255
}

// average returns the mean of colours
func average(cs []RGB) RGB {
	if len(cs) == 0 {
		return RGBBlack
	}
	var r, g, b float64
	for _, c := range cs {
		r += float64(c.R)
		g += float64(c.G)
		b += float64(c.B)
	}
	n := float64(len(cs))
	return RGB{uint8(math.Round(r / n)), uint8(math.Round(g / n)), uint8(math.Round(b / n))}
}
