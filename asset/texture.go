// Package asset loads node textures. Images are decoded once, downscaled to a
// fixed sample grid and kept as linear colour samples for the rasteriser.
package asset

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Sample grid of a loaded texture, wide because terminal cells are tall
const (
	SampleWidth  = 64
	SampleHeight = 32
)

// Texture is a downscaled colour grid sampled with repeat wrapping
type Texture struct {
	Width  int
	Height int
	pix    []colorful.Color
}

// Load decodes the image at path and downscales it to the sample grid
func Load(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return FromImage(img), nil
}

// FromImage downscales img with bilinear filtering
func FromImage(img image.Image) *Texture {
	dst := image.NewRGBA(image.Rect(0, 0, SampleWidth, SampleHeight))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	t := &Texture{
		Width:  SampleWidth,
		Height: SampleHeight,
		pix:    make([]colorful.Color, SampleWidth*SampleHeight),
	}
	for y := 0; y < SampleHeight; y++ {
		for x := 0; x < SampleWidth; x++ {
			c, _ := colorful.MakeColor(dst.RGBAAt(x, y))
			t.pix[y*SampleWidth+x] = c
		}
	}
	return t
}

// Solid returns a one-colour texture
func Solid(c color.Color) *Texture {
	cc, _ := colorful.MakeColor(c)
	return &Texture{Width: 1, Height: 1, pix: []colorful.Color{cc}}
}

// At returns the sample at integer coordinates, wrapped
func (t *Texture) At(x, y int) colorful.Color {
	x = wrap(x, t.Width)
	y = wrap(y, t.Height)
	return t.pix[y*t.Width+x]
}

// Sample returns the nearest sample at texture coordinates (u, v)
// Coordinates repeat outside [0, 1)
func (t *Texture) Sample(u, v float64) colorful.Color {
	u -= math.Floor(u)
	v -= math.Floor(v)
	return t.At(int(u*float64(t.Width)), int(v*float64(t.Height)))
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
