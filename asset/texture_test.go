package asset

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func halfImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 128, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 128; x++ {
			c := color.RGBA{255, 0, 0, 255}
			if x >= 64 {
				c = color.RGBA{0, 0, 255, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestFromImage_Downscales(t *testing.T) {
	tex := FromImage(halfImage())
	require.Equal(t, SampleWidth, tex.Width)
	require.Equal(t, SampleHeight, tex.Height)

	left := tex.Sample(0.1, 0.5)
	right := tex.Sample(0.9, 0.5)
	assert.InDelta(t, 1.0, left.R, 0.01)
	assert.InDelta(t, 0.0, left.B, 0.01)
	assert.InDelta(t, 1.0, right.B, 0.01)
	assert.InDelta(t, 0.0, right.R, 0.01)
}

func TestSample_Wraps(t *testing.T) {
	tex := FromImage(halfImage())
	assert.Equal(t, tex.Sample(0.1, 0.2), tex.Sample(1.1, 0.2))
	assert.Equal(t, tex.Sample(0.9, 0.2), tex.Sample(-0.1, 0.2))
	assert.Equal(t, tex.At(0, 0), tex.At(SampleWidth, SampleHeight))
}

func TestSolid(t *testing.T) {
	tex := Solid(color.RGBA{0, 255, 0, 255})
	c := tex.Sample(0.73, 0.12)
	assert.InDelta(t, 1.0, c.G, 1e-9)
}

func TestLoadSet_MissingFileLeavesCategoryOut(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "ai.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, halfImage()))
	require.NoError(t, f.Close())

	set, errs := LoadSet(dir, map[string]string{
		"AI":      "ai.png",
		"Finance": "missing.jpg",
		"DataSci": "",
	})

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Finance")
	assert.NotNil(t, set.Get("AI"))
	assert.Nil(t, set.Get("Finance"))
	assert.Nil(t, set.Get("DataSci"))

	var empty Set
	assert.Nil(t, empty.Get("AI"))
}

func TestLoad_Undecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.jpg")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
