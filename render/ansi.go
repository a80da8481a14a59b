package render

import (
	"bufio"
	"io"

	"github.com/fatih/color"
)

// WriteANSI prints the buffer as true-colour text, one line per row
// Colour output follows color.NoColor, plain runes otherwise
func (b *Buffer) WriteANSI(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.Rune == 0 {
				continue
			}
			if color.NoColor {
				bw.WriteRune(c.Rune)
				continue
			}
			cc := color.RGB(int(c.Fg.R), int(c.Fg.G), int(c.Fg.B)).
				AddBgRGB(int(c.Bg.R), int(c.Bg.G), int(c.Bg.B))
			cc.EnableColor()
			if _, err := cc.Fprint(bw, string(c.Rune)); err != nil {
				return err
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
