package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs tcell.AttrMask
}

var emptyCell = Cell{Rune: ' ', Fg: RGBText, Bg: RGBBlack}

// Buffer is a cell compositor with a per-cell depth channel
// Depth is the view distance of the nearest scene element written to a cell,
// +Inf for background
type Buffer struct {
	cells  []Cell
	depth  []float64
	width  int
	height int
}

// NewBuffer creates a cleared buffer
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.depth = make([]float64, size)
	} else {
		b.cells = b.cells[:size]
		b.depth = b.depth[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	b.depth[0] = math.Inf(1)
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
		copy(b.depth[filled:], b.depth[:filled])
	}
}

// Width returns the buffer width in cells
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in cells
func (b *Buffer) Height() int { return b.height }

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Cell returns the cell at (x, y), the empty cell when out of bounds
func (b *Buffer) Cell(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// Depth returns the depth at (x, y)
func (b *Buffer) Depth(x, y int) float64 {
	if !b.inBounds(x, y) {
		return math.Inf(1)
	}
	return b.depth[y*b.width+x]
}

// Set composites a cell with the given blend mode
// A zero rune keeps the existing rune
func (b *Buffer) Set(x, y int, r rune, fg, bg RGB, mode BlendMode, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	op := uint8(mode) & 0x0F
	flags := uint8(mode) & 0xF0

	if r != 0 {
		dst.Rune = r
		dst.Attrs = tcell.AttrNone
	}
	if flags&flagBg != 0 {
		dst.Bg = applyOp(op, dst.Bg, bg, alpha)
	}
	if flags&flagFg != 0 {
		dst.Fg = applyOp(op, dst.Fg, fg, alpha)
	}
}

// SetDepth records the depth of what was drawn at (x, y) when nearer
func (b *Buffer) SetDepth(x, y int, d float64) {
	if !b.inBounds(x, y) {
		return
	}
	i := y*b.width + x
	if d < b.depth[i] {
		b.depth[i] = d
	}
}

// SetFgOnly writes rune and foreground, keeping the background
func (b *Buffer) SetFgOnly(x, y int, r rune, fg RGB, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Attrs = attrs
}

// SetWithBg writes an opaque cell
func (b *Buffer) SetWithBg(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg}
}

// WriteString writes s from (x, y) and returns the next free column
// Wide runes take two columns
func (b *Buffer) WriteString(x, y int, s string, fg RGB, attrs tcell.AttrMask) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.SetFgOnly(x, y, r, fg, attrs)
		if w == 2 {
			// The next column is covered by the wide glyph
			b.SetFgOnly(x+1, y, 0, fg, attrs)
		}
		x += w
	}
	return x
}

// FillBg sets the background of a rectangle, alpha blended
func (b *Buffer) FillBg(x, y, w, h int, bg RGB, alpha float64) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			b.Set(xx, yy, 0, RGB{}, bg, BlendAlphaBg, alpha)
		}
	}
}

// Text returns the runes of row y as a string, for tests and snapshots
func (b *Buffer) Text(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	out := make([]rune, 0, b.width)
	for x := 0; x < b.width; x++ {
		if r := b.cells[y*b.width+x].Rune; r != 0 {
			out = append(out, r)
		}
	}
	return string(out)
}

func style(c Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
		Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B))).
		Attributes(c.Attrs)
}

// FlushTo copies the buffer into screen at offset (ox, oy); it does not Show
func (b *Buffer) FlushTo(screen tcell.Screen, ox, oy int) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.Rune == 0 {
				// Continuation column of a wide rune
				continue
			}
			screen.SetContent(ox+x, oy+y, c.Rune, nil, style(c))
		}
	}
}
