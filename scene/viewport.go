package scene

// CellAspect is the height of a terminal cell in units of its width
const CellAspect = 2.0

// Viewport is the render surface in terminal cells
type Viewport struct {
	Width  int
	Height int
}

// Empty reports a surface that cannot be drawn to
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Aspect returns the physical width/height ratio of the surface
func (v Viewport) Aspect() float64 {
	if v.Empty() {
		return 1
	}
	return float64(v.Width) / (float64(v.Height) * CellAspect)
}

// ToNDC maps the centre of cell (x, y) to normalized device coordinates
// X grows right and Y grows up, both in [-1, 1]
func (v Viewport) ToNDC(x, y int) (float64, float64) {
	nx := (float64(x)+0.5)/float64(v.Width)*2 - 1
	ny := 1 - (float64(y)+0.5)/float64(v.Height)*2
	return nx, ny
}

// ToCell maps NDC back to fractional cell coordinates
func (v Viewport) ToCell(nx, ny float64) (float64, float64) {
	x := (nx+1)/2*float64(v.Width) - 0.5
	y := (1-ny)/2*float64(v.Height) - 0.5
	return x, y
}
