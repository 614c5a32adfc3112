package world

// Grid dimensions shared by every level
const (
	GridWidth  = 5
	GridHeight = 5
)

// Rect is an axis-aligned rectangle in surface (pixel) space
type Rect struct {
	X, Y float64
	W, H float64
}

// InBounds checks if a point lies on the grid
func InBounds(p Point) bool {
	return p.X >= 0 && p.X < GridWidth && p.Y >= 0 && p.Y < GridHeight
}

// ToPixels maps a (possibly fractional) grid coordinate onto a surface of
// surfaceW x surfaceH pixels by scaling each axis by surface/grid.
func ToPixels(x, y float64, surfaceW, surfaceH int) (px, py float64) {
	px = float64(surfaceW) / GridWidth * x
	py = float64(surfaceH) / GridHeight * y
	return px, py
}

// CellRect returns the pixel rectangle of grid cell p, shrunk on every side
// by inset (a fraction of one cell, 0 for the full cell).
func CellRect(p Point, inset float64, surfaceW, surfaceH int) Rect {
	x0, y0 := ToPixels(float64(p.X)+inset, float64(p.Y)+inset, surfaceW, surfaceH)
	x1, y1 := ToPixels(float64(p.X)+1-inset, float64(p.Y)+1-inset, surfaceW, surfaceH)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
