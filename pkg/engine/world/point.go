package world

import "fmt"

// Point is a 0-indexed grid coordinate
type Point struct {
	X int
	Y int
}

// String returns "(x,y)"
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Step returns the point one unit away in the given direction.
// Invalid directions leave the point where it is.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}
