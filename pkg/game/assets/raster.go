package assets

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"

	"pathrecall/pkg/engine/world"
)

var arrowColor = color.NRGBA{235, 235, 235, 255}

// upArrow is an upward arrow outline in unit coordinates
var upArrow = [][2]float32{
	{0.50, 0.10},
	{0.85, 0.45},
	{0.62, 0.45},
	{0.62, 0.90},
	{0.38, 0.90},
	{0.38, 0.45},
	{0.15, 0.45},
}

// orient turns a point of upArrow to face d
func orient(d world.Direction, x, y float32) (float32, float32) {
	switch d {
	case world.Down:
		return x, 1 - y
	case world.Right:
		return 1 - y, x
	case world.Left:
		return y, 1 - x
	default:
		return x, y
	}
}

// Rasterize draws a size×size arrow pointing in direction d
func Rasterize(d world.Direction, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	if !d.IsValid() {
		return dst
	}

	s := float32(size)
	r := vector.NewRasterizer(size, size)
	for i, p := range upArrow {
		x, y := orient(d, p[0], p[1])
		if i == 0 {
			r.MoveTo(x*s, y*s)
			continue
		}
		r.LineTo(x*s, y*s)
	}
	r.ClosePath()
	r.Draw(dst, dst.Bounds(), image.NewUniform(arrowColor), image.Point{})
	return dst
}
