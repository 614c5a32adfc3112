package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pathrecall/pkg/engine/world"
	"pathrecall/pkg/game/assets"
	"pathrecall/pkg/game/renderer"
)

// canvas adapts the grid area of the current screen to renderer.Canvas.
// target is swapped in at the start of every Draw.
type canvas struct {
	r      *EbitenRenderer
	target *ebiten.Image
}

func (c *canvas) Size() (int, int) {
	b := c.target.Bounds()
	return b.Dx(), b.Dy()
}

func (c *canvas) Clear(col color.Color) {
	c.target.Fill(col)
}

func (c *canvas) DrawRect(r world.Rect, col color.Color) {
	vector.FillRect(c.target, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col, false)
}

// DrawText places the baseline at y; text/v2 draws from the top of the line
func (c *canvas) DrawText(str string, x, y float64, font renderer.Font, col color.Color) {
	face := c.r.face(font)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(col)

	text.Draw(c.target, str, face, op)
}

func (c *canvas) DrawImage(icon assets.Icon, r world.Rect) {
	img := c.r.iconImage(icon)
	if img == nil {
		return
	}
	b := img.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	op.Filter = ebiten.FilterLinear

	c.target.DrawImage(img, op)
}

func (c *canvas) DrawGridLines(col color.Color) {
	w, h := c.Size()
	for x := 0; x < world.GridWidth; x++ {
		for y := 0; y < world.GridHeight; y++ {
			r := world.CellRect(world.Point{X: x, Y: y}, 0, w, h)
			vector.StrokeRect(c.target, float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
				gridLineWidth, col, false)
		}
	}
}

// iconImage uploads an icon once and reuses it afterwards
func (e *EbitenRenderer) iconImage(icon assets.Icon) *ebiten.Image {
	if img, ok := e.iconImages[icon.Direction]; ok {
		return img
	}
	if icon.Image == nil {
		return nil
	}
	img := ebiten.NewImageFromImage(icon.Image)
	e.iconImages[icon.Direction] = img
	return img
}
