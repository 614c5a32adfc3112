package renderer

import (
	"image/color"

	"pathrecall/pkg/engine/world"
	"pathrecall/pkg/game/assets"
)

// Font describes how text should be drawn. Size is in surface pixels;
// backends without scalable text ignore it.
type Font struct {
	Size float64
	Bold bool
}

// Canvas defines the drawing surface a backend exposes for one frame.
// Implementations can include Ebiten images, terminal cell buffers, SVG, etc.
type Canvas interface {
	// Size returns the drawable surface in pixels
	Size() (w, h int)

	// Clear fills the whole surface
	Clear(c color.Color)

	// DrawRect fills a rectangle
	DrawRect(r world.Rect, c color.Color)

	// DrawText draws text with its baseline starting at (x, y)
	DrawText(text string, x, y float64, font Font, c color.Color)

	// DrawImage scales an icon into r
	DrawImage(icon assets.Icon, r world.Rect)

	// DrawGridLines outlines every grid cell
	DrawGridLines(c color.Color)
}

// IconSource hands out arrow icons. ok is false while an icon is still loading.
type IconSource interface {
	Icon(d world.Direction) (icon assets.Icon, ok bool)
}

// TimerIndicator shows how much of the time budget is left
type TimerIndicator interface {
	SetRemaining(fraction float64)
}

// Palette
var (
	ColorBackground = color.NRGBA{40, 40, 40, 255}
	ColorGrid       = color.NRGBA{200, 200, 200, 255}
	ColorPlayer     = color.NRGBA{12, 123, 235, 255}
	ColorPath       = color.NRGBA{100, 100, 100, 128}
	ColorFinish     = color.NRGBA{50, 200, 50, 255}
	ColorLost       = color.NRGBA{220, 70, 70, 255}
	ColorSubtle     = color.NRGBA{150, 150, 150, 255}
)

// PlayerMargin is the inset of the player and finish squares, in cells
const PlayerMargin = 0.15
