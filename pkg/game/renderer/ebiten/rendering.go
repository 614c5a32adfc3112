package ebiten

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pathrecall/pkg/game/renderer"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	// Fill background first
	screen.Fill(colorBackground)

	e.canvas.target = screen.SubImage(image.Rect(0, 0, gridSize, gridSize)).(*ebiten.Image)
	e.driver.Frame(e.clock())

	e.drawTimerBar(screen, 0, gridSize, screenWidth, timerBarHeight)
	e.drawStatusBar(screen, 0, gridSize+timerBarHeight)
}

// drawTimerBar shows the remaining budget as a shrinking bar
func (e *EbitenRenderer) drawTimerBar(screen *ebiten.Image, x, y, width, height int) {
	vector.FillRect(screen, float32(x), float32(y), float32(width), float32(height), colorTimerTrack, false)

	f := e.timer.Fraction()
	fill := colorTimerFill
	if f < timerLowFraction {
		fill = colorTimerLow
	}
	vector.FillRect(screen, float32(x), float32(y), float32(float64(width)*f), float32(height), fill, false)
}

// drawStatusBar writes the streak, best streak and current budget
func (e *EbitenRenderer) drawStatusBar(screen *ebiten.Image, x, y int) {
	font := renderer.Font{Size: statusFontSize}
	line := renderer.StatusLine(e.driver.Engine().Session())

	// reuse the canvas text path on the full screen
	c := &canvas{r: e, target: screen}
	c.DrawText(line, float64(x+statusPadding), float64(y)+statusBarHeight-statusPadding, font, colorStatusText)
}
