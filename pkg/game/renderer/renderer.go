// Package renderer draws a session onto a backend-neutral Canvas and drives
// the per-frame clear, tick and paint sequence.
package renderer

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/leonelquinteros/gotext"

	"pathrecall/pkg/engine/world"
	"pathrecall/pkg/game/gameplay"
	"pathrecall/pkg/game/state"
)

// Text placement in grid units, and font sizes as a fraction of surface height
const (
	bannerX        = 1.5
	bannerY        = 3.0
	bannerScale    = 92.0 / 500.0
	hintX          = 1.0
	hintY          = 3.6
	hintScale      = 24.0 / 500.0
	minBannerPixel = 12.0
)

// Paint draws one frame of s. It only reads the session.
func Paint(c Canvas, s *state.Session, icons IconSource) {
	w, h := c.Size()

	switch s.State {
	case state.StatePathView, state.StateGame:
		c.DrawRect(world.CellRect(s.FinishTile, PlayerMargin, w, h), ColorFinish)
		c.DrawRect(world.CellRect(s.Player, PlayerMargin, w, h), ColorPlayer)
	case state.StateWon:
		drawBanner(c, gotext.Get("WON"), ColorGrid)
	case state.StateLost:
		drawBanner(c, gotext.Get("LOST"), ColorLost)
		drawHint(c, gotext.Get("RESTART_HINT"))
	}

	if s.State == state.StatePathView {
		paintPath(c, s.Player, s.RemainingPath, icons)
	}

	c.DrawGridLines(ColorGrid)
}

// paintPath marks each remaining move on the cell it is made from, walking
// a local copy of the player position.
func paintPath(c Canvas, from world.Point, path []world.Direction, icons IconSource) {
	w, h := c.Size()
	p := from
	for _, d := range path {
		if !d.IsValid() {
			return
		}
		r := world.CellRect(p, 0, w, h)
		c.DrawRect(r, ColorPath)
		if icons != nil {
			if icon, ok := icons.Icon(d); ok {
				c.DrawImage(icon, r)
			}
		}
		p = p.Step(d)
	}
}

func fontSize(h int, scale float64) float64 {
	size := float64(h) * scale
	if size < minBannerPixel {
		size = minBannerPixel
	}
	return size
}

func drawBanner(c Canvas, text string, col color.Color) {
	w, h := c.Size()
	x, y := world.ToPixels(bannerX, bannerY, w, h)
	c.DrawText(text, x, y, Font{Size: fontSize(h, bannerScale), Bold: true}, col)
}

func drawHint(c Canvas, text string) {
	w, h := c.Size()
	x, y := world.ToPixels(hintX, hintY, w, h)
	c.DrawText(text, x, y, Font{Size: fontSize(h, hintScale)}, ColorSubtle)
}

// StatusLine summarizes the session for the line under the grid
func StatusLine(s *state.Session) string {
	parts := []string{
		fmt.Sprintf(gotext.Get("STREAK"), s.WinStreak),
		fmt.Sprintf(gotext.Get("BEST"), s.BestStreak),
		fmt.Sprintf(gotext.Get("BUDGET"), s.TimeBudget.Seconds()),
	}
	switch s.State {
	case state.StatePathView:
		parts = append(parts, gotext.Get("MEMORIZE"))
	case state.StateGame:
		parts = append(parts, gotext.Get("GO"))
	}
	return strings.Join(parts, "   ")
}

// TimerBar keeps the last fraction reported to it for a backend to draw
type TimerBar struct {
	fraction float64
}

// NewTimerBar creates a full timer bar
func NewTimerBar() *TimerBar {
	return &TimerBar{fraction: 1}
}

// SetRemaining stores f clamped to [0,1]
func (b *TimerBar) SetRemaining(f float64) {
	switch {
	case f < 0:
		f = 0
	case f > 1:
		f = 1
	}
	b.fraction = f
}

// Fraction returns the remaining share of the budget
func (b *TimerBar) Fraction() float64 {
	return b.fraction
}

// Driver runs the frame sequence for one engine and canvas
type Driver struct {
	engine *gameplay.Engine
	canvas Canvas
	icons  IconSource
	timer  TimerIndicator
}

// NewDriver creates a driver. icons and timer may be nil.
func NewDriver(engine *gameplay.Engine, canvas Canvas, icons IconSource, timer TimerIndicator) *Driver {
	return &Driver{
		engine: engine,
		canvas: canvas,
		icons:  icons,
		timer:  timer,
	}
}

// Engine returns the engine the driver ticks
func (d *Driver) Engine() *gameplay.Engine {
	return d.engine
}

// Frame clears the canvas, advances time-based transitions, paints the
// session and, during play, updates the timer indicator.
func (d *Driver) Frame(now time.Time) {
	d.canvas.Clear(ColorBackground)

	d.engine.Tick(now)

	s := d.engine.Session()
	Paint(d.canvas, s, d.icons)

	if d.timer != nil && s.State == state.StateGame {
		d.timer.SetRemaining(s.RemainingFraction(now))
	}
}
