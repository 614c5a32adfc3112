// Package ebiten provides an Ebiten-based 2D graphical backend for Path Recall.
package ebiten

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog/log"

	"pathrecall/pkg/engine/world"
	"pathrecall/pkg/game/gameplay"
	"pathrecall/pkg/game/renderer"
)

// New creates an Ebiten backend for engine. icons may be nil.
func New(engine *gameplay.Engine, icons renderer.IconSource, opts ...Option) (*EbitenRenderer, error) {
	e := &EbitenRenderer{
		timer:      renderer.NewTimerBar(),
		icons:      icons,
		faces:      make(map[renderer.Font]*text.GoTextFace),
		iconImages: make(map[world.Direction]*ebiten.Image),
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.loadFonts(); err != nil {
		return nil, err
	}

	e.canvas = &canvas{r: e}
	e.driver = renderer.NewDriver(engine, e.canvas, icons, e.timer)
	return e, nil
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// Run opens the window and blocks until the player quits
func (e *EbitenRenderer) Run() error {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(gotext.Get("WINDOW_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(e)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebiten: %w", err)
	}
	log.Info().Msg("window closed")
	return nil
}
