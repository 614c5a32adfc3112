package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"pathrecall/pkg/engine/world"
	"pathrecall/pkg/game/renderer"
)

// EbitenRenderer is the Ebiten-based graphical backend. Ebiten calls
// Update and Draw from the same goroutine, so the session needs no locking.
type EbitenRenderer struct {
	driver *renderer.Driver
	canvas *canvas
	timer  *renderer.TimerBar
	icons  renderer.IconSource

	// Font sources for text rendering
	regularSource *text.GoTextFaceSource
	boldSource    *text.GoTextFaceSource
	faces         map[renderer.Font]*text.GoTextFace

	// GPU copies of the arrow icons, uploaded on first use
	iconImages map[world.Direction]*ebiten.Image

	// Reused buffer for just-pressed keys
	keys []ebiten.Key

	clock func() time.Time

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}

// Option configures an EbitenRenderer
type Option func(*EbitenRenderer)

// WithClock replaces time.Now, mostly for tests
func WithClock(clock func() time.Time) Option {
	return func(e *EbitenRenderer) { e.clock = clock }
}
