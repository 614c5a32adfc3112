// Package assets loads the directional arrow icons drawn over path markers.
// Loading happens in the background; callers ask for an icon every frame
// and draw nothing for it until it is ready.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"pathrecall/pkg/engine/world"
)

// DefaultSize is the edge length of rasterized icons in pixels
const DefaultSize = 64

// ErrMissingIcon is returned when the asset directory has no file for a direction
var ErrMissingIcon = errors.New("icon file missing")

var fileNames = map[world.Direction]string{
	world.Up:    "arrowUp.png",
	world.Down:  "arrowDown.png",
	world.Right: "arrowRight.png",
	world.Left:  "arrowLeft.png",
}

var glyphs = map[world.Direction]string{
	world.Up:    "↑",
	world.Down:  "↓",
	world.Right: "→",
	world.Left:  "←",
}

// Icon is a loaded arrow. Image is used by pixel backends, Glyph by the terminal.
type Icon struct {
	Direction world.Direction
	Image     image.Image
	Glyph     string
}

// FileName returns the file an icon is read from, relative to the asset directory
func FileName(d world.Direction) string {
	return fileNames[d]
}

// Glyph returns the text form of a direction's arrow
func Glyph(d world.Direction) string {
	return glyphs[d]
}

// Loader fetches the four arrow icons on a background goroutine
type Loader struct {
	dir  string
	size int

	mu    sync.RWMutex
	icons map[world.Direction]Icon

	once sync.Once
	done chan struct{}
}

// NewLoader creates a loader reading PNGs from dir. An empty dir skips the
// files and rasterizes every icon at size pixels.
func NewLoader(dir string, size int) *Loader {
	if size <= 0 {
		size = DefaultSize
	}
	return &Loader{
		dir:   dir,
		size:  size,
		icons: make(map[world.Direction]Icon),
		done:  make(chan struct{}),
	}
}

// Start begins loading. Calling it more than once has no effect.
func (l *Loader) Start() {
	l.once.Do(func() {
		go l.load()
	})
}

// Done is closed once every icon has been published
func (l *Loader) Done() <-chan struct{} {
	return l.done
}

// Icon returns the icon for d, or false if it is not loaded yet
func (l *Loader) Icon(d world.Direction) (Icon, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	icon, ok := l.icons[d]
	return icon, ok
}

func (l *Loader) load() {
	defer close(l.done)

	fromDisk := 0
	for _, d := range world.AllDirections() {
		img, err := l.readFile(d)
		switch {
		case err == nil:
			fromDisk++
		case errors.Is(err, ErrMissingIcon):
			img = Rasterize(d, l.size)
		default:
			log.Warn().Err(err).Stringer("direction", d).Msg("falling back to built-in arrow")
			img = Rasterize(d, l.size)
		}
		l.publish(Icon{Direction: d, Image: img, Glyph: glyphs[d]})
	}

	log.Debug().Int("from_disk", fromDisk).Str("dir", l.dir).Msg("arrow icons loaded")
}

func (l *Loader) publish(icon Icon) {
	l.mu.Lock()
	l.icons[icon.Direction] = icon
	l.mu.Unlock()
}

func (l *Loader) readFile(d world.Direction) (image.Image, error) {
	if l.dir == "" {
		return nil, ErrMissingIcon
	}
	path := filepath.Join(l.dir, FileName(d))

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrMissingIcon)
	}
	if err != nil {
		return nil, fmt.Errorf("open icon: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
