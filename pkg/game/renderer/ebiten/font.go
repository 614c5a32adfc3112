package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"pathrecall/pkg/game/renderer"
)

// loadFonts parses the embedded Go fonts
func (e *EbitenRenderer) loadFonts() error {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return fmt.Errorf("load bold font: %w", err)
	}
	e.regularSource = regular
	e.boldSource = bold
	return nil
}

// face returns a cached face for f
func (e *EbitenRenderer) face(f renderer.Font) *text.GoTextFace {
	if face, ok := e.faces[f]; ok {
		return face
	}
	src := e.regularSource
	if f.Bold {
		src = e.boldSource
	}
	face := &text.GoTextFace{
		Source: src,
		Size:   f.Size,
	}
	e.faces[f] = face
	return face
}
