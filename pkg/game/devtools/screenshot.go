// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pathrecall/pkg/engine/world"
	"pathrecall/pkg/game/assets"
	"pathrecall/pkg/game/config"
	"pathrecall/pkg/game/renderer"
	"pathrecall/pkg/game/state"
)

// ScreenshotSize is the edge of the square SVG surface
const ScreenshotSize = 500

// svgCanvas records canvas calls as SVG elements
type svgCanvas struct {
	w, h int
	body strings.Builder
}

func newSVGCanvas(w, h int) *svgCanvas {
	return &svgCanvas{w: w, h: h}
}

func svgColor(c color.Color) (fill string, opacity float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("rgb(%d,%d,%d)", n.R, n.G, n.B), float64(n.A) / 255
}

func (s *svgCanvas) Size() (int, int) {
	return s.w, s.h
}

func (s *svgCanvas) Clear(c color.Color) {
	s.body.Reset()
	s.DrawRect(world.Rect{W: float64(s.w), H: float64(s.h)}, c)
}

func (s *svgCanvas) DrawRect(r world.Rect, c color.Color) {
	fill, op := svgColor(c)
	fmt.Fprintf(&s.body, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" fill-opacity="%.2f"/>`+"\n",
		r.X, r.Y, r.W, r.H, fill, op)
}

func (s *svgCanvas) DrawText(text string, x, y float64, font renderer.Font, c color.Color) {
	fill, _ := svgColor(c)
	weight := "normal"
	if font.Bold {
		weight = "bold"
	}
	fmt.Fprintf(&s.body, `<text x="%.2f" y="%.2f" font-family="serif" font-size="%.1f" font-weight="%s" fill="%s">%s</text>`+"\n",
		x, y, font.Size, weight, fill, html.EscapeString(text))
}

func (s *svgCanvas) DrawImage(icon assets.Icon, r world.Rect) {
	if icon.Image == nil {
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, icon.Image); err != nil {
		return
	}
	fmt.Fprintf(&s.body, `<image x="%.2f" y="%.2f" width="%.2f" height="%.2f" href="data:image/png;base64,%s"/>`+"\n",
		r.X, r.Y, r.W, r.H, base64.StdEncoding.EncodeToString(buf.Bytes()))
}

func (s *svgCanvas) DrawGridLines(c color.Color) {
	stroke, _ := svgColor(c)
	for x := 0; x < world.GridWidth; x++ {
		for y := 0; y < world.GridHeight; y++ {
			r := world.CellRect(world.Point{X: x, Y: y}, 0, s.w, s.h)
			fmt.Fprintf(&s.body, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="%s"/>`+"\n",
				r.X, r.Y, r.W, r.H, stroke)
		}
	}
}

func (s *svgCanvas) String() string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n%s</svg>\n",
		s.w, s.h, s.w, s.h, s.body.String())
}

// RenderSVG paints s the same way the game window does and returns an SVG document
func RenderSVG(s *state.Session, icons renderer.IconSource) string {
	c := newSVGCanvas(ScreenshotSize, ScreenshotSize)
	c.Clear(renderer.ColorBackground)
	renderer.Paint(c, s, icons)
	return c.String()
}

// SaveScreenshotSVG saves the current board as an SVG file in the
// configured screenshot directory
func SaveScreenshotSVG(s *state.Session, icons renderer.IconSource) (string, error) {
	return saveScreenshotSVG(config.Current().ScreenshotDir, time.Now(), s, icons)
}

func saveScreenshotSVG(dir string, now time.Time, s *state.Session, icons renderer.IconSource) (string, error) {
	filename := fmt.Sprintf("screenshot-%s.svg", now.Format("20060102-150405"))
	path, err := filepath.Abs(filepath.Join(dir, filename))
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("screenshot dir: %w", err)
	}

	if err := os.WriteFile(path, []byte(RenderSVG(s, icons)), 0o644); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}
