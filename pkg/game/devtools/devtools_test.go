package devtools

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pathrecall/pkg/engine/world"
	"pathrecall/pkg/game/assets"
	"pathrecall/pkg/game/config"
	"pathrecall/pkg/game/level"
	"pathrecall/pkg/game/renderer"
	"pathrecall/pkg/game/state"
)

func staircase() level.Level {
	return level.Default().Levels()[0]
}

func TestWriteLevelMap(t *testing.T) {
	var sb strings.Builder
	if err := WriteLevelMap(&sb, staircase()); err != nil {
		t.Fatal(err)
	}
	want := "Staircase  start: (0,0)  end: (3,3)  moves: 6\n" +
		"  path: Down,Right,Down,Right,Down,Right\n" +
		"  S....\n" +
		"  >v...\n" +
		"  .>v..\n" +
		"  ..>E.\n" +
		"  .....\n"
	if sb.String() != want {
		t.Errorf("WriteLevelMap =\n%s\nwant\n%s", sb.String(), want)
	}
}

func TestWriteCatalog(t *testing.T) {
	var sb strings.Builder
	c := level.Default()
	if err := WriteCatalog(&sb, c); err != nil {
		t.Fatal(err)
	}
	for _, l := range c.Levels() {
		if !strings.Contains(sb.String(), l.Name+"  start:") {
			t.Errorf("catalog output is missing %s", l.Name)
		}
	}
}

type readyIcons struct{}

func (readyIcons) Icon(d world.Direction) (assets.Icon, bool) {
	return assets.Icon{Direction: d, Image: assets.Rasterize(d, 8), Glyph: assets.Glyph(d)}, true
}

func TestRenderSVG_PathView(t *testing.T) {
	s := state.NewSession(2 * time.Second)
	s.StartRound(staircase(), time.Unix(0, 0))
	s.State = state.StatePathView

	svg := RenderSVG(s, readyIcons{})
	if !strings.HasPrefix(svg, "<svg ") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Fatal("not an svg document")
	}
	if got := strings.Count(svg, "<image "); got != 6 {
		t.Errorf("images = %d, want 6", got)
	}
	if got := strings.Count(svg, `fill="none"`); got != world.GridWidth*world.GridHeight {
		t.Errorf("grid cells = %d, want %d", got, world.GridWidth*world.GridHeight)
	}
	// background, finish, player, six markers, 25 grid cells
	if got := strings.Count(svg, "<rect "); got != 1+2+6+25 {
		t.Errorf("rects = %d, want %d", got, 1+2+6+25)
	}
}

func TestRenderSVG_EscapesText(t *testing.T) {
	c := newSVGCanvas(100, 100)
	c.DrawText("<b>&", 0, 0, renderer.Font{Size: 10}, color.Black)
	if !strings.Contains(c.String(), "&lt;b&gt;&amp;") {
		t.Errorf("text not escaped: %s", c.String())
	}
}

func TestSaveScreenshotSVG_UsesConfiguredDir(t *testing.T) {
	old := config.Current()
	t.Cleanup(func() { config.Set(old) })

	cfg := config.Default()
	cfg.ScreenshotDir = filepath.Join(t.TempDir(), "shots")
	config.Set(cfg)

	s := state.NewSession(2 * time.Second)
	s.StartRound(staircase(), time.Unix(0, 0))
	s.State = state.StatePathView

	path, err := SaveScreenshotSVG(s, readyIcons{})
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(path) != cfg.ScreenshotDir {
		t.Errorf("saved to %s, want a file in %s", path, cfg.ScreenshotDir)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error(err)
	}
}

func TestSaveScreenshotSVG(t *testing.T) {
	dir := t.TempDir()
	s := state.NewSession(2 * time.Second)
	s.StartRound(staircase(), time.Unix(0, 0))
	s.State = state.StateWon

	now := time.Date(2024, 3, 2, 1, 2, 3, 0, time.UTC)
	path, err := saveScreenshotSVG(dir, now, s, nil)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "screenshot-20240302-010203.svg" {
		t.Errorf("file name = %s", filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<text ") {
		t.Error("won screenshot has no text")
	}
}
