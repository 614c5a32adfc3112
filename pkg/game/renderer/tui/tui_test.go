package tui

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	gcolor "github.com/gookit/color"

	"pathrecall/pkg/engine/world"
	"pathrecall/pkg/game/assets"
	"pathrecall/pkg/game/gameplay"
	"pathrecall/pkg/game/level"
	"pathrecall/pkg/game/renderer"
	"pathrecall/pkg/game/state"
)

func lines(c *Canvas) []string {
	return strings.Split(strings.TrimSuffix(c.Text(), "\n"), "\n")
}

func TestCanvas_GridLines(t *testing.T) {
	c := NewCanvas()
	c.DrawGridLines(renderer.ColorGrid)
	rows := lines(c)

	if len(rows) != surfaceRows+1 {
		t.Fatalf("rows = %d, want %d", len(rows), surfaceRows+1)
	}
	want := "┌───────┬───────┬───────┬───────┬───────┐"
	if rows[0] != want {
		t.Errorf("top row = %q, want %q", rows[0], want)
	}
	if got := []rune(rows[4])[8]; got != '┼' {
		t.Errorf("inner crossing = %q, want ┼", got)
	}
	if got := []rune(rows[2])[0]; got != '│' {
		t.Errorf("left edge = %q, want │", got)
	}
	if got := []rune(rows[surfaceRows])[surfaceCols]; got != '┘' {
		t.Errorf("bottom right = %q, want ┘", got)
	}
}

func TestCanvas_RectAndBlend(t *testing.T) {
	c := NewCanvas()
	w, h := c.Size()

	c.DrawRect(world.CellRect(world.Point{X: 1, Y: 1}, renderer.PlayerMargin, w, h), renderer.ColorPlayer)
	if got := c.Background(10, 6); got != renderer.ColorPlayer {
		t.Errorf("inside player = %v, want %v", got, renderer.ColorPlayer)
	}
	if got := c.Background(8, 4); got == renderer.ColorPlayer {
		t.Error("player square reaches the cell corner")
	}

	c.DrawRect(world.CellRect(world.Point{X: 3, Y: 3}, 0, w, h), color.NRGBA{100, 100, 100, 128})
	got := c.Background(26, 14)
	// 100*128/255 + 40*127/255 = 50 + 19
	if got.R != 70 && got.R != 69 {
		t.Errorf("blended red = %d, want about 70", got.R)
	}
}

func TestCanvas_TextSurvivesGrid(t *testing.T) {
	c := NewCanvas()
	c.DrawText("Press R to try again", 8, 14.4, renderer.Font{}, renderer.ColorSubtle)
	c.DrawGridLines(renderer.ColorGrid)

	if row := lines(c)[14]; !strings.Contains(row, "Press R to try again") {
		t.Errorf("row 14 = %q, text overwritten", row)
	}
}

func TestCanvas_IconGlyph(t *testing.T) {
	c := NewCanvas()
	w, h := c.Size()
	c.DrawImage(assets.Icon{Direction: world.Left}, world.CellRect(world.Point{X: 0, Y: 0}, 0, w, h))
	if got := []rune(lines(c)[2])[4]; got != '←' {
		t.Errorf("glyph = %q, want ←", got)
	}
}

func TestCanvas_WriteTo(t *testing.T) {
	c := NewCanvas()
	c.DrawGridLines(renderer.ColorGrid)

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	plain := gcolor.ClearCode(buf.String())
	if got := strings.Count(plain, "\r\n"); got != surfaceRows+1 {
		t.Errorf("line count = %d, want %d", got, surfaceRows+1)
	}
	if !strings.HasPrefix(plain, "┌───") {
		t.Errorf("output starts %q", plain[:12])
	}
}

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

func newTestRenderer(t *testing.T, in string) (*TUIRenderer, *fakeClock, *bytes.Buffer) {
	t.Helper()
	catalog, err := level.New(level.Default().Levels()[:1])
	if err != nil {
		t.Fatal(err)
	}
	e := gameplay.NewEngine(catalog, gameplay.WithRand(rand.New(rand.NewSource(9))))
	clock := &fakeClock{now: time.Unix(1000, 0)}
	out := &bytes.Buffer{}
	r := New(e, nil, WithIO(strings.NewReader(in), out), WithClock(clock.Now))
	return r, clock, out
}

func TestHandleKey_PlaysARound(t *testing.T) {
	r, clock, _ := newTestRenderer(t, "")
	r.Frame()
	clock.now = clock.now.Add(time.Second)
	r.Frame()

	s := r.driver.Engine().Session()
	if s.State != state.StateGame {
		t.Fatalf("state = %v, want Game", s.State)
	}
	for _, code := range []string{"arrow_down", "d", "j", "arrow_right", "s", "l"} {
		if r.HandleKey(code) {
			t.Fatalf("%s quit the game", code)
		}
	}
	if s.State != state.StateWon || s.Player != (world.Point{X: 3, Y: 3}) {
		t.Errorf("state %v player %v, want Won (3,3)", s.State, s.Player)
	}
}

func TestHandleKey_Quit(t *testing.T) {
	r, _, _ := newTestRenderer(t, "")
	for _, code := range []string{"q", "escape", "ctrl_c"} {
		if !r.HandleKey(code) {
			t.Errorf("%s did not quit", code)
		}
	}
	if r.HandleKey("z") {
		t.Error("unbound key quit")
	}
}

func TestFrame_WritesBoardAndStatus(t *testing.T) {
	r, _, out := newTestRenderer(t, "")
	r.Frame()

	plain := gcolor.ClearCode(out.String())
	if !strings.HasPrefix(plain, escHome) {
		t.Error("frame does not start at home position")
	}
	if !strings.Contains(plain, "┼") {
		t.Error("frame has no grid")
	}
	if !strings.Contains(plain, renderer.StatusLine(r.driver.Engine().Session())) {
		t.Error("frame has no status line")
	}
}

func TestRun_QuitsOnKey(t *testing.T) {
	r, _, out := newTestRenderer(t, "jq")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("Run only returned on timeout")
	}
	if !strings.HasSuffix(out.String(), escShowCursor+"\r\n") {
		t.Error("cursor not restored")
	}
}

func TestRun_StopsAtEndOfInput(t *testing.T) {
	r, _, _ := newTestRenderer(t, "")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRun_ClosesInputOnReturn(t *testing.T) {
	catalog, err := level.New(level.Default().Levels()[:1])
	if err != nil {
		t.Fatal(err)
	}
	e := gameplay.NewEngine(catalog, gameplay.WithRand(rand.New(rand.NewSource(9))))
	pr, pw := io.Pipe()
	r := New(e, nil, WithIO(pr, &bytes.Buffer{}))

	go pw.Write([]byte("q"))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := pw.Write([]byte("x")); !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("write after Run = %v, want io.ErrClosedPipe", err)
	}
}
