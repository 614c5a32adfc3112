package tui

import (
	"image/color"
	"io"
	"math"
	"strings"

	gcolor "github.com/gookit/color"

	"pathrecall/pkg/engine/world"
	"pathrecall/pkg/game/assets"
	"pathrecall/pkg/game/renderer"
)

// Character cells per grid cell. Terminal cells are about twice as tall
// as they are wide, so 8x4 looks square.
const (
	CellCols = 8
	CellRows = 4

	surfaceCols = world.GridWidth * CellCols
	surfaceRows = world.GridHeight * CellRows
)

var iconColor = color.NRGBA{235, 235, 235, 255}

type rgb [3]uint8

type charCell struct {
	ch   rune
	fg   rgb
	bg   rgb
	text bool
}

// Canvas is a character buffer implementing renderer.Canvas. One surface
// pixel is one terminal cell; grid lines sit on the cell boundaries, so
// the buffer is one column and one row larger than the surface.
type Canvas struct {
	cells [surfaceRows + 1][surfaceCols + 1]charCell
}

// NewCanvas creates a blank canvas
func NewCanvas() *Canvas {
	c := &Canvas{}
	c.Clear(renderer.ColorBackground)
	return c
}

func toRGB(col color.Color) (rgb, uint8) {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return rgb{n.R, n.G, n.B}, n.A
}

// blend mixes src over dst with alpha a
func blend(dst, src rgb, a uint8) rgb {
	if a == 255 {
		return src
	}
	var out rgb
	for i := range out {
		out[i] = uint8((int(src[i])*int(a) + int(dst[i])*(255-int(a))) / 255)
	}
	return out
}

func clampSpan(from, to float64, limit int) (int, int) {
	lo := int(from + 0.5)
	hi := int(to + 0.5)
	if lo < 0 {
		lo = 0
	}
	if hi > limit {
		hi = limit
	}
	return lo, hi
}

func (c *Canvas) Size() (int, int) {
	return surfaceCols, surfaceRows
}

func (c *Canvas) Clear(col color.Color) {
	bg, _ := toRGB(col)
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = charCell{ch: ' ', fg: bg, bg: bg}
		}
	}
}

func (c *Canvas) DrawRect(r world.Rect, col color.Color) {
	src, a := toRGB(col)
	x0, x1 := clampSpan(r.X, r.X+r.W, surfaceCols+1)
	y0, y1 := clampSpan(r.Y, r.Y+r.H, surfaceRows+1)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			cell := &c.cells[y][x]
			cell.bg = blend(cell.bg, src, a)
		}
	}
}

// DrawText writes text on the row just above baseline y. Font size is
// ignored. Grid lines never overwrite text.
func (c *Canvas) DrawText(text string, x, y float64, _ renderer.Font, col color.Color) {
	fg, _ := toRGB(col)
	row := int(math.Ceil(y)) - 1
	if row < 0 || row > surfaceRows {
		return
	}
	col0 := int(x)
	for i, ch := range []rune(text) {
		cx := col0 + i
		if cx < 0 || cx > surfaceCols {
			continue
		}
		cell := &c.cells[row][cx]
		cell.ch = ch
		cell.fg = fg
		cell.text = true
	}
}

// DrawImage puts the icon's glyph in the middle of r
func (c *Canvas) DrawImage(icon assets.Icon, r world.Rect) {
	glyph := icon.Glyph
	if glyph == "" {
		glyph = assets.Glyph(icon.Direction)
	}
	if glyph == "" {
		return
	}
	x := int(r.X + r.W/2)
	y := int(r.Y + r.H/2)
	if x < 0 || x > surfaceCols || y < 0 || y > surfaceRows {
		return
	}
	fg, _ := toRGB(iconColor)
	cell := &c.cells[y][x]
	cell.ch = []rune(glyph)[0]
	cell.fg = fg
}

// boxChars picks a line-drawing rune from which neighbours are lines:
// up, down, left, right.
var boxChars = map[[4]bool]rune{
	{true, true, false, false}: '│',
	{false, false, true, true}: '─',
	{false, true, false, true}: '┌',
	{false, true, true, false}: '┐',
	{true, false, false, true}: '└',
	{true, false, true, false}: '┘',
	{true, true, false, true}:  '├',
	{true, true, true, false}:  '┤',
	{false, true, true, true}:  '┬',
	{true, false, true, true}:  '┴',
	{true, true, true, true}:   '┼',
}

func isLineCol(x int) bool { return x%CellCols == 0 }
func isLineRow(y int) bool { return y%CellRows == 0 }

func (c *Canvas) DrawGridLines(col color.Color) {
	fg, _ := toRGB(col)
	for y := 0; y <= surfaceRows; y++ {
		for x := 0; x <= surfaceCols; x++ {
			onCol, onRow := isLineCol(x), isLineRow(y)
			if !onCol && !onRow {
				continue
			}
			key := [4]bool{
				onCol && y > 0,
				onCol && y < surfaceRows,
				onRow && x > 0,
				onRow && x < surfaceCols,
			}
			ch, ok := boxChars[key]
			if !ok {
				continue
			}
			cell := &c.cells[y][x]
			if cell.text {
				continue
			}
			cell.ch = ch
			cell.fg = fg
		}
	}
}

// Text returns the canvas characters without colour, one line per row
func (c *Canvas) Text() string {
	var sb strings.Builder
	for y := range c.cells {
		for x := range c.cells[y] {
			sb.WriteRune(c.cells[y][x].ch)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Background returns the background colour of one buffer cell
func (c *Canvas) Background(x, y int) color.NRGBA {
	bg := c.cells[y][x].bg
	return color.NRGBA{bg[0], bg[1], bg[2], 255}
}

func style(cell charCell) *gcolor.RGBStyle {
	return gcolor.NewRGBStyle(
		gcolor.RGB(cell.fg[0], cell.fg[1], cell.fg[2]),
		gcolor.RGB(cell.bg[0], cell.bg[1], cell.bg[2]),
	)
}

// WriteTo emits the buffer as truecolor text, merging runs of equal style.
// Lines end in "\r\n" because the terminal is in raw mode.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	for y := range c.cells {
		row := c.cells[y][:]
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].fg == row[start].fg && row[x].bg == row[start].bg {
				continue
			}
			var run strings.Builder
			for _, cell := range row[start:x] {
				run.WriteRune(cell.ch)
			}
			sb.WriteString(style(row[start]).Sprint(run.String()))
			start = x
		}
		sb.WriteString("\r\n")
	}
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}
