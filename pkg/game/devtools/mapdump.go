package devtools

import (
	"fmt"
	"io"
	"strings"

	"pathrecall/pkg/engine/world"
	"pathrecall/pkg/game/level"
)

// pathSymbol returns the map symbol for a move leaving a cell
func pathSymbol(d world.Direction) rune {
	switch d {
	case world.Up:
		return '^'
	case world.Down:
		return 'v'
	case world.Right:
		return '>'
	case world.Left:
		return '<'
	default:
		return '?'
	}
}

// levelGrid lays a level out as text: S start, E end, arrows for each move
// on the cell it is made from, '.' for unused cells.
func levelGrid(l level.Level) [world.GridHeight][world.GridWidth]rune {
	var g [world.GridHeight][world.GridWidth]rune
	for y := range g {
		for x := range g[y] {
			g[y][x] = '.'
		}
	}

	p := l.Start
	for _, d := range l.Path {
		if world.InBounds(p) {
			g[p.Y][p.X] = pathSymbol(d)
		}
		p = p.Step(d)
	}
	if world.InBounds(l.Start) {
		g[l.Start.Y][l.Start.X] = 'S'
	}
	if world.InBounds(l.End) {
		g[l.End.Y][l.End.X] = 'E'
	}
	return g
}

// WriteLevelMap writes a level's name, coordinates and layout to w
func WriteLevelMap(w io.Writer, l level.Level) error {
	moves := make([]string, len(l.Path))
	for i, d := range l.Path {
		moves[i] = d.String()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  start: %s  end: %s  moves: %d\n", l.Name, l.Start, l.End, len(l.Path))
	fmt.Fprintf(&sb, "  path: %s\n", strings.Join(moves, ","))
	for _, row := range levelGrid(l) {
		sb.WriteString("  ")
		sb.WriteString(string(row[:]))
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteCatalog writes every level of c, separated by blank lines
func WriteCatalog(w io.Writer, c *level.Catalog) error {
	for i, l := range c.Levels() {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := WriteLevelMap(w, l); err != nil {
			return fmt.Errorf("level %q: %w", l.Name, err)
		}
	}
	return nil
}
