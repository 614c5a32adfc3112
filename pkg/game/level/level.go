// Package level holds the fixed catalog of paths the player has to memorize.
package level

import (
	"errors"
	"fmt"
	"math/rand"

	"pathrecall/pkg/engine/world"
)

var (
	ErrEmptyCatalog = errors.New("level catalog is empty")
	ErrInvalidLevel = errors.New("invalid level")
)

// Level is one memorization round: walk Path from Start to reach End.
// Levels are never mutated; use Clone before handing a path to a session.
type Level struct {
	Name  string
	Start world.Point
	End   world.Point
	Path  []world.Direction
}

// Clone returns a deep copy of the level
func (l Level) Clone() Level {
	c := l
	c.Path = make([]world.Direction, len(l.Path))
	copy(c.Path, l.Path)
	return c
}

// Validate checks that the path is non-empty, stays on the grid, and ends on End.
func (l Level) Validate() error {
	if len(l.Path) == 0 {
		return fmt.Errorf("%w %q: empty path", ErrInvalidLevel, l.Name)
	}
	if !world.InBounds(l.Start) {
		return fmt.Errorf("%w %q: start %v is off the grid", ErrInvalidLevel, l.Name, l.Start)
	}

	p := l.Start
	for i, d := range l.Path {
		if !d.IsValid() {
			return fmt.Errorf("%w %q: step %d has direction %v", ErrInvalidLevel, l.Name, i, d)
		}
		p = p.Step(d)
		if !world.InBounds(p) {
			return fmt.Errorf("%w %q: step %d leaves the grid at %v", ErrInvalidLevel, l.Name, i, p)
		}
	}

	if p != l.End {
		return fmt.Errorf("%w %q: path ends at %v, want %v", ErrInvalidLevel, l.Name, p, l.End)
	}
	return nil
}

// Catalog is an immutable, validated set of levels
type Catalog struct {
	levels []Level
}

// New validates levels and builds a catalog from copies of them.
func New(levels []Level) (*Catalog, error) {
	if len(levels) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{levels: make([]Level, 0, len(levels))}
	for _, l := range levels {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		c.levels = append(c.levels, l.Clone())
	}
	return c, nil
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := New(builtin)
	if err != nil {
		// built-in levels are static
		panic(err)
	}
	return c
}

// Len returns the number of levels
func (c *Catalog) Len() int {
	return len(c.levels)
}

// Levels returns deep copies of every level in catalog order
func (c *Catalog) Levels() []Level {
	out := make([]Level, len(c.levels))
	for i, l := range c.levels {
		out[i] = l.Clone()
	}
	return out
}

// Pick chooses a level uniformly at random and returns a deep copy of it.
func (c *Catalog) Pick(rng *rand.Rand) Level {
	return c.levels[rng.Intn(c.Len())].Clone()
}
