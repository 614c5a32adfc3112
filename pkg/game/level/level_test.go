package level

import (
	"errors"
	"math/rand"
	"testing"

	"pathrecall/pkg/engine/world"
)

func TestBuiltinLevelsAreConsistent(t *testing.T) {
	for _, l := range Default().Levels() {
		t.Run(l.Name, func(t *testing.T) {
			if len(l.Path) < 1 {
				t.Fatal("path is empty")
			}
			got := l.Start
			for _, d := range l.Path {
				got = got.Step(d)
			}
			if got != l.End {
				t.Errorf("walking the path from %v ends at %v, want %v", l.Start, got, l.End)
			}
		})
	}
}

func TestNew_Empty(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("New(nil) error = %v, want ErrEmptyCatalog", err)
	}
}

func TestNew_RejectsInvalidLevels(t *testing.T) {
	tests := []struct {
		name  string
		level Level
	}{
		{"empty path", Level{Name: "a", Start: world.Point{X: 0, Y: 0}, End: world.Point{X: 0, Y: 0}}},
		{"wrong end", Level{Name: "b", End: world.Point{X: 2, Y: 2}, Path: []world.Direction{world.Down}}},
		{"leaves grid", Level{Name: "c", End: world.Point{X: 0, Y: 0}, Path: []world.Direction{world.Up, world.Down}}},
		{"none direction", Level{Name: "d", End: world.Point{X: 0, Y: 0}, Path: []world.Direction{world.None}}},
		{"start off grid", Level{Name: "e", Start: world.Point{X: 7, Y: 0}, End: world.Point{X: 7, Y: 1}, Path: []world.Direction{world.Down}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New([]Level{tt.level}); !errors.Is(err, ErrInvalidLevel) {
				t.Errorf("New(%s) error = %v, want ErrInvalidLevel", tt.name, err)
			}
		})
	}
}

func TestPick_ReturnsCopy(t *testing.T) {
	src := Level{
		Name:  "only",
		Start: world.Point{X: 0, Y: 0},
		End:   world.Point{X: 1, Y: 1},
		Path:  []world.Direction{world.Down, world.Right},
	}
	c, err := New([]Level{src})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Mutating the input after construction must not reach the catalog.
	src.Path[0] = world.Left

	picked := c.Pick(rand.New(rand.NewSource(1)))
	if picked.Path[0] != world.Down {
		t.Fatalf("catalog aliased caller slice: first move = %v", picked.Path[0])
	}

	// Consuming the picked path must not reach the catalog either.
	picked.Path = picked.Path[1:]
	picked.Path[0] = world.Up

	again := c.Pick(rand.New(rand.NewSource(2)))
	if len(again.Path) != 2 || again.Path[0] != world.Down || again.Path[1] != world.Right {
		t.Errorf("catalog path changed after mutating a picked copy: %v", again.Path)
	}
}

func TestPick_CoversCatalog(t *testing.T) {
	c := Default()
	rng := rand.New(rand.NewSource(7))
	seen := make(map[string]int)
	for i := 0; i < 500; i++ {
		seen[c.Pick(rng).Name]++
	}
	if len(seen) != c.Len() {
		t.Errorf("500 picks saw %d distinct levels, want %d", len(seen), c.Len())
	}
}
