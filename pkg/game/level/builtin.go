package level

import "pathrecall/pkg/engine/world"

var builtin = []Level{
	{
		Name:  "Staircase",
		Start: world.Point{X: 0, Y: 0},
		End:   world.Point{X: 3, Y: 3},
		Path: []world.Direction{
			world.Down, world.Right,
			world.Down, world.Right,
			world.Down, world.Right,
		},
	},
	{
		Name:  "Hook",
		Start: world.Point{X: 1, Y: 4},
		End:   world.Point{X: 4, Y: 0},
		Path: []world.Direction{
			world.Up, world.Up, world.Up,
			world.Right, world.Right,
			world.Down,
			world.Right,
			world.Up, world.Up,
		},
	},
	{
		Name:  "Hurdle",
		Start: world.Point{X: 0, Y: 4},
		End:   world.Point{X: 4, Y: 4},
		Path: []world.Direction{
			world.Up, world.Up,
			world.Right, world.Right,
			world.Down, world.Down,
			world.Right, world.Right,
		},
	},
	{
		Name:  "Descent",
		Start: world.Point{X: 4, Y: 0},
		End:   world.Point{X: 0, Y: 4},
		Path: []world.Direction{
			world.Left, world.Left,
			world.Down, world.Down,
			world.Left,
			world.Down,
			world.Left,
			world.Down,
		},
	},
	{
		Name:  "Spiral",
		Start: world.Point{X: 2, Y: 2},
		End:   world.Point{X: 1, Y: 0},
		Path: []world.Direction{
			world.Up,
			world.Right,
			world.Down, world.Down,
			world.Left, world.Left,
			world.Up, world.Up, world.Up,
		},
	},
}
