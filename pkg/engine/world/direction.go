package world

// Direction represents a move on the grid
type Direction int

// Direction constants. None is a sentinel and never appears in a path.
const (
	None Direction = iota
	Up
	Down
	Right
	Left
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Up, Down, Right, Left}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case None:
		return "None"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Right:
		return "Right"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the four moves
func (d Direction) IsValid() bool {
	return d >= Up && d <= Left
}

// Delta returns the x and y offsets for this direction.
// Grid y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Right:
		return 1, 0
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}
