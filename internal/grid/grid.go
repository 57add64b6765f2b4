// Package grid provides cell coordinates, continuous positions and tile layers.
package grid

import "math"

// Cell is one discrete grid coordinate.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by other.
func (c Cell) Add(other Cell) Cell {
	return Cell{X: c.X + other.X, Y: c.Y + other.Y}
}

// Scale returns the cell multiplied component-wise by n.
func (c Cell) Scale(n int) Cell {
	return Cell{X: c.X * n, Y: c.Y * n}
}

// Vec returns the world position of the cell's integer coordinate.
func (c Cell) Vec() Vec {
	return Vec{X: float64(c.X), Y: float64(c.Y)}
}

// Vec is a continuous world position.
type Vec struct {
	X, Y float64
}

// Add returns the sum of two positions.
func (v Vec) Add(other Vec) Vec {
	return Vec{X: v.X + other.X, Y: v.Y + other.Y}
}

// Round snaps the position to the nearest cell.
// Halves round away from zero on each axis.
func (v Vec) Round() Cell {
	return Cell{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}

// Direction is one of the four axis directions a blast travels in.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists the blast directions in propagation order.
var Directions = [...]Direction{Up, Down, Left, Right}

// Delta returns the unit cell step for the direction.
// Y grows upward, so Up is +Y.
func (d Direction) Delta() Cell {
	switch d {
	case Up:
		return Cell{X: 0, Y: 1}
	case Down:
		return Cell{X: 0, Y: -1}
	case Left:
		return Cell{X: -1, Y: 0}
	case Right:
		return Cell{X: 1, Y: 0}
	default:
		return Cell{}
	}
}

// Angle returns the rotation of the direction in radians, with Right at zero.
func (d Direction) Angle() float64 {
	delta := d.Delta()
	return math.Atan2(float64(delta.Y), float64(delta.X))
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
