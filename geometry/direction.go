package geometry

import "fmt"

// Direction is one of the four compass directions. The values form a cycle
// in clockwise order so that rotation is modulo arithmetic.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

const directionCount = 4

// Directions lists every direction in cycle order.
var Directions = [directionCount]Direction{North, East, South, West}

// Rotation is the sense in which a direction is turned.
type Rotation int

const (
	Left  Rotation = iota // Counter-clockwise
	Right                 // Clockwise
)

// Rotate turns dir n steps around the cycle. Negative n turns the other way.
func Rotate(dir Direction, rot Rotation, n int) Direction {
	if rot == Left {
		n = -n
	}
	return Direction(mod(int(dir)+n, directionCount))
}

// mod is the non-negative remainder of a divided by m.
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return Rotate(d, Right, 2)
}

// Delta returns the column and row offsets of a single step in d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

func (r Rotation) String() string {
	if r == Left {
		return "Left"
	}
	return "Right"
}
