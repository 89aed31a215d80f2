/*
Package geometry provides the point and direction primitives the maze, the walker
and the renderer share.

Coordinates follow the maze text: X grows to the right along a row, Y grows
downward from the first line.
*/
package geometry

import "fmt"

// Point is a position on the maze grid.
type Point struct {
	X int // Column index
	Y int // Row index
}

// Translate returns the point one step away from p in the given direction.
func (p Point) Translate(dir Direction) Point {
	dx, dy := dir.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Equals reports whether both points share the same coordinates.
func (p Point) Equals(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
