/*
Package maze provides the text maze model and its validating parser.

A maze is a rectangular grid of tiles read from plain text: '#' is a wall, 'S' the
start, 'E' the exit and ' ' open floor. Any other printable character is kept as
decorative terrain that can be walked on. Every border tile must be a wall.

Once parsed, a Maze is read-only.
*/
package maze

import (
	"fmt"
	"strings"

	"github.com/beka-birhanu/mazesolver/geometry"
	"github.com/cespare/xxhash/v2"
)

// Tile is a single character of the maze grid.
type Tile rune

// Tile characters as found in a maze file.
const (
	Wall  Tile = '#'
	Start Tile = 'S'
	Exit  Tile = 'E'
	Open  Tile = ' '
)

// IsWall reports whether the tile blocks movement.
func (t Tile) IsWall() bool {
	return t == Wall
}

func (t Tile) String() string {
	return string(t)
}

// Maze is a parsed, validated maze.
type Maze struct {
	rows  int
	cols  int
	grid  [][]Tile
	start geometry.Point
	exit  geometry.Point
}

// Rows returns the number of rows in the grid.
func (m *Maze) Rows() int {
	return m.rows
}

// Cols returns the number of columns in the grid.
func (m *Maze) Cols() int {
	return m.cols
}

// Start returns the recorded start position.
func (m *Maze) Start() geometry.Point {
	return m.start
}

// Exit returns the recorded exit position.
func (m *Maze) Exit() geometry.Point {
	return m.exit
}

// Contains reports whether p lies inside the grid.
func (m *Maze) Contains(p geometry.Point) bool {
	return p.X >= 0 && p.X < m.cols && p.Y >= 0 && p.Y < m.rows
}

// At returns the tile at p. Points outside the grid read as walls.
func (m *Maze) At(p geometry.Point) Tile {
	if !m.Contains(p) {
		return Wall
	}
	return m.grid[p.Y][p.X]
}

// TileInDirection returns the tile one step from p in dir.
func (m *Maze) TileInDirection(p geometry.Point, dir geometry.Direction) Tile {
	return m.At(p.Translate(dir))
}

// String returns the maze as text, one line per row.
func (m *Maze) String() string {
	var b strings.Builder
	b.Grow(m.rows * (m.cols + 1))
	for _, row := range m.grid {
		for _, t := range row {
			b.WriteRune(rune(t))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Fingerprint identifies the maze layout. Two mazes with identical text share
// a fingerprint.
func (m *Maze) Fingerprint() string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(m.String()))
}
