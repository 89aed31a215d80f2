/*
Package generate builds random perfect mazes with Wilson's algorithm.

A generated maze is a grid of rooms separated by walls. It renders to the
character format understood by the maze package: every room and every removed
wall becomes an open tile, the start sits in the top-left room and the exit in
the bottom-right one. Rooms may carry decoration glyphs that solvers walk over.
*/
package generate

import (
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/beka-birhanu/mazesolver/geometry"
	"github.com/beka-birhanu/mazesolver/maze"
)

const (
	maxMazeDimension = 500
)

var ErrInvalidDimensions = errors.New("invalid maze dimensions")

// WilsonMaze is a rectangular maze of rooms in which every room is reachable
// from every other by exactly one path.
type WilsonMaze struct {
	Width  int       // Number of room columns
	Height int       // Number of room rows
	Grid   [][]*Cell // Rooms indexed by row, then column
	rng    *rand.Rand
}

// New generates a maze of width x height rooms. The start and exit need two
// distinct rooms. A nil rng is replaced by a time-seeded one.
func New(width, height int, rng *rand.Rand) (*WilsonMaze, error) {
	if min(width, height) <= 0 || max(width, height) > maxMazeDimension || width*height < 2 {
		return nil, ErrInvalidDimensions
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	grid := make([][]*Cell, height)
	for row := range grid {
		grid[row] = make([]*Cell, width)
		for col := range grid[row] {
			grid[row][col] = newCell()
		}
	}

	m := &WilsonMaze{
		Width:  width,
		Height: height,
		Grid:   grid,
		rng:    rng,
	}
	m.generate()
	return m, nil
}

// Cell returns the room at p. X is the column and Y the row.
func (m *WilsonMaze) Cell(p geometry.Point) *Cell {
	return m.Grid[p.Y][p.X]
}

func (m *WilsonMaze) contains(p geometry.Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

func (m *WilsonMaze) randomCell() geometry.Point {
	return geometry.Point{X: m.rng.Intn(m.Width), Y: m.rng.Intn(m.Height)}
}

func (m *WilsonMaze) randomUnvisitedCell(visited map[geometry.Point]struct{}) geometry.Point {
	for {
		p := m.randomCell()
		if _, included := visited[p]; !included {
			return p
		}
	}
}

// neighbors lists the directions that lead to another room, in cycle order.
func (m *WilsonMaze) neighbors(p geometry.Point) []geometry.Direction {
	dirs := make([]geometry.Direction, 0, len(geometry.Directions))
	for _, dir := range geometry.Directions {
		if m.contains(p.Translate(dir)) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// openWall removes the wall between p and its neighbour in direction dir.
func (m *WilsonMaze) openWall(p geometry.Point, dir geometry.Direction) {
	*m.Cell(p).wall(dir) = false
	*m.Cell(p.Translate(dir)).wall(dir.Opposite()) = false
}

// randomWalk wanders from a random unvisited room until it hits the visited
// part of the maze. Only the last exit taken from each room is kept, which
// erases every loop the walk made.
func (m *WilsonMaze) randomWalk(visited map[geometry.Point]struct{}) (geometry.Point, map[geometry.Point]geometry.Direction) {
	start := m.randomUnvisitedCell(visited)
	exits := make(map[geometry.Point]geometry.Direction)

	for cell := start; ; {
		dirs := m.neighbors(cell)
		dir := dirs[m.rng.Intn(len(dirs))]
		exits[cell] = dir

		next := cell.Translate(dir)
		if _, included := visited[next]; included {
			break
		}
		cell = next
	}
	return start, exits
}

// generate carves the loop-erased walks into the grid until every room is part
// of the maze.
func (m *WilsonMaze) generate() {
	visited := map[geometry.Point]struct{}{m.randomCell(): {}}

	for len(visited) < m.Width*m.Height {
		start, exits := m.randomWalk(visited)
		for cell := start; ; {
			if _, included := visited[cell]; included {
				break
			}
			dir := exits[cell]
			m.openWall(cell, dir)
			visited[cell] = struct{}{}
			cell = cell.Translate(dir)
		}
	}
}

// Passages counts the removed walls between rooms.
func (m *WilsonMaze) Passages() int {
	n := 0
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			cell := m.Grid[row][col]
			if col+1 < m.Width && !cell.EastWall {
				n++
			}
			if row+1 < m.Height && !cell.SouthWall {
				n++
			}
		}
	}
	return n
}

// Start is the tile position of the start room.
func (m *WilsonMaze) Start() geometry.Point {
	return geometry.Point{X: 1, Y: 1}
}

// Exit is the tile position of the exit room.
func (m *WilsonMaze) Exit() geometry.Point {
	return geometry.Point{X: 2*m.Width - 1, Y: 2*m.Height - 1}
}

// Lines renders the maze as 2*Height+1 rows of 2*Width+1 tiles.
func (m *WilsonMaze) Lines() []string {
	rows := make([][]rune, 2*m.Height+1)
	for y := range rows {
		rows[y] = []rune(strings.Repeat(string(maze.Wall), 2*m.Width+1))
	}

	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			cell := m.Grid[row][col]
			y, x := 2*row+1, 2*col+1

			rows[y][x] = rune(maze.Open)
			if cell.Decor != 0 {
				rows[y][x] = cell.Decor
			}
			if !cell.EastWall && col+1 < m.Width {
				rows[y][x+1] = rune(maze.Open)
			}
			if !cell.SouthWall && row+1 < m.Height {
				rows[y+1][x] = rune(maze.Open)
			}
		}
	}

	start, exit := m.Start(), m.Exit()
	rows[start.Y][start.X] = rune(maze.Start)
	rows[exit.Y][exit.X] = rune(maze.Exit)

	lines := make([]string, len(rows))
	for y, r := range rows {
		lines[y] = string(r)
	}
	return lines
}

// Text renders the maze in the maze file format.
func (m *WilsonMaze) Text() string {
	return strings.Join(m.Lines(), "\n") + "\n"
}

// Maze parses the rendered maze.
func (m *WilsonMaze) Maze() (*maze.Maze, error) {
	parsed, _, err := maze.Parse(strings.NewReader(m.Text()))
	return parsed, err
}
