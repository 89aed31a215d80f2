package generate

import (
	"errors"
	"math"
	"unicode"

	"github.com/beka-birhanu/mazesolver/geometry"
	"github.com/beka-birhanu/mazesolver/maze"
)

var ErrInvalidDecorModel = errors.New("invalid decor model")

// DecorModel defines how rooms are decorated.
// Density is the base probability of decorating a room; rooms closer to the
// centre of the maze are decorated slightly more often.
type DecorModel struct {
	Glyphs  []rune  // Candidate glyphs, picked uniformly
	Density float32 // Base probability of decorating a room (0.0 to 1.0)
}

func (d DecorModel) validate() error {
	if d.Density < 0 || d.Density > 1 || len(d.Glyphs) == 0 {
		return ErrInvalidDecorModel
	}
	for _, g := range d.Glyphs {
		switch maze.Tile(g) {
		case maze.Wall, maze.Start, maze.Exit, maze.Open:
			return ErrInvalidDecorModel
		}
		if !unicode.IsPrint(g) {
			return ErrInvalidDecorModel
		}
	}
	return nil
}

// Decorate walks every room reachable from the start room and scatters
// glyphs from d over them. The start and exit rooms stay bare.
func (m *WilsonMaze) Decorate(d DecorModel) error {
	if err := d.validate(); err != nil {
		return err
	}

	first := geometry.Point{X: 0, Y: 0}
	last := geometry.Point{X: m.Width - 1, Y: m.Height - 1}
	visited := map[geometry.Point]struct{}{first: {}}
	stack := []geometry.Point{first}

	for len(stack) > 0 {
		cell := pop(&stack)
		room := m.Cell(cell)
		room.Decor = 0
		if cell != first && cell != last && m.rng.Float32() < calcProb(d.Density, cell, m.Width, m.Height) {
			room.Decor = d.Glyphs[m.rng.Intn(len(d.Glyphs))]
		}

		for _, dir := range m.neighbors(cell) {
			next := cell.Translate(dir)
			if room.HasWall(dir) {
				continue
			}
			if _, seen := visited[next]; !seen {
				visited[next] = struct{}{}
				stack = append(stack, next)
			}
		}
	}
	return nil
}

// pop removes and returns the last element of a stack.
func pop(s *[]geometry.Point) geometry.Point {
	last := len(*s) - 1
	popped := (*s)[last]
	*s = (*s)[:last]
	return popped
}

// calcProb raises the base probability p for rooms near the centre, scaled by
// their normalised Manhattan distance to it.
func calcProb(p float32, cell geometry.Point, width, height int) float32 {
	midRow, midCol := height/2, width/2
	maxDist := float64(midRow + midCol)
	if maxDist == 0 {
		return p
	}

	dist := math.Abs(float64(cell.Y-midRow)) + math.Abs(float64(cell.X-midCol))
	closeness := 1.0 - dist/maxDist

	return min(p+(1-p)*float32(closeness)/10, 1)
}
