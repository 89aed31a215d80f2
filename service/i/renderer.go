package i

import (
	"github.com/beka-birhanu/mazesolver/maze"
	"github.com/beka-birhanu/mazesolver/walker"
)

// Renderer draws the state of a run.
type Renderer interface {
	// Clear wipes the output once before the first frame.
	Clear() error

	// Render draws the maze and the walker's current position.
	Render(m *maze.Maze, w *walker.Walker) error
}
