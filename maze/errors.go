package maze

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/mazesolver/geometry"
)

// Fatal parse errors. They are returned wrapped in a *ParseError when a
// position is known.
var (
	ErrEmpty       = errors.New("maze is empty")
	ErrInvalidTile = errors.New("invalid maze character")
	ErrRaggedRow   = errors.New("row length differs from the first row")
	ErrOpenBorder  = errors.New("border tile is not a wall")
	ErrNoStart     = errors.New("maze has no start")
	ErrNoExit      = errors.New("maze has no exit")
)

// ParseError locates a fatal error in the maze text. Line and Column are
// 1-based; Column counts characters, not bytes.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Warning is a non-fatal anomaly: a start or exit seen more than once.
// The latest sighting wins.
type Warning struct {
	Tile     Tile
	At       geometry.Point
	Previous geometry.Point
}

func (w Warning) String() string {
	name := "start"
	if w.Tile == Exit {
		name = "exit"
	}
	return fmt.Sprintf("duplicate %s at %v replaces %v", name, w.At, w.Previous)
}

// Warnings collects every non-fatal anomaly found while parsing.
type Warnings []Warning

// Any reports whether at least one warning was raised.
func (w Warnings) Any() bool {
	return len(w) > 0
}
