/*
Package walker implements the agent that moves through a maze one step at a time.

A Walker is bound to a single Policy for its whole life. On every step the policy
picks a direction and the walker commits the move unless a wall is in the way.
*/
package walker

import (
	"errors"

	"github.com/beka-birhanu/mazesolver/geometry"
	"github.com/beka-birhanu/mazesolver/maze"
)

var (
	ErrNilMaze   = errors.New("walker needs a maze")
	ErrNilPolicy = errors.New("walker needs a policy")
)

// Policy chooses where a walker goes next.
type Policy interface {
	// Name is the registry name of the policy.
	Name() string

	// Description explains the policy in a sentence or two.
	Description() string

	// Init prepares the walker's state before the first step.
	Init(m *maze.Maze, w *Walker) error

	// Step returns the direction to move in. It returns false when the
	// walker has nowhere to go.
	Step(m *maze.Maze, w *Walker) (geometry.Direction, bool)

	// Free releases whatever Init set up.
	Free(w *Walker)
}

// Walker is a movable agent inside a maze.
type Walker struct {
	pos    geometry.Point // Current position
	policy Policy         // Policy bound for the walker's lifetime
	state  State          // Policy-owned memory
	steps  int64          // Number of completed step calls
	moves  int64          // Number of steps that changed the position
	closed bool
}

// New places a walker on the maze's start tile and initialises its policy.
func New(m *maze.Maze, p Policy) (*Walker, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	if p == nil {
		return nil, ErrNilPolicy
	}

	w := &Walker{
		pos:    m.Start(),
		policy: p,
		state:  NoState{},
	}
	if err := p.Init(m, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Position returns the walker's current position.
func (w *Walker) Position() geometry.Point {
	return w.pos
}

// Policy returns the policy bound to the walker.
func (w *Walker) Policy() Policy {
	return w.policy
}

// State returns the policy-owned state.
func (w *Walker) State() State {
	return w.state
}

// SetState replaces the policy-owned state. A nil state resets it to NoState.
func (w *Walker) SetState(s State) {
	if s == nil {
		s = NoState{}
	}
	w.state = s
}

// Steps returns how many steps the walker has taken, including steps that
// left it in place.
func (w *Walker) Steps() int64 {
	return w.steps
}

// Moves returns how many steps actually changed the walker's position.
func (w *Walker) Moves() int64 {
	return w.moves
}

// CanMove reports whether a step in dir from the current position is legal.
func (w *Walker) CanMove(m *maze.Maze, dir geometry.Direction) bool {
	if m == nil {
		return false
	}
	return !m.TileInDirection(w.pos, dir).IsWall()
}

// Step asks the policy for a direction and moves one tile that way if no wall
// blocks it. A blocked move or a policy with nowhere to go leaves the walker in
// place. Step reports false only when it could not run at all.
func (w *Walker) Step(m *maze.Maze) bool {
	if m == nil || w.closed {
		return false
	}

	w.steps++
	dir, ok := w.policy.Step(m, w)
	if !ok || !dir.Valid() {
		return true
	}
	if w.CanMove(m, dir) {
		w.pos = w.pos.Translate(dir)
		w.moves++
	}
	return true
}

// AtExit reports whether the walker stands on the maze's exit.
func (w *Walker) AtExit(m *maze.Maze) bool {
	if m == nil {
		return false
	}
	return w.pos.Equals(m.Exit())
}

// Close lets the policy release its state and leaves the walker with NoState.
// Calling Close more than once is harmless.
func (w *Walker) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.policy.Free(w)
	w.state = NoState{}
}
