package solver

import (
	"github.com/beka-birhanu/mazesolver/geometry"
	"github.com/beka-birhanu/mazesolver/maze"
	"github.com/beka-birhanu/mazesolver/walker"
)

// WallFollower keeps a wall on its right hand.
type WallFollower struct{}

var _ walker.Policy = &WallFollower{}

// NewWallFollower creates a WallFollower policy.
func NewWallFollower() *WallFollower {
	return &WallFollower{}
}

// Name implements walker.Policy.
func (p *WallFollower) Name() string {
	return wallFollowerName
}

// Description implements walker.Policy.
func (p *WallFollower) Description() string {
	return wallFollowerDescription
}

// Init implements walker.Policy. The heading starts North and is turned
// clockwise until a wall is on the right hand. Without any wall next to the
// start it stays North.
func (p *WallFollower) Init(m *maze.Maze, w *walker.Walker) error {
	heading := geometry.North
	for i := 0; i < len(geometry.Directions); i++ {
		dir := geometry.Rotate(geometry.North, geometry.Right, i)
		if m.TileInDirection(w.Position(), geometry.Rotate(dir, geometry.Right, 1)).IsWall() {
			heading = dir
			break
		}
	}
	w.SetState(walker.LastDirection{Dir: heading})
	return nil
}

// Step implements walker.Policy. It tries right first, then turns left one
// quarter at a time until the way is open.
func (p *WallFollower) Step(m *maze.Maze, w *walker.Walker) (geometry.Direction, bool) {
	last, ok := w.State().(walker.LastDirection)
	if !ok {
		return 0, false
	}

	dir := geometry.Rotate(last.Dir, geometry.Right, 1)
	for n := 0; n < len(geometry.Directions); n++ {
		if w.CanMove(m, dir) {
			w.SetState(walker.LastDirection{Dir: dir})
			return dir, true
		}
		dir = geometry.Rotate(dir, geometry.Left, 1)
	}
	return 0, false
}

// Free implements walker.Policy.
func (p *WallFollower) Free(w *walker.Walker) {
	w.SetState(walker.NoState{})
}
