package generate

import "github.com/beka-birhanu/mazesolver/geometry"

// Cell represents a single room of a generated maze.
type Cell struct {
	NorthWall bool // Wall on the north side is standing
	EastWall  bool // Wall on the east side is standing
	SouthWall bool // Wall on the south side is standing
	WestWall  bool // Wall on the west side is standing
	Decor     rune // Pass-through glyph drawn in the room; 0 for bare floor
}

func newCell() *Cell {
	return &Cell{NorthWall: true, EastWall: true, SouthWall: true, WestWall: true}
}

// wall returns the flag of the wall on side dir.
func (c *Cell) wall(dir geometry.Direction) *bool {
	switch dir {
	case geometry.North:
		return &c.NorthWall
	case geometry.East:
		return &c.EastWall
	case geometry.South:
		return &c.SouthWall
	default:
		return &c.WestWall
	}
}

// HasWall reports whether the wall on side dir is standing.
func (c *Cell) HasWall(dir geometry.Direction) bool {
	return *c.wall(dir)
}
