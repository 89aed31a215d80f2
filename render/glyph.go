package render

import (
	"github.com/beka-birhanu/mazesolver/geometry"
	"github.com/beka-birhanu/mazesolver/maze"
)

// Mask records which orthogonal neighbours of a wall tile are walls too.
// Bit 1<<d is set when the neighbour in direction d is a wall.
type Mask uint8

const (
	MaskNorth Mask = 1 << geometry.North
	MaskEast  Mask = 1 << geometry.East
	MaskSouth Mask = 1 << geometry.South
	MaskWest  Mask = 1 << geometry.West
)

// Has reports whether every bit of o is set in m.
func (m Mask) Has(o Mask) bool {
	return m&o == o
}

const (
	glyphFull       = "┼"
	glyphNoSouth    = "┴"
	glyphNoNorth    = "┬"
	glyphNoEast     = "┤"
	glyphNoWest     = "├"
	glyphNorthWest  = "┘"
	glyphNorthEast  = "└"
	glyphSouthWest  = "┐"
	glyphSouthEast  = "┌"
	glyphVertical   = "│"
	glyphHorizontal = "─"
	glyphIsolated   = "."
)

// glyphs is indexed by Mask.
var glyphs = func() [16]string {
	var table [16]string
	for i := range table {
		table[i] = resolveGlyph(Mask(i))
	}
	return table
}()

// WallGlyph returns the box-drawing glyph for a wall with the given neighbours.
func WallGlyph(m Mask) string {
	return glyphs[m&0xf]
}

// resolveGlyph matches the most specific shape first.
func resolveGlyph(m Mask) string {
	switch {
	case m.Has(MaskWest | MaskEast | MaskNorth | MaskSouth):
		return glyphFull
	case m.Has(MaskWest | MaskEast | MaskNorth):
		return glyphNoSouth
	case m.Has(MaskWest | MaskEast | MaskSouth):
		return glyphNoNorth
	case m.Has(MaskWest | MaskNorth | MaskSouth):
		return glyphNoEast
	case m.Has(MaskSouth | MaskNorth | MaskEast):
		return glyphNoWest
	case m.Has(MaskWest | MaskNorth):
		return glyphNorthWest
	case m.Has(MaskNorth | MaskEast):
		return glyphNorthEast
	case m.Has(MaskSouth | MaskWest):
		return glyphSouthWest
	case m.Has(MaskSouth | MaskEast):
		return glyphSouthEast
	case m&(MaskNorth|MaskSouth) != 0:
		return glyphVertical
	case m&(MaskWest|MaskEast) != 0:
		return glyphHorizontal
	default:
		return glyphIsolated
	}
}

// WallMask inspects the neighbours of p. Tiles outside the grid are not walls.
func WallMask(m *maze.Maze, p geometry.Point) Mask {
	var mask Mask
	for _, dir := range geometry.Directions {
		n := p.Translate(dir)
		if m.Contains(n) && m.At(n).IsWall() {
			mask |= 1 << dir
		}
	}
	return mask
}
