package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/beka-birhanu/mazesolver/geometry"
	"github.com/beka-birhanu/mazesolver/maze"
	"github.com/beka-birhanu/mazesolver/walker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const small = "#####\n#S  #\n# # #\n#  E#\n#####\n"

// stay never moves.
type stay struct{}

func (stay) Name() string                              { return "stay" }
func (stay) Description() string                       { return "stays put" }
func (stay) Init(_ *maze.Maze, _ *walker.Walker) error { return nil }
func (stay) Free(_ *walker.Walker)                     {}

func (stay) Step(_ *maze.Maze, _ *walker.Walker) (geometry.Direction, bool) {
	return 0, false
}

func setup(t *testing.T, text string) (*maze.Maze, *walker.Walker) {
	t.Helper()
	m, _, err := maze.Parse(strings.NewReader(text))
	require.NoError(t, err)
	w, err := walker.New(m, stay{})
	require.NoError(t, err)
	return m, w
}

// failingWriter fails every write.
type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) { return 0, errors.New("broken pipe") }

// countingWriter counts calls to Write.
type countingWriter struct {
	bytes.Buffer
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.Buffer.Write(p)
}

func TestWallGlyph(t *testing.T) {
	tests := []struct {
		mask Mask
		want string
	}{
		{0, "."},
		{MaskNorth, "│"},
		{MaskSouth, "│"},
		{MaskNorth | MaskSouth, "│"},
		{MaskEast, "─"},
		{MaskWest, "─"},
		{MaskEast | MaskWest, "─"},
		{MaskNorth | MaskWest, "┘"},
		{MaskNorth | MaskEast, "└"},
		{MaskSouth | MaskWest, "┐"},
		{MaskSouth | MaskEast, "┌"},
		{MaskWest | MaskEast | MaskNorth, "┴"},
		{MaskWest | MaskEast | MaskSouth, "┬"},
		{MaskWest | MaskNorth | MaskSouth, "┤"},
		{MaskEast | MaskNorth | MaskSouth, "├"},
		{MaskNorth | MaskEast | MaskSouth | MaskWest, "┼"},
	}

	seen := make(map[Mask]bool)
	for _, tt := range tests {
		assert.Equal(t, tt.want, WallGlyph(tt.mask), "mask %04b", tt.mask)
		assert.Equal(t, WallGlyph(tt.mask), WallGlyph(tt.mask))
		seen[tt.mask] = true
	}
	assert.Len(t, seen, 16)

	distinct := make(map[string]bool)
	for m := Mask(0); m < 16; m++ {
		distinct[WallGlyph(m)] = true
	}
	assert.Len(t, distinct, 12)
}

func TestWallMask(t *testing.T) {
	m, _ := setup(t, small)

	assert.Equal(t, MaskEast|MaskSouth, WallMask(m, geometry.Point{X: 0, Y: 0}))
	assert.Equal(t, MaskEast|MaskWest, WallMask(m, geometry.Point{X: 2, Y: 0}))
	assert.Equal(t, MaskNorth|MaskSouth, WallMask(m, geometry.Point{X: 0, Y: 2}))
	assert.Equal(t, Mask(0), WallMask(m, geometry.Point{X: 2, Y: 2}))
	assert.Equal(t, MaskNorth|MaskWest, WallMask(m, geometry.Point{X: 4, Y: 4}))
}

func TestComputeViewport(t *testing.T) {
	tests := []struct {
		name   string
		focus  geometry.Point
		w, h   int
		tl, br geometry.Point
	}{
		{"centred", geometry.Point{X: 50, Y: 25}, 20, 10, geometry.Point{X: 40, Y: 20}, geometry.Point{X: 60, Y: 30}},
		{"pushed right and down", geometry.Point{X: 2, Y: 2}, 20, 10, geometry.Point{X: 0, Y: 0}, geometry.Point{X: 20, Y: 10}},
		{"pushed left and up", geometry.Point{X: 98, Y: 48}, 20, 10, geometry.Point{X: 80, Y: 40}, geometry.Point{X: 100, Y: 50}},
		{"larger than the grid", geometry.Point{X: 50, Y: 25}, 300, 200, geometry.Point{X: 0, Y: 0}, geometry.Point{X: 100, Y: 50}},
		{"odd size drops a column", geometry.Point{X: 50, Y: 25}, 21, 11, geometry.Point{X: 40, Y: 20}, geometry.Point{X: 60, Y: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := ComputeViewport(100, 50, tt.focus, tt.w, tt.h)
			assert.Equal(t, tt.tl, vp.TL)
			assert.Equal(t, tt.br, vp.BR)
		})
	}

	t.Run("always inside the grid", func(t *testing.T) {
		for cols := 1; cols <= 12; cols++ {
			for rows := 1; rows <= 9; rows++ {
				for _, size := range []int{1, 2, 5, 8, 30} {
					for x := 0; x < cols; x++ {
						for y := 0; y < rows; y++ {
							vp := ComputeViewport(cols, rows, geometry.Point{X: x, Y: y}, size, size)
							require.GreaterOrEqual(t, vp.TL.X, 0)
							require.GreaterOrEqual(t, vp.TL.Y, 0)
							require.LessOrEqual(t, vp.BR.X, cols)
							require.LessOrEqual(t, vp.BR.Y, rows)
							require.LessOrEqual(t, vp.TL.X, vp.BR.X)
							require.LessOrEqual(t, vp.TL.Y, vp.BR.Y)
						}
					}
				}
			}
		}
	})
}

func TestNew(t *testing.T) {
	_, err := New(nil, Config{Width: 1, Height: 1})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = New(&bytes.Buffer{}, Config{Width: 0, Height: 1})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = New(&bytes.Buffer{}, Config{Width: 1, Height: -1})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	r, err := New(&bytes.Buffer{}, Config{Width: 80, Height: 24, Coloured: true})
	require.NoError(t, err)
	assert.True(t, r.Config().Coloured)
}

func TestRender(t *testing.T) {
	t.Run("plain frame", func(t *testing.T) {
		m, w := setup(t, small)
		var out countingWriter
		r, err := New(&out, Config{Width: 80, Height: 24})
		require.NoError(t, err)

		require.NoError(t, r.Render(m, w))
		assert.Equal(t, "\x1b[1;1H┌───┐\n│@  │\n│ . │\n│  E│\n└───┘\n", out.String())
		assert.Equal(t, 1, out.writes)
	})

	t.Run("coloured frame", func(t *testing.T) {
		m, w := setup(t, "#####\n# S #\n#   #\n#  E#\n#####\n")
		var out bytes.Buffer
		r, err := New(&out, Config{Width: 80, Height: 24, Coloured: true, Focus: Fixed(geometry.Point{X: 2, Y: 2})})
		require.NoError(t, err)

		// Walker sits on S, so only the exit is drawn as a tile.
		require.NoError(t, r.Render(m, w))
		frame := out.String()
		assert.Contains(t, frame, "\x1b[34m@\x1b[0m")
		assert.Contains(t, frame, "\x1b[31mE\x1b[0m")
		assert.NotContains(t, frame, "\x1b[32mS")
	})

	t.Run("start is drawn when the walker has left", func(t *testing.T) {
		m, _, err := maze.Parse(strings.NewReader(small))
		require.NoError(t, err)
		w, err := walker.New(m, eastOnce{})
		require.NoError(t, err)
		require.True(t, w.Step(m))

		var out bytes.Buffer
		r, err := New(&out, Config{Width: 80, Height: 24, Coloured: true})
		require.NoError(t, err)
		require.NoError(t, r.Render(m, w))
		assert.Contains(t, out.String(), "│\x1b[32mS\x1b[0m\x1b[34m@\x1b[0m │")
	})

	t.Run("viewport crops the maze", func(t *testing.T) {
		m, w := setup(t, small)
		var out bytes.Buffer
		r, err := New(&out, Config{Width: 2, Height: 2})
		require.NoError(t, err)

		require.NoError(t, r.Render(m, w))
		assert.Equal(t, "\x1b[1;1H┌─\n│@\n", out.String())
	})

	t.Run("pass-through tiles", func(t *testing.T) {
		m, w := setup(t, "######\n#Sé~E#\n######\n")
		var out bytes.Buffer
		r, err := New(&out, Config{Width: 80, Height: 24})
		require.NoError(t, err)

		require.NoError(t, r.Render(m, w))
		assert.Contains(t, out.String(), "│@é~E│")
	})

	t.Run("invalid arguments still home the cursor", func(t *testing.T) {
		m, w := setup(t, small)
		var out bytes.Buffer
		r, err := New(&out, Config{Width: 80, Height: 24})
		require.NoError(t, err)

		assert.ErrorIs(t, r.Render(nil, w), ErrInvalidArgument)
		assert.ErrorIs(t, r.Render(m, nil), ErrInvalidArgument)
		assert.Equal(t, SeqCursorHome+SeqCursorHome, out.String())
	})

	t.Run("no focus", func(t *testing.T) {
		m, w := setup(t, small)
		r, err := New(&bytes.Buffer{}, Config{Width: 80, Height: 24, Focus: func() (geometry.Point, bool) {
			return geometry.Point{}, false
		}})
		require.NoError(t, err)

		assert.ErrorIs(t, r.Render(m, w), ErrNoFocus)
	})

	t.Run("focus follows the walker each frame", func(t *testing.T) {
		m, _, err := maze.Parse(strings.NewReader(small))
		require.NoError(t, err)
		w, err := walker.New(m, eastOnce{})
		require.NoError(t, err)

		r, err := New(&bytes.Buffer{}, Config{Width: 2, Height: 2, Focus: Follow(w)})
		require.NoError(t, err)
		before, err := r.Viewport(m, w)
		require.NoError(t, err)
		require.True(t, w.Step(m))
		after, err := r.Viewport(m, w)
		require.NoError(t, err)

		assert.Equal(t, geometry.Point{X: 0, Y: 0}, before.TL)
		assert.Equal(t, geometry.Point{X: 1, Y: 0}, after.TL)
	})

	t.Run("write error", func(t *testing.T) {
		m, w := setup(t, small)
		r, err := New(failingWriter{}, Config{Width: 80, Height: 24})
		require.NoError(t, err)

		assert.Error(t, r.Render(m, w))
		assert.Error(t, r.Clear())
	})
}

func TestClear(t *testing.T) {
	var out bytes.Buffer
	r, err := New(&out, Config{Width: 1, Height: 1})
	require.NoError(t, err)
	require.NoError(t, r.Clear())
	assert.Equal(t, "\x1b[1;1H\x1b[2J", out.String())
}

// eastOnce always heads east.
type eastOnce struct{}

func (eastOnce) Name() string                              { return "east" }
func (eastOnce) Description() string                       { return "heads east" }
func (eastOnce) Init(_ *maze.Maze, _ *walker.Walker) error { return nil }
func (eastOnce) Free(_ *walker.Walker)                     {}

func (eastOnce) Step(_ *maze.Maze, _ *walker.Walker) (geometry.Direction, bool) {
	return geometry.East, true
}
