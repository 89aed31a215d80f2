package walker

import (
	"errors"
	"strings"
	"testing"

	"github.com/beka-birhanu/mazesolver/geometry"
	"github.com/beka-birhanu/mazesolver/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPolicy replays a fixed list of directions and records its hooks.
type scriptedPolicy struct {
	dirs    []geometry.Direction
	initErr error
	inits   int
	frees   int
}

func (p *scriptedPolicy) Name() string        { return "scripted" }
func (p *scriptedPolicy) Description() string { return "replays directions" }

func (p *scriptedPolicy) Init(_ *maze.Maze, w *Walker) error {
	p.inits++
	if p.initErr != nil {
		return p.initErr
	}
	w.SetState(LastDirection{Dir: geometry.North})
	return nil
}

func (p *scriptedPolicy) Step(_ *maze.Maze, w *Walker) (geometry.Direction, bool) {
	if len(p.dirs) == 0 {
		return 0, false
	}
	dir := p.dirs[0]
	p.dirs = p.dirs[1:]
	w.SetState(LastDirection{Dir: dir})
	return dir, true
}

func (p *scriptedPolicy) Free(w *Walker) {
	p.frees++
	w.SetState(nil)
}

func mustParse(t *testing.T, s string) *maze.Maze {
	t.Helper()
	m, _, err := maze.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return m
}

const smallMaze = "#####\n#S  #\n# # #\n#  E#\n#####\n"

func TestNew(t *testing.T) {
	m := mustParse(t, smallMaze)

	t.Run("placed at start", func(t *testing.T) {
		p := &scriptedPolicy{}
		w, err := New(m, p)
		require.NoError(t, err)
		assert.Equal(t, m.Start(), w.Position())
		assert.Equal(t, 1, p.inits)
		assert.Equal(t, LastDirection{Dir: geometry.North}, w.State())
		assert.Same(t, p, w.Policy())
		assert.Zero(t, w.Steps())
	})

	t.Run("nil maze", func(t *testing.T) {
		w, err := New(nil, &scriptedPolicy{})
		assert.Nil(t, w)
		assert.ErrorIs(t, err, ErrNilMaze)
	})

	t.Run("nil policy", func(t *testing.T) {
		w, err := New(m, nil)
		assert.Nil(t, w)
		assert.ErrorIs(t, err, ErrNilPolicy)
	})

	t.Run("init failure", func(t *testing.T) {
		boom := errors.New("boom")
		w, err := New(m, &scriptedPolicy{initErr: boom})
		assert.Nil(t, w)
		assert.ErrorIs(t, err, boom)
	})
}

func TestStep(t *testing.T) {
	m := mustParse(t, smallMaze)

	t.Run("moves through open tiles", func(t *testing.T) {
		w, err := New(m, &scriptedPolicy{dirs: []geometry.Direction{geometry.East, geometry.East, geometry.South}})
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			assert.True(t, w.Step(m))
		}
		assert.Equal(t, geometry.Point{X: 3, Y: 2}, w.Position())
		assert.Equal(t, int64(3), w.Steps())
		assert.Equal(t, int64(3), w.Moves())
		assert.Equal(t, LastDirection{Dir: geometry.South}, w.State())
	})

	t.Run("wall keeps walker in place", func(t *testing.T) {
		w, err := New(m, &scriptedPolicy{dirs: []geometry.Direction{geometry.North, geometry.West}})
		require.NoError(t, err)

		assert.True(t, w.Step(m))
		assert.True(t, w.Step(m))
		assert.Equal(t, m.Start(), w.Position())
		assert.Equal(t, int64(2), w.Steps())
		assert.Zero(t, w.Moves())
	})

	t.Run("no direction is a no-op", func(t *testing.T) {
		w, err := New(m, &scriptedPolicy{})
		require.NoError(t, err)

		assert.True(t, w.Step(m))
		assert.Equal(t, m.Start(), w.Position())
		assert.Equal(t, int64(1), w.Steps())
	})

	t.Run("invalid direction is a no-op", func(t *testing.T) {
		w, err := New(m, &scriptedPolicy{dirs: []geometry.Direction{geometry.Direction(-1)}})
		require.NoError(t, err)

		assert.True(t, w.Step(m))
		assert.Equal(t, m.Start(), w.Position())
	})

	t.Run("nil maze", func(t *testing.T) {
		w, err := New(m, &scriptedPolicy{dirs: []geometry.Direction{geometry.East}})
		require.NoError(t, err)

		assert.False(t, w.Step(nil))
		assert.False(t, w.CanMove(nil, geometry.East))
		assert.False(t, w.AtExit(nil))
		assert.Zero(t, w.Steps())
	})
}

func TestAtExit(t *testing.T) {
	m := mustParse(t, smallMaze)
	w, err := New(m, &scriptedPolicy{dirs: []geometry.Direction{
		geometry.East, geometry.East, geometry.South, geometry.South,
	}})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		w.Step(m)
		assert.False(t, w.AtExit(m))
	}
	w.Step(m)
	assert.True(t, w.AtExit(m))
	assert.Equal(t, m.Exit(), w.Position())
}

func TestClose(t *testing.T) {
	m := mustParse(t, smallMaze)
	p := &scriptedPolicy{dirs: []geometry.Direction{geometry.East}}
	w, err := New(m, p)
	require.NoError(t, err)

	w.Close()
	w.Close()

	assert.Equal(t, 1, p.frees)
	assert.Equal(t, NoState{}, w.State())
	assert.False(t, w.Step(m), "closed walker must not step")
}
