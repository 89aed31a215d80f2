package solver

import (
	"math/rand"

	"github.com/beka-birhanu/mazesolver/geometry"
	"github.com/beka-birhanu/mazesolver/maze"
	"github.com/beka-birhanu/mazesolver/walker"
)

// RandomInformed is a random walk that avoids turning straight back the way it
// came unless that is the only way out.
type RandomInformed struct {
	src rand.Source
	rng *rand.Rand
}

var _ walker.Policy = &RandomInformed{}

// NewRandomInformed creates a RandomInformed policy drawing from src. A nil src
// is replaced by a time-seeded source when the policy is initialised.
func NewRandomInformed(src rand.Source) *RandomInformed {
	return &RandomInformed{src: src}
}

// Name implements walker.Policy.
func (p *RandomInformed) Name() string {
	return randomInformedName
}

// Description implements walker.Policy.
func (p *RandomInformed) Description() string {
	return randomInformedDescription
}

// Init implements walker.Policy. The walker starts without a previous
// direction, so nothing is avoided on the first step.
func (p *RandomInformed) Init(_ *maze.Maze, w *walker.Walker) error {
	p.rng = newRand(p.src)
	w.SetState(walker.NoState{})
	return nil
}

// Step implements walker.Policy.
func (p *RandomInformed) Step(m *maze.Maze, w *walker.Walker) (geometry.Direction, bool) {
	var (
		back    geometry.Direction
		hasBack bool
	)
	if last, ok := w.State().(walker.LastDirection); ok {
		back, hasBack = geometry.Rotate(last.Dir, geometry.Left, 2), true
	}

	dirs := make([]geometry.Direction, 0, len(geometry.Directions))
	canGoBack := false
	for _, dir := range geometry.Directions {
		if !w.CanMove(m, dir) {
			continue
		}
		if hasBack && dir == back {
			canGoBack = true
			continue
		}
		dirs = append(dirs, dir)
	}

	var next geometry.Direction
	switch {
	case len(dirs) > 0:
		next = dirs[p.rng.Intn(len(dirs))]
	case canGoBack:
		next = back
	default:
		return 0, false
	}

	w.SetState(walker.LastDirection{Dir: next})
	return next, true
}

// Free implements walker.Policy.
func (p *RandomInformed) Free(w *walker.Walker) {
	w.SetState(walker.NoState{})
}
