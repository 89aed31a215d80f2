package solver

import (
	"math/rand"
	"time"

	"github.com/beka-birhanu/mazesolver/geometry"
	"github.com/beka-birhanu/mazesolver/maze"
	"github.com/beka-birhanu/mazesolver/walker"
)

// Random walks in a uniformly random open direction every step.
type Random struct {
	src rand.Source
	rng *rand.Rand
}

var _ walker.Policy = &Random{}

// NewRandom creates a Random policy drawing from src. A nil src is replaced by a
// time-seeded source when the policy is initialised.
func NewRandom(src rand.Source) *Random {
	return &Random{src: src}
}

// Name implements walker.Policy.
func (p *Random) Name() string {
	return randomName
}

// Description implements walker.Policy.
func (p *Random) Description() string {
	return randomDescription
}

// Init implements walker.Policy.
func (p *Random) Init(_ *maze.Maze, w *walker.Walker) error {
	p.rng = newRand(p.src)
	w.SetState(walker.NoState{})
	return nil
}

// Step implements walker.Policy.
func (p *Random) Step(m *maze.Maze, w *walker.Walker) (geometry.Direction, bool) {
	dirs := openDirections(m, w)
	if len(dirs) == 0 {
		return 0, false
	}
	return dirs[p.rng.Intn(len(dirs))], true
}

// Free implements walker.Policy.
func (p *Random) Free(w *walker.Walker) {
	w.SetState(walker.NoState{})
}

// newRand seeds a generator once per policy run.
func newRand(src rand.Source) *rand.Rand {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return rand.New(src)
}

// openDirections lists, in cycle order, every direction the walker can move in.
func openDirections(m *maze.Maze, w *walker.Walker) []geometry.Direction {
	dirs := make([]geometry.Direction, 0, len(geometry.Directions))
	for _, dir := range geometry.Directions {
		if w.CanMove(m, dir) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
