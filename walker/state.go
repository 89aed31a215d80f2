package walker

import "github.com/beka-birhanu/mazesolver/geometry"

// State is the per-policy memory a walker carries. The set of variants is
// closed; only the bound policy reads or writes it.
type State interface {
	isState()
}

// NoState is held by walkers whose policy keeps no memory, and by every walker
// before its policy is initialised and after it is closed.
type NoState struct{}

// LastDirection remembers a single direction between steps.
type LastDirection struct {
	Dir geometry.Direction
}

func (NoState) isState()       {}
func (LastDirection) isState() {}
