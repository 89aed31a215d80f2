/*
Package solver holds the movement policies a walker can be bound to, and the
registry that finds them by name.
*/
package solver

import (
	"errors"
	"fmt"
	"io"

	"github.com/beka-birhanu/mazesolver/walker"
)

const (
	// DefaultAlgorithm is used when no algorithm is requested.
	DefaultAlgorithm = wallFollowerName

	randomName                = "random"
	randomDescription         = "Walks in a random direction."
	randomInformedName        = "randomi"
	randomInformedDescription = "The same as random except that it favours a different direction than the one it came from."
	wallFollowerName          = "wallfollower"
	wallFollowerDescription   = "Always keeps a wall on its right hand."
)

var ErrUnknownAlgorithm = errors.New("algorithm not found")

// Algorithm is a registry entry.
type Algorithm struct {
	Name        string               // Name used to select the algorithm
	Description string               // One-line description for usage output
	New         func() walker.Policy // Creates a fresh policy for one walker
}

// algorithms lists every available policy in display order.
var algorithms = []Algorithm{
	{
		Name:        randomName,
		Description: randomDescription,
		New:         func() walker.Policy { return NewRandom(nil) },
	},
	{
		Name:        randomInformedName,
		Description: randomInformedDescription,
		New:         func() walker.Policy { return NewRandomInformed(nil) },
	},
	{
		Name:        wallFollowerName,
		Description: wallFollowerDescription,
		New:         func() walker.Policy { return NewWallFollower() },
	},
}

// Lookup returns a new policy registered under name. Names are case-sensitive.
func Lookup(name string) (walker.Policy, error) {
	for _, a := range algorithms {
		if a.Name == name {
			return a.New(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Algorithms returns a copy of the registry.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

// Names returns the registered algorithm names in display order.
func Names() []string {
	names := make([]string, 0, len(algorithms))
	for _, a := range algorithms {
		names = append(names, a.Name)
	}
	return names
}

// Usage writes one line per algorithm: prefix, the name right-aligned to the
// longest name, and the description.
func Usage(w io.Writer, prefix string) error {
	width := 0
	for _, a := range algorithms {
		width = max(width, len(a.Name))
	}

	for _, a := range algorithms {
		if _, err := fmt.Fprintf(w, "%s%*s    %s\n", prefix, width, a.Name, a.Description); err != nil {
			return err
		}
	}
	return nil
}
