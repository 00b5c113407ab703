package gen

import (
	"math/rand/v2"

	"github.com/lguimbarda/opt-pull/pull/core"
)

// Ints produces random integers from the given source, forever. It
// never returns None; bound the walk on the consumer side.
type Ints struct {
	rng *rand.Rand
}

// NewInts creates an infinite random int producer. Panics when rng is
// nil.
func NewInts(rng *rand.Rand) *Ints {
	if rng == nil {
		panic("gen: NewInts with nil rand source")
	}
	return &Ints{rng: rng}
}

// Next returns the next random integer.
func (g *Ints) Next() core.Option[int] {
	return core.Some(g.rng.Int())
}
