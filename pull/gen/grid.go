package gen

import (
	"slices"

	"github.com/lguimbarda/opt-pull/pull/core"
)

// Grid enumerates the coordinates of an n-dimensional index space in
// row-major order: the last dimension varies fastest. A grid with no
// dimensions, or with any non-positive dimension, is empty.
type Grid struct {
	dims []int
	pos  []int
	done bool
}

// NewGrid creates a coordinate enumerator over the given dimensions.
func NewGrid(dims ...int) *Grid {
	g := &Grid{dims: slices.Clone(dims), pos: make([]int, len(dims))}
	if len(dims) == 0 {
		g.done = true
	}
	for _, d := range dims {
		if d <= 0 {
			g.done = true
		}
	}
	return g
}

// Next returns the next coordinate vector, or None once the space is
// exhausted. The returned slice is a copy and safe to retain.
func (g *Grid) Next() core.Option[[]int] {
	if g.done {
		return core.None[[]int]()
	}
	out := slices.Clone(g.pos)

	// Row-major increment with carry.
	for i := len(g.pos) - 1; i >= 0; i-- {
		g.pos[i]++
		if g.pos[i] < g.dims[i] {
			return core.Some(out)
		}
		g.pos[i] = 0
	}
	g.done = true
	return core.Some(out)
}

// Reset rewinds the enumerator to the origin.
func (g *Grid) Reset() {
	clear(g.pos)
	g.done = len(g.dims) == 0
	for _, d := range g.dims {
		if d <= 0 {
			g.done = true
		}
	}
}
