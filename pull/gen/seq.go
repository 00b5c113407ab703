// Package gen provides ready-made producers: bounded and random
// number generators, a multi-dimensional index enumerator, and a
// string splitter. They double as worked examples of the two producer
// shapes the pull library accepts.
package gen

import "github.com/lguimbarda/opt-pull/pull/core"

// Seq counts from 0 up to (but excluding) its limit, then exhausts.
type Seq struct {
	value int
	limit int
}

// NewSeq creates a bounded counting producer.
func NewSeq(limit int) *Seq {
	return &Seq{limit: limit}
}

// Next returns the next count, or None once the limit is reached.
func (s *Seq) Next() core.Option[int] {
	if s.value >= s.limit {
		return core.None[int]()
	}
	v := s.value
	s.value++
	return core.Some(v)
}

// Reset rewinds the producer to zero.
func (s *Seq) Reset() { s.value = 0 }

// Counter returns a call-style producer that counts from start in
// increments of step, forever. Wrap it with pull.NewFunc and bound the
// walk on the consumer side.
func Counter(start, step int) core.Func[int] {
	v := start
	return func() core.Option[int] {
		out := v
		v += step
		return core.Some(out)
	}
}
