package core

import "iter"

// Values returns a single-pass iterator over the range's remaining
// elements, bridging any range strategy into range-over-func pipelines
// (filtering, mapping, collecting — whatever consumes iter.Seq).
//
// The walk shares the range's cell: breaking out of the loop leaves
// the cell primed with the first unconsumed element, and a subsequent
// Values call picks up from there.
func Values[T any](r Ranger[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		end := r.End()
		for it := r.Begin(); !it.Equal(end); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Collect drains the range into a slice.
func Collect[T any](r Ranger[T]) []T {
	var out []T
	for v := range Values(r) {
		out = append(out, v)
	}
	return out
}

// SeqProducer adapts an iter.Seq into the Producer contract — the
// inverse bridge, for feeding an existing push-style sequence into
// anything that pulls. It is backed by iter.Pull; call Stop when
// abandoning the producer before exhaustion to release the underlying
// coroutine.
type SeqProducer[T any] struct {
	next func() (T, bool)
	stop func()
}

// FromSeq starts pulling from seq lazily; nothing runs until the first
// Next call.
func FromSeq[T any](seq iter.Seq[T]) *SeqProducer[T] {
	next, stop := iter.Pull(seq)
	return &SeqProducer[T]{next: next, stop: stop}
}

// Next returns the sequence's next element, or None once it ends.
func (p *SeqProducer[T]) Next() Option[T] {
	v, ok := p.next()
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// Stop releases the underlying pull iterator. Further Next calls
// return None.
func (p *SeqProducer[T]) Stop() { p.stop() }
