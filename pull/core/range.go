package core

import "iter"

// Ranger is the consumer-facing contract shared by every range
// strategy: Begin primes the cell and hands out a Cursor, End returns
// the sentinel, Clear empties the cell so the next Begin pulls the
// producer again.
type Ranger[T any] interface {
	Begin() Cursor[T]
	End() End
	Clear()
}

// Range borrows a producer and pairs it with a storage cell. The cell
// is heap-backed (allocated by New, or supplied by the caller through
// NewWith), so its address never changes when the Range value itself
// is copied or moved around — cursors handed out earlier keep pointing
// at a valid cell. This is the invariant the whole design hangs on.
//
// The producer is borrowed: the caller keeps ownership and must keep
// it alive for as long as the Range (and any Cursor derived from it)
// is in use.
type Range[T any] struct {
	src  Producer[T]
	cell *Option[T]
}

// Underlying returns the borrowed producer for direct access, e.g. to
// reset it between iterations. Panics when the Range has no bound
// producer (zero value).
func (r Range[T]) Underlying() Producer[T] {
	if r.src == nil {
		panic("pull: Underlying on range with no bound producer")
	}
	return r.src
}

// Clear empties the storage cell. The next Begin call pulls the
// producer again, which is how iteration restarts without rebuilding
// the Range. Whether the restarted walk reproduces the same elements
// depends entirely on the producer's own state.
func (r Range[T]) Clear() {
	if r.cell == nil {
		panic("pull: Clear on range with no storage cell")
	}
	r.cell.Clear()
}

// Begin primes the cell with the producer's next element if it is
// empty and returns a Cursor over producer and cell.
func (r Range[T]) Begin() Cursor[T] {
	if r.src == nil || r.cell == nil {
		panic("pull: Begin on range with no bound producer")
	}
	if r.cell.IsNone() {
		*r.cell = r.src.Next()
	}
	return Cursor[T]{src: r.src, cell: r.cell}
}

// End returns the sentinel to compare cursors against.
func (r Range[T]) End() End { return End{} }

// All returns a single-pass iterator over the remaining elements,
// suitable for range-over-func consumption.
func (r Range[T]) All() iter.Seq[T] { return Values[T](r) }

// OwnedRange owns its producer outright: the producer value is moved
// into a heap-allocated block together with the storage cell, so the
// range is self-contained and both addresses stay fixed no matter how
// the OwnedRange value itself is copied or relocated.
//
// P is the concrete producer type (typically a pointer type or a
// Func); the range holds the sole reference to it.
type OwnedRange[T any, P Producer[T]] struct {
	data *ownedData[T, P]
}

type ownedData[T any, P Producer[T]] struct {
	src  P
	cell Option[T]
}

// Underlying returns the owned producer.
func (r OwnedRange[T, P]) Underlying() P {
	if r.data == nil {
		panic("pull: Underlying on range with no bound producer")
	}
	return r.data.src
}

// Clear empties the storage cell so the next Begin pulls the producer
// again.
func (r OwnedRange[T, P]) Clear() {
	if r.data == nil {
		panic("pull: Clear on range with no storage cell")
	}
	r.data.cell.Clear()
}

// Begin primes the cell with the producer's next element if it is
// empty and returns a Cursor over producer and cell.
func (r OwnedRange[T, P]) Begin() Cursor[T] {
	if r.data == nil {
		panic("pull: Begin on range with no bound producer")
	}
	if r.data.cell.IsNone() {
		r.data.cell = r.data.src.Next()
	}
	return Cursor[T]{src: r.data.src, cell: &r.data.cell}
}

// End returns the sentinel to compare cursors against.
func (r OwnedRange[T, P]) End() End { return End{} }

// All returns a single-pass iterator over the remaining elements.
func (r OwnedRange[T, P]) All() iter.Seq[T] { return Values[T](r) }
