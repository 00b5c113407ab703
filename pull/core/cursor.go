package core

// End marks the end of a range. It is stateless: a Cursor compares
// equal to End exactly when its cell is empty or the cursor is
// detached (zero-valued or moved-from).
type End struct{}

// Cursor walks a producer through a single-slot storage cell. It is
// the iterator half of the adaptation: Value reads the buffered
// element, Next refills the cell from the producer, and Equal(End{})
// detects exhaustion.
//
// A Cursor never owns anything. It holds a reference to the producer
// and a pointer to the cell, both of which belong to the Range that
// created it. Copies are cheap and share the same producer and cell,
// which gives the value semantics generic consumers expect: copying a
// cursor before advancing preserves the pre-advance logical position,
// even though the underlying producer is shared.
//
// Cursors are single-pass. Read Value at most once per position, check
// Equal(End{}) before reading, then Next. Reading an exhausted or
// detached cursor is a contract violation and panics.
type Cursor[T any] struct {
	src  Producer[T]
	cell *Option[T]
}

// Value returns the buffered element. The cell stays primed until the
// next advance; Value panics when the cursor is detached or exhausted.
func (c Cursor[T]) Value() T {
	if c.cell == nil {
		panic("pull: Value on detached cursor")
	}
	v, ok := c.cell.Get()
	if !ok {
		panic("pull: Value on exhausted cursor")
	}
	return v
}

// Next pulls the producer once and stores the outcome in the cell,
// leaving the cursor primed or exhausted. Advancing a detached cursor
// panics.
func (c Cursor[T]) Next() {
	if c.src == nil || c.cell == nil {
		panic("pull: Next on detached cursor")
	}
	*c.cell = c.src.Next()
}

// Equal reports whether the cursor has reached the end of the range.
func (c Cursor[T]) Equal(End) bool {
	return c.cell == nil || c.cell.IsNone()
}

// Move transfers the cursor's references to the returned copy and
// detaches the receiver, which from then on compares equal to End.
// The returned cursor continues the sequence from where the receiver
// left off.
func (c *Cursor[T]) Move() Cursor[T] {
	moved := *c
	c.src = nil
	c.cell = nil
	return moved
}
