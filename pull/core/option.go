// Package core defines the building blocks for adapting pull-style
// producers into Go's external iteration model: the Option envelope,
// the Producer contract, the single-slot Cursor, and the range
// strategies that pair a producer with its storage cell.
//
// A producer is any value that can answer "give me the next item, or
// tell me you are done". This package turns such values into something
// a for-range loop (or any iter.Seq consumer) can walk, without each
// producer having to implement the iteration contract itself.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other pull packages.
package core

// Option holds either a produced value or nothing. An empty Option is
// the one and only exhaustion signal in this library: producers have no
// separate error channel, and returning None means "no more items".
type Option[T any] struct {
	value T
	ok    bool
}

// Some creates an Option holding the given value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None creates an empty Option, the exhaustion signal.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool { return !o.ok }

// Get returns the contained value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// Value returns the contained value, or the zero value when empty.
// Use Get when the distinction matters.
func (o Option[T]) Value() T { return o.value }

// Take moves the value out, leaving the Option empty.
func (o *Option[T]) Take() (T, bool) {
	value, ok := o.value, o.ok
	var zero T
	o.value, o.ok = zero, false
	return value, ok
}

// Clear empties the Option.
func (o *Option[T]) Clear() {
	var zero T
	o.value, o.ok = zero, false
}
