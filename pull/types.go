// Package pull adapts pull-style producers — anything with a
// Next() Option[T] method, or a plain func() Option[T] — into Go's
// external iteration model, so they can feed for-range loops and any
// iter.Seq-based pipeline without hand-writing the iteration contract.
//
// This package is the primary user-facing API. Most users should only
// need to import this package. The pull/core subpackage contains the
// low-level pieces that are rarely needed directly.
package pull

import (
	"iter"

	"github.com/lguimbarda/opt-pull/pull/core"
)

// Type aliases for the core abstractions. These allow users to work
// with the library without importing core directly.
type (
	// Option holds either a produced value or nothing; an empty Option
	// is the exhaustion signal.
	Option[T any] = core.Option[T]

	// Producer is the pull contract: Next returns the next element or
	// None once exhausted.
	Producer[T any] = core.Producer[T]

	// Func adapts a zero-argument function to the Producer contract.
	Func[T any] = core.Func[T]

	// Cursor walks a producer through a single-slot storage cell.
	Cursor[T any] = core.Cursor[T]

	// End is the sentinel cursors compare against.
	End = core.End

	// Range borrows a producer and pairs it with a storage cell.
	Range[T any] = core.Range[T]

	// OwnedRange owns its producer outright.
	OwnedRange[T any, P core.Producer[T]] = core.OwnedRange[T, P]

	// Ranger is the begin/end/clear contract shared by all range
	// strategies.
	Ranger[T any] = core.Ranger[T]
)

// Option constructors.

// Some creates an Option holding the given value.
func Some[T any](value T) Option[T] { return core.Some(value) }

// None creates an empty Option, the exhaustion signal.
func None[T any]() Option[T] { return core.None[T]() }

// Factories - wrappers around core functions.

// New wraps a borrowed producer in a self-contained, restartable Range.
func New[T any](src Producer[T]) Range[T] { return core.New(src) }

// NewOwned moves the producer into the returned range.
func NewOwned[T any, P Producer[T]](src P) OwnedRange[T, P] {
	return core.NewOwned[T](src)
}

// NewWith wraps a borrowed producer using a caller-supplied storage cell.
func NewWith[T any](cell *Option[T], src Producer[T]) Range[T] {
	return core.NewWith(cell, src)
}

// NewFunc wraps a call-style producer in an owning range.
func NewFunc[T any](fn func() Option[T]) OwnedRange[T, Func[T]] {
	return core.NewFunc(fn)
}

// Terminal operations.

// Values returns a single-pass iterator over the range's remaining
// elements.
func Values[T any](r Ranger[T]) iter.Seq[T] { return core.Values(r) }

// Collect drains the range into a slice.
func Collect[T any](r Ranger[T]) []T { return core.Collect(r) }

// FromSeq adapts an iter.Seq into a Producer.
func FromSeq[T any](seq iter.Seq[T]) *core.SeqProducer[T] {
	return core.FromSeq(seq)
}
