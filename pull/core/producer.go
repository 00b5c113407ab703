package core

// Producer is the pull contract: each call to Next advances the
// producer's internal position and returns either the next element or
// None once the sequence is exhausted. A producer that cannot satisfy
// this shape (or the call shape below) simply fails to compile against
// the factories; there is no runtime fallback.
//
// Producers are stateful and single-goroutine: nothing in this package
// synchronizes access, and a producer must not be pulled from more than
// one goroutine at a time.
type Producer[T any] interface {
	Next() Option[T]
}

// Func adapts a plain zero-argument function to the Producer contract,
// so call-style producers (closures, method values) share the same
// Cursor implementation as Next-style ones. The wrapper borrows the
// function; calling Next on a nil Func is a programmer error.
//
// A named func type may carry its own Next method and thereby satisfy
// Producer directly. The interface-typed factories (New, NewOwned,
// NewWith) always dispatch through that Next method; the call shape is
// only reachable through the explicit NewFunc path.
type Func[T any] func() Option[T]

// Next invokes the wrapped function.
func (f Func[T]) Next() Option[T] {
	if f == nil {
		panic("pull: Next on nil Func producer")
	}
	return f()
}
