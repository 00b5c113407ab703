package core

// New wraps a borrowed producer in a self-contained, restartable
// Range. The storage cell is allocated here, on the heap, so the
// returned Range can be passed around freely while cursors stay valid.
// The caller keeps ownership of the producer.
//
// The element type cannot be inferred from a concrete producer's
// method set, so call sites instantiate it explicitly:
//
//	seq := gen.NewSeq(5)
//	r := core.New[int](seq)
func New[T any](src Producer[T]) Range[T] {
	return Range[T]{src: src, cell: new(Option[T])}
}

// NewOwned moves the producer into the returned range, which becomes
// its sole owner. Producer and cell live together in one heap block.
//
//	r := core.NewOwned[int](gen.NewSeq(5))
func NewOwned[T any, P Producer[T]](src P) OwnedRange[T, P] {
	return OwnedRange[T, P]{data: &ownedData[T, P]{src: src}}
}

// NewWith wraps a borrowed producer using a caller-supplied storage
// cell. The caller controls the cell's lifetime and must keep it valid
// for as long as the Range and its cursors are in use; in exchange the
// cell can live wherever the caller wants and be reused across ranges.
func NewWith[T any](cell *Option[T], src Producer[T]) Range[T] {
	if cell == nil {
		panic("pull: NewWith with nil storage cell")
	}
	return Range[T]{src: src, cell: cell}
}

// NewFunc wraps a call-style producer — any zero-argument function
// returning an Option — in an owning range. This is the convenience
// path for closures:
//
//	i := 0
//	r := core.NewFunc(func() core.Option[int] {
//		i += 2
//		return core.Some(i)
//	})
func NewFunc[T any](fn func() Option[T]) OwnedRange[T, Func[T]] {
	if fn == nil {
		panic("pull: NewFunc with nil function")
	}
	return NewOwned[T](Func[T](fn))
}
