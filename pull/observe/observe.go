// Package observe wraps producers with observation callbacks and
// OpenTelemetry metric instrumentation, without changing the sequence
// they produce.
package observe

import (
	"github.com/lguimbarda/opt-pull/pull/core"
)

// Hooks holds observation callbacks for a producer. All fields are
// optional - nil means no observation for that event. Hooks are
// invoked synchronously around each pull, so they should be fast.
type Hooks[T any] struct {
	OnNext    func()  // before each pull
	OnValue   func(T) // a value was produced
	OnExhaust func()  // the producer reported exhaustion
}

// Hooked forwards pulls to the wrapped producer and fires the hooks.
type Hooked[T any] struct {
	src   core.Producer[T]
	hooks Hooks[T]
}

// Wrap attaches hooks to a producer. The wrapped producer yields
// exactly the same sequence as the original.
func Wrap[T any](src core.Producer[T], hooks Hooks[T]) *Hooked[T] {
	if src == nil {
		panic("observe: Wrap with nil producer")
	}
	return &Hooked[T]{src: src, hooks: hooks}
}

// Next pulls the wrapped producer and fires the matching hooks.
func (h *Hooked[T]) Next() core.Option[T] {
	if h.hooks.OnNext != nil {
		h.hooks.OnNext()
	}
	res := h.src.Next()
	if v, ok := res.Get(); ok {
		if h.hooks.OnValue != nil {
			h.hooks.OnValue(v)
		}
	} else if h.hooks.OnExhaust != nil {
		h.hooks.OnExhaust()
	}
	return res
}

// Underlying returns the wrapped producer.
func (h *Hooked[T]) Underlying() core.Producer[T] { return h.src }
