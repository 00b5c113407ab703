package observe

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lguimbarda/opt-pull/pull/core"
	"github.com/lguimbarda/opt-pull/pull/gen"
)

func TestWrapForwardsSequence(t *testing.T) {
	hooked := Wrap[int](gen.NewSeq(4), Hooks[int]{})
	got := core.Collect[int](core.New[int](hooked))

	want := []int{0, 1, 2, 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("wrapped sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestHooksFire(t *testing.T) {
	var pulls, exhausts int
	var seen []int

	hooked := Wrap[int](gen.NewSeq(3), Hooks[int]{
		OnNext:    func() { pulls++ },
		OnValue:   func(v int) { seen = append(seen, v) },
		OnExhaust: func() { exhausts++ },
	})

	core.Collect[int](core.New[int](hooked))

	if pulls != 4 {
		t.Errorf("OnNext fired %d times, want 4 (3 values + exhaustion)", pulls)
	}
	if diff := cmp.Diff([]int{0, 1, 2}, seen); diff != "" {
		t.Errorf("OnValue values mismatch (-want +got):\n%s", diff)
	}
	if exhausts != 1 {
		t.Errorf("OnExhaust fired %d times, want 1", exhausts)
	}
}

func TestWrapNilProducerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Wrap with nil producer should panic")
		}
	}()
	Wrap[int](nil, Hooks[int]{})
}

func TestUnderlying(t *testing.T) {
	seq := gen.NewSeq(1)
	hooked := Wrap[int](seq, Hooks[int]{})
	if hooked.Underlying() != core.Producer[int](seq) {
		t.Fatalf("Underlying should return the wrapped producer")
	}
}
