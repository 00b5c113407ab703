package pull

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// countdown yields limit-1 .. 0 then exhausts.
type countdown struct {
	remaining int
}

func (c *countdown) Next() Option[int] {
	if c.remaining <= 0 {
		return None[int]()
	}
	c.remaining--
	return Some(c.remaining)
}

func TestFacadeRoundTrip(t *testing.T) {
	r := New[int](&countdown{remaining: 3})
	got := Collect[int](r)
	want := []int{2, 1, 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestFacadeCursorLoop(t *testing.T) {
	r := NewOwned[int](&countdown{remaining: 3})

	var got []int
	for it := r.Begin(); !it.Equal(r.End()); it.Next() {
		got = append(got, it.Value())
	}
	want := []int{2, 1, 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("cursor walk mismatch (-want +got):\n%s", diff)
	}
}

func TestFacadeExternalCell(t *testing.T) {
	var cell Option[int]
	src := &countdown{remaining: 5}
	r := NewWith(&cell, src)

	if v := r.Begin().Value(); v != 4 {
		t.Fatalf("primed value = %d, want 4", v)
	}
	r.Clear()
	if v := r.Begin().Value(); v != 3 {
		t.Fatalf("re-primed value = %d, want 3 (cell cleared, producer not rewound)", v)
	}
}

func TestFacadeFuncAndSeq(t *testing.T) {
	src := FromSeq(slices.Values([]string{"x", "y"}))
	defer src.Stop()

	r := NewFunc(src.Next)
	got := Collect[string](r)
	want := []string{"x", "y"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sequence mismatch (-want +got):\n%s", diff)
	}
}
