package core

import "testing"

func TestOptionSome(t *testing.T) {
	o := Some(42)
	if !o.IsSome() || o.IsNone() {
		t.Fatalf("Some(42) should report IsSome")
	}
	if v, ok := o.Get(); !ok || v != 42 {
		t.Fatalf("Get() = (%d, %v), want (42, true)", v, ok)
	}
	if o.Value() != 42 {
		t.Errorf("Value() = %d, want 42", o.Value())
	}
}

func TestOptionNone(t *testing.T) {
	o := None[string]()
	if o.IsSome() || !o.IsNone() {
		t.Fatalf("None() should report IsNone")
	}
	if v, ok := o.Get(); ok || v != "" {
		t.Fatalf("Get() = (%q, %v), want (\"\", false)", v, ok)
	}
}

func TestOptionTake(t *testing.T) {
	o := Some("hello")
	v, ok := o.Take()
	if !ok || v != "hello" {
		t.Fatalf("Take() = (%q, %v), want (\"hello\", true)", v, ok)
	}
	if !o.IsNone() {
		t.Errorf("option should be empty after Take")
	}
	if _, ok := o.Take(); ok {
		t.Errorf("second Take should report no value")
	}
}

func TestOptionClear(t *testing.T) {
	o := Some(7)
	o.Clear()
	if !o.IsNone() {
		t.Fatalf("option should be empty after Clear")
	}
	if o.Value() != 0 {
		t.Errorf("cleared option should hold the zero value, got %d", o.Value())
	}
}
