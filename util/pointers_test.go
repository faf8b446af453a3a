package util

import "testing"

func TestPtr(t *testing.T) {
	p := Ptr(42)
	if p == nil || *p != 42 {
		t.Fatalf("Ptr(42) = %v, want pointer to 42", p)
	}
}

func TestDeref(t *testing.T) {
	if got := Deref(Ptr("hello")); got != "hello" {
		t.Errorf("Deref = %q, want %q", got, "hello")
	}
	var nilPtr *float64
	if got := Deref(nilPtr); got != 0 {
		t.Errorf("Deref(nil) = %v, want 0", got)
	}
}

func TestDerefOr(t *testing.T) {
	if got := DerefOr(nil, 7); got != 7 {
		t.Errorf("DerefOr(nil, 7) = %d, want 7", got)
	}
	if got := DerefOr(Ptr(3), 7); got != 3 {
		t.Errorf("DerefOr(&3, 7) = %d, want 3", got)
	}
}
