package brickbreaker

import "testing"

func TestSimpleRNG(t *testing.T) {
	a, b := NewSimpleRNG(99), NewSimpleRNG(99)
	for range 100 {
		if a.Next() != b.Next() {
			t.Fatal("equal seeds should produce equal streams")
		}
	}
	if a.State() != b.State() {
		t.Error("equal streams should end in equal states")
	}

	r := NewSimpleRNG(0)
	for range 1000 {
		if n := r.Intn(6); n < 0 || n >= 6 {
			t.Fatalf("Intn(6) = %d", n)
		}
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v", f)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should be 0")
	}
}
