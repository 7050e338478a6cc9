package tweezers

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestAxisValues(t *testing.T) {
	v := Axis{Start: -2, Stop: 2, Steps: 4}.Values()
	want := []Real{-2, -1, 0, 1, 2}
	if len(v) != len(want) {
		t.Fatalf("len=%d want %d", len(v), len(want))
	}
	for i := range v {
		if !approxEqual(v[i], want[i], 1e-12) {
			t.Fatalf("v[%d]=%.12g want %.12g", i, v[i], want[i])
		}
	}
}

func TestAxisDegenerateRangeCollapses(t *testing.T) {
	for _, steps := range []int{0, 1, 100} {
		v := Axis{Start: 0.5, Stop: 0.5, Steps: steps}.Values()
		if len(v) != 1 || v[0] != 0.5 {
			t.Fatalf("steps=%d: expected single sample 0.5, got %v", steps, v)
		}
	}
}

func TestAxisValidate(t *testing.T) {
	if err := (Axis{Start: 0, Stop: 1}).validate("x"); err == nil {
		t.Fatal("expected error for range without steps")
	}
	if err := (Axis{Start: 1, Stop: 1}).validate("x"); err != nil {
		t.Fatalf("zero span needs no steps: %v", err)
	}
	if err := (Axis{Start: 1, Stop: 2, Steps: 3}).validate("x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGridMapping(t *testing.T) {
	g := NewGrid([]Real{0, 1}, []Real{0, 1, 2}, []Real{0, 1, 2, 3})
	if g.StrideY != g.Nz*3 {
		t.Fatalf("StrideY wrong: %d", g.StrideY)
	}
	if g.StrideX != g.Ny*g.StrideY {
		t.Fatalf("StrideX wrong: %d", g.StrideX)
	}
	if g.Len() != 24 || len(g.Buf) != 72 {
		t.Fatalf("size wrong: len=%d buf=%d", g.Len(), len(g.Buf))
	}
	seen := make(map[int]bool)
	for n := 0; n < g.Len(); n++ {
		i, j, k := g.Coords(n)
		base := g.idx(i, j, k, ChX)
		if base != n*3 {
			t.Fatalf("point %d: (%d,%d,%d) maps to %d", n, i, j, k, base)
		}
		seen[base] = true
	}
	if len(seen) != g.Len() {
		t.Fatalf("coords not a bijection: %d distinct", len(seen))
	}

	f := r3.Vec{X: 1, Y: -2, Z: 3}
	g.Set(1, 2, 3, f)
	if g.At(1, 2, 3) != f {
		t.Fatalf("At/Set mismatch: %+v", g.At(1, 2, 3))
	}
	if g.Position(1, 2, 3) != (r3.Vec{X: 1, Y: 2, Z: 3}) {
		t.Fatalf("position wrong: %+v", g.Position(1, 2, 3))
	}
}
