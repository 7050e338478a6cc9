package tweezers

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestSaveRawForces(t *testing.T) {
	g := NewGrid([]Real{-1, 1}, []Real{0, 0.5, 1}, []Real{2})
	for n := 0; n < g.Len(); n++ {
		i, j, k := g.Coords(n)
		g.Set(i, j, k, r3.Vec{X: Real(n), Y: Real(n) + 0.1, Z: Real(n) + 0.2})
	}
	path := filepath.Join(t.TempDir(), "sub", "forces.raw")
	if err := g.SaveRawForces(path); err != nil {
		t.Fatalf("SaveRawForces: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	r := bufio.NewReader(f)

	var hdr [3]int32
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		t.Fatalf("read header: %v", err)
	}
	if hdr != [3]int32{2, 3, 1} {
		t.Fatalf("header mismatch: %v", hdr)
	}
	xs, ys, zs := make([]float64, 2), make([]float64, 3), make([]float64, 1)
	for _, a := range [][]float64{xs, ys, zs} {
		if err := binary.Read(r, binary.LittleEndian, a); err != nil {
			t.Fatalf("read axis: %v", err)
		}
	}
	if xs[1] != 1 || ys[1] != 0.5 || zs[0] != 2 {
		t.Fatalf("axes mismatch: %v %v %v", xs, ys, zs)
	}
	body := make([]float64, len(g.Buf))
	if err := binary.Read(r, binary.LittleEndian, body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	for i := range body {
		if body[i] != g.Buf[i] {
			t.Fatalf("body[%d]=%g want %g", i, body[i], g.Buf[i])
		}
	}
	if _, err := r.ReadByte(); err != io.EOF {
		t.Fatalf("expected EOF after body, got %v", err)
	}
}

func TestSaveRawForcesLengthMismatch(t *testing.T) {
	g := NewGrid([]Real{0}, []Real{0}, []Real{0})
	g.Buf = g.Buf[:2]
	if err := g.SaveRawForces(filepath.Join(t.TempDir(), "x.raw")); err == nil {
		t.Fatal("expected error for short buffer")
	}
}
