package tweezers

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Axis is one sweep coordinate, in sphere radii relative to the focus.
// Steps intervals give Steps+1 samples, both ends included.
type Axis struct {
	Start Real `json:"start"`
	Stop  Real `json:"stop"`
	Steps int  `json:"steps,omitempty"`
}

// Values returns the sample positions along the axis. A zero-span axis
// (Start == Stop) yields exactly one sample whatever Steps says.
func (a Axis) Values() []Real {
	if a.Start == a.Stop || a.Steps <= 0 {
		return []Real{a.Start}
	}
	return floats.Span(make([]Real, a.Steps+1), a.Start, a.Stop)
}

func (a Axis) validate(name string) error {
	if !isFinite(a.Start) || !isFinite(a.Stop) {
		return fmt.Errorf("axis %s: start/stop must be finite, got %g..%g", name, a.Start, a.Stop)
	}
	if a.Start != a.Stop && a.Steps <= 0 {
		return fmt.Errorf("axis %s: steps must be > 0 for a non-empty range %g..%g", name, a.Start, a.Stop)
	}
	return nil
}

// Grid stores the force vector computed at every particle position.
type Grid struct {
	X, Y, Z    []Real // axis samples, sphere radii
	Nx, Ny, Nz int
	Buf        []Real // flat: (((i*Ny)+j)*Nz + k)*3 + c
	StrideX    int    // i * StrideX + j * StrideY + k*3 + c
	StrideY    int
}

// NewGrid allocates a zero-initialized grid over the given axis samples.
func NewGrid(xs, ys, zs []Real) *Grid {
	nx, ny, nz := len(xs), len(ys), len(zs)
	if nx == 0 || ny == 0 || nz == 0 {
		panic("grid axes must not be empty")
	}
	strideY := nz * 3
	strideX := ny * strideY
	g := &Grid{
		X: xs, Y: ys, Z: zs,
		Nx: nx, Ny: ny, Nz: nz,
		Buf:     make([]Real, nx*ny*nz*3),
		StrideX: strideX,
		StrideY: strideY,
	}
	DebugLog("Created grid resolution=(%d, %d, %d)", nx, ny, nz)
	return g
}

// Len is the number of grid points.
func (g *Grid) Len() int { return g.Nx * g.Ny * g.Nz }

// Flat buffer index helper (c ∈ {ChX,ChY,ChZ}).
func (g *Grid) idx(i, j, k, c int) int {
	return i*g.StrideX + j*g.StrideY + k*3 + c
}

// Coords maps a point number in [0, Len()) to its axis indices, z fastest.
func (g *Grid) Coords(n int) (i, j, k int) {
	k = n % g.Nz
	n /= g.Nz
	j = n % g.Ny
	i = n / g.Ny
	return
}

// Position returns the particle position of a grid point in sphere radii.
func (g *Grid) Position(i, j, k int) r3.Vec {
	return r3.Vec{X: g.X[i], Y: g.Y[j], Z: g.Z[k]}
}

func (g *Grid) Set(i, j, k int, f r3.Vec) {
	base := g.idx(i, j, k, ChX)
	g.Buf[base+ChX] = f.X
	g.Buf[base+ChY] = f.Y
	g.Buf[base+ChZ] = f.Z
}

func (g *Grid) At(i, j, k int) r3.Vec {
	base := g.idx(i, j, k, ChX)
	return r3.Vec{X: g.Buf[base+ChX], Y: g.Buf[base+ChY], Z: g.Buf[base+ChZ]}
}
