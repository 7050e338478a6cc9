package tweezers

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

type Real = float64

// unit returns a unit-length version of v.
// If the vector is zero, it returns the input unchanged.
func unit(v r3.Vec) r3.Vec {
	l := r3.Norm(v)
	if l == 0 {
		return v
	}
	return r3.Scale(1/l, v)
}

// mulElem returns the component-wise product of two vectors.
func mulElem(a, b r3.Vec) r3.Vec { return r3.Vec{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z} }

func hasNaN(v r3.Vec) bool { return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z) }
