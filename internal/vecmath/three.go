package vecmath

import "math"

// ThreeVector is a 3-D vector of float64 with value semantics.
type ThreeVector [3]float64

func NewThreeVector(x, y, z float64) ThreeVector {
	return ThreeVector{x, y, z}
}

// ThreeFromVector copies the first three components of v.
func ThreeFromVector(v Vector[float64]) ThreeVector {
	mustMatch("three", 3, v.Size())
	return ThreeVector{v.At(0), v.At(1), v.At(2)}
}

func (v ThreeVector) X() float64 { return v[0] }
func (v ThreeVector) Y() float64 { return v[1] }
func (v ThreeVector) Z() float64 { return v[2] }

func (v *ThreeVector) SetX(x float64) { v[0] = x }
func (v *ThreeVector) SetY(y float64) { v[1] = y }
func (v *ThreeVector) SetZ(z float64) { v[2] = z }

func (v *ThreeVector) Set(x, y, z float64) {
	v[0], v[1], v[2] = x, y, z
}

func (v ThreeVector) At(i int) float64 { return v[i] }
func (v ThreeVector) Size() int        { return 3 }

// Vector returns v as a generic vector.
func (v ThreeVector) Vector() Vector[float64] { return FromSlice(v[:]) }

func (v *ThreeVector) AddInPlace(w ThreeVector) {
	v[0] += w[0]
	v[1] += w[1]
	v[2] += w[2]
}

func (v *ThreeVector) SubInPlace(w ThreeVector) {
	v[0] -= w[0]
	v[1] -= w[1]
	v[2] -= w[2]
}

func (v *ThreeVector) ScaleInPlace(f float64) {
	v[0] *= f
	v[1] *= f
	v[2] *= f
}

func (v *ThreeVector) DivInPlace(f float64) {
	v[0] /= f
	v[1] /= f
	v[2] /= f
}

func (v ThreeVector) Add(w ThreeVector) ThreeVector {
	v.AddInPlace(w)
	return v
}

func (v ThreeVector) Sub(w ThreeVector) ThreeVector {
	v.SubInPlace(w)
	return v
}

func (v ThreeVector) Scale(f float64) ThreeVector {
	v.ScaleInPlace(f)
	return v
}

func (v ThreeVector) Div(f float64) ThreeVector {
	v.DivInPlace(f)
	return v
}

func (v ThreeVector) Neg() ThreeVector { return ThreeVector{-v[0], -v[1], -v[2]} }

func (v ThreeVector) Dot(w ThreeVector) float64 { return dot(v[:], w[:]) }

func (v ThreeVector) Length() float64 { return length(v[:]) }

func (v ThreeVector) PNorm(p float64) float64 { return pNorm(v[:], p) }

func (v ThreeVector) MaxNorm() float64 { return maxNorm(v[:]) }

func (v ThreeVector) DistanceTo(w ThreeVector) float64 { return distance(v[:], w[:]) }

// Normalize scales v to unit length. A zero vector becomes NaN.
func (v *ThreeVector) Normalize() {
	v.DivInPlace(v.Length())
}

func (v ThreeVector) Normalized() ThreeVector {
	v.Normalize()
	return v
}

func (v ThreeVector) IsZero() bool { return v == ThreeVector{} }

// Equal reports exact equality; there is no tolerance.
func (v ThreeVector) Equal(w ThreeVector) bool { return v == w }

func (v ThreeVector) String() string { return format(v[:]) }

// Cross returns v × w.
func Cross(v, w ThreeVector) ThreeVector {
	return ThreeVector{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// AngleBetween returns the angle between v and w in radians. It is NaN if
// either vector has zero length.
func AngleBetween(v, w ThreeVector) float64 {
	return math.Acos(v.Dot(w) / (v.Length() * w.Length()))
}

// Rotate turns v by angle radians about axis, right-handed, using the
// conjugation q·(0,v)·q*. A zero axis turns v into NaN.
func (v *ThreeVector) Rotate(axis ThreeVector, angle float64) {
	*v = RotationQuaternion(axis, angle).RotateVector(*v)
}

func (v ThreeVector) Rotated(axis ThreeVector, angle float64) ThreeVector {
	v.Rotate(axis, angle)
	return v
}
