package vecmath

import "math"

// Quaternion is re + im1·i + im2·j + im3·k. Index 0 is the real part.
// Nothing keeps a Quaternion at unit norm; rotation quaternions built by
// RotationQuaternion are unit by construction.
type Quaternion [4]float64

func NewQuaternion(re, im1, im2, im3 float64) Quaternion {
	return Quaternion{re, im1, im2, im3}
}

// QuaternionFromParts builds re + im.
func QuaternionFromParts(re float64, im ThreeVector) Quaternion {
	return Quaternion{re, im[0], im[1], im[2]}
}

// PureQuaternion embeds v as (0, v).
func PureQuaternion(v ThreeVector) Quaternion {
	return QuaternionFromParts(0, v)
}

// RotationQuaternion returns (cos(angle/2), sin(angle/2)·n) with n the
// normalized axis.
func RotationQuaternion(axis ThreeVector, angle float64) Quaternion {
	n := axis.Normalized()
	s, c := math.Sincos(angle / 2)
	return QuaternionFromParts(c, n.Scale(s))
}

func (q Quaternion) Re() float64  { return q[0] }
func (q Quaternion) Im1() float64 { return q[1] }
func (q Quaternion) Im2() float64 { return q[2] }
func (q Quaternion) Im3() float64 { return q[3] }

// Imag returns the vector part.
func (q Quaternion) Imag() ThreeVector { return ThreeVector{q[1], q[2], q[3]} }

func (q *Quaternion) SetRe(re float64)   { q[0] = re }
func (q *Quaternion) SetIm1(im1 float64) { q[1] = im1 }
func (q *Quaternion) SetIm2(im2 float64) { q[2] = im2 }
func (q *Quaternion) SetIm3(im3 float64) { q[3] = im3 }

func (q *Quaternion) Set(re, im1, im2, im3 float64) {
	*q = Quaternion{re, im1, im2, im3}
}

func (q Quaternion) At(i int) float64 { return q[i] }
func (q Quaternion) Size() int        { return 4 }

// Vector returns q as a generic 4-vector.
func (q Quaternion) Vector() Vector[float64] { return FromSlice(q[:]) }

// Conjugate negates the imaginary part in place.
func (q *Quaternion) Conjugate() {
	q[1], q[2], q[3] = -q[1], -q[2], -q[3]
}

func (q Quaternion) Conjugated() Quaternion {
	q.Conjugate()
	return q
}

func (q Quaternion) Add(p Quaternion) Quaternion {
	return Quaternion{q[0] + p[0], q[1] + p[1], q[2] + p[2], q[3] + p[3]}
}

func (q Quaternion) Scale(f float64) Quaternion {
	return Quaternion{q[0] * f, q[1] * f, q[2] * f, q[3] * f}
}

func (q Quaternion) Length() float64 { return length(q[:]) }

func (q Quaternion) Normalized() Quaternion { return q.Scale(1 / q.Length()) }

func (q Quaternion) Equal(p Quaternion) bool { return q == p }

func (q Quaternion) String() string { return format(q[:]) }

// Mul returns the Hamilton product a·b. It does not commute.
func Mul(a, b Quaternion) Quaternion {
	return Quaternion{
		a[0]*b[0] - a[1]*b[1] - a[2]*b[2] - a[3]*b[3],
		a[0]*b[1] + a[1]*b[0] + a[2]*b[3] - a[3]*b[2],
		a[0]*b[2] - a[1]*b[3] + a[2]*b[0] + a[3]*b[1],
		a[0]*b[3] + a[1]*b[2] - a[2]*b[1] + a[3]*b[0],
	}
}

// Mul returns q·p.
func (q Quaternion) Mul(p Quaternion) Quaternion { return Mul(q, p) }

// RotateVector returns the imaginary part of q·(0,v)·q*.
func (q Quaternion) RotateVector(v ThreeVector) ThreeVector {
	return Mul(Mul(q, PureQuaternion(v)), q.Conjugated()).Imag()
}
